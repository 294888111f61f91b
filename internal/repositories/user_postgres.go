package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/museum-guide/internal/logger"
	"github.com/sbilibin2017/museum-guide/internal/models"
)

// PostgresUserRepository is the alternative user ledger backend for
// deployments that outgrow the flat file. Each of the four activity
// collections is stored as a jsonb column, keeping the record shape identical
// to the file ledger.
type PostgresUserRepository struct {
	db *sqlx.DB
}

// NewPostgresUserRepository creates a repository over an open sqlx DB.
func NewPostgresUserRepository(db *sqlx.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// userRow mirrors the users table; jsonb columns come back as raw bytes.
type userRow struct {
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	Wishlist     []byte    `db:"wishlist"`
	VisitedLog   []byte    `db:"visited_log"`
	ReviewDiary  []byte    `db:"review_diary"`
	QuizScores   []byte    `db:"quiz_scores"`
}

// Get returns the user record, or nil if the username is unknown.
func (r *PostgresUserRepository) Get(ctx context.Context, username string) (*models.User, error) {
	const query = `
		SELECT username, password_hash, created_at, wishlist, visited_log, review_diary, quiz_scores
		FROM users
		WHERE username = $1
	`

	var row userRow
	err := r.db.GetContext(ctx, &row, query, username)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
	}
	if err := json.Unmarshal(row.Wishlist, &user.Wishlist); err != nil {
		return nil, fmt.Errorf("parse wishlist for %s: %w", username, err)
	}
	if err := json.Unmarshal(row.VisitedLog, &user.VisitedLog); err != nil {
		return nil, fmt.Errorf("parse visited log for %s: %w", username, err)
	}
	if err := json.Unmarshal(row.ReviewDiary, &user.ReviewDiary); err != nil {
		return nil, fmt.Errorf("parse review diary for %s: %w", username, err)
	}
	if err := json.Unmarshal(row.QuizScores, &user.QuizScores); err != nil {
		return nil, fmt.Errorf("parse quiz scores for %s: %w", username, err)
	}

	return &user, nil
}

// Save upserts the whole user record in a single statement.
func (r *PostgresUserRepository) Save(ctx context.Context, user *models.User) error {
	const query = `
		INSERT INTO users (username, password_hash, created_at, wishlist, visited_log, review_diary, quiz_scores)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (username) DO UPDATE
		SET password_hash = EXCLUDED.password_hash,
		    wishlist = EXCLUDED.wishlist,
		    visited_log = EXCLUDED.visited_log,
		    review_diary = EXCLUDED.review_diary,
		    quiz_scores = EXCLUDED.quiz_scores
	`

	wishlist, err := json.Marshal(user.Wishlist)
	if err != nil {
		return fmt.Errorf("marshal wishlist: %w", err)
	}
	visitedLog, err := json.Marshal(user.VisitedLog)
	if err != nil {
		return fmt.Errorf("marshal visited log: %w", err)
	}
	reviewDiary, err := json.Marshal(user.ReviewDiary)
	if err != nil {
		return fmt.Errorf("marshal review diary: %w", err)
	}
	quizScores, err := json.Marshal(user.QuizScores)
	if err != nil {
		return fmt.Errorf("marshal quiz scores: %w", err)
	}

	args := []any{user.Username, user.PasswordHash, user.CreatedAt, wishlist, visitedLog, reviewDiary, quizScores}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{user.Username},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
