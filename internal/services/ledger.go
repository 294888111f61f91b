package services

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/museum-guide/internal/logger"
	"github.com/sbilibin2017/museum-guide/internal/models"
	"github.com/segmentio/kafka-go"
)

var (
	// ErrUserNotFound is returned when the username is not in the ledger.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidRating is returned when a review rating is outside [1,5].
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	// ErrEmptyNotes is returned when a review has no notes text.
	ErrEmptyNotes = errors.New("review notes must not be empty")
	// ErrMuseumNotVisited is returned when a review targets a museum absent
	// from the user's visited log.
	ErrMuseumNotVisited = errors.New("museum must be marked visited before reviewing")
	// ErrInvalidQuizScore is returned when a quiz score record is malformed.
	ErrInvalidQuizScore = errors.New("quiz score must have a positive question count")
)

// Activity event actions.
const (
	ActionWishlistAdd    = "wishlist_add"
	ActionWishlistRemove = "wishlist_remove"
	ActionVisit          = "visit"
	ActionReview         = "review"
	ActionQuizScore      = "quiz_score"
)

// MuseumQuizReader retrieves per-museum question sets for score verification.
type MuseumQuizReader interface {
	MuseumQuiz(ctx context.Context, museumID string) *models.MuseumQuiz
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// LedgerService owns every mutation of a user's activity collections:
// wishlist, visited log, review diary and quiz scores. Each mutation persists
// the whole record synchronously and, when a Kafka writer is configured,
// publishes an activity event.
type LedgerService struct {
	reader      UserReader
	writer      UserWriter
	quizzes     MuseumQuizReader
	kafkaWriter KafkaWriter
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(
	reader UserReader,
	writer UserWriter,
	quizzes MuseumQuizReader,
	kafkaWriter KafkaWriter,
) *LedgerService {
	return &LedgerService{
		reader:      reader,
		writer:      writer,
		quizzes:     quizzes,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes an activity event to Kafka.
func (s *LedgerService) publishEvent(ctx context.Context, event models.ActivityEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal activity event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.Username),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish activity event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Activity event published to Kafka", "event_id", event.EventID, "action", event.Action)
	}
}

func newEvent(username string, museumID int, action, detail string) models.ActivityEvent {
	return models.ActivityEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Username:  username,
		MuseumID:  museumID,
		Action:    action,
		Detail:    detail,
	}
}

// getUser loads a user or returns ErrUserNotFound.
func (s *LedgerService) getUser(ctx context.Context, username string) (*models.User, error) {
	user, err := s.reader.Get(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to read user ledger", "username", username, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Dashboard returns the full user record for display.
func (s *LedgerService) Dashboard(ctx context.Context, username string) (*models.User, error) {
	return s.getUser(ctx, username)
}

// AddWishlist adds a museum to the wishlist. Adding a museum that is already
// present is a no-op; the current wishlist is returned either way.
func (s *LedgerService) AddWishlist(ctx context.Context, username string, museumID int) ([]models.WishlistEntry, error) {
	user, err := s.getUser(ctx, username)
	if err != nil {
		return nil, err
	}

	for _, entry := range user.Wishlist {
		if entry.MuseumID == museumID {
			return user.Wishlist, nil
		}
	}

	user.Wishlist = append(user.Wishlist, models.WishlistEntry{
		MuseumID:  museumID,
		AddedDate: time.Now().UTC(),
	})
	if err := s.writer.Save(ctx, user); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, newEvent(username, museumID, ActionWishlistAdd, ""))
	return user.Wishlist, nil
}

// RemoveWishlist removes a museum from the wishlist.
func (s *LedgerService) RemoveWishlist(ctx context.Context, username string, museumID int) ([]models.WishlistEntry, error) {
	user, err := s.getUser(ctx, username)
	if err != nil {
		return nil, err
	}

	kept := user.Wishlist[:0]
	for _, entry := range user.Wishlist {
		if entry.MuseumID != museumID {
			kept = append(kept, entry)
		}
	}
	user.Wishlist = kept

	if err := s.writer.Save(ctx, user); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, newEvent(username, museumID, ActionWishlistRemove, ""))
	return user.Wishlist, nil
}

// AddVisited appends a visit to the visited log. Duplicate visits are
// permitted; the visit date is caller-supplied, the timestamp is server time.
func (s *LedgerService) AddVisited(ctx context.Context, username string, museumID int, visitDate string) ([]models.VisitEntry, error) {
	user, err := s.getUser(ctx, username)
	if err != nil {
		return nil, err
	}

	user.VisitedLog = append(user.VisitedLog, models.VisitEntry{
		MuseumID:  museumID,
		VisitDate: visitDate,
		Timestamp: time.Now().UTC(),
	})
	if err := s.writer.Save(ctx, user); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, newEvent(username, museumID, ActionVisit, visitDate))
	return user.VisitedLog, nil
}

// AddReview appends a review to the diary. The rating must be in [1,5], the
// notes must be non-empty and the museum must already appear in the visited
// log. Repeated reviews of the same museum append additional entries.
func (s *LedgerService) AddReview(ctx context.Context, username string, museumID, rating int, notes string) ([]models.ReviewEntry, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	if notes == "" {
		return nil, ErrEmptyNotes
	}

	user, err := s.getUser(ctx, username)
	if err != nil {
		return nil, err
	}
	if !user.HasVisited(museumID) {
		return nil, ErrMuseumNotVisited
	}

	user.ReviewDiary = append(user.ReviewDiary, models.ReviewEntry{
		MuseumID:   museumID,
		Rating:     rating,
		Notes:      notes,
		ReviewDate: time.Now().UTC(),
	})
	if err := s.writer.Save(ctx, user); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, newEvent(username, museumID, ActionReview, strconv.Itoa(rating)))
	return user.ReviewDiary, nil
}

// AddQuizScore appends a quiz attempt. The percentage is recomputed when the
// caller omits it. The tally itself stays client-computed: when the museum's
// question set is known the score is re-checked against it and a mismatch is
// logged, but the submitted value is stored.
func (s *LedgerService) AddQuizScore(ctx context.Context, username string, record models.QuizScore) ([]models.QuizScore, *models.QuizScore, error) {
	if record.TotalQuestions <= 0 {
		return nil, nil, ErrInvalidQuizScore
	}

	user, err := s.getUser(ctx, username)
	if err != nil {
		return nil, nil, err
	}

	if record.Percentage == 0 {
		record.Percentage = roundPercentage(record.Score, record.TotalQuestions)
	}
	record.AttemptDate = time.Now().UTC()

	s.verifyScore(ctx, username, &record)

	user.QuizScores = append(user.QuizScores, record)
	if err := s.writer.Save(ctx, user); err != nil {
		return nil, nil, err
	}

	s.publishEvent(ctx, newEvent(username, record.MuseumID, ActionQuizScore,
		strconv.FormatFloat(record.Percentage, 'f', 2, 64)))

	latest := user.QuizScores[len(user.QuizScores)-1]
	return user.QuizScores, &latest, nil
}

// verifyScore re-grades the submitted answers against the museum's question
// set when it is available and logs a warning on mismatch.
func (s *LedgerService) verifyScore(ctx context.Context, username string, record *models.QuizScore) {
	quiz := s.quizzes.MuseumQuiz(ctx, strconv.Itoa(record.MuseumID))
	if quiz == nil || len(record.Answers) == 0 {
		return
	}

	correctByID := make(map[int]int, len(quiz.Questions))
	for _, q := range quiz.Questions {
		correctByID[q.ID] = q.CorrectAnswer
	}

	regraded := 0
	for _, a := range record.Answers {
		if correct, ok := correctByID[a.QuestionID]; ok && a.SelectedAnswer == correct {
			regraded++
		}
	}

	if regraded != record.Score {
		logger.Log.Warnw("client-submitted quiz score does not match server re-grade",
			"username", username,
			"museum_id", record.MuseumID,
			"submitted", record.Score,
			"regraded", regraded,
		)
	}
}

// QuizHistory returns all recorded quiz attempts.
func (s *LedgerService) QuizHistory(ctx context.Context, username string) ([]models.QuizScore, error) {
	user, err := s.getUser(ctx, username)
	if err != nil {
		return nil, err
	}
	return user.QuizScores, nil
}

// roundPercentage computes score/total*100 rounded to 2 decimals.
func roundPercentage(score, total int) float64 {
	return math.Round(float64(score)/float64(total)*100*100) / 100
}
