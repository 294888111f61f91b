package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sbilibin2017/museum-guide/internal/logger"
	"github.com/sbilibin2017/museum-guide/internal/models"
)

// FileUserRepository is the default user ledger backend: a single JSON document
// mapping username to user record, rewritten wholesale on every mutation.
//
// One mutex serializes every read-modify-write cycle. The backing store is one
// file, so finer-grained per-username locking would not prevent lost updates.
type FileUserRepository struct {
	path string
	mu   sync.Mutex
}

// NewFileUserRepository creates a repository backed by the given file path.
// The file is created on first save; a missing file reads as an empty ledger.
func NewFileUserRepository(path string) *FileUserRepository {
	return &FileUserRepository{path: path}
}

// Get returns the user record, or nil if the username is unknown.
func (r *FileUserRepository) Get(ctx context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}

	user, ok := users[username]
	if !ok {
		return nil, nil
	}
	return user, nil
}

// Save upserts the whole user record and persists the ledger synchronously.
// A write failure is returned to the caller, never swallowed.
func (r *FileUserRepository) Save(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return err
	}

	users[user.Username] = user
	if err := r.persist(users); err != nil {
		logger.Log.Errorw("failed to persist user ledger", "path", r.path, "error", err)
		return err
	}

	logger.Log.Infow("user ledger persisted", "username", user.Username, "path", r.path)
	return nil
}

// load reads the full ledger. Caller must hold the mutex.
func (r *FileUserRepository) load() (map[string]*models.User, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return map[string]*models.User{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read user ledger: %w", err)
	}

	users := map[string]*models.User{}
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("parse user ledger: %w", err)
	}
	return users, nil
}

// persist rewrites the whole ledger file. Caller must hold the mutex.
func (r *FileUserRepository) persist(users map[string]*models.User) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal user ledger: %w", err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create ledger directory: %w", err)
		}
	}

	// Write to a temp file in the same directory, then rename, so a crash
	// mid-write cannot truncate the ledger.
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write user ledger: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("replace user ledger: %w", err)
	}
	return nil
}
