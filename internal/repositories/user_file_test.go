package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sbilibin2017/museum-guide/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestFileUserRepository_MissingFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "users.json")

	repo := NewFileUserRepository(path)

	// a missing file reads as an empty ledger
	user, err := repo.Get(ctx, "alice")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestFileUserRepository_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "users.json")

	repo := NewFileUserRepository(path)

	user := models.NewUser("alice", "hash")
	user.Wishlist = []models.WishlistEntry{{MuseumID: 1}}
	user.VisitedLog = []models.VisitEntry{{MuseumID: 1, VisitDate: "2026-01-01"}}

	// save creates the parent directory and the file
	assert.NoError(t, repo.Save(ctx, user))
	_, err := os.Stat(path)
	assert.NoError(t, err)

	got, err := repo.Get(ctx, "alice")
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "hash", got.PasswordHash)
	assert.Len(t, got.Wishlist, 1)
	assert.Len(t, got.VisitedLog, 1)

	// unknown username is nil, nil
	got, err = repo.Get(ctx, "bob")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestFileUserRepository_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "users.json")

	repo := NewFileUserRepository(path)
	assert.NoError(t, repo.Save(ctx, models.NewUser("alice", "hash-a")))
	assert.NoError(t, repo.Save(ctx, models.NewUser("bob", "hash-b")))

	// a fresh repository over the same path sees both records
	reopened := NewFileUserRepository(path)
	alice, err := reopened.Get(ctx, "alice")
	assert.NoError(t, err)
	assert.NotNil(t, alice)
	bob, err := reopened.Get(ctx, "bob")
	assert.NoError(t, err)
	assert.NotNil(t, bob)
}

func TestFileUserRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "users.json")

	repo := NewFileUserRepository(path)

	user := models.NewUser("alice", "hash")
	assert.NoError(t, repo.Save(ctx, user))

	user.Wishlist = append(user.Wishlist, models.WishlistEntry{MuseumID: 9})
	assert.NoError(t, repo.Save(ctx, user))

	got, err := repo.Get(ctx, "alice")
	assert.NoError(t, err)
	assert.Len(t, got.Wishlist, 1)
	assert.Equal(t, 9, got.Wishlist[0].MuseumID)
}

func TestFileUserRepository_CorruptFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "users.json")
	assert.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	repo := NewFileUserRepository(path)

	// corrupt ledger fails closed rather than silently resetting
	_, err := repo.Get(ctx, "alice")
	assert.Error(t, err)
	assert.Error(t, repo.Save(ctx, models.NewUser("alice", "hash")))
}
