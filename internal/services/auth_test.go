package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/museum-guide/internal/models"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockUserReader(ctrl)
	writer := NewMockUserWriter(ctrl)
	tokens := NewMockTokenGenerator(ctrl)

	reader.EXPECT().Get(ctx, "alice").Return(nil, nil)
	writer.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, user *models.User) error {
		assert.Equal(t, "alice", user.Username)
		assert.NotEqual(t, "secret123", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
		assert.Empty(t, user.Wishlist)
		assert.Empty(t, user.VisitedLog)
		assert.Empty(t, user.ReviewDiary)
		assert.Empty(t, user.QuizScores)
		return nil
	})
	tokens.EXPECT().Generate(ctx, "alice").Return("token-123", nil)

	svc := NewAuthService(reader, writer, tokens)
	token, err := svc.Signup(ctx, "alice", "secret123")

	assert.NoError(t, err)
	assert.Equal(t, "token-123", token)
}

func TestAuthService_Signup_Validation(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No repository calls may happen for invalid input.
	reader := NewMockUserReader(ctrl)
	writer := NewMockUserWriter(ctrl)
	tokens := NewMockTokenGenerator(ctrl)

	svc := NewAuthService(reader, writer, tokens)

	// 2-char username rejected
	_, err := svc.Signup(ctx, "ab", "secret123")
	assert.ErrorIs(t, err, ErrUsernameTooShort)

	// 5-char password rejected
	_, err = svc.Signup(ctx, "alice", "12345")
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	// boundary values pass validation
	reader.EXPECT().Get(ctx, "abc").Return(nil, nil)
	writer.EXPECT().Save(ctx, gomock.Any()).Return(nil)
	tokens.EXPECT().Generate(ctx, "abc").Return("t", nil)
	_, err = svc.Signup(ctx, "abc", "123456")
	assert.NoError(t, err)
}

func TestAuthService_Signup_Errors(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockUserReader(ctrl)
	writer := NewMockUserWriter(ctrl)
	tokens := NewMockTokenGenerator(ctrl)

	svc := NewAuthService(reader, writer, tokens)

	// duplicate username
	reader.EXPECT().Get(ctx, "alice").Return(models.NewUser("alice", "hash"), nil)
	_, err := svc.Signup(ctx, "alice", "secret123")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	// ledger read failure
	reader.EXPECT().Get(ctx, "alice").Return(nil, errors.New("read error"))
	_, err = svc.Signup(ctx, "alice", "secret123")
	assert.EqualError(t, err, "read error")

	// ledger write failure
	reader.EXPECT().Get(ctx, "alice").Return(nil, nil)
	writer.EXPECT().Save(ctx, gomock.Any()).Return(errors.New("write error"))
	_, err = svc.Signup(ctx, "alice", "secret123")
	assert.EqualError(t, err, "write error")
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockUserReader(ctrl)
	writer := NewMockUserWriter(ctrl)
	tokens := NewMockTokenGenerator(ctrl)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	assert.NoError(t, err)
	user := models.NewUser("alice", string(hash))

	svc := NewAuthService(reader, writer, tokens)

	// successful login
	reader.EXPECT().Get(ctx, "alice").Return(user, nil)
	tokens.EXPECT().Generate(ctx, "alice").Return("token-456", nil)
	token, err := svc.Login(ctx, "alice", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, "token-456", token)

	// unknown username
	reader.EXPECT().Get(ctx, "bob").Return(nil, nil)
	_, err = svc.Login(ctx, "bob", "secret123")
	assert.ErrorIs(t, err, ErrUserDoesNotExist)

	// wrong password
	reader.EXPECT().Get(ctx, "alice").Return(user, nil)
	_, err = svc.Login(ctx, "alice", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
