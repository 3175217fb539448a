package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-lesson-planner/internal/credentials"
	"github.com/sbilibin2017/gw-lesson-planner/internal/database"
	"github.com/sbilibin2017/gw-lesson-planner/internal/logger"
	"github.com/sbilibin2017/gw-lesson-planner/internal/models"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username string, passwordHash string) (int64, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
	}
}

// Register creates a user and returns its id. Duplicate usernames are
// resolved by the storage unique constraint and reported as ErrUserAlreadyExists.
func (svc *AuthService) Register(ctx context.Context, req models.RegisterRequest) (int64, error) {
	if err := validateRequest(req); err != nil {
		return 0, err
	}

	hash, err := credentials.Hash(req.Password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return 0, err
	}

	userID, err := svc.writer.Save(ctx, req.Username, hash)
	if errors.Is(err, database.ErrUniqueViolation) {
		logger.Log.Infow("username taken", "username", req.Username)
		return 0, ErrUserAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return 0, err
	}

	return userID, nil
}

// Login verifies the credentials and returns the user id. Unknown usernames
// and wrong passwords yield the same ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, req models.LoginRequest) (int64, error) {
	if err := validateRequest(req); err != nil {
		return 0, err
	}

	user, err := svc.reader.GetByUsername(ctx, req.Username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return 0, err
	}
	if user == nil || !credentials.Verify(req.Password, user.PasswordHash) {
		logger.Log.Infow("invalid credentials", "username", req.Username)
		return 0, ErrInvalidCredentials
	}

	return user.ID, nil
}
