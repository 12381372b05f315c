package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eventos-app/api/internal/domain/common/errorz"
	"github.com/eventos-app/api/internal/domain/entity"
	"github.com/eventos-app/api/internal/domain/utils/validator"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserStorage interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	Get(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

type sessionStorage interface {
	Set(ctx context.Context, token, userID string, expiration time.Duration) error
	Get(ctx context.Context, token string) (string, error)
	Clear(ctx context.Context, token string) error
}

type UserService struct {
	storage  UserStorage
	sessions sessionStorage

	sessionTTL time.Duration
}

func NewUserService(storage UserStorage, sessions sessionStorage, sessionTTL time.Duration) *UserService {
	return &UserService{
		storage:    storage,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

// Register creates an account for a new email/password pair.
func (s *UserService) Register(ctx context.Context, email, password string) (*entity.User, error) {
	if !validator.Email(email) {
		return nil, fmt.Errorf("%w: invalid email", errorz.ErrValidation)
	}
	if !validator.Password(password) {
		return nil, fmt.Errorf("%w: password too short", errorz.ErrValidation)
	}

	_, err := s.storage.GetByEmail(ctx, email)
	if err == nil {
		return nil, errorz.ErrEmailTaken
	}
	if !errors.Is(err, errorz.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return s.storage.Create(ctx, &entity.User{
		Email:        email,
		PasswordHash: string(hash),
	})
}

// Login verifies the credentials and opens a session, returning its token.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.storage.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errorz.ErrNotFound) {
			return "", errorz.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", errorz.ErrInvalidCredentials
	}

	token := uuid.NewString()
	if err = s.sessions.Set(ctx, token, user.ID, s.sessionTTL); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	return token, nil
}

// Logout drops the session for the given token.
func (s *UserService) Logout(ctx context.Context, token string) error {
	return s.sessions.Clear(ctx, token)
}

// CurrentUser resolves a session token to its user.
func (s *UserService) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	userID, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, errorz.ErrNotFound) {
			return nil, errorz.ErrUnauthorized
		}
		return nil, err
	}
	return s.storage.Get(ctx, userID)
}

// Get returns a user by id.
func (s *UserService) Get(ctx context.Context, id string) (*entity.User, error) {
	return s.storage.Get(ctx, id)
}
