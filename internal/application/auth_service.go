package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"blog-gateway/internal/domain/entity"
	"blog-gateway/internal/domain/repository"
	"blog-gateway/pkg/helpers"
)

var (
	// ErrUsernameNotFound and ErrInvalidCredentials stay distinct internally;
	// the HTTP layer collapses both into the same login redirect so remote
	// callers cannot enumerate usernames.
	ErrUsernameNotFound   = errors.New("username not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService implements the credential verification protocol and sign-up.
type AuthService struct {
	Repo   repository.CredentialRepository
	Logger *logrus.Logger
}

func NewAuthService(repo repository.CredentialRepository, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: repo, Logger: logger}
}

// Authenticate verifies a username/password pair against the credential
// store. Read-only: no session or side effect is created here.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	u, err := s.Repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUsernameNotFound
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	ok, err := helpers.CheckPassword(u.PasswordHash, password)
	if err != nil {
		// Malformed stored hash; never treated as a plain mismatch.
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("stored password hash unreadable")
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// SignUp hashes the password and creates the user. The existence pre-check
// only produces a friendlier error for the common case; the store's
// uniqueness constraint is the authority, so a concurrent duplicate insert
// still surfaces ErrDuplicateUsername.
func (s *AuthService) SignUp(ctx context.Context, username, password string) (*entity.User, error) {
	if _, err := s.Repo.FindByUsername(ctx, username); err == nil {
		return nil, repository.ErrDuplicateUsername
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.Repo.Create(ctx, username, hash)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, repository.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "username": u.Username}).Info("user created")
	return u, nil
}
