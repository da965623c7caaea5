package repository

import (
	"context"
	"errors"

	"blog-gateway/internal/domain/entity"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrDuplicateUsername is raised by the store's uniqueness constraint.
	// The constraint, not any prior existence check, is the authority under
	// concurrent identical sign-ups.
	ErrDuplicateUsername = errors.New("username already exists")
)

// CredentialRepository defines credential persistence. Usernames are unique
// and case-sensitive; records are never mutated or deleted.
type CredentialRepository interface {
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	Create(ctx context.Context, username, passwordHash string) (*entity.User, error)
}
