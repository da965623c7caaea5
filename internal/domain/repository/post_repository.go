package repository

import (
	"context"

	"blog-gateway/internal/domain/entity"
)

// PostRepository defines post persistence for the post store tier.
type PostRepository interface {
	List(ctx context.Context) ([]entity.Post, error)
	ListByUser(ctx context.Context, userID int64) ([]entity.Post, error)
	GetByID(ctx context.Context, id int64) (*entity.Post, error)
	Create(ctx context.Context, p *entity.Post) error
	Delete(ctx context.Context, id int64) error
}
