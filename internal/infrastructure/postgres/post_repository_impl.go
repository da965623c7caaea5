package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-gateway/internal/domain/entity"
	"blog-gateway/internal/domain/repository"
)

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

func (r *PostRepository) List(ctx context.Context) ([]entity.Post, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, content, author, date, user_id
		FROM posts
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	return scanPosts(rows)
}

func (r *PostRepository) ListByUser(ctx context.Context, userID int64) ([]entity.Post, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, content, author, date, user_id
		FROM posts
		WHERE user_id = $1
		ORDER BY id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list user posts: %w", err)
	}
	defer rows.Close()

	return scanPosts(rows)
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*entity.Post, error) {
	p := &entity.Post{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, title, content, author, date, user_id
		FROM posts
		WHERE id = $1
	`, id)

	if err := row.Scan(&p.ID, &p.Title, &p.Content, &p.Author, &p.Date, &p.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}

	return p, nil
}

func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO posts (title, content, author, date, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, p.Title, p.Content, p.Author, p.Date, p.UserID)

	if err := row.Scan(&p.ID); err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanPosts(rows pgx.Rows) ([]entity.Post, error) {
	posts := make([]entity.Post, 0)
	for rows.Next() {
		var p entity.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.Author, &p.Date, &p.UserID); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return posts, nil
}

var _ repository.PostRepository = (*PostRepository)(nil)
