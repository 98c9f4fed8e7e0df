package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bagdasarian/club-membership/internal/domain"
)

type postRepository struct {
	executor DBExecutor
}

func NewPostRepository(db *sql.DB) *postRepository {
	return &postRepository{executor: db}
}

func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO posts (id, board_id, club_id, author_id, title, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.executor.ExecContext(
		ctx,
		query,
		post.ID,
		post.BoardID,
		post.ClubID,
		post.AuthorID,
		post.Title,
		post.Content,
		post.CreatedAt,
	)
	return err
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	query := `
		SELECT id, board_id, club_id, author_id, title, content, created_at, updated_at
		FROM posts
		WHERE id = $1
	`
	post := &domain.Post{}
	var updatedAt sql.NullTime
	err := r.executor.QueryRowContext(ctx, query, id).Scan(
		&post.ID,
		&post.BoardID,
		&post.ClubID,
		&post.AuthorID,
		&post.Title,
		&post.Content,
		&post.CreatedAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("post with id " + id)
	}
	if err != nil {
		return nil, err
	}
	post.UpdatedAt = nullTimePtr(updatedAt)
	return post, nil
}

func (r *postRepository) Update(ctx context.Context, post *domain.Post) error {
	query := `
		UPDATE posts
		SET title = $2, content = $3, updated_at = $4
		WHERE id = $1
	`
	result, err := r.executor.ExecContext(ctx, query, post.ID, post.Title, post.Content, post.UpdatedAt)
	if err != nil {
		return err
	}
	return expectOneRow(result, "post with id "+post.ID)
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	result, err := r.executor.ExecContext(ctx, "DELETE FROM posts WHERE id = $1", id)
	if err != nil {
		return err
	}
	return expectOneRow(result, "post with id "+id)
}

func (r *postRepository) ListByBoardID(ctx context.Context, boardID string) ([]*domain.Post, error) {
	query := `
		SELECT id, board_id, club_id, author_id, title, content, created_at, updated_at
		FROM posts
		WHERE board_id = $1
		ORDER BY created_at
	`
	rows, err := r.executor.QueryContext(ctx, query, boardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]*domain.Post, 0)
	for rows.Next() {
		post := &domain.Post{}
		var updatedAt sql.NullTime
		if err := rows.Scan(
			&post.ID,
			&post.BoardID,
			&post.ClubID,
			&post.AuthorID,
			&post.Title,
			&post.Content,
			&post.CreatedAt,
			&updatedAt,
		); err != nil {
			return nil, err
		}
		post.UpdatedAt = nullTimePtr(updatedAt)
		posts = append(posts, post)
	}
	return posts, rows.Err()
}
