package repository

import (
	"context"

	"github.com/bagdasarian/club-membership/internal/domain"
)

type BoardRepository interface {
	Create(ctx context.Context, board *domain.Board) error
	GetByID(ctx context.Context, id string) (*domain.Board, error)
	Update(ctx context.Context, board *domain.Board) error
	Delete(ctx context.Context, id string) error
	ListByClubID(ctx context.Context, clubID string) ([]*domain.Board, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id string) (*domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id string) error
	ListByBoardID(ctx context.Context, boardID string) ([]*domain.Post, error)
}
