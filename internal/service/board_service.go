package service

import (
	"context"

	"github.com/bagdasarian/club-membership/internal/domain"
)

type BoardService interface {
	CreateBoard(ctx context.Context, clubID, actorID, name, description string) (*domain.Board, error)
	ListBoards(ctx context.Context, clubID, actorID string) ([]*domain.Board, error)
	UpdateBoard(ctx context.Context, clubID, boardID, actorID, name, description string) (*domain.Board, error)
	DeleteBoard(ctx context.Context, clubID, boardID, actorID string) error

	CreatePost(ctx context.Context, clubID, boardID, actorID, title, content string) (*domain.Post, error)
	ListPosts(ctx context.Context, clubID, boardID, actorID string) ([]*domain.Post, error)
	UpdatePost(ctx context.Context, clubID, postID, actorID, title, content string) (*domain.Post, error)
	DeletePost(ctx context.Context, clubID, postID, actorID string) error
}
