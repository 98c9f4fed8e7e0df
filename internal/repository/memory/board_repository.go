package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/bagdasarian/club-membership/internal/domain"
)

type BoardRepository struct {
	boards map[string]domain.Board
	mu     sync.RWMutex
}

func NewBoardRepository() *BoardRepository {
	return &BoardRepository{
		boards: make(map[string]domain.Board),
	}
}

func (r *BoardRepository) Create(ctx context.Context, board *domain.Board) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.boards[board.ID] = *board
	return nil
}

func (r *BoardRepository) GetByID(ctx context.Context, id string) (*domain.Board, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	board, ok := r.boards[id]
	if !ok {
		return nil, domain.NewNotFoundError("board with id " + id)
	}
	return &board, nil
}

func (r *BoardRepository) Update(ctx context.Context, board *domain.Board) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.boards[board.ID]; !ok {
		return domain.NewNotFoundError("board with id " + board.ID)
	}
	r.boards[board.ID] = *board
	return nil
}

func (r *BoardRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.boards[id]; !ok {
		return domain.NewNotFoundError("board with id " + id)
	}
	delete(r.boards, id)
	return nil
}

func (r *BoardRepository) ListByClubID(ctx context.Context, clubID string) ([]*domain.Board, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Board, 0)
	for _, board := range r.boards {
		if board.ClubID == clubID {
			b := board
			result = append(result, &b)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

type PostRepository struct {
	posts map[string]domain.Post
	mu    sync.RWMutex
}

func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts: make(map[string]domain.Post),
	}
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts[post.ID] = *post
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	post, ok := r.posts[id]
	if !ok {
		return nil, domain.NewNotFoundError("post with id " + id)
	}
	return &post, nil
}

func (r *PostRepository) Update(ctx context.Context, post *domain.Post) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[post.ID]; !ok {
		return domain.NewNotFoundError("post with id " + post.ID)
	}
	r.posts[post.ID] = *post
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[id]; !ok {
		return domain.NewNotFoundError("post with id " + id)
	}
	delete(r.posts, id)
	return nil
}

func (r *PostRepository) ListByBoardID(ctx context.Context, boardID string) ([]*domain.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Post, 0)
	for _, post := range r.posts {
		if post.BoardID == boardID {
			p := post
			result = append(result, &p)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}
