package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bagdasarian/club-membership/internal/domain"
	"github.com/bagdasarian/club-membership/internal/logger"
	"github.com/bagdasarian/club-membership/internal/membership"
	"github.com/bagdasarian/club-membership/internal/repository"
)

type boardService struct {
	clubRepo  repository.ClubRepository
	boardRepo repository.BoardRepository
	postRepo  repository.PostRepository
	log       *logger.Logger
}

// NewBoardService creates a BoardService whose every call is gated by the
// caller's role in the owning club.
func NewBoardService(
	clubRepo repository.ClubRepository,
	boardRepo repository.BoardRepository,
	postRepo repository.PostRepository,
	log *logger.Logger,
) BoardService {
	return &boardService{
		clubRepo:  clubRepo,
		boardRepo: boardRepo,
		postRepo:  postRepo,
		log:       log,
	}
}

func (s *boardService) CreateBoard(ctx context.Context, clubID, actorID, name, description string) (*domain.Board, error) {
	if err := s.authorize(ctx, clubID, actorID, membership.CanManageBoards); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewBadRequestError("board name is required")
	}

	board := &domain.Board{
		ID:          uuid.NewString(),
		ClubID:      clubID,
		Name:        name,
		Description: description,
		CreatedBy:   actorID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.boardRepo.Create(ctx, board); err != nil {
		return nil, err
	}

	s.log.WithClub(clubID).Info("board created", "board_id", board.ID, "actor_id", actorID)
	return board, nil
}

func (s *boardService) ListBoards(ctx context.Context, clubID, actorID string) ([]*domain.Board, error) {
	if err := s.authorize(ctx, clubID, actorID, membership.CanReadBoards); err != nil {
		return nil, err
	}
	return s.boardRepo.ListByClubID(ctx, clubID)
}

func (s *boardService) UpdateBoard(ctx context.Context, clubID, boardID, actorID, name, description string) (*domain.Board, error) {
	if err := s.authorize(ctx, clubID, actorID, membership.CanManageBoards); err != nil {
		return nil, err
	}
	board, err := s.boardInClub(ctx, clubID, boardID)
	if err != nil {
		return nil, err
	}

	if name = strings.TrimSpace(name); name != "" {
		board.Name = name
	}
	board.Description = description
	now := time.Now().UTC()
	board.UpdatedAt = &now

	if err := s.boardRepo.Update(ctx, board); err != nil {
		return nil, err
	}
	return board, nil
}

func (s *boardService) DeleteBoard(ctx context.Context, clubID, boardID, actorID string) error {
	if err := s.authorize(ctx, clubID, actorID, membership.CanManageBoards); err != nil {
		return err
	}
	if _, err := s.boardInClub(ctx, clubID, boardID); err != nil {
		return err
	}
	if err := s.boardRepo.Delete(ctx, boardID); err != nil {
		return err
	}

	s.log.WithClub(clubID).Info("board deleted", "board_id", boardID, "actor_id", actorID)
	return nil
}

func (s *boardService) CreatePost(ctx context.Context, clubID, boardID, actorID, title, content string) (*domain.Post, error) {
	if err := s.authorize(ctx, clubID, actorID, membership.CanPost); err != nil {
		return nil, err
	}
	if _, err := s.boardInClub(ctx, clubID, boardID); err != nil {
		return nil, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.NewBadRequestError("post title is required")
	}

	post := &domain.Post{
		ID:        uuid.NewString(),
		BoardID:   boardID,
		ClubID:    clubID,
		AuthorID:  actorID,
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *boardService) ListPosts(ctx context.Context, clubID, boardID, actorID string) ([]*domain.Post, error) {
	if err := s.authorize(ctx, clubID, actorID, membership.CanReadBoards); err != nil {
		return nil, err
	}
	if _, err := s.boardInClub(ctx, clubID, boardID); err != nil {
		return nil, err
	}
	return s.postRepo.ListByBoardID(ctx, boardID)
}

func (s *boardService) UpdatePost(ctx context.Context, clubID, postID, actorID, title, content string) (*domain.Post, error) {
	post, err := s.modifiablePost(ctx, clubID, postID, actorID)
	if err != nil {
		return nil, err
	}

	if title = strings.TrimSpace(title); title != "" {
		post.Title = title
	}
	post.Content = content
	now := time.Now().UTC()
	post.UpdatedAt = &now

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *boardService) DeletePost(ctx context.Context, clubID, postID, actorID string) error {
	if _, err := s.modifiablePost(ctx, clubID, postID, actorID); err != nil {
		return err
	}
	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return err
	}

	s.log.WithClub(clubID).Info("post deleted", "post_id", postID, "actor_id", actorID)
	return nil
}

// authorize loads the club and checks the actor's role against allowed.
func (s *boardService) authorize(ctx context.Context, clubID, actorID string, allowed func(domain.Role) bool) error {
	if actorID == "" {
		return domain.ErrUnauthenticated
	}
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return err
	}
	if !allowed(membership.ResolveRole(club, actorID)) {
		return domain.ErrInsufficientRole
	}
	return nil
}

func (s *boardService) boardInClub(ctx context.Context, clubID, boardID string) (*domain.Board, error) {
	board, err := s.boardRepo.GetByID(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if board.ClubID != clubID {
		return nil, domain.NewNotFoundError("board with id " + boardID)
	}
	return board, nil
}

func (s *boardService) modifiablePost(ctx context.Context, clubID, postID, actorID string) (*domain.Post, error) {
	if actorID == "" {
		return nil, domain.ErrUnauthenticated
	}
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.ClubID != clubID {
		return nil, domain.NewNotFoundError("post with id " + postID)
	}
	if !membership.CanModifyPost(club, actorID, post) {
		return nil, domain.ErrInsufficientRole
	}
	return post, nil
}
