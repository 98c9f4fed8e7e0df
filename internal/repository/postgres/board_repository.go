package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bagdasarian/club-membership/internal/domain"
)

type boardRepository struct {
	executor DBExecutor
}

func NewBoardRepository(db *sql.DB) *boardRepository {
	return &boardRepository{executor: db}
}

func (r *boardRepository) Create(ctx context.Context, board *domain.Board) error {
	query := `
		INSERT INTO boards (id, club_id, name, description, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.executor.ExecContext(
		ctx,
		query,
		board.ID,
		board.ClubID,
		board.Name,
		board.Description,
		board.CreatedBy,
		board.CreatedAt,
	)
	return err
}

func (r *boardRepository) GetByID(ctx context.Context, id string) (*domain.Board, error) {
	query := `
		SELECT id, club_id, name, description, created_by, created_at, updated_at
		FROM boards
		WHERE id = $1
	`
	board := &domain.Board{}
	var updatedAt sql.NullTime
	err := r.executor.QueryRowContext(ctx, query, id).Scan(
		&board.ID,
		&board.ClubID,
		&board.Name,
		&board.Description,
		&board.CreatedBy,
		&board.CreatedAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("board with id " + id)
	}
	if err != nil {
		return nil, err
	}
	board.UpdatedAt = nullTimePtr(updatedAt)
	return board, nil
}

func (r *boardRepository) Update(ctx context.Context, board *domain.Board) error {
	query := `
		UPDATE boards
		SET name = $2, description = $3, updated_at = $4
		WHERE id = $1
	`
	result, err := r.executor.ExecContext(ctx, query, board.ID, board.Name, board.Description, board.UpdatedAt)
	if err != nil {
		return err
	}
	return expectOneRow(result, "board with id "+board.ID)
}

func (r *boardRepository) Delete(ctx context.Context, id string) error {
	result, err := r.executor.ExecContext(ctx, "DELETE FROM boards WHERE id = $1", id)
	if err != nil {
		return err
	}
	return expectOneRow(result, "board with id "+id)
}

func (r *boardRepository) ListByClubID(ctx context.Context, clubID string) ([]*domain.Board, error) {
	query := `
		SELECT id, club_id, name, description, created_by, created_at, updated_at
		FROM boards
		WHERE club_id = $1
		ORDER BY created_at
	`
	rows, err := r.executor.QueryContext(ctx, query, clubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	boards := make([]*domain.Board, 0)
	for rows.Next() {
		board := &domain.Board{}
		var updatedAt sql.NullTime
		if err := rows.Scan(
			&board.ID,
			&board.ClubID,
			&board.Name,
			&board.Description,
			&board.CreatedBy,
			&board.CreatedAt,
			&updatedAt,
		); err != nil {
			return nil, err
		}
		board.UpdatedAt = nullTimePtr(updatedAt)
		boards = append(boards, board)
	}
	return boards, rows.Err()
}

func expectOneRow(result sql.Result, resource string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError(resource)
	}
	return nil
}
