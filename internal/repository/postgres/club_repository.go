package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/bagdasarian/club-membership/internal/domain"
)

type clubRepository struct {
	db *sql.DB
}

func NewClubRepository(db *sql.DB) *clubRepository {
	return &clubRepository{db: db}
}

func (r *clubRepository) Create(ctx context.Context, club *domain.Club) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO clubs (id, name, description, owner_id, is_private, is_active, version, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = tx.ExecContext(
		ctx,
		query,
		club.ID,
		club.Name,
		club.Description,
		club.OwnerID,
		club.IsPrivate,
		club.IsActive,
		club.Version,
		club.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert club: %w", err)
	}

	if err := insertMembers(ctx, tx, club); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *clubRepository) GetByID(ctx context.Context, id string) (*domain.Club, error) {
	return getClub(ctx, r.db, id)
}

// Update runs the version check and the roster rewrite in one transaction,
// so a rejected write leaves both tables untouched.
func (r *clubRepository) Update(ctx context.Context, club *domain.Club, expectedVersion int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		UPDATE clubs
		SET name = $3, description = $4, owner_id = $5, is_private = $6, is_active = $7,
		    version = version + 1, updated_at = $8
		WHERE id = $1 AND version = $2
		RETURNING version
	`
	now := time.Now().UTC()
	var newVersion int
	err = tx.QueryRowContext(
		ctx,
		query,
		club.ID,
		expectedVersion,
		club.Name,
		club.Description,
		club.OwnerID,
		club.IsPrivate,
		club.IsActive,
		now,
	).Scan(&newVersion)
	if errors.Is(err, sql.ErrNoRows) {
		var exists bool
		if err := tx.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM clubs WHERE id = $1)", club.ID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.NewNotFoundError("club with id " + club.ID)
		}
		return domain.ErrVersionConflict
	}
	if err != nil {
		return fmt.Errorf("update club: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM club_members WHERE club_id = $1", club.ID); err != nil {
		return fmt.Errorf("clear roster: %w", err)
	}
	if err := insertMembers(ctx, tx, club); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	club.Version = newVersion
	club.UpdatedAt = &now
	return nil
}

func (r *clubRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM clubs WHERE id = $1", id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("club with id " + id)
	}
	return nil
}

func (r *clubRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Club, error) {
	query := `
		SELECT c.id
		FROM clubs c
		WHERE c.owner_id = $1
		   OR EXISTS (SELECT 1 FROM club_members m WHERE m.club_id = c.id AND m.user_id = $1)
		ORDER BY c.created_at
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	clubs := make([]*domain.Club, 0, len(ids))
	for _, id := range ids {
		club, err := getClub(ctx, r.db, id)
		if err != nil {
			return nil, err
		}
		clubs = append(clubs, club)
	}
	return clubs, nil
}

func getClub(ctx context.Context, executor DBExecutor, id string) (*domain.Club, error) {
	query := `
		SELECT id, name, description, owner_id, is_private, is_active, version, created_at, updated_at
		FROM clubs
		WHERE id = $1
	`
	club := &domain.Club{Members: make(map[string]domain.MemberRecord)}
	var updatedAt sql.NullTime
	err := executor.QueryRowContext(ctx, query, id).Scan(
		&club.ID,
		&club.Name,
		&club.Description,
		&club.OwnerID,
		&club.IsPrivate,
		&club.IsActive,
		&club.Version,
		&club.CreatedAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("club with id " + id)
	}
	if err != nil {
		return nil, err
	}
	club.UpdatedAt = nullTimePtr(updatedAt)

	rows, err := executor.QueryContext(ctx, "SELECT user_id, role, joined_at FROM club_members WHERE club_id = $1", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var rec domain.MemberRecord
		var role string
		if err := rows.Scan(&rec.UserID, &role, &rec.JoinedAt); err != nil {
			return nil, err
		}
		parsed, ok := domain.ParseRecordRole(role)
		if !ok {
			return nil, fmt.Errorf("club %s: unknown member role %q", id, role)
		}
		rec.Role = parsed
		club.Members[rec.UserID] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return club, nil
}

func insertMembers(ctx context.Context, executor DBExecutor, club *domain.Club) error {
	userIDs := make([]string, 0, len(club.Members))
	for userID := range club.Members {
		userIDs = append(userIDs, userID)
	}
	sort.Strings(userIDs)

	for _, userID := range userIDs {
		rec := club.Members[userID]
		_, err := executor.ExecContext(
			ctx,
			"INSERT INTO club_members (club_id, user_id, role, joined_at) VALUES ($1, $2, $3, $4)",
			club.ID,
			rec.UserID,
			string(rec.Role),
			rec.JoinedAt,
		)
		if err != nil {
			return fmt.Errorf("insert member %s: %w", userID, err)
		}
	}
	return nil
}
