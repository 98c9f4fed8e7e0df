package repository

import (
	"context"

	"github.com/bagdasarian/club-membership/internal/domain"
)

type ClubRepository interface {
	Create(ctx context.Context, club *domain.Club) error
	GetByID(ctx context.Context, id string) (*domain.Club, error)
	// Update persists club only if the stored version still equals
	// expectedVersion, otherwise it returns domain.ErrVersionConflict and
	// leaves the stored club untouched. On success club.Version is bumped.
	Update(ctx context.Context, club *domain.Club, expectedVersion int) error
	Delete(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Club, error)
}
