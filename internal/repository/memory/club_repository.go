package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/bagdasarian/club-membership/internal/domain"
)

type ClubRepository struct {
	clubs map[string]*domain.Club
	mu    sync.RWMutex
}

func NewClubRepository() *ClubRepository {
	return &ClubRepository{
		clubs: make(map[string]*domain.Club),
	}
}

func (r *ClubRepository) Create(ctx context.Context, club *domain.Club) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.clubs[club.ID]; exists {
		return domain.NewBadRequestError("club " + club.ID + " already exists")
	}
	r.clubs[club.ID] = club.Clone()
	return nil
}

func (r *ClubRepository) GetByID(ctx context.Context, id string) (*domain.Club, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	club, ok := r.clubs[id]
	if !ok {
		return nil, domain.NewNotFoundError("club with id " + id)
	}
	return club.Clone(), nil
}

// Update compares versions under the write lock, which serialises
// concurrent writers of the same club.
func (r *ClubRepository) Update(ctx context.Context, club *domain.Club, expectedVersion int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.clubs[club.ID]
	if !ok {
		return domain.NewNotFoundError("club with id " + club.ID)
	}
	if stored.Version != expectedVersion {
		return domain.ErrVersionConflict
	}

	now := time.Now().UTC()
	club.Version = expectedVersion + 1
	club.UpdatedAt = &now
	r.clubs[club.ID] = club.Clone()
	return nil
}

func (r *ClubRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.clubs[id]; !ok {
		return domain.NewNotFoundError("club with id " + id)
	}
	delete(r.clubs, id)
	return nil
}

func (r *ClubRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Club, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Club, 0)
	for _, club := range r.clubs {
		if _, ok := club.Members[userID]; ok || club.OwnerID == userID {
			result = append(result, club.Clone())
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}
