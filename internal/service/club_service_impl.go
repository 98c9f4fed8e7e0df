package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bagdasarian/club-membership/internal/domain"
	"github.com/bagdasarian/club-membership/internal/logger"
	"github.com/bagdasarian/club-membership/internal/membership"
	"github.com/bagdasarian/club-membership/internal/repository"
)

type clubService struct {
	clubRepo  repository.ClubRepository
	authority *membership.Authority
	log       *logger.Logger
	retries   int
}

// transition is one Authority decision applied to a loaded snapshot.
type transition func(club *domain.Club) (*domain.Club, error)

// NewClubService creates a ClubService. retries is the number of attempts a
// mutation gets when storage reports a concurrent write.
func NewClubService(clubRepo repository.ClubRepository, authority *membership.Authority, log *logger.Logger, retries int) ClubService {
	if retries < 1 {
		retries = 1
	}
	return &clubService{
		clubRepo:  clubRepo,
		authority: authority,
		log:       log,
		retries:   retries,
	}
}

// CreateClub creates an active club owned by ownerID with an empty roster.
func (s *clubService) CreateClub(ctx context.Context, ownerID, name, description string, isPrivate bool) (*domain.Club, error) {
	if ownerID == "" {
		return nil, domain.ErrUnauthenticated
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewBadRequestError("club name is required")
	}

	club := &domain.Club{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		OwnerID:     ownerID,
		Members:     make(map[string]domain.MemberRecord),
		IsPrivate:   isPrivate,
		IsActive:    true,
		Version:     1,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.clubRepo.Create(ctx, club); err != nil {
		return nil, err
	}

	s.log.WithClub(club.ID).Audit("club created", "owner_id", ownerID, "is_private", isPrivate)
	return club, nil
}

func (s *clubService) GetClub(ctx context.Context, clubID string) (*domain.Club, error) {
	return s.clubRepo.GetByID(ctx, clubID)
}

func (s *clubService) ListUserClubs(ctx context.Context, userID string) ([]*domain.Club, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	return s.clubRepo.ListByUser(ctx, userID)
}

// ResolveRole reads a snapshot without any locking; a slightly stale answer is acceptable.
func (s *clubService) ResolveRole(ctx context.Context, clubID, userID string) (domain.Role, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return "", err
	}
	return membership.ResolveRole(club, userID), nil
}

// SetActive toggles the club's active flag. It is the only mutation that
// is accepted on an inactive club.
func (s *clubService) SetActive(ctx context.Context, clubID, actorID string, active bool) (*domain.Club, error) {
	return s.mutate(ctx, clubID, "set_active", actorID, "", false, func(club *domain.Club) (*domain.Club, error) {
		if membership.ResolveRole(club, actorID) != domain.RoleOwner {
			return nil, domain.ErrInsufficientRole
		}
		next := club.Clone()
		next.IsActive = active
		return next, nil
	})
}

func (s *clubService) DeleteClub(ctx context.Context, clubID, actorID string) error {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return err
	}
	if membership.ResolveRole(club, actorID) != domain.RoleOwner {
		return domain.ErrInsufficientRole
	}
	if err := s.clubRepo.Delete(ctx, clubID); err != nil {
		return err
	}

	s.log.WithClub(clubID).Audit("club deleted", "actor_id", actorID)
	return nil
}

func (s *clubService) Join(ctx context.Context, clubID, userID string) (*domain.Club, error) {
	return s.mutate(ctx, clubID, "join", userID, "", true, func(club *domain.Club) (*domain.Club, error) {
		return s.authority.Join(club, userID)
	})
}

func (s *clubService) Leave(ctx context.Context, clubID, userID string) (*domain.Club, error) {
	return s.mutate(ctx, clubID, "leave", userID, "", true, func(club *domain.Club) (*domain.Club, error) {
		return s.authority.Leave(club, userID)
	})
}

func (s *clubService) Approve(ctx context.Context, clubID, actorID, targetID string) (*domain.Club, error) {
	return s.mutate(ctx, clubID, "approve", actorID, targetID, true, func(club *domain.Club) (*domain.Club, error) {
		return s.authority.Approve(club, actorID, targetID)
	})
}

func (s *clubService) Reject(ctx context.Context, clubID, actorID, targetID string) (*domain.Club, error) {
	return s.mutate(ctx, clubID, "reject", actorID, targetID, true, func(club *domain.Club) (*domain.Club, error) {
		return s.authority.Reject(club, actorID, targetID)
	})
}

func (s *clubService) Kick(ctx context.Context, clubID, actorID, targetID string) (*domain.Club, error) {
	return s.mutate(ctx, clubID, "kick", actorID, targetID, true, func(club *domain.Club) (*domain.Club, error) {
		return s.authority.Kick(club, actorID, targetID)
	})
}

func (s *clubService) Promote(ctx context.Context, clubID, actorID, targetID string) (*domain.Club, error) {
	return s.mutate(ctx, clubID, "promote", actorID, targetID, true, func(club *domain.Club) (*domain.Club, error) {
		return s.authority.Promote(club, actorID, targetID)
	})
}

func (s *clubService) Demote(ctx context.Context, clubID, actorID, targetID string) (*domain.Club, error) {
	return s.mutate(ctx, clubID, "demote", actorID, targetID, true, func(club *domain.Club) (*domain.Club, error) {
		return s.authority.Demote(club, actorID, targetID)
	})
}

func (s *clubService) TransferOwnership(ctx context.Context, clubID, actorID, newOwnerID string) (*domain.Club, error) {
	return s.mutate(ctx, clubID, "transfer_ownership", actorID, newOwnerID, true, func(club *domain.Club) (*domain.Club, error) {
		return s.authority.TransferOwnership(club, actorID, newOwnerID)
	})
}

// mutate loads the club, applies apply and saves the result under the
// loaded version. A version conflict restarts the cycle from a fresh read;
// any other error, including every Authority rejection, is returned as is.
func (s *clubService) mutate(
	ctx context.Context,
	clubID, op, actorID, targetID string,
	requireActive bool,
	apply transition,
) (*domain.Club, error) {
	if actorID == "" {
		return nil, domain.ErrUnauthenticated
	}
	log := s.log.WithClub(clubID)

	for attempt := 1; attempt <= s.retries; attempt++ {
		club, err := s.clubRepo.GetByID(ctx, clubID)
		if err != nil {
			return nil, err
		}
		if requireActive && !club.IsActive {
			return nil, domain.ErrClubInactive
		}

		next, err := apply(club)
		if err != nil {
			log.Debug("transition rejected", "op", op, "actor_id", actorID, "target_id", targetID, "error", err)
			return nil, err
		}

		err = s.clubRepo.Update(ctx, next, club.Version)
		if errors.Is(err, domain.ErrVersionConflict) {
			log.Warn("concurrent club update, retrying", "op", op, "attempt", attempt)
			continue
		}
		if err != nil {
			return nil, err
		}

		log.Audit("club roster changed",
			"op", op,
			"actor_id", actorID,
			"target_id", targetID,
			"owner_id", next.OwnerID,
			"version", next.Version,
		)
		return next, nil
	}

	log.Error("giving up after concurrent updates", "op", op, "attempts", s.retries)
	return nil, domain.ErrVersionConflict
}
