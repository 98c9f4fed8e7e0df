package service

import (
	"context"

	"github.com/bagdasarian/club-membership/internal/domain"
)

type ClubService interface {
	CreateClub(ctx context.Context, ownerID, name, description string, isPrivate bool) (*domain.Club, error)
	GetClub(ctx context.Context, clubID string) (*domain.Club, error)
	ListUserClubs(ctx context.Context, userID string) ([]*domain.Club, error)
	ResolveRole(ctx context.Context, clubID, userID string) (domain.Role, error)
	SetActive(ctx context.Context, clubID, actorID string, active bool) (*domain.Club, error)
	DeleteClub(ctx context.Context, clubID, actorID string) error

	Join(ctx context.Context, clubID, userID string) (*domain.Club, error)
	Leave(ctx context.Context, clubID, userID string) (*domain.Club, error)
	Approve(ctx context.Context, clubID, actorID, targetID string) (*domain.Club, error)
	Reject(ctx context.Context, clubID, actorID, targetID string) (*domain.Club, error)
	Kick(ctx context.Context, clubID, actorID, targetID string) (*domain.Club, error)
	Promote(ctx context.Context, clubID, actorID, targetID string) (*domain.Club, error)
	Demote(ctx context.Context, clubID, actorID, targetID string) (*domain.Club, error)
	TransferOwnership(ctx context.Context, clubID, actorID, newOwnerID string) (*domain.Club, error)
}
