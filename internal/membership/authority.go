package membership

import (
	"time"

	"github.com/bagdasarian/club-membership/internal/domain"
)

// ResolveRole returns the effective role of userID in club.
// The owner is resolved from OwnerID before the roster is consulted.
func ResolveRole(club *domain.Club, userID string) domain.Role {
	if club == nil || userID == "" {
		return domain.RoleNonMember
	}
	if userID == club.OwnerID {
		return domain.RoleOwner
	}
	if rec, ok := club.Members[userID]; ok {
		return rec.Role
	}
	return domain.RoleNonMember
}

// Authority decides roster transitions. It never mutates the club it is
// given: every successful call returns a fresh copy carrying the changes,
// and every failed call returns nil.
type Authority struct {
	now func() time.Time
}

// NewAuthority creates an Authority stamping records with time.Now in UTC.
func NewAuthority() *Authority {
	return NewAuthorityWithClock(func() time.Time { return time.Now().UTC() })
}

func NewAuthorityWithClock(now func() time.Time) *Authority {
	return &Authority{now: now}
}

// Join adds userID to the roster as Pending for private clubs and Member otherwise.
func (a *Authority) Join(club *domain.Club, userID string) (*domain.Club, error) {
	if err := requireActive(club); err != nil {
		return nil, err
	}

	switch ResolveRole(club, userID) {
	case domain.RoleOwner:
		return nil, domain.ErrAlreadyOwner
	case domain.RoleAdmin, domain.RoleMember, domain.RolePending:
		return nil, domain.ErrAlreadyMemberOrPending
	case domain.RoleNonMember:
	}

	role := domain.RoleMember
	if club.IsPrivate {
		role = domain.RolePending
	}

	next := club.Clone()
	next.Members[userID] = domain.MemberRecord{
		UserID:   userID,
		Role:     role,
		JoinedAt: a.now(),
	}
	return next, nil
}

// Leave removes the caller's record. Pending applicants withdraw this way.
func (a *Authority) Leave(club *domain.Club, userID string) (*domain.Club, error) {
	if err := requireActive(club); err != nil {
		return nil, err
	}

	switch ResolveRole(club, userID) {
	case domain.RoleOwner:
		return nil, domain.ErrOwnerCannotLeave
	case domain.RoleNonMember:
		return nil, domain.ErrNotAMember
	case domain.RoleAdmin, domain.RoleMember, domain.RolePending:
	}

	next := club.Clone()
	delete(next.Members, userID)
	return next, nil
}

// Approve turns a Pending record into a Member record. JoinedAt is kept.
func (a *Authority) Approve(club *domain.Club, actorID, targetID string) (*domain.Club, error) {
	if err := requireActive(club); err != nil {
		return nil, err
	}
	if !ResolveRole(club, actorID).CanModerate() {
		return nil, domain.ErrInsufficientRole
	}

	rec, ok := club.Record(targetID)
	if !ok || rec.Role != domain.RolePending {
		return nil, domain.ErrNoPendingRequest
	}

	next := club.Clone()
	rec.Role = domain.RoleMember
	next.Members[targetID] = rec
	return next, nil
}

// Reject drops a Pending record.
func (a *Authority) Reject(club *domain.Club, actorID, targetID string) (*domain.Club, error) {
	if err := requireActive(club); err != nil {
		return nil, err
	}
	if !ResolveRole(club, actorID).CanModerate() {
		return nil, domain.ErrInsufficientRole
	}

	rec, ok := club.Record(targetID)
	if !ok || rec.Role != domain.RolePending {
		return nil, domain.ErrNoPendingRequest
	}

	next := club.Clone()
	delete(next.Members, targetID)
	return next, nil
}

// Kick removes a Member or Admin. Admins can only be removed by the owner.
func (a *Authority) Kick(club *domain.Club, actorID, targetID string) (*domain.Club, error) {
	if err := requireActive(club); err != nil {
		return nil, err
	}

	actorRole := ResolveRole(club, actorID)
	if !actorRole.CanModerate() {
		return nil, domain.ErrInsufficientRole
	}

	switch ResolveRole(club, targetID) {
	case domain.RoleOwner:
		return nil, domain.ErrCannotKickOwner
	case domain.RolePending, domain.RoleNonMember:
		return nil, domain.ErrTargetNotMember
	case domain.RoleAdmin:
		if actorRole != domain.RoleOwner {
			return nil, domain.ErrAdminCannotKickAdmin
		}
	case domain.RoleMember:
	}

	next := club.Clone()
	delete(next.Members, targetID)
	return next, nil
}

// Promote makes a plain Member an Admin. Owner only.
func (a *Authority) Promote(club *domain.Club, actorID, targetID string) (*domain.Club, error) {
	return a.changeRole(club, actorID, targetID, domain.RoleMember, domain.RoleAdmin)
}

// Demote makes an Admin a plain Member. Owner only.
func (a *Authority) Demote(club *domain.Club, actorID, targetID string) (*domain.Club, error) {
	return a.changeRole(club, actorID, targetID, domain.RoleAdmin, domain.RoleMember)
}

func (a *Authority) changeRole(club *domain.Club, actorID, targetID string, from, to domain.Role) (*domain.Club, error) {
	if err := requireActive(club); err != nil {
		return nil, err
	}
	if ResolveRole(club, actorID) != domain.RoleOwner {
		return nil, domain.ErrInsufficientRole
	}

	rec, ok := club.Record(targetID)
	if !ok || rec.Role != from {
		return nil, domain.ErrTargetNotEligible
	}

	next := club.Clone()
	rec.Role = to
	next.Members[targetID] = rec
	return next, nil
}

// TransferOwnership swaps the owner. The incoming owner loses their record
// and the outgoing owner gets a fresh Admin record, all in one value.
// Any record holder qualifies, Pending applicants included.
func (a *Authority) TransferOwnership(club *domain.Club, actorID, newOwnerID string) (*domain.Club, error) {
	if err := requireActive(club); err != nil {
		return nil, err
	}
	if ResolveRole(club, actorID) != domain.RoleOwner {
		return nil, domain.ErrInsufficientRole
	}
	if _, ok := club.Record(newOwnerID); !ok {
		return nil, domain.ErrTargetNotAMember
	}

	oldOwnerID := club.OwnerID

	next := club.Clone()
	next.OwnerID = newOwnerID
	delete(next.Members, newOwnerID)
	// overwrite, never duplicate, a stale record of the outgoing owner
	next.Members[oldOwnerID] = domain.MemberRecord{
		UserID:   oldOwnerID,
		Role:     domain.RoleAdmin,
		JoinedAt: a.now(),
	}
	return next, nil
}

func requireActive(club *domain.Club) error {
	if club == nil {
		return domain.NewNotFoundError("club")
	}
	if !club.IsActive {
		return domain.ErrClubInactive
	}
	return nil
}
