package membership

import (
	"errors"
	"testing"
	"time"

	"github.com/bagdasarian/club-membership/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	joinedEarlier = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	fixedNow      = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
)

func newTestAuthority() *Authority {
	return NewAuthorityWithClock(func() time.Time { return fixedNow })
}

// newClub builds an active club owned by u0 with the given roster.
func newClub(isPrivate bool, records ...domain.MemberRecord) *domain.Club {
	club := &domain.Club{
		ID:        "club-1",
		Name:      "Chess",
		OwnerID:   "u0",
		Members:   make(map[string]domain.MemberRecord),
		IsPrivate: isPrivate,
		IsActive:  true,
		Version:   1,
	}
	for _, rec := range records {
		club.Members[rec.UserID] = rec
	}
	return club
}

func rec(userID string, role domain.Role) domain.MemberRecord {
	return domain.MemberRecord{UserID: userID, Role: role, JoinedAt: joinedEarlier}
}

func TestResolveRole(t *testing.T) {
	club := newClub(false,
		rec("admin", domain.RoleAdmin),
		rec("member", domain.RoleMember),
		rec("pending", domain.RolePending),
	)

	tests := []struct {
		name   string
		userID string
		want   domain.Role
	}{
		{name: "owner", userID: "u0", want: domain.RoleOwner},
		{name: "admin", userID: "admin", want: domain.RoleAdmin},
		{name: "member", userID: "member", want: domain.RoleMember},
		{name: "pending", userID: "pending", want: domain.RolePending},
		{name: "stranger", userID: "nobody", want: domain.RoleNonMember},
		{name: "empty id", userID: "", want: domain.RoleNonMember},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveRole(club, tt.userID))
		})
	}

	t.Run("nil club", func(t *testing.T) {
		assert.Equal(t, domain.RoleNonMember, ResolveRole(nil, "u0"))
	})

	t.Run("owner wins over a stale record", func(t *testing.T) {
		stale := newClub(false, rec("u0", domain.RoleMember))
		assert.Equal(t, domain.RoleOwner, ResolveRole(stale, "u0"))
	})
}

func TestAuthority_Join(t *testing.T) {
	a := newTestAuthority()

	t.Run("private club yields pending", func(t *testing.T) {
		club := newClub(true)

		next, err := a.Join(club, "u1")

		require.NoError(t, err)
		assert.Equal(t, domain.RolePending, next.Members["u1"].Role)
		assert.Equal(t, fixedNow, next.Members["u1"].JoinedAt)
		assert.Empty(t, club.Members, "input snapshot must not change")
	})

	t.Run("public club yields member", func(t *testing.T) {
		next, err := a.Join(newClub(false), "u1")

		require.NoError(t, err)
		assert.Equal(t, domain.RoleMember, next.Members["u1"].Role)
	})

	t.Run("second join is rejected", func(t *testing.T) {
		for _, private := range []bool{true, false} {
			next, err := a.Join(newClub(private), "u1")
			require.NoError(t, err)

			again, err := a.Join(next, "u1")
			assert.Nil(t, again)
			assert.True(t, errors.Is(err, domain.ErrAlreadyMemberOrPending))
		}
	})

	t.Run("owner cannot join", func(t *testing.T) {
		_, err := a.Join(newClub(false), "u0")
		assert.True(t, errors.Is(err, domain.ErrAlreadyOwner))
	})

	t.Run("inactive club", func(t *testing.T) {
		club := newClub(false)
		club.IsActive = false

		_, err := a.Join(club, "u1")
		assert.True(t, errors.Is(err, domain.ErrClubInactive))
	})
}

func TestAuthority_Leave(t *testing.T) {
	a := newTestAuthority()

	tests := []struct {
		name    string
		userID  string
		wantErr error
	}{
		{name: "member leaves", userID: "member"},
		{name: "admin leaves", userID: "admin"},
		{name: "pending withdraws", userID: "pending"},
		{name: "owner cannot leave", userID: "u0", wantErr: domain.ErrOwnerCannotLeave},
		{name: "stranger", userID: "nobody", wantErr: domain.ErrNotAMember},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			club := newClub(true,
				rec("admin", domain.RoleAdmin),
				rec("member", domain.RoleMember),
				rec("pending", domain.RolePending),
			)

			next, err := a.Leave(club, tt.userID)

			if tt.wantErr != nil {
				assert.Nil(t, next)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.NotContains(t, next.Members, tt.userID)
			assert.Contains(t, club.Members, tt.userID)
		})
	}
}

func TestAuthority_ApproveReject(t *testing.T) {
	a := newTestAuthority()
	roster := func() *domain.Club {
		return newClub(true,
			rec("admin", domain.RoleAdmin),
			rec("member", domain.RoleMember),
			rec("pending", domain.RolePending),
		)
	}

	t.Run("approve keeps joinedAt", func(t *testing.T) {
		next, err := a.Approve(roster(), "admin", "pending")

		require.NoError(t, err)
		assert.Equal(t, domain.RoleMember, next.Members["pending"].Role)
		assert.Equal(t, joinedEarlier, next.Members["pending"].JoinedAt)
	})

	t.Run("approve twice fails", func(t *testing.T) {
		next, err := a.Approve(roster(), "u0", "pending")
		require.NoError(t, err)

		_, err = a.Approve(next, "u0", "pending")
		assert.True(t, errors.Is(err, domain.ErrNoPendingRequest))
	})

	t.Run("reject removes the request", func(t *testing.T) {
		next, err := a.Reject(roster(), "u0", "pending")

		require.NoError(t, err)
		assert.NotContains(t, next.Members, "pending")
	})

	tests := []struct {
		name    string
		actor   string
		target  string
		wantErr error
	}{
		{name: "member cannot moderate", actor: "member", target: "pending", wantErr: domain.ErrInsufficientRole},
		{name: "pending cannot moderate", actor: "pending", target: "pending", wantErr: domain.ErrInsufficientRole},
		{name: "stranger cannot moderate", actor: "nobody", target: "pending", wantErr: domain.ErrInsufficientRole},
		{name: "target already member", actor: "u0", target: "member", wantErr: domain.ErrNoPendingRequest},
		{name: "target unknown", actor: "admin", target: "nobody", wantErr: domain.ErrNoPendingRequest},
	}

	for _, tt := range tests {
		t.Run("approve: "+tt.name, func(t *testing.T) {
			_, err := a.Approve(roster(), tt.actor, tt.target)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
		t.Run("reject: "+tt.name, func(t *testing.T) {
			_, err := a.Reject(roster(), tt.actor, tt.target)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestAuthority_Kick(t *testing.T) {
	a := newTestAuthority()

	tests := []struct {
		name    string
		actor   string
		target  string
		wantErr error
	}{
		{name: "owner kicks member", actor: "u0", target: "member"},
		{name: "owner kicks admin", actor: "u0", target: "admin"},
		{name: "admin kicks member", actor: "admin", target: "member"},
		{name: "admin cannot kick admin", actor: "admin", target: "admin2", wantErr: domain.ErrAdminCannotKickAdmin},
		{name: "admin cannot kick itself", actor: "admin", target: "admin", wantErr: domain.ErrAdminCannotKickAdmin},
		{name: "owner cannot be kicked by admin", actor: "admin", target: "u0", wantErr: domain.ErrCannotKickOwner},
		{name: "owner cannot kick itself", actor: "u0", target: "u0", wantErr: domain.ErrCannotKickOwner},
		{name: "member cannot kick", actor: "member", target: "member2", wantErr: domain.ErrInsufficientRole},
		{name: "member cannot kick owner", actor: "member", target: "u0", wantErr: domain.ErrInsufficientRole},
		{name: "pending target", actor: "u0", target: "pending", wantErr: domain.ErrTargetNotMember},
		{name: "unknown target", actor: "u0", target: "nobody", wantErr: domain.ErrTargetNotMember},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			club := newClub(true,
				rec("admin", domain.RoleAdmin),
				rec("admin2", domain.RoleAdmin),
				rec("member", domain.RoleMember),
				rec("member2", domain.RoleMember),
				rec("pending", domain.RolePending),
			)

			next, err := a.Kick(club, tt.actor, tt.target)

			if tt.wantErr != nil {
				assert.Nil(t, next)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.NotContains(t, next.Members, tt.target)
			assert.Len(t, next.Members, len(club.Members)-1)
		})
	}
}

func TestAuthority_PromoteDemote(t *testing.T) {
	a := newTestAuthority()
	roster := func() *domain.Club {
		return newClub(true,
			rec("admin", domain.RoleAdmin),
			rec("member", domain.RoleMember),
			rec("pending", domain.RolePending),
		)
	}

	t.Run("promote then demote restores member", func(t *testing.T) {
		club := roster()

		promoted, err := a.Promote(club, "u0", "member")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, promoted.Members["member"].Role)

		demoted, err := a.Demote(promoted, "u0", "member")
		require.NoError(t, err)
		assert.Equal(t, club.Members["member"], demoted.Members["member"])
	})

	t.Run("admin cannot promote or demote", func(t *testing.T) {
		_, err := a.Promote(roster(), "admin", "member")
		assert.True(t, errors.Is(err, domain.ErrInsufficientRole))

		_, err = a.Demote(roster(), "admin", "admin")
		assert.True(t, errors.Is(err, domain.ErrInsufficientRole))
	})

	eligibility := []struct {
		name   string
		target string
	}{
		{name: "pending", target: "pending"},
		{name: "stranger", target: "nobody"},
		{name: "owner", target: "u0"},
	}
	for _, tt := range eligibility {
		t.Run("promote not eligible: "+tt.name, func(t *testing.T) {
			_, err := a.Promote(roster(), "u0", tt.target)
			assert.True(t, errors.Is(err, domain.ErrTargetNotEligible))
		})
		t.Run("demote not eligible: "+tt.name, func(t *testing.T) {
			_, err := a.Demote(roster(), "u0", tt.target)
			assert.True(t, errors.Is(err, domain.ErrTargetNotEligible))
		})
	}

	t.Run("promote admin is not eligible", func(t *testing.T) {
		_, err := a.Promote(roster(), "u0", "admin")
		assert.True(t, errors.Is(err, domain.ErrTargetNotEligible))
	})

	t.Run("demote member is not eligible", func(t *testing.T) {
		_, err := a.Demote(roster(), "u0", "member")
		assert.True(t, errors.Is(err, domain.ErrTargetNotEligible))
	})
}

func TestAuthority_TransferOwnership(t *testing.T) {
	a := newTestAuthority()

	t.Run("admin becomes owner, old owner becomes admin", func(t *testing.T) {
		club := newClub(true, rec("u1", domain.RoleAdmin))
		before := club.MemberCount()

		next, err := a.TransferOwnership(club, "u0", "u1")

		require.NoError(t, err)
		assert.Equal(t, "u1", next.OwnerID)
		assert.NotContains(t, next.Members, "u1")
		assert.Equal(t, domain.MemberRecord{UserID: "u0", Role: domain.RoleAdmin, JoinedAt: fixedNow}, next.Members["u0"])
		assert.Equal(t, before, next.MemberCount())
		assert.Equal(t, "u0", club.OwnerID, "input snapshot must not change")
	})

	// Pending applicants are not excluded from receiving ownership. This is
	// kept permissive until product decides otherwise.
	t.Run("pending target is accepted", func(t *testing.T) {
		club := newClub(true, rec("u1", domain.RolePending))

		next, err := a.TransferOwnership(club, "u0", "u1")

		require.NoError(t, err)
		assert.Equal(t, "u1", next.OwnerID)
		assert.Equal(t, domain.RoleOwner, ResolveRole(next, "u1"))
		assert.Equal(t, domain.RoleAdmin, ResolveRole(next, "u0"))
	})

	t.Run("stale record of the outgoing owner is overwritten", func(t *testing.T) {
		club := newClub(false, rec("u0", domain.RoleMember), rec("u1", domain.RoleMember))

		next, err := a.TransferOwnership(club, "u0", "u1")

		require.NoError(t, err)
		assert.Len(t, next.Members, 1)
		assert.Equal(t, domain.RoleAdmin, next.Members["u0"].Role)
	})

	t.Run("only owner may transfer", func(t *testing.T) {
		club := newClub(false, rec("admin", domain.RoleAdmin), rec("u1", domain.RoleMember))

		_, err := a.TransferOwnership(club, "admin", "u1")
		assert.True(t, errors.Is(err, domain.ErrInsufficientRole))
	})

	t.Run("target must hold a record", func(t *testing.T) {
		_, err := a.TransferOwnership(newClub(false), "u0", "nobody")
		assert.True(t, errors.Is(err, domain.ErrTargetNotAMember))

		_, err = a.TransferOwnership(newClub(false), "u0", "u0")
		assert.True(t, errors.Is(err, domain.ErrTargetNotAMember))
	})
}

func TestAuthority_InactiveClubRejectsMutations(t *testing.T) {
	a := newTestAuthority()
	club := newClub(true,
		rec("admin", domain.RoleAdmin),
		rec("member", domain.RoleMember),
		rec("pending", domain.RolePending),
	)
	club.IsActive = false

	ops := map[string]func() (*domain.Club, error){
		"join":     func() (*domain.Club, error) { return a.Join(club, "new") },
		"leave":    func() (*domain.Club, error) { return a.Leave(club, "member") },
		"approve":  func() (*domain.Club, error) { return a.Approve(club, "u0", "pending") },
		"reject":   func() (*domain.Club, error) { return a.Reject(club, "u0", "pending") },
		"kick":     func() (*domain.Club, error) { return a.Kick(club, "u0", "member") },
		"promote":  func() (*domain.Club, error) { return a.Promote(club, "u0", "member") },
		"demote":   func() (*domain.Club, error) { return a.Demote(club, "u0", "admin") },
		"transfer": func() (*domain.Club, error) { return a.TransferOwnership(club, "u0", "member") },
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			next, err := op()
			assert.Nil(t, next)
			assert.True(t, errors.Is(err, domain.ErrClubInactive))
		})
	}

	assert.Equal(t, domain.RoleOwner, ResolveRole(club, "u0"), "reads still work")
}

func TestAuthority_Scenarios(t *testing.T) {
	a := newTestAuthority()
	club := newClub(true)

	// 1. private join, approval, count
	club, err := a.Join(club, "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.RolePending, ResolveRole(club, "u1"))

	club, err = a.Approve(club, "u0", "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleMember, ResolveRole(club, "u1"))
	assert.Equal(t, 2, club.MemberCount())

	// 2. promote u1, then u1 may not kick another admin
	club, err = a.Promote(club, "u0", "u1")
	require.NoError(t, err)
	club, err = a.Join(club, "u2")
	require.NoError(t, err)
	club, err = a.Approve(club, "u1", "u2")
	require.NoError(t, err)
	withSecondAdmin, err := a.Promote(club, "u0", "u2")
	require.NoError(t, err)

	_, err = a.Kick(withSecondAdmin, "u1", "u2")
	assert.True(t, errors.Is(err, domain.ErrAdminCannotKickAdmin))

	// 3. transfer to the admin u1
	club, err = a.Kick(withSecondAdmin, "u0", "u2")
	require.NoError(t, err)
	require.Equal(t, 2, club.MemberCount())

	club, err = a.TransferOwnership(club, "u0", "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", club.OwnerID)
	assert.Equal(t, domain.RoleAdmin, club.Members["u0"].Role)
	assert.NotContains(t, club.Members, "u1")
	assert.Equal(t, 2, club.MemberCount())

	// 4. the new owner cannot leave
	_, err = a.Leave(club, "u1")
	assert.True(t, errors.Is(err, domain.ErrOwnerCannotLeave))

	// 5. rejecting a user with no request
	_, err = a.Reject(club, "u1", "u3")
	assert.True(t, errors.Is(err, domain.ErrNoPendingRequest))
}
