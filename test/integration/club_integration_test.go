//go:build integration
// +build integration

package integration

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/bagdasarian/club-membership/internal/domain"
	"github.com/bagdasarian/club-membership/internal/logger"
	"github.com/bagdasarian/club-membership/internal/membership"
	"github.com/bagdasarian/club-membership/internal/repository/postgres"
	"github.com/bagdasarian/club-membership/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMembershipFlow(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	clubs := service.NewClubService(postgres.NewClubRepository(db), membership.NewAuthority(), logger.NewNop(), 3)

	club, err := clubs.CreateClub(ctx, "alice", "Climbing", "bouldering", true)
	require.NoError(t, err)

	_, err = clubs.Join(ctx, club.ID, "bob")
	require.NoError(t, err)
	role, err := clubs.ResolveRole(ctx, club.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, domain.RolePending, role)

	_, err = clubs.Approve(ctx, club.ID, "alice", "bob")
	require.NoError(t, err)
	_, err = clubs.Promote(ctx, club.ID, "alice", "bob")
	require.NoError(t, err)

	_, err = clubs.Join(ctx, club.ID, "carol")
	require.NoError(t, err)
	_, err = clubs.Approve(ctx, club.ID, "bob", "carol")
	require.NoError(t, err)

	_, err = clubs.Kick(ctx, club.ID, "carol", "bob")
	assert.True(t, errors.Is(err, domain.ErrInsufficientRole))

	transferred, err := clubs.TransferOwnership(ctx, club.ID, "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", transferred.OwnerID)

	stored, err := clubs.GetClub(ctx, club.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", stored.OwnerID)
	assert.NotContains(t, stored.Members, "bob")
	assert.Equal(t, domain.RoleAdmin, stored.Members["alice"].Role)
	assert.Equal(t, domain.RoleMember, stored.Members["carol"].Role)
	assert.Equal(t, 3, stored.MemberCount())

	mine, err := clubs.ListUserClubs(ctx, "carol")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, club.ID, mine[0].ID)
}

func TestConcurrentApproveAppliesOnce(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	clubs := service.NewClubService(postgres.NewClubRepository(db), membership.NewAuthority(), logger.NewNop(), 5)

	club, err := clubs.CreateClub(ctx, "alice", "Chess", "", true)
	require.NoError(t, err)
	_, err = clubs.Join(ctx, club.ID, "bob")
	require.NoError(t, err)
	_, err = clubs.Join(ctx, club.ID, "admin")
	require.NoError(t, err)
	_, err = clubs.Approve(ctx, club.ID, "alice", "admin")
	require.NoError(t, err)
	_, err = clubs.Promote(ctx, club.ID, "alice", "admin")
	require.NoError(t, err)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		failures  []error
	)
	for _, actor := range []string{"alice", "admin"} {
		wg.Add(1)
		go func(actor string) {
			defer wg.Done()
			_, err := clubs.Approve(ctx, club.ID, actor, "bob")
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
				return
			}
			failures = append(failures, err)
		}(actor)
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	for _, err := range failures {
		assert.True(t, errors.Is(err, domain.ErrNoPendingRequest), "unexpected error: %v", err)
	}

	stored, err := clubs.GetClub(ctx, club.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleMember, stored.Members["bob"].Role)
}

func TestBoardsAndPosts(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	log := logger.NewNop()

	clubRepo := postgres.NewClubRepository(db)
	clubs := service.NewClubService(clubRepo, membership.NewAuthority(), log, 3)
	boards := service.NewBoardService(clubRepo, postgres.NewBoardRepository(db), postgres.NewPostRepository(db), log)

	club, err := clubs.CreateClub(ctx, "alice", "Readers", "", false)
	require.NoError(t, err)
	_, err = clubs.Join(ctx, club.ID, "bob")
	require.NoError(t, err)

	board, err := boards.CreateBoard(ctx, club.ID, "alice", "General", "")
	require.NoError(t, err)

	post, err := boards.CreatePost(ctx, club.ID, board.ID, "bob", "Hello", "first")
	require.NoError(t, err)

	_, err = clubs.Leave(ctx, club.ID, "bob")
	require.NoError(t, err)

	_, err = boards.UpdatePost(ctx, club.ID, post.ID, "bob", "Edited", "")
	assert.True(t, errors.Is(err, domain.ErrInsufficientRole))

	posts, err := boards.ListPosts(ctx, club.ID, board.ID, "alice")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Hello", posts[0].Title)

	require.NoError(t, clubs.DeleteClub(ctx, club.ID, "alice"))
	_, err = boards.ListBoards(ctx, club.ID, "alice")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
