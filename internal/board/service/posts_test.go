package service_test

import (
	"context"
	"testing"

	"github.com/driftboard/driftboard/internal/board/domain"
	"github.com/driftboard/driftboard/internal/board/service"
	"github.com/driftboard/driftboard/internal/board/store"
	"github.com/stretchr/testify/require"
)

type postFixture struct {
	store store.Store
	svc   *service.PostService
	board domain.Board
	alice domain.User
	bob   domain.User
	root  domain.User
}

func newPostFixture(t *testing.T) postFixture {
	t.Helper()

	st := newTestStore(t)
	boards := &service.BoardService{Store: st}

	f := postFixture{
		store: st,
		svc:   &service.PostService{Store: st},
		alice: seedUser(t, st, "alice", domain.RoleMember),
		bob:   seedUser(t, st, "bob", domain.RoleMember),
		root:  seedUser(t, st, "root", domain.RoleAdmin),
	}

	b, err := boards.Create(context.Background(), claimsFor(f.root), "general", "")
	require.NoError(t, err)
	f.board = b
	return f
}

func TestPostCreateSelfAttribution(t *testing.T) {
	t.Parallel()
	f := newPostFixture(t)
	ctx := context.Background()

	t.Run("member posts as itself", func(t *testing.T) {
		p, err := f.svc.Create(ctx, claimsFor(f.alice), f.board.ID, f.alice.ID, "hello", "first")
		require.NoError(t, err)
		require.Equal(t, f.alice.ID, p.AuthorID)
	})

	t.Run("member cannot post as someone else", func(t *testing.T) {
		_, err := f.svc.Create(ctx, claimsFor(f.alice), f.board.ID, f.bob.ID, "spoofed", "")
		require.ErrorIs(t, err, service.ErrUnauthorized)
	})

	t.Run("admin cannot spoof authorship either", func(t *testing.T) {
		_, err := f.svc.Create(ctx, claimsFor(f.root), f.board.ID, f.alice.ID, "spoofed", "")
		require.ErrorIs(t, err, service.ErrUnauthorized)
	})

	t.Run("missing title", func(t *testing.T) {
		_, err := f.svc.Create(ctx, claimsFor(f.alice), f.board.ID, f.alice.ID, "   ", "")
		require.ErrorIs(t, err, service.ErrInvalidInput)
	})

	t.Run("unknown board", func(t *testing.T) {
		_, err := f.svc.Create(ctx, claimsFor(f.alice), "01AN4Z07BY79KA1307SR9X4MV3", f.alice.ID, "lost", "")
		require.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestPostMutateOwnerOrAdmin(t *testing.T) {
	t.Parallel()
	f := newPostFixture(t)
	ctx := context.Background()

	p, err := f.svc.Create(ctx, claimsFor(f.alice), f.board.ID, f.alice.ID, "hello", "first")
	require.NoError(t, err)

	t.Run("stranger cannot update", func(t *testing.T) {
		_, err := f.svc.Update(ctx, claimsFor(f.bob), p.ID, "edited", "")
		require.ErrorIs(t, err, service.ErrUnauthorized)
	})

	t.Run("owner updates", func(t *testing.T) {
		updated, err := f.svc.Update(ctx, claimsFor(f.alice), p.ID, "edited", "second")
		require.NoError(t, err)
		require.Equal(t, "edited", updated.Title)
		require.Equal(t, "second", updated.Body)
	})

	t.Run("admin updates someone else's post", func(t *testing.T) {
		_, err := f.svc.Update(ctx, claimsFor(f.root), p.ID, "moderated", "")
		require.NoError(t, err)
	})

	t.Run("stranger cannot delete", func(t *testing.T) {
		err := f.svc.Delete(ctx, claimsFor(f.bob), p.ID)
		require.ErrorIs(t, err, service.ErrUnauthorized)
	})

	t.Run("admin deletes", func(t *testing.T) {
		require.NoError(t, f.svc.Delete(ctx, claimsFor(f.root), p.ID))
		_, err := f.svc.Get(ctx, p.ID)
		require.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("missing post", func(t *testing.T) {
		_, err := f.svc.Update(ctx, claimsFor(f.alice), "01AN4Z07BY79KA1307SR9X4MV3", "x", "")
		require.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestPostListFiltersByBoard(t *testing.T) {
	t.Parallel()
	f := newPostFixture(t)
	ctx := context.Background()

	boards := &service.BoardService{Store: f.store}
	other, err := boards.Create(ctx, claimsFor(f.root), "random", "")
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, claimsFor(f.alice), f.board.ID, f.alice.ID, "on general", "")
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, claimsFor(f.bob), other.ID, f.bob.ID, "on random", "")
	require.NoError(t, err)

	all, err := f.svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	filtered, err := f.svc.List(ctx, other.ID)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	require.Equal(t, "on random", filtered[0].Title)
}
