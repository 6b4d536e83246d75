package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/driftboard/driftboard/internal/board/domain"
	"github.com/driftboard/driftboard/internal/board/service"
	"github.com/driftboard/driftboard/internal/board/store"
	"github.com/driftboard/driftboard/pkg/idx"
	"github.com/driftboard/driftboard/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func claimsFor(user domain.User) jwtx.Claims {
	return jwtx.NewClaims(user.ID, user.Username, user.Role.String(), testIssuer, time.Now().UTC())
}

func seedUser(t *testing.T, s store.Store, username string, role domain.Role) domain.User {
	t.Helper()

	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: "not-a-real-hash",
		Role:         role,
	}
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u
}

func TestUserCurrent(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	svc := &service.UserService{Store: st}
	ctx := context.Background()

	alice := seedUser(t, st, "alice", domain.RoleMember)

	t.Run("reflects the stored account", func(t *testing.T) {
		got, err := svc.Current(ctx, claimsFor(alice))
		require.NoError(t, err)
		require.Equal(t, alice.ID, got.ID)
		require.Equal(t, "alice", got.Username)
	})

	t.Run("role change lands without a new token", func(t *testing.T) {
		require.NoError(t, st.Users().UpdateUserRole(ctx, alice.ID, domain.RoleAdmin))

		got, err := svc.Current(ctx, claimsFor(alice))
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, got.Role)
	})

	t.Run("deleted account", func(t *testing.T) {
		ghost := seedUser(t, st, "ghost", domain.RoleMember)
		token := claimsFor(ghost)
		require.NoError(t, st.Users().DeleteUser(ctx, ghost.ID))

		_, err := svc.Current(ctx, token)
		require.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestUserAdminGating(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	svc := &service.UserService{Store: st}
	ctx := context.Background()

	admin := seedUser(t, st, "root", domain.RoleAdmin)
	member := seedUser(t, st, "mallory", domain.RoleMember)

	t.Run("member cannot create accounts", func(t *testing.T) {
		_, err := svc.Create(ctx, claimsFor(member), "newbie", "pw", domain.RoleMember)
		require.ErrorIs(t, err, service.ErrUnauthorized)
	})

	t.Run("member cannot list accounts", func(t *testing.T) {
		_, err := svc.List(ctx, claimsFor(member))
		require.ErrorIs(t, err, service.ErrUnauthorized)
	})

	t.Run("member cannot fetch another account", func(t *testing.T) {
		_, err := svc.Get(ctx, claimsFor(member), admin.ID)
		require.ErrorIs(t, err, service.ErrUnauthorized)
	})

	t.Run("member can fetch itself", func(t *testing.T) {
		got, err := svc.Get(ctx, claimsFor(member), member.ID)
		require.NoError(t, err)
		require.Equal(t, member.ID, got.ID)
	})

	t.Run("member cannot update or delete accounts", func(t *testing.T) {
		_, err := svc.Update(ctx, claimsFor(member), member.ID, domain.RoleAdmin, "")
		require.ErrorIs(t, err, service.ErrUnauthorized)

		err = svc.Delete(ctx, claimsFor(member), admin.ID)
		require.ErrorIs(t, err, service.ErrUnauthorized)
	})

	t.Run("admin full cycle", func(t *testing.T) {
		created, err := svc.Create(ctx, claimsFor(admin), "newbie", "pw", domain.RoleMember)
		require.NoError(t, err)

		users, err := svc.List(ctx, claimsFor(admin))
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(users), 3)

		updated, err := svc.Update(ctx, claimsFor(admin), created.ID, domain.RoleAdmin, "rotated")
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, updated.Role)

		require.NoError(t, svc.Delete(ctx, claimsFor(admin), created.ID))

		_, err = svc.Get(ctx, claimsFor(admin), created.ID)
		require.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("admin update validation", func(t *testing.T) {
		_, err := svc.Update(ctx, claimsFor(admin), member.ID, "", "")
		require.ErrorIs(t, err, service.ErrInvalidInput)

		_, err = svc.Update(ctx, claimsFor(admin), member.ID, domain.Role("owner"), "")
		require.ErrorIs(t, err, service.ErrInvalidInput)

		_, err = svc.Update(ctx, claimsFor(admin), "01AN4Z07BY79KA1307SR9X4MV3", domain.RoleAdmin, "")
		require.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("admin duplicate username", func(t *testing.T) {
		_, err := svc.Create(ctx, claimsFor(admin), "mallory", "pw", domain.RoleMember)
		require.ErrorIs(t, err, service.ErrAlreadyExists)
	})
}
