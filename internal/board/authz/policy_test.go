package authz

import (
	"testing"
	"time"

	"github.com/driftboard/driftboard/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func claims(id, role string) jwtx.Claims {
	return jwtx.NewClaims(id, "user-"+id, role, "test", time.Now().UTC())
}

func TestCanCreateAsSelf(t *testing.T) {
	t.Parallel()

	require.True(t, CanCreateAsSelf(claims("3", jwtx.RoleMember), "3"))
	require.False(t, CanCreateAsSelf(claims("3", jwtx.RoleMember), "9"))

	// Admins may not spoof authorship either.
	require.False(t, CanCreateAsSelf(claims("3", jwtx.RoleAdmin), "9"))

	// Absent identity never matches, not even an empty author id.
	require.False(t, CanCreateAsSelf(jwtx.Claims{}, ""))
}

func TestCanMutate(t *testing.T) {
	t.Parallel()

	require.False(t, CanMutate(claims("2", jwtx.RoleMember), "5"))
	require.True(t, CanMutate(claims("2", jwtx.RoleAdmin), "5"))
	require.True(t, CanMutate(claims("5", jwtx.RoleMember), "5"))
	require.False(t, CanMutate(jwtx.Claims{}, ""))
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	require.True(t, RequireAdmin(claims("1", jwtx.RoleAdmin)))
	require.False(t, RequireAdmin(claims("1", jwtx.RoleMember)))
	require.False(t, RequireAdmin(jwtx.Claims{}))
}

func TestIsSelf(t *testing.T) {
	t.Parallel()

	require.True(t, IsSelf(claims("7", jwtx.RoleMember), "7"))
	require.False(t, IsSelf(claims("7", jwtx.RoleMember), "8"))
	require.False(t, IsSelf(jwtx.Claims{}, ""))
}
