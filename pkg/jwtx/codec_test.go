package jwtx

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func newTestCodec(t *testing.T) *HS256Codec {
	t.Helper()
	codec, err := NewHS256Codec("test-secret-please-rotate", "driftboard-test")
	require.NoError(t, err)
	return codec
}

func TestNewHS256CodecRequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := NewHS256Codec("", "iss")
	require.ErrorIs(t, err, ErrEmptySecret)
}

func TestSignVerifyRoundTrip(t *testing.T) {
	t.Parallel()
	codec := newTestCodec(t)

	claims := NewClaims("7", "bob", RoleMember, "driftboard-test", time.Now().UTC())

	token, err := codec.Sign(claims)
	require.NoError(t, err)
	require.Equal(t, 3, len(strings.Split(token, ".")))

	got, err := codec.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "7", got.UserID())
	require.Equal(t, "bob", got.Username)
	require.Equal(t, RoleMember, got.Role)
	require.False(t, got.IsAdmin())
}

func TestVerifyGarbage(t *testing.T) {
	t.Parallel()
	codec := newTestCodec(t)

	for _, input := range []string{
		"",
		"garbage-token",
		"a.b",
		"a.b.c",
		strings.Repeat(".", 10),
		"eyJhbGciOiJub25lIn0.e30.",
	} {
		_, err := codec.Verify(input)
		require.ErrorIs(t, err, ErrInvalidToken, "input %q", input)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	codec := newTestCodec(t)
	other, err := NewHS256Codec("a-completely-different-secret", "driftboard-test")
	require.NoError(t, err)

	token, err := other.Sign(NewClaims("1", "eve", RoleAdmin, "driftboard-test", time.Now().UTC()))
	require.NoError(t, err)

	_, err = codec.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongAlgorithm(t *testing.T) {
	t.Parallel()
	codec := newTestCodec(t)

	// Token signed with HS512 must not pass an HS256-only verifier even
	// with the right secret.
	token := jwt.NewWithClaims(jwt.SigningMethodHS512,
		NewClaims("1", "eve", RoleMember, "driftboard-test", time.Now().UTC()))
	signed, err := token.SignedString([]byte("test-secret-please-rotate"))
	require.NoError(t, err)

	_, err = codec.Verify(signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()
	codec := newTestCodec(t)

	other, err := NewHS256Codec("test-secret-please-rotate", "someone-else")
	require.NoError(t, err)

	token, err := other.Sign(NewClaims("1", "mallory", RoleMember, "someone-else", time.Now().UTC()))
	require.NoError(t, err)

	_, err = codec.Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
	require.True(t, Invalid(err))
}

func TestVerifyRejectsMissingSubject(t *testing.T) {
	t.Parallel()
	codec := newTestCodec(t)

	token, err := codec.Sign(NewClaims("", "nobody", RoleMember, "driftboard-test", time.Now().UTC()))
	require.NoError(t, err)

	_, err = codec.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}
