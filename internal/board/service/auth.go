package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/driftboard/driftboard/internal/board/domain"
	"github.com/driftboard/driftboard/internal/board/store"
	"github.com/driftboard/driftboard/pkg/cryptox"
	"github.com/driftboard/driftboard/pkg/idx"
	"github.com/driftboard/driftboard/pkg/jwtx"
	"github.com/driftboard/driftboard/pkg/slogx"
	"github.com/google/uuid"
)

// demoAttempts bounds the retry loop for the (vanishingly unlikely) case
// of a demo username collision.
const demoAttempts = 3

// AuthResult is what a successful signup or signin hands back.
type AuthResult struct {
	UserID string
	Token  string
}

type AuthService struct {
	Store  store.Store
	Codec  jwtx.Codec
	Issuer string
}

// SignUp creates a MEMBER account and signs a token for it. The username
// pre-check is only a fast path; the store's uniqueness constraint is the
// authoritative guard, so a constraint conflict on insert is reported the
// same way as a pre-check hit.
func (s *AuthService) SignUp(ctx context.Context, username, password string) (AuthResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return AuthResult{}, ErrInvalidInput
	}

	_, err := s.Store.Users().GetUserByUsername(ctx, username)
	switch {
	case err == nil:
		return AuthResult{}, ErrAlreadyExists
	case !errors.Is(err, store.ErrNotFound):
		return AuthResult{}, fmt.Errorf("signup: username lookup: %w", err)
	}

	return s.createAccount(ctx, username, password, domain.RoleMember)
}

// SignIn verifies credentials and signs a token carrying the account's
// actual id, username and role. Unknown-user and wrong-password are
// distinct kinds internally; callers surface both as the same outcome.
func (s *AuthService) SignIn(ctx context.Context, username, password string) (AuthResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return AuthResult{}, ErrInvalidInput
	}

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return AuthResult{}, ErrNotFound
		}
		return AuthResult{}, fmt.Errorf("signin: user lookup: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		slogx.FromContext(ctx).Info("password verification failed", "username", username)
		return AuthResult{}, ErrInvalidPassword
	}

	return s.signFor(user)
}

// SignInDemo provisions a throwaway account with a random username and
// password, forcing the requested role, and signs it in. The username is
// prefixed by the role so demo accounts are recognizable in listings.
func (s *AuthService) SignInDemo(ctx context.Context, role domain.Role) (AuthResult, error) {
	if !role.Valid() {
		return AuthResult{}, ErrInvalidInput
	}

	prefix := "user"
	if role == domain.RoleAdmin {
		prefix = "admin"
	}

	var lastErr error
	for range demoAttempts {
		username := fmt.Sprintf("%s-%s", prefix, uuid.NewString()[:8])
		password, err := cryptox.GeneratePassword()
		if err != nil {
			return AuthResult{}, fmt.Errorf("demo signin: generate password: %w", err)
		}

		result, err := s.createAccount(ctx, username, password, role)
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, ErrAlreadyExists) {
			return AuthResult{}, err
		}
		lastErr = err
	}

	return AuthResult{}, fmt.Errorf("demo signin: could not find a free username: %w", lastErr)
}

// SignOut is a no-op. Tokens are stateless and unregistered server-side,
// so there is nothing to invalidate; the client discards its token and
// cookie. True invalidation needs a revocation list or short-lived tokens,
// neither of which this service carries.
func (s *AuthService) SignOut(ctx context.Context) error {
	return nil
}

func (s *AuthService) createAccount(
	ctx context.Context,
	username, password string,
	role domain.Role,
) (AuthResult, error) {
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Lost the race to a concurrent writer; same outcome as the
			// pre-check.
			return AuthResult{}, ErrAlreadyExists
		}
		return AuthResult{}, fmt.Errorf("create user: %w", err)
	}

	return s.signFor(user)
}

func (s *AuthService) signFor(user domain.User) (AuthResult, error) {
	claims := jwtx.NewClaims(user.ID, user.Username, user.Role.String(), s.Issuer, time.Now().UTC())
	token, err := s.Codec.Sign(claims)
	if err != nil {
		return AuthResult{}, fmt.Errorf("sign token: %w", err)
	}

	return AuthResult{UserID: user.ID, Token: token}, nil
}
