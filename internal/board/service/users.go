package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/driftboard/driftboard/internal/board/authz"
	"github.com/driftboard/driftboard/internal/board/domain"
	"github.com/driftboard/driftboard/internal/board/store"
	"github.com/driftboard/driftboard/pkg/cryptox"
	"github.com/driftboard/driftboard/pkg/idx"
	"github.com/driftboard/driftboard/pkg/jwtx"
)

// UserService covers the current-user lookup plus the admin-only account
// management operations.
type UserService struct {
	Store store.Store
}

// Current re-fetches the caller's account rather than trusting the signed
// claims, so the profile reflects role changes made after the token was
// issued. A deleted account reports ErrNotFound.
func (s *UserService) Current(ctx context.Context, current jwtx.Claims) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, current.UserID())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, fmt.Errorf("current user: %w", err)
	}
	return user, nil
}

// Create provisions an account on behalf of an administrator.
func (s *UserService) Create(
	ctx context.Context,
	current jwtx.Claims,
	username, password string,
	role domain.Role,
) (domain.User, error) {
	if !authz.RequireAdmin(current) {
		return domain.User{}, ErrUnauthorized
	}

	username = strings.TrimSpace(username)
	if username == "" || password == "" || !role.Valid() {
		return domain.User{}, ErrInvalidInput
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrAlreadyExists
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Get fetches an arbitrary account; admin only, except for self-lookup.
func (s *UserService) Get(ctx context.Context, current jwtx.Claims, userID string) (domain.User, error) {
	if !authz.RequireAdmin(current) && !authz.IsSelf(current, userID) {
		return domain.User{}, ErrUnauthorized
	}

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// List returns every account; admin only.
func (s *UserService) List(ctx context.Context, current jwtx.Claims) ([]domain.User, error) {
	if !authz.RequireAdmin(current) {
		return nil, ErrUnauthorized
	}

	users, err := s.Store.Users().ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Update changes an account's role and/or password; admin only. Empty
// fields leave the corresponding attribute untouched.
func (s *UserService) Update(
	ctx context.Context,
	current jwtx.Claims,
	userID string,
	role domain.Role,
	password string,
) (domain.User, error) {
	if !authz.RequireAdmin(current) {
		return domain.User{}, ErrUnauthorized
	}
	if role == "" && password == "" {
		return domain.User{}, ErrInvalidInput
	}

	if role != "" {
		if !role.Valid() {
			return domain.User{}, ErrInvalidInput
		}
		if err := s.Store.Users().UpdateUserRole(ctx, userID, role); err != nil {
			return domain.User{}, mapStoreErr("update role", err)
		}
	}

	if password != "" {
		hash, err := cryptox.HashPassword(password)
		if err != nil {
			return domain.User{}, fmt.Errorf("hash password: %w", err)
		}
		if err := s.Store.Users().UpdatePasswordHash(ctx, userID, hash); err != nil {
			return domain.User{}, mapStoreErr("update password", err)
		}
	}

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.User{}, mapStoreErr("reload user", err)
	}
	return user, nil
}

// Delete removes an account; admin only. Posts and comments cascade.
func (s *UserService) Delete(ctx context.Context, current jwtx.Claims, userID string) error {
	if !authz.RequireAdmin(current) {
		return ErrUnauthorized
	}

	if err := s.Store.Users().DeleteUser(ctx, userID); err != nil {
		return mapStoreErr("delete user", err)
	}
	return nil
}

func mapStoreErr(op string, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, store.ErrAlreadyExists):
		return ErrAlreadyExists
	}
	return fmt.Errorf("%s: %w", op, err)
}
