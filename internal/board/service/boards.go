package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/driftboard/driftboard/internal/board/authz"
	"github.com/driftboard/driftboard/internal/board/domain"
	"github.com/driftboard/driftboard/internal/board/store"
	"github.com/driftboard/driftboard/pkg/idx"
	"github.com/driftboard/driftboard/pkg/jwtx"
)

// BoardService manages boards. Reads are public; mutations are admin only.
type BoardService struct {
	Store store.Store
}

func (s *BoardService) Get(ctx context.Context, boardID string) (domain.Board, error) {
	b, err := s.Store.Boards().GetBoardByID(ctx, boardID)
	if err != nil {
		return domain.Board{}, mapStoreErr("get board", err)
	}
	return b, nil
}

func (s *BoardService) List(ctx context.Context) ([]domain.Board, error) {
	boards, err := s.Store.Boards().ListBoards(ctx)
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	return boards, nil
}

func (s *BoardService) Create(
	ctx context.Context,
	current jwtx.Claims,
	name, description string,
) (domain.Board, error) {
	if !authz.RequireAdmin(current) {
		return domain.Board{}, ErrUnauthorized
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Board{}, ErrInvalidInput
	}

	b := domain.Board{
		ID:          idx.New().String(),
		Name:        name,
		Description: description,
	}
	if err := s.Store.Boards().CreateBoard(ctx, b); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Board{}, ErrAlreadyExists
		}
		return domain.Board{}, fmt.Errorf("create board: %w", err)
	}
	return b, nil
}

func (s *BoardService) Update(
	ctx context.Context,
	current jwtx.Claims,
	boardID, name, description string,
) (domain.Board, error) {
	if !authz.RequireAdmin(current) {
		return domain.Board{}, ErrUnauthorized
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Board{}, ErrInvalidInput
	}

	if err := s.Store.Boards().UpdateBoard(ctx, boardID, name, description); err != nil {
		return domain.Board{}, mapStoreErr("update board", err)
	}

	b, err := s.Store.Boards().GetBoardByID(ctx, boardID)
	if err != nil {
		return domain.Board{}, mapStoreErr("reload board", err)
	}
	return b, nil
}

func (s *BoardService) Delete(ctx context.Context, current jwtx.Claims, boardID string) error {
	if !authz.RequireAdmin(current) {
		return ErrUnauthorized
	}

	if err := s.Store.Boards().DeleteBoard(ctx, boardID); err != nil {
		return mapStoreErr("delete board", err)
	}
	return nil
}
