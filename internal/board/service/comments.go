package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/driftboard/driftboard/internal/board/authz"
	"github.com/driftboard/driftboard/internal/board/domain"
	"github.com/driftboard/driftboard/internal/board/store"
	"github.com/driftboard/driftboard/pkg/idx"
	"github.com/driftboard/driftboard/pkg/jwtx"
	"github.com/driftboard/driftboard/pkg/slogx"
)

// CommentService mirrors PostService, keyed by post instead of board.
type CommentService struct {
	Store store.Store
}

func (s *CommentService) Get(ctx context.Context, commentID string) (domain.Comment, error) {
	c, err := s.Store.Comments().GetCommentByID(ctx, commentID)
	if err != nil {
		return domain.Comment{}, mapStoreErr("get comment", err)
	}
	return c, nil
}

func (s *CommentService) List(ctx context.Context, postID string) ([]domain.Comment, error) {
	comments, err := s.Store.Comments().ListComments(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

func (s *CommentService) Create(
	ctx context.Context,
	current jwtx.Claims,
	postID, authorID, body string,
) (domain.Comment, error) {
	if !authz.CanCreateAsSelf(current, authorID) {
		slogx.FromContext(ctx).Info("comment creation author mismatch",
			"user_id", current.UserID(), "claimed_author", authorID)
		return domain.Comment{}, ErrUnauthorized
	}

	body = strings.TrimSpace(body)
	if postID == "" || body == "" {
		return domain.Comment{}, ErrInvalidInput
	}

	c := domain.Comment{
		ID:       idx.New().String(),
		PostID:   postID,
		AuthorID: authorID,
		Body:     body,
	}
	// A dangling post id trips the FK constraint and maps to NotFound.
	if err := s.Store.Comments().CreateComment(ctx, c); err != nil {
		return domain.Comment{}, mapStoreErr("create comment", err)
	}
	return c, nil
}

func (s *CommentService) Update(
	ctx context.Context,
	current jwtx.Claims,
	commentID, body string,
) (domain.Comment, error) {
	existing, err := s.Store.Comments().GetCommentByID(ctx, commentID)
	if err != nil {
		return domain.Comment{}, mapStoreErr("load comment", err)
	}

	if !authz.CanMutate(current, existing.AuthorID) {
		return domain.Comment{}, ErrUnauthorized
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return domain.Comment{}, ErrInvalidInput
	}

	if err := s.Store.Comments().UpdateComment(ctx, commentID, body); err != nil {
		return domain.Comment{}, mapStoreErr("update comment", err)
	}

	existing.Body = body
	return existing, nil
}

func (s *CommentService) Delete(ctx context.Context, current jwtx.Claims, commentID string) error {
	existing, err := s.Store.Comments().GetCommentByID(ctx, commentID)
	if err != nil {
		return mapStoreErr("load comment", err)
	}

	if !authz.CanMutate(current, existing.AuthorID) {
		return ErrUnauthorized
	}

	if err := s.Store.Comments().DeleteComment(ctx, commentID); err != nil {
		return mapStoreErr("delete comment", err)
	}
	return nil
}
