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

// PostService manages posts. Reads are public. Creation enforces the
// self-attribution rule against the author id declared in the request;
// update and delete enforce owner-or-admin against the stored author.
type PostService struct {
	Store store.Store
}

func (s *PostService) Get(ctx context.Context, postID string) (domain.Post, error) {
	p, err := s.Store.Posts().GetPostByID(ctx, postID)
	if err != nil {
		return domain.Post{}, mapStoreErr("get post", err)
	}
	return p, nil
}

func (s *PostService) List(ctx context.Context, boardID string) ([]domain.Post, error) {
	posts, err := s.Store.Posts().ListPosts(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (s *PostService) Create(
	ctx context.Context,
	current jwtx.Claims,
	boardID, authorID, title, body string,
) (domain.Post, error) {
	if !authz.CanCreateAsSelf(current, authorID) {
		slogx.FromContext(ctx).Info("post creation author mismatch",
			"user_id", current.UserID(), "claimed_author", authorID)
		return domain.Post{}, ErrUnauthorized
	}

	title = strings.TrimSpace(title)
	if boardID == "" || title == "" {
		return domain.Post{}, ErrInvalidInput
	}

	p := domain.Post{
		ID:       idx.New().String(),
		BoardID:  boardID,
		AuthorID: authorID,
		Title:    title,
		Body:     body,
	}
	// A dangling board id trips the FK constraint and maps to NotFound.
	if err := s.Store.Posts().CreatePost(ctx, p); err != nil {
		return domain.Post{}, mapStoreErr("create post", err)
	}
	return p, nil
}

func (s *PostService) Update(
	ctx context.Context,
	current jwtx.Claims,
	postID, title, body string,
) (domain.Post, error) {
	existing, err := s.Store.Posts().GetPostByID(ctx, postID)
	if err != nil {
		return domain.Post{}, mapStoreErr("load post", err)
	}

	if !authz.CanMutate(current, existing.AuthorID) {
		return domain.Post{}, ErrUnauthorized
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Post{}, ErrInvalidInput
	}

	if err := s.Store.Posts().UpdatePost(ctx, postID, title, body); err != nil {
		return domain.Post{}, mapStoreErr("update post", err)
	}

	existing.Title = title
	existing.Body = body
	return existing, nil
}

func (s *PostService) Delete(ctx context.Context, current jwtx.Claims, postID string) error {
	existing, err := s.Store.Posts().GetPostByID(ctx, postID)
	if err != nil {
		return mapStoreErr("load post", err)
	}

	if !authz.CanMutate(current, existing.AuthorID) {
		return ErrUnauthorized
	}

	if err := s.Store.Posts().DeletePost(ctx, postID); err != nil {
		return mapStoreErr("delete post", err)
	}
	return nil
}
