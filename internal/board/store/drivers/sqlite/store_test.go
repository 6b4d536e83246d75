package sqlite_test

import (
	"context"
	"testing"

	"github.com/driftboard/driftboard/internal/board/domain"
	"github.com/driftboard/driftboard/internal/board/store"
	"github.com/driftboard/driftboard/internal/board/store/drivers/sqlite"
	"github.com/driftboard/driftboard/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedUser(t *testing.T, s store.Store, username string, role domain.Role) domain.User {
	t.Helper()

	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		Role:         role,
	}
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u
}

func seedBoard(t *testing.T, s store.Store, name string) domain.Board {
	t.Helper()

	b := domain.Board{ID: idx.New().String(), Name: name, Description: "about " + name}
	require.NoError(t, s.Boards().CreateBoard(context.Background(), b))
	return b
}

func TestUsersRoundTrip(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	alice := seedUser(t, s, "alice", domain.RoleMember)

	byID, err := s.Users().GetUserByID(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, "alice", byID.Username)
	require.Equal(t, domain.RoleMember, byID.Role)
	require.False(t, byID.CreatedAt.IsZero())

	byName, err := s.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, alice.ID, byName.ID)

	_, err = s.Users().GetUserByUsername(ctx, "nobody")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	seedUser(t, s, "alice", domain.RoleMember)

	dup := domain.User{
		ID:           idx.New().String(),
		Username:     "alice",
		PasswordHash: "x",
		Role:         domain.RoleMember,
	}
	require.ErrorIs(t, s.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)
}

func TestUpdateUserRole(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	alice := seedUser(t, s, "alice", domain.RoleMember)
	require.NoError(t, s.Users().UpdateUserRole(ctx, alice.ID, domain.RoleAdmin))

	got, err := s.Users().GetUserByID(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, got.Role)

	require.ErrorIs(t, s.Users().UpdateUserRole(ctx, "missing", domain.RoleAdmin), store.ErrNotFound)
}

func TestDeleteUserCascades(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	alice := seedUser(t, s, "alice", domain.RoleMember)
	general := seedBoard(t, s, "general")

	post := domain.Post{
		ID:       idx.New().String(),
		BoardID:  general.ID,
		AuthorID: alice.ID,
		Title:    "hello",
		Body:     "first",
	}
	require.NoError(t, s.Posts().CreatePost(ctx, post))

	comment := domain.Comment{
		ID:       idx.New().String(),
		PostID:   post.ID,
		AuthorID: alice.ID,
		Body:     "reply",
	}
	require.NoError(t, s.Comments().CreateComment(ctx, comment))

	require.NoError(t, s.Users().DeleteUser(ctx, alice.ID))

	_, err := s.Posts().GetPostByID(ctx, post.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Comments().GetCommentByID(ctx, comment.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestBoardsUniqueName(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	seedBoard(t, s, "general")
	err := s.Boards().CreateBoard(ctx, domain.Board{ID: idx.New().String(), Name: "general"})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestListPostsByBoard(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	alice := seedUser(t, s, "alice", domain.RoleMember)
	general := seedBoard(t, s, "general")
	random := seedBoard(t, s, "random")

	for i, boardID := range []string{general.ID, general.ID, random.ID} {
		require.NoError(t, s.Posts().CreatePost(ctx, domain.Post{
			ID:       idx.New().String(),
			BoardID:  boardID,
			AuthorID: alice.ID,
			Title:    "post",
			Body:     "body",
		}), "post %d", i)
	}

	all, err := s.Posts().ListPosts(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)

	onGeneral, err := s.Posts().ListPosts(ctx, general.ID)
	require.NoError(t, err)
	require.Len(t, onGeneral, 2)

	// Newest first.
	require.Greater(t, onGeneral[0].ID, onGeneral[1].ID)
}

func TestCommentsOrderedOldestFirst(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	alice := seedUser(t, s, "alice", domain.RoleMember)
	general := seedBoard(t, s, "general")
	post := domain.Post{ID: idx.New().String(), BoardID: general.ID, AuthorID: alice.ID, Title: "t"}
	require.NoError(t, s.Posts().CreatePost(ctx, post))

	for range 3 {
		require.NoError(t, s.Comments().CreateComment(ctx, domain.Comment{
			ID:       idx.New().String(),
			PostID:   post.ID,
			AuthorID: alice.ID,
			Body:     "c",
		}))
	}

	comments, err := s.Comments().ListComments(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	require.Less(t, comments[0].ID, comments[1].ID)
	require.Less(t, comments[1].ID, comments[2].ID)
}

func TestDanglingReferencesMapToNotFound(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	alice := seedUser(t, s, "alice", domain.RoleMember)
	general := seedBoard(t, s, "general")

	err := s.Posts().CreatePost(ctx, domain.Post{
		ID:       idx.New().String(),
		BoardID:  "01AN4Z07BY79KA1307SR9X4MV3",
		AuthorID: alice.ID,
		Title:    "orphan",
	})
	require.ErrorIs(t, err, store.ErrNotFound)

	post := domain.Post{ID: idx.New().String(), BoardID: general.ID, AuthorID: alice.ID, Title: "t"}
	require.NoError(t, s.Posts().CreatePost(ctx, post))

	err = s.Comments().CreateComment(ctx, domain.Comment{
		ID:       idx.New().String(),
		PostID:   "01AN4Z07BY79KA1307SR9X4MV3",
		AuthorID: alice.ID,
		Body:     "orphan",
	})
	require.ErrorIs(t, err, store.ErrNotFound)
}
