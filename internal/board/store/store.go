package store

import (
	"context"
	"errors"

	"github.com/driftboard/driftboard/internal/board/domain"
)

var (
	ErrNotFound = errors.New("store: not found")

	// ErrAlreadyExists is what a driver reports when an insert trips a
	// uniqueness constraint. The constraint is the authoritative duplicate
	// guard; callers must treat this as a normal outcome, not an internal
	// failure.
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for
// now) implement this. Sub-repositories keep concerns tidy and testable.
type Store interface {
	Users() Users
	Boards() Boards
	Posts() Posts
	Comments() Comments

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is the sign-in lookup.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// A duplicate username surfaces as ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// ListUsers returns all users ordered by creation (newest first).
	ListUsers(ctx context.Context) ([]domain.User, error)

	// UpdateUserRole sets the role and bumps updated_at.
	UpdateUserRole(ctx context.Context, userID string, role domain.Role) error

	// UpdatePasswordHash sets the password_hash (argon2) and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error

	// DeleteUser cascades to posts and comments (per schema).
	DeleteUser(ctx context.Context, userID string) error
}

type Boards interface {
	GetBoardByID(ctx context.Context, id string) (domain.Board, error)
	ListBoards(ctx context.Context) ([]domain.Board, error)

	// CreateBoard inserts a new board; duplicate names surface as
	// ErrAlreadyExists.
	CreateBoard(ctx context.Context, b domain.Board) error
	UpdateBoard(ctx context.Context, boardID, name, description string) error

	// DeleteBoard cascades to posts (per schema).
	DeleteBoard(ctx context.Context, boardID string) error
}

type Posts interface {
	GetPostByID(ctx context.Context, id string) (domain.Post, error)

	// ListPosts returns posts newest first; a non-empty boardID filters to
	// one board.
	ListPosts(ctx context.Context, boardID string) ([]domain.Post, error)
	CreatePost(ctx context.Context, p domain.Post) error
	UpdatePost(ctx context.Context, postID, title, body string) error

	// DeletePost cascades to comments (per schema).
	DeletePost(ctx context.Context, postID string) error
}

type Comments interface {
	GetCommentByID(ctx context.Context, id string) (domain.Comment, error)

	// ListComments returns comments oldest first; a non-empty postID
	// filters to one post.
	ListComments(ctx context.Context, postID string) ([]domain.Comment, error)
	CreateComment(ctx context.Context, c domain.Comment) error
	UpdateComment(ctx context.Context, commentID, body string) error
	DeleteComment(ctx context.Context, commentID string) error
}
