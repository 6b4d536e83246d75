package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/driftboard/driftboard/internal/board/domain"
)

type commentsRepo struct {
	db *sql.DB
}

const commentColumns = `id, post_id, author_id, body, created_at, updated_at`

func (r *commentsRepo) GetCommentByID(ctx context.Context, id string) (domain.Comment, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+commentColumns+` FROM comments WHERE id = ?`, id)
	return scanComment(row)
}

func (r *commentsRepo) ListComments(ctx context.Context, postID string) ([]domain.Comment, error) {
	// Oldest first: comments read as a conversation.
	query := `SELECT ` + commentColumns + ` FROM comments ORDER BY id ASC`
	args := []any{}
	if postID != "" {
		query = `SELECT ` + commentColumns + ` FROM comments WHERE post_id = ? ORDER BY id ASC`
		args = append(args, postID)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *commentsRepo) CreateComment(ctx context.Context, c domain.Comment) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO comments (id, post_id, author_id, body, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.PostID, c.AuthorID, c.Body, now, now)
	return mapConflict(err)
}

func (r *commentsRepo) UpdateComment(ctx context.Context, commentID, body string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE comments SET body = ?, updated_at = ? WHERE id = ?`,
		body, time.Now().UTC(), commentID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *commentsRepo) DeleteComment(ctx context.Context, commentID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, commentID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func scanComment(row rowScanner) (domain.Comment, error) {
	var c domain.Comment
	err := row.Scan(&c.ID, &c.PostID, &c.AuthorID, &c.Body, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Comment{}, mapNotFound(err)
	}
	return c, nil
}
