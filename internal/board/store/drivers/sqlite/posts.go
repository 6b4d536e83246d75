package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/driftboard/driftboard/internal/board/domain"
)

type postsRepo struct {
	db *sql.DB
}

const postColumns = `id, board_id, author_id, title, body, created_at, updated_at`

func (r *postsRepo) GetPostByID(ctx context.Context, id string) (domain.Post, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+postColumns+` FROM posts WHERE id = ?`, id)
	return scanPost(row)
}

func (r *postsRepo) ListPosts(ctx context.Context, boardID string) ([]domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts ORDER BY id DESC`
	args := []any{}
	if boardID != "" {
		query = `SELECT ` + postColumns + ` FROM posts WHERE board_id = ? ORDER BY id DESC`
		args = append(args, boardID)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *postsRepo) CreatePost(ctx context.Context, p domain.Post) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO posts (id, board_id, author_id, title, body, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.BoardID, p.AuthorID, p.Title, p.Body, now, now)
	return mapConflict(err)
}

func (r *postsRepo) UpdatePost(ctx context.Context, postID, title, body string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE posts SET title = ?, body = ?, updated_at = ? WHERE id = ?`,
		title, body, time.Now().UTC(), postID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *postsRepo) DeletePost(ctx context.Context, postID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, postID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func scanPost(row rowScanner) (domain.Post, error) {
	var p domain.Post
	err := row.Scan(&p.ID, &p.BoardID, &p.AuthorID, &p.Title, &p.Body, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Post{}, mapNotFound(err)
	}
	return p, nil
}
