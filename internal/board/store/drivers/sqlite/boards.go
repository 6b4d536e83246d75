package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/driftboard/driftboard/internal/board/domain"
)

type boardsRepo struct {
	db *sql.DB
}

const boardColumns = `id, name, description, created_at, updated_at`

func (r *boardsRepo) GetBoardByID(ctx context.Context, id string) (domain.Board, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+boardColumns+` FROM boards WHERE id = ?`, id)
	return scanBoard(row)
}

func (r *boardsRepo) ListBoards(ctx context.Context) ([]domain.Board, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+boardColumns+` FROM boards ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var boards []domain.Board
	for rows.Next() {
		b, err := scanBoard(rows)
		if err != nil {
			return nil, err
		}
		boards = append(boards, b)
	}
	return boards, rows.Err()
}

func (r *boardsRepo) CreateBoard(ctx context.Context, b domain.Board) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO boards (id, name, description, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		b.ID, b.Name, b.Description, now, now)
	return mapConflict(err)
}

func (r *boardsRepo) UpdateBoard(ctx context.Context, boardID, name, description string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE boards SET name = ?, description = ?, updated_at = ? WHERE id = ?`,
		name, description, time.Now().UTC(), boardID)
	if err != nil {
		return mapConflict(err)
	}
	return requireRowAffected(res)
}

func (r *boardsRepo) DeleteBoard(ctx context.Context, boardID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM boards WHERE id = ?`, boardID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func scanBoard(row rowScanner) (domain.Board, error) {
	var b domain.Board
	err := row.Scan(&b.ID, &b.Name, &b.Description, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return domain.Board{}, mapNotFound(err)
	}
	return b, nil
}
