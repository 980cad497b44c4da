package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tally/internal/db"
	"tally/internal/domain"
)

// SQLiteRevisionRepo implements RevisionRepo using a SQLite database.
type SQLiteRevisionRepo struct {
	db db.DBTX
}

// NewSQLiteRevisionRepo creates a new SQLiteRevisionRepo.
func NewSQLiteRevisionRepo(db db.DBTX) *SQLiteRevisionRepo {
	return &SQLiteRevisionRepo{db: db}
}

func (r *SQLiteRevisionRepo) Create(ctx context.Context, rev *domain.GoalRevision) error {
	if rev.CreatedAt.IsZero() {
		rev.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO goal_revisions (goal_id, target_value, valid_from, valid_to, created_at)
		VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		rev.GoalID,
		rev.TargetValue,
		rev.ValidFrom,
		nullableStrToValue(rev.ValidTo),
		rev.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting goal revision: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading revision id: %w", err)
	}
	rev.ID = id
	return nil
}

func (r *SQLiteRevisionRepo) ListByGoal(ctx context.Context, goalID int64) ([]*domain.GoalRevision, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM goal_revisions WHERE goal_id = ?`, goalID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting revisions: %w", err)
	}

	query := `SELECT id, goal_id, target_value, valid_from, valid_to, created_at
		FROM goal_revisions WHERE goal_id = ? ORDER BY valid_from DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, goalID)
	if err != nil {
		return nil, 0, fmt.Errorf("listing revisions: %w", err)
	}
	defer rows.Close()

	var revisions []*domain.GoalRevision
	for rows.Next() {
		rev, err := scanRevisionRow(rows)
		if err != nil {
			return nil, 0, err
		}
		revisions = append(revisions, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating revisions: %w", err)
	}
	return revisions, total, nil
}

func (r *SQLiteRevisionRepo) CurrentOpen(ctx context.Context, goalID int64) (*domain.GoalRevision, error) {
	query := `SELECT id, goal_id, target_value, valid_from, valid_to, created_at
		FROM goal_revisions
		WHERE goal_id = ? AND valid_to IS NULL
		ORDER BY valid_from DESC, id DESC LIMIT 1`
	rows, err := r.db.QueryContext(ctx, query, goalID)
	if err != nil {
		return nil, fmt.Errorf("loading open revision: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("loading open revision: %w", err)
		}
		return nil, fmt.Errorf("open revision: %w", ErrNotFound)
	}
	return scanRevisionRow(rows)
}

func (r *SQLiteRevisionRepo) Close(ctx context.Context, id int64, validTo string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE goal_revisions SET valid_to = ? WHERE id = ?`, validTo, id)
	if err != nil {
		return fmt.Errorf("closing revision: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("closing revision: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("revision %d: %w", id, ErrNotFound)
	}
	return nil
}

func scanRevisionRow(rows *sql.Rows) (*domain.GoalRevision, error) {
	var rev domain.GoalRevision
	var validTo sql.NullString
	var createdAtStr string

	if err := rows.Scan(&rev.ID, &rev.GoalID, &rev.TargetValue, &rev.ValidFrom, &validTo, &createdAtStr); err != nil {
		return nil, fmt.Errorf("scanning revision row: %w", err)
	}
	if validTo.Valid {
		v := validTo.String
		rev.ValidTo = &v
	}

	var err error
	rev.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &rev, nil
}
