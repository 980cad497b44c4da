package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tally/internal/db"
	"tally/internal/domain"
)

const goalLogColumns = `id, goal_id, focus_session_id, date, value, source, created_at`

// SQLiteLogRepo implements LogRepo using a SQLite database.
type SQLiteLogRepo struct {
	db db.DBTX
}

// NewSQLiteLogRepo creates a new SQLiteLogRepo.
func NewSQLiteLogRepo(db db.DBTX) *SQLiteLogRepo {
	return &SQLiteLogRepo{db: db}
}

func (r *SQLiteLogRepo) Create(ctx context.Context, l *domain.GoalLog) error {
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO goal_logs (goal_id, focus_session_id, date, value, source, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		l.GoalID,
		nullableInt64ToValue(l.FocusSessionID),
		l.Date,
		l.Value,
		string(l.Source),
		l.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting goal log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading log id: %w", err)
	}
	l.ID = id
	return nil
}

func (r *SQLiteLogRepo) GetByID(ctx context.Context, id int64) (*domain.GoalLog, error) {
	query := `SELECT ` + goalLogColumns + ` FROM goal_logs WHERE id = ?`
	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("loading goal log: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("loading goal log: %w", err)
		}
		return nil, fmt.Errorf("goal log: %w", ErrNotFound)
	}
	return scanLogRow(rows)
}

func (r *SQLiteLogRepo) ListByGoal(ctx context.Context, goalID int64, limit, offset int) ([]*domain.GoalLog, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM goal_logs WHERE goal_id = ?`, goalID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting goal logs: %w", err)
	}

	query := `SELECT ` + goalLogColumns + ` FROM goal_logs WHERE goal_id = ?
		ORDER BY date DESC, created_at DESC, id DESC LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, query, goalID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("listing goal logs: %w", err)
	}
	defer rows.Close()
	logs, err := scanLogRows(rows)
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

func (r *SQLiteLogRepo) ListByRange(ctx context.Context, startDate, endDate string, limit, offset int) ([]*domain.GoalLog, int, error) {
	where := ` WHERE 1 = 1`
	args := []any{}
	if startDate != "" {
		where += ` AND date >= ?`
		args = append(args, startDate)
	}
	if endDate != "" {
		where += ` AND date <= ?`
		args = append(args, endDate)
	}

	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM goal_logs`+where, args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting range logs: %w", err)
	}

	query := `SELECT ` + goalLogColumns + ` FROM goal_logs` + where +
		` ORDER BY date DESC, created_at DESC, id DESC LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing range logs: %w", err)
	}
	defer rows.Close()
	logs, err := scanLogRows(rows)
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

func (r *SQLiteLogRepo) CountByDay(ctx context.Context, goalID int64, from, to string) (map[string]int, error) {
	query := `SELECT date, COUNT(*) FROM goal_logs
		WHERE goal_id = ? AND date >= ? AND date <= ?
		GROUP BY date ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, goalID, from, to)
	if err != nil {
		return nil, fmt.Errorf("counting logs by day: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var day string
		var n int
		if err := rows.Scan(&day, &n); err != nil {
			return nil, fmt.Errorf("scanning day count: %w", err)
		}
		counts[day] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating day counts: %w", err)
	}
	return counts, nil
}

func (r *SQLiteLogRepo) UpdateValue(ctx context.Context, id int64, value int) error {
	res, err := r.db.ExecContext(ctx, `UPDATE goal_logs SET value = ? WHERE id = ?`, value, id)
	if err != nil {
		return fmt.Errorf("updating goal log: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating goal log: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("goal log %d: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteLogRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM goal_logs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting goal log: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting goal log: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("goal log %d: %w", id, ErrNotFound)
	}
	return nil
}

func scanLogRow(rows *sql.Rows) (*domain.GoalLog, error) {
	var l domain.GoalLog
	var sessionID sql.NullInt64
	var source, createdAtStr string

	if err := rows.Scan(&l.ID, &l.GoalID, &sessionID, &l.Date, &l.Value, &source, &createdAtStr); err != nil {
		return nil, fmt.Errorf("scanning goal log row: %w", err)
	}
	if sessionID.Valid {
		v := sessionID.Int64
		l.FocusSessionID = &v
	}
	l.Source = domain.LogSource(source)

	var err error
	l.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &l, nil
}

func scanLogRows(rows *sql.Rows) ([]*domain.GoalLog, error) {
	var logs []*domain.GoalLog
	for rows.Next() {
		l, err := scanLogRow(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goal logs: %w", err)
	}
	return logs, nil
}
