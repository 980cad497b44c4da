package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tally/internal/db"
	"tally/internal/domain"
)

const focusSessionColumns = `id, goal_id, duration_seconds, paused_seconds, status, started_at, ended_at`

// SQLiteFocusSessionRepo implements FocusSessionRepo using a SQLite database.
type SQLiteFocusSessionRepo struct {
	db db.DBTX
}

// NewSQLiteFocusSessionRepo creates a new SQLiteFocusSessionRepo.
func NewSQLiteFocusSessionRepo(db db.DBTX) *SQLiteFocusSessionRepo {
	return &SQLiteFocusSessionRepo{db: db}
}

func (r *SQLiteFocusSessionRepo) Create(ctx context.Context, s *domain.FocusSession) error {
	query := `INSERT INTO focus_sessions (goal_id, duration_seconds, paused_seconds, status, started_at, ended_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		nullableInt64ToValue(s.GoalID),
		s.DurationSeconds,
		s.PausedSeconds,
		string(s.Status),
		s.StartedAt.UTC().Format(time.RFC3339),
		nullableTimeToString(s.EndedAt, time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting focus session: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading session id: %w", err)
	}
	s.ID = id
	return nil
}

func (r *SQLiteFocusSessionRepo) GetByID(ctx context.Context, id int64) (*domain.FocusSession, error) {
	query := `SELECT ` + focusSessionColumns + ` FROM focus_sessions WHERE id = ?`
	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("loading focus session: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("loading focus session: %w", err)
		}
		return nil, fmt.Errorf("focus session: %w", ErrNotFound)
	}
	return scanSessionRow(rows)
}

func (r *SQLiteFocusSessionRepo) Active(ctx context.Context) (*domain.FocusSession, error) {
	query := `SELECT ` + focusSessionColumns + ` FROM focus_sessions
		WHERE status IN ('running', 'paused')
		ORDER BY started_at DESC, id DESC LIMIT 1`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("loading active session: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("loading active session: %w", err)
		}
		return nil, fmt.Errorf("active session: %w", ErrNotFound)
	}
	return scanSessionRow(rows)
}

func (r *SQLiteFocusSessionRepo) List(ctx context.Context, limit, offset int) ([]*domain.FocusSession, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM focus_sessions`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting focus sessions: %w", err)
	}

	query := `SELECT ` + focusSessionColumns + ` FROM focus_sessions
		ORDER BY started_at DESC, id DESC LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("listing focus sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.FocusSession
	for rows.Next() {
		s, err := scanSessionRow(rows)
		if err != nil {
			return nil, 0, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating focus sessions: %w", err)
	}
	return sessions, total, nil
}

func (r *SQLiteFocusSessionRepo) Update(ctx context.Context, s *domain.FocusSession) error {
	query := `UPDATE focus_sessions
		SET goal_id = ?, duration_seconds = ?, paused_seconds = ?, status = ?, started_at = ?, ended_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		nullableInt64ToValue(s.GoalID),
		s.DurationSeconds,
		s.PausedSeconds,
		string(s.Status),
		s.StartedAt.UTC().Format(time.RFC3339),
		nullableTimeToString(s.EndedAt, time.RFC3339),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating focus session: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating focus session: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("focus session %d: %w", s.ID, ErrNotFound)
	}
	return nil
}

func scanSessionRow(rows *sql.Rows) (*domain.FocusSession, error) {
	var s domain.FocusSession
	var goalID sql.NullInt64
	var status, startedAtStr string
	var endedAt sql.NullString

	if err := rows.Scan(&s.ID, &goalID, &s.DurationSeconds, &s.PausedSeconds, &status, &startedAtStr, &endedAt); err != nil {
		return nil, fmt.Errorf("scanning focus session row: %w", err)
	}
	if goalID.Valid {
		v := goalID.Int64
		s.GoalID = &v
	}
	s.Status = domain.SessionStatus(status)
	s.EndedAt = parseNullableTime(endedAt, time.RFC3339)

	var err error
	s.StartedAt, err = time.Parse(time.RFC3339, startedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing started_at: %w", err)
	}
	return &s, nil
}
