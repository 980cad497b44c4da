package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tally/internal/db"
	"tally/internal/domain"
)

// SQLiteGoalRepo implements GoalRepo using a SQLite database.
type SQLiteGoalRepo struct {
	db db.DBTX
}

// NewSQLiteGoalRepo creates a new SQLiteGoalRepo.
func NewSQLiteGoalRepo(db db.DBTX) *SQLiteGoalRepo {
	return &SQLiteGoalRepo{db: db}
}

func (r *SQLiteGoalRepo) Create(ctx context.Context, g *domain.Goal) error {
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO goals (name, goal_type, is_active, created_at) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		g.Name,
		string(g.GoalType),
		boolToInt(g.IsActive),
		g.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting goal: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading goal id: %w", err)
	}
	g.ID = id
	return nil
}

func (r *SQLiteGoalRepo) GetByID(ctx context.Context, id int64) (*domain.Goal, error) {
	query := `SELECT id, name, goal_type, is_active, created_at FROM goals WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanGoal(row)
}

func (r *SQLiteGoalRepo) List(ctx context.Context, limit, offset int) ([]*domain.Goal, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM goals`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting goals: %w", err)
	}

	query := `SELECT id, name, goal_type, is_active, created_at FROM goals
		ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	var goals []*domain.Goal
	for rows.Next() {
		g, err := r.scanGoalRow(rows)
		if err != nil {
			return nil, 0, err
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating goals: %w", err)
	}
	return goals, total, nil
}

func (r *SQLiteGoalRepo) Update(ctx context.Context, g *domain.Goal) error {
	query := `UPDATE goals SET name = ?, goal_type = ?, is_active = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, g.Name, string(g.GoalType), boolToInt(g.IsActive), g.ID)
	if err != nil {
		return fmt.Errorf("updating goal: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating goal: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("goal %d: %w", g.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteGoalRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("goal %d: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteGoalRepo) scanGoal(row *sql.Row) (*domain.Goal, error) {
	var g domain.Goal
	var goalType, createdAtStr string
	var isActive int

	err := row.Scan(&g.ID, &g.Name, &goalType, &isActive, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("goal: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning goal: %w", err)
	}
	return r.populateGoal(&g, goalType, isActive, createdAtStr)
}

func (r *SQLiteGoalRepo) scanGoalRow(rows *sql.Rows) (*domain.Goal, error) {
	var g domain.Goal
	var goalType, createdAtStr string
	var isActive int

	if err := rows.Scan(&g.ID, &g.Name, &goalType, &isActive, &createdAtStr); err != nil {
		return nil, fmt.Errorf("scanning goal row: %w", err)
	}
	return r.populateGoal(&g, goalType, isActive, createdAtStr)
}

func (r *SQLiteGoalRepo) populateGoal(g *domain.Goal, goalType string, isActive int, createdAtStr string) (*domain.Goal, error) {
	g.GoalType = domain.GoalType(goalType)
	g.IsActive = intToBool(isActive)

	var err error
	g.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return g, nil
}
