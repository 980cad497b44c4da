package repository

import (
	"context"
	"errors"

	"tally/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist. Callers
// detect it with errors.Is.
var ErrNotFound = errors.New("not found")

type GoalRepo interface {
	Create(ctx context.Context, g *domain.Goal) error
	GetByID(ctx context.Context, id int64) (*domain.Goal, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Goal, int, error)
	Update(ctx context.Context, g *domain.Goal) error
	Delete(ctx context.Context, id int64) error
}

type RevisionRepo interface {
	Create(ctx context.Context, r *domain.GoalRevision) error
	ListByGoal(ctx context.Context, goalID int64) ([]*domain.GoalRevision, int, error)
	// CurrentOpen returns the goal's open-ended revision with the latest
	// ValidFrom, or ErrNotFound.
	CurrentOpen(ctx context.Context, goalID int64) (*domain.GoalRevision, error)
	Close(ctx context.Context, id int64, validTo string) error
}

type LogRepo interface {
	Create(ctx context.Context, l *domain.GoalLog) error
	GetByID(ctx context.Context, id int64) (*domain.GoalLog, error)
	ListByGoal(ctx context.Context, goalID int64, limit, offset int) ([]*domain.GoalLog, int, error)
	// ListByRange returns logs with startDate <= date <= endDate, newest
	// first, plus the unpaginated total. Empty bounds are unbounded.
	ListByRange(ctx context.Context, startDate, endDate string, limit, offset int) ([]*domain.GoalLog, int, error)
	// CountByDay returns the number of logs per day for one goal across an
	// inclusive day range.
	CountByDay(ctx context.Context, goalID int64, from, to string) (map[string]int, error)
	UpdateValue(ctx context.Context, id int64, value int) error
	Delete(ctx context.Context, id int64) error
}

type FocusSessionRepo interface {
	Create(ctx context.Context, s *domain.FocusSession) error
	GetByID(ctx context.Context, id int64) (*domain.FocusSession, error)
	// Active returns the latest-started non-terminal session, or ErrNotFound.
	Active(ctx context.Context) (*domain.FocusSession, error)
	List(ctx context.Context, limit, offset int) ([]*domain.FocusSession, int, error)
	Update(ctx context.Context, s *domain.FocusSession) error
}
