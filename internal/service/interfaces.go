package service

import (
	"context"
	"errors"
	"fmt"

	"tally/internal/domain"
)

// State-machine violations on focus sessions. The HTTP layer maps these to
// 400/409 responses; callers detect them with errors.Is.
var (
	ErrActiveSessionExists = errors.New("active session exists")
	ErrSessionNotRunning   = errors.New("session is not running")
	ErrSessionNotPaused    = errors.New("session is not paused")
	ErrSessionFinished     = errors.New("session already finished")
)

// ValidationError reports rejected input. The HTTP layer surfaces Msg as the
// 400 response detail.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func invalidf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// GoalUpdate carries a partial goal update; nil fields are left unchanged.
type GoalUpdate struct {
	Name     *string
	GoalType *domain.GoalType
	IsActive *bool
}

// HeatmapDay is one day of a goal's activity heatmap. Days without logs are
// present with a zero count.
type HeatmapDay struct {
	Date  string
	Count int
}

type GoalService interface {
	Create(ctx context.Context, g *domain.Goal) error
	Get(ctx context.Context, id int64) (*domain.Goal, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Goal, int, error)
	Update(ctx context.Context, id int64, upd GoalUpdate) (*domain.Goal, error)
	Delete(ctx context.Context, id int64) error
	// Heatmap returns per-day log counts across an inclusive day range,
	// zero-filled for days without logs.
	Heatmap(ctx context.Context, goalID int64, from, to string) ([]HeatmapDay, error)
}

type RevisionService interface {
	// Create appends a revision and closes the goal's open revision, if
	// any, by setting its valid_to to the new revision's valid_from.
	Create(ctx context.Context, goalID int64, targetValue int, validFrom string, validTo *string) (*domain.GoalRevision, error)
	List(ctx context.Context, goalID int64) ([]*domain.GoalRevision, int, error)
}

type LogService interface {
	// Create records a manual log entry for a goal.
	Create(ctx context.Context, goalID int64, date string, value int) (*domain.GoalLog, error)
	ListByGoal(ctx context.Context, goalID int64, limit, offset int) ([]*domain.GoalLog, int, error)
	ListByRange(ctx context.Context, startDate, endDate string, limit, offset int) ([]*domain.GoalLog, int, error)
	// UpdateValue changes a manual log's value. Focus-derived logs are
	// immutable and reported as not found.
	UpdateValue(ctx context.Context, goalID, logID int64, value int) (*domain.GoalLog, error)
	Delete(ctx context.Context, goalID, logID int64) error
}

type FocusService interface {
	// Start creates a running session. If a non-expired active session
	// exists it returns ErrActiveSessionExists; an expired one is
	// auto-completed first.
	Start(ctx context.Context, goalID *int64, durationSeconds int) (*domain.FocusSession, error)
	// Current returns the active session, or (nil, nil) when there is
	// none. An expired active session is auto-completed and reported as
	// absent.
	Current(ctx context.Context) (*domain.FocusSession, error)
	Pause(ctx context.Context, id int64) (*domain.FocusSession, error)
	Resume(ctx context.Context, id int64) (*domain.FocusSession, error)
	Cancel(ctx context.Context, id int64) (*domain.FocusSession, error)
	Complete(ctx context.Context, id int64) (*domain.FocusSession, error)
	List(ctx context.Context, limit, offset int) ([]*domain.FocusSession, int, error)
}
