package domain

import (
	"fmt"
	"strings"
	"time"
)

// Goal is a trackable habit with a type (time, count or boolean).
type Goal struct {
	ID        int64
	Name      string
	GoalType  GoalType
	IsActive  bool
	CreatedAt time.Time
}

// Validate checks the invariants required before persisting a goal.
func (g *Goal) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return fmt.Errorf("goal name is required")
	}
	if !ValidGoalTypes[string(g.GoalType)] {
		return fmt.Errorf("invalid goal type %q", g.GoalType)
	}
	return nil
}

// GoalRevision is a time-bounded target value for a goal. ValidFrom and
// ValidTo are inclusive ISO day keys (YYYY-MM-DD); a nil ValidTo means the
// revision is open-ended. Revisions are append-only: changing a target
// creates a new revision starting today instead of mutating history.
type GoalRevision struct {
	ID          int64
	GoalID      int64
	TargetValue int
	ValidFrom   string
	ValidTo     *string
	CreatedAt   time.Time
}

// Contains reports whether day falls inside the revision's validity window.
// Day keys compare lexicographically.
func (r *GoalRevision) Contains(day string) bool {
	if r.ValidFrom > day {
		return false
	}
	return r.ValidTo == nil || *r.ValidTo >= day
}

// GoalLog is one dated contribution toward a goal's daily total. A nil
// FocusSessionID marks a manually entered log; at most one manual log exists
// per (goal, date). Session-derived logs may accumulate alongside it.
type GoalLog struct {
	ID             int64
	GoalID         int64
	FocusSessionID *int64
	Date           string
	Value          int
	Source         LogSource
	CreatedAt      time.Time
}

// Manual reports whether the log was entered by hand rather than produced
// by a completed focus session.
func (l *GoalLog) Manual() bool {
	return l.FocusSessionID == nil
}
