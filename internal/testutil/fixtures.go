package testutil

import (
	"time"

	"tally/internal/domain"
)

// Goal options
type GoalOption func(*domain.Goal)

func WithGoalType(t domain.GoalType) GoalOption {
	return func(g *domain.Goal) {
		g.GoalType = t
	}
}

func WithInactive() GoalOption {
	return func(g *domain.Goal) {
		g.IsActive = false
	}
}

func NewTestGoal(name string, opts ...GoalOption) *domain.Goal {
	g := &domain.Goal{
		Name:      name,
		GoalType:  domain.GoalTime,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Revision options
type RevisionOption func(*domain.GoalRevision)

func WithValidTo(day string) RevisionOption {
	return func(r *domain.GoalRevision) {
		r.ValidTo = &day
	}
}

func NewTestRevision(goalID int64, target int, validFrom string, opts ...RevisionOption) *domain.GoalRevision {
	r := &domain.GoalRevision{
		GoalID:      goalID,
		TargetValue: target,
		ValidFrom:   validFrom,
		CreatedAt:   time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Log options
type LogOption func(*domain.GoalLog)

func WithSource(s domain.LogSource) LogOption {
	return func(l *domain.GoalLog) {
		l.Source = s
	}
}

func WithFocusSessionID(id int64) LogOption {
	return func(l *domain.GoalLog) {
		l.FocusSessionID = &id
		l.Source = domain.SourceFocus
	}
}

func NewTestLog(goalID int64, date string, value int, opts ...LogOption) *domain.GoalLog {
	l := &domain.GoalLog{
		GoalID:    goalID,
		Date:      date,
		Value:     value,
		Source:    domain.SourceManual,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Session options
type SessionOption func(*domain.FocusSession)

func WithSessionGoal(goalID int64) SessionOption {
	return func(s *domain.FocusSession) {
		s.GoalID = &goalID
	}
}

func WithSessionStatus(st domain.SessionStatus) SessionOption {
	return func(s *domain.FocusSession) {
		s.Status = st
	}
}

func WithStartedAt(t time.Time) SessionOption {
	return func(s *domain.FocusSession) {
		s.StartedAt = t
	}
}

func WithPausedSeconds(n int) SessionOption {
	return func(s *domain.FocusSession) {
		s.PausedSeconds = n
	}
}

func WithEndedAt(t time.Time) SessionOption {
	return func(s *domain.FocusSession) {
		s.EndedAt = &t
	}
}

func NewTestSession(durationSeconds int, opts ...SessionOption) *domain.FocusSession {
	s := &domain.FocusSession{
		DurationSeconds: durationSeconds,
		Status:          domain.SessionRunning,
		StartedAt:       time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
