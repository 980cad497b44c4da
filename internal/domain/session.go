package domain

import "time"

// FocusSession is one timed, pausable work interval, optionally tied to a
// goal. While the session is paused, EndedAt holds the instant the pause
// began; Resume folds that span into PausedSeconds and clears EndedAt.
// For terminal sessions EndedAt is the completion or cancellation instant.
type FocusSession struct {
	ID              int64
	GoalID          *int64
	DurationSeconds int
	PausedSeconds   int
	Status          SessionStatus
	StartedAt       time.Time
	EndedAt         *time.Time
}

// ElapsedSeconds computes the active time spent so far, excluding paused
// spans. It is always derived from StartedAt and PausedSeconds so that a
// suspended clock (device sleep, missed ticks) cannot skew the result: the
// next evaluation snaps back to truth.
func (s *FocusSession) ElapsedSeconds(now time.Time) int {
	effective := now
	if s.Status == SessionPaused && s.EndedAt != nil {
		effective = *s.EndedAt
	}
	elapsed := int(effective.Sub(s.StartedAt).Seconds()) - s.PausedSeconds
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// RemainingSeconds is the countdown value to display at the given instant.
// May be negative once the session has overrun its duration.
func (s *FocusSession) RemainingSeconds(now time.Time) int {
	return s.DurationSeconds - s.ElapsedSeconds(now)
}

// Expired reports whether the session has used up its full duration.
func (s *FocusSession) Expired(now time.Time) bool {
	return s.ElapsedSeconds(now) >= s.DurationSeconds
}

// FocusLogValue is the minute value credited to the linked goal when the
// session completes. Sessions shorter than a minute still credit one.
func (s *FocusSession) FocusLogValue() int {
	minutes := s.DurationSeconds / 60
	if minutes < 1 {
		return 1
	}
	return minutes
}
