package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestElapsedSeconds_ExcludesPausedTime(t *testing.T) {
	started := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	s := &FocusSession{
		DurationSeconds: 1500,
		PausedSeconds:   60,
		Status:          SessionRunning,
		StartedAt:       started,
	}

	now := started.Add(1000 * time.Second)
	assert.Equal(t, 940, s.ElapsedSeconds(now))
	assert.Equal(t, 560, s.RemainingSeconds(now), "remaining is recomputed from authoritative fields")
}

func TestElapsedSeconds_NeverNegative(t *testing.T) {
	started := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	s := &FocusSession{
		DurationSeconds: 600,
		PausedSeconds:   120,
		Status:          SessionRunning,
		StartedAt:       started,
	}

	// Only 30s of wall clock but 120s of recorded pause.
	assert.Equal(t, 0, s.ElapsedSeconds(started.Add(30*time.Second)))
	assert.Equal(t, 600, s.RemainingSeconds(started.Add(30*time.Second)))
}

func TestElapsedSeconds_PausedFreezesAtPauseStart(t *testing.T) {
	started := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	pausedAt := started.Add(300 * time.Second)
	s := &FocusSession{
		DurationSeconds: 1500,
		Status:          SessionPaused,
		StartedAt:       started,
		EndedAt:         &pausedAt,
	}

	// Wall clock keeps moving but the countdown must not.
	assert.Equal(t, 300, s.ElapsedSeconds(pausedAt.Add(10*time.Minute)))
	assert.Equal(t, 1200, s.RemainingSeconds(pausedAt.Add(time.Hour)))
}

func TestExpired(t *testing.T) {
	started := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	s := &FocusSession{DurationSeconds: 600, Status: SessionRunning, StartedAt: started}

	assert.False(t, s.Expired(started.Add(599*time.Second)))
	assert.True(t, s.Expired(started.Add(600*time.Second)))
}

func TestFocusLogValue(t *testing.T) {
	assert.Equal(t, 25, (&FocusSession{DurationSeconds: 1500}).FocusLogValue())
	assert.Equal(t, 1, (&FocusSession{DurationSeconds: 30}).FocusLogValue(), "sub-minute sessions still credit one minute")
}

func TestRevisionContains(t *testing.T) {
	to := "2024-03-31"
	bounded := &GoalRevision{ValidFrom: "2024-01-01", ValidTo: &to}
	open := &GoalRevision{ValidFrom: "2024-04-01"}

	assert.True(t, bounded.Contains("2024-01-01"))
	assert.True(t, bounded.Contains("2024-03-31"))
	assert.False(t, bounded.Contains("2023-12-31"))
	assert.False(t, bounded.Contains("2024-04-01"))
	assert.True(t, open.Contains("2099-12-31"))
}

func TestSessionStatusTerminal(t *testing.T) {
	assert.False(t, SessionRunning.Terminal())
	assert.False(t, SessionPaused.Terminal())
	assert.True(t, SessionCompleted.Terminal())
	assert.True(t, SessionCanceled.Terminal())
}
