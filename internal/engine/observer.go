package engine

import "tally/internal/domain"

// Observer receives the engine's user-facing events. The TUI plugs in a
// terminal notifier; tests plug in recorders.
type Observer interface {
	// SessionCompleted fires at most once per session id, whichever path
	// noticed the completion first.
	SessionCompleted(s *domain.FocusSession)
	// HistoryStale fires once when a session the engine was tracking
	// disappears or settles server-side, signalling that cached history
	// views should refresh.
	HistoryStale()
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) SessionCompleted(*domain.FocusSession) {}
func (NoopObserver) HistoryStale()                         {}
