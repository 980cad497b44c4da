// Package engine drives the client-side focus session lifecycle: it owns
// the known session state, recomputes the countdown from wall-clock truth,
// settles expiry at most once, and reconciles with the server by polling.
package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"tally/internal/apiclient"
	"tally/internal/domain"
)

// API is the slice of the server client the engine needs.
type API interface {
	CurrentSession(ctx context.Context) (*domain.FocusSession, error)
	StartSession(ctx context.Context, goalID *int64, durationSeconds int) (*domain.FocusSession, error)
	PauseSession(ctx context.Context, id int64) (*domain.FocusSession, error)
	ResumeSession(ctx context.Context, id int64) (*domain.FocusSession, error)
	CancelSession(ctx context.Context, id int64) (*domain.FocusSession, error)
	CompleteSession(ctx context.Context, id int64) (*domain.FocusSession, error)
}

type Engine struct {
	api API
	obs Observer
	now func() time.Time

	mu           sync.Mutex
	session      *domain.FocusSession
	completing   bool
	pollInFlight bool
	hadActive    bool
	notified     map[int64]bool
}

func New(api API, obs Observer, now func() time.Time) *Engine {
	if obs == nil {
		obs = NoopObserver{}
	}
	if now == nil {
		now = time.Now
	}
	return &Engine{api: api, obs: obs, now: now, notified: map[int64]bool{}}
}

// Bootstrap adopts whatever session the server currently has, so a restart
// or a second client resumes the live countdown instead of starting blind.
func (e *Engine) Bootstrap(ctx context.Context) error {
	session, err := e.api.CurrentSession(ctx)
	if err != nil {
		return err
	}
	e.mu.Lock()
	e.session = session
	e.hadActive = session != nil
	e.mu.Unlock()
	return nil
}

// Session returns the engine's view of the tracked session, or nil.
func (e *Engine) Session() *domain.FocusSession {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session
}

// Remaining is the countdown to display right now. Zero when no session is
// tracked; clamped at zero once the session overruns.
func (e *Engine) Remaining() int {
	e.mu.Lock()
	session := e.session
	e.mu.Unlock()
	if session == nil {
		return 0
	}
	remaining := session.RemainingSeconds(e.now())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Start asks the server for a new session. When the server refuses because
// one is already active, the engine adopts that session and returns it
// alongside apiclient.ErrActiveSession so the caller can show it.
func (e *Engine) Start(ctx context.Context, goalID *int64, durationSeconds int) (*domain.FocusSession, error) {
	session, err := e.api.StartSession(ctx, goalID, durationSeconds)
	if errors.Is(err, apiclient.ErrActiveSession) {
		current, curErr := e.api.CurrentSession(ctx)
		if curErr != nil || current == nil {
			return nil, err
		}
		e.adopt(current)
		return current, err
	}
	if err != nil {
		return nil, err
	}
	e.adopt(session)
	return session, nil
}

func (e *Engine) Pause(ctx context.Context) (*domain.FocusSession, error) {
	return e.transition(ctx, e.api.PauseSession)
}

func (e *Engine) Resume(ctx context.Context) (*domain.FocusSession, error) {
	return e.transition(ctx, e.api.ResumeSession)
}

// Cancel ends the tracked session without crediting anything.
func (e *Engine) Cancel(ctx context.Context) (*domain.FocusSession, error) {
	e.mu.Lock()
	session := e.session
	e.mu.Unlock()
	if session == nil {
		return nil, apiclient.ErrNotFound
	}
	canceled, err := e.api.CancelSession(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	e.session = nil
	e.hadActive = false
	e.mu.Unlock()
	return canceled, nil
}

// Tick is the 1s heartbeat. It recomputes expiry from the clock and fires
// the completion exactly once: the completing flag stops concurrent
// attempts, and the notified set stops a second notification if the poll
// loop observed the same completion first.
func (e *Engine) Tick(ctx context.Context) {
	e.mu.Lock()
	session := e.session
	if session == nil || session.Status != domain.SessionRunning ||
		!session.Expired(e.now()) || e.completing || e.notified[session.ID] {
		e.mu.Unlock()
		return
	}
	e.completing = true
	id := session.ID
	e.mu.Unlock()

	completed, err := e.api.CompleteSession(ctx, id)

	e.mu.Lock()
	e.completing = false
	if err != nil {
		// Someone else settled it (server auto-complete, another
		// client). Drop the stale state and flag history, since the
		// poll loop no longer tracks the session.
		settledElsewhere := errors.Is(err, apiclient.ErrInvalid) || errors.Is(err, apiclient.ErrNotFound)
		if settledElsewhere {
			e.dropLocked(id)
		}
		e.mu.Unlock()
		if settledElsewhere {
			e.obs.HistoryStale()
		}
		return
	}
	e.session = completed
	e.hadActive = false
	alreadyNotified := e.notified[id]
	e.notified[id] = true
	e.mu.Unlock()

	if !alreadyNotified {
		e.obs.SessionCompleted(completed)
		e.obs.HistoryStale()
	}
}

// Poll reconciles with the server. Calls never overlap: if one is already
// in flight the new one returns immediately. Errors are swallowed and known
// state is kept, so a flaky network cannot blank a live countdown.
func (e *Engine) Poll(ctx context.Context) {
	e.mu.Lock()
	if e.pollInFlight {
		e.mu.Unlock()
		return
	}
	e.pollInFlight = true
	e.mu.Unlock()

	current, err := e.api.CurrentSession(ctx)

	e.mu.Lock()
	e.pollInFlight = false
	if err != nil {
		e.mu.Unlock()
		return
	}

	if current != nil {
		e.session = current
		e.hadActive = true
		e.mu.Unlock()
		return
	}

	// No active session server-side. If we were tracking one, it finished
	// without us: notify for it once and flag history as stale once. A
	// session that vanished before its time ran out was canceled or
	// completed elsewhere, so only the stale flag fires.
	var vanished *domain.FocusSession
	if e.hadActive && e.session != nil && !e.notified[e.session.ID] && e.session.Expired(e.now()) {
		vanished = e.session
		e.notified[vanished.ID] = true
	}
	stale := e.hadActive
	e.session = nil
	e.hadActive = false
	e.mu.Unlock()

	if vanished != nil {
		vanished.Status = domain.SessionCompleted
		e.obs.SessionCompleted(vanished)
	}
	if stale {
		e.obs.HistoryStale()
	}
}

func (e *Engine) adopt(session *domain.FocusSession) {
	e.mu.Lock()
	e.session = session
	e.hadActive = true
	e.mu.Unlock()
}

func (e *Engine) transition(ctx context.Context, fn func(ctx context.Context, id int64) (*domain.FocusSession, error)) (*domain.FocusSession, error) {
	e.mu.Lock()
	session := e.session
	e.mu.Unlock()
	if session == nil {
		return nil, apiclient.ErrNotFound
	}
	updated, err := fn(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	e.adopt(updated)
	return updated, nil
}

// dropLocked forgets the tracked session. Caller holds e.mu.
func (e *Engine) dropLocked(id int64) {
	e.notified[id] = true
	e.session = nil
	e.hadActive = false
}
