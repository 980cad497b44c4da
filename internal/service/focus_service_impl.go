package service

import (
	"context"
	"errors"
	"time"

	"tally/internal/dateutil"
	"tally/internal/db"
	"tally/internal/domain"
	"tally/internal/repository"
)

const (
	minSessionSeconds = 300
	maxSessionSeconds = 7200
)

type focusService struct {
	sessions repository.FocusSessionRepo
	uow      db.UnitOfWork
	loc      *time.Location
	now      func() time.Time
}

// NewFocusService builds the session lifecycle service. loc is the timezone
// used to date completion logs; now may be nil to use the wall clock.
func NewFocusService(sessions repository.FocusSessionRepo, uow db.UnitOfWork, loc *time.Location, now func() time.Time) FocusService {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &focusService{sessions: sessions, uow: uow, loc: loc, now: now}
}

func (s *focusService) Start(ctx context.Context, goalID *int64, durationSeconds int) (*domain.FocusSession, error) {
	if durationSeconds < minSessionSeconds || durationSeconds > maxSessionSeconds {
		return nil, invalidf("duration_seconds must be between %d and %d", minSessionSeconds, maxSessionSeconds)
	}
	if durationSeconds%60 != 0 {
		return nil, invalidf("Duration must be in 60 second steps")
	}

	now := s.now().UTC()
	session := &domain.FocusSession{
		GoalID:          goalID,
		DurationSeconds: durationSeconds,
		Status:          domain.SessionRunning,
		StartedAt:       now,
	}

	// Exclusivity check, expiry sweep and creation share one transaction
	// so two concurrent starts cannot both slip past the check.
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteFocusSessionRepo(tx)
		txLogs := repository.NewSQLiteLogRepo(tx)

		active, err := txSessions.Active(ctx)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		if active != nil {
			if !active.Expired(now) {
				return ErrActiveSessionExists
			}
			if err := s.completeTx(ctx, txSessions, txLogs, active, now); err != nil {
				return err
			}
		}
		return txSessions.Create(ctx, session)
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *focusService) Current(ctx context.Context) (*domain.FocusSession, error) {
	active, err := s.sessions.Active(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	if !active.Expired(now) {
		return active, nil
	}

	// The session ran out while nobody was watching. Settle it now so the
	// completion log is never lost, and report no active session.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteFocusSessionRepo(tx)
		txLogs := repository.NewSQLiteLogRepo(tx)
		return s.completeTx(ctx, txSessions, txLogs, active, now)
	})
	if err != nil {
		return nil, err
	}
	return nil, nil
}

func (s *focusService) Pause(ctx context.Context, id int64) (*domain.FocusSession, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Status != domain.SessionRunning {
		return nil, ErrSessionNotRunning
	}

	now := s.now().UTC()
	session.Status = domain.SessionPaused
	session.EndedAt = &now
	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *focusService) Resume(ctx context.Context, id int64) (*domain.FocusSession, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Status != domain.SessionPaused {
		return nil, ErrSessionNotPaused
	}

	now := s.now().UTC()
	if session.EndedAt != nil {
		session.PausedSeconds += int(now.Sub(*session.EndedAt).Seconds())
	}
	session.Status = domain.SessionRunning
	session.EndedAt = nil
	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *focusService) Cancel(ctx context.Context, id int64) (*domain.FocusSession, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Status.Terminal() {
		return nil, ErrSessionFinished
	}

	now := s.now().UTC()
	session.Status = domain.SessionCanceled
	session.EndedAt = &now
	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *focusService) Complete(ctx context.Context, id int64) (*domain.FocusSession, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Status.Terminal() {
		return nil, ErrSessionFinished
	}

	now := s.now().UTC()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteFocusSessionRepo(tx)
		txLogs := repository.NewSQLiteLogRepo(tx)
		return s.completeTx(ctx, txSessions, txLogs, session, now)
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *focusService) List(ctx context.Context, limit, offset int) ([]*domain.FocusSession, int, error) {
	return s.sessions.List(ctx, limit, offset)
}

// completeTx marks the session completed and, when it is tied to a goal,
// writes the focus log crediting the session's minutes to the day it started.
func (s *focusService) completeTx(ctx context.Context, sessions repository.FocusSessionRepo, logs repository.LogRepo, session *domain.FocusSession, now time.Time) error {
	session.Status = domain.SessionCompleted
	session.EndedAt = &now
	if err := sessions.Update(ctx, session); err != nil {
		return err
	}

	if session.GoalID == nil {
		return nil
	}
	sessionID := session.ID
	log := &domain.GoalLog{
		GoalID:         *session.GoalID,
		FocusSessionID: &sessionID,
		Date:           dateutil.KeyIn(session.StartedAt, s.loc),
		Value:          session.FocusLogValue(),
		Source:         domain.SourceFocus,
		CreatedAt:      now,
	}
	return logs.Create(ctx, log)
}
