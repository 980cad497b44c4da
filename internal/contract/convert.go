package contract

import "tally/internal/domain"

func GoalFromDomain(g *domain.Goal) Goal {
	return Goal{
		ID:        g.ID,
		Name:      g.Name,
		GoalType:  string(g.GoalType),
		IsActive:  g.IsActive,
		CreatedAt: g.CreatedAt,
	}
}

func (g Goal) Domain() *domain.Goal {
	return &domain.Goal{
		ID:        g.ID,
		Name:      g.Name,
		GoalType:  domain.GoalType(g.GoalType),
		IsActive:  g.IsActive,
		CreatedAt: g.CreatedAt,
	}
}

func RevisionFromDomain(r *domain.GoalRevision) Revision {
	return Revision{
		ID:          r.ID,
		GoalID:      r.GoalID,
		TargetValue: r.TargetValue,
		ValidFrom:   r.ValidFrom,
		ValidTo:     r.ValidTo,
		CreatedAt:   r.CreatedAt,
	}
}

func (r Revision) Domain() *domain.GoalRevision {
	return &domain.GoalRevision{
		ID:          r.ID,
		GoalID:      r.GoalID,
		TargetValue: r.TargetValue,
		ValidFrom:   r.ValidFrom,
		ValidTo:     r.ValidTo,
		CreatedAt:   r.CreatedAt,
	}
}

func LogFromDomain(l *domain.GoalLog) Log {
	return Log{
		ID:             l.ID,
		GoalID:         l.GoalID,
		FocusSessionID: l.FocusSessionID,
		Date:           l.Date,
		Value:          l.Value,
		Source:         string(l.Source),
		CreatedAt:      l.CreatedAt,
	}
}

func (l Log) Domain() *domain.GoalLog {
	return &domain.GoalLog{
		ID:             l.ID,
		GoalID:         l.GoalID,
		FocusSessionID: l.FocusSessionID,
		Date:           l.Date,
		Value:          l.Value,
		Source:         domain.LogSource(l.Source),
		CreatedAt:      l.CreatedAt,
	}
}

func SessionFromDomain(s *domain.FocusSession) Session {
	return Session{
		ID:              s.ID,
		GoalID:          s.GoalID,
		DurationSeconds: s.DurationSeconds,
		PausedSeconds:   s.PausedSeconds,
		Status:          string(s.Status),
		StartedAt:       s.StartedAt,
		EndedAt:         s.EndedAt,
	}
}

func (s Session) Domain() *domain.FocusSession {
	return &domain.FocusSession{
		ID:              s.ID,
		GoalID:          s.GoalID,
		DurationSeconds: s.DurationSeconds,
		PausedSeconds:   s.PausedSeconds,
		Status:          domain.SessionStatus(s.Status),
		StartedAt:       s.StartedAt,
		EndedAt:         s.EndedAt,
	}
}
