package service

import (
	"context"
	"fmt"
	"time"

	"tally/internal/dateutil"
	"tally/internal/domain"
	"tally/internal/repository"
)

type logService struct {
	goals repository.GoalRepo
	logs  repository.LogRepo
}

func NewLogService(goals repository.GoalRepo, logs repository.LogRepo) LogService {
	return &logService{goals: goals, logs: logs}
}

func (s *logService) Create(ctx context.Context, goalID int64, date string, value int) (*domain.GoalLog, error) {
	if !dateutil.Valid(date) {
		return nil, invalidf("invalid date")
	}
	if value < 1 {
		return nil, invalidf("value must be >= 1")
	}
	if _, err := s.goals.GetByID(ctx, goalID); err != nil {
		return nil, err
	}

	log := &domain.GoalLog{
		GoalID:    goalID,
		Date:      date,
		Value:     value,
		Source:    domain.SourceManual,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.logs.Create(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

func (s *logService) ListByGoal(ctx context.Context, goalID int64, limit, offset int) ([]*domain.GoalLog, int, error) {
	if _, err := s.goals.GetByID(ctx, goalID); err != nil {
		return nil, 0, err
	}
	return s.logs.ListByGoal(ctx, goalID, limit, offset)
}

func (s *logService) ListByRange(ctx context.Context, startDate, endDate string, limit, offset int) ([]*domain.GoalLog, int, error) {
	if startDate != "" && !dateutil.Valid(startDate) {
		return nil, 0, invalidf("invalid start_date")
	}
	if endDate != "" && !dateutil.Valid(endDate) {
		return nil, 0, invalidf("invalid end_date")
	}
	return s.logs.ListByRange(ctx, startDate, endDate, limit, offset)
}

func (s *logService) UpdateValue(ctx context.Context, goalID, logID int64, value int) (*domain.GoalLog, error) {
	if value < 1 {
		return nil, invalidf("value must be >= 1")
	}
	log, err := s.manualLog(ctx, goalID, logID)
	if err != nil {
		return nil, err
	}
	if err := s.logs.UpdateValue(ctx, logID, value); err != nil {
		return nil, err
	}
	log.Value = value
	return log, nil
}

func (s *logService) Delete(ctx context.Context, goalID, logID int64) error {
	if _, err := s.manualLog(ctx, goalID, logID); err != nil {
		return err
	}
	return s.logs.Delete(ctx, logID)
}

// manualLog loads a log and verifies it belongs to the goal and was entered
// manually. Focus-derived logs are reported as not found so they stay
// immutable through this surface.
func (s *logService) manualLog(ctx context.Context, goalID, logID int64) (*domain.GoalLog, error) {
	if _, err := s.goals.GetByID(ctx, goalID); err != nil {
		return nil, err
	}
	log, err := s.logs.GetByID(ctx, logID)
	if err != nil {
		return nil, err
	}
	if log.GoalID != goalID || !log.Manual() {
		return nil, fmt.Errorf("goal log: %w", repository.ErrNotFound)
	}
	return log, nil
}
