package service

import (
	"context"
	"strings"

	"tally/internal/dateutil"
	"tally/internal/domain"
	"tally/internal/repository"
)

type goalService struct {
	goals repository.GoalRepo
	logs  repository.LogRepo
}

func NewGoalService(goals repository.GoalRepo, logs repository.LogRepo) GoalService {
	return &goalService{goals: goals, logs: logs}
}

func (s *goalService) Create(ctx context.Context, g *domain.Goal) error {
	g.Name = strings.TrimSpace(g.Name)
	if err := g.Validate(); err != nil {
		return &ValidationError{Msg: err.Error()}
	}
	return s.goals.Create(ctx, g)
}

func (s *goalService) Get(ctx context.Context, id int64) (*domain.Goal, error) {
	return s.goals.GetByID(ctx, id)
}

func (s *goalService) List(ctx context.Context, limit, offset int) ([]*domain.Goal, int, error) {
	return s.goals.List(ctx, limit, offset)
}

func (s *goalService) Update(ctx context.Context, id int64, upd GoalUpdate) (*domain.Goal, error) {
	g, err := s.goals.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, invalidf("Name is required")
		}
		g.Name = name
	}
	if upd.GoalType != nil {
		g.GoalType = *upd.GoalType
	}
	if upd.IsActive != nil {
		g.IsActive = *upd.IsActive
	}
	if err := g.Validate(); err != nil {
		return nil, &ValidationError{Msg: err.Error()}
	}

	if err := s.goals.Update(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *goalService) Delete(ctx context.Context, id int64) error {
	return s.goals.Delete(ctx, id)
}

func (s *goalService) Heatmap(ctx context.Context, goalID int64, from, to string) ([]HeatmapDay, error) {
	if !dateutil.Valid(from) || !dateutil.Valid(to) {
		return nil, invalidf("invalid date range")
	}
	if from > to {
		return nil, invalidf("'from' must be <= 'to'")
	}
	if _, err := s.goals.GetByID(ctx, goalID); err != nil {
		return nil, err
	}

	counts, err := s.logs.CountByDay(ctx, goalID, from, to)
	if err != nil {
		return nil, err
	}

	days := dateutil.Range(from, to)
	out := make([]HeatmapDay, 0, len(days))
	for _, day := range days {
		out = append(out, HeatmapDay{Date: day, Count: counts[day]})
	}
	return out, nil
}
