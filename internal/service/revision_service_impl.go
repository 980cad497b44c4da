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

type revisionService struct {
	goals     repository.GoalRepo
	revisions repository.RevisionRepo
	uow       db.UnitOfWork
}

func NewRevisionService(goals repository.GoalRepo, revisions repository.RevisionRepo, uow db.UnitOfWork) RevisionService {
	return &revisionService{goals: goals, revisions: revisions, uow: uow}
}

func (s *revisionService) Create(ctx context.Context, goalID int64, targetValue int, validFrom string, validTo *string) (*domain.GoalRevision, error) {
	if targetValue < 1 {
		return nil, invalidf("target_value must be >= 1")
	}
	if !dateutil.Valid(validFrom) {
		return nil, invalidf("invalid valid_from date")
	}
	if validTo != nil && !dateutil.Valid(*validTo) {
		return nil, invalidf("invalid valid_to date")
	}

	if _, err := s.goals.GetByID(ctx, goalID); err != nil {
		return nil, err
	}

	rev := &domain.GoalRevision{
		GoalID:      goalID,
		TargetValue: targetValue,
		ValidFrom:   validFrom,
		ValidTo:     validTo,
		CreatedAt:   time.Now().UTC(),
	}

	// Closing the previous open revision and appending the new one must
	// land together, or the goal could end up with two open revisions.
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRevisions := repository.NewSQLiteRevisionRepo(tx)

		current, err := txRevisions.CurrentOpen(ctx, goalID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		if current != nil {
			if err := txRevisions.Close(ctx, current.ID, validFrom); err != nil {
				return err
			}
		}
		return txRevisions.Create(ctx, rev)
	})
	if err != nil {
		return nil, err
	}
	return rev, nil
}

func (s *revisionService) List(ctx context.Context, goalID int64) ([]*domain.GoalRevision, int, error) {
	if _, err := s.goals.GetByID(ctx, goalID); err != nil {
		return nil, 0, err
	}
	return s.revisions.ListByGoal(ctx, goalID)
}
