package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/domain"
	"tally/internal/testutil"
)

func seedGoal(t *testing.T, goals *SQLiteGoalRepo, name string) *domain.Goal {
	t.Helper()
	goal := testutil.NewTestGoal(name)
	require.NoError(t, goals.Create(context.Background(), goal))
	return goal
}

func TestLogRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	goals := NewSQLiteGoalRepo(db)
	logs := NewSQLiteLogRepo(db)
	ctx := context.Background()

	goal := seedGoal(t, goals, "Reading")
	log := testutil.NewTestLog(goal.ID, "2024-05-10", 3)
	require.NoError(t, logs.Create(ctx, log))

	fetched, err := logs.GetByID(ctx, log.ID)
	require.NoError(t, err)
	assert.Equal(t, goal.ID, fetched.GoalID)
	assert.Equal(t, "2024-05-10", fetched.Date)
	assert.Equal(t, 3, fetched.Value)
	assert.Equal(t, domain.SourceManual, fetched.Source)
	assert.Nil(t, fetched.FocusSessionID)
}

func TestLogRepo_ListByRange_InclusiveBounds(t *testing.T) {
	db := testutil.NewTestDB(t)
	goals := NewSQLiteGoalRepo(db)
	logs := NewSQLiteLogRepo(db)
	ctx := context.Background()

	goal := seedGoal(t, goals, "Reading")
	for _, date := range []string{"2024-05-09", "2024-05-10", "2024-05-11", "2024-05-12"} {
		require.NoError(t, logs.Create(ctx, testutil.NewTestLog(goal.ID, date, 1)))
	}

	page, total, err := logs.ListByRange(ctx, "2024-05-10", "2024-05-11", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, page, 2)
	// Newest first.
	assert.Equal(t, "2024-05-11", page[0].Date)
	assert.Equal(t, "2024-05-10", page[1].Date)
}

func TestLogRepo_ListByRange_OpenBounds(t *testing.T) {
	db := testutil.NewTestDB(t)
	goals := NewSQLiteGoalRepo(db)
	logs := NewSQLiteLogRepo(db)
	ctx := context.Background()

	goal := seedGoal(t, goals, "Reading")
	for _, date := range []string{"2024-05-09", "2024-05-10"} {
		require.NoError(t, logs.Create(ctx, testutil.NewTestLog(goal.ID, date, 1)))
	}

	all, total, err := logs.ListByRange(ctx, "", "", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, all, 2)

	upTo, _, err := logs.ListByRange(ctx, "", "2024-05-09", 10, 0)
	require.NoError(t, err)
	require.Len(t, upTo, 1)
	assert.Equal(t, "2024-05-09", upTo[0].Date)
}

func TestLogRepo_CountByDay(t *testing.T) {
	db := testutil.NewTestDB(t)
	goals := NewSQLiteGoalRepo(db)
	logs := NewSQLiteLogRepo(db)
	ctx := context.Background()

	goal := seedGoal(t, goals, "Reading")
	other := seedGoal(t, goals, "Other")

	require.NoError(t, logs.Create(ctx, testutil.NewTestLog(goal.ID, "2024-05-10", 1)))
	require.NoError(t, logs.Create(ctx, testutil.NewTestLog(goal.ID, "2024-05-10", 2)))
	require.NoError(t, logs.Create(ctx, testutil.NewTestLog(goal.ID, "2024-05-12", 1)))
	require.NoError(t, logs.Create(ctx, testutil.NewTestLog(other.ID, "2024-05-10", 1)))

	counts, err := logs.CountByDay(ctx, goal.ID, "2024-05-09", "2024-05-12")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"2024-05-10": 2, "2024-05-12": 1}, counts)
}

func TestLogRepo_UpdateValueAndDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	goals := NewSQLiteGoalRepo(db)
	logs := NewSQLiteLogRepo(db)
	ctx := context.Background()

	goal := seedGoal(t, goals, "Reading")
	log := testutil.NewTestLog(goal.ID, "2024-05-10", 3)
	require.NoError(t, logs.Create(ctx, log))

	require.NoError(t, logs.UpdateValue(ctx, log.ID, 7))
	fetched, err := logs.GetByID(ctx, log.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, fetched.Value)

	require.NoError(t, logs.Delete(ctx, log.ID))
	_, err = logs.GetByID(ctx, log.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, logs.Delete(ctx, log.ID), ErrNotFound)
}

func TestLogRepo_FocusDerivedLogKeepsSessionLink(t *testing.T) {
	db := testutil.NewTestDB(t)
	goals := NewSQLiteGoalRepo(db)
	logs := NewSQLiteLogRepo(db)
	sessions := NewSQLiteFocusSessionRepo(db)
	ctx := context.Background()

	goal := seedGoal(t, goals, "Deep work")
	session := testutil.NewTestSession(1500, testutil.WithSessionGoal(goal.ID))
	require.NoError(t, sessions.Create(ctx, session))

	log := testutil.NewTestLog(goal.ID, "2024-05-10", 25, testutil.WithFocusSessionID(session.ID))
	require.NoError(t, logs.Create(ctx, log))

	fetched, err := logs.GetByID(ctx, log.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.FocusSessionID)
	assert.Equal(t, session.ID, *fetched.FocusSessionID)
	assert.Equal(t, domain.SourceFocus, fetched.Source)
	assert.False(t, fetched.Manual())
}
