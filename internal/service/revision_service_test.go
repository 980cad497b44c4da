package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/repository"
	"tally/internal/testutil"
)

func TestRevisionCreate_ClosesOpenRevision(t *testing.T) {
	env := setupEnv(t)
	svc := NewRevisionService(env.Goals, env.Revisions, env.UoW)
	ctx := context.Background()

	goal := testutil.NewTestGoal("Exercise")
	require.NoError(t, env.Goals.Create(ctx, goal))

	first, err := svc.Create(ctx, goal.ID, 30, "2024-01-01", nil)
	require.NoError(t, err)
	assert.Nil(t, first.ValidTo)

	second, err := svc.Create(ctx, goal.ID, 45, "2024-02-01", nil)
	require.NoError(t, err)
	assert.Nil(t, second.ValidTo)

	revisions, total, err := svc.List(ctx, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, revisions, 2)

	// Newest first; the older revision was closed at the newer one's start.
	assert.Equal(t, second.ID, revisions[0].ID)
	assert.Equal(t, first.ID, revisions[1].ID)
	require.NotNil(t, revisions[1].ValidTo)
	assert.Equal(t, "2024-02-01", *revisions[1].ValidTo)
}

func TestRevisionCreate_KeepsExplicitValidTo(t *testing.T) {
	env := setupEnv(t)
	svc := NewRevisionService(env.Goals, env.Revisions, env.UoW)
	ctx := context.Background()

	goal := testutil.NewTestGoal("Exercise")
	require.NoError(t, env.Goals.Create(ctx, goal))

	to := "2024-01-31"
	bounded, err := svc.Create(ctx, goal.ID, 30, "2024-01-01", &to)
	require.NoError(t, err)
	require.NotNil(t, bounded.ValidTo)

	// A bounded revision is not "open", so creating another leaves it alone.
	_, err = svc.Create(ctx, goal.ID, 45, "2024-03-01", nil)
	require.NoError(t, err)

	revisions, _, err := svc.List(ctx, goal.ID)
	require.NoError(t, err)
	require.Len(t, revisions, 2)
	require.NotNil(t, revisions[1].ValidTo)
	assert.Equal(t, "2024-01-31", *revisions[1].ValidTo)
}

func TestRevisionCreate_Validation(t *testing.T) {
	env := setupEnv(t)
	svc := NewRevisionService(env.Goals, env.Revisions, env.UoW)
	ctx := context.Background()

	goal := testutil.NewTestGoal("Exercise")
	require.NoError(t, env.Goals.Create(ctx, goal))

	var ve *ValidationError

	_, err := svc.Create(ctx, goal.ID, 0, "2024-01-01", nil)
	assert.ErrorAs(t, err, &ve)

	_, err = svc.Create(ctx, goal.ID, 30, "Jan 1 2024", nil)
	assert.ErrorAs(t, err, &ve)

	_, err = svc.Create(ctx, 9999, 30, "2024-01-01", nil)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
