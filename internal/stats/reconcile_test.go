package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tally/internal/domain"
	"tally/internal/testutil"
)

func TestReconcileManual_CreateWhenNoManualLog(t *testing.T) {
	plan := ReconcileManual(domain.GoalCount, 5, nil)

	assert.Equal(t, OpCreate, plan.Op)
	assert.Equal(t, 5, plan.Value)
	assert.Equal(t, 5, plan.Total)
}

func TestReconcileManual_KeepsAutomaticContributions(t *testing.T) {
	dayLogs := []domain.GoalLog{
		*testutil.NewTestLog(1, "2024-05-10", 25, testutil.WithFocusSessionID(9)),
	}

	plan := ReconcileManual(domain.GoalTime, 40, dayLogs)

	// 25 minutes already came from a session; only 15 are manual.
	assert.Equal(t, OpCreate, plan.Op)
	assert.Equal(t, 15, plan.Value)
	assert.Equal(t, 40, plan.Total)
}

func TestReconcileManual_UpdatesExistingManualLog(t *testing.T) {
	manual := testutil.NewTestLog(1, "2024-05-10", 3)
	manual.ID = 11

	plan := ReconcileManual(domain.GoalCount, 8, []domain.GoalLog{*manual})

	assert.Equal(t, OpUpdate, plan.Op)
	assert.Equal(t, int64(11), plan.LogID)
	assert.Equal(t, 8, plan.Value)
}

func TestReconcileManual_DeletesWhenAutomaticCovers(t *testing.T) {
	manual := testutil.NewTestLog(1, "2024-05-10", 10)
	manual.ID = 11
	dayLogs := []domain.GoalLog{
		*manual,
		*testutil.NewTestLog(1, "2024-05-10", 30, testutil.WithFocusSessionID(9)),
	}

	// Desired total is already covered by the session log alone.
	plan := ReconcileManual(domain.GoalTime, 30, dayLogs)

	assert.Equal(t, OpDelete, plan.Op)
	assert.Equal(t, int64(11), plan.LogID)
	assert.Equal(t, 30, plan.Total)
}

func TestReconcileManual_DesiredBelowAutomaticClampsToZero(t *testing.T) {
	dayLogs := []domain.GoalLog{
		*testutil.NewTestLog(1, "2024-05-10", 30, testutil.WithFocusSessionID(9)),
	}

	plan := ReconcileManual(domain.GoalTime, 10, dayLogs)

	// Session contributions are never discarded.
	assert.Equal(t, OpNone, plan.Op)
	assert.Equal(t, 30, plan.Total)
}

func TestReconcileManual_BooleanClampsToOne(t *testing.T) {
	plan := ReconcileManual(domain.GoalBoolean, 5, nil)

	assert.Equal(t, OpCreate, plan.Op)
	assert.Equal(t, 1, plan.Value)
	assert.Equal(t, 1, plan.Total)

	done := testutil.NewTestLog(1, "2024-05-10", 1)
	done.ID = 3
	plan = ReconcileManual(domain.GoalBoolean, 0, []domain.GoalLog{*done})
	assert.Equal(t, OpDelete, plan.Op)
	assert.Equal(t, int64(3), plan.LogID)
}

func TestReconcileManual_Idempotent(t *testing.T) {
	manual := testutil.NewTestLog(1, "2024-05-10", 8)
	manual.ID = 11

	plan := ReconcileManual(domain.GoalCount, 8, []domain.GoalLog{*manual})

	assert.Equal(t, OpNone, plan.Op)
	assert.Equal(t, 8, plan.Total)
}

func TestReconcileManual_ZeroDeletesManualLog(t *testing.T) {
	manual := testutil.NewTestLog(1, "2024-05-10", 8)
	manual.ID = 11

	plan := ReconcileManual(domain.GoalCount, 0, []domain.GoalLog{*manual})

	assert.Equal(t, OpDelete, plan.Op)
	assert.Equal(t, int64(11), plan.LogID)
	assert.Zero(t, plan.Total)
}
