package stats

import "tally/internal/domain"

// ManualOp is the write action needed to bring a goal's manual log for a
// day in line with a desired total.
type ManualOp int

const (
	OpNone ManualOp = iota
	OpCreate
	OpUpdate
	OpDelete
)

// ManualPlan describes the single write (if any) that realizes a desired
// day total without double-counting session-derived contributions.
type ManualPlan struct {
	Op    ManualOp
	LogID int64 // existing manual log, for OpUpdate and OpDelete
	Value int   // manual amount to persist, for OpCreate and OpUpdate
	Total int   // resulting day total after the write
}

// ReconcileManual plans the manual-log write for setting a goal's total on
// one day to desiredTotal, given every log already recorded for that
// (goal, day). Automatic contributions are kept as-is; only the manual
// remainder is created, updated or deleted:
//
//	manual = max(0, desiredTotal - nonManualToday)
//
// Boolean goals clamp the manual amount to 0 or 1. A manual amount of 0
// deletes an existing manual log rather than zeroing it, so the total
// degrades gracefully to the purely automatic sum. Planning the same
// desired total twice yields OpNone the second time.
func ReconcileManual(goalType domain.GoalType, desiredTotal int, dayLogs []domain.GoalLog) ManualPlan {
	var manual *domain.GoalLog
	totalBefore := 0
	for i := range dayLogs {
		log := &dayLogs[i]
		totalBefore += log.Value
		if log.Manual() && manual == nil {
			manual = log
		}
	}

	saved := 0
	if manual != nil {
		saved = manual.Value
	}
	nonManual := totalBefore - saved
	if nonManual < 0 {
		nonManual = 0
	}

	var toSave int
	if goalType == domain.GoalBoolean {
		if desiredTotal > 0 {
			toSave = 1
		}
	} else {
		toSave = desiredTotal - nonManual
		if toSave < 0 {
			toSave = 0
		}
	}

	plan := ManualPlan{Total: nonManual + toSave}
	switch {
	case manual != nil && toSave == 0:
		plan.Op = OpDelete
		plan.LogID = manual.ID
	case manual != nil && toSave != saved:
		plan.Op = OpUpdate
		plan.LogID = manual.ID
		plan.Value = toSave
	case manual == nil && toSave > 0:
		plan.Op = OpCreate
		plan.Value = toSave
	default:
		plan.Op = OpNone
	}
	return plan
}
