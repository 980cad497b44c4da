// Package stats holds the pure temporal-resolution and aggregation logic
// shared by every presentation surface: target resolution against versioned
// revisions, day-bucketed log totals, hit classification, manual-log
// reconciliation and the builders for the heatmap, completion table and
// month chart. Nothing in this package performs I/O.
package stats

import "tally/internal/domain"

// ResolveTarget returns the target value in effect on the given day: among
// the revisions whose validity window contains the day, the one with the
// latest ValidFrom wins. When two candidates share a ValidFrom the larger
// revision ID (latest insertion) wins, keeping the result independent of
// input order. Returns 0 when no revision matches, meaning no target was
// configured for that day.
func ResolveTarget(revisions []domain.GoalRevision, day string) int {
	var chosen *domain.GoalRevision
	for i := range revisions {
		rev := &revisions[i]
		if !rev.Contains(day) {
			continue
		}
		if chosen == nil || rev.ValidFrom > chosen.ValidFrom ||
			(rev.ValidFrom == chosen.ValidFrom && rev.ID > chosen.ID) {
			chosen = rev
		}
	}
	if chosen == nil {
		return 0
	}
	return chosen.TargetValue
}

// TargetFor resolves the effective target for a goal on a day. Boolean
// goals carry a fixed implicit target of 1 and never consult revisions.
func TargetFor(goal *domain.Goal, revisions []domain.GoalRevision, day string) int {
	if goal.GoalType == domain.GoalBoolean {
		return 1
	}
	return ResolveTarget(revisions, day)
}

// Hit classifies a (goal, day) pair: the aggregated total meets or exceeds
// a configured target. A target of 0 means "no target" and is never a hit.
func Hit(total, target int) bool {
	return target > 0 && total >= target
}
