package stats

import "tally/internal/domain"

// GoalDay identifies one cell of aggregated data.
type GoalDay struct {
	GoalID int64
	Day    string
}

// Totals maps (goal, day) pairs to the summed log value for that day.
type Totals map[GoalDay]int

// Aggregate sums log values per (goal, date), ignoring whether each log was
// manual or session-derived: a day's total is the sum of everything logged
// that day.
func Aggregate(logs []domain.GoalLog) Totals {
	totals := make(Totals, len(logs))
	for i := range logs {
		log := &logs[i]
		totals[GoalDay{GoalID: log.GoalID, Day: log.Date}] += log.Value
	}
	return totals
}

// Total returns the aggregated value for a (goal, day) pair, 0 when nothing
// was logged.
func (t Totals) Total(goalID int64, day string) int {
	return t[GoalDay{GoalID: goalID, Day: day}]
}
