package stats

import (
	"fmt"

	"tally/internal/dateutil"
	"tally/internal/domain"
)

// DayCell is one heatmap cell: how many active goals hit their target on a
// day. Hits is -1 for layout padding cells.
type DayCell struct {
	Day  string
	Hits int
}

// BuildHeatmap classifies every (active goal, day) pair in the window and
// counts hits per day. Inactive goals are excluded before calling.
func BuildHeatmap(goals []domain.Goal, revisionsByGoal map[int64][]domain.GoalRevision, totals Totals, days []string) []DayCell {
	cells := make([]DayCell, 0, len(days))
	for _, day := range days {
		hits := 0
		for i := range goals {
			goal := &goals[i]
			target := TargetFor(goal, revisionsByGoal[goal.ID], day)
			if Hit(totals.Total(goal.ID, day), target) {
				hits++
			}
		}
		cells = append(cells, DayCell{Day: day, Hits: hits})
	}
	return cells
}

// Intensity maps a day's hit count to [0, 1] relative to the number of
// goals in play.
func Intensity(hits, totalGoals int) float64 {
	if totalGoals == 0 || hits <= 0 {
		return 0
	}
	return float64(hits) / float64(totalGoals)
}

// WeekColumns lays heatmap cells into Monday-first columns of seven,
// padding the first and last weeks so every column is full.
func WeekColumns(cells []DayCell) [][]DayCell {
	var columns [][]DayCell
	var week []DayCell

	pad := DayCell{Hits: -1}
	for _, cell := range cells {
		if len(week) == 0 {
			for i := 0; i < dateutil.WeekdayIndex(cell.Day); i++ {
				week = append(week, pad)
			}
		}
		week = append(week, cell)
		if len(week) == 7 {
			columns = append(columns, week)
			week = nil
		}
	}
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, pad)
		}
		columns = append(columns, week)
	}
	return columns
}

// CompletionCell is one (goal, day) cell of the completion table.
type CompletionCell struct {
	Day    string
	Total  int
	Target int
	Hit    bool
}

// CompletionRow is one goal's row across the table window.
type CompletionRow struct {
	Goal  domain.Goal
	Cells []CompletionCell
}

// CompletionWindow returns the n-day window of day keys ending at end,
// oldest first.
func CompletionWindow(end string, n int) []string {
	return dateutil.Range(dateutil.AddDays(end, -(n-1)), end)
}

// BuildCompletionTable classifies each (goal, day) pair of the window.
func BuildCompletionTable(goals []domain.Goal, revisionsByGoal map[int64][]domain.GoalRevision, totals Totals, days []string) []CompletionRow {
	rows := make([]CompletionRow, 0, len(goals))
	for i := range goals {
		goal := goals[i]
		row := CompletionRow{Goal: goal, Cells: make([]CompletionCell, 0, len(days))}
		for _, day := range days {
			target := TargetFor(&goal, revisionsByGoal[goal.ID], day)
			total := totals.Total(goal.ID, day)
			row.Cells = append(row.Cells, CompletionCell{
				Day:    day,
				Total:  total,
				Target: target,
				Hit:    Hit(total, target),
			})
		}
		rows = append(rows, row)
	}
	return rows
}

// DayPoint is one day of the month chart: summed minutes for the selected
// goal.
type DayPoint struct {
	Day     int
	Minutes int
}

// BuildMonthSeries buckets a goal's logged values by day of month for a
// YYYY-MM month, one point per calendar day including empty ones.
func BuildMonthSeries(logs []domain.GoalLog, goalID int64, month string) ([]DayPoint, error) {
	from, to, err := dateutil.MonthBounds(month)
	if err != nil {
		return nil, fmt.Errorf("building month series: %w", err)
	}

	byDay := map[int]int{}
	for i := range logs {
		log := &logs[i]
		if log.GoalID != goalID || log.Date < from || log.Date > to {
			continue
		}
		byDay[dateutil.DayOfMonth(log.Date)] += log.Value
	}

	daysInMonth := dateutil.DayOfMonth(to)
	points := make([]DayPoint, 0, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		points = append(points, DayPoint{Day: d, Minutes: byDay[d]})
	}
	return points, nil
}
