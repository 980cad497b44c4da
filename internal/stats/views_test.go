package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/domain"
)

func TestBuildHeatmap_CountsHitsPerDay(t *testing.T) {
	goals := []domain.Goal{
		{ID: 1, GoalType: domain.GoalTime, IsActive: true},
		{ID: 2, GoalType: domain.GoalBoolean, IsActive: true},
	}
	revisions := map[int64][]domain.GoalRevision{
		1: {{ID: 1, TargetValue: 30, ValidFrom: "2024-05-01"}},
	}
	totals := Aggregate([]domain.GoalLog{
		{GoalID: 1, Date: "2024-05-01", Value: 30},
		{GoalID: 2, Date: "2024-05-01", Value: 1},
		{GoalID: 1, Date: "2024-05-02", Value: 29},
	})

	cells := BuildHeatmap(goals, revisions, totals, []string{"2024-05-01", "2024-05-02", "2024-05-03"})
	require.Len(t, cells, 3)
	assert.Equal(t, 2, cells[0].Hits)
	assert.Equal(t, 0, cells[1].Hits, "29 of 30 is a miss and the boolean goal has no log")
	assert.Equal(t, 0, cells[2].Hits)
}

func TestIntensity(t *testing.T) {
	assert.Equal(t, 0.0, Intensity(3, 0))
	assert.Equal(t, 0.5, Intensity(2, 4))
	assert.Equal(t, 1.0, Intensity(4, 4))
}

func TestWeekColumns_PadsPartialWeeks(t *testing.T) {
	// 2024-05-01 is a Wednesday: two leading pads, then cells fill columns
	// of seven with trailing pads in the final week.
	cells := make([]DayCell, 0, 10)
	for _, day := range CompletionWindow("2024-05-10", 10) {
		cells = append(cells, DayCell{Day: day})
	}

	columns := WeekColumns(cells)
	require.Len(t, columns, 2)
	assert.Equal(t, -1, columns[0][0].Hits)
	assert.Equal(t, -1, columns[0][1].Hits)
	assert.Equal(t, "2024-05-01", columns[0][2].Day)
	assert.Equal(t, "2024-05-10", columns[1][4].Day)
	assert.Equal(t, -1, columns[1][5].Hits)
	assert.Equal(t, -1, columns[1][6].Hits)
}

func TestCompletionWindow(t *testing.T) {
	days := CompletionWindow("2024-05-10", 10)
	require.Len(t, days, 10)
	assert.Equal(t, "2024-05-01", days[0])
	assert.Equal(t, "2024-05-10", days[9])
}

func TestBuildCompletionTable(t *testing.T) {
	goals := []domain.Goal{{ID: 1, Name: "Read", GoalType: domain.GoalCount, IsActive: true}}
	revisions := map[int64][]domain.GoalRevision{
		1: {{ID: 1, TargetValue: 2, ValidFrom: "2024-05-01"}},
	}
	totals := Aggregate([]domain.GoalLog{
		{GoalID: 1, Date: "2024-05-01", Value: 2},
		{GoalID: 1, Date: "2024-05-02", Value: 1},
	})

	rows := BuildCompletionTable(goals, revisions, totals, []string{"2024-05-01", "2024-05-02"})
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Cells[0].Hit)
	assert.False(t, rows[0].Cells[1].Hit)
	assert.Equal(t, 2, rows[0].Cells[1].Target)
}

func TestBuildMonthSeries(t *testing.T) {
	logs := []domain.GoalLog{
		{GoalID: 1, Date: "2024-02-03", Value: 30},
		{GoalID: 1, Date: "2024-02-03", Value: 15},
		{GoalID: 1, Date: "2024-02-29", Value: 60},
		{GoalID: 2, Date: "2024-02-03", Value: 99}, // other goal
		{GoalID: 1, Date: "2024-03-01", Value: 99}, // outside month
	}

	points, err := BuildMonthSeries(logs, 1, "2024-02")
	require.NoError(t, err)
	require.Len(t, points, 29)
	assert.Equal(t, 45, points[2].Minutes)
	assert.Equal(t, 60, points[28].Minutes)
	assert.Equal(t, 0, points[0].Minutes)

	_, err = BuildMonthSeries(nil, 1, "bogus")
	assert.Error(t, err)
}
