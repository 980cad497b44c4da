package formatter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/dateutil"
	"tally/internal/domain"
	"tally/internal/stats"
)

// ansiPattern matches ANSI escape sequences for stripping before assertions,
// so tests pass regardless of the terminal's color profile.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRenderHeatmap_SevenRowsPlusLegend(t *testing.T) {
	// 2024-05-06 is a Monday; two full weeks need no padding.
	days := dateutil.Range("2024-05-06", "2024-05-19")
	cells := make([]stats.DayCell, 0, len(days))
	for i, day := range days {
		cells = append(cells, stats.DayCell{Day: day, Hits: i % 3})
	}

	out := stripANSI(RenderHeatmap(cells, 3))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// 7 weekday rows, a blank line, and the legend.
	require.Len(t, lines, 9)
	assert.True(t, strings.HasPrefix(lines[0], "Mon"))
	assert.True(t, strings.HasPrefix(lines[2], "Wed"))
	assert.True(t, strings.HasPrefix(lines[4], "Fri"))
	assert.Contains(t, lines[8], "less")
	assert.Contains(t, lines[8], "more")

	// Two week columns means two cells per weekday row.
	assert.Equal(t, 2, strings.Count(lines[0], heatCell))
}

func TestRenderHeatmap_PaddingCellsBlank(t *testing.T) {
	// Window starting on a Thursday pads Mon-Wed of the first column.
	days := dateutil.Range("2024-05-09", "2024-05-12")
	cells := make([]stats.DayCell, 0, len(days))
	for _, day := range days {
		cells = append(cells, stats.DayCell{Day: day, Hits: 1})
	}

	out := stripANSI(RenderHeatmap(cells, 1))
	lines := strings.Split(out, "\n")
	assert.NotContains(t, lines[0], heatCell) // Monday row is all padding
	assert.Contains(t, lines[3], heatCell)    // Thursday row has the first day
}

func TestRenderHeatmap_Empty(t *testing.T) {
	out := stripANSI(RenderHeatmap(nil, 0))
	assert.Contains(t, out, "No days in range.")
}

func TestRenderCompletionTable(t *testing.T) {
	goals := []domain.Goal{
		{ID: 1, Name: "Reading", GoalType: domain.GoalCount, IsActive: true},
	}
	revisions := map[int64][]domain.GoalRevision{
		1: {{ID: 1, GoalID: 1, TargetValue: 30, ValidFrom: "2024-01-01"}},
	}
	totals := stats.Totals{
		{GoalID: 1, Day: "2024-05-10"}: 30,
		{GoalID: 1, Day: "2024-05-11"}: 12,
	}
	days := stats.CompletionWindow("2024-05-11", 3)

	rows := stats.BuildCompletionTable(goals, revisions, totals, days)
	out := stripANSI(RenderCompletionTable(rows, days))

	assert.Contains(t, out, "Goal")
	assert.Contains(t, out, "05-09")
	assert.Contains(t, out, "05-11")
	assert.Contains(t, out, "Reading")
	assert.Contains(t, out, "✓")     // the hit day
	assert.Contains(t, out, "12/30") // partial day shows progress
	assert.Contains(t, out, "·")     // empty day
}

func TestRenderCompletionTable_NoGoals(t *testing.T) {
	out := stripANSI(RenderCompletionTable(nil, []string{"2024-05-11"}))
	assert.Contains(t, out, "No active goals.")
}

func TestRenderMonthChart(t *testing.T) {
	points := []stats.DayPoint{
		{Day: 1, Minutes: 0},
		{Day: 2, Minutes: 25},
		{Day: 3, Minutes: 90},
	}

	out := stripANSI(RenderMonthChart("2024-05", points))

	assert.Contains(t, out, "2024-05")
	assert.Contains(t, out, "25m")
	assert.Contains(t, out, "1h 30m")
	assert.Contains(t, out, "Total: 1h 55m")

	lines := strings.Split(out, "\n")
	var day2, day3 string
	for _, line := range lines {
		if strings.HasPrefix(line, " 2 ") {
			day2 = line
		}
		if strings.HasPrefix(line, " 3 ") {
			day3 = line
		}
	}
	// One segment per started half hour.
	assert.Equal(t, 1, strings.Count(day2, "█"))
	assert.Equal(t, 3, strings.Count(day3, "█"))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"ID", "Name"},
		[][]string{{"1", "Reading"}, {"42", "Deep work"}},
	))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	// Header, separator, two rows; every Name column starts at the same offset.
	assert.Equal(t, strings.Index(lines[0], "Name"), strings.Index(lines[2], "Reading"))
	assert.Equal(t, strings.Index(lines[0], "Name"), strings.Index(lines[3], "Deep work"))
}
