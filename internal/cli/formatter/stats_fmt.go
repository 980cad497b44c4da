package formatter

import (
	"fmt"
	"strings"

	"tally/internal/stats"
)

const heatCell = "■"

var weekdayLabels = [7]string{"Mon", "", "Wed", "", "Fri", "", ""}

// RenderHeatmap draws week columns left to right, Monday on the top row.
// Intensity is relative to the number of goals in play; padding cells are
// blank.
func RenderHeatmap(cells []stats.DayCell, totalGoals int) string {
	columns := stats.WeekColumns(cells)
	if len(columns) == 0 {
		return StyleDim.Render("No days in range.") + "\n"
	}

	var b strings.Builder
	for row := 0; row < 7; row++ {
		b.WriteString(StyleDim.Render(fmt.Sprintf("%-4s", weekdayLabels[row])))
		for _, week := range columns {
			cell := week[row]
			if cell.Hits < 0 {
				b.WriteString("  ")
				continue
			}
			style := HeatStyle(stats.Intensity(cell.Hits, totalGoals))
			b.WriteString(style.Render(heatCell) + " ")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render("less "))
	for i := 0; i <= 4; i++ {
		b.WriteString(HeatStyle(float64(i) / 4).Render(heatCell) + " ")
	}
	b.WriteString(StyleDim.Render("more"))
	b.WriteString("\n")
	return b.String()
}

// RenderCompletionTable draws the recent-days completion table: one row per
// goal, one column per day, a check when the day's total met the resolved
// target.
func RenderCompletionTable(rows []stats.CompletionRow, days []string) string {
	if len(rows) == 0 {
		return StyleDim.Render("No active goals.") + "\n"
	}

	headers := make([]string, 0, len(days)+1)
	headers = append(headers, "Goal")
	for _, day := range days {
		headers = append(headers, day[5:]) // MM-DD
	}

	tableRows := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, 0, len(days)+1)
		cells = append(cells, StyleFg.Render(row.Goal.Name))
		for _, cell := range row.Cells {
			cells = append(cells, completionMark(cell))
		}
		tableRows = append(tableRows, cells)
	}

	return RenderTable(headers, tableRows)
}

func completionMark(cell stats.CompletionCell) string {
	switch {
	case cell.Hit:
		return StyleGreen.Render("✓")
	case cell.Total > 0:
		return StyleYellow.Render(fmt.Sprintf("%d/%d", cell.Total, cell.Target))
	default:
		return StyleDim.Render("·")
	}
}

// monthRulerStep is the bar chart granularity in minutes.
const monthRulerStep = 30

// RenderMonthChart draws one bar per calendar day, one bar segment per
// started half hour, with a total-hours footer.
func RenderMonthChart(month string, points []stats.DayPoint) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render(month) + "\n")

	maxMinutes := 0
	totalMinutes := 0
	for _, p := range points {
		totalMinutes += p.Minutes
		if p.Minutes > maxMinutes {
			maxMinutes = p.Minutes
		}
	}

	for _, p := range points {
		b.WriteString(StyleDim.Render(fmt.Sprintf("%2d ", p.Day)))
		segments := (p.Minutes + monthRulerStep - 1) / monthRulerStep
		if segments > 0 {
			b.WriteString(StyleBlue.Render(strings.Repeat("█", segments)))
			b.WriteString(" " + StyleFg.Render(Minutes(p.Minutes)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render("scale: one █ per started 30m"))
	b.WriteString("\n")
	b.WriteString(StyleBold.Render(fmt.Sprintf("Total: %s", Minutes(totalMinutes))))
	b.WriteString("\n")
	return b.String()
}
