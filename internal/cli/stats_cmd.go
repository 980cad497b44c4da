package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tally/internal/apiclient"
	"tally/internal/cli/formatter"
	"tally/internal/dateutil"
	"tally/internal/stats"
)

// heatmapWeeks is the default heatmap window, roughly half a year.
const heatmapWeeks = 26

// completionDays is the completion table window.
const completionDays = 10

func newStatsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Visualize progress",
	}

	cmd.AddCommand(
		newStatsHeatmapCmd(app),
		newStatsTableCmd(app),
		newStatsMonthCmd(app),
	)

	return cmd
}

func newStatsHeatmapCmd(app *App) *cobra.Command {
	var weeks int

	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Show how many goals hit their target, day by day",
		RunE: func(cmd *cobra.Command, args []string) error {
			if weeks < 1 {
				return fmt.Errorf("weeks must be at least 1")
			}
			ctx := context.Background()

			goals, revisionsByGoal, err := activeGoalsWithRevisions(ctx, app)
			if err != nil {
				return err
			}

			today := dateutil.Today(app.Config.Location())
			from := dateutil.AddDays(today, -(weeks*7 - 1))
			days := dateutil.Range(from, today)

			logs, err := app.API.LogsInRange(ctx, from, today, apiclient.FetchAll)
			if err != nil {
				return err
			}

			cells := stats.BuildHeatmap(goals, revisionsByGoal, aggregateLogs(logs), days)
			fmt.Println(formatter.StyleHeader.Render(fmt.Sprintf("%s … %s", from, today)))
			fmt.Print(formatter.RenderHeatmap(cells, len(goals)))
			return nil
		},
	}

	cmd.Flags().IntVar(&weeks, "weeks", heatmapWeeks, "Window size in weeks")

	return cmd
}

func newStatsTableCmd(app *App) *cobra.Command {
	var days int
	var end string

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Show the recent-days completion table",
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 1 {
				return fmt.Errorf("days must be at least 1")
			}
			ctx := context.Background()

			goals, revisionsByGoal, err := activeGoalsWithRevisions(ctx, app)
			if err != nil {
				return err
			}

			if end == "" {
				end = dateutil.Today(app.Config.Location())
			}
			if !dateutil.Valid(end) {
				return fmt.Errorf("invalid end date %q, want YYYY-MM-DD", end)
			}
			window := stats.CompletionWindow(end, days)

			logs, err := app.API.LogsInRange(ctx, window[0], end, apiclient.FetchFirstPage)
			if err != nil {
				return err
			}

			rows := stats.BuildCompletionTable(goals, revisionsByGoal, aggregateLogs(logs), window)
			fmt.Print(formatter.RenderCompletionTable(rows, window))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", completionDays, "Window size in days")
	cmd.Flags().StringVar(&end, "end", "", "Last day of the window (YYYY-MM-DD, default today)")

	return cmd
}

func newStatsMonthCmd(app *App) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "month <goal>",
		Short: "Chart one goal's daily minutes over a month",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			goal, err := resolveGoal(ctx, app, args[0])
			if err != nil {
				return err
			}

			if month == "" {
				month = time.Now().In(app.Config.Location()).Format("2006-01")
			}
			from, to, err := dateutil.MonthBounds(month)
			if err != nil {
				return err
			}

			logs, err := app.API.LogsInRange(ctx, from, to, apiclient.FetchFirstPage)
			if err != nil {
				return err
			}

			points, err := stats.BuildMonthSeries(flatLogs(logs), goal.ID, month)
			if err != nil {
				return err
			}

			fmt.Println(formatter.StyleBold.Render(goal.Name))
			fmt.Print(formatter.RenderMonthChart(month, points))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month to chart (YYYY-MM, default current)")

	return cmd
}
