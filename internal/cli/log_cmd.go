package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tally/internal/apiclient"
	"tally/internal/cli/formatter"
	"tally/internal/dateutil"
	"tally/internal/domain"
	"tally/internal/stats"
)

func newLogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record and inspect daily progress",
	}

	cmd.AddCommand(
		newLogSetCmd(app),
		newLogTodayCmd(app),
	)

	return cmd
}

func newLogSetCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "set <goal> <total>",
		Short: "Set a goal's total for a day",
		Long: "Sets the day's total, not an increment. Contributions from " +
			"focus sessions are kept; only the manual remainder is written.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			goal, err := resolveGoal(ctx, app, args[0])
			if err != nil {
				return err
			}
			desired, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid total %q: %w", args[1], err)
			}
			if desired < 0 {
				return fmt.Errorf("total must not be negative")
			}

			if date == "" {
				date = dateutil.Today(app.Config.Location())
			}
			if !dateutil.Valid(date) {
				return fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
			}

			dayLogs, err := goalLogsOn(ctx, app, goal.ID, date)
			if err != nil {
				return err
			}

			plan := stats.ReconcileManual(goal.GoalType, desired, dayLogs)
			switch plan.Op {
			case stats.OpCreate:
				if _, err := app.API.CreateLog(ctx, goal.ID, date, plan.Value); err != nil {
					return err
				}
			case stats.OpUpdate:
				if _, err := app.API.UpdateLog(ctx, goal.ID, plan.LogID, plan.Value); err != nil {
					return err
				}
			case stats.OpDelete:
				if err := app.API.DeleteLog(ctx, goal.ID, plan.LogID); err != nil {
					return err
				}
			}

			fmt.Printf("%s on %s: total %d\n", goal.Name, date, plan.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to set (YYYY-MM-DD, default today)")

	return cmd
}

// goalLogsOn fetches every log for one goal on one day.
func goalLogsOn(ctx context.Context, app *App, goalID int64, date string) ([]domain.GoalLog, error) {
	logs, err := app.API.LogsInRange(ctx, date, date, apiclient.FetchAll)
	if err != nil {
		return nil, err
	}
	var out []domain.GoalLog
	for _, l := range logs {
		if l.GoalID == goalID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func newLogTodayCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's progress against each goal's target",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if date == "" {
				date = dateutil.Today(app.Config.Location())
			}
			if !dateutil.Valid(date) {
				return fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
			}

			goals, revisionsByGoal, err := activeGoalsWithRevisions(ctx, app)
			if err != nil {
				return err
			}
			if len(goals) == 0 {
				fmt.Println("No active goals.")
				return nil
			}

			logs, err := app.API.LogsInRange(ctx, date, date, apiclient.FetchAll)
			if err != nil {
				return err
			}
			totals := aggregateLogs(logs)

			rows := make([][]string, 0, len(goals))
			for i := range goals {
				goal := &goals[i]
				target := stats.TargetFor(goal, revisionsByGoal[goal.ID], date)
				total := totals.Total(goal.ID, date)
				mark := formatter.StyleDim.Render("·")
				if stats.Hit(total, target) {
					mark = formatter.StyleGreen.Render("✓")
				}
				targetStr := formatter.StyleDim.Render("-")
				left := formatter.StyleDim.Render("-")
				if target > 0 {
					targetStr = strconv.Itoa(target)
					remaining := target - total
					if remaining < 0 {
						remaining = 0
					}
					left = strconv.Itoa(remaining)
					if remaining == 0 {
						left = formatter.StyleGreen.Render("0")
					}
				}
				rows = append(rows, []string{
					formatter.StyleFg.Render(goal.Name),
					strconv.Itoa(total),
					targetStr,
					left,
					mark,
				})
			}

			fmt.Println(formatter.StyleHeader.Render(date))
			fmt.Print(formatter.RenderTable([]string{"Goal", "Total", "Target", "Left", "Hit"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to show (YYYY-MM-DD, default today)")

	return cmd
}

// activeGoalsWithRevisions fetches all active goals and their full target
// history, keyed by goal id.
func activeGoalsWithRevisions(ctx context.Context, app *App) ([]domain.Goal, map[int64][]domain.GoalRevision, error) {
	all, err := app.API.ListGoals(ctx, apiclient.FetchAll)
	if err != nil {
		return nil, nil, err
	}

	var goals []domain.Goal
	revisionsByGoal := map[int64][]domain.GoalRevision{}
	for _, g := range all {
		if !g.IsActive {
			continue
		}
		goals = append(goals, *g)
		revs, err := app.API.ListRevisions(ctx, g.ID)
		if err != nil {
			return nil, nil, err
		}
		for _, r := range revs {
			revisionsByGoal[g.ID] = append(revisionsByGoal[g.ID], *r)
		}
	}
	return goals, revisionsByGoal, nil
}

func flatLogs(logs []*domain.GoalLog) []domain.GoalLog {
	flat := make([]domain.GoalLog, 0, len(logs))
	for _, l := range logs {
		flat = append(flat, *l)
	}
	return flat
}

func aggregateLogs(logs []*domain.GoalLog) stats.Totals {
	return stats.Aggregate(flatLogs(logs))
}
