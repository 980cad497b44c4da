package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tally/internal/apiclient"
	"tally/internal/cli/formatter"
	"tally/internal/dateutil"
	"tally/internal/domain"
	"tally/internal/engine"
)

func newFocusCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Run and inspect focus sessions",
	}

	cmd.AddCommand(
		newFocusStartCmd(app),
		newFocusStatusCmd(app),
		newFocusHistoryCmd(app),
	)

	return cmd
}

func newFocusStartCmd(app *App) *cobra.Command {
	var goalInput string
	var minutes int

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a focus session and watch the countdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var goalID *int64
			if goalInput != "" {
				goal, err := resolveGoal(ctx, app, goalInput)
				if err != nil {
					return err
				}
				goalID = &goal.ID
			}

			notifier := &terminalNotifier{}
			eng := engine.New(app.API, notifier, nil)

			session, err := eng.Start(ctx, goalID, minutes*60)
			switch {
			case errors.Is(err, apiclient.ErrActiveSession) && session != nil:
				fmt.Println(formatter.StyleYellow.Render(
					"A session is already running; attaching to it."))
			case err != nil:
				return err
			}

			if !app.IsInteractive() {
				fmt.Printf("Session #%d running, %s remaining. Re-attach with `tally focus status`.\n",
					session.ID, formatter.Clock(eng.Remaining()))
				return nil
			}

			return runTimer(eng, notifier)
		},
	}

	cmd.Flags().StringVar(&goalInput, "goal", "", "Goal to credit when the session completes")
	cmd.Flags().IntVar(&minutes, "minutes", 25, "Session length in minutes")

	return cmd
}

func newFocusStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Attach to the current session, if any",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			notifier := &terminalNotifier{}
			eng := engine.New(app.API, notifier, nil)
			if err := eng.Bootstrap(ctx); err != nil {
				return err
			}

			session := eng.Session()
			if session == nil {
				fmt.Println("No active session.")
				return nil
			}

			if !app.IsInteractive() {
				fmt.Printf("Session #%d is %s, %s remaining.\n",
					session.ID, session.Status, formatter.Clock(eng.Remaining()))
				return nil
			}

			return runTimer(eng, notifier)
		},
	}
}

func runTimer(eng *engine.Engine, notifier *terminalNotifier) error {
	program := tea.NewProgram(newTimerModel(eng, notifier))
	final, err := program.Run()
	if err != nil {
		return err
	}

	if m, ok := final.(timerModel); ok && m.detached {
		if s := eng.Session(); s != nil {
			fmt.Printf("Detached. Session #%d keeps running; `tally focus status` re-attaches.\n", s.ID)
		}
	}
	return nil
}

func newFocusHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent sessions with focus-time summaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			sessions, total, err := app.API.ListSessions(ctx, limit, 0)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Println("No sessions yet. Start one with `tally focus start`.")
				return nil
			}

			loc := app.Config.Location()
			today := dateutil.Today(loc)
			weekStart := dateutil.AddDays(today, -6)

			todayMinutes, weekMinutes := 0, 0
			rows := make([][]string, 0, len(sessions))
			for _, s := range sessions {
				day := dateutil.KeyIn(s.StartedAt, loc)
				if s.Status == domain.SessionCompleted {
					minutes := s.FocusLogValue()
					if day == today {
						todayMinutes += minutes
					}
					if day >= weekStart && day <= today {
						weekMinutes += minutes
					}
				}

				goalCol := formatter.StyleDim.Render("-")
				if s.GoalID != nil {
					goalCol = "#" + strconv.FormatInt(*s.GoalID, 10)
				}
				rows = append(rows, []string{
					strconv.FormatInt(s.ID, 10),
					day,
					s.StartedAt.In(loc).Format("15:04"),
					formatter.Minutes(s.DurationSeconds / 60),
					goalCol,
					formatter.StatusStyle(s.Status).Render(string(s.Status)),
				})
			}

			fmt.Print(formatter.RenderTable(
				[]string{"ID", "Date", "Start", "Length", "Goal", "Status"}, rows))
			fmt.Printf("\nToday: %s focused • Last 7 days: %s (%d sessions total)\n",
				formatter.Minutes(todayMinutes), formatter.Minutes(weekMinutes), total)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Number of sessions to list")

	return cmd
}
