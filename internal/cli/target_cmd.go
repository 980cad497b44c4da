package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tally/internal/cli/formatter"
	"tally/internal/dateutil"
)

func newTargetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "target",
		Short: "Manage goal targets",
		Long: "Targets are versioned: setting a new one closes the current " +
			"open revision the day the new one starts, so past days keep the " +
			"target that applied back then.",
	}

	cmd.AddCommand(
		newTargetSetCmd(app),
		newTargetListCmd(app),
	)

	return cmd
}

func newTargetSetCmd(app *App) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "set <goal> <value>",
		Short: "Set a goal's target from a given day onward",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			goal, err := resolveGoal(ctx, app, args[0])
			if err != nil {
				return err
			}
			value, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid target value %q: %w", args[1], err)
			}

			if from == "" {
				from = dateutil.Today(app.Config.Location())
			}
			var validTo *string
			if to != "" {
				validTo = &to
			}

			rev, err := app.API.CreateRevision(ctx, goal.ID, value, from, validTo)
			if err != nil {
				return err
			}
			fmt.Printf("Target for %s is %d from %s\n", goal.Name, rev.TargetValue, rev.ValidFrom)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First day the target applies (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&to, "to", "", "Last day the target applies (YYYY-MM-DD, default open-ended)")

	return cmd
}

func newTargetListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list <goal>",
		Short: "Show a goal's target history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			goal, err := resolveGoal(ctx, app, args[0])
			if err != nil {
				return err
			}

			revs, err := app.API.ListRevisions(ctx, goal.ID)
			if err != nil {
				return err
			}
			if len(revs) == 0 {
				fmt.Printf("No targets set for %s yet.\n", goal.Name)
				return nil
			}

			rows := make([][]string, 0, len(revs))
			for _, r := range revs {
				until := formatter.StyleGreen.Render("open")
				if r.ValidTo != nil {
					until = *r.ValidTo
				}
				rows = append(rows, []string{
					strconv.Itoa(r.TargetValue),
					r.ValidFrom,
					until,
				})
			}
			fmt.Print(formatter.RenderTable([]string{"Target", "From", "Until"}, rows))
			return nil
		},
	}
}
