package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"tally/internal/apiclient"
	"tally/internal/cli/formatter"
	"tally/internal/contract"
	"tally/internal/domain"
)

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage goals",
	}

	cmd.AddCommand(
		newGoalAddCmd(app),
		newGoalListCmd(app),
		newGoalUpdateCmd(app),
		newGoalRemoveCmd(app),
	)

	return cmd
}

func newGoalAddCmd(app *App) *cobra.Command {
	var name, goalType string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" && app.IsInteractive() {
				if err := goalAddForm(&name, &goalType); err != nil {
					return err
				}
			}
			goal, err := app.API.CreateGoal(context.Background(), name, goalType)
			if err != nil {
				return err
			}
			fmt.Printf("Created goal %s (#%d, %s)\n", goal.Name, goal.ID, goal.GoalType)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Goal name")
	cmd.Flags().StringVar(&goalType, "type", "count", "Goal type: time, count or boolean")

	return cmd
}

func goalAddForm(name, goalType *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Goal name").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}).
				Value(name),
			huh.NewSelect[string]().
				Title("Goal type").
				Options(
					huh.NewOption("count (daily repetitions)", string(domain.GoalCount)),
					huh.NewOption("time (minutes per day)", string(domain.GoalTime)),
					huh.NewOption("boolean (done or not)", string(domain.GoalBoolean)),
				).
				Value(goalType),
		),
	).Run()
}

func newGoalListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			goals, err := app.API.ListGoals(context.Background(), apiclient.FetchAll)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(goals))
			for _, g := range goals {
				if !all && !g.IsActive {
					continue
				}
				status := formatter.StyleGreen.Render("active")
				if !g.IsActive {
					status = formatter.StyleDim.Render("inactive")
				}
				rows = append(rows, []string{
					strconv.FormatInt(g.ID, 10),
					formatter.StyleFg.Render(g.Name),
					string(g.GoalType),
					status,
				})
			}
			if len(rows) == 0 {
				fmt.Println("No goals yet. Create one with `tally goal add`.")
				return nil
			}
			fmt.Print(formatter.RenderTable([]string{"ID", "Name", "Type", "Status"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include inactive goals")

	return cmd
}

func newGoalUpdateCmd(app *App) *cobra.Command {
	var name, goalType string
	var activate, deactivate bool

	cmd := &cobra.Command{
		Use:   "update <goal>",
		Short: "Rename, retype or (de)activate a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			goal, err := resolveGoal(ctx, app, args[0])
			if err != nil {
				return err
			}

			var upd contract.GoalUpdate
			if name != "" {
				upd.Name = &name
			}
			if goalType != "" {
				upd.GoalType = &goalType
			}
			if activate && deactivate {
				return fmt.Errorf("--activate and --deactivate are mutually exclusive")
			}
			if activate || deactivate {
				upd.IsActive = &activate
			}
			if upd.Name == nil && upd.GoalType == nil && upd.IsActive == nil {
				return fmt.Errorf("nothing to update")
			}

			updated, err := app.API.UpdateGoal(ctx, goal.ID, upd)
			if err != nil {
				return err
			}
			fmt.Printf("Updated goal %s (#%d)\n", updated.Name, updated.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&goalType, "type", "", "New type: time, count or boolean")
	cmd.Flags().BoolVar(&activate, "activate", false, "Mark the goal active")
	cmd.Flags().BoolVar(&deactivate, "deactivate", false, "Mark the goal inactive")

	return cmd
}

func newGoalRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove <goal>",
		Short: "Delete a goal and its history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			goal, err := resolveGoal(ctx, app, args[0])
			if err != nil {
				return err
			}

			if !force {
				if !app.IsInteractive() {
					return fmt.Errorf("refusing to delete without --force in non-interactive mode")
				}
				var confirmed bool
				err := huh.NewConfirm().
					Title(fmt.Sprintf("Delete goal %q and all its logs?", goal.Name)).
					Value(&confirmed).
					Run()
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Aborted.")
					return nil
				}
			}

			if err := app.API.DeleteGoal(ctx, goal.ID); err != nil {
				return err
			}
			fmt.Printf("Deleted goal %s (#%d)\n", goal.Name, goal.ID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")

	return cmd
}
