// Package cli wires the tally commands: the server entrypoint and the
// goal, target, log, focus and stats surfaces that consume its API.
package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tally/internal/apiclient"
	"tally/internal/config"
	"tally/internal/domain"
)

// App holds what CLI commands need: the typed API client, the resolved
// configuration, and the interactivity probe for form-based input.
type App struct {
	API           *apiclient.Client
	Config        *config.Config
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "tally" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tally",
		Short: "Habit and focus tracking",
	}

	root.AddCommand(
		newServeCmd(app),
		newGoalCmd(app),
		newTargetCmd(app),
		newLogCmd(app),
		newFocusCmd(app),
		newStatsCmd(app),
	)

	return root
}

// resolveGoal turns user input into a goal: numeric input matches by id,
// anything else matches goal names case-insensitively, exact before prefix.
func resolveGoal(ctx context.Context, app *App, input string) (*domain.Goal, error) {
	if input == "" {
		return nil, fmt.Errorf("goal is required")
	}

	if id, err := strconv.ParseInt(input, 10, 64); err == nil {
		return app.API.GetGoal(ctx, id)
	}

	goals, err := app.API.ListGoals(ctx, apiclient.FetchAll)
	if err != nil {
		return nil, err
	}

	for _, g := range goals {
		if strings.EqualFold(g.Name, input) {
			return g, nil
		}
	}

	var matches []*domain.Goal
	for _, g := range goals {
		if strings.HasPrefix(strings.ToLower(g.Name), strings.ToLower(input)) {
			matches = append(matches, g)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("goal not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("goal name %q is ambiguous (%d matches)", input, len(matches))
	}
}
