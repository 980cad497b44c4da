package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"tally/internal/apiclient"
	"tally/internal/cli"
	"tally/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	app := &cli.App{
		API:    apiclient.New(cfg.APIBase),
		Config: cfg,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}
