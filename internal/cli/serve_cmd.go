package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"tally/internal/db"
	"tally/internal/logger"
	"tally/internal/repository"
	"tally/internal/server"
	"tally/internal/service"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the tally API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = app.Config.Addr
			}
			return runServe(addr, app)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to config)")

	return cmd
}

func runServe(addr string, app *App) error {
	log := logger.New()

	if err := os.MkdirAll(filepath.Dir(app.Config.DBPath), 0o755); err != nil {
		return err
	}
	database, err := db.OpenDB(app.Config.DBPath)
	if err != nil {
		return err
	}
	defer database.Close()

	goalRepo := repository.NewSQLiteGoalRepo(database)
	revisionRepo := repository.NewSQLiteRevisionRepo(database)
	logRepo := repository.NewSQLiteLogRepo(database)
	sessionRepo := repository.NewSQLiteFocusSessionRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	srv := server.New(
		service.NewGoalService(goalRepo, logRepo),
		service.NewRevisionService(goalRepo, revisionRepo, uow),
		service.NewLogService(goalRepo, logRepo),
		service.NewFocusService(sessionRepo, uow, app.Config.Location(), nil),
		log,
	)

	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      srv.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", addr, "db", app.Config.DBPath)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		return err
	}
	log.Info("server stopped")
	return nil
}
