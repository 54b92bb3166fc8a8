package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"pizzeria/cmd"
	"pizzeria/internal/adapters/out/postgres"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API and the kitchen jobs.",
	Run: func(c *cobra.Command, _ []string) {
		autoMigrate, _ := c.Flags().GetBool("migrate")
		serve(autoMigrate)
	},
}

func init() {
	serveCmd.Flags().Bool("migrate", false, "apply the database schema before starting")
}

func serve(autoMigrate bool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	configs := getConfigs()
	db := openDatabase(configs)

	if autoMigrate {
		if err := postgres.Migrate(db); err != nil {
			log.Fatalf("Error migrating database: %v", err)
		}
	}

	app := cmd.NewCompositionRoot(configs, db, newLogger())

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	e, err := app.CreateEcho(ctx)
	if err != nil {
		log.Fatalf("Failed to build HTTP server: %v", err)
	}

	go func() {
		if startErr := e.Start(configs.Address()); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			log.Fatalf("HTTP server stopped: %v", startErr)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("HTTP server shutdown: %v", err)
	}
}
