package main

import (
	"pizzeria/internal/adapters/out/postgres"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema.",
	Run: func(_ *cobra.Command, _ []string) {
		db := openDatabase(getConfigs())

		if err := postgres.Migrate(db); err != nil {
			log.Fatalf("Error migrating database: %v", err)
		}

		log.Info("Database schema is up to date")
	},
}
