package cmd

import (
	"fmt"

	"pizzeria/internal/jobs"
)

type Config struct {
	HTTPPort      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSslMode     string
	BakeSchedule  string
	ServeSchedule string
}

// ConfigFromEnv reads the configuration through getenv, usually os.Getenv.
func ConfigFromEnv(getenv func(string) string) Config {
	return Config{
		HTTPPort:      getenv("HTTP_PORT"),
		DBHost:        getenv("DB_HOST"),
		DBPort:        getenv("DB_PORT"),
		DBUser:        getenv("DB_USER"),
		DBPassword:    getenv("DB_PASSWORD"),
		DBName:        getenv("DB_NAME"),
		DBSslMode:     getenv("DB_SSLMODE"),
		BakeSchedule:  getenv("KITCHEN_BAKE_SCHEDULE"),
		ServeSchedule: getenv("KITCHEN_SERVE_SCHEDULE"),
	}
}

// DSN renders the PostgreSQL connection string. sslmode defaults to disable.
func (c Config) DSN() string {
	sslMode := c.DBSslMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, sslMode)
}

// Address is the listen address of the HTTP server.
func (c Config) Address() string {
	port := c.HTTPPort
	if port == "" {
		port = "8080"
	}

	return fmt.Sprintf("0.0.0.0:%s", port)
}

// Schedules returns the kitchen job schedules, falling back to
// jobs.DefaultSchedules for anything left empty.
func (c Config) Schedules() jobs.Schedules {
	schedules := jobs.DefaultSchedules
	if c.BakeSchedule != "" {
		schedules.Bake = c.BakeSchedule
	}
	if c.ServeSchedule != "" {
		schedules.Serve = c.ServeSchedule
	}

	return schedules
}
