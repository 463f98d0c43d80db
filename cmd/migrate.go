package cmd

import (
	"database/sql"
	"errors"
	"fmt"

	"finance-tracker/internal/database"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var flagRollbackSteps int

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrationRunner(func(runner *database.MigrationRunner) error {
			if err := runner.WaitForDatabase(); err != nil {
				return err
			}
			return runner.RunMigrations()
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrationRunner(func(runner *database.MigrationRunner) error {
			return runner.RollbackMigrations(flagRollbackSteps)
		})
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrationRunner(func(runner *database.MigrationRunner) error {
			version, dirty, err := runner.GetMigrationStatus()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version: %d\ndirty: %t\n", version, dirty)
			return nil
		})
	},
}

func init() {
	migrateDownCmd.Flags().IntVar(&flagRollbackSteps, "steps", 1, "Number of migrations to roll back")

	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)
	rootCmd.AddCommand(migrateCmd)
}

func withMigrationRunner(fn func(*database.MigrationRunner) error) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Database.Driver == "sqlite" {
		return errors.New("SQL migrations target postgres; sqlite schemas are created on serve")
	}

	sqlDB, err := sql.Open("postgres", cfg.Database.MigrationURL())
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer sqlDB.Close()

	return fn(database.NewMigrationRunner(sqlDB))
}
