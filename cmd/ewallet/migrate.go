package main

import (
	"fmt"
	"strconv"

	"github.com/d1d2-apps/ewallet-backend/internal/config"
	"github.com/d1d2-apps/ewallet-backend/internal/db"

	"github.com/spf13/cobra"
)

func NewMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE:  runMigrateUp,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down [steps]",
		Short: "Roll back migrations, one step by default",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runMigrateDown,
	})
	return cmd
}

func runMigrateUp(cmd *cobra.Command, _ []string) error {
	config, err := config.LoadDatabase()
	if err != nil {
		return err
	}

	version, err := db.MigrateUp(config.PostgresqlURL)
	if err != nil {
		return err
	}
	cmd.Printf("Database is at version %d.\n", version)
	return nil
}

func runMigrateDown(cmd *cobra.Command, args []string) error {
	steps := 1
	if len(args) == 1 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil || parsed <= 0 {
			return fmt.Errorf("steps must be a positive integer, got %q", args[0])
		}
		steps = parsed
	}

	config, err := config.LoadDatabase()
	if err != nil {
		return err
	}

	version, err := db.MigrateDown(config.PostgresqlURL, steps)
	if err != nil {
		return err
	}
	cmd.Printf("Database is at version %d.\n", version)
	return nil
}
