package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/english-companion/internal/database"
)

func newMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migration commands",
	}

	migrateCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrator(func(migrator *database.Migrator) error {
					if err := migrator.Up(); err != nil {
						return fmt.Errorf("migrator.Up() > %w", err)
					}
					return printVersion(cmd, migrator, "Migrated")
				})
			},
		},
		&cobra.Command{
			Use:   "down [steps]",
			Short: "Roll back migrations; all of them when steps is omitted",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				steps, err := parseSteps(args)
				if err != nil {
					return err
				}
				return withMigrator(func(migrator *database.Migrator) error {
					if err := migrator.Down(steps); err != nil {
						return fmt.Errorf("migrator.Down(%d) > %w", steps, err)
					}
					return printVersion(cmd, migrator, "Rolled back")
				})
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Show the current schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrator(func(migrator *database.Migrator) error {
					return printVersion(cmd, migrator, "Current")
				})
			},
		},
	)
	return migrateCmd
}

func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 0, nil
	}
	steps, err := strconv.Atoi(args[0])
	if err != nil || steps <= 0 {
		return 0, fmt.Errorf("steps must be a positive integer, got %q", args[0])
	}
	return steps, nil
}

func withMigrator(fn func(migrator *database.Migrator) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}
	migrator, err := database.NewMigrator(cfg.Database)
	if err != nil {
		return fmt.Errorf("database.NewMigrator() > %w", err)
	}
	defer func() { _ = migrator.Close() }()
	return fn(migrator)
}

func printVersion(cmd *cobra.Command, migrator *database.Migrator, label string) error {
	version, dirty, ok, err := migrator.Version()
	if err != nil {
		return fmt.Errorf("migrator.Version() > %w", err)
	}
	out := cmd.OutOrStdout()
	switch {
	case !ok:
		color.New(color.FgYellow).Fprintf(out, "%s: no migrations applied\n", label)
	case dirty:
		color.New(color.FgRed).Fprintf(out, "%s: version %d (dirty)\n", label, version)
	default:
		color.New(color.FgGreen).Fprintf(out, "%s: version %d\n", label, version)
	}
	return nil
}
