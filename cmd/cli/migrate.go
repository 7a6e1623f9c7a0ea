package main

import (
	"fmt"

	"github.com/amirasaad/causehive/infra"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	var (
		dir   string
		steps int
	)
	cmd := &cobra.Command{
		Use:   "migrate [up|down]",
		Short: "Apply or roll back SQL migrations",
		Long: `Apply or roll back the SQL migrations in --dir.

Examples:
  causehive-cli migrate up
  causehive-cli migrate down --steps 1`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := args[0]
			if direction != "up" && direction != "down" {
				return fmt.Errorf("unknown migration direction %q", direction)
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			if err := infra.Migrate(db, dir, direction, steps); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓ migrations %s", direction))
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "internal/migrations", "migrations directory")
	cmd.Flags().IntVar(&steps, "steps", 0, "number of migrations to run (0 = all)")
	return cmd
}
