// Command causehive-cli runs operational tasks against the CauseHive
// database: migrations, superuser creation, payout reconciliation and a
// metrics summary.
package main

import (
	"fmt"
	"os"

	"github.com/amirasaad/causehive/pkg/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	envFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "causehive-cli",
		Short:         "CauseHive operations CLI",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "environment file to load")

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(createSuperuserCmd())
	rootCmd.AddCommand(verifyWithdrawalsCmd())
	rootCmd.AddCommand(statsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("✗ %v", err))
		os.Exit(1)
	}
}

func loadConfig() (*config.App, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
