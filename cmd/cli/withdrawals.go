package main

import (
	"context"
	"fmt"

	"github.com/amirasaad/causehive/infra/initializer"
	"github.com/amirasaad/causehive/pkg/app"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func verifyWithdrawalsCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "verify-withdrawals",
		Short: "Re-check in-flight payouts with the gateway",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			deps, cleanup, err := initializer.InitializeDependencies(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			summary, err := app.New(deps, cfg).WithdrawalService.VerifyPending(context.Background(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "checked:          %d\n", summary.Checked)
			fmt.Fprintf(out, "completed:        %s\n", color.GreenString("%d", summary.Completed))
			fmt.Fprintf(out, "failed:           %s\n", color.RedString("%d", summary.Failed))
			fmt.Fprintf(out, "still processing: %s\n", color.YellowString("%d", summary.StillProcessing))
			if summary.Errors > 0 {
				fmt.Fprintf(out, "errors:           %s\n", color.RedString("%d", summary.Errors))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", app.PollerBatchSize, "maximum withdrawals to check")
	return cmd
}
