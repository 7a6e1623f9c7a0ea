package main

import (
	"context"
	"fmt"

	"github.com/amirasaad/causehive/infra/initializer"
	"github.com/amirasaad/causehive/pkg/app"
	"github.com/amirasaad/causehive/pkg/dto"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the platform dashboard",
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

			d, err := app.New(deps, cfg).AnalyticsService.Dashboard(context.Background())
			if err != nil {
				return err
			}
			printDashboard(cmd, d, cfg.Donation.Currency)
			return nil
		},
	}
}

func printDashboard(cmd *cobra.Command, d *dto.Dashboard, currency string) {
	bold := color.New(color.Bold).SprintFunc()
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, bold("CauseHive"))
	fmt.Fprintf(out, "  users:               %d\n", d.TotalUsers)
	fmt.Fprintf(out, "  causes:              %d\n", d.TotalCauses)
	fmt.Fprintf(out, "  donations:           %d\n", d.TotalDonations)
	fmt.Fprintf(out, "  raised:              %s %s\n", currency, d.TotalAmount.StringFixed(2))
	fmt.Fprintf(out, "  causes under review: %s\n", color.YellowString("%d", d.PendingCauses))
	fmt.Fprintf(out, "  pending withdrawals: %s\n", color.YellowString("%d", d.PendingWithdrawals))
}
