package cli

import (
	"github.com/DioGolang/acme/pkg/metrics"
	"github.com/spf13/cobra"
)

func NewRootCmd(app *App) *cobra.Command {
	var dumpMetrics bool

	rootCmd := &cobra.Command{
		Use:           "acme",
		Short:         "Acme vendor operations",
		Long:          "Look up Acme vendors, place orders with them and send them email.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !dumpMetrics {
				return nil
			}
			return metrics.WriteText(cmd.OutOrStdout(), app.Registry)
		},
	}
	rootCmd.PersistentFlags().BoolVar(&dumpMetrics, "metrics", false, "Print collected metrics after the command")

	rootCmd.AddCommand(VendorsCmd(app))
	rootCmd.AddCommand(OrdersCmd(app))

	return rootCmd
}
