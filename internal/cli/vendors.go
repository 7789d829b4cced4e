package cli

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/DioGolang/acme/internal/application/usecase/vendor"
	"github.com/DioGolang/acme/internal/domain/entity"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func VendorsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vendors",
		Short: "List and contact vendors",
	}
	cmd.AddCommand(vendorsListCmd(app))
	cmd.AddCommand(vendorsKeysCmd(app))
	cmd.AddCommand(vendorsNotifyCmd(app))
	return cmd
}

func vendorsListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List vendors",
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			contains, _ := cmd.Flags().GetString("contains")
			sorted, _ := cmd.Flags().GetBool("sort")

			vendors := app.Repository.Retrieve()
			if all {
				vendors = app.Repository.RetrieveAll()
			}
			if contains != "" {
				vendors = slices.DeleteFunc(vendors, func(v *entity.Vendor) bool {
					return !strings.Contains(v.CompanyName, contains)
				})
			}
			if sorted {
				slices.SortFunc(vendors, func(a, b *entity.Vendor) int {
					return cmp.Compare(a.CompanyName, b.CompanyName)
				})
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCOMPANY\tEMAIL")
			for _, v := range vendors {
				fmt.Fprintf(w, "%d\t%s\t%s\n", v.VendorID, v.CompanyName, v.Email)
			}
			return w.Flush()
		},
	}
	cmd.Flags().Bool("all", false, "List the full catalog instead of the contact list")
	cmd.Flags().String("contains", "", "Only vendors whose company name contains this text")
	cmd.Flags().Bool("sort", false, "Sort by company name")
	return cmd
}

func vendorsKeysCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Show vendors keyed by company name",
		RunE: func(cmd *cobra.Command, args []string) error {
			keyed := app.Repository.RetrieveWithKeys()
			for _, name := range slices.Sorted(maps.Keys(keyed)) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s => %s\n", name, keyed[name])
			}
			return nil
		},
	}
}

func vendorsNotifyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Email every vendor, or welcome a single one",
		RunE: func(cmd *cobra.Command, args []string) error {
			message, _ := cmd.Flags().GetString("message")
			welcomeID, _ := cmd.Flags().GetInt("welcome")

			var (
				output vendor.NotifyOutput
				err    error
			)
			if cmd.Flags().Changed("welcome") {
				output, err = app.Notify.Welcome(cmd.Context(), vendor.WelcomeInput{VendorID: welcomeID, MessageBody: message})
			} else {
				output, err = app.Notify.Broadcast(cmd.Context(), vendor.BroadcastInput{MessageBody: message})
			}
			if err != nil {
				return fmt.Errorf("failed to notify vendors: %w", err)
			}

			ok := color.New(color.FgGreen).Sprint("✓")
			for _, c := range output.Confirmations {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ok, c)
			}
			return nil
		},
	}
	cmd.Flags().String("message", "", "Message body")
	cmd.Flags().Int("welcome", 0, "Send the welcome email to this vendor id only")
	return cmd
}
