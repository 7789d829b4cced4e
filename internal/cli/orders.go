package cli

import (
	"fmt"
	"time"

	"github.com/DioGolang/acme/internal/application/usecase/vendor"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const deliverByLayout = "2006-01-02Z07:00"

func OrdersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Place orders with vendors",
	}
	cmd.AddCommand(ordersPlaceCmd(app))
	return cmd
}

func ordersPlaceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "place",
		Short: "Place an order with a vendor",
		Example: `  acme orders place --vendor 1 --product Saw --quantity 12
  acme orders place --vendor 1 --product Saw --quantity 12 --deliver-by 2027-10-25 --offset -07:00`,
		RunE: func(cmd *cobra.Command, args []string) error {
			vendorID, _ := cmd.Flags().GetInt("vendor")
			productID, _ := cmd.Flags().GetInt("product-id")
			product, _ := cmd.Flags().GetString("product")
			description, _ := cmd.Flags().GetString("description")
			quantity, _ := cmd.Flags().GetInt("quantity")
			deliverBy, _ := cmd.Flags().GetString("deliver-by")
			offset, _ := cmd.Flags().GetString("offset")
			instructions, _ := cmd.Flags().GetString("instructions")

			input := vendor.PlaceOrderInput{
				VendorID:     vendorID,
				ProductID:    productID,
				ProductName:  product,
				Description:  description,
				Quantity:     quantity,
				Instructions: instructions,
			}
			if deliverBy != "" {
				date, err := parseDeliverBy(deliverBy, offset)
				if err != nil {
					return err
				}
				input.DeliverBy = &date
			}

			output, err := app.PlaceOrder.Execute(cmd.Context(), input)
			if err != nil {
				return fmt.Errorf("failed to place order: %w", err)
			}

			status := color.New(color.FgGreen).Sprint("confirmed")
			if !output.Success {
				status = color.New(color.FgYellow).Sprint("unconfirmed")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Order %s %s\n%s\n", output.OrderID, status, output.Message)
			return nil
		},
	}
	cmd.Flags().Int("vendor", 0, "Vendor id")
	cmd.Flags().Int("product-id", 0, "Product id")
	cmd.Flags().String("product", "", "Product name")
	cmd.Flags().String("description", "", "Product description")
	cmd.Flags().Int("quantity", 1, "Units to order")
	cmd.Flags().String("deliver-by", "", "Delivery date (YYYY-MM-DD)")
	cmd.Flags().String("offset", "Z", "UTC offset of the delivery date, e.g. -07:00")
	cmd.Flags().String("instructions", "", "Delivery instructions")
	_ = cmd.MarkFlagRequired("vendor")
	return cmd
}

func parseDeliverBy(date, offset string) (time.Time, error) {
	t, err := time.Parse(deliverByLayout, date+offset)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid delivery date %q with offset %q: %w", date, offset, err)
	}
	return t, nil
}
