package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/DioGolang/acme/configs"
	"github.com/DioGolang/acme/internal/domain/entity"
	"github.com/DioGolang/acme/pkg/logger"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	app, err := NewApp(&configs.Conf{ServiceName: "acme-test"}, logger.NewNop())
	require.NoError(t, err)

	var out bytes.Buffer
	root := NewRootCmd(app)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err = root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVendorsList(t *testing.T) {
	out, err := run(t, "vendors", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "1   ABC Corp")
	assert.Contains(t, out, "2   XYZ Inc")
}

func TestVendorsList_FilterAndSort(t *testing.T) {
	out, err := run(t, "vendors", "list", "--all", "--contains", "Toys", "--sort")

	require.NoError(t, err)
	amalgamated := strings.Index(out, "Amalgamated Toys")
	car := strings.Index(out, "Car Toys")
	fun := strings.Index(out, "Toys for Fun")
	assert.True(t, amalgamated > 0 && amalgamated < car && car < fun, out)
	assert.NotContains(t, out, "Toy Blocks Inc")
}

func TestVendorsKeys(t *testing.T) {
	out, err := run(t, "vendors", "keys")

	require.NoError(t, err)
	assert.Equal(t, "ABC Corp => Vendor: ABC Corp (5)\nXYZ Inc => Vendor: XYZ Inc (8)\n", out)
}

func TestVendorsNotify(t *testing.T) {
	out, err := run(t, "vendors", "notify", "--message", "Test Message")

	require.NoError(t, err)
	assert.Equal(t, "✓ Message sent: Important message for: ABC Corp\n"+
		"✓ Message sent: Important message for: XYZ Inc\n", out)
}

func TestVendorsNotify_Welcome(t *testing.T) {
	out, err := run(t, "vendors", "notify", "--welcome", "2", "--message", "Test Message")

	require.NoError(t, err)
	assert.Equal(t, "✓ Message sent: Hello XYZ Inc\n", out)
}

func TestOrdersPlace(t *testing.T) {
	out, err := run(t, "orders", "place",
		"--vendor", "1", "--product", "Saw", "--quantity", "12",
		"--deliver-by", "2027-10-25", "--offset", "-07:00",
		"--instructions", "Deliver to Suite 42")

	require.NoError(t, err)
	assert.Contains(t, out, " confirmed\n")
	assert.Contains(t, out, "Order from Acme, Inc\nProduct: Saw\nQuantity: 12\n"+
		"Deliver By: 10/25/2027\nInstructions: Deliver to Suite 42\n")
}

func TestOrdersPlace_MissingProduct(t *testing.T) {
	_, err := run(t, "orders", "place", "--vendor", "1")

	assert.ErrorIs(t, err, entity.ErrProductIsRequired)
}

func TestOrdersPlace_InvalidDate(t *testing.T) {
	_, err := run(t, "orders", "place", "--vendor", "1", "--product", "Saw", "--deliver-by", "25/10/2027")

	assert.ErrorContains(t, err, "invalid delivery date")
}

func TestMetricsFlag(t *testing.T) {
	out, err := run(t, "--metrics", "orders", "place", "--vendor", "1", "--product", "Saw")

	require.NoError(t, err)
	assert.Contains(t, out, `acme_order_placed_total{service="acme-test",status="confirmed"} 1`)
	assert.Contains(t, out, `app_events_dispatched_total{event="OrderPlaced",service="acme-test",status="success"} 1`)
}

func TestParseDeliverBy(t *testing.T) {
	date, err := parseDeliverBy("2027-10-25", "-07:00")

	require.NoError(t, err)
	_, offset := date.Zone()
	assert.Equal(t, -7*60*60, offset)
	assert.Equal(t, 25, date.Day())
}
