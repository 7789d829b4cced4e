package event

import (
	"context"
	"fmt"
	"time"

	"github.com/DioGolang/acme/internal/application/usecase/vendor"
	"github.com/DioGolang/acme/pkg/events"
	"github.com/DioGolang/acme/pkg/logger"
	carrier "github.com/DioGolang/acme/pkg/otel"
)

const OrderPlacedName = "OrderPlaced"

type OrderPlaced struct {
	Name     string
	Payload  interface{}
	DateTime time.Time
}

func NewOrderPlaced() *OrderPlaced {
	return &OrderPlaced{Name: OrderPlacedName}
}

func (e *OrderPlaced) GetName() string         { return e.Name }
func (e *OrderPlaced) GetDateTime() time.Time  { return e.DateTime }
func (e *OrderPlaced) GetPayload() interface{} { return e.Payload }

func (e *OrderPlaced) SetPayload(payload interface{}) {
	e.Payload = payload
	e.DateTime = time.Now()
}

// OrderPlacedLogHandler records placed orders in the log, under the trace
// that placed them.
type OrderPlacedLogHandler struct {
	Logger logger.Logger
}

func NewOrderPlacedLogHandler(l logger.Logger) *OrderPlacedLogHandler {
	return &OrderPlacedLogHandler{Logger: l}
}

func (h *OrderPlacedLogHandler) Handle(ctx context.Context, evt events.Event) error {
	payload, ok := evt.GetPayload().(vendor.OrderPlacedPayload)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", evt.GetPayload(), evt.GetName())
	}
	ctx = carrier.InjectContextFromJSON(ctx, payload.TraceContext)

	h.Logger.Info(ctx, "Order placed",
		logger.String("order_id", payload.OrderID),
		logger.Int("vendor_id", payload.VendorID),
		logger.Bool("success", payload.Success),
		logger.String("placed_at", evt.GetDateTime().Format(time.RFC3339)),
	)
	return nil
}
