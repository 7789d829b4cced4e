package event

import (
	"context"
	"errors"
	"testing"

	"github.com/DioGolang/acme/internal/application/usecase/vendor"
	"github.com/DioGolang/acme/pkg/events"
	"github.com/DioGolang/acme/pkg/logger"
	"github.com/DioGolang/acme/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type countingHandler struct {
	calls int
	err   error
}

func (h *countingHandler) Handle(ctx context.Context, evt events.Event) error {
	h.calls++
	return h.err
}

func TestDispatcher_Register(t *testing.T) {
	d := NewDispatcher(nil)
	h := &countingHandler{}

	require.NoError(t, d.Register(OrderPlacedName, h))
	err := d.Register(OrderPlacedName, h)

	assert.ErrorIs(t, err, ErrHandlerAlreadyRegistered)
	assert.True(t, d.Has(OrderPlacedName, h))
	assert.False(t, d.Has("Other", h))
}

func TestDispatcher_Dispatch(t *testing.T) {
	d := NewDispatcher(nil)
	first, second, other := &countingHandler{}, &countingHandler{}, &countingHandler{}
	require.NoError(t, d.Register(OrderPlacedName, first))
	require.NoError(t, d.Register(OrderPlacedName, second))
	require.NoError(t, d.Register("Other", other))

	err := d.Dispatch(context.Background(), NewOrderPlaced())

	require.NoError(t, err)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
	assert.Equal(t, 0, other.calls)
}

func TestDispatcher_DispatchJoinsErrors(t *testing.T) {
	reg := prometheus.NewRegistry()
	d := NewDispatcher(metrics.NewPrometheusMetrics(reg, "acme-test"))
	errFirst := errors.New("first")
	failing, healthy := &countingHandler{err: errFirst}, &countingHandler{}
	require.NoError(t, d.Register(OrderPlacedName, failing))
	require.NoError(t, d.Register(OrderPlacedName, healthy))

	err := d.Dispatch(context.Background(), NewOrderPlaced())

	assert.ErrorIs(t, err, errFirst)
	assert.Equal(t, 1, healthy.calls)
}

func TestDispatcher_RemoveAndClear(t *testing.T) {
	d := NewDispatcher(nil)
	a, b := &countingHandler{}, &countingHandler{}
	require.NoError(t, d.Register(OrderPlacedName, a))
	require.NoError(t, d.Register(OrderPlacedName, b))

	require.NoError(t, d.Remove(OrderPlacedName, a))
	assert.False(t, d.Has(OrderPlacedName, a))
	assert.True(t, d.Has(OrderPlacedName, b))

	d.Clear()
	assert.False(t, d.Has(OrderPlacedName, b))
}

func TestOrderPlacedLogHandler(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := NewOrderPlacedLogHandler(logger.NewWithCore(core))
	evt := NewOrderPlaced()
	evt.SetPayload(vendor.OrderPlacedPayload{OrderID: "o-1", VendorID: 1, Success: true})

	err := h.Handle(context.Background(), evt)

	require.NoError(t, err)
	entries := logs.FilterMessage("Order placed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "o-1", entries[0].ContextMap()["order_id"])
	assert.False(t, evt.GetDateTime().IsZero())
}

func TestOrderPlacedLogHandler_UnexpectedPayload(t *testing.T) {
	h := NewOrderPlacedLogHandler(logger.NewNop())
	evt := NewOrderPlaced()
	evt.SetPayload("not a payload")

	err := h.Handle(context.Background(), evt)

	assert.Error(t, err)
}
