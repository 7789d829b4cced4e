package metrics

import (
	"bytes"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheus_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetrics(reg, "acme-test")

	m.RecordOrderPlaced("success")
	m.RecordOrderPlaced("success")
	m.RecordOrderPlaced("failure")
	m.RecordEmailsSent("broadcast", 2)
	m.RecordEventDispatched("OrderPlaced", "success")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.orderPlaced.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.orderPlaced.WithLabelValues("failure")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.emailsSent.WithLabelValues("broadcast")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.eventsTotal.WithLabelValues("OrderPlaced", "success")))
}

func TestPrometheus_UseCaseExecution(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetrics(reg, "acme-test")

	m.RecordUseCaseExecution("PlaceOrder", true, 10*time.Millisecond)
	m.RecordUseCaseExecution("PlaceOrder", false, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.useCaseTotal.WithLabelValues("PlaceOrder", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.useCaseTotal.WithLabelValues("PlaceOrder", "failure")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.useCaseDuration))
}

func TestWriteText(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetrics(reg, "acme-test")
	m.RecordOrderPlaced("success")

	var buf bytes.Buffer
	err := WriteText(&buf, reg)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `acme_order_placed_total{service="acme-test",status="success"} 1`)
}
