package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/common/expfmt"
)

type Prometheus struct {
	orderPlaced     *prometheus.CounterVec
	emailsSent      *prometheus.CounterVec
	useCaseTotal    *prometheus.CounterVec
	useCaseDuration *prometheus.HistogramVec
	eventsTotal     *prometheus.CounterVec
}

func NewPrometheusMetrics(reg prometheus.Registerer, serviceName string) *Prometheus {
	m := &Prometheus{
		orderPlaced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "acme_order_placed_total",
			Help:        "Total orders placed with vendors.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"status"}),
		emailsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "acme_emails_sent_total",
			Help:        "Total vendor emails handed to the transport.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"kind"}),
		useCaseTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "app_usecase_total",
			Help:        "Total number of Use Case executions.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"use_case", "status"}),
		useCaseDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "app_usecase_duration_seconds",
			Help:        "Use Case execution latency.",
			Buckets:     []float64{.0001, .0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"use_case", "status"}),
		eventsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "app_events_dispatched_total",
			Help:        "Total domain events dispatched in process.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"event", "status"}),
	}

	reg.MustRegister(
		m.orderPlaced,
		m.emailsSent,
		m.useCaseTotal,
		m.useCaseDuration,
		m.eventsTotal,
	)
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return m
}

func (p *Prometheus) RecordOrderPlaced(status string) {
	p.orderPlaced.WithLabelValues(status).Inc()
}

func (p *Prometheus) RecordEmailsSent(kind string, count int) {
	p.emailsSent.WithLabelValues(kind).Add(float64(count))
}

func (p *Prometheus) RecordUseCaseExecution(useCase string, success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "failure"
	}
	p.useCaseTotal.WithLabelValues(useCase, status).Inc()
	p.useCaseDuration.WithLabelValues(useCase, status).Observe(duration.Seconds())
}

func (p *Prometheus) RecordEventDispatched(eventName, status string) {
	p.eventsTotal.WithLabelValues(eventName, status).Inc()
}

// WriteText dumps every family from g in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
