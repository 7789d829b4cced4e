package cli

import (
	"github.com/DioGolang/acme/configs"
	"github.com/DioGolang/acme/internal/application/usecase/vendor"
	"github.com/DioGolang/acme/internal/infra/database"
	"github.com/DioGolang/acme/internal/infra/event"
	"github.com/DioGolang/acme/pkg/logger"
	"github.com/DioGolang/acme/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// App holds the wired collaborators shared by every command.
type App struct {
	Repository *database.VendorRepository
	PlaceOrder vendor.PlaceOrderUseCase
	Notify     vendor.NotifyUseCase
	Registry   *prometheus.Registry
	Logger     logger.Logger
}

func NewApp(cfg *configs.Conf, log logger.Logger) (*App, error) {
	registry := prometheus.NewRegistry()
	m := metrics.NewPrometheusMetrics(registry, cfg.ServiceName)

	dispatcher := event.NewDispatcher(m)
	if err := dispatcher.Register(event.OrderPlacedName, event.NewOrderPlacedLogHandler(log)); err != nil {
		return nil, err
	}

	repo := database.NewVendorRepository()

	placeOrder := vendor.NewPlaceOrderUseCase(repo, event.NewOrderPlaced(), dispatcher, log)
	notify := vendor.NewNotifyUseCase(repo, log)

	return &App{
		Repository: repo,
		PlaceOrder: &vendor.PlaceOrderMetricsDecorator{Next: placeOrder, Metrics: m},
		Notify:     &vendor.NotifyMetricsDecorator{Next: notify, Metrics: m},
		Registry:   registry,
		Logger:     log,
	}, nil
}
