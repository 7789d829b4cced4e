package main

import (
	"context"
	"fmt"
	"os"

	"github.com/DioGolang/acme/configs"
	"github.com/DioGolang/acme/internal/cli"
	"github.com/DioGolang/acme/pkg/logger"
	"github.com/DioGolang/acme/pkg/otel"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	config, err := configs.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.NewLogger(config.ServiceName, config.IsProd())
	ctx := context.Background()

	otel.SetPropagator()
	if config.OtelCollectorAddr != "" {
		shutdown, err := otel.InitProvider(ctx, config.ServiceName, config.AppEnv, config.OtelCollectorAddr)
		if err != nil {
			log.Error(ctx, "Failed to start tracer provider", logger.WithError(err))
		} else {
			defer shutdown()
		}
	}

	app, err := cli.NewApp(config, log)
	if err != nil {
		return err
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
