package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/iwvelando/price-projection/internal/chart"
	"github.com/iwvelando/price-projection/internal/config"
	"github.com/iwvelando/price-projection/internal/logging"
	"github.com/iwvelando/price-projection/internal/quote"
	"github.com/iwvelando/price-projection/internal/render"
	"github.com/iwvelando/price-projection/internal/server"
	"github.com/iwvelando/price-projection/pkg/constants"
	"go.uber.org/zap"
)

var version = "dev"

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	serverConfigLocation := flag.String("server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	if err := config.LoadEnvFile(constants.DefaultEnvFile); err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load environment overrides\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}

	serverConf, err := server.LoadConfig(*serverConfigLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration at %s\", \"error\": \"%v\"}\n", *serverConfigLocation, err)
		os.Exit(1)
	}

	logger, err := logging.New(serverConf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	conf, err := config.LoadOrDefault(*configLocation)
	if err != nil {
		logger.Fatal(fmt.Sprintf("failed to load configuration at %s", *configLocation),
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	if err := conf.Validate(); err != nil {
		logger.Fatal("invalid configuration",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	defaults, err := conf.Scenario()
	if err != nil {
		logger.Fatal("invalid scenario",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	client, err := quote.NewClient(conf.QuoteSettings())
	if err != nil {
		logger.Fatal("failed to create quote client",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	source := quote.NewSource(logger, client, conf.SourceConfig())

	charts := chart.NewMemory()
	orchestrator := render.New(logger, source, charts, nil, conf.RenderSettings())
	defer orchestrator.Close()

	srv := server.NewHTTPServer(serverConf, server.NewHandler(logger, orchestrator, charts, defaults, version))

	go func() {
		logger.Info("starting server",
			zap.String("op", "main"),
			zap.String("address", serverConf.Address),
			zap.String("version", version),
		)
		if err := server.Serve(srv); err != nil {
			logger.Fatal("server error",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server", zap.String("op", "main"))
	ctx, cancel := context.WithTimeout(context.Background(), serverConf.ShutdownTimeoutDuration())
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
