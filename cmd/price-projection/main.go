package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/iwvelando/price-projection/internal/config"
	"github.com/iwvelando/price-projection/internal/logging"
	"github.com/iwvelando/price-projection/internal/quote"
	"github.com/iwvelando/price-projection/internal/render"
	"github.com/iwvelando/price-projection/pkg/constants"
	"github.com/iwvelando/price-projection/pkg/datetime"
	"github.com/iwvelando/price-projection/pkg/output"
	"github.com/iwvelando/price-projection/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	scenarioFlag := flag.String("scenario", "", "scenario override: bear, base, bull, custom")
	customRateFlag := flag.String("custom-rate", "", "annual growth rate in percent for the custom scenario")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	if err := config.LoadEnvFile(constants.DefaultEnvFile); err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load environment overrides\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}

	conf, err := config.LoadOrDefault(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := logging.New(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if *scenarioFlag != "" {
		conf.Selection.Scenario = *scenarioFlag
	}
	if *customRateFlag != "" {
		conf.Selection.CustomRate = *customRateFlag
	}

	// CLI override takes precedence over config
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	if err := conf.Validate(); err != nil {
		logger.Fatal("invalid configuration",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	for _, warning := range conf.ValidateConfiguration(datetime.CurrentYear(nil)) {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	scenario, err := conf.Scenario()
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

	orchestrator := render.New(logger, source,
		output.NewRenderer(os.Stdout, outputFormat),
		output.NewStatusPrinter(os.Stderr, logger),
		conf.RenderSettings(),
	)
	defer orchestrator.Close()

	result := orchestrator.Refresh(context.Background(), render.Input{Scenario: scenario})
	if result.Err != nil {
		logger.Error("failed to render projection",
			zap.String("op", "main"),
			zap.Error(result.Err),
		)
		os.Exit(1)
	}
}
