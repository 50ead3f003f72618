// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/iwvelando/price-projection/internal/projection"
	"github.com/iwvelando/price-projection/pkg/constants"
	"github.com/iwvelando/price-projection/pkg/validation"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for price-projection.
type Configuration struct {
	Projection ProjectionConfig `yaml:"projection"`
	Quote      QuoteConfig      `yaml:"quote"`
	Selection  SelectionConfig  `yaml:"selection"`
	Logging    LoggingConfig    `yaml:"logging,omitempty"`
	Output     OutputConfig     `yaml:"output,omitempty"`
}

// ProjectionConfig fixes the asset, the projection window and its anchor prices.
type ProjectionConfig struct {
	Asset         string        `yaml:"asset"`
	Currency      string        `yaml:"currency"`
	BaselineYear  int           `yaml:"baselineYear"`
	HorizonYear   int           `yaml:"horizonYear"`
	BaselinePrice float64       `yaml:"baselinePrice"`
	FallbackPrice float64       `yaml:"fallbackPrice"`
	Targets       TargetsConfig `yaml:"targets"`
}

// TargetsConfig holds the horizon-year target price of each preset scenario.
type TargetsConfig struct {
	Bear float64 `yaml:"bear"`
	Base float64 `yaml:"base"`
	Bull float64 `yaml:"bull"`
}

// QuoteConfig selects the live price provider.
type QuoteConfig struct {
	Provider string        `yaml:"provider"` // coingecko, binance
	Endpoint string        `yaml:"endpoint,omitempty"`
	Symbol   string        `yaml:"symbol,omitempty"` // binance pair
	Timeout  time.Duration `yaml:"timeout"`
}

// SelectionConfig is the scenario used when none is given on the command line.
type SelectionConfig struct {
	Scenario   string `yaml:"scenario"`
	CustomRate string `yaml:"customRate,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("projection.asset", constants.DefaultAsset)
	v.SetDefault("projection.currency", constants.DefaultCurrency)
	v.SetDefault("projection.baselineYear", constants.DefaultBaselineYear)
	v.SetDefault("projection.horizonYear", constants.DefaultHorizonYear)
	v.SetDefault("projection.baselinePrice", constants.DefaultBaselinePrice)
	v.SetDefault("projection.fallbackPrice", constants.DefaultFallbackPrice)
	v.SetDefault("projection.targets.bear", constants.DefaultBearTarget)
	v.SetDefault("projection.targets.base", constants.DefaultBaseTarget)
	v.SetDefault("projection.targets.bull", constants.DefaultBullTarget)
	v.SetDefault("quote.provider", constants.ProviderCoinGecko)
	v.SetDefault("quote.timeout", constants.DefaultQuoteTimeout)
	v.SetDefault("selection.scenario", string(projection.Base))
}

// optionalKeys have no default but may still be set through the environment.
var optionalKeys = []string{
	"quote.endpoint",
	"quote.symbol",
	"selection.customRate",
	"logging.level",
	"logging.format",
	"logging.outputFile",
	"output.format",
}

// EnvPrefix prefixes environment overrides, e.g. PRICE_PROJECTION_QUOTE_PROVIDER.
const EnvPrefix = "PRICE_PROJECTION"

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range optionalKeys {
		// Error only on an empty key.
		_ = v.BindEnv(key)
	}
	return v
}

// LoadEnvFile loads KEY=value pairs from path into the environment so they
// act as overrides. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Keys missing from the file take their defaults.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return decode(v)
}

// LoadOrDefault loads configPath, or returns Default when the file does not
// exist.
func LoadOrDefault(configPath string) (*Configuration, error) {
	if configPath == "" {
		return Default()
	}
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		return Default()
	}
	return LoadConfiguration(configPath)
}

// Default returns the configuration used when no file is given. Environment
// overrides still apply, so decoding can fail on a malformed value.
func Default() (*Configuration, error) {
	return decode(newViper())
}

// Validate rejects configurations the projection cannot run with.
func (c *Configuration) Validate() error {
	p := c.Projection
	if err := validation.ValidateYearRange(p.BaselineYear, p.HorizonYear); err != nil {
		return err
	}
	if err := validation.ValidatePrice("projection.baselinePrice", p.BaselinePrice); err != nil {
		return err
	}
	if err := validation.ValidatePrice("projection.fallbackPrice", p.FallbackPrice); err != nil {
		return err
	}
	for name, target := range map[string]float64{
		"projection.targets.bear": p.Targets.Bear,
		"projection.targets.base": p.Targets.Base,
		"projection.targets.bull": p.Targets.Bull,
	} {
		if err := validation.ValidatePrice(name, target); err != nil {
			return err
		}
	}
	if err := validation.ValidateProvider(c.Quote.Provider); err != nil {
		return err
	}
	if _, err := projection.ParseKind(c.Selection.Scenario); err != nil {
		return fmt.Errorf("selection.scenario: %w", err)
	}
	return nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration(currentYear int) []string {
	warnings := validation.RangeWarnings(c.Projection.BaselineYear, c.Projection.HorizonYear, currentYear)

	if kind, err := projection.ParseKind(c.Selection.Scenario); err == nil && kind == projection.Custom {
		if _, ok := projection.ParseRate(c.Selection.CustomRate); !ok {
			warnings = append(warnings, fmt.Sprintf("Custom growth rate %q is not a number; projection will be flat",
				c.Selection.CustomRate))
		}
	}

	return warnings
}
