// Package constants provides shared constants for the price-projection application.
package constants

// Projection window and anchor price
const (
	// DefaultBaselineYear is the first year of the projection window
	DefaultBaselineYear = 2024

	// DefaultHorizonYear is the last year of the projection window
	DefaultHorizonYear = 2045

	// DefaultBaselinePrice is the fixed price of the asset in the baseline year
	DefaultBaselinePrice = 69420.0

	// DefaultFallbackPrice is substituted when the live quote cannot be read
	DefaultFallbackPrice = 27000.0
)

// Preset scenario targets for the horizon year
const (
	DefaultBearTarget = 3000000.0
	DefaultBaseTarget = 13000000.0
	DefaultBullTarget = 49000000.0
)

// Quote provider defaults
const (
	// DefaultAsset is the quote service asset id
	DefaultAsset = "bitcoin"

	// DefaultCurrency is the fiat unit prices are quoted in
	DefaultCurrency = "usd"

	// ProviderCoinGecko selects the CoinGecko simple price endpoint
	ProviderCoinGecko = "coingecko"

	// ProviderBinance selects the Binance spot ticker
	ProviderBinance = "binance"

	// DefaultCoinGeckoEndpoint is the CoinGecko API base URL
	DefaultCoinGeckoEndpoint = "https://api.coingecko.com"

	// DefaultBinanceSymbol is the spot pair used by the Binance provider
	DefaultBinanceSymbol = "BTCUSDT"

	// DefaultQuoteTimeout bounds a single quote request
	DefaultQuoteTimeout = "10s"
)

// Numeric constants
const (
	// DecimalPlaces is the number of decimals prices are displayed with
	DecimalPlaces = 2

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the declarative chart description as JSON
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultEnvFile holds optional environment overrides
	DefaultEnvFile = ".env"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"
)
