package quote

import (
	"context"

	"github.com/iwvelando/price-projection/pkg/constants"
	"go.uber.org/zap"
)

// Origin records where a quoted price came from.
type Origin string

const (
	// OriginBaseline is the fixed price of the baseline year.
	OriginBaseline Origin = "baseline"
	// OriginLive is a price read from the quote client.
	OriginLive Origin = "live"
	// OriginFallback is the constant used when the live lookup failed.
	OriginFallback Origin = "fallback"
)

// Quote is the price resolved for a reference year.
type Quote struct {
	Year   int     `json:"year"`
	Price  float64 `json:"price"`
	Origin Origin  `json:"origin"`
}

// SourceConfig holds the fixed prices a Source answers with.
type SourceConfig struct {
	BaselineYear  int
	BaselinePrice float64
	FallbackPrice float64
}

// Source resolves the price of the asset for a given year. Lookup failures
// are absorbed: the caller always receives a usable price.
type Source struct {
	client Client
	config SourceConfig
	logger *zap.Logger
}

// NewSource wraps client. Zero prices in cfg take the package defaults.
func NewSource(logger *zap.Logger, client Client, cfg SourceConfig) *Source {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.BaselinePrice <= 0 {
		cfg.BaselinePrice = constants.DefaultBaselinePrice
	}
	if cfg.FallbackPrice <= 0 {
		cfg.FallbackPrice = constants.DefaultFallbackPrice
	}
	return &Source{client: client, config: cfg, logger: logger}
}

// Lookup returns the price for year. The baseline year is answered from
// configuration without calling the client; any other year makes exactly one
// client call and substitutes the fallback price if it fails.
func (s *Source) Lookup(ctx context.Context, year int) Quote {
	if year == s.config.BaselineYear {
		return Quote{Year: year, Price: s.config.BaselinePrice, Origin: OriginBaseline}
	}

	if s.client == nil {
		s.logger.Warn("no quote client configured, using fallback price",
			zap.String("op", "quote.Lookup"),
			zap.Int("year", year),
			zap.Float64("fallback", s.config.FallbackPrice),
		)
		return Quote{Year: year, Price: s.config.FallbackPrice, Origin: OriginFallback}
	}

	price, err := s.client.Price(ctx)
	if err != nil {
		s.logger.Warn("failed to fetch current price, using fallback",
			zap.String("op", "quote.Lookup"),
			zap.Int("year", year),
			zap.Float64("fallback", s.config.FallbackPrice),
			zap.Error(err),
		)
		return Quote{Year: year, Price: s.config.FallbackPrice, Origin: OriginFallback}
	}

	s.logger.Debug("fetched current price",
		zap.String("op", "quote.Lookup"),
		zap.Int("year", year),
		zap.Float64("price", price),
	)
	return Quote{Year: year, Price: price, Origin: OriginLive}
}

// CurrentPrice returns only the resolved price for year.
func (s *Source) CurrentPrice(ctx context.Context, year int) float64 {
	return s.Lookup(ctx, year).Price
}

// BaselinePrice returns the fixed price of the baseline year.
func (s *Source) BaselinePrice() float64 {
	return s.config.BaselinePrice
}
