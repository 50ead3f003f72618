package config

import (
	"github.com/iwvelando/price-projection/internal/projection"
	"github.com/iwvelando/price-projection/internal/quote"
	"github.com/iwvelando/price-projection/internal/render"
)

// Targets converts the configured preset targets.
func (c *Configuration) Targets() projection.Targets {
	return projection.Targets{
		projection.Bear: c.Projection.Targets.Bear,
		projection.Base: c.Projection.Targets.Base,
		projection.Bull: c.Projection.Targets.Bull,
	}
}

// Scenario builds the configured selection. A custom rate is only carried
// for the custom kind.
func (c *Configuration) Scenario() (projection.Scenario, error) {
	kind, err := projection.ParseKind(c.Selection.Scenario)
	if err != nil {
		return projection.Scenario{}, err
	}
	if kind == projection.Custom {
		return projection.CustomScenario(c.Selection.CustomRate), nil
	}
	return projection.Preset(kind), nil
}

// QuoteSettings converts the quote section for quote.NewClient.
func (c *Configuration) QuoteSettings() quote.Settings {
	return quote.Settings{
		Provider: c.Quote.Provider,
		Endpoint: c.Quote.Endpoint,
		Asset:    c.Projection.Asset,
		Currency: c.Projection.Currency,
		Symbol:   c.Quote.Symbol,
		Timeout:  c.Quote.Timeout,
	}
}

// SourceConfig converts the anchor prices for quote.NewSource.
func (c *Configuration) SourceConfig() quote.SourceConfig {
	return quote.SourceConfig{
		BaselineYear:  c.Projection.BaselineYear,
		BaselinePrice: c.Projection.BaselinePrice,
		FallbackPrice: c.Projection.FallbackPrice,
	}
}

// RenderSettings converts the projection window for render.New.
func (c *Configuration) RenderSettings() render.Settings {
	return render.Settings{
		Asset:        c.Projection.Asset,
		BaselineYear: c.Projection.BaselineYear,
		HorizonYear:  c.Projection.HorizonYear,
		Targets:      c.Targets(),
	}
}
