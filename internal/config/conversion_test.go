package config

import (
	"testing"
	"time"

	"github.com/iwvelando/price-projection/internal/projection"
	"github.com/iwvelando/price-projection/internal/quote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario(t *testing.T) {
	tests := []struct {
		name      string
		selection SelectionConfig
		expected  projection.Scenario
		expectErr bool
	}{
		{"Preset drops rate", SelectionConfig{Scenario: "bull", CustomRate: "10"}, projection.Preset(projection.Bull), false},
		{"Custom keeps rate", SelectionConfig{Scenario: "custom", CustomRate: "10"}, projection.CustomScenario("10"), false},
		{"Unknown", SelectionConfig{Scenario: "moon"}, projection.Scenario{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := mustDefault(t)
			conf.Selection = tt.selection
			got, err := conf.Scenario()
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestConversions(t *testing.T) {
	conf := mustDefault(t)
	conf.Quote.Timeout = 2 * time.Second
	conf.Projection.Targets.Base = 5000000

	targets := conf.Targets()
	assert.Equal(t, 5000000.0, targets[projection.Base])
	assert.Equal(t, 49000000.0, targets[projection.Bull])

	assert.Equal(t, quote.Settings{Provider: "coingecko", Asset: "bitcoin", Currency: "usd", Timeout: 2 * time.Second},
		conf.QuoteSettings())
	assert.Equal(t, quote.SourceConfig{BaselineYear: 2024, BaselinePrice: 69420, FallbackPrice: 27000},
		conf.SourceConfig())

	settings := conf.RenderSettings()
	assert.Equal(t, "bitcoin", settings.Asset)
	assert.Equal(t, 2024, settings.BaselineYear)
	assert.Equal(t, 2045, settings.HorizonYear)
	assert.Equal(t, 5000000.0, settings.Targets[projection.Base])
}
