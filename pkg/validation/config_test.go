package validation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateYearRange(t *testing.T) {
	tests := []struct {
		name      string
		baseline  int
		horizon   int
		expectErr bool
	}{
		{"Default window", 2024, 2045, false},
		{"Single year", 2024, 2024, false},
		{"Inverted window", 2045, 2024, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateYearRange(tt.baseline, tt.horizon)
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrInvalidYearRange)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidatePrice(t *testing.T) {
	tests := []struct {
		name      string
		price     float64
		expectErr bool
	}{
		{"Positive", 69420, false},
		{"Zero", 0, true},
		{"Negative", -1, true},
		{"NaN", math.NaN(), true},
		{"Infinity", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePrice("baselinePrice", tt.price)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateProvider(t *testing.T) {
	for _, provider := range []string{"coingecko", "binance"} {
		assert.NoError(t, ValidateProvider(provider), provider)
	}
	assert.Error(t, ValidateProvider("kraken"))
}

func TestRangeWarnings(t *testing.T) {
	tests := []struct {
		name     string
		baseline int
		horizon  int
		current  int
		contains []string
	}{
		{"Current year inside window", 2024, 2045, 2026, nil},
		{"Single year window", 2024, 2024, 2024, []string{"single year"}},
		{"Current year before window", 2030, 2045, 2026, []string{"outside the projection window"}},
		{"Current year after window", 2020, 2025, 2026, []string{"outside the projection window"}},
		{"Current year on the horizon", 2024, 2045, 2045, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := RangeWarnings(tt.baseline, tt.horizon, tt.current)
			require.Len(t, warnings, len(tt.contains))
			for i, want := range tt.contains {
				assert.Contains(t, warnings[i], want)
			}
		})
	}
}
