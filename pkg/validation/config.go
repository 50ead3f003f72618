// Package validation provides configuration validation utilities.
package validation

import (
	"errors"
	"fmt"
	"math"

	"github.com/iwvelando/price-projection/pkg/constants"
	"github.com/iwvelando/price-projection/pkg/datetime"
)

// ErrInvalidYearRange is returned when the horizon year precedes the baseline year.
var ErrInvalidYearRange = errors.New("horizon year precedes baseline year")

// ValidateYearRange checks that the projection window is well formed.
func ValidateYearRange(baselineYear, horizonYear int) error {
	if horizonYear < baselineYear {
		return fmt.Errorf("%w (%d < %d)", ErrInvalidYearRange, horizonYear, baselineYear)
	}
	return nil
}

// ValidatePrice checks that a configured price is a positive finite number.
func ValidatePrice(name string, price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return fmt.Errorf("%s must be a positive number, got %v", name, price)
	}
	return nil
}

// ValidateProvider checks the quote provider name.
func ValidateProvider(provider string) error {
	switch provider {
	case constants.ProviderCoinGecko, constants.ProviderBinance:
		return nil
	}
	return fmt.Errorf("expected quote provider of %s or %s, got %s",
		constants.ProviderCoinGecko, constants.ProviderBinance, provider)
}

// RangeWarnings returns non-fatal observations about the projection window.
func RangeWarnings(baselineYear, horizonYear, currentYear int) []string {
	var warnings []string

	if horizonYear == baselineYear {
		warnings = append(warnings, fmt.Sprintf("Projection window is a single year (%d); growth rate falls back to 0", baselineYear))
	}

	if !datetime.InRange(currentYear, baselineYear, horizonYear) {
		warnings = append(warnings, fmt.Sprintf("Current year %d is outside the projection window %d-%d; comparison will be suppressed",
			currentYear, baselineYear, horizonYear))
	}

	return warnings
}
