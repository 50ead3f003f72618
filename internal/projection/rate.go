package projection

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/iwvelando/price-projection/pkg/mathutil"
)

// leadingNumber matches the longest decimal prefix of the input, so "12.5%"
// and "10 per year" still parse.
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseRate parses a free-form percentage. The second return is false when
// no finite number can be read from the start of text.
func ParseRate(text string) (float64, bool) {
	match := leadingNumber.FindString(strings.TrimSpace(text))
	if match == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil || !mathutil.IsFinite(value) {
		return 0, false
	}
	return value, true
}

// GrowthRate derives the constant annual rate for scenario over a window of
// yearsCount years starting at start.
//
// Presets invert the compound growth formula so that start compounded for
// yearsCount-1 periods lands on the target. Custom scenarios convert their
// percentage directly; unparsable text yields a flat projection. A single-year
// window has no periods to compound over and also yields 0.
func GrowthRate(start float64, scenario Scenario, targets Targets, yearsCount int) float64 {
	var rate float64

	switch {
	case scenario.Kind == Custom:
		percent, ok := ParseRate(scenario.CustomRate)
		if !ok {
			return 0
		}
		rate = mathutil.PercentToRate(percent)
	case scenario.Kind.IsPreset():
		if yearsCount <= 1 || start <= 0 || !mathutil.IsFinite(start) {
			return 0
		}
		target := targets.For(scenario.Kind)
		rate = math.Pow(target/start, 1/float64(yearsCount-1)) - 1
	default:
		return 0
	}

	if !mathutil.IsFinite(rate) {
		return 0
	}
	// Compounding below -100% would flip the sign of every other year.
	return math.Max(rate, -1)
}
