// Package format renders numbers for status lines and tables.
package format

import (
	"math"

	"github.com/iwvelando/price-projection/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	if amount < 0 {
		return "-$" + NumericCurrency(math.Abs(amount))
	}
	return "$" + NumericCurrency(amount)
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	return printer.Sprintf("%.2f", amount)
}

// Percent renders a rate such as 0.3636 as "36.36%".
func Percent(rate float64) string {
	return printer.Sprintf("%.2f%%", mathutil.RateToPercent(rate))
}
