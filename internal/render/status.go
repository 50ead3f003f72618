package render

import (
	"fmt"

	"github.com/iwvelando/price-projection/internal/projection"
	"github.com/iwvelando/price-projection/internal/quote"
	"github.com/iwvelando/price-projection/pkg/format"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// State is the coarse status shown next to the chart.
type State string

const (
	StateLoading     State = "loading"
	StatePriceKnown  State = "price-known"
	StateFetchFailed State = "fetch-failed"
	StateOutOfRange  State = "out-of-range"
)

// Status is the message handed to the display collaborator.
type Status struct {
	State   State   `json:"state"`
	Message string  `json:"message"`
	Price   float64 `json:"price,omitempty"`
	Year    int     `json:"year"`
}

var titleCase = cases.Title(language.English)

func loadingStatus(asset string, year int) Status {
	return Status{
		State:   StateLoading,
		Message: fmt.Sprintf("Fetching current %s price...", titleCase.String(asset)),
		Year:    year,
	}
}

// resolvedStatus picks the status after a lookup. A year outside the window
// takes precedence over a failed fetch since no annotation is drawn either way.
func resolvedStatus(asset string, q quote.Quote, cmp *projection.Comparison, baselineYear, horizonYear int) Status {
	name := titleCase.String(asset)

	if cmp == nil {
		return Status{
			State: StateOutOfRange,
			Message: fmt.Sprintf("Current year %d is outside the projection window %d-%d",
				q.Year, baselineYear, horizonYear),
			Price: q.Price,
			Year:  q.Year,
		}
	}

	if q.Origin == quote.OriginFallback {
		return Status{
			State: StateFetchFailed,
			Message: fmt.Sprintf("Could not fetch the current %s price, using %s",
				name, format.Currency(q.Price)),
			Price: q.Price,
			Year:  q.Year,
		}
	}

	return Status{
		State: StatePriceKnown,
		Message: fmt.Sprintf("Current %s Price: %s (%s projected %s for %d)",
			name, format.Currency(q.Price), cmp.Direction, format.Currency(cmp.Projected), cmp.Year),
		Price: q.Price,
		Year:  q.Year,
	}
}
