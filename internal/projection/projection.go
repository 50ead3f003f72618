// Package projection computes year-indexed price trajectories from a starting
// price and a growth scenario, and compares a live price against them.
//
// Everything here is a pure function of its arguments.
package projection

import (
	"errors"
	"fmt"
	"math"

	"github.com/iwvelando/price-projection/pkg/constants"
	"github.com/iwvelando/price-projection/pkg/datetime"
	"github.com/shopspring/decimal"
)

// ErrInvalidRange is returned when the horizon year precedes the baseline year.
var ErrInvalidRange = errors.New("invalid projection range")

// Point is the projected price for one year. Price keeps full precision.
type Point struct {
	Year  int     `json:"year"`
	Price float64 `json:"price"`
}

// Display returns the price rounded to cents.
func (p Point) Display() decimal.Decimal {
	return decimal.NewFromFloat(p.Price).Round(constants.DecimalPlaces)
}

// Series is a full projection for one scenario, one point per year.
type Series struct {
	Scenario Scenario `json:"scenario"`
	Rate     float64  `json:"rate"`
	Points   []Point  `json:"points"`
}

// Project builds the series from baselineYear through horizonYear inclusive.
// The baseline point carries start unchanged; every later point is
// start * (1+rate)^i.
func Project(start float64, scenario Scenario, targets Targets, baselineYear, horizonYear int) (Series, error) {
	if horizonYear < baselineYear {
		return Series{}, fmt.Errorf("%w: horizon %d before baseline %d", ErrInvalidRange, horizonYear, baselineYear)
	}

	yearsCount := datetime.YearCount(baselineYear, horizonYear)
	rate := GrowthRate(start, scenario, targets, yearsCount)

	points := make([]Point, yearsCount)
	for i := range points {
		price := start
		if i > 0 {
			price = start * math.Pow(1+rate, float64(i))
		}
		points[i] = Point{Year: baselineYear + i, Price: price}
	}

	return Series{Scenario: scenario, Rate: rate, Points: points}, nil
}

// First returns the baseline point.
func (s Series) First() (Point, bool) {
	if len(s.Points) == 0 {
		return Point{}, false
	}
	return s.Points[0], true
}

// Last returns the horizon point.
func (s Series) Last() (Point, bool) {
	if len(s.Points) == 0 {
		return Point{}, false
	}
	return s.Points[len(s.Points)-1], true
}

// At looks up the point for year.
func (s Series) At(year int) (Point, bool) {
	first, ok := s.First()
	if !ok {
		return Point{}, false
	}
	i := year - first.Year
	if i < 0 || i >= len(s.Points) {
		return Point{}, false
	}
	return s.Points[i], true
}

// Years returns the ordered years of the series.
func (s Series) Years() []int {
	years := make([]int, len(s.Points))
	for i, p := range s.Points {
		years[i] = p.Year
	}
	return years
}

// DisplayPrices returns every price rounded to cents.
func (s Series) DisplayPrices() []float64 {
	prices := make([]float64, len(s.Points))
	for i, p := range s.Points {
		prices[i] = p.Display().InexactFloat64()
	}
	return prices
}
