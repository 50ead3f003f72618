package projection

// Direction tells whether the live price is above its own projection.
type Direction string

const (
	Above     Direction = "above"
	AtOrBelow Direction = "at-or-below"
)

// Comparison relates the live price to the projected price for one year.
type Comparison struct {
	Year      int       `json:"year"`
	Projected float64   `json:"projected"`
	Current   float64   `json:"current"`
	Delta     float64   `json:"delta"`
	Direction Direction `json:"direction"`
}

// Compare builds the comparison for year. It reports false when year lies
// outside the series.
func Compare(series Series, year int, current float64) (Comparison, bool) {
	point, ok := series.At(year)
	if !ok {
		return Comparison{}, false
	}

	delta := current - point.Price
	direction := AtOrBelow
	if delta > 0 {
		direction = Above
	}

	return Comparison{
		Year:      year,
		Projected: point.Price,
		Current:   current,
		Delta:     delta,
		Direction: direction,
	}, true
}
