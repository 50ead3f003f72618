// Package chart describes a projection as a declarative line chart and
// defines the collaborator that draws it.
package chart

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/iwvelando/price-projection/internal/projection"
	"github.com/iwvelando/price-projection/pkg/datetime"
	"github.com/iwvelando/price-projection/pkg/format"
	"github.com/iwvelando/price-projection/pkg/mathutil"
	"github.com/samber/lo"
)

// KindLine is the only chart kind produced.
const KindLine = "line"

// Colors and radii for the two datasets.
const (
	ProjectionColor      = "#ffc107"
	ProjectionFill       = "rgba(255, 193, 7, 0.2)"
	ProjectionPointColor = "#ffffff"
	AboveColor           = "#28a745"
	AtOrBelowColor       = "#dc3545"

	ProjectionRadius = 3
	MarkerRadius     = 7
	Tension          = 0.1
)

// ValueCurrency formats axis ticks and tooltips as grouped dollar amounts.
const ValueCurrency = "currency"

// Spec is a chart description ready for a renderer.
type Spec struct {
	ID       string    `json:"id"`
	Kind     string    `json:"kind"`
	Title    string    `json:"title"`
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
	Options  Options   `json:"options"`
}

// Options carries chart-wide display settings.
type Options struct {
	Responsive    bool   `json:"responsive"`
	BeginAtZero   bool   `json:"beginAtZero"`
	TickFormat    string `json:"tickFormat"`
	TooltipFormat string `json:"tooltipFormat"`
}

// FormatTick renders a y-axis value the way TickFormat asks.
func (o Options) FormatTick(v float64) string {
	return formatValue(o.TickFormat, v)
}

// FormatTooltip renders a hovered value the way TooltipFormat asks.
func (o Options) FormatTooltip(v float64) string {
	return formatValue(o.TooltipFormat, v)
}

func formatValue(kind string, v float64) string {
	if kind == ValueCurrency {
		return format.Currency(v)
	}
	return format.NumericCurrency(v)
}

// Dataset is one ordered series aligned with Spec.Labels. A nil entry in Data
// is a gap.
type Dataset struct {
	Label                string     `json:"label"`
	Data                 []*float64 `json:"data"`
	BorderColor          string     `json:"borderColor"`
	BackgroundColor      string     `json:"backgroundColor"`
	PointBackgroundColor string     `json:"pointBackgroundColor"`
	PointBorderColor     string     `json:"pointBorderColor,omitempty"`
	PointHoverBackground string     `json:"pointHoverBackgroundColor,omitempty"`
	PointHoverBorder     string     `json:"pointHoverBorderColor,omitempty"`
	PointRadius          int        `json:"pointRadius"`
	Fill                 bool       `json:"fill"`
	Tension              float64    `json:"tension"`
}

// Build describes series as a line chart. When comparison is non-nil a second
// sparse dataset marks the live price at the comparison year, colored by
// direction. Every field except ID is a deterministic function of the input.
func Build(asset string, series projection.Series, comparison *projection.Comparison) Spec {
	labels := lo.Map(series.Points, func(p projection.Point, _ int) string {
		return datetime.YearLabel(p.Year)
	})
	values := lo.Map(series.DisplayPrices(), func(v float64, _ int) *float64 {
		return lo.ToPtr(v)
	})

	spec := Spec{
		ID:     uuid.NewString(),
		Kind:   KindLine,
		Title:  fmt.Sprintf("%s price projection: %s, %s per year", asset, series.Scenario.Kind, format.Percent(series.Rate)),
		Labels: labels,
		Datasets: []Dataset{{
			Label:                "Price Projection",
			Data:                 values,
			BorderColor:          ProjectionColor,
			BackgroundColor:      ProjectionFill,
			PointBackgroundColor: ProjectionColor,
			PointBorderColor:     ProjectionPointColor,
			PointHoverBackground: ProjectionPointColor,
			PointHoverBorder:     ProjectionColor,
			PointRadius:          ProjectionRadius,
			Fill:                 true,
			Tension:              Tension,
		}},
		Options: Options{
			Responsive:    true,
			TickFormat:    ValueCurrency,
			TooltipFormat: ValueCurrency,
		},
	}

	if comparison == nil {
		return spec
	}

	color := MarkerColor(comparison.Direction)
	marker := lo.Map(series.Points, func(p projection.Point, _ int) *float64 {
		if p.Year != comparison.Year {
			return nil
		}
		return lo.ToPtr(mathutil.Round(comparison.Current))
	})
	spec.Datasets = append(spec.Datasets, Dataset{
		Label:                fmt.Sprintf("Current Price (%d)", comparison.Year),
		Data:                 marker,
		BorderColor:          color,
		BackgroundColor:      color,
		PointBackgroundColor: color,
		PointRadius:          MarkerRadius,
	})

	return spec
}

// MarkerColor returns the comparison marker color for direction.
func MarkerColor(direction projection.Direction) string {
	if direction == projection.Above {
		return AboveColor
	}
	return AtOrBelowColor
}

// Handle is a drawn chart owned by its renderer until destroyed.
type Handle interface {
	ID() string
	Destroy() error
}

// Renderer draws a Spec and returns the live chart.
type Renderer interface {
	Draw(spec Spec) (Handle, error)
}
