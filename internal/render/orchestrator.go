// Package render runs the refresh cycle: look up the live price, project the
// selected scenario, annotate the comparison year and replace the displayed
// chart.
package render

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/iwvelando/price-projection/internal/chart"
	"github.com/iwvelando/price-projection/internal/projection"
	"github.com/iwvelando/price-projection/internal/quote"
	"github.com/iwvelando/price-projection/pkg/datetime"
	"go.uber.org/zap"
)

// PriceSource resolves the comparison-year price and the fixed baseline price.
type PriceSource interface {
	Lookup(ctx context.Context, year int) quote.Quote
	BaselinePrice() float64
}

// Display receives the input-visibility and status updates of a refresh.
type Display interface {
	ShowCustomRateInput(visible bool)
	SetStatus(status Status)
}

// Input is the user selection a refresh works from.
type Input struct {
	Scenario projection.Scenario
}

// Settings fixes the projection window and preset targets.
type Settings struct {
	Asset        string
	BaselineYear int
	HorizonYear  int
	Targets      projection.Targets
}

// Result describes one completed refresh. A Stale result was overtaken by a
// newer refresh and left the display untouched.
type Result struct {
	Generation uint64                 `json:"generation"`
	Stale      bool                   `json:"stale,omitempty"`
	Series     projection.Series      `json:"series"`
	Comparison *projection.Comparison `json:"comparison,omitempty"`
	Quote      quote.Quote            `json:"quote"`
	Status     Status                 `json:"status"`
	Chart      chart.Spec             `json:"chart"`
	Err        error                  `json:"-"`
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithClock overrides the clock used to resolve the comparison year.
func WithClock(clock datetime.Clock) Option {
	return func(o *Orchestrator) {
		o.clock = clock
	}
}

// Orchestrator owns the slot holding the single displayed chart.
type Orchestrator struct {
	logger   *zap.Logger
	source   PriceSource
	renderer chart.Renderer
	display  Display
	clock    datetime.Clock
	settings Settings

	generation atomic.Uint64

	mu      sync.Mutex
	current chart.Handle
}

// New builds an Orchestrator. A nil display discards updates.
func New(logger *zap.Logger, source PriceSource, renderer chart.Renderer, display Display, settings Settings, options ...Option) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if display == nil {
		display = nopDisplay{}
	}
	if settings.Targets == nil {
		settings.Targets = projection.DefaultTargets()
	}

	o := &Orchestrator{
		logger:   logger,
		source:   source,
		renderer: renderer,
		display:  display,
		clock:    datetime.SystemClock,
		settings: settings,
	}
	for _, option := range options {
		option(o)
	}
	return o
}

// Refresh recomputes the projection for input and replaces the displayed
// chart. It never fails; renderer errors are logged and reported in
// Result.Err.
func (o *Orchestrator) Refresh(ctx context.Context, input Input) Result {
	gen := o.generation.Add(1)
	asset := o.settings.Asset
	year := datetime.CurrentYear(o.clock)

	o.display.ShowCustomRateInput(input.Scenario.Kind == projection.Custom)
	o.display.SetStatus(loadingStatus(asset, year))

	q := o.source.Lookup(ctx, year)

	result := Result{Generation: gen, Quote: q}

	series, err := projection.Project(o.source.BaselinePrice(), input.Scenario, o.settings.Targets,
		o.settings.BaselineYear, o.settings.HorizonYear)
	if err != nil {
		o.logger.Error("failed to project prices",
			zap.String("op", "render.Refresh"),
			zap.Uint64("generation", gen),
			zap.Error(err),
		)
		result.Err = err
	}
	result.Series = series

	if cmp, ok := projection.Compare(series, year, q.Price); ok {
		result.Comparison = &cmp
	}
	result.Status = resolvedStatus(asset, q, result.Comparison, o.settings.BaselineYear, o.settings.HorizonYear)
	result.Chart = chart.Build(asset, series, result.Comparison)

	o.mu.Lock()
	defer o.mu.Unlock()

	if latest := o.generation.Load(); gen != latest {
		o.logger.Debug("discarding stale refresh",
			zap.String("op", "render.Refresh"),
			zap.Uint64("generation", gen),
			zap.Uint64("latest", latest),
		)
		result.Stale = true
		return result
	}

	if err := o.replace(result.Chart); err != nil && result.Err == nil {
		result.Err = err
	}
	o.display.SetStatus(result.Status)

	o.logger.Info("chart refreshed",
		zap.String("op", "render.Refresh"),
		zap.Uint64("generation", gen),
		zap.String("scenario", input.Scenario.String()),
		zap.Float64("rate", series.Rate),
		zap.Int("points", len(series.Points)),
		zap.String("quote", string(q.Origin)),
		zap.String("status", string(result.Status.State)),
	)

	return result
}

// replace tears down the displayed chart before drawing spec. The slot is
// empty afterwards if drawing fails. Callers hold o.mu.
func (o *Orchestrator) replace(spec chart.Spec) error {
	o.destroyCurrent()

	handle, err := o.renderer.Draw(spec)
	if err != nil {
		o.logger.Error("failed to draw chart",
			zap.String("op", "render.replace"),
			zap.String("chart", spec.ID),
			zap.Error(err),
		)
		return fmt.Errorf("failed to draw chart: %w", err)
	}
	o.current = handle
	return nil
}

func (o *Orchestrator) destroyCurrent() {
	if o.current == nil {
		return
	}
	if err := o.current.Destroy(); err != nil {
		o.logger.Warn("failed to destroy previous chart",
			zap.String("op", "render.replace"),
			zap.String("chart", o.current.ID()),
			zap.Error(err),
		)
	}
	o.current = nil
}

// Displayed returns the ID of the live chart, or "" when none is drawn.
func (o *Orchestrator) Displayed() string {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.current == nil {
		return ""
	}
	return o.current.ID()
}

// Close destroys the displayed chart.
func (o *Orchestrator) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.destroyCurrent()
}

type nopDisplay struct{}

func (nopDisplay) ShowCustomRateInput(bool) {}
func (nopDisplay) SetStatus(Status)         {}
