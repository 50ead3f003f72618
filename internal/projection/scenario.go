package projection

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iwvelando/price-projection/pkg/constants"
	"github.com/iwvelando/price-projection/pkg/mathutil"
)

// Kind names a growth assumption.
type Kind string

const (
	Bear   Kind = "bear"
	Base   Kind = "base"
	Bull   Kind = "bull"
	Custom Kind = "custom"
)

// ErrUnknownKind is returned by ParseKind for names outside the closed set.
var ErrUnknownKind = errors.New("unknown scenario")

// Kinds lists every scenario in selector order.
var Kinds = []Kind{Bear, Base, Bull, Custom}

// ParseKind maps a selector value onto a Kind, ignoring case and surrounding
// whitespace.
func ParseKind(value string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(value)))
	switch kind {
	case Bear, Base, Bull, Custom:
		return kind, nil
	}
	return "", fmt.Errorf("%w %q: expected one of bear, base, bull, custom", ErrUnknownKind, value)
}

// IsPreset reports whether the kind derives its rate from a target price.
func (k Kind) IsPreset() bool {
	return k == Bear || k == Base || k == Bull
}

// Scenario is the active growth assumption. CustomRate holds the raw
// percentage text and is only meaningful for the Custom kind.
type Scenario struct {
	Kind       Kind   `json:"kind"`
	CustomRate string `json:"customRate,omitempty"`
}

// Preset returns the scenario for a target-price kind.
func Preset(kind Kind) Scenario {
	return Scenario{Kind: kind}
}

// CustomScenario returns a custom scenario carrying the given percentage text.
func CustomScenario(rate string) Scenario {
	return Scenario{Kind: Custom, CustomRate: rate}
}

// WithKind switches the scenario to kind. Any custom rate text is discarded
// unless the scenario stays custom.
func (s Scenario) WithKind(kind Kind) Scenario {
	if kind == s.Kind {
		return s
	}
	return Scenario{Kind: kind}
}

// String implements fmt.Stringer.
func (s Scenario) String() string {
	if s.Kind == Custom {
		return fmt.Sprintf("custom (%s%%)", strings.TrimSpace(s.CustomRate))
	}
	return string(s.Kind)
}

// Targets maps preset kinds to their horizon-year target price.
type Targets map[Kind]float64

// For returns the target for kind. A missing, non-positive or non-finite
// entry falls back to the built-in target.
func (t Targets) For(kind Kind) float64 {
	if target, ok := t[kind]; ok && target > 0 && mathutil.IsFinite(target) {
		return target
	}
	return DefaultTargets()[kind]
}

// DefaultTargets returns the built-in bear/base/bull targets.
func DefaultTargets() Targets {
	return Targets{
		Bear: constants.DefaultBearTarget,
		Base: constants.DefaultBaseTarget,
		Bull: constants.DefaultBullTarget,
	}
}
