package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  Kind
		expectErr bool
	}{
		{"Bear", "bear", Bear, false},
		{"Base", "base", Base, false},
		{"Bull mixed case", "Bull", Bull, false},
		{"Custom with whitespace", "  custom ", Custom, false},
		{"Empty", "", "", true},
		{"Unknown", "moon", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := ParseKind(tt.input)
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrUnknownKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, kind)
		})
	}
}

func TestKindIsPreset(t *testing.T) {
	for _, kind := range []Kind{Bear, Base, Bull} {
		assert.True(t, kind.IsPreset(), kind)
	}
	assert.False(t, Custom.IsPreset())
}

func TestScenarioWithKind(t *testing.T) {
	custom := CustomScenario("12")

	assert.Equal(t, "12", custom.WithKind(Custom).CustomRate, "staying custom keeps the rate text")

	bull := custom.WithKind(Bull)
	assert.Equal(t, Preset(Bull), bull, "switching to bull drops the rate text")

	assert.Empty(t, bull.WithKind(Custom).CustomRate, "switching back to custom starts empty")
}

func TestScenarioString(t *testing.T) {
	assert.Equal(t, "base", Preset(Base).String())
	assert.Equal(t, "custom (7.5%)", CustomScenario(" 7.5 ").String())
}

func TestDefaultTargets(t *testing.T) {
	targets := DefaultTargets()
	assert.Equal(t, Targets{Bear: 3000000, Base: 13000000, Bull: 49000000}, targets)
	assert.NotContains(t, targets, Custom)
}

func TestTargetsFor(t *testing.T) {
	targets := Targets{Bull: 1000000}
	assert.Equal(t, 1000000.0, targets.For(Bull))
	assert.Equal(t, DefaultTargets()[Base], targets.For(Base))
	assert.Equal(t, DefaultTargets()[Bear], Targets{Bear: -5}.For(Bear))
	assert.Zero(t, Targets(nil).For(Custom))
}
