package stylespace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierOf(t *testing.T) {
	cases := []struct {
		value float64
		want  Tier
	}{
		{0.0, TierLow},
		{0.1, TierLow},
		{0.329999, TierLow},
		{0.33, TierMid},
		{0.5, TierMid},
		{0.669999, TierMid},
		{0.67, TierHigh},
		{0.9, TierHigh},
		{1.0, TierHigh},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, TierOf(tc.value), "TierOf(%v)", tc.value)
	}
}

func TestBoundaryProximity(t *testing.T) {
	cases := []struct {
		value float64
		want  float64
	}{
		{0.0, 0.0},
		{0.165, 0.5},
		{0.33, 0.0},  // first value inside mid
		{0.5, 0.5},   // halfway through mid
		{0.67, 0.0},  // first value inside high
		{0.835, 0.5},
		{1.0, 1.0},
	}

	for _, tc := range cases {
		assert.InDelta(t, tc.want, BoundaryProximity(tc.value), 1e-9, "BoundaryProximity(%v)", tc.value)
	}
}

func TestTierAndProximityAgree(t *testing.T) {
	// Just below the mid boundary the value is still low tier and nearly
	// all the way through it.
	v := 0.329999
	assert.Equal(t, TierLow, TierOf(v))
	assert.InDelta(t, 1.0, BoundaryProximity(v), 1e-4)
}

func TestParameterNames(t *testing.T) {
	names := ParameterNames()
	require.Len(t, names, NumDimensions)
	assert.Equal(t, SyntacticDensity, names[0])
	assert.Equal(t, TemporalMode, names[len(names)-1])

	// Mutating the returned slice must not corrupt the canonical order.
	names[0] = TemporalMode
	assert.Equal(t, SyntacticDensity, ParameterNames()[0])
}

func TestStylePointClone(t *testing.T) {
	p := StylePoint{SyntacticDensity: 0.5}
	c := p.Clone()
	c[SyntacticDensity] = 0.9
	assert.Equal(t, 0.5, p.Value(SyntacticDensity))
}

func TestStylePointValue(t *testing.T) {
	p := StylePoint{Interiority: 0.8}
	assert.Equal(t, 0.8, p.Value(Interiority))
	assert.Equal(t, 0.0, p.Value(TemporalMode), "missing dimensions read as zero")
}
