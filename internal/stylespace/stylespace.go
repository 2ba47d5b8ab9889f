// Package stylespace defines the 8-dimensional author style-space: the
// dimension registry with its low/mid/high tier vocabularies, and the
// curated catalog of 11 author style entries.
//
// Everything in this package is immutable reference data, initialized once
// at package load and never written afterwards. Operations over the space
// (distance, blending, prompt synthesis) live in internal/styleops.
package stylespace

import "fmt"

// Dimension identifies one of the 8 axes of style-space.
type Dimension string

const (
	SyntacticDensity    Dimension = "syntactic_density"
	SensoryConcreteness Dimension = "sensory_concreteness"
	OrnamentalRegister  Dimension = "ornamental_register"
	TensionVisibility   Dimension = "tension_visibility"
	TensionTemporality  Dimension = "tension_temporality"
	RealityStability    Dimension = "reality_stability"
	Interiority         Dimension = "interiority"
	TemporalMode        Dimension = "temporal_mode"
)

// parameterOrder is the canonical dimension ordering. It defines iteration
// order for vector operations and for per-dimension result lists.
var parameterOrder = []Dimension{
	SyntacticDensity,
	SensoryConcreteness,
	OrnamentalRegister,
	TensionVisibility,
	TensionTemporality,
	RealityStability,
	Interiority,
	TemporalMode,
}

// NumDimensions is the dimensionality of style-space.
const NumDimensions = 8

// ParameterNames returns the canonical ordered list of dimension ids.
// The returned slice is a copy; callers may modify it freely.
func ParameterNames() []Dimension {
	names := make([]Dimension, len(parameterOrder))
	copy(names, parameterOrder)
	return names
}

// Tier is one of three coarse bands partitioning a dimension's [0,1] range.
type Tier string

const (
	TierLow  Tier = "low"
	TierMid  Tier = "mid"
	TierHigh Tier = "high"
)

// Tier boundaries. Bands are lower-closed: [0, 0.33), [0.33, 0.67), [0.67, 1.0].
const (
	lowUpperBound = 0.33
	midUpperBound = 0.67
	midBandWidth  = 0.34
	bandWidth     = 0.33
)

// TierOf maps a coordinate value to its tier. Values outside [0,1] are not
// rejected: anything below 0.33 is low, anything at or above 0.67 is high.
func TierOf(v float64) Tier {
	switch {
	case v < lowUpperBound:
		return TierLow
	case v < midUpperBound:
		return TierMid
	default:
		return TierHigh
	}
}

// BoundaryProximity reports how far a value has progressed through its own
// tier, linearly rescaled to [0,1]: 0 means the value just entered the tier,
// 1 means it sits at the tier's far edge. Downstream consumers use this to
// modulate how strongly the tier's character applies.
func BoundaryProximity(v float64) float64 {
	switch {
	case v < lowUpperBound:
		return v / lowUpperBound
	case v < midUpperBound:
		return (v - lowUpperBound) / midBandWidth
	default:
		return (v - midUpperBound) / bandWidth
	}
}

// StylePoint is a position in style-space: a mapping from each dimension to
// a value in the closed unit interval.
type StylePoint map[Dimension]float64

// Value returns the point's coordinate on d, or 0 if the dimension is absent.
// Missing dimensions are tolerated so that caller-supplied raw coordinates
// pass through the way the catalog entries do.
func (p StylePoint) Value(d Dimension) float64 {
	return p[d]
}

// Clone returns an independent copy of the point.
func (p StylePoint) Clone() StylePoint {
	out := make(StylePoint, len(p))
	for d, v := range p {
		out[d] = v
	}
	return out
}

// Validate reports the first structural problem with the point: a missing
// canonical dimension or a value outside [0,1]. Catalog entries are validated
// in tests; raw-coordinate inputs are deliberately not validated at runtime,
// matching the permissive custom-coordinates path.
func (p StylePoint) Validate() error {
	for _, d := range parameterOrder {
		v, ok := p[d]
		if !ok {
			return fmt.Errorf("style point missing dimension %q", d)
		}
		if v < 0.0 || v > 1.0 {
			return fmt.Errorf("style point dimension %q out of range: %v", d, v)
		}
	}
	return nil
}
