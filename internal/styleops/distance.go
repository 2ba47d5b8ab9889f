package styleops

import (
	"math"

	"github.com/dmarsters/author-style-mcp/internal/stylespace"
)

// perceptualWeights scale per-dimension differences when weighted distance is
// requested. Some dimensions contribute more to perceived style difference
// than others; the values are tunable and carry no normalization constraint.
var perceptualWeights = map[stylespace.Dimension]float64{
	stylespace.SyntacticDensity:    1.2,
	stylespace.SensoryConcreteness: 1.0,
	stylespace.OrnamentalRegister:  1.1,
	stylespace.TensionVisibility:   0.9,
	stylespace.TensionTemporality:  0.8,
	stylespace.RealityStability:    1.0,
	stylespace.Interiority:         1.0,
	stylespace.TemporalMode:        0.8,
}

// DimensionGap is the per-dimension breakdown of a distance computation.
type DimensionGap struct {
	Dimension          stylespace.Dimension `json:"dimension"`
	Value1             float64              `json:"value_1"`
	Value2             float64              `json:"value_2"`
	RawDifference      float64              `json:"raw_difference"`
	WeightedDifference float64              `json:"weighted_difference"`
	AbsoluteGap        float64              `json:"absolute_gap"`
}

// DistanceReport describes the separation of two authors in style-space.
// PerDimension is ordered canonically.
type DistanceReport struct {
	Author1            string               `json:"author_1"`
	Author2            string               `json:"author_2"`
	EuclideanDistance  float64              `json:"euclidean_distance"`
	NormalizedDistance float64              `json:"normalized_distance"`
	MaxContrastAxis    stylespace.Dimension `json:"max_contrast_axis"`
	MaxContrastGap     float64              `json:"max_contrast_gap"`
	PerDimension       []DimensionGap       `json:"per_dimension"`
}

// ComputeDistance computes the Euclidean distance between two catalog authors
// over the 8 canonical dimensions. With weighted set, each per-dimension
// difference is scaled by its perceptual weight before squaring. The
// max-contrast axis is always chosen on the unweighted absolute gap; ties go
// to the earlier dimension in canonical order.
func ComputeDistance(authorID1, authorID2 string, weighted bool) (*DistanceReport, error) {
	entry1, err := stylespace.Lookup(authorID1)
	if err != nil {
		return nil, err
	}
	entry2, err := stylespace.Lookup(authorID2)
	if err != nil {
		return nil, err
	}

	report := &DistanceReport{
		Author1:      entry1.DisplayName,
		Author2:      entry2.DisplayName,
		PerDimension: make([]DimensionGap, 0, stylespace.NumDimensions),
	}

	sumSq := 0.0
	for _, dim := range stylespace.ParameterNames() {
		v1 := entry1.Coordinates.Value(dim)
		v2 := entry2.Coordinates.Value(dim)
		diff := v2 - v1

		w := 1.0
		if weighted {
			w = perceptualWeights[dim]
		}
		weightedDiff := diff * w
		sumSq += weightedDiff * weightedDiff

		report.PerDimension = append(report.PerDimension, DimensionGap{
			Dimension:          dim,
			Value1:             v1,
			Value2:             v2,
			RawDifference:      roundTo(diff, 3),
			WeightedDifference: roundTo(weightedDiff, 3),
			AbsoluteGap:        roundTo(math.Abs(diff), 3),
		})
	}

	total := math.Sqrt(sumSq)
	report.EuclideanDistance = roundTo(total, 4)
	report.NormalizedDistance = roundTo(total/math.Sqrt(stylespace.NumDimensions), 4)

	maxIdx := 0
	for i, gap := range report.PerDimension {
		if gap.AbsoluteGap > report.PerDimension[maxIdx].AbsoluteGap {
			maxIdx = i
		}
	}
	report.MaxContrastAxis = report.PerDimension[maxIdx].Dimension
	report.MaxContrastGap = report.PerDimension[maxIdx].AbsoluteGap

	return report, nil
}

// euclidean is the plain (unweighted, unrounded) distance between two points,
// used by the neighbor scans.
func euclidean(a, b stylespace.StylePoint) float64 {
	sumSq := 0.0
	for _, dim := range stylespace.ParameterNames() {
		d := a.Value(dim) - b.Value(dim)
		sumSq += d * d
	}
	return math.Sqrt(sumSq)
}
