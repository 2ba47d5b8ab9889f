package styleops

import (
	"github.com/dmarsters/author-style-mcp/internal/stylespace"
)

// TierExtraction is one dimension's tier bundle annotated with where the
// input value sat: which tier it selected and how far through that tier it
// had progressed.
type TierExtraction struct {
	Dimension         stylespace.Dimension  `json:"dimension"`
	Value             float64               `json:"value"`
	Tier              stylespace.Tier       `json:"tier"`
	BoundaryProximity float64               `json:"boundary_proximity"`
	Bundle            stylespace.TierBundle `json:"bundle"`
}

// Extraction maps every canonical dimension to its annotated tier bundle.
type Extraction map[stylespace.Dimension]TierExtraction

// extractTier selects the tier bundle for one dimension of a point.
func extractTier(dim stylespace.Dimension, value float64, modality stylespace.Modality) TierExtraction {
	spec, _ := stylespace.DimensionByID(dim)
	tier := stylespace.TierOf(value)
	return TierExtraction{
		Dimension:         dim,
		Value:             roundTo(value, 3),
		Tier:              tier,
		BoundaryProximity: roundTo(stylespace.BoundaryProximity(value), 3),
		Bundle:            spec.Tiers(modality).Bundle(tier),
	}
}

// extract runs tier selection across all 8 dimensions of a point.
func extract(point stylespace.StylePoint, modality stylespace.Modality) Extraction {
	out := make(Extraction, stylespace.NumDimensions)
	for _, dim := range stylespace.ParameterNames() {
		out[dim] = extractTier(dim, point.Value(dim), modality)
	}
	return out
}

// ExtractTextVocabulary returns the complete text-generation vocabulary for a
// point: for each dimension, the tier bundle its coordinate selects.
func ExtractTextVocabulary(point stylespace.StylePoint) Extraction {
	return extract(point, stylespace.ModalityText)
}

// ExtractImageVocabulary returns the complete image-generation vocabulary for
// a point.
func ExtractImageVocabulary(point stylespace.StylePoint) Extraction {
	return extract(point, stylespace.ModalityImage)
}
