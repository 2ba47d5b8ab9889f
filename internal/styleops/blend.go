package styleops

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/dmarsters/author-style-mcp/internal/stylespace"
)

// BlendSpec maps catalog author ids to non-negative weights. Weights need not
// sum to 1; Interpolate normalizes them.
type BlendSpec map[string]float64

// NearestAuthor identifies the catalog entry closest to a computed point.
type NearestAuthor struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"display_name"`
	Distance    float64 `json:"distance"`
}

// BlendResult is the full product of a style interpolation.
type BlendResult struct {
	Spec            BlendSpec             `json:"blend_spec"`
	Display         string                `json:"blend_display"`
	Coordinates     stylespace.StylePoint `json:"coordinates"`
	Nearest         NearestAuthor         `json:"nearest_catalog_author"`
	SignatureMoves  []string              `json:"signature_moves"`
	TextVocabulary  Extraction            `json:"text_vocabulary"`
	ImageVocabulary Extraction            `json:"image_vocabulary"`
}

// contributor pairs an author id with its normalized weight for ordering.
type contributor struct {
	id     string
	weight float64
}

// orderByWeight returns contributors sorted by descending normalized weight.
// Equal weights fall back to id order so results stay deterministic.
func orderByWeight(normalized map[string]float64) []contributor {
	out := make([]contributor, 0, len(normalized))
	for id, w := range normalized {
		out = append(out, contributor{id: id, weight: w})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].weight != out[j].weight {
			return out[i].weight > out[j].weight
		}
		return out[i].id < out[j].id
	})
	return out
}

// Interpolate blends multiple author styles by weighted linear combination.
// The blended point is a convex combination of the contributors, so every
// coordinate stays inside [min, max] of the inputs. The result also carries
// the nearest catalog author to the blended point, signature moves sampled
// from contributors proportionally to weight, and both tier vocabulary
// extractions for the blend point.
func Interpolate(spec BlendSpec) (*BlendResult, error) {
	if len(spec) == 0 {
		return nil, ErrEmptyBlendSpec
	}

	total := 0.0
	for _, w := range spec {
		total += w
	}
	if total <= 0 {
		return nil, ErrNonPositiveWeights
	}

	normalized := make(map[string]float64, len(spec))
	entries := make(map[string]stylespace.AuthorEntry, len(spec))
	for id, w := range spec {
		entry, err := stylespace.Lookup(id)
		if err != nil {
			return nil, err
		}
		entries[id] = entry
		normalized[id] = w / total
	}

	blended := make(stylespace.StylePoint, stylespace.NumDimensions)
	for _, dim := range stylespace.ParameterNames() {
		val := 0.0
		for id, w := range normalized {
			val += entries[id].Coordinates.Value(dim) * w
		}
		blended[dim] = roundTo(val, 4)
	}

	nearest := nearestCatalogAuthor(blended)

	ordered := orderByWeight(normalized)

	roundedSpec := make(BlendSpec, len(normalized))
	for id, w := range normalized {
		roundedSpec[id] = roundTo(w, 3)
	}

	displayParts := make([]string, 0, len(ordered))
	var moves []string
	for _, c := range ordered {
		displayParts = append(displayParts,
			fmt.Sprintf("%d%% %s", int(math.RoundToEven(c.weight*100)), entries[c.id].DisplayName))

		// Take more moves from heavier contributors; every contributor
		// donates at least one. Half-ties round to even, so a 50/50
		// blend donates 2+2 moves rather than 3+3.
		n := int(math.Max(1, math.RoundToEven(c.weight*5)))
		sigs := entries[c.id].SignatureMoves
		if n > len(sigs) {
			n = len(sigs)
		}
		moves = append(moves, sigs[:n]...)
	}

	return &BlendResult{
		Spec:            roundedSpec,
		Display:         strings.Join(displayParts, " / "),
		Coordinates:     blended,
		Nearest:         nearest,
		SignatureMoves:  moves,
		TextVocabulary:  ExtractTextVocabulary(blended),
		ImageVocabulary: ExtractImageVocabulary(blended),
	}, nil
}

// nearestCatalogAuthor scans the whole catalog, including any blend
// contributors, for the entry closest to the point. Ties keep the earlier
// entry in catalog order.
func nearestCatalogAuthor(point stylespace.StylePoint) NearestAuthor {
	best := NearestAuthor{Distance: math.Inf(1)}
	for _, entry := range stylespace.Catalog() {
		d := euclidean(point, entry.Coordinates)
		if d < best.Distance {
			best = NearestAuthor{
				ID:          entry.ID,
				DisplayName: entry.DisplayName,
				Distance:    d,
			}
		}
	}
	best.Distance = roundTo(best.Distance, 4)
	return best
}
