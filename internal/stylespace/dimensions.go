package stylespace

import "encoding/json"

// TraitKind tags the value variant a Trait carries.
type TraitKind int

const (
	TraitText TraitKind = iota
	TraitList
	TraitNumber
)

// Trait is one descriptor field of a tier bundle: a key plus a value that is
// a string, a list of strings, or a number. The tier tables mix these kinds
// (e.g. "sentence_length" is a string while "clause_depth" is a number), so
// the value is a tagged variant rather than an untyped any.
type Trait struct {
	Key    string
	Kind   TraitKind
	Text   string
	List   []string
	Number float64
}

func (t Trait) value() any {
	switch t.Kind {
	case TraitList:
		return t.List
	case TraitNumber:
		return t.Number
	default:
		return t.Text
	}
}

// Trait constructors used by the dimension tables.

func textTrait(key, v string) Trait { return Trait{Key: key, Kind: TraitText, Text: v} }

func listTrait(key string, v ...string) Trait { return Trait{Key: key, Kind: TraitList, List: v} }

func numTrait(key string, v float64) Trait { return Trait{Key: key, Kind: TraitNumber, Number: v} }

// TierBundle is the vocabulary a dimension contributes at one tier for one
// output modality: an ordered set of descriptor traits plus exactly one
// natural-language directive sentence. The directive is an explicit field,
// not a suffixed key to be scanned for.
type TierBundle struct {
	Traits    []Trait
	Directive string
}

// MarshalJSON flattens the bundle to a single object: every trait under its
// own key, plus "directive".
func (b TierBundle) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(b.Traits)+1)
	for _, t := range b.Traits {
		m[t.Key] = t.value()
	}
	m["directive"] = b.Directive
	return json.Marshal(m)
}

// TierSet holds a dimension's bundles for all three tiers of one modality.
type TierSet struct {
	Low  TierBundle `json:"low"`
	Mid  TierBundle `json:"mid"`
	High TierBundle `json:"high"`
}

// Bundle returns the bundle for the given tier.
func (s TierSet) Bundle(t Tier) TierBundle {
	switch t {
	case TierLow:
		return s.Low
	case TierMid:
		return s.Mid
	default:
		return s.High
	}
}

// DimensionSpec describes one axis of style-space: identity, human-readable
// labels, and the tier vocabularies projected into each output modality.
type DimensionSpec struct {
	ID          Dimension `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	LowLabel    string    `json:"low_label"`
	HighLabel   string    `json:"high_label"`
	Text        TierSet   `json:"text_output_mapping"`
	Image       TierSet   `json:"image_output_mapping"`
}

// Modality selects which output projection of a dimension to read.
type Modality string

const (
	ModalityText  Modality = "text"
	ModalityImage Modality = "image"
)

// Tiers returns the spec's tier set for the given modality.
func (d DimensionSpec) Tiers(m Modality) TierSet {
	if m == ModalityImage {
		return d.Image
	}
	return d.Text
}

// Dimensions returns all 8 dimension specs in canonical order.
func Dimensions() []DimensionSpec {
	out := make([]DimensionSpec, 0, len(parameterOrder))
	for _, id := range parameterOrder {
		out = append(out, dimensionTable[id])
	}
	return out
}

// DimensionByID returns the spec for a single dimension.
func DimensionByID(id Dimension) (DimensionSpec, bool) {
	spec, ok := dimensionTable[id]
	return spec, ok
}
