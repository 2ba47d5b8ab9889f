package stylespace

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimensionsComplete(t *testing.T) {
	specs := Dimensions()
	require.Len(t, specs, NumDimensions)

	for i, spec := range specs {
		assert.Equal(t, parameterOrder[i], spec.ID, "canonical order at %d", i)

		t.Run(string(spec.ID), func(t *testing.T) {
			assert.NotEmpty(t, spec.Name)
			assert.NotEmpty(t, spec.Description)
			assert.NotEmpty(t, spec.LowLabel)
			assert.NotEmpty(t, spec.HighLabel)

			for _, m := range []Modality{ModalityText, ModalityImage} {
				set := spec.Tiers(m)
				for _, tier := range []Tier{TierLow, TierMid, TierHigh} {
					bundle := set.Bundle(tier)
					assert.NotEmpty(t, bundle.Directive, "%s/%s directive", m, tier)
					assert.NotEmpty(t, bundle.Traits, "%s/%s traits", m, tier)
				}
			}
		})
	}
}

func TestDimensionByID(t *testing.T) {
	spec, ok := DimensionByID(SyntacticDensity)
	require.True(t, ok)
	assert.Equal(t, "Syntactic Density", spec.Name)

	_, ok = DimensionByID("verbosity")
	assert.False(t, ok)
}

func TestTierBundleMarshalFlattens(t *testing.T) {
	bundle := TierBundle{
		Traits: []Trait{
			textTrait("sentence_length", "short"),
			numTrait("clause_depth", 1),
			listTrait("conjunction_preference", "and", "then"),
		},
		Directive: "Simple declarative sentences.",
	}

	data, err := json.Marshal(bundle)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, "short", got["sentence_length"])
	assert.Equal(t, float64(1), got["clause_depth"])
	assert.Equal(t, []any{"and", "then"}, got["conjunction_preference"])
	assert.Equal(t, "Simple declarative sentences.", got["directive"])
	assert.Len(t, got, 4, "traits flatten to top level alongside directive")
}

func TestTierSetBundleSelection(t *testing.T) {
	spec, ok := DimensionByID(OrnamentalRegister)
	require.True(t, ok)

	low := spec.Tiers(ModalityText).Bundle(TierLow)
	high := spec.Tiers(ModalityText).Bundle(TierHigh)
	assert.NotEqual(t, low.Directive, high.Directive)

	text := spec.Tiers(ModalityText).Bundle(TierMid)
	image := spec.Tiers(ModalityImage).Bundle(TierMid)
	assert.NotEqual(t, text.Directive, image.Directive)
}
