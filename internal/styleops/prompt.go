package styleops

import (
	"fmt"
	"strings"

	"github.com/dmarsters/author-style-mcp/internal/stylespace"
)

// customSourceLabel labels prompts generated from caller-supplied raw
// coordinates, which have no catalog identity.
const customSourceLabel = "Custom coordinates"

// PromptRequest selects the style source for prompt generation. Exactly one
// of the three fields must be set.
type PromptRequest struct {
	// AuthorID selects a single catalog style.
	AuthorID string

	// Blend selects a weighted combination of catalog styles.
	Blend BlendSpec

	// Coordinates supplies a raw point directly. The point is accepted as
	// given: missing dimensions read as 0 and out-of-range values are not
	// rejected, so external dynamics engines can feed trajectories that
	// overshoot the unit cube.
	Coordinates stylespace.StylePoint
}

func (r PromptRequest) sourceCount() int {
	n := 0
	if r.AuthorID != "" {
		n++
	}
	if len(r.Blend) > 0 {
		n++
	}
	if len(r.Coordinates) > 0 {
		n++
	}
	return n
}

// resolvedSource is the common product of style-source resolution.
type resolvedSource struct {
	label  string
	coords stylespace.StylePoint
	moves  []string

	// entry is set only for single-author sources.
	entry *stylespace.AuthorEntry
}

// resolve turns a prompt request into coordinates plus whatever
// author-specific material the source carries.
func resolve(r PromptRequest) (*resolvedSource, error) {
	if r.sourceCount() != 1 {
		return nil, ErrExactlyOneSource
	}

	switch {
	case r.AuthorID != "":
		entry, err := stylespace.Lookup(r.AuthorID)
		if err != nil {
			return nil, err
		}
		return &resolvedSource{
			label:  entry.DisplayName,
			coords: entry.Coordinates,
			moves:  entry.SignatureMoves,
			entry:  &entry,
		}, nil

	case len(r.Blend) > 0:
		blend, err := Interpolate(r.Blend)
		if err != nil {
			return nil, err
		}
		return &resolvedSource{
			label:  blend.Display,
			coords: blend.Coordinates,
			moves:  blend.SignatureMoves,
		}, nil

	default:
		return &resolvedSource{
			label:  customSourceLabel,
			coords: r.Coordinates,
		}, nil
	}
}

// TextPromptResult carries generation-ready text style directives.
type TextPromptResult struct {
	Source                string                `json:"source"`
	Coordinates           stylespace.StylePoint `json:"coordinates"`
	MasterDirective       string                `json:"master_directive"`
	SignatureMoves        string                `json:"signature_moves"`
	VocabularyConstraints string                `json:"vocabulary_constraints"`
	FullPrompt            string                `json:"full_prompt"`
	PerDimension          Extraction            `json:"per_dimension_directives"`
}

// GenerateTextPrompt resolves the style source and composes text-generation
// directives: the canonical-order concatenation of tier directive sentences,
// a key-techniques clause from the signature moves, and (for single-author
// sources) the author's vocabulary constraints.
func GenerateTextPrompt(req PromptRequest) (*TextPromptResult, error) {
	src, err := resolve(req)
	if err != nil {
		return nil, err
	}

	directives := ExtractTextVocabulary(src.coords)

	parts := make([]string, 0, stylespace.NumDimensions)
	for _, dim := range stylespace.ParameterNames() {
		parts = append(parts, directives[dim].Bundle.Directive)
	}
	master := strings.Join(parts, " ")

	movesText := ""
	if len(src.moves) > 0 {
		top := src.moves
		if len(top) > 5 {
			top = top[:5]
		}
		movesText = "Key techniques: " + strings.Join(top, "; ") + "."
	}

	vocabText := ""
	if src.entry != nil {
		vocab := src.entry.TextVocabulary
		var b strings.Builder
		if vocab.Register != "" {
			fmt.Fprintf(&b, "Register: %s. ", vocab.Register)
		}
		if vocab.ParagraphRhythm != "" {
			fmt.Fprintf(&b, "Paragraph rhythm: %s. ", vocab.ParagraphRhythm)
		}
		if len(vocab.Forbidden) > 0 {
			fmt.Fprintf(&b, "Avoid these words: %s. ", strings.Join(vocab.Forbidden, ", "))
		}
		vocabText = b.String()
	}

	full := strings.TrimSpace(fmt.Sprintf("[Style: %s] %s %s %s", src.label, master, movesText, vocabText))

	return &TextPromptResult{
		Source:                src.label,
		Coordinates:           src.coords,
		MasterDirective:       master,
		SignatureMoves:        movesText,
		VocabularyConstraints: vocabText,
		FullPrompt:            full,
		PerDimension:          directives,
	}, nil
}

// ImagePromptResult carries generation-ready visual style directives.
type ImagePromptResult struct {
	Source             string                `json:"source"`
	Coordinates        stylespace.StylePoint `json:"coordinates"`
	Prompt             string                `json:"prompt"`
	Keywords           []string              `json:"keywords"`
	ColorPalette       []string              `json:"color_palette"`
	CompositionalRules []string              `json:"compositional_rules"`
	PerDimension       Extraction            `json:"per_dimension_visuals"`
}

// GenerateImagePrompt resolves the style source and composes a flattened
// image-generation prompt: optional style modifier, leading keywords, a color
// palette clause, then the leading per-dimension visual directives, all
// comma-joined. Blend and raw-coordinate sources carry no author vocabulary;
// their prompt is driven entirely by the tier directives.
func GenerateImagePrompt(req PromptRequest, styleModifier string) (*ImagePromptResult, error) {
	src, err := resolve(req)
	if err != nil {
		return nil, err
	}

	var vocab stylespace.ImageVocabulary
	if src.entry != nil {
		vocab = src.entry.ImageVocabulary
	}

	visuals := ExtractImageVocabulary(src.coords)

	directives := make([]string, 0, stylespace.NumDimensions)
	for _, dim := range stylespace.ParameterNames() {
		directives = append(directives, visuals[dim].Bundle.Directive)
	}

	var parts []string
	if styleModifier != "" {
		parts = append(parts, styleModifier)
	}
	parts = append(parts, firstN(vocab.Keywords, 8)...)
	if len(vocab.ColorPalette) > 0 {
		parts = append(parts, "color palette: "+strings.Join(firstN(vocab.ColorPalette, 4), ", "))
	}
	parts = append(parts, firstN(directives, 6)...)

	return &ImagePromptResult{
		Source:             src.label,
		Coordinates:        src.coords,
		Prompt:             strings.Join(parts, ", "),
		Keywords:           vocab.Keywords,
		ColorPalette:       vocab.ColorPalette,
		CompositionalRules: vocab.CompositionalRules,
		PerDimension:       visuals,
	}, nil
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
