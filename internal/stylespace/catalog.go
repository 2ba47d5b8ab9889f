package stylespace

import (
	"fmt"
	"strings"
)

// TextVocabulary is an author's text-generation vocabulary bundle.
type TextVocabulary struct {
	Conjunctions     []string `json:"conjunctions"`
	SentenceStarters []string `json:"sentence_starters"`
	Forbidden        []string `json:"forbidden"`
	Register         string   `json:"register"`
	ParagraphRhythm  string   `json:"paragraph_rhythm"`
}

// ImageVocabulary is an author's image-generation vocabulary bundle.
type ImageVocabulary struct {
	Keywords           []string `json:"keywords"`
	ColorPalette       []string `json:"color_palette"`
	CompositionalRules []string `json:"compositional_rules"`
}

// AuthorEntry is one catalog record: a named point in style-space plus the
// vocabularies and signature moves that characterize the style. Signature
// moves are ordered most-salient-first.
type AuthorEntry struct {
	ID              string          `json:"id"`
	DisplayName     string          `json:"display_name"`
	LanguageOrigin  string          `json:"language_origin"`
	Coordinates     StylePoint      `json:"coordinates"`
	SignatureMoves  []string        `json:"signature_moves"`
	TextVocabulary  TextVocabulary  `json:"text_vocabulary"`
	ImageVocabulary ImageVocabulary `json:"image_vocabulary"`
}

// UnknownAuthorError reports a lookup with an id not in the catalog. The
// message enumerates the valid ids so a caller can self-correct.
type UnknownAuthorError struct {
	ID string
}

func (e *UnknownAuthorError) Error() string {
	return fmt.Sprintf("unknown author %q. Available: %s", e.ID, strings.Join(AuthorIDs(), ", "))
}

// AuthorIDs returns all catalog ids in catalog order.
func AuthorIDs() []string {
	ids := make([]string, len(catalogOrder))
	copy(ids, catalogOrder)
	return ids
}

// Catalog returns all entries in catalog order.
func Catalog() []AuthorEntry {
	out := make([]AuthorEntry, 0, len(catalogOrder))
	for _, id := range catalogOrder {
		out = append(out, authorCatalog[id])
	}
	return out
}

// Lookup resolves an author id to its full entry.
func Lookup(id string) (AuthorEntry, error) {
	entry, ok := authorCatalog[id]
	if !ok {
		return AuthorEntry{}, &UnknownAuthorError{ID: id}
	}
	return entry, nil
}

// Coordinates returns a copy of an author's style point. The copy keeps the
// catalog immutable even if the caller mutates the result.
func Coordinates(id string) (StylePoint, error) {
	entry, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	return entry.Coordinates.Clone(), nil
}

// AllCoordinates returns a copy of every author's style point, keyed by id.
func AllCoordinates() map[string]StylePoint {
	out := make(map[string]StylePoint, len(catalogOrder))
	for _, id := range catalogOrder {
		out[id] = authorCatalog[id].Coordinates.Clone()
	}
	return out
}
