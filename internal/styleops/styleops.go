// Package styleops implements the deterministic operations over style-space:
// distance computation, weighted blending, tier vocabulary extraction, and
// text/image prompt synthesis.
//
// Every function here is pure: it reads the immutable catalog and dimension
// tables from internal/stylespace, computes, and returns a complete result or
// an error. Nothing is cached, persisted, or mutated, so concurrent callers
// need no coordination.
package styleops

import (
	"errors"
	"math"
)

// Validation errors for blend and prompt inputs. Unknown-author failures are
// reported via stylespace.UnknownAuthorError instead.
var (
	// ErrEmptyBlendSpec is returned when a blend spec has no entries.
	ErrEmptyBlendSpec = errors.New("blend spec must contain at least one author")

	// ErrNonPositiveWeights is returned when blend weights sum to zero or less.
	ErrNonPositiveWeights = errors.New("weights must sum to a positive value")

	// ErrExactlyOneSource is returned when a prompt request supplies zero or
	// more than one of author id, blend spec, custom coordinates.
	ErrExactlyOneSource = errors.New("provide exactly one of author_id, blend_spec, or custom_coordinates")
)

// roundTo rounds v to n decimal places. Results carry rounded values so that
// equal inputs produce byte-identical serialized output.
func roundTo(v float64, n int) float64 {
	scale := math.Pow(10, float64(n))
	return math.Round(v*scale) / scale
}
