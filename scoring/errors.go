// Copyright (c) 2025 NBLK Consulting.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import "errors"

var (
	// ErrInvalidInput reports a score outside [0,100] or an unknown grade letter.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidWeights reports indicator weights that do not sum to 1.0.
	// Weights are never normalized silently; a bad sum is a caller bug.
	ErrInvalidWeights = errors.New("indicator weights do not sum to 1.0")

	// ErrMissingIndicator reports an indicator set that is missing, or
	// duplicates, one of the five required indicator ids.
	ErrMissingIndicator = errors.New("missing required indicator")

	// ErrIncompleteResult reports a results assembly attempted before both
	// the composite score and its classification exist.
	ErrIncompleteResult = errors.New("incomplete result")
)
