// Copyright (c) 2025 NBLK Consulting.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import "fmt"

// Composite reduces a full indicator set to the weighted composite score
// in [0,100].
//
// Preconditions, each failing fast: every score in [0,100]
// (ErrInvalidInput), all five indicator ids present exactly once
// (ErrMissingIndicator), weights summing to 1.0 within tolerance
// (ErrInvalidWeights). No indicator is ever silently dropped and weights
// are never normalized.
func Composite(indicators []Indicator) (float64, error) {
	seen := make(map[IndicatorID]bool, len(IndicatorIDs))
	for _, in := range indicators {
		if in.Score < 0 || in.Score > 100 {
			return 0, fmt.Errorf("%w: indicator %s score %.2f outside [0,100]", ErrInvalidInput, in.ID, in.Score)
		}
		if seen[in.ID] {
			return 0, fmt.Errorf("%w: indicator %s appears more than once", ErrMissingIndicator, in.ID)
		}
		seen[in.ID] = true
	}
	for _, id := range IndicatorIDs {
		if !seen[id] {
			return 0, fmt.Errorf("%w: %s", ErrMissingIndicator, id)
		}
	}
	if err := validateWeights(indicators); err != nil {
		return 0, err
	}

	total := 0.0
	for _, in := range indicators {
		total += in.Score * in.Weight
	}
	return total, nil
}
