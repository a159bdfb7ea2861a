// Copyright (c) 2025 NBLK Consulting.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"fmt"
	"math"
)

// CommunityAverages summarizes all stored composite scores. Overall is the
// running arithmetic mean across every respondent; ByAge and ByRegion hold
// the same mean restricted to one demographic bucket and may be partial.
type CommunityAverages struct {
	Overall  float64            `json:"overall"`
	Count    int                `json:"count"`
	ByAge    map[string]float64 `json:"by_age,omitempty"`
	ByRegion map[string]float64 `json:"by_region,omitempty"`
}

// Results is the finished evaluation handed to the display and report
// pipelines. It is assembled once, after the store round-trip, and never
// mutated afterwards. Averages is nil when the store read was unavailable;
// SurveyID is empty when the insert failed (the respondent's own score is
// still computable locally).
type Results struct {
	CompositeScore float64            `json:"composite_score"`
	Band           Band               `json:"band"`
	Indicators     []Indicator        `json:"indicators"`
	Averages       *CommunityAverages `json:"averages,omitempty"`
	SurveyID       string             `json:"survey_id,omitempty"`
}

// AssembleResults packages a finished evaluation. It is a constructor, not
// a computation: it never re-derives or mutates its inputs. A composite
// score that is NaN or out of range, or a zero-valued band, returns
// ErrIncompleteResult.
func AssembleResults(composite float64, band Band, indicators []Indicator, averages *CommunityAverages, surveyID string) (Results, error) {
	if math.IsNaN(composite) || composite < 0 || composite > 100 {
		return Results{}, fmt.Errorf("%w: composite score not computed", ErrIncompleteResult)
	}
	if band.Rank < 1 || band.Rank > 5 {
		return Results{}, fmt.Errorf("%w: classification not computed", ErrIncompleteResult)
	}
	inds := make([]Indicator, len(indicators))
	copy(inds, indicators)
	return Results{
		CompositeScore: composite,
		Band:           band,
		Indicators:     inds,
		Averages:       averages,
		SurveyID:       surveyID,
	}, nil
}
