// Copyright (c) 2025 NBLK Consulting.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"errors"
	"math"
	"testing"
)

func TestAssembleResults(t *testing.T) {
	inds := indicatorsWithScores(uniformScores(50))
	composite, err := Composite(inds)
	if err != nil {
		t.Fatalf("Composite failed: %v", err)
	}
	band, err := Classify(composite)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	avgs := &CommunityAverages{Overall: 61.2, Count: 14}

	res, err := AssembleResults(composite, band, inds, avgs, "survey-123")
	if err != nil {
		t.Fatalf("AssembleResults failed: %v", err)
	}

	if res.CompositeScore != composite {
		t.Errorf("CompositeScore = %v, want %v", res.CompositeScore, composite)
	}
	if res.Band.Rank != band.Rank {
		t.Errorf("Band rank = %d, want %d", res.Band.Rank, band.Rank)
	}
	if res.SurveyID != "survey-123" {
		t.Errorf("SurveyID = %q", res.SurveyID)
	}
	if res.Averages.Overall != 61.2 {
		t.Errorf("Averages.Overall = %v", res.Averages.Overall)
	}

	// Assembly must copy the indicator set, not alias the caller's slice.
	inds[0].Score = 99
	if res.Indicators[0].Score == 99 {
		t.Error("Results aliases the caller's indicator slice")
	}
}

func TestAssembleResultsDegraded(t *testing.T) {
	inds := indicatorsWithScores(uniformScores(50))
	band, _ := Classify(50)

	// No averages and no survey id: the local score is still presentable.
	res, err := AssembleResults(50, band, inds, nil, "")
	if err != nil {
		t.Fatalf("AssembleResults failed: %v", err)
	}
	if res.Averages != nil || res.SurveyID != "" {
		t.Error("expected degraded result without averages or survey id")
	}
}

func TestAssembleResultsIncomplete(t *testing.T) {
	inds := indicatorsWithScores(uniformScores(50))
	band, _ := Classify(50)

	if _, err := AssembleResults(math.NaN(), band, inds, nil, ""); !errors.Is(err, ErrIncompleteResult) {
		t.Errorf("NaN composite: error = %v, want ErrIncompleteResult", err)
	}
	if _, err := AssembleResults(-3, band, inds, nil, ""); !errors.Is(err, ErrIncompleteResult) {
		t.Errorf("out-of-range composite: error = %v, want ErrIncompleteResult", err)
	}
	if _, err := AssembleResults(50, Band{}, inds, nil, ""); !errors.Is(err, ErrIncompleteResult) {
		t.Errorf("zero band: error = %v, want ErrIncompleteResult", err)
	}
}
