// Copyright (c) 2025 NBLK Consulting.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"errors"
	"testing"
)

func TestGradeToScore(t *testing.T) {
	tests := []struct {
		grade Grade
		want  float64
	}{
		{GradeA, 0},
		{GradeB, 21},
		{GradeC, 41},
		{GradeD, 61},
		{GradeF, 81},
	}

	for _, tt := range tests {
		got, err := GradeToScore(tt.grade)
		if err != nil {
			t.Fatalf("GradeToScore(%s) failed: %v", tt.grade, err)
		}
		if got != tt.want {
			t.Errorf("GradeToScore(%s) = %v, want %v", tt.grade, got, tt.want)
		}
	}
}

func TestGradeToScoreInvalid(t *testing.T) {
	for _, g := range []Grade{"E", "a", "", "AB"} {
		if _, err := GradeToScore(g); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("GradeToScore(%q) error = %v, want ErrInvalidInput", g, err)
		}
	}
}

func TestScoreToGradeBoundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  Grade
	}{
		{0, GradeA},
		{20, GradeA},
		{21, GradeB},
		{40, GradeB},
		{41, GradeC},
		{60, GradeC},
		{61, GradeD},
		{80, GradeD},
		{81, GradeF},
		{100, GradeF},
		{20.5, GradeB},
		{50, GradeC},
	}

	for _, tt := range tests {
		got, err := ScoreToGrade(tt.score)
		if err != nil {
			t.Fatalf("ScoreToGrade(%v) failed: %v", tt.score, err)
		}
		if got != tt.want {
			t.Errorf("ScoreToGrade(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestScoreToGradeInvalid(t *testing.T) {
	for _, s := range []float64{-1, -0.01, 100.01, 200} {
		if _, err := ScoreToGrade(s); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ScoreToGrade(%v) error = %v, want ErrInvalidInput", s, err)
		}
	}
}

// The grade round-trip must reproduce the grade in one direction only:
// collapsing a 20-point band to its anchor loses the exact score.
func TestGradeRoundTrip(t *testing.T) {
	for _, g := range Grades {
		anchor, err := GradeToScore(g)
		if err != nil {
			t.Fatalf("GradeToScore(%s) failed: %v", g, err)
		}
		back, err := ScoreToGrade(anchor)
		if err != nil {
			t.Fatalf("ScoreToGrade(%v) failed: %v", anchor, err)
		}
		if back != g {
			t.Errorf("round trip for %s: anchor %v mapped back to %s", g, anchor, back)
		}
	}

	// The reverse direction is lossy by design.
	g, err := ScoreToGrade(35)
	if err != nil {
		t.Fatalf("ScoreToGrade(35) failed: %v", err)
	}
	anchor, err := GradeToScore(g)
	if err != nil {
		t.Fatalf("GradeToScore(%s) failed: %v", g, err)
	}
	if anchor == 35 {
		t.Error("expected lossy reverse round trip, got exact score back")
	}
}
