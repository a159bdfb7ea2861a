// Copyright (c) 2025 NBLK Consulting.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import "fmt"

// Grade is a coarse letter view of a 0-100 score, best (A) to worst (F).
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// Grades lists the valid letters in order, best to worst.
var Grades = []Grade{GradeA, GradeB, GradeC, GradeD, GradeF}

// gradeAnchors maps each grade to the low bound of its 20-point band.
// The low bound is a representative anchor, not a range: picking a grade
// in the UI sets the slider to this value.
var gradeAnchors = map[Grade]float64{
	GradeA: 0,
	GradeB: 21,
	GradeC: 41,
	GradeD: 61,
	GradeF: 81,
}

// GradeToScore returns the anchor score for a letter grade.
// Unknown letters return ErrInvalidInput.
func GradeToScore(g Grade) (float64, error) {
	anchor, ok := gradeAnchors[g]
	if !ok {
		return 0, fmt.Errorf("%w: unknown grade %q", ErrInvalidInput, string(g))
	}
	return anchor, nil
}

// ScoreToGrade returns the grade whose band contains score. Bands are
// closed and contiguous: A [0,20], B [21,40], C [41,60], D [61,80],
// F [81,100]. Scores outside [0,100] return ErrInvalidInput.
func ScoreToGrade(score float64) (Grade, error) {
	if score < 0 || score > 100 {
		return "", fmt.Errorf("%w: score %.2f outside [0,100]", ErrInvalidInput, score)
	}
	switch {
	case score <= 20:
		return GradeA, nil
	case score <= 40:
		return GradeB, nil
	case score <= 60:
		return GradeC, nil
	case score <= 80:
		return GradeD, nil
	default:
		return GradeF, nil
	}
}
