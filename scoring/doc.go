// Copyright (c) 2025 NBLK Consulting.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scoring implements the composite scoring and classification engine
for the stability survey.

A respondent rates five fixed policy indicators on a 0-100 axis (0 = best,
100 = worst). The engine reduces those ratings to a single weighted composite
score, classifies it into one of five instability bands, and assembles the
immutable Results value handed to the display and report pipelines.

# Components

  - Grade mapper: two-way mapping between letter grades {A,B,C,D,F} and the
    score axis, partitioned into five closed 20-point bands. GradeToScore
    returns the band's low bound, so the mapping is deliberately lossy in
    one direction: ScoreToGrade(GradeToScore(g)) == g always holds, the
    reverse does not.
  - Indicator model: the five indicator definitions with weights summing
    to 1.0. DefaultIndicators returns a fresh copy per session; grades are
    always derived from scores, never stored.
  - Composite: the weighted sum over the full indicator set.
  - Classify: composite score to band. Low scores mean low instability.
  - Mean / MeanByBucket: aggregate statistics over stored composite scores.
  - AssembleResults: the final immutable Results value.

All functions are pure and fail fast: out-of-domain inputs return sentinel
errors rather than being clamped or defaulted.
*/
package scoring
