// Copyright (c) 2025 NBLK Consulting.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import "math"

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
// The result is order-independent and kept at full precision; callers
// round for display with Round1.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// MeanByBucket computes the mean per demographic bucket. Buckets with no
// values are simply absent from the result.
func MeanByBucket(buckets map[string][]float64) map[string]float64 {
	out := make(map[string]float64, len(buckets))
	for key, values := range buckets {
		if len(values) == 0 {
			continue
		}
		out[key] = Mean(values)
	}
	return out
}

// Round1 rounds a score to one decimal place for display.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
