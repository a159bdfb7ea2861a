// Copyright (c) 2025 NBLK Consulting.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import "fmt"

// Band is one of five ordered classification ranges on the composite axis.
// Rank orders bands by severity, 1 (least unstable) to 5 (most unstable):
// low composite scores mean low instability. Interpretation is the short
// sentence shown next to the score; Societal is the longer legend text from
// the interpretation table.
type Band struct {
	Rank           int     `json:"rank"`
	Min            float64 `json:"min"`
	Max            float64 `json:"max"`
	Label          string  `json:"label"`
	Interpretation string  `json:"interpretation"`
	Societal       string  `json:"societal"`
	Color          string  `json:"color"`
	Icon           string  `json:"icon"`
}

var bands = []Band{
	{
		Rank:           1,
		Min:            0,
		Max:            20,
		Label:          "Very Low Instability",
		Interpretation: "Stable environment with minimal risks.",
		Societal:       "People experience predictability, trust in systems, and confidence in leadership.",
		Color:          "#4CAF50",
		Icon:           "🌱",
	},
	{
		Rank:           2,
		Min:            21,
		Max:            40,
		Label:          "Low Instability",
		Interpretation: "Some risks present, but manageable.",
		Societal:       "Most services run smoothly; occasional public concerns but little daily impact.",
		Color:          "#8BC34A",
		Icon:           "🌳",
	},
	{
		Rank:           3,
		Min:            41,
		Max:            60,
		Label:          "Moderate Instability",
		Interpretation: "Noticeable risks that require attention.",
		Societal:       "Public may feel divided or uneasy; pressure builds in specific communities or sectors.",
		Color:          "#FFC107",
		Icon:           "🌪️",
	},
	{
		Rank:           4,
		Min:            61,
		Max:            80,
		Label:          "High Instability",
		Interpretation: "Significant risks with potential for major shifts.",
		Societal:       "People may feel anxious, polarized, or distrustful; protests or policy backlash likely.",
		Color:          "#FF9800",
		Icon:           "🔥",
	},
	{
		Rank:           5,
		Min:            81,
		Max:            100,
		Label:          "Extreme Instability",
		Interpretation: "Critical risks that could lead to severe consequences.",
		Societal:       "Society may face unrest, fear, rapid change, or crisis-level tension and division.",
		Color:          "#F44336",
		Icon:           "💥",
	},
}

// Bands returns the five classification bands in severity order.
func Bands() []Band {
	out := make([]Band, len(bands))
	copy(out, bands)
	return out
}

// Classify maps a composite score to its band. The partition is total and
// boundary-inclusive over [0,100]: 20 classifies as rank 1, 21 as rank 2.
// Scores outside [0,100] return ErrInvalidInput.
func Classify(score float64) (Band, error) {
	if score < 0 || score > 100 {
		return Band{}, fmt.Errorf("%w: composite score %.2f outside [0,100]", ErrInvalidInput, score)
	}
	for _, b := range bands[:len(bands)-1] {
		if score <= b.Max {
			return b, nil
		}
	}
	return bands[len(bands)-1], nil
}
