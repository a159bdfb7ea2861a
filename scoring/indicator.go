// Copyright (c) 2025 NBLK Consulting.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import "math"

// IndicatorID identifies one of the five fixed policy-domain indicators.
type IndicatorID string

const (
	Immigration IndicatorID = "immigration"
	Economy     IndicatorID = "economy"
	Foreign     IndicatorID = "foreign"
	Domestic    IndicatorID = "domestic"
	Social      IndicatorID = "social"
)

// IndicatorIDs lists the required indicator ids in display order.
var IndicatorIDs = []IndicatorID{Immigration, Economy, Foreign, Domestic, Social}

// weightTolerance is the allowed floating-point slack on the weight-sum
// invariant.
const weightTolerance = 1e-6

// Indicator is one policy axis being rated. Score is the respondent's
// 0-100 rating; the letter grade is always derived from it via Grade(),
// never stored, so the two can not desynchronize.
type Indicator struct {
	ID     IndicatorID `json:"id"`
	Name   string      `json:"name"`
	Prompt string      `json:"prompt"`
	Info   string      `json:"info,omitempty"`
	Weight float64     `json:"weight"`
	Score  float64     `json:"score"`
}

// Grade returns the letter view of the indicator's current score.
func (in Indicator) Grade() (Grade, error) {
	return ScoreToGrade(in.Score)
}

var defaultIndicators = []Indicator{
	{
		ID:     Immigration,
		Name:   "Immigration Policy - How the government handles immigrants in the U.S.",
		Prompt: "How would you grade the administration on Immigration Policy?",
		Info: "Recent actions include:\n" +
			"- Revoking visas for over 1,700 international students, leading to deportations.\n" +
			"- Increasing deportations and detentions, even for minor infractions.\n" +
			"- Implementing stricter rules for work permits and asylum seekers.\n" +
			"- Shutting down programs that previously helped immigrants stay legally.",
		Weight: 0.20,
		Score:  100,
	},
	{
		ID:     Economy,
		Name:   "Economic Management - How the government manages the economy",
		Prompt: "How would you grade the administration on Economic Management?",
		Info: "Recent developments:\n" +
			"- Imposing a 10% tariff on all imports, with higher rates for certain countries.\n" +
			"- Small businesses facing increased costs and uncertainty due to tariffs.\n" +
			"- Rolling back environmental regulations, affecting industries like manufacturing.\n" +
			"- Implementing tax policies that some argue favor larger corporations.",
		Weight: 0.15,
		Score:  100,
	},
	{
		ID:     Foreign,
		Name:   "Foreign Policy - How the U.S. interacts with other countries",
		Prompt: "How would you grade the administration on Foreign Policy?",
		Info: "Recent changes include:\n" +
			"- Questioning commitments to NATO allies, causing concern among partners.\n" +
			"- Reducing involvement in international organizations like the UN.\n" +
			"- Cutting foreign aid programs, including dismantling USAID.\n" +
			"- Aligning more closely with certain authoritarian regimes.",
		Weight: 0.20,
		Score:  100,
	},
	{
		ID:     Domestic,
		Name:   "Domestic Policy - How the government acts within the U.S.",
		Prompt: "How would you grade the administration on Domestic Policy?",
		Info: "Recent initiatives:\n" +
			"- Reclassifying federal employees to make it easier to dismiss them, potentially politicizing civil service.\n" +
			"- Dismantling or reducing budgets for various federal agencies, including the Department of Education.\n" +
			"- Implementing policies that some view as undermining public health and environmental protections.\n" +
			"- Reducing transparency by limiting public input on regulatory changes.",
		Weight: 0.25,
		Score:  100,
	},
	{
		ID:     Social,
		Name:   "Social Policy - How the government ensures & promotes citizen's rights",
		Prompt: "How would you grade the administration on Social Policy?",
		Info: "Recent actions:\n" +
			"- Eliminating federal Diversity, Equity, and Inclusion (DEI) programs.\n" +
			"- Rolling back protections for LGBTQ+ individuals, including banning transgender individuals from military service.\n" +
			"- Rescinding policies that promoted equal opportunities in education and employment.\n" +
			"- Appointing officials with strong religious affiliations to key government positions, raising concerns about church-state separation.",
		Weight: 0.20,
		Score:  100,
	},
}

// DefaultIndicators returns a fresh copy of the five indicator definitions
// with default scores. Each evaluation session gets its own copy; the
// package-level table is never handed out.
func DefaultIndicators() []Indicator {
	out := make([]Indicator, len(defaultIndicators))
	copy(out, defaultIndicators)
	return out
}

// validateWeights checks the weight-sum invariant over a full indicator set.
func validateWeights(indicators []Indicator) error {
	sum := 0.0
	for _, in := range indicators {
		sum += in.Weight
	}
	if math.Abs(sum-1.0) > weightTolerance {
		return ErrInvalidWeights
	}
	return nil
}
