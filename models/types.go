// Copyright (c) 2025 NBLK Consulting.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"time"

	"github.com/nblk/stability-server/scoring"
)

// Closed demographic sets. Submissions may omit demographics entirely, but
// a present value must be one of these.

var AgeRanges = []string{"18-24", "25-34", "35-44", "45-54", "55-64", "65+"}

var Regions = []string{"northeast", "southeast", "midwest", "southwest", "west"}

func ValidAgeRange(s string) bool {
	for _, a := range AgeRanges {
		if s == a {
			return true
		}
	}
	return false
}

func ValidRegion(s string) bool {
	for _, r := range Regions {
		if s == r {
			return true
		}
	}
	return false
}

// Error codes carried in error responses, one per failure class.
const (
	CodeInvalidInput     = "invalid_input"
	CodeMissingIndicator = "missing_indicator"
	CodeIncompleteResult = "incomplete_result"
	CodeNotFound         = "not_found"
	CodeStoreUnavailable = "store_unavailable"
	CodeDeliveryFailed   = "delivery_failed"
	CodeNotConfigured    = "not_configured"
)

// Request types

// RatingInput rates one indicator either by exact score or by letter grade.
// When both are present the score wins; a grade is mapped to its band
// anchor before scoring.
type RatingInput struct {
	Score *float64 `json:"score,omitempty"`
	Grade *string  `json:"grade,omitempty"`
}

type SubmitSurveyRequest struct {
	AgeRange string                 `json:"age_range,omitempty"`
	Region   string                 `json:"region,omitempty"`
	Ratings  map[string]RatingInput `json:"ratings"`
}

type ContactRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type RegisterDeviceRequest struct {
	Platform string `json:"platform"`
}

// Response types

type SubmitSurveyResponse struct {
	Results scoring.Results `json:"results"`
	// StoreDegraded is set when the record store was unreachable: the
	// respondent's own score is still present, averages and survey_id
	// may not be.
	StoreDegraded bool   `json:"store_degraded,omitempty"`
	Message       string `json:"message"`
}

type SurveyResponse struct {
	Results     scoring.Results `json:"results"`
	SubmittedAt time.Time       `json:"submitted_at"`
}

type ContactResponse struct {
	SurveyID        string `json:"survey_id"`
	ReportDelivered bool   `json:"report_delivered"`
	Message         string `json:"message"`
}

type IndicatorsResponse struct {
	Indicators []scoring.Indicator `json:"indicators"`
}

type LegendResponse struct {
	Bands []scoring.Band `json:"bands"`
}

type RegisterDeviceResponse struct {
	DeviceID string `json:"device_id"`
	IsNew    bool   `json:"is_new"`
}

type DeviceInfo struct {
	ID         string    `json:"id"`
	Platform   string    `json:"platform"`
	CreatedAt  time.Time `json:"created_at"`
	LastSeenAt time.Time `json:"last_seen_at"`
}

type SurveySummary struct {
	SurveyID       string    `json:"survey_id"`
	CompositeScore float64   `json:"composite_score"`
	Label          string    `json:"label"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

type MySurveysResponse struct {
	Surveys []SurveySummary `json:"surveys"`
}

// ErrorResponse is the uniform error payload. Code is one of the Code*
// constants; Error is the HTTP status text.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}
