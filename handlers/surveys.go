// Copyright (c) 2025 NBLK Consulting.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/nblk/stability-server/cliparse"
	"github.com/nblk/stability-server/ident"
	"github.com/nblk/stability-server/middleware"
	"github.com/nblk/stability-server/models"
	"github.com/nblk/stability-server/scoring"
)

type SurveyHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewSurveyHandler(db *sql.DB, cfg cliparse.Config) *SurveyHandler {
	return &SurveyHandler{db: db, cfg: cfg}
}

// SubmitSurvey handles POST /surveys
//
// The composite score and classification are computed before any store
// access, so a store failure degrades the response (store_degraded set,
// survey_id and averages absent) rather than hiding the respondent's own
// result.
func (h *SurveyHandler) SubmitSurvey(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitSurveyRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidInput, "Invalid JSON")
		return
	}

	if req.AgeRange != "" && !models.ValidAgeRange(req.AgeRange) {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidInput, "age_range must be one of the six buckets")
		return
	}
	if req.Region != "" && !models.ValidRegion(req.Region) {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidInput, "region must be one of the five regions")
		return
	}

	indicators, err := ratedIndicators(req.Ratings)
	if err != nil {
		code := models.CodeInvalidInput
		if errors.Is(err, scoring.ErrMissingIndicator) {
			code = models.CodeMissingIndicator
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, code, err.Error())
		return
	}

	composite, err := scoring.Composite(indicators)
	if err != nil {
		// Request-level validation already ran, so this is a server bug.
		slog.Error("composite scoring failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.CodeIncompleteResult, "Failed to score evaluation")
		return
	}
	band, err := scoring.Classify(composite)
	if err != nil {
		slog.Error("classification failed", "error", err, "composite", composite)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.CodeIncompleteResult, "Failed to classify evaluation")
		return
	}

	// Store round-trip. Failures from here on degrade, never fail.
	degraded := false
	surveyID := ident.NewSurveyID()
	ipHash := ident.HashIP(middleware.GetClientIP(r), h.cfg.IPHashSalt)

	_, err = h.db.Exec(`
		INSERT INTO survey_response (
			id, age_range, region,
			immigration_policy_rate, economic_management_rate, foreign_policy_rate,
			domestic_policy_rate, social_policy_rate,
			instability_ratio, ip_hash, user_agent, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, surveyID, nullIfEmpty(req.AgeRange), nullIfEmpty(req.Region),
		indicatorScore(indicators, scoring.Immigration),
		indicatorScore(indicators, scoring.Economy),
		indicatorScore(indicators, scoring.Foreign),
		indicatorScore(indicators, scoring.Domestic),
		indicatorScore(indicators, scoring.Social),
		composite, ipHash, r.UserAgent(), time.Now())

	if err != nil {
		slog.Error("failed to insert survey response", "error", err)
		degraded = true
		surveyID = ""
	}

	if !degraded {
		h.linkDevice(r, surveyID)
	}

	var averages *scoring.CommunityAverages
	if !degraded {
		averages, err = loadAverages(h.db)
		if err != nil {
			slog.Error("failed to load community averages", "error", err)
			degraded = true
		}
	}

	results, err := scoring.AssembleResults(composite, band, indicators, averages, surveyID)
	if err != nil {
		slog.Error("results assembly failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.CodeIncompleteResult, "Failed to assemble results")
		return
	}

	message := "Survey submitted successfully"
	status := http.StatusCreated
	if degraded {
		message = "Survey scored; saving or community comparison is temporarily unavailable"
		status = http.StatusOK
	}

	slog.Info("survey submitted", "survey_id", surveyID, "composite", composite, "band", band.Label, "degraded", degraded)

	middleware.JSONResponse(w, status, models.SubmitSurveyResponse{
		Results:       results,
		StoreDegraded: degraded,
		Message:       message,
	})
}

// GetSurvey handles GET /surveys/{id}
// Re-assembles the Results for a stored submission with current averages.
func (h *SurveyHandler) GetSurvey(w http.ResponseWriter, r *http.Request) {
	surveyID := r.PathValue("id")
	if surveyID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidInput, "survey id is required")
		return
	}

	results, submittedAt, err := loadSurveyResults(h.db, surveyID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, models.CodeNotFound, "Survey not found")
		return
	}
	if err != nil {
		slog.Error("failed to load survey", "error", err, "survey_id", surveyID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.CodeStoreUnavailable, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SurveyResponse{
		Results:     results,
		SubmittedAt: submittedAt,
	})
}

// ratedIndicators applies the request ratings to a fresh default indicator
// set. Every indicator must be rated by score or by grade; a grade maps to
// its band anchor, and an explicit score wins over a grade.
func ratedIndicators(ratings map[string]models.RatingInput) ([]scoring.Indicator, error) {
	for id := range ratings {
		if !validIndicatorID(id) {
			return nil, fmt.Errorf("%w: unknown indicator %q", scoring.ErrInvalidInput, id)
		}
	}

	indicators := scoring.DefaultIndicators()
	for i := range indicators {
		rating, ok := ratings[string(indicators[i].ID)]
		if !ok {
			return nil, fmt.Errorf("%w: rating for %s is required", scoring.ErrMissingIndicator, indicators[i].ID)
		}

		// A present grade must be valid even when the score wins.
		var anchor float64
		if rating.Grade != nil {
			var err error
			anchor, err = scoring.GradeToScore(scoring.Grade(*rating.Grade))
			if err != nil {
				return nil, fmt.Errorf("indicator %s: %w", indicators[i].ID, err)
			}
		}

		switch {
		case rating.Score != nil:
			if *rating.Score < 0 || *rating.Score > 100 {
				return nil, fmt.Errorf("%w: indicator %s score %.2f outside [0,100]", scoring.ErrInvalidInput, indicators[i].ID, *rating.Score)
			}
			indicators[i].Score = *rating.Score
		case rating.Grade != nil:
			indicators[i].Score = anchor
		default:
			return nil, fmt.Errorf("%w: indicator %s needs a score or a grade", scoring.ErrInvalidInput, indicators[i].ID)
		}
	}
	return indicators, nil
}

func validIndicatorID(id string) bool {
	for _, known := range scoring.IndicatorIDs {
		if string(known) == id {
			return true
		}
	}
	return false
}

func indicatorScore(indicators []scoring.Indicator, id scoring.IndicatorID) float64 {
	for _, in := range indicators {
		if in.ID == id {
			return in.Score
		}
	}
	return 0
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// linkDevice associates the submission with the caller's device when an
// X-Device-UUID header is present. Best effort: failures are logged, the
// submission stands either way.
func (h *SurveyHandler) linkDevice(r *http.Request, surveyID string) {
	deviceID, err := getOrCreateDevice(h.db, r)
	if err != nil {
		slog.Warn("failed to get/create device", "error", err)
		return
	}
	if deviceID == "" {
		return
	}
	_, err = h.db.Exec(`
		INSERT INTO device_survey (device_id, survey_id, linked_at)
		VALUES ($1, $2, $3)
	`, deviceID, surveyID, time.Now())
	if err != nil {
		slog.Warn("failed to link device to survey", "error", err)
	}
}

// loadSurveyResults rebuilds the Results value for a stored submission,
// with averages recomputed over the current history. Returns sql.ErrNoRows
// when the id is unknown.
func loadSurveyResults(db *sql.DB, surveyID string) (scoring.Results, time.Time, error) {
	indicators := scoring.DefaultIndicators()
	scores := make(map[scoring.IndicatorID]*float64, len(indicators))
	for _, id := range scoring.IndicatorIDs {
		scores[id] = new(float64)
	}

	var submittedAt time.Time
	err := db.QueryRow(`
		SELECT immigration_policy_rate, economic_management_rate, foreign_policy_rate,
		       domestic_policy_rate, social_policy_rate, created_at
		FROM survey_response
		WHERE id = $1
	`, surveyID).Scan(
		scores[scoring.Immigration], scores[scoring.Economy], scores[scoring.Foreign],
		scores[scoring.Domestic], scores[scoring.Social], &submittedAt,
	)
	if err != nil {
		return scoring.Results{}, time.Time{}, err
	}

	for i := range indicators {
		indicators[i].Score = *scores[indicators[i].ID]
	}

	composite, err := scoring.Composite(indicators)
	if err != nil {
		return scoring.Results{}, time.Time{}, fmt.Errorf("stored survey %s does not score: %w", surveyID, err)
	}
	band, err := scoring.Classify(composite)
	if err != nil {
		return scoring.Results{}, time.Time{}, err
	}

	averages, err := loadAverages(db)
	if err != nil {
		// Degrade the comparison, keep the respondent's own result.
		slog.Error("failed to load community averages", "error", err)
		averages = nil
	}

	results, err := scoring.AssembleResults(composite, band, indicators, averages, surveyID)
	if err != nil {
		return scoring.Results{}, time.Time{}, err
	}
	return results, submittedAt, nil
}
