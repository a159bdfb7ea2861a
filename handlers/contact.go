// Copyright (c) 2025 NBLK Consulting.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"

	"github.com/nblk/stability-server/cliparse"
	"github.com/nblk/stability-server/middleware"
	"github.com/nblk/stability-server/models"
	"github.com/nblk/stability-server/report"
)

type ContactHandler struct {
	db       *sql.DB
	cfg      cliparse.Config
	delivery report.Delivery
}

// NewContactHandler wires the handler with its report delivery. Pass nil
// delivery when SENDGRID_API_KEY is not configured; the endpoint then
// saves contact info but reports 503 for the email step.
func NewContactHandler(db *sql.DB, cfg cliparse.Config, delivery report.Delivery) *ContactHandler {
	return &ContactHandler{db: db, cfg: cfg, delivery: delivery}
}

// UpdateContact handles POST /surveys/{id}/contact
//
// Enriches an existing submission with contact fields, then renders and
// emails the PDF report. The contact update and the delivery are
// independently recoverable: a failed delivery leaves the contact saved
// and the request retriable without re-taking the evaluation.
func (h *ContactHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	surveyID := r.PathValue("id")
	if surveyID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidInput, "survey id is required")
		return
	}

	var req models.ContactRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidInput, "Invalid JSON")
		return
	}

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)

	if req.FirstName == "" || req.LastName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidInput, "first_name and last_name are required")
		return
	}
	if !plausibleEmail(req.Email) {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidInput, "a valid email is required")
		return
	}

	res, err := h.db.Exec(`
		UPDATE survey_response
		SET first_name = $1, last_name = $2, email = $3
		WHERE id = $4
	`, req.FirstName, req.LastName, req.Email, surveyID)

	if err != nil {
		slog.Error("failed to update contact info", "error", err, "survey_id", surveyID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.CodeStoreUnavailable, "Failed to save contact info")
		return
	}
	affected, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to read update result", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.CodeStoreUnavailable, "Failed to save contact info")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, models.CodeNotFound, "Survey not found")
		return
	}

	slog.Info("contact info saved", "survey_id", surveyID)

	if h.delivery == nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, models.CodeNotConfigured,
			"Contact info saved, but report delivery is not configured")
		return
	}

	results, _, err := loadSurveyResults(h.db, surveyID)
	if err != nil {
		slog.Error("failed to load survey for report", "error", err, "survey_id", surveyID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.CodeStoreUnavailable, "Failed to load survey for report")
		return
	}

	if err := h.delivery.Deliver(results, req.FirstName, req.Email); err != nil {
		slog.Error("report delivery failed", "error", err, "survey_id", surveyID)
		middleware.ErrorResponse(w, http.StatusBadGateway, models.CodeDeliveryFailed,
			"Contact info saved, but the report email could not be sent; please retry")
		return
	}

	slog.Info("report delivered", "survey_id", surveyID)

	middleware.JSONResponse(w, http.StatusOK, models.ContactResponse{
		SurveyID:        surveyID,
		ReportDelivered: true,
		Message:         "Report sent",
	})
}

// plausibleEmail keeps validation shallow: the mail provider is the real
// validator, this only rejects obvious junk.
func plausibleEmail(s string) bool {
	at := strings.Index(s, "@")
	return at > 0 && at < len(s)-1 && !strings.ContainsAny(s, " \t")
}
