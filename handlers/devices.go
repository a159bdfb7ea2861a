// Copyright (c) 2025 NBLK Consulting.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/nblk/stability-server/cliparse"
	"github.com/nblk/stability-server/ident"
	"github.com/nblk/stability-server/middleware"
	"github.com/nblk/stability-server/models"
	"github.com/nblk/stability-server/scoring"
)

type DeviceHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewDeviceHandler(db *sql.DB, cfg cliparse.Config) *DeviceHandler {
	return &DeviceHandler{db: db, cfg: cfg}
}

func isValidPlatform(p string) bool {
	switch p {
	case "ios", "android", "web":
		return true
	}
	return false
}

// Register handles POST /devices/register
// Registers a device and returns its device_id (or finds existing)
func (h *DeviceHandler) Register(w http.ResponseWriter, r *http.Request) {
	deviceUUID := r.Header.Get("X-Device-UUID")
	if deviceUUID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidInput, "X-Device-UUID header required")
		return
	}

	var req models.RegisterDeviceRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidInput, "Invalid JSON")
		return
	}

	if !isValidPlatform(req.Platform) {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidInput, "platform must be one of: ios, android, web")
		return
	}

	// Existing device: bump last_seen_at and return it.
	var existingID string
	err := h.db.QueryRow(`
		SELECT id FROM device WHERE device_uuid = $1
	`, deviceUUID).Scan(&existingID)

	if err == nil {
		if _, err := h.db.Exec(`UPDATE device SET last_seen_at = $1 WHERE id = $2`, time.Now(), existingID); err != nil {
			slog.Error("failed to update device last_seen_at", "error", err)
		}
		middleware.JSONResponse(w, http.StatusOK, models.RegisterDeviceResponse{
			DeviceID: existingID,
			IsNew:    false,
		})
		return
	}
	if err != sql.ErrNoRows {
		slog.Error("failed to query device", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.CodeStoreUnavailable, "Database error")
		return
	}

	deviceID := ident.NewDeviceID()
	now := time.Now()
	_, err = h.db.Exec(`
		INSERT INTO device (id, device_uuid, platform, created_at, last_seen_at)
		VALUES ($1, $2, $3, $4, $5)
	`, deviceID, deviceUUID, req.Platform, now, now)

	if err != nil {
		slog.Error("failed to insert device", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.CodeStoreUnavailable, "Failed to register device")
		return
	}

	slog.Info("device registered", "device_id", deviceID, "platform", req.Platform)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterDeviceResponse{
		DeviceID: deviceID,
		IsNew:    true,
	})
}

// GetMe handles GET /devices/me
// Returns info about the calling device
func (h *DeviceHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	deviceUUID := r.Header.Get("X-Device-UUID")
	if deviceUUID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidInput, "X-Device-UUID header required")
		return
	}

	var info models.DeviceInfo
	err := h.db.QueryRow(`
		SELECT id, platform, created_at, last_seen_at FROM device WHERE device_uuid = $1
	`, deviceUUID).Scan(&info.ID, &info.Platform, &info.CreatedAt, &info.LastSeenAt)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, models.CodeNotFound, "Device not registered")
		return
	}
	if err != nil {
		slog.Error("failed to query device", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.CodeStoreUnavailable, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, info)
}

// GetMySurveys handles GET /devices/my-surveys
// Returns this device's past submissions, newest first. Each entry is a
// summary; the full Results are one GET /surveys/{id} away.
func (h *DeviceHandler) GetMySurveys(w http.ResponseWriter, r *http.Request) {
	deviceUUID := r.Header.Get("X-Device-UUID")
	if deviceUUID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.CodeInvalidInput, "X-Device-UUID header required")
		return
	}

	var deviceID string
	err := h.db.QueryRow(`
		SELECT id FROM device WHERE device_uuid = $1
	`, deviceUUID).Scan(&deviceID)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, models.CodeNotFound, "Device not registered")
		return
	}
	if err != nil {
		slog.Error("failed to query device", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.CodeStoreUnavailable, "Database error")
		return
	}

	if _, err := h.db.Exec(`UPDATE device SET last_seen_at = $1 WHERE id = $2`, time.Now(), deviceID); err != nil {
		slog.Error("failed to update device last_seen_at", "error", err)
	}

	rows, err := h.db.Query(`
		SELECT s.id, s.instability_ratio, s.created_at
		FROM device_survey ds
		JOIN survey_response s ON ds.survey_id = s.id
		WHERE ds.device_id = $1
		ORDER BY s.created_at DESC
	`, deviceID)
	if err != nil {
		slog.Error("failed to query device surveys", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.CodeStoreUnavailable, "Database error")
		return
	}
	defer rows.Close()

	surveys := []models.SurveySummary{}
	for rows.Next() {
		var s models.SurveySummary
		if err := rows.Scan(&s.SurveyID, &s.CompositeScore, &s.SubmittedAt); err != nil {
			slog.Error("failed to scan survey summary", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, models.CodeStoreUnavailable, "Database error")
			return
		}
		band, err := scoring.Classify(s.CompositeScore)
		if err == nil {
			s.Label = band.Label
		}
		surveys = append(surveys, s)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read device surveys", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.CodeStoreUnavailable, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MySurveysResponse{Surveys: surveys})
}

// getOrCreateDevice resolves the caller's device from the X-Device-UUID
// header, creating it on first sight. Returns "" when the header is absent.
func getOrCreateDevice(db *sql.DB, r *http.Request) (string, error) {
	deviceUUID := r.Header.Get("X-Device-UUID")
	if deviceUUID == "" {
		return "", nil
	}

	var deviceID string
	err := db.QueryRow(`
		SELECT id FROM device WHERE device_uuid = $1
	`, deviceUUID).Scan(&deviceID)

	if err == nil {
		if _, err := db.Exec(`UPDATE device SET last_seen_at = $1 WHERE id = $2`, time.Now(), deviceID); err != nil {
			slog.Warn("failed to update device last_seen_at", "error", err)
		}
		return deviceID, nil
	}
	if err != sql.ErrNoRows {
		return "", err
	}

	deviceID = ident.NewDeviceID()
	now := time.Now()
	platform := r.Header.Get("X-Platform")
	if !isValidPlatform(platform) {
		platform = "web"
	}
	_, err = db.Exec(`
		INSERT INTO device (id, device_uuid, platform, created_at, last_seen_at)
		VALUES ($1, $2, $3, $4, $5)
	`, deviceID, deviceUUID, platform, now, now)
	if err != nil {
		return "", err
	}
	return deviceID, nil
}
