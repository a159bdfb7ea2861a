// Copyright (c) 2025 NBLK Consulting.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/nblk/stability-server/cliparse"
	"github.com/nblk/stability-server/middleware"
	"github.com/nblk/stability-server/models"
	"github.com/nblk/stability-server/scoring"
)

type AveragesHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAveragesHandler(db *sql.DB, cfg cliparse.Config) *AveragesHandler {
	return &AveragesHandler{db: db, cfg: cfg}
}

// GetAverages handles GET /averages
// Returns the running mean of all stored composite scores, overall and
// broken down by the closed demographic buckets.
func (h *AveragesHandler) GetAverages(w http.ResponseWriter, r *http.Request) {
	averages, err := loadAverages(h.db)
	if err != nil {
		slog.Error("failed to load community averages", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.CodeStoreUnavailable, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, averages)
}

// loadAverages recomputes the community averages from the full history.
// The mean is a point-in-time snapshot: rows committed by concurrent
// submissions are simply included or not, no isolation is attempted.
func loadAverages(db *sql.DB) (*scoring.CommunityAverages, error) {
	rows, err := db.Query(`
		SELECT instability_ratio, age_range, region FROM survey_response
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query survey history: %w", err)
	}
	defer rows.Close()

	var all []float64
	byAge := make(map[string][]float64)
	byRegion := make(map[string][]float64)

	for rows.Next() {
		var ratio float64
		var ageRange, region sql.NullString
		if err := rows.Scan(&ratio, &ageRange, &region); err != nil {
			return nil, fmt.Errorf("failed to scan survey row: %w", err)
		}
		all = append(all, ratio)
		if ageRange.Valid && ageRange.String != "" {
			byAge[ageRange.String] = append(byAge[ageRange.String], ratio)
		}
		if region.Valid && region.String != "" {
			byRegion[region.String] = append(byRegion[region.String], ratio)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read survey history: %w", err)
	}

	return &scoring.CommunityAverages{
		Overall:  scoring.Mean(all),
		Count:    len(all),
		ByAge:    scoring.MeanByBucket(byAge),
		ByRegion: scoring.MeanByBucket(byRegion),
	}, nil
}
