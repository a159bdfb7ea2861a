// Copyright (c) 2025 NBLK Consulting.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/nblk/stability-server/middleware"
	"github.com/nblk/stability-server/models"
	"github.com/nblk/stability-server/scoring"
)

// MetaHandler serves the fixed configuration the form UI renders from:
// indicator definitions and the classification legend.
type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// GetIndicators handles GET /indicators
func (h *MetaHandler) GetIndicators(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.IndicatorsResponse{
		Indicators: scoring.DefaultIndicators(),
	})
}

// GetLegend handles GET /legend
func (h *MetaHandler) GetLegend(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.LegendResponse{
		Bands: scoring.Bands(),
	})
}
