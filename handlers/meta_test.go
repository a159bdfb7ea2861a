// Copyright (c) 2025 NBLK Consulting.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nblk/stability-server/models"
)

func TestGetIndicators(t *testing.T) {
	handler := NewMetaHandler()

	req := httptest.NewRequest("GET", "/indicators", nil)
	w := httptest.NewRecorder()
	handler.GetIndicators(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var resp models.IndicatorsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if len(resp.Indicators) != 5 {
		t.Fatalf("Expected 5 indicators, got %d", len(resp.Indicators))
	}

	var weightSum float64
	for _, in := range resp.Indicators {
		if in.Name == "" || in.Prompt == "" {
			t.Errorf("Indicator %s missing name or prompt", in.ID)
		}
		if in.Score != 100 {
			t.Errorf("Indicator %s: expected default score 100, got %f", in.ID, in.Score)
		}
		weightSum += in.Weight
	}
	if math.Abs(weightSum-1) > 1e-9 {
		t.Errorf("Expected weights to sum to 1, got %f", weightSum)
	}
}

func TestGetLegend(t *testing.T) {
	handler := NewMetaHandler()

	req := httptest.NewRequest("GET", "/legend", nil)
	w := httptest.NewRecorder()
	handler.GetLegend(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var resp models.LegendResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if len(resp.Bands) != 5 {
		t.Fatalf("Expected 5 bands, got %d", len(resp.Bands))
	}

	// Bands must be ordered and contiguous across [0,100]
	if resp.Bands[0].Min != 0 {
		t.Errorf("Expected first band to start at 0, got %f", resp.Bands[0].Min)
	}
	if resp.Bands[len(resp.Bands)-1].Max != 100 {
		t.Errorf("Expected last band to end at 100, got %f", resp.Bands[len(resp.Bands)-1].Max)
	}
	for i := 1; i < len(resp.Bands); i++ {
		if resp.Bands[i].Min != resp.Bands[i-1].Max+1 {
			t.Errorf("Band %d not contiguous: prev max %f, min %f", i, resp.Bands[i-1].Max, resp.Bands[i].Min)
		}
	}
	for _, b := range resp.Bands {
		if b.Label == "" || b.Color == "" || b.Interpretation == "" {
			t.Errorf("Band %d missing label, color, or interpretation", b.Rank)
		}
	}
}
