// Copyright (c) 2025 NBLK Consulting.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/nblk/stability-server/cliparse"
	"github.com/nblk/stability-server/db"
	"github.com/nblk/stability-server/ident"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema.
// Each call gets its own database, so tests stay independent.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A second connection would see an empty :memory: database
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8344,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		IPHashSalt:   "test-ip-salt",
	}
}

// CreateTestSurvey inserts a survey response with uniform indicator scores
// and returns its ID. ageRange and region may be empty for anonymous rows.
func CreateTestSurvey(t *testing.T, conn *sql.DB, score float64, ageRange, region string) string {
	t.Helper()

	surveyID := ident.NewSurveyID()
	var age, reg *string
	if ageRange != "" {
		age = &ageRange
	}
	if region != "" {
		reg = &region
	}

	_, err := conn.Exec(`
		INSERT INTO survey_response (
			id, age_range, region,
			immigration_policy_rate, economic_management_rate, foreign_policy_rate,
			domestic_policy_rate, social_policy_rate,
			instability_ratio, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, surveyID, age, reg, score, score, score, score, score, score, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test survey: %v", err)
	}

	return surveyID
}

// CreateTestDevice registers a device and returns its internal ID
func CreateTestDevice(t *testing.T, conn *sql.DB, deviceUUID, platform string) string {
	t.Helper()

	deviceID := ident.NewDeviceID()
	_, err := conn.Exec(`
		INSERT INTO device (id, device_uuid, platform, created_at, last_seen_at)
		VALUES ($1, $2, $3, $4, $4)
	`, deviceID, deviceUUID, platform, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test device: %v", err)
	}

	return deviceID
}

// LinkTestSurvey associates a survey with a device
func LinkTestSurvey(t *testing.T, conn *sql.DB, deviceID, surveyID string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO device_survey (device_id, survey_id, linked_at)
		VALUES ($1, $2, $3)
	`, deviceID, surveyID, time.Now())
	if err != nil {
		t.Fatalf("Failed to link test survey: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
