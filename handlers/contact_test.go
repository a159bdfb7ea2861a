// Copyright (c) 2025 NBLK Consulting.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nblk/stability-server/models"
	"github.com/nblk/stability-server/scoring"
)

// fakeDelivery records delivery attempts instead of sending email
type fakeDelivery struct {
	err       error
	delivered int
	lastName  string
	lastEmail string
	lastScore float64
}

func (f *fakeDelivery) Deliver(res scoring.Results, firstName, email string) error {
	if f.err != nil {
		return f.err
	}
	f.delivered++
	f.lastName = firstName
	f.lastEmail = email
	f.lastScore = res.CompositeScore
	return nil
}

func contactRequest(t *testing.T, surveyID string, body interface{}) *http.Request {
	t.Helper()
	jsonBody, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal request body: %v", err)
	}
	req := httptest.NewRequest("POST", "/surveys/"+surveyID+"/contact", bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	req.SetPathValue("id", surveyID)
	return req
}

func TestUpdateContact(t *testing.T) {
	conn := setupTestDB(t)
	cfg := getTestConfig()
	delivery := &fakeDelivery{}
	handler := NewContactHandler(conn, cfg, delivery)

	surveyID := insertSurvey(t, conn, 55, "45-54", "southeast")

	req := contactRequest(t, surveyID, models.ContactRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	})
	w := httptest.NewRecorder()
	handler.UpdateContact(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", w.Code, w.Body.String())
	}
	var resp models.ContactResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.ReportDelivered {
		t.Error("Expected report_delivered to be true")
	}
	if resp.SurveyID != surveyID {
		t.Errorf("Expected survey_id %q, got %q", surveyID, resp.SurveyID)
	}

	if delivery.delivered != 1 {
		t.Fatalf("Expected 1 delivery, got %d", delivery.delivered)
	}
	if delivery.lastName != "Ada" || delivery.lastEmail != "ada@example.com" {
		t.Errorf("Delivery got name %q email %q", delivery.lastName, delivery.lastEmail)
	}
	if delivery.lastScore != 55 {
		t.Errorf("Expected delivered results with composite 55, got %f", delivery.lastScore)
	}

	// Contact fields persisted
	var first, last, email sql.NullString
	err := conn.QueryRow(`
		SELECT first_name, last_name, email FROM survey_response WHERE id = $1
	`, surveyID).Scan(&first, &last, &email)
	if err != nil {
		t.Fatalf("Failed to query contact fields: %v", err)
	}
	if first.String != "Ada" || last.String != "Lovelace" || email.String != "ada@example.com" {
		t.Errorf("Contact fields not saved: %q %q %q", first.String, last.String, email.String)
	}
}

func TestUpdateContactValidation(t *testing.T) {
	conn := setupTestDB(t)
	handler := NewContactHandler(conn, getTestConfig(), &fakeDelivery{})

	surveyID := insertSurvey(t, conn, 50, "", "")

	tests := []struct {
		name    string
		request models.ContactRequest
	}{
		{"missing first name", models.ContactRequest{LastName: "L", Email: "a@b.com"}},
		{"missing last name", models.ContactRequest{FirstName: "F", Email: "a@b.com"}},
		{"whitespace-only name", models.ContactRequest{FirstName: "   ", LastName: "L", Email: "a@b.com"}},
		{"missing email", models.ContactRequest{FirstName: "F", LastName: "L"}},
		{"email without at-sign", models.ContactRequest{FirstName: "F", LastName: "L", Email: "not-an-email"}},
		{"email with spaces", models.ContactRequest{FirstName: "F", LastName: "L", Email: "a b@c.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := contactRequest(t, surveyID, tt.request)
			w := httptest.NewRecorder()
			handler.UpdateContact(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d. Body: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestUpdateContactSurveyNotFound(t *testing.T) {
	conn := setupTestDB(t)
	handler := NewContactHandler(conn, getTestConfig(), &fakeDelivery{})

	req := contactRequest(t, "no-such-id", models.ContactRequest{
		FirstName: "F", LastName: "L", Email: "a@b.com",
	})
	w := httptest.NewRecorder()
	handler.UpdateContact(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d. Body: %s", w.Code, w.Body.String())
	}
}

func TestUpdateContactDeliveryNotConfigured(t *testing.T) {
	conn := setupTestDB(t)
	handler := NewContactHandler(conn, getTestConfig(), nil)

	surveyID := insertSurvey(t, conn, 50, "", "")

	req := contactRequest(t, surveyID, models.ContactRequest{
		FirstName: "F", LastName: "L", Email: "a@b.com",
	})
	w := httptest.NewRecorder()
	handler.UpdateContact(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("Expected status 503, got %d. Body: %s", w.Code, w.Body.String())
	}
	var errResp models.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&errResp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if errResp.Code != models.CodeNotConfigured {
		t.Errorf("Expected code %q, got %q", models.CodeNotConfigured, errResp.Code)
	}

	// Contact must still be saved even though delivery is unavailable
	var first sql.NullString
	if err := conn.QueryRow(`SELECT first_name FROM survey_response WHERE id = $1`, surveyID).Scan(&first); err != nil {
		t.Fatalf("Failed to query contact fields: %v", err)
	}
	if first.String != "F" {
		t.Errorf("Expected contact saved despite missing delivery, got %q", first.String)
	}
}

func TestUpdateContactDeliveryFailed(t *testing.T) {
	conn := setupTestDB(t)
	delivery := &fakeDelivery{err: errors.New("smtp down")}
	handler := NewContactHandler(conn, getTestConfig(), delivery)

	surveyID := insertSurvey(t, conn, 50, "", "")

	req := contactRequest(t, surveyID, models.ContactRequest{
		FirstName: "F", LastName: "L", Email: "a@b.com",
	})
	w := httptest.NewRecorder()
	handler.UpdateContact(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("Expected status 502, got %d. Body: %s", w.Code, w.Body.String())
	}
	var errResp models.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&errResp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if errResp.Code != models.CodeDeliveryFailed {
		t.Errorf("Expected code %q, got %q", models.CodeDeliveryFailed, errResp.Code)
	}

	// Retry after the transient failure succeeds without re-taking the survey
	delivery.err = nil
	retryReq := contactRequest(t, surveyID, models.ContactRequest{
		FirstName: "F", LastName: "L", Email: "a@b.com",
	})
	retryW := httptest.NewRecorder()
	handler.UpdateContact(retryW, retryReq)

	if retryW.Code != http.StatusOK {
		t.Errorf("Expected retry to succeed with 200, got %d. Body: %s", retryW.Code, retryW.Body.String())
	}
	if delivery.delivered != 1 {
		t.Errorf("Expected 1 successful delivery after retry, got %d", delivery.delivered)
	}
}
