// Copyright (c) 2025 NBLK Consulting.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ident

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewSurveyID returns a random identifier for a survey submission.
func NewSurveyID() string {
	return uuid.NewString()
}

// NewDeviceID returns a random identifier for a registered device.
func NewDeviceID() string {
	return uuid.NewString()
}

// ReportID derives the human-readable reference printed on a PDF report,
// NBLK-YYYYMMDD-NNN, from the submission id and the report date.
func ReportID(surveyID string, at time.Time) string {
	short := strings.ReplaceAll(surveyID, "-", "")
	if len(short) > 3 {
		short = short[:3]
	}
	return fmt.Sprintf("NBLK-%s-%s", at.UTC().Format("20060102"), strings.ToUpper(short))
}

// HashIP reduces an IP address to a salted one-way hash for storage.
// Only the first 8 bytes (64 bits) are kept, enough for deduplication and
// abuse review without being a usable identifier.
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:8])
}
