// Copyright (c) 2025 NBLK Consulting.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed by the application for the given
// database type ("postgres" or "sqlite"). Safe to call multiple times -
// uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	var schema string
	switch dbType {
	case "postgres":
		schema = schemaPostgres
	case "sqlite":
		schema = schemaSQLite
	default:
		return fmt.Errorf("unknown database type %q", dbType)
	}

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

const schemaPostgres = `
-- Survey responses, one row per submission. Contact fields are filled in
-- later by the enrichment flow; everything else is immutable after insert.
CREATE TABLE IF NOT EXISTS survey_response (
    id TEXT PRIMARY KEY,
    age_range TEXT,
    region TEXT,
    immigration_policy_rate REAL NOT NULL CHECK (immigration_policy_rate >= 0 AND immigration_policy_rate <= 100),
    economic_management_rate REAL NOT NULL CHECK (economic_management_rate >= 0 AND economic_management_rate <= 100),
    foreign_policy_rate REAL NOT NULL CHECK (foreign_policy_rate >= 0 AND foreign_policy_rate <= 100),
    domestic_policy_rate REAL NOT NULL CHECK (domestic_policy_rate >= 0 AND domestic_policy_rate <= 100),
    social_policy_rate REAL NOT NULL CHECK (social_policy_rate >= 0 AND social_policy_rate <= 100),
    instability_ratio REAL NOT NULL CHECK (instability_ratio >= 0 AND instability_ratio <= 100),
    first_name TEXT,
    last_name TEXT,
    email TEXT,
    ip_hash TEXT,
    user_agent TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_survey_response_age_range ON survey_response(age_range);
CREATE INDEX IF NOT EXISTS idx_survey_response_region ON survey_response(region);
CREATE INDEX IF NOT EXISTS idx_survey_response_created_at ON survey_response(created_at);

-- Devices (anonymous browser/app installs)
CREATE TABLE IF NOT EXISTS device (
    id TEXT PRIMARY KEY,
    device_uuid TEXT NOT NULL UNIQUE,
    platform TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    last_seen_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_device_uuid ON device(device_uuid);

-- Device to submission links
CREATE TABLE IF NOT EXISTS device_survey (
    device_id TEXT NOT NULL REFERENCES device(id) ON DELETE CASCADE,
    survey_id TEXT NOT NULL REFERENCES survey_response(id) ON DELETE CASCADE,
    linked_at TIMESTAMP NOT NULL DEFAULT NOW(),
    PRIMARY KEY (device_id, survey_id)
);

CREATE INDEX IF NOT EXISTS idx_device_survey_device ON device_survey(device_id);
`

const schemaSQLite = `
CREATE TABLE IF NOT EXISTS survey_response (
    id TEXT PRIMARY KEY,
    age_range TEXT,
    region TEXT,
    immigration_policy_rate REAL NOT NULL CHECK (immigration_policy_rate >= 0 AND immigration_policy_rate <= 100),
    economic_management_rate REAL NOT NULL CHECK (economic_management_rate >= 0 AND economic_management_rate <= 100),
    foreign_policy_rate REAL NOT NULL CHECK (foreign_policy_rate >= 0 AND foreign_policy_rate <= 100),
    domestic_policy_rate REAL NOT NULL CHECK (domestic_policy_rate >= 0 AND domestic_policy_rate <= 100),
    social_policy_rate REAL NOT NULL CHECK (social_policy_rate >= 0 AND social_policy_rate <= 100),
    instability_ratio REAL NOT NULL CHECK (instability_ratio >= 0 AND instability_ratio <= 100),
    first_name TEXT,
    last_name TEXT,
    email TEXT,
    ip_hash TEXT,
    user_agent TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_survey_response_age_range ON survey_response(age_range);
CREATE INDEX IF NOT EXISTS idx_survey_response_region ON survey_response(region);
CREATE INDEX IF NOT EXISTS idx_survey_response_created_at ON survey_response(created_at);

CREATE TABLE IF NOT EXISTS device (
    id TEXT PRIMARY KEY,
    device_uuid TEXT NOT NULL UNIQUE,
    platform TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    last_seen_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_device_uuid ON device(device_uuid);

CREATE TABLE IF NOT EXISTS device_survey (
    device_id TEXT NOT NULL REFERENCES device(id) ON DELETE CASCADE,
    survey_id TEXT NOT NULL REFERENCES survey_response(id) ON DELETE CASCADE,
    linked_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (device_id, survey_id)
);

CREATE INDEX IF NOT EXISTS idx_device_survey_device ON device_survey(device_id);
`
