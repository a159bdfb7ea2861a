// Copyright (c) 2025 NBLK Consulting.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db creates the database schema.

Three tables: survey_response holds one row per submitted evaluation
(demographics, the five per-indicator rates, the composite instability
ratio, and optional contact fields filled in later), device tracks
anonymous installs, and device_survey links a device to its submissions.

Both Postgres and SQLite are supported; queries elsewhere use $N
placeholders, which both drivers accept.
*/
package db
