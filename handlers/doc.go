// Copyright (c) 2025 NBLK Consulting.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP request handlers for the stability
survey API.

  - SurveyHandler: submission and retrieval of evaluations. Scoring and
    classification happen locally before any store round-trip, so a store
    outage degrades the response (no averages, no survey id) instead of
    failing it.
  - AveragesHandler: community averages across all stored submissions.
  - MetaHandler: the fixed indicator definitions and the band legend.
  - ContactHandler: contact enrichment of an existing submission and
    emailed PDF report delivery.
  - DeviceHandler: anonymous device registration and a device's own
    submission history.

Handlers receive their dependencies (database, config, report delivery)
at construction and hold no other state.
*/
package handlers
