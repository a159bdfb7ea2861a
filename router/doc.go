// Copyright (c) 2025 NBLK Consulting.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the stability survey API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Form configuration (public):

	GET /indicators - Policy indicator definitions and weights
	GET /legend     - Instability band legend

Evaluations (public):

	POST /surveys              - Submit a completed evaluation
	GET  /surveys/{id}         - Retrieve scored results
	POST /surveys/{id}/contact - Attach contact info and deliver report

Community comparison (public):

	GET /averages - Aggregate statistics across all submissions

Device management:

	POST /devices/register   - Register device
	GET  /devices/me         - Get device info
	GET  /devices/my-surveys - List device's submissions

# Handler Initialization

The router creates handler instances with dependency injection:

	surveyHandler := handlers.NewSurveyHandler(db, cfg)
	averagesHandler := handlers.NewAveragesHandler(db, cfg)
	metaHandler := handlers.NewMetaHandler()
	contactHandler := handlers.NewContactHandler(db, cfg, delivery)
	deviceHandler := handlers.NewDeviceHandler(db, cfg)

The contact handler receives a report.Delivery only when SendGrid
credentials are configured; otherwise report delivery endpoints respond
with 503 not_configured.
*/
package router
