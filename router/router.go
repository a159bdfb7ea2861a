// Copyright (c) 2025 NBLK Consulting.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/nblk/stability-server/cliparse"
	"github.com/nblk/stability-server/handlers"
	"github.com/nblk/stability-server/middleware"
	"github.com/nblk/stability-server/report"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	var delivery report.Delivery
	if cfg.DeliveryConfigured() {
		delivery = report.NewSendGridDelivery(cfg.SendGridAPIKey, cfg.SendGridFrom)
	}

	surveyHandler := handlers.NewSurveyHandler(db, cfg)
	averagesHandler := handlers.NewAveragesHandler(db, cfg)
	metaHandler := handlers.NewMetaHandler()
	contactHandler := handlers.NewContactHandler(db, cfg, delivery)
	deviceHandler := handlers.NewDeviceHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Form configuration
	mux.HandleFunc("GET /indicators", middleware.WithLogging(metaHandler.GetIndicators))
	mux.HandleFunc("GET /legend", middleware.WithLogging(metaHandler.GetLegend))

	// Evaluation submission and retrieval
	mux.HandleFunc("POST /surveys", middleware.WithLogging(surveyHandler.SubmitSurvey))
	mux.HandleFunc("GET /surveys/{id}", middleware.WithLogging(surveyHandler.GetSurvey))
	mux.HandleFunc("POST /surveys/{id}/contact", middleware.WithLogging(contactHandler.UpdateContact))

	// Community comparison
	mux.HandleFunc("GET /averages", middleware.WithLogging(averagesHandler.GetAverages))

	// Device management
	mux.HandleFunc("POST /devices/register", middleware.WithLogging(deviceHandler.Register))
	mux.HandleFunc("GET /devices/me", middleware.WithLogging(deviceHandler.GetMe))
	mux.HandleFunc("GET /devices/my-surveys", middleware.WithLogging(deviceHandler.GetMySurveys))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("stability-server API v1"))
	})

	return mux
}
