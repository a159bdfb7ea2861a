// Copyright (c) 2025 NBLK Consulting.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the NBLK stability survey API server.

The service scores anonymous political stability evaluations: five policy
indicators rated 0-100 (or by letter grade), combined into a weighted
composite, classified into one of five instability bands, and compared
against community averages.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... IP_HASH_SALT=... go run main.go

Or with flags:

	go run main.go -p 8344 -d "postgres://..." -ip-salt "..."

# Configuration

Required settings:

  - DATABASE_URL (-d): Database connection string
  - IP_HASH_SALT (-ip-salt): Secret for submitter IP hashing

Optional settings:

  - PORT (-p): Server port (default: 8344)
  - DATABASE_TYPE (-t): "postgres" (default) or "sqlite"
  - SENDGRID_API_KEY: Enables PDF report delivery by email
  - SENDGRID_FROM_EMAIL: Sender address (default: info@n-blk.com)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - scoring: Composite scoring, grade mapping, band classification
  - handlers: HTTP request handlers (surveys, averages, contact, devices)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - report: PDF generation and email delivery
  - ident: Identifier generation and IP hashing
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
