// Copyright (c) 2025 NBLK Consulting.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the JSON request and response types for the
stability survey API, the closed demographic sets, and the error codes
shared across handlers.

Domain values (indicators, bands, results) live in package scoring; this
package only wraps them for the wire.
*/
package models
