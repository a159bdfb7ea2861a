// Copyright (c) 2025 NBLK Consulting.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP plumbing shared by all handlers: request
logging with status capture, JSON encode/decode helpers, the uniform error
payload, CORS, and client IP extraction.
*/
package middleware
