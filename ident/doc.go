// Copyright (c) 2025 NBLK Consulting.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ident generates identifiers and privacy-preserving hashes.

Survey submissions and devices are keyed by random UUIDs. Client IP
addresses are never stored raw; they are reduced to a salted HMAC-SHA256
prefix that is stable enough for abuse review but cannot be reversed.
Report ids are short human-readable references printed on PDF reports.
*/
package ident
