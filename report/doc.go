// Copyright (c) 2025 NBLK Consulting.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package report renders a submitted evaluation into a fixed-layout PDF and
emails it to the respondent.

Build is a pure function of the Results value; it never mutates its input.
Delivery composes Build with a SendGrid transmission and is atomic from the
caller's perspective: any failure in rendering or sending surfaces as one
error, and the caller may simply retry.
*/
package report
