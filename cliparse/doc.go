// Copyright (c) 2025 NBLK Consulting.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse builds the server configuration from CLI flags with
environment-variable fallback.

Required settings:

  - DATABASE_URL (-d): Postgres connection string, or a file path when
    DATABASE_TYPE is sqlite
  - IP_HASH_SALT (--ip-salt): secret for the one-way IP hash stored with
    each submission

Optional settings:

  - PORT (-p): server port (default: 8344)
  - DATABASE_TYPE (-t): postgres or sqlite (default: postgres)
  - SENDGRID_API_KEY: enables emailed PDF reports
  - SENDGRID_FROM_EMAIL: report sender address (default: info@n-blk.com)

A .env file in the working directory is loaded before flags are read.
*/
package cliparse
