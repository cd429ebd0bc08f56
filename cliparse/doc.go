// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse parses server configuration from CLI flags with environment
variable fallback. A .env file in the working directory is honored.

Settings:

  - PORT (-p): server port (default 3418)
  - STORAGE_TYPE (-s): memory, sqlite, postgres or redis (default memory)
  - DATABASE_URL (-d): connection string or sqlite file path; required for
    sqlite and postgres storage
  - REDIS_ADDR (-redis-addr), REDIS_PASSWORD: required for redis storage
  - PUBLIC_BASE_URL (-base-url): prefix for admin and vote links
  - SMTP_ADDR (-smtp-addr), SMTP_FROM (-smtp-from), SMTP_SUBJECT_PREFIX:
    poll-created email; leaving SMTP_ADDR empty disables email entirely
*/
package cliparse
