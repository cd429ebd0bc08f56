// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Meet API server.

Quickly Meet is a date-poll scheduling service: an author proposes candidate
dates (or times within days), shares an admin link and a vote link, and
participants answer YES / IF_NEEDED / NO per option. The author can add and
remove options after creation; a multi-step creation wizard persists its
draft state between steps.

# Starting the Server

	go run main.go

runs with in-memory storage and no email. A durable setup:

	STORAGE_TYPE=sqlite DATABASE_URL=quickly-meet.db go run main.go

# Configuration

Optional settings (flags or env; see the cliparse package):

  - PORT (-p): server port (default: 3418)
  - STORAGE_TYPE (-s): memory, sqlite, postgres or redis (default: memory)
  - DATABASE_URL (-d): connection string for sqlite/postgres storage
  - REDIS_ADDR (-redis-addr): address for redis storage
  - PUBLIC_BASE_URL (-base-url): prefix for admin/vote links
  - SMTP_ADDR, SMTP_FROM: poll-created email; unset disables email

# Architecture

The server uses a handler-based architecture with dependency injection:

  - models: domain model (poll aggregate, wizard draft) and API types
  - polls: application service (create, read, mutate options, merge votes)
  - store: poll and draft persistence (memory, sql, redis backends)
  - notify: poll-created email
  - handlers: HTTP request handlers
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - auth: admin secret generation and verification
  - db: schema creation for the sql backend
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
