// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db bootstraps the document tables for the SQL storage backend.

	if err := db.CreateSchema(dbConn); err != nil { ... }

The schema is two tables, poll and draft, each holding one JSON payload per
row. It is valid sqlite and postgres as written.
*/
package db
