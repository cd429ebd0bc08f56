// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists polls and wizard drafts as whole JSON documents.

Three backends implement the PollStore and DraftStore interfaces:

  - Memory: process-local maps, used by tests and dev setups
  - SQL: one payload row per aggregate, works on sqlite and postgres
  - Redis: one string value per aggregate under poll:/draft: keys

All backends share one codec. Polls are written as a versioned document with
the admin secret under access.adminToken. Drafts are written in the grouped
day-options shape; the reader falls back to the legacy flat dates/startTimes
shape when dayOptions is absent, and treats missing lists as empty.

No backend does compare-and-swap: two concurrent writers to the same poll id
race last-write-wins. Callers needing stronger consistency must layer it on
top.
*/
package store
