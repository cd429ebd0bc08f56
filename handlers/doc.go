// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers.

# Handler Types

  - PollHandler: poll creation, public and admin views, active-count
  - OptionHandler: admin add/remove of poll options
  - VoteHandler: participant response submission
  - DraftHandler: wizard draft CRUD

Handlers are created via constructor functions taking their dependencies:

	pollHandler := handlers.NewPollHandler(svc, pollStore, cfg)

# Poll Flow

	POST /polls                       → CreatePoll (returns admin and vote URLs)
	GET  /polls/{id}                  → GetPoll (public view)
	GET  /polls/{id}/admin            → GetPollAdmin
	POST /polls/{id}/options          → AddOption
	POST /polls/{id}/options/remove   → RemoveOption
	POST /polls/{id}/responses        → SubmitVote
	GET  /polls/active-count          → ActiveCount (text/plain)

Admin operations require the X-Admin-Secret header; a wrong secret is 401,
a missing poll 404, malformed input 400.

# Wizard Drafts

	POST   /drafts       → CreateDraft
	GET    /drafts/{id}  → GetDraft
	PUT    /drafts/{id}  → SaveDraft
	DELETE /drafts/{id}  → DeleteDraft

Draft bodies use the grouped day_options shape.
*/
package handlers
