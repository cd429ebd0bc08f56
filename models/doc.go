// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the poll domain model, the wizard draft, and the
request/response types for the API.

# Poll Aggregate

Poll is an immutable value. The three transformations return a new Poll:

	poll.AddResponse(response)     // append
	poll.ReplaceResponse(response) // overwrite by response id, append if absent
	poll.WithOptions(options)      // replace the whole option set

Nothing mutates a stored poll in place; persistence happens by saving the
transformed value through a store.

# Event Kinds

	EventAllDay   — options are whole days, never carry times
	EventIntraday — options carry a start time and a derived end time

# Vote Values

	VoteYes, VoteIfNeeded, VoteNo

# Wizard Draft

WizardDraft holds the flat (dates, start times) working selection. DayOptions
and SetDayOptions convert to and from the grouped day → times shape used for
draft persistence. Grouping then flattening then grouping again is stable.

# API Types

Request and response structs mirror the JSON wire format. Dates and times use
cloud.google.com/go/civil, which marshals as "2006-01-02" and "10:50:00".
*/
package models
