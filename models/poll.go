// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// Event kind constants
const (
	EventAllDay   EventType = "ALL_DAY"
	EventIntraday EventType = "INTRADAY"
)

// Vote value constants
const (
	VoteYes      VoteValue = "YES"
	VoteIfNeeded VoteValue = "IF_NEEDED"
	VoteNo       VoteValue = "NO"
)

// EventType distinguishes whole-day polls from polls whose options carry a
// start time (and a derived end time).
type EventType string

// Valid reports whether the event type is one of the two known kinds.
func (e EventType) Valid() bool {
	return e == EventAllDay || e == EventIntraday
}

// VoteValue is a participant's stance on a single option.
type VoteValue string

// Valid reports whether the vote value is one of YES, IF_NEEDED, NO.
func (v VoteValue) Valid() bool {
	return v == VoteYes || v == VoteIfNeeded || v == VoteNo
}

// Poll is the scheduling aggregate. It is treated as an immutable value:
// all transformations return a new Poll and leave the receiver untouched,
// so the store boundary is the only place state actually changes.
type Poll struct {
	ID              uuid.UUID
	AdminSecret     string
	Title           string
	Description     string
	AuthorName      string
	AuthorEmail     string
	EventType       EventType
	DurationMinutes *int
	Options         []PollOption
	Responses       []PollResponse
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ExpiresAt       civil.Date
}

// PollOption is one candidate slot. For ALL_DAY polls StartTime and EndTime
// are always nil; for INTRADAY polls StartTime is set and EndTime is
// StartTime plus the poll duration when the duration is known.
// Options are never mutated after creation, only replaced or removed.
type PollOption struct {
	ID        uuid.UUID
	Date      civil.Date
	StartTime *civil.Time
	EndTime   *civil.Time
}

// PollResponse is one participant's submission. Resubmitting under the same
// response id replaces name, comment and votes but keeps CreatedAt.
type PollResponse struct {
	ID              uuid.UUID
	ParticipantName string
	CreatedAt       time.Time
	Comment         string
	Votes           []PollVote
}

// PollVote pairs an option id with a vote value. A response may omit options
// entirely, meaning "no opinion".
type PollVote struct {
	OptionID uuid.UUID
	Value    VoteValue
}

// AddResponse returns a copy of the poll with the response appended.
func (p Poll) AddResponse(response PollResponse) Poll {
	updated := make([]PollResponse, 0, len(p.Responses)+1)
	updated = append(updated, p.Responses...)
	updated = append(updated, response)
	p.Responses = updated
	return p
}

// ReplaceResponse returns a copy of the poll with the response holding the
// same id overwritten in place, keeping its list position. When no response
// matches, the response is appended instead.
func (p Poll) ReplaceResponse(response PollResponse) Poll {
	updated := make([]PollResponse, len(p.Responses))
	copy(updated, p.Responses)
	replaced := false
	for i := range updated {
		if updated[i].ID == response.ID {
			updated[i] = response
			replaced = true
			break
		}
	}
	if !replaced {
		updated = append(updated, response)
	}
	p.Responses = updated
	return p
}

// WithOptions returns a copy of the poll with the whole option set replaced.
// Callers compute the full new set first; there are no partial updates.
func (p Poll) WithOptions(options []PollOption) Poll {
	updated := make([]PollOption, len(options))
	copy(updated, options)
	p.Options = updated
	return p
}

// AddMinutes returns the wall-clock time m minutes after t, wrapping within
// the day the same way civil times do.
func AddMinutes(t civil.Time, m int) civil.Time {
	base := time.Date(2000, time.January, 1, t.Hour, t.Minute, t.Second, t.Nanosecond, time.UTC)
	return civil.TimeOf(base.Add(time.Duration(m) * time.Minute))
}
