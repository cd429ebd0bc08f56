package models

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// Request types

type CreatePollRequest struct {
	AuthorName        string       `json:"author_name"`
	AuthorEmail       string       `json:"author_email"`
	Title             string       `json:"title"`
	Description       string       `json:"description"`
	EventType         EventType    `json:"event_type"`
	DurationMinutes   *int         `json:"duration_minutes,omitempty"`
	Dates             []civil.Date `json:"dates"`
	StartTimes        []civil.Time `json:"start_times"`
	ExpiresAtOverride *civil.Date  `json:"expires_at_override,omitempty"`
}

type OptionMutationRequest struct {
	Date      civil.Date  `json:"date"`
	StartTime *civil.Time `json:"start_time,omitempty"`
}

type SubmitVoteRequest struct {
	ParticipantName string     `json:"participant_name"`
	Votes           []VoteView `json:"votes"`
	Comment         string     `json:"comment,omitempty"`
	ResponseID      *uuid.UUID `json:"response_id,omitempty"`
}

type DraftRequest struct {
	AuthorName        string          `json:"author_name"`
	AuthorEmail       string          `json:"author_email"`
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	EventType         EventType       `json:"event_type"`
	DurationMinutes   *int            `json:"duration_minutes,omitempty"`
	DayOptions        []DayOptionView `json:"day_options"`
	ExpiresAtOverride *civil.Date     `json:"expires_at_override,omitempty"`
}

// Response types

type CreatePollResponse struct {
	PollID             string `json:"poll_id"`
	AdminURL           string `json:"admin_url"`
	VoteURL            string `json:"vote_url"`
	NotificationQueued bool   `json:"notification_queued"`
}

type SubmitVoteResponse struct {
	ResponseID string `json:"response_id"`
}

type CreateDraftResponse struct {
	DraftID string `json:"draft_id"`
}

type PollView struct {
	PollID          string         `json:"poll_id"`
	Title           string         `json:"title"`
	Description     string         `json:"description,omitempty"`
	EventType       EventType      `json:"event_type"`
	DurationMinutes *int           `json:"duration_minutes,omitempty"`
	ExpiresAt       civil.Date     `json:"expires_at"`
	Options         []OptionView   `json:"options"`
	Responses       []ResponseView `json:"responses"`
}

type AdminPollView struct {
	PollView
	AuthorName  string    `json:"author_name"`
	AuthorEmail string    `json:"author_email"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type OptionView struct {
	OptionID  string      `json:"option_id"`
	Date      civil.Date  `json:"date"`
	StartTime *civil.Time `json:"start_time,omitempty"`
	EndTime   *civil.Time `json:"end_time,omitempty"`
}

type ResponseView struct {
	ResponseID      string     `json:"response_id"`
	ParticipantName string     `json:"participant_name"`
	CreatedAt       time.Time  `json:"created_at"`
	Comment         string     `json:"comment,omitempty"`
	Votes           []VoteView `json:"votes"`
}

type VoteView struct {
	OptionID uuid.UUID `json:"option_id"`
	Value    VoteValue `json:"value"`
}

type DraftView struct {
	AuthorName        string          `json:"author_name,omitempty"`
	AuthorEmail       string          `json:"author_email,omitempty"`
	Title             string          `json:"title,omitempty"`
	Description       string          `json:"description,omitempty"`
	EventType         EventType       `json:"event_type"`
	DurationMinutes   *int            `json:"duration_minutes,omitempty"`
	DayOptions        []DayOptionView `json:"day_options"`
	ExpiresAtOverride *civil.Date     `json:"expires_at_override,omitempty"`
}

type DayOptionView struct {
	Day   civil.Date   `json:"day"`
	Times []civil.Time `json:"times"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
