// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import "github.com/google/uuid"

// PollCreatedEmail carries everything the poll-created message needs.
type PollCreatedEmail struct {
	PollID      uuid.UUID
	AdminSecret string
	AuthorName  string
	AuthorEmail string
	Title       string
}

// Sender delivers notifications. SendPollCreated reports whether the message
// was handed off; it never returns an error, because a failed notification
// must not fail the operation that triggered it.
type Sender interface {
	SendPollCreated(email PollCreatedEmail) bool
}

// NoopSender drops every notification. Used when no SMTP server is
// configured.
type NoopSender struct{}

func (NoopSender) SendPollCreated(PollCreatedEmail) bool {
	return false
}
