// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func sampleEmail() PollCreatedEmail {
	return PollCreatedEmail{
		PollID:      uuid.MustParse("b4f9c0aa-5b7e-4d2f-9c3e-1a2b3c4d5e6f"),
		AdminSecret: "aB3xK9mQ2pLr",
		AuthorName:  "Alice",
		AuthorEmail: "alice@example.com",
		Title:       "Team dinner",
	}
}

func TestRenderPollCreated(t *testing.T) {
	sender := NewSMTPSender("mail.example.com:25", "noreply@example.com", "", "https://meet.example.com")

	subject, body := sender.render(sampleEmail())

	if subject != "Poll created: Team dinner" {
		t.Errorf("Unexpected subject %q", subject)
	}
	if !strings.Contains(body, "Hello Alice") {
		t.Error("Body missing greeting")
	}
	if !strings.Contains(body, "https://meet.example.com/poll/b4f9c0aa-5b7e-4d2f-9c3e-1a2b3c4d5e6f-aB3xK9mQ2pLr") {
		t.Errorf("Body missing admin URL:\n%s", body)
	}
	if !strings.Contains(body, "https://meet.example.com/poll/b4f9c0aa-5b7e-4d2f-9c3e-1a2b3c4d5e6f\n") {
		t.Errorf("Body missing vote URL:\n%s", body)
	}
}

func TestRenderSubjectPrefix(t *testing.T) {
	sender := NewSMTPSender("mail.example.com:25", "noreply@example.com", "[meet]", "")

	subject, _ := sender.render(sampleEmail())

	if subject != "[meet] Poll created: Team dinner" {
		t.Errorf("Unexpected subject %q", subject)
	}
}

func TestRenderWithoutBaseURL(t *testing.T) {
	// No public base URL configured: links degrade to absolute paths
	sender := NewSMTPSender("mail.example.com:25", "noreply@example.com", "", "")

	_, body := sender.render(sampleEmail())

	if !strings.Contains(body, "\n/poll/b4f9c0aa-5b7e-4d2f-9c3e-1a2b3c4d5e6f-aB3xK9mQ2pLr") {
		t.Errorf("Expected path-only admin URL:\n%s", body)
	}
}

func TestNewSMTPSenderTrimsBaseURL(t *testing.T) {
	sender := NewSMTPSender("mail.example.com:25", "noreply@example.com", "", "https://meet.example.com/ ")

	if sender.publicBaseURL != "https://meet.example.com" {
		t.Errorf("Base URL not normalized: %q", sender.publicBaseURL)
	}
}

func TestNoopSender(t *testing.T) {
	if (NoopSender{}).SendPollCreated(sampleEmail()) {
		t.Error("NoopSender must report the notification as not queued")
	}
}
