// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-meet/cliparse"
	"github.com/danielhkuo/quickly-meet/models"
	"github.com/danielhkuo/quickly-meet/notify"
	"github.com/danielhkuo/quickly-meet/polls"
	"github.com/danielhkuo/quickly-meet/store"
)

// RecordingSender captures poll-created notifications instead of mailing
// them. Result controls the queued flag the service reports back.
type RecordingSender struct {
	Result bool
	Sent   []notify.PollCreatedEmail
}

func (s *RecordingSender) SendPollCreated(email notify.PollCreatedEmail) bool {
	s.Sent = append(s.Sent, email)
	return s.Result
}

// NewService builds a poll service over fresh in-memory stores
func NewService(t *testing.T) (*polls.Service, *store.MemoryPollStore, *RecordingSender) {
	t.Helper()

	pollStore := store.NewMemoryPollStore()
	sender := &RecordingSender{Result: true}
	return polls.NewService(pollStore, sender), pollStore, sender
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3418,
		StorageType:   cliparse.StorageMemory,
		PublicBaseURL: "http://localhost:3418",
	}
}

// MustDate parses a YYYY-MM-DD date or fails the test
func MustDate(t *testing.T, s string) civil.Date {
	t.Helper()
	date, err := civil.ParseDate(s)
	if err != nil {
		t.Fatalf("Failed to parse date %q: %v", s, err)
	}
	return date
}

// MustTime parses a HH:MM:SS time or fails the test
func MustTime(t *testing.T, s string) civil.Time {
	t.Helper()
	tm, err := civil.ParseTime(s)
	if err != nil {
		t.Fatalf("Failed to parse time %q: %v", s, err)
	}
	return tm
}

// CreateTestPoll creates a poll through the service and returns its ID and
// admin secret
func CreateTestPoll(t *testing.T, svc *polls.Service, eventType models.EventType, dates []civil.Date, startTimes []civil.Time) (uuid.UUID, string) {
	t.Helper()

	result, err := svc.Create(polls.CreateCommand{
		AuthorName:  "Alice",
		AuthorEmail: "alice@example.com",
		Title:       "Test Poll",
		EventType:   eventType,
		Dates:       dates,
		StartTimes:  startTimes,
	})
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	return result.PollID, result.AdminSecret
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
