// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-meet/models"
)

func intPtr(v int) *int { return &v }

func timePtr(t civil.Time) *civil.Time { return &t }

func samplePoll() models.Poll {
	created := time.Date(2026, time.January, 10, 9, 30, 0, 0, time.UTC)
	return models.Poll{
		ID:              uuid.New(),
		AdminSecret:     "aB3xK9mQ2pLr",
		Title:           "Sprint planning",
		Description:     "Pick a slot",
		AuthorName:      "Alice",
		AuthorEmail:     "alice@example.com",
		EventType:       models.EventIntraday,
		DurationMinutes: intPtr(60),
		Options: []models.PollOption{
			{
				ID:        uuid.New(),
				Date:      civil.Date{Year: 2026, Month: time.February, Day: 1},
				StartTime: timePtr(civil.Time{Hour: 10, Minute: 50}),
				EndTime:   timePtr(civil.Time{Hour: 11, Minute: 50}),
			},
			{
				ID:   uuid.New(),
				Date: civil.Date{Year: 2026, Month: time.February, Day: 2},
			},
		},
		Responses: []models.PollResponse{
			{
				ID:              uuid.New(),
				ParticipantName: "Bob",
				CreatedAt:       created.Add(time.Hour),
				Comment:         "mornings preferred",
				Votes: []models.PollVote{
					{OptionID: uuid.New(), Value: models.VoteYes},
					{OptionID: uuid.New(), Value: models.VoteIfNeeded},
				},
			},
		},
		CreatedAt: created,
		UpdatedAt: created,
		ExpiresAt: civil.Date{Year: 2026, Month: time.March, Day: 2},
	}
}

func TestPollCodecRoundTrip(t *testing.T) {
	original := samplePoll()

	payload, err := encodePoll(original)
	if err != nil {
		t.Fatalf("encodePoll() error: %v", err)
	}

	decoded, err := decodePoll(payload)
	if err != nil {
		t.Fatalf("decodePoll() error: %v", err)
	}

	if !reflect.DeepEqual(decoded, original) {
		t.Errorf("Round trip changed the poll:\n got %+v\nwant %+v", decoded, original)
	}
}

func TestPollDocumentShape(t *testing.T) {
	poll := samplePoll()

	payload, err := encodePoll(poll)
	if err != nil {
		t.Fatalf("encodePoll() error: %v", err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(payload, &doc); err != nil {
		t.Fatalf("Payload is not valid JSON: %v", err)
	}

	if doc["schemaVersion"] != "1" {
		t.Errorf("schemaVersion = %v, want \"1\"", doc["schemaVersion"])
	}

	// The admin secret lives under access.adminToken, never top-level
	access, ok := doc["access"].(map[string]interface{})
	if !ok {
		t.Fatal("Missing access object")
	}
	if access["adminToken"] != poll.AdminSecret {
		t.Errorf("access.adminToken = %v, want %q", access["adminToken"], poll.AdminSecret)
	}
	if _, exists := doc["adminSecret"]; exists {
		t.Error("Admin secret leaked to a top-level field")
	}

	options, ok := doc["options"].(map[string]interface{})
	if !ok {
		t.Fatal("Missing options object")
	}
	if options["eventType"] != string(models.EventIntraday) {
		t.Errorf("options.eventType = %v", options["eventType"])
	}
}

func TestDecodePollBadPayload(t *testing.T) {
	if _, err := decodePoll([]byte("{not json")); err == nil {
		t.Error("Expected an error for malformed payload")
	}
}

func sampleDraft() models.WizardDraft {
	return models.WizardDraft{
		Title:     "Wizard run",
		EventType: models.EventIntraday,
		Dates: []civil.Date{
			{Year: 2026, Month: time.February, Day: 1},
			{Year: 2026, Month: time.February, Day: 1},
			{Year: 2026, Month: time.February, Day: 2},
		},
		StartTimes: []civil.Time{
			{Hour: 10, Minute: 50},
			{Hour: 13, Minute: 50},
			{Hour: 10, Minute: 50},
		},
	}
}

func TestDraftCodecWritesGroupedShape(t *testing.T) {
	draft := sampleDraft()

	payload, err := encodeDraft(draft)
	if err != nil {
		t.Fatalf("encodeDraft() error: %v", err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(payload, &doc); err != nil {
		t.Fatalf("Payload is not valid JSON: %v", err)
	}

	groups, ok := doc["dayOptions"].([]interface{})
	if !ok {
		t.Fatal("Missing dayOptions array")
	}
	if len(groups) != 2 {
		t.Fatalf("Expected 2 day groups, got %d", len(groups))
	}
	if _, exists := doc["dates"]; exists {
		t.Error("New documents must not carry the flat dates list")
	}

	decoded, err := decodeDraft(payload)
	if err != nil {
		t.Fatalf("decodeDraft() error: %v", err)
	}
	if !reflect.DeepEqual(decoded.Dates, draft.Dates) {
		t.Errorf("Dates after round trip = %v, want %v", decoded.Dates, draft.Dates)
	}
	if !reflect.DeepEqual(decoded.StartTimes, draft.StartTimes) {
		t.Errorf("StartTimes after round trip = %v, want %v", decoded.StartTimes, draft.StartTimes)
	}
}

func TestDecodeDraftLegacyFlatShape(t *testing.T) {
	payload := []byte(`{
		"title": "Old draft",
		"eventType": "INTRADAY",
		"dates": ["2026-02-01", "2026-02-02"],
		"startTimes": ["10:50:00", "14:00:00"]
	}`)

	draft, err := decodeDraft(payload)
	if err != nil {
		t.Fatalf("decodeDraft() error: %v", err)
	}

	wantDates := []civil.Date{
		{Year: 2026, Month: time.February, Day: 1},
		{Year: 2026, Month: time.February, Day: 2},
	}
	if !reflect.DeepEqual(draft.Dates, wantDates) {
		t.Errorf("Dates = %v, want %v", draft.Dates, wantDates)
	}
	if len(draft.StartTimes) != 2 || draft.StartTimes[0] != (civil.Time{Hour: 10, Minute: 50}) {
		t.Errorf("StartTimes = %v", draft.StartTimes)
	}
}

func TestDecodeDraftDefaults(t *testing.T) {
	// Absent event type means all-day, absent lists mean empty
	draft, err := decodeDraft([]byte(`{"title": "Bare"}`))
	if err != nil {
		t.Fatalf("decodeDraft() error: %v", err)
	}

	if draft.EventType != models.EventAllDay {
		t.Errorf("EventType = %q, want ALL_DAY default", draft.EventType)
	}
	if draft.Dates == nil || len(draft.Dates) != 0 {
		t.Errorf("Dates = %v, want empty non-nil", draft.Dates)
	}
	if draft.StartTimes == nil || len(draft.StartTimes) != 0 {
		t.Errorf("StartTimes = %v, want empty non-nil", draft.StartTimes)
	}
}
