// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-meet/models"
)

func TestMemoryPollStore(t *testing.T) {
	s := NewMemoryPollStore()

	poll := samplePoll()
	if err := s.Save(poll); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got, ok, err := s.FindByID(poll.ID)
	if err != nil {
		t.Fatalf("FindByID() error: %v", err)
	}
	if !ok {
		t.Fatal("Saved poll not found")
	}
	if got.Title != poll.Title || got.AdminSecret != poll.AdminSecret {
		t.Errorf("Loaded poll differs: %+v", got)
	}

	// Save under the same id overwrites
	poll.Title = "Renamed"
	if err := s.Save(poll); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	got, _, _ = s.FindByID(poll.ID)
	if got.Title != "Renamed" {
		t.Errorf("Overwrite not applied, title %q", got.Title)
	}

	count, err := s.CountActive()
	if err != nil {
		t.Fatalf("CountActive() error: %v", err)
	}
	if count != 1 {
		t.Errorf("CountActive() = %d, want 1", count)
	}
}

func TestMemoryPollStoreNotFound(t *testing.T) {
	s := NewMemoryPollStore()

	_, ok, err := s.FindByID(uuid.New())
	if err != nil {
		t.Fatalf("FindByID() error: %v", err)
	}
	if ok {
		t.Error("Found a poll that was never saved")
	}
}

func TestMemoryDraftStore(t *testing.T) {
	s := NewMemoryDraftStore()

	draft := models.WizardDraft{
		Title:     "Wizard",
		EventType: models.EventAllDay,
		Dates:     []civil.Date{{Year: 2026, Month: time.February, Day: 1}},
	}

	id, err := s.Create(draft)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if id == uuid.Nil {
		t.Fatal("Create() returned nil id")
	}

	got, ok, err := s.FindByID(id)
	if err != nil || !ok {
		t.Fatalf("FindByID() ok=%v err=%v", ok, err)
	}
	if got.Title != "Wizard" || len(got.Dates) != 1 {
		t.Errorf("Loaded draft differs: %+v", got)
	}

	got.Title = "Changed"
	if err := s.Save(id, got); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	reloaded, _, _ := s.FindByID(id)
	if reloaded.Title != "Changed" {
		t.Errorf("Save not applied, title %q", reloaded.Title)
	}

	if err := s.Delete(id); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, ok, _ := s.FindByID(id); ok {
		t.Error("Draft still found after delete")
	}

	// Deleting again is not an error
	if err := s.Delete(id); err != nil {
		t.Errorf("Second Delete() error: %v", err)
	}
}

func TestMemoryDraftStoreIsolatesCaller(t *testing.T) {
	s := NewMemoryDraftStore()

	draft := models.WizardDraft{
		EventType: models.EventAllDay,
		Dates:     []civil.Date{{Year: 2026, Month: time.February, Day: 1}},
	}

	id, err := s.Create(draft)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	// Mutating the caller's slice must not leak into the store
	draft.Dates[0] = civil.Date{Year: 2030, Month: time.January, Day: 1}

	got, _, _ := s.FindByID(id)
	if got.Dates[0].Year == 2030 {
		t.Error("Stored draft shares backing array with the caller")
	}

	// Nor must mutating a loaded copy
	got.Dates[0] = civil.Date{Year: 2031, Month: time.January, Day: 1}
	again, _, _ := s.FindByID(id)
	if again.Dates[0].Year == 2031 {
		t.Error("Loaded draft shares backing array with the store")
	}
}
