// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-meet/models"
)

// SQLPollStore stores each poll as one JSON document row. The upsert syntax
// works on both sqlite and postgres; so do the $1 placeholders.
type SQLPollStore struct {
	db *sql.DB
}

func NewSQLPollStore(db *sql.DB) *SQLPollStore {
	return &SQLPollStore{db: db}
}

func (s *SQLPollStore) Save(poll models.Poll) error {
	payload, err := encodePoll(poll)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO poll (id, payload, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`, poll.ID.String(), string(payload), time.Now())
	if err != nil {
		return fmt.Errorf("failed to save poll: %w", err)
	}
	return nil
}

func (s *SQLPollStore) FindByID(id uuid.UUID) (models.Poll, bool, error) {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM poll WHERE id = $1`, id.String()).Scan(&payload)
	if err == sql.ErrNoRows {
		return models.Poll{}, false, nil
	}
	if err != nil {
		return models.Poll{}, false, fmt.Errorf("failed to query poll: %w", err)
	}

	poll, err := decodePoll([]byte(payload))
	if err != nil {
		return models.Poll{}, false, err
	}
	return poll, true, nil
}

func (s *SQLPollStore) CountActive() (int64, error) {
	var count int64
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM poll`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count polls: %w", err)
	}
	return count, nil
}

// SQLDraftStore stores wizard drafts the same way, one JSON document row
// per draft, written in the grouped day-options shape.
type SQLDraftStore struct {
	db *sql.DB
}

func NewSQLDraftStore(db *sql.DB) *SQLDraftStore {
	return &SQLDraftStore{db: db}
}

func (s *SQLDraftStore) Create(draft models.WizardDraft) (uuid.UUID, error) {
	id := uuid.New()
	if err := s.Save(id, draft); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (s *SQLDraftStore) Save(id uuid.UUID, draft models.WizardDraft) error {
	payload, err := encodeDraft(draft)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO draft (id, payload, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`, id.String(), string(payload), time.Now())
	if err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

func (s *SQLDraftStore) FindByID(id uuid.UUID) (models.WizardDraft, bool, error) {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM draft WHERE id = $1`, id.String()).Scan(&payload)
	if err == sql.ErrNoRows {
		return models.WizardDraft{}, false, nil
	}
	if err != nil {
		return models.WizardDraft{}, false, fmt.Errorf("failed to query draft: %w", err)
	}

	draft, err := decodeDraft([]byte(payload))
	if err != nil {
		return models.WizardDraft{}, false, err
	}
	return draft, true, nil
}

func (s *SQLDraftStore) Delete(id uuid.UUID) error {
	if _, err := s.db.Exec(`DELETE FROM draft WHERE id = $1`, id.String()); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}
