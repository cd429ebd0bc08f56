// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-meet/models"
)

// PollStore persists poll aggregates whole. Save overwrites any previous
// value under the same id; concurrent writers race last-write-wins. A store
// must provide read-your-writes within a single request, nothing stronger.
type PollStore interface {
	Save(poll models.Poll) error
	FindByID(id uuid.UUID) (models.Poll, bool, error)
	CountActive() (int64, error)
}

// DraftStore persists wizard drafts keyed by an externally generated id.
type DraftStore interface {
	Create(draft models.WizardDraft) (uuid.UUID, error)
	Save(id uuid.UUID, draft models.WizardDraft) error
	FindByID(id uuid.UUID) (models.WizardDraft, bool, error)
	Delete(id uuid.UUID) error
}
