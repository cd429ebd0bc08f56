// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"sync"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-meet/models"
)

// MemoryPollStore keeps polls in a process-local map. Suitable for tests and
// single-instance deployments without durability requirements.
type MemoryPollStore struct {
	mu    sync.RWMutex
	polls map[uuid.UUID]models.Poll
}

func NewMemoryPollStore() *MemoryPollStore {
	return &MemoryPollStore{polls: make(map[uuid.UUID]models.Poll)}
}

func (s *MemoryPollStore) Save(poll models.Poll) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.polls[poll.ID] = poll
	return nil
}

func (s *MemoryPollStore) FindByID(id uuid.UUID) (models.Poll, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	poll, ok := s.polls[id]
	return poll, ok, nil
}

func (s *MemoryPollStore) CountActive() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.polls)), nil
}

// MemoryDraftStore keeps wizard drafts in a process-local map. Drafts are
// copied on the way in and out so callers can keep mutating their own value.
type MemoryDraftStore struct {
	mu     sync.RWMutex
	drafts map[uuid.UUID]models.WizardDraft
}

func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{drafts: make(map[uuid.UUID]models.WizardDraft)}
}

func (s *MemoryDraftStore) Create(draft models.WizardDraft) (uuid.UUID, error) {
	id := uuid.New()
	if err := s.Save(id, draft); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (s *MemoryDraftStore) Save(id uuid.UUID, draft models.WizardDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[id] = cloneDraft(draft)
	return nil
}

func (s *MemoryDraftStore) FindByID(id uuid.UUID) (models.WizardDraft, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	draft, ok := s.drafts[id]
	if !ok {
		return models.WizardDraft{}, false, nil
	}
	return cloneDraft(draft), true, nil
}

func (s *MemoryDraftStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
	return nil
}

func cloneDraft(draft models.WizardDraft) models.WizardDraft {
	clone := draft
	clone.Dates = append([]civil.Date{}, draft.Dates...)
	clone.StartTimes = append([]civil.Time{}, draft.StartTimes...)
	return clone
}
