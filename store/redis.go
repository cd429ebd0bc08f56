// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/danielhkuo/quickly-meet/models"
)

// RedisPollStore keeps each poll as one JSON document under poll:<id>.
// Documents never expire; poll expiry is a display concern, not a TTL.
type RedisPollStore struct {
	rdb *redis.Client
}

func NewRedisPollStore(rdb *redis.Client) *RedisPollStore {
	return &RedisPollStore{rdb: rdb}
}

func pollKey(id uuid.UUID) string {
	return "poll:" + id.String()
}

func (s *RedisPollStore) Save(poll models.Poll) error {
	payload, err := encodePoll(poll)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(context.Background(), pollKey(poll.ID), payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to save poll: %w", err)
	}
	return nil
}

func (s *RedisPollStore) FindByID(id uuid.UUID) (models.Poll, bool, error) {
	payload, err := s.rdb.Get(context.Background(), pollKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Poll{}, false, nil
	}
	if err != nil {
		return models.Poll{}, false, fmt.Errorf("failed to fetch poll: %w", err)
	}

	poll, err := decodePoll(payload)
	if err != nil {
		return models.Poll{}, false, err
	}
	return poll, true, nil
}

func (s *RedisPollStore) CountActive() (int64, error) {
	ctx := context.Background()
	var count int64
	var cursor uint64
	for {
		keys, next, err := s.rdb.Scan(ctx, cursor, "poll:*", 100).Result()
		if err != nil {
			return 0, fmt.Errorf("failed to count polls: %w", err)
		}
		count += int64(len(keys))
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return count, nil
}

// RedisDraftStore keeps wizard drafts under draft:<id>.
type RedisDraftStore struct {
	rdb *redis.Client
}

func NewRedisDraftStore(rdb *redis.Client) *RedisDraftStore {
	return &RedisDraftStore{rdb: rdb}
}

func draftKey(id uuid.UUID) string {
	return "draft:" + id.String()
}

func (s *RedisDraftStore) Create(draft models.WizardDraft) (uuid.UUID, error) {
	id := uuid.New()
	if err := s.Save(id, draft); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (s *RedisDraftStore) Save(id uuid.UUID, draft models.WizardDraft) error {
	payload, err := encodeDraft(draft)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(context.Background(), draftKey(id), payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

func (s *RedisDraftStore) FindByID(id uuid.UUID) (models.WizardDraft, bool, error) {
	payload, err := s.rdb.Get(context.Background(), draftKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.WizardDraft{}, false, nil
	}
	if err != nil {
		return models.WizardDraft{}, false, fmt.Errorf("failed to fetch draft: %w", err)
	}

	draft, err := decodeDraft(payload)
	if err != nil {
		return models.WizardDraft{}, false, err
	}
	return draft, true, nil
}

func (s *RedisDraftStore) Delete(id uuid.UUID) error {
	if err := s.rdb.Del(context.Background(), draftKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}
