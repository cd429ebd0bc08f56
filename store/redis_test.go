// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// setupTestRedis connects to the redis instance named by REDIS_ADDR and
// skips the test when none is configured.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set, skipping redis store tests")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Fatalf("Failed to connect to redis at %s: %v", addr, err)
	}
	t.Cleanup(func() { client.Close() })

	return client
}

func TestRedisPollStore(t *testing.T) {
	client := setupTestRedis(t)
	s := NewRedisPollStore(client)

	poll := samplePoll()
	if err := s.Save(poll); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	t.Cleanup(func() {
		client.Del(context.Background(), "poll:"+poll.ID.String())
	})

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

	count, err := s.CountActive()
	if err != nil {
		t.Fatalf("CountActive() error: %v", err)
	}
	if count < 1 {
		t.Errorf("CountActive() = %d, want at least 1", count)
	}

	if _, ok, _ := s.FindByID(uuid.New()); ok {
		t.Error("Found a poll that was never saved")
	}
}

func TestRedisDraftStore(t *testing.T) {
	client := setupTestRedis(t)
	s := NewRedisDraftStore(client)

	id, err := s.Create(sampleDraft())
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	t.Cleanup(func() {
		client.Del(context.Background(), "draft:"+id.String())
	})

	got, ok, err := s.FindByID(id)
	if err != nil || !ok {
		t.Fatalf("FindByID() ok=%v err=%v", ok, err)
	}
	if got.Title != "Wizard run" {
		t.Errorf("Loaded draft differs: %+v", got)
	}

	if err := s.Delete(id); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, ok, _ := s.FindByID(id); ok {
		t.Error("Draft still found after delete")
	}
}
