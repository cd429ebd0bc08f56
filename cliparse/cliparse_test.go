// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import "testing"

// clearEnv pins every variable ParseFlags consults so tests do not
// depend on the caller's environment.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "STORAGE_TYPE", "DATABASE_URL",
		"REDIS_ADDR", "REDIS_PASSWORD", "PUBLIC_BASE_URL",
		"SMTP_ADDR", "SMTP_FROM", "SMTP_SUBJECT_PREFIX",
	} {
		t.Setenv(key, "")
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags() error: %v", err)
	}

	if cfg.Port != 3418 {
		t.Errorf("Expected default port 3418, got %d", cfg.Port)
	}
	if cfg.StorageType != StorageMemory {
		t.Errorf("Expected default storage %q, got %q", StorageMemory, cfg.StorageType)
	}
}

func TestParseFlagsExplicit(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{"-p", "9000", "-s", "sqlite", "-d", "meet.db", "-base-url", "https://meet.example.com"})
	if err != nil {
		t.Fatalf("ParseFlags() error: %v", err)
	}

	if cfg.Port != 9000 {
		t.Errorf("Expected port 9000, got %d", cfg.Port)
	}
	if cfg.StorageType != StorageSQLite {
		t.Errorf("Expected sqlite storage, got %q", cfg.StorageType)
	}
	if cfg.DatabaseURL != "meet.db" {
		t.Errorf("Expected database URL meet.db, got %q", cfg.DatabaseURL)
	}
	if cfg.PublicBaseURL != "https://meet.example.com" {
		t.Errorf("Expected base URL, got %q", cfg.PublicBaseURL)
	}
}

func TestParseFlagsEnvFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "4040")
	t.Setenv("STORAGE_TYPE", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/meet")
	t.Setenv("SMTP_ADDR", "mail.example.com:25")
	t.Setenv("SMTP_FROM", "noreply@example.com")
	t.Setenv("SMTP_SUBJECT_PREFIX", "[meet]")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags() error: %v", err)
	}

	if cfg.Port != 4040 {
		t.Errorf("Expected port 4040 from env, got %d", cfg.Port)
	}
	if cfg.StorageType != StoragePostgres {
		t.Errorf("Expected postgres storage from env, got %q", cfg.StorageType)
	}
	if cfg.DatabaseURL != "postgres://localhost/meet" {
		t.Errorf("Unexpected database URL %q", cfg.DatabaseURL)
	}
	if cfg.SMTPAddr != "mail.example.com:25" || cfg.SMTPFrom != "noreply@example.com" {
		t.Errorf("SMTP config not read from env: %+v", cfg)
	}
	if cfg.SMTPSubject != "[meet]" {
		t.Errorf("Expected subject prefix [meet], got %q", cfg.SMTPSubject)
	}
}

func TestParseFlagsFlagOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "4040")

	cfg, err := ParseFlags([]string{"-p", "5050"})
	if err != nil {
		t.Fatalf("ParseFlags() error: %v", err)
	}
	if cfg.Port != 5050 {
		t.Errorf("Flag should win over env, got port %d", cfg.Port)
	}
}

func TestParseFlagsValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"unknown storage type", []string{"-s", "mongodb"}, nil},
		{"sqlite without database url", []string{"-s", "sqlite"}, nil},
		{"postgres without database url", []string{"-s", "postgres"}, nil},
		{"redis without address", []string{"-s", "redis"}, nil},
		{"invalid PORT env", nil, map[string]string{"PORT": "not-a-number"}},
		{"smtp addr without from", []string{"-smtp-addr", "mail.example.com:25"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("Expected an error, got none")
			}
		})
	}
}

func TestParseFlagsRedisFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_PASSWORD", "hunter2")

	cfg, err := ParseFlags([]string{"-s", "redis"})
	if err != nil {
		t.Fatalf("ParseFlags() error: %v", err)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("Expected redis addr from env, got %q", cfg.RedisAddr)
	}
	if cfg.RedisPassword != "hunter2" {
		t.Errorf("Expected redis password from env, got %q", cfg.RedisPassword)
	}
}
