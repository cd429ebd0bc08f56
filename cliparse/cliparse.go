package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Storage backend names accepted by -s / STORAGE_TYPE.
const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

type Config struct {
	Port          int
	StorageType   string
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	PublicBaseURL string
	SMTPAddr      string
	SMTPFrom      string
	SMTPSubject   string
}

// ParseFlags validates flags, falling back to environment variables.
// A .env file in the working directory is loaded first when present.
func ParseFlags(args []string) (Config, error) {
	_ = godotenv.Load()

	var cfg Config

	fs := flag.NewFlagSet("quickly-meet", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.StorageType, "s", "", "Storage backend (memory, sqlite, postgres or redis)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or sqlite file path")
	fs.StringVar(&cfg.RedisAddr, "redis-addr", "", "Redis address (host:port)")
	fs.StringVar(&cfg.PublicBaseURL, "base-url", "", "Public base URL used in links")
	fs.StringVar(&cfg.SMTPAddr, "smtp-addr", "", "SMTP server address; empty disables email")
	fs.StringVar(&cfg.SMTPFrom, "smtp-from", "", "From address for notification email")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3418 // default
		}
	}

	if cfg.StorageType == "" {
		cfg.StorageType = os.Getenv("STORAGE_TYPE")
		if cfg.StorageType == "" {
			cfg.StorageType = StorageMemory
		}
	}
	switch cfg.StorageType {
	case StorageMemory, StorageSQLite, StoragePostgres, StorageRedis:
	default:
		return Config{}, errors.New("unknown storage type: " + cfg.StorageType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" && (cfg.StorageType == StorageSQLite || cfg.StorageType == StoragePostgres) {
		return Config{}, errors.New("database URL required for " + cfg.StorageType + " storage (use -d or DATABASE_URL env)")
	}

	if cfg.RedisAddr == "" {
		cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	}
	if cfg.RedisAddr == "" && cfg.StorageType == StorageRedis {
		return Config{}, errors.New("redis address required for redis storage (use -redis-addr or REDIS_ADDR env)")
	}
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")

	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = os.Getenv("PUBLIC_BASE_URL")
	}

	if cfg.SMTPAddr == "" {
		cfg.SMTPAddr = os.Getenv("SMTP_ADDR")
	}
	if cfg.SMTPFrom == "" {
		cfg.SMTPFrom = os.Getenv("SMTP_FROM")
	}
	if cfg.SMTPAddr != "" && cfg.SMTPFrom == "" {
		return Config{}, errors.New("SMTP_FROM required when SMTP_ADDR is set")
	}
	cfg.SMTPSubject = os.Getenv("SMTP_SUBJECT_PREFIX")

	return cfg, nil
}
