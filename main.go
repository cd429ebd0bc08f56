package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/redis/go-redis/v9"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/quickly-meet/cliparse"
	"github.com/danielhkuo/quickly-meet/db"
	"github.com/danielhkuo/quickly-meet/middleware"
	"github.com/danielhkuo/quickly-meet/notify"
	"github.com/danielhkuo/quickly-meet/polls"
	"github.com/danielhkuo/quickly-meet/router"
	"github.com/danielhkuo/quickly-meet/store"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	pollStore, draftStore, err := buildStores(cfg)
	if err != nil {
		slog.Error("storage setup failed", "storage", cfg.StorageType, "error", err)
		os.Exit(1)
	}
	slog.Info("Storage ready", "type", cfg.StorageType)

	var sender notify.Sender = notify.NoopSender{}
	if cfg.SMTPAddr != "" {
		sender = notify.NewSMTPSender(cfg.SMTPAddr, cfg.SMTPFrom, cfg.SMTPSubject, cfg.PublicBaseURL)
	}

	svc := polls.NewService(pollStore, sender)

	// Create router
	mux := router.NewRouter(svc, pollStore, draftStore, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

func buildStores(cfg cliparse.Config) (store.PollStore, store.DraftStore, error) {
	switch cfg.StorageType {
	case cliparse.StorageSQLite, cliparse.StoragePostgres:
		driver := "sqlite"
		if cfg.StorageType == cliparse.StoragePostgres {
			driver = "postgres"
		}
		dbConn, err := sql.Open(driver, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := dbConn.Ping(); err != nil {
			return nil, nil, err
		}
		if err := db.CreateSchema(dbConn); err != nil {
			return nil, nil, err
		}
		return store.NewSQLPollStore(dbConn), store.NewSQLDraftStore(dbConn), nil

	case cliparse.StorageRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			return nil, nil, err
		}
		return store.NewRedisPollStore(rdb), store.NewRedisDraftStore(rdb), nil

	default:
		return store.NewMemoryPollStore(), store.NewMemoryDraftStore(), nil
	}
}
