package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"glassblog/internal/blog"
	"glassblog/internal/config"
	"glassblog/internal/session"
	"glassblog/internal/storage"
)

// App wires the application's dependencies: the durable key-value store, the
// session service (restored from persisted state once, here) and the seeded
// content store.
func App(cfg *config.Config, log *slog.Logger) (*storage.SQLiteKV, session.Service, *blog.Store, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.DataPath), 0755); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	kv, err := storage.Open(cfg.DataPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open storage: %w", err)
	}

	sessions := session.NewService(kv, cfg, log)
	sessions.CheckAuth()

	store := blog.NewSeededStore()

	return kv, sessions, store, nil
}
