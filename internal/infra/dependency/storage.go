package dependency

import (
	"fmt"
	"log/slog"

	"github.com/eternal-wealth/toolkit/config"
	"github.com/eternal-wealth/toolkit/internal/application/adapter"
	"github.com/eternal-wealth/toolkit/internal/infra/cache"
	"github.com/eternal-wealth/toolkit/internal/infra/db"
	"github.com/eternal-wealth/toolkit/internal/integration/persistence"
	"github.com/eternal-wealth/toolkit/internal/integration/persistence/model"
)

// Storage is the session repository selected by configuration together with
// the function that releases its connections.
type Storage struct {
	Backend    string
	Repository adapter.SessionRepository
	Close      func() error
}

// NewStorage opens the configured session backend.
func NewStorage(cfg *config.Config) (*Storage, error) {
	switch cfg.Session.Backend {
	case config.BackendMemory:
		return &Storage{
			Backend:    config.BackendMemory,
			Repository: persistence.NewMemorySessionRepository(cfg.Session.TTL),
			Close:      func() error { return nil },
		}, nil

	case config.BackendRedis:
		client, err := cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return &Storage{
			Backend:    config.BackendRedis,
			Repository: persistence.NewRedisSessionRepository(client, cfg.Redis.KeyPrefix, cfg.Session.TTL),
			Close:      client.Close,
		}, nil

	case config.BackendSQLite:
		database, err := db.NewSQLiteConnection(&cfg.SQLite)
		if err != nil {
			return nil, err
		}
		if err := database.AutoMigrate(&model.SessionModel{}); err != nil {
			_ = database.Close()
			return nil, fmt.Errorf("failed to migrate session table: %w", err)
		}
		slog.Info("Database migrations completed successfully")

		return &Storage{
			Backend:    config.BackendSQLite,
			Repository: persistence.NewSQLiteSessionRepository(database.DB(), cfg.Session.TTL),
			Close:      database.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
}
