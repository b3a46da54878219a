package app

import (
	"context"
	"errors"

	"github.com/Amadavid/alx-backend-user-data/internal/config"
	"github.com/Amadavid/alx-backend-user-data/internal/db"
	"github.com/Amadavid/alx-backend-user-data/internal/logger"
	"github.com/Amadavid/alx-backend-user-data/internal/redis"
	"github.com/Amadavid/alx-backend-user-data/internal/session"
	"github.com/Amadavid/alx-backend-user-data/internal/user"
)

// Infra owns the process-wide collaborators: the session store, the user
// repository and the connections behind them.
type Infra struct {
	DB       *db.DB
	Redis    *redis.Client
	Sessions session.Store
	Users    user.Repository
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	infra := &Infra{}

	if cfg.DatabaseDSN != "" {
		conn, err := db.Open(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		if err := db.RunMigration(ctx, conn.DB); err != nil {
			_ = conn.Close()
			return nil, err
		}
		infra.DB = conn
		infra.Users = user.NewPostgresRepository(conn)
		logger.Info("database ready", nil)
	} else {
		infra.Users = user.NewMemoryRepository()
		logger.Warn("DATABASE_DSN not set, users are kept in memory", nil)
	}

	switch cfg.SessionStore {
	case "redis":
		client, err := redis.New(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			_ = infra.Close()
			return nil, err
		}
		infra.Redis = client
		infra.Sessions = session.NewRedisStore(client.Client, cfg.SessionDuration)
		logger.Info("redis ready", map[string]any{"addr": cfg.RedisAddr})
	default:
		infra.Sessions = session.NewMemoryStore()
	}

	return infra, nil
}

// Close releases the connections opened by setupInfra.
func (i *Infra) Close() error {
	var errs []error
	if i.Redis != nil {
		errs = append(errs, i.Redis.Close())
	}
	if i.DB != nil {
		errs = append(errs, i.DB.Close())
	}
	return errors.Join(errs...)
}
