package app

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"

	"github.com/AyushSingh012/Secret-App/internal/config"
	"github.com/AyushSingh012/Secret-App/internal/db"
	"github.com/AyushSingh012/Secret-App/internal/logger"
	"github.com/AyushSingh012/Secret-App/internal/redis"
	"github.com/AyushSingh012/Secret-App/internal/session"
)

type Infra struct {
	DB       *db.DB
	Sessions session.Store

	redis *redis.Client
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	sqlDB, err := sql.Open("postgres", cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := db.RunMigration(ctx, sqlDB); err != nil {
		return nil, err
	}

	logger.Info("database ready")

	infra := &Infra{DB: &db.DB{DB: sqlDB}}

	if cfg.RedisAddr == "" {
		// Single-instance dev mode: sessions live in process memory.
		logger.Warn("no redis configured, using in-memory session store")
		infra.Sessions = session.NewMemoryStore()
		return infra, nil
	}

	redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, err
	}

	logger.Info("redis ready")

	infra.redis = redisClient
	infra.Sessions = session.NewRedisStore(redisClient.Client)
	return infra, nil
}

func (i *Infra) Close() error {
	if i.redis != nil {
		_ = i.redis.Close()
	}
	return i.DB.Close()
}
