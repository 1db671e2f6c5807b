// Package service wires the record store, query cache, resolver and path
// generator from configuration. Both binaries build their components here.
package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/assetpath"
	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/cache"
	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/config"
	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/observability"
	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/repair"
	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/resolver"
	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/storage"
)

// Service holds the wired components.
type Service struct {
	DB         *sql.DB
	Records    *storage.ConfigurationRepository
	Cache      *resolver.CachedStore // nil when caching is disabled
	Resolver   *resolver.Resolver
	Generator  *assetpath.Generator
	cfg        *config.Config
	logger     *observability.Logger
	cacheClose func() error
}

// New opens the record store and builds every component. The schema is
// created when missing.
func New(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Service, error) {
	db, dialect, err := storage.Open(ctx, cfg.Database.Driver, cfg.DatabaseDSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if dialect == storage.DialectPostgres {
		db.SetMaxOpenConns(cfg.Database.Postgres.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.Postgres.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.Database.Postgres.ConnMaxLifetime)
	}

	if err := storage.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	s := &Service{
		DB:        db,
		Records:   storage.NewConfigurationRepository(db, dialect),
		Generator: assetpath.NewGenerator(cfg.Assets.Root),
		cfg:       cfg,
		logger:    logger,
	}

	var store resolver.RecordStore = s.Records
	if cfg.Cache.Enabled {
		client, err := newCacheClient(ctx, cfg.Cache)
		if err != nil {
			db.Close()
			return nil, err
		}
		if cfg.Cache.Driver != "redis" {
			logger.Warn().Msg("Memory query cache is not invalidated by writes from other processes")
		}
		s.cacheClose = client.Close
		s.Cache = resolver.NewCachedStore(s.Records, client, cfg.Cache.TTL, logger)
		store = s.Cache
	}

	s.Resolver = resolver.New(store, logger, resolver.Config{
		FallbackEnabled: cfg.Resolver.FallbackEnabled,
		QueryTimeout:    cfg.Resolver.QueryTimeout,
	})

	logger.Debug().
		Str("database", cfg.Database.Driver).
		Bool("cache", cfg.Cache.Enabled).
		Str("cache_driver", cfg.Cache.Driver).
		Bool("fallback", cfg.Resolver.FallbackEnabled).
		Msg("Service initialized")

	return s, nil
}

func newCacheClient(ctx context.Context, cfg config.CacheConfig) (cache.Client, error) {
	switch cfg.Driver {
	case "redis":
		client, err := cache.NewRedisClient(ctx, cache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
			Prefix:   cfg.Redis.Prefix,
		})
		if err != nil {
			return nil, fmt.Errorf("connect cache: %w", err)
		}
		return client, nil
	default:
		return cache.NewMemoryClient(cfg.MaxEntries), nil
	}
}

// RepairRunner returns a runner over the record store that invalidates the
// query cache after writes.
func (s *Service) RepairRunner(dryRun bool) *repair.Runner {
	runner := repair.NewRunner(s.Records, s.Generator, s.logger, repair.Config{
		BatchSize:  s.cfg.Repair.BatchSize,
		BatchDelay: s.cfg.Repair.BatchDelay,
		Workers:    s.cfg.Repair.Workers,
		DryRun:     dryRun,
		LocalDir:   s.cfg.Assets.LocalDir,
	})
	if s.Cache != nil {
		runner.WithInvalidator(s.Cache)
	}
	return runner
}

// Ping checks the database connection.
func (s *Service) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// Close releases the cache and database connections.
func (s *Service) Close() error {
	if s.cacheClose != nil {
		_ = s.cacheClose()
	}
	return s.DB.Close()
}
