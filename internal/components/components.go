package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Arora962/NagarikMitra/internal/api"
	"github.com/Arora962/NagarikMitra/internal/config"
	"github.com/Arora962/NagarikMitra/internal/redis"
	"github.com/Arora962/NagarikMitra/internal/service"
	"github.com/Arora962/NagarikMitra/internal/storage"
	"github.com/Arora962/NagarikMitra/internal/storage/badger"
	"github.com/Arora962/NagarikMitra/internal/storage/postgres"
	"github.com/Arora962/NagarikMitra/internal/storage/sqlite"
	"github.com/Arora962/NagarikMitra/pkg/logger"
)

const redisKeyPrefix = "nagarik:"

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Store      *service.ReportStore
	KV         storage.KV
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	c := &Components{logger: logger}

	logger.Info("Initializing storage", slog.String("driver", cfg.Storage.Driver))
	if err := c.openKV(ctx, cfg); err != nil {
		logger.Error("Failed to init storage", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init %s storage: %w", cfg.Storage.Driver, err)
	}

	repo := storage.NewReportRepository(c.KV, cfg.Storage.Key, logger)
	c.Store = service.NewReportStore(repo, logger)
	c.Store.Initialize(ctx)

	nearbySvc := service.NewNearbyService(c.Store, logger, 1.0)
	statsSvc := service.NewStatsService(c.Store)

	srv := service.NewService(c.Store, c.Store, nearbySvc, statsSvc)

	c.HttpServer = api.NewServer(ctx, cfg, logger, srv)
	logger.Info("Initialized server")

	return c, nil
}

func (c *Components) openKV(ctx context.Context, cfg *config.Config) error {
	switch cfg.Storage.Driver {
	case config.DriverBadger:
		bcfg := badger.DefaultConfig(cfg.Storage.BadgerPath)
		if cfg.Storage.BadgerInMemory {
			bcfg = badger.InMemoryConfig()
		}
		bcfg.GCInterval = cfg.Storage.BadgerGC
		bcfg.Logger = c.logger
		kv, err := badger.Open(bcfg)
		if err != nil {
			return err
		}
		c.KV = kv

	case config.DriverSQLite:
		kv, err := sqlite.Open(cfg.Storage.SQLitePath)
		if err != nil {
			return err
		}
		c.KV = kv

	case config.DriverPostgres:
		pg, err := postgres.NewPostgres(ctx, cfg, c.logger)
		if err != nil {
			return err
		}
		c.Postgres = pg
		c.KV = pg.KV

	case config.DriverRedis:
		r, err := redis.NewRedis(ctx, cfg, c.logger)
		if err != nil {
			return err
		}
		c.Redis = r
		c.KV = redis.NewKV(r, redisKeyPrefix)

	default:
		return fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
	return nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Component shutdown started")

	if c.KV != nil {
		if err := c.KV.Close(); err != nil {
			c.logger.Error("Storage close failed", slog.String("err", err.Error()))
		}
	}
	if c.Postgres != nil {
		c.Postgres.Pool.Close()
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
