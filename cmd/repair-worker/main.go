package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/red-stick-digital/brga-backend/internal/profiles"
	"github.com/red-stick-digital/brga-backend/internal/repair"
	"github.com/red-stick-digital/brga-backend/internal/roles"
	"github.com/red-stick-digital/brga-backend/internal/users"
	"github.com/red-stick-digital/brga-backend/pkg/config"
	"github.com/red-stick-digital/brga-backend/pkg/db"
	"github.com/red-stick-digital/brga-backend/pkg/logger"
	"github.com/red-stick-digital/brga-backend/pkg/metrics"
	"github.com/red-stick-digital/brga-backend/pkg/migrate"
	"github.com/red-stick-digital/brga-backend/pkg/redis"
)

const lockKeyFormat = "brga:repair-worker:lock:%s"

func main() {
	logg := logger.New(logger.Options{ServiceName: "repair-worker"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	once := flag.Bool("once", false, "run a single repair cycle and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	cfg.Service.Kind = "repair-worker"

	logg = logger.New(logger.Options{
		ServiceName: "repair-worker",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	metricsCollector := metrics.NewJobMetrics(prometheus.DefaultRegisterer)
	lock, err := repair.NewRedisLock(redisClient, lockKey(cfg.App.Env), 0)
	if err != nil {
		logg.Error(context.Background(), "failed to create repair lock", err)
		os.Exit(1)
	}

	backfillJob, err := repair.NewRoleBackfillJob(repair.RoleBackfillJobParams{
		UserRepo:    users.NewRepository(dbClient.DB()),
		RoleRepo:    roles.NewRepository(dbClient.DB()),
		ProfileRepo: profiles.NewRepository(dbClient.DB()),
		Logger:      logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create role backfill job", err)
		os.Exit(1)
	}

	service, err := repair.NewService(repair.ServiceParams{
		Logger:   logg,
		Registry: repair.NewRegistry(backfillJob),
		Lock:     lock,
		Metrics:  metricsCollector,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create repair service", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = logg.WithFields(ctx, map[string]any{
		"env":         cfg.App.Env,
		"serviceKind": cfg.Service.Kind,
	})
	logg.Info(ctx, "starting repair worker")

	if *once {
		if err := service.RunOnce(ctx); err != nil {
			logg.Error(ctx, "repair cycle failed", err)
			os.Exit(1)
		}
		logg.Info(ctx, "repair cycle complete")
		return
	}

	if err := service.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logg.Error(ctx, "repair worker stopped unexpectedly", err)
		os.Exit(1)
	}

	logg.Info(ctx, "repair worker shutting down gracefully")
}

func lockKey(env string) string {
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf(lockKeyFormat, env)
}
