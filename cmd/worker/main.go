package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/atlas-backoffice/atlas-backoffice/internal/app"
	"github.com/atlas-backoffice/atlas-backoffice/internal/categories"
	jobmetrics "github.com/atlas-backoffice/atlas-backoffice/internal/jobs"
	"github.com/atlas-backoffice/atlas-backoffice/internal/platform/cache"
	"github.com/atlas-backoffice/atlas-backoffice/internal/platform/db"
	"github.com/atlas-backoffice/atlas-backoffice/internal/products"
	"github.com/atlas-backoffice/atlas-backoffice/jobs"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("redis ping", slog.Any("error", err))
	}

	categoryCache := cache.NewCache(redisClient, cfg.CacheTTL)
	categoryService := categories.NewService(categories.NewSQLRepository(pool), categoryCache)
	productRepo := products.NewSQLRepository(pool)
	recounter := jobs.NewRecounter(categoryService, productRepo, jobmetrics.NewMetrics(nil), logger)

	recountAll, err := jobs.NewCategoryRecountTask(0)
	if err != nil {
		logger.Error("build recount task", slog.Any("error", err))
		os.Exit(1)
	}

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Recounter: recounter,
		Cron: []jobs.CronRegistration{
			{Spec: "0 3 * * *", Task: recountAll, Options: []asynq.Option{asynq.MaxRetry(3)}},
		},
	})
	if err != nil {
		logger.Error("init worker", slog.Any("error", err))
		os.Exit(1)
	}

	if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("worker run", slog.Any("error", err))
		os.Exit(1)
	}
}
