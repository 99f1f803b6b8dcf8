package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/atlas-backoffice/atlas-backoffice/internal/addresses"
	"github.com/atlas-backoffice/atlas-backoffice/internal/app"
	"github.com/atlas-backoffice/atlas-backoffice/internal/categories"
	"github.com/atlas-backoffice/atlas-backoffice/internal/customers"
	"github.com/atlas-backoffice/atlas-backoffice/internal/departments"
	"github.com/atlas-backoffice/atlas-backoffice/internal/departments/rpc"
	"github.com/atlas-backoffice/atlas-backoffice/internal/groups"
	"github.com/atlas-backoffice/atlas-backoffice/internal/observability"
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

	if err := db.EnsureSchema(ctx, pool); err != nil {
		logger.Error("ensure schema", slog.Any("error", err))
		os.Exit(1)
	}

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("redis ping", slog.Any("error", err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	jobClient, err := jobs.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	if err != nil {
		logger.Error("connect job queue", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := jobClient.Close(); err != nil {
			logger.Warn("job client close", slog.Any("error", err))
		}
	}()

	// Product mutations must not fail when the queue is down; the nightly
	// cron recount catches up on anything dropped here.
	recount := func(ctx context.Context, categoryID int64) {
		if _, err := jobClient.EnqueueCategoryRecount(ctx, categoryID); err != nil {
			logger.Warn("enqueue category recount",
				slog.Int64("category_id", categoryID), slog.Any("error", err))
		}
	}

	departmentService := departments.NewService(departments.NewSQLRepository(pool))
	customerService := customers.NewService(customers.NewSQLRepository(pool))
	addressService := addresses.NewService(addresses.NewSQLRepository(pool))
	groupService := groups.NewService(groups.NewSQLRepository(pool))
	productService := products.NewService(products.NewSQLRepository(pool), recount)
	categoryCache := cache.NewCache(redisClient, cfg.CacheTTL)
	categoryService := categories.NewService(categories.NewSQLRepository(pool), categoryCache)

	inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	defer func() {
		if err := inspector.Close(); err != nil {
			logger.Warn("inspector close", slog.Any("error", err))
		}
	}()

	metrics := observability.NewMetrics()

	router := app.NewRouter(app.RouterParams{
		Logger:            logger,
		Config:            cfg,
		DepartmentHandler: departments.NewHandler(logger, departmentService),
		CustomerHandler:   customers.NewHandler(logger, customerService),
		AddressHandler:    addresses.NewHandler(logger, addressService),
		GroupHandler:      groups.NewHandler(logger, groupService),
		ProductHandler:    products.NewHandler(logger, productService),
		CategoryHandler:   categories.NewHandler(logger, categoryService),
		JobHandler:        jobs.NewHandler(inspector, logger),
		Metrics:           metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	grpcServer := grpc.NewServer()
	rpc.Register(grpcServer, rpc.NewServer(logger, departmentService))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		lis, err := net.Listen("tcp", cfg.GRPCAddr)
		if err != nil {
			return err
		}
		logger.Info("starting grpc server", slog.String("addr", cfg.GRPCAddr))
		return grpcServer.Serve(lis)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		grpcServer.GracefulStop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("run", slog.Any("error", err))
		os.Exit(1)
	}
}
