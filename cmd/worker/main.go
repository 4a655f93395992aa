package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"github.com/mrshahbazdev/Active-Feet/internal/app"
	"github.com/mrshahbazdev/Active-Feet/internal/catalog"
	"github.com/mrshahbazdev/Active-Feet/internal/platform/db"
	"github.com/mrshahbazdev/Active-Feet/jobs"
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

	dbpool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbpool.Close()

	catalogRepo := catalog.NewRepository(dbpool)

	recomputeTask, err := jobs.NewOnHandRecomputeTask(jobs.OnHandRecomputePayload{})
	if err != nil {
		logger.Error("build recompute task", slog.Any("error", err))
		os.Exit(1)
	}

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskOnHandRecompute, Handler: jobs.NewOnHandRecomputeHandler(logger, catalogRepo)},
		},
		Cron: []jobs.CronRegistration{
			// Nightly drift repair for the on-hand cache.
			{Spec: "0 3 * * *", Task: recomputeTask, Options: []asynq.Option{asynq.Queue(jobs.QueueDefault)}},
		},
	})
	if err != nil {
		logger.Error("build worker", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("starting worker", slog.String("redis", cfg.RedisAddr))
	if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("worker stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
