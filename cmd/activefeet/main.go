package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mrshahbazdev/Active-Feet/internal/app"
	"github.com/mrshahbazdev/Active-Feet/internal/auth"
	"github.com/mrshahbazdev/Active-Feet/internal/bom"
	"github.com/mrshahbazdev/Active-Feet/internal/catalog"
	"github.com/mrshahbazdev/Active-Feet/internal/dashboard"
	"github.com/mrshahbazdev/Active-Feet/internal/dispatch"
	"github.com/mrshahbazdev/Active-Feet/internal/payroll"
	"github.com/mrshahbazdev/Active-Feet/internal/platform/db"
	"github.com/mrshahbazdev/Active-Feet/internal/production"
	"github.com/mrshahbazdev/Active-Feet/internal/shared"
	"github.com/mrshahbazdev/Active-Feet/internal/stock"
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

	if err := db.Migrate(ctx, dbpool); err != nil {
		logger.Error("migrate schema", slog.Any("error", err))
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

	sessionManager := shared.NewSessionManager(redisClient, "activefeet_session", cfg.SessionTTL, cfg.IsProduction())

	authRepo := auth.NewRepository(dbpool)
	authService := auth.NewService(authRepo)
	authHandler := auth.NewHandler(logger, authService, sessionManager)

	catalogRepo := catalog.NewRepository(dbpool)
	catalogService := catalog.NewService(catalogRepo)
	catalogHandler := catalog.NewHandler(logger, catalogService)

	stockRepo := stock.NewRepository(dbpool)
	stockService := stock.NewService(stockRepo)
	stockHandler := stock.NewHandler(logger, stockService)

	productionRepo := production.NewRepository(dbpool)
	productionService := production.NewService(productionRepo)
	productionHandler := production.NewHandler(logger, productionService)

	dispatchRepo := dispatch.NewRepository(dbpool)
	dispatchService := dispatch.NewService(dispatchRepo, dispatch.ServiceConfig{
		AllowNegativeStock: cfg.AllowNegativeStock,
	})
	dispatchHandler := dispatch.NewHandler(logger, dispatchService)

	bomRepo := bom.NewRepository(dbpool)
	bomService := bom.NewService(bomRepo)
	bomHandler := bom.NewHandler(logger, bomService)

	payrollRepo := payroll.NewRepository(dbpool)
	payrollService := payroll.NewService(payrollRepo)
	payrollHandler := payroll.NewHandler(logger, payrollService)

	dashboardService := dashboard.NewService(stockService, productionService, dispatchService)
	dashboardHandler := dashboard.NewHandler(logger, dashboardService)

	router := app.NewRouter(app.RouterParams{
		Logger:            logger,
		Config:            cfg,
		SessionManager:    sessionManager,
		AuthHandler:       authHandler,
		CatalogHandler:    catalogHandler,
		StockHandler:      stockHandler,
		ProductionHandler: productionHandler,
		DispatchHandler:   dispatchHandler,
		BOMHandler:        bomHandler,
		PayrollHandler:    payrollHandler,
		DashboardHandler:  dashboardHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
