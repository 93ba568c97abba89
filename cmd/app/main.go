package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"trading-platform-backend/internal/common/config"
	"trading-platform-backend/internal/common/logger"
	"trading-platform-backend/internal/common/validation"
	tierModels "trading-platform-backend/internal/features/tier/models"
	redisPlatform "trading-platform-backend/internal/platform/redis"
	"trading-platform-backend/internal/server"
	"trading-platform-backend/internal/storage"
	"trading-platform-backend/internal/workers"
)

// @title           Trading Platform API
// @version         1.0
// @description     Accounts, transactions, notifications, KYC documents, payment submissions and market quotes.

// @host      localhost:8080
// @BasePath  /api

// @tag.name users
// @tag.description User accounts and balances

// @tag.name transactions
// @tag.description Deposits, withdrawals, profits and bonuses

// @tag.name notifications
// @tag.description User notifications and read state

// @tag.name documents
// @tag.description KYC document verification

// @tag.name payments
// @tag.description Payment submissions with screenshots

// @tag.name market
// @tag.description Market quotes keyed by symbol

// @tag.name tiers
// @tag.description Account tier catalog

func main() {
	// Инициализируем конфигурацию
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Инициализируем логгеры
	logger.Init("trading-platform-backend", cfg.Debug)
	zapLogger, err := logger.NewZap(cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting Trading Platform Backend",
		zap.String("version", "1.0.0"),
		zap.Bool("debug", cfg.Debug),
		zap.String("storage", cfg.Storage.Driver),
	)

	validation.RegisterBindings(tierModels.Names())

	ctx := context.Background()

	// Инициализируем хранилище
	store, err := storage.New(ctx, cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			zapLogger.Error("Failed to close storage", zap.Error(err))
		}
	}()

	services := server.NewServices(store, zapLogger)

	if cfg.Market.Seed {
		if err := services.Market.Seed(ctx); err != nil {
			zapLogger.Fatal("Failed to seed market data", zap.Error(err))
		}
	}

	workerCtx, stopWorkers := context.WithCancel(ctx)
	defer stopWorkers()

	if cfg.Market.FeedEnabled {
		feedClient, err := redisPlatform.NewClient(ctx, cfg)
		if err != nil {
			zapLogger.Fatal("Failed to connect market feed", zap.Error(err))
		}
		defer feedClient.Close()

		stream := redisPlatform.Keyspace(cfg.Redis.KeyPrefix).Key("market", "feed")
		feed := workers.NewMarketFeedWorker(feedClient.Client, services.Market, stream, cfg.Market.FeedConsumer, zapLogger)
		go feed.Start(workerCtx)
	}

	router := server.NewRouter(cfg, store, services, zapLogger)

	zapLogger.Info("Routes configured")

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Запускаем сервер в горутине
	go func() {
		zapLogger.Info("Starting HTTP server", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Ждем сигнала для graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")
	stopWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}
