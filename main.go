package main

import (
	"carpetstore/internal/config"
	"carpetstore/internal/logger"
	"carpetstore/internal/repositories"
	"carpetstore/internal/services"
	"carpetstore/pkg/rabbitmq"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Server.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	// --- Database ---
	db, err := repositories.OpenDatabase(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		zlog.Fatal("failed to open database", zap.Error(err))
	}
	if err := repositories.AutoMigrate(db); err != nil {
		zlog.Fatal("failed to migrate database", zap.Error(err))
	}

	// --- Stock alerts ---
	var alerts services.Publisher
	if cfg.RabbitMQ.Enabled() {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{
			URL:    cfg.RabbitMQ.URL,
			Queues: []string{services.StockAlertQueue},
		}, zlog.Named("rabbitmq"))
		if err != nil {
			zlog.Fatal("failed to initialize RabbitMQ client", zap.Error(err))
		}
		defer mqClient.Close()

		if err := mqClient.Consume(services.StockAlertQueue, services.StockAlertHandler(zlog.Named("stock"))); err != nil {
			zlog.Error("failed to start stock alert consumer", zap.Error(err))
		}
		alerts = mqClient
	} else {
		zlog.Info("RABBITMQ_URL not set, stock alerts disabled")
	}

	app, err := NewApp(Deps{
		DB:             db,
		Alerts:         alerts,
		Log:            zlog,
		DefaultCulture: cfg.DefaultCulture,
		RequestLog:     true,
	})
	if err != nil {
		zlog.Fatal("failed to build application", zap.Error(err))
	}

	// --- Start HTTP Server ---
	zlog.Info("starting server", zap.String("port", cfg.Server.Port), zap.String("env", cfg.Server.Env))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.Server.Port); err != nil {
			zlog.Fatal("server failed to start", zap.Error(err))
		}
	}()

	<-quit
	zlog.Info("shutting down server")

	if err := app.Shutdown(); err != nil {
		zlog.Error("error during fiber shutdown", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	zlog.Info("server gracefully stopped")
}
