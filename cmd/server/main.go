package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"supportflow/internal/adapter/api"
	"supportflow/internal/adapter/client"
	"supportflow/internal/config"
	"supportflow/internal/logger"
	"supportflow/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zl.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A missing credential yields client.Unavailable, never an error.
	inference, err := client.NewRemoteInference(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("failed to init inference client", zap.Error(err))
	}

	orchestrator := usecase.NewOrchestrator(inference, usecase.NewCannedResponder(), zl)
	metrics := api.NewMetrics()
	handler := api.NewSupportHandler(orchestrator, usecase.NewKeywordSentiment(), metrics, cfg.AppVersion)

	// Initialize API Layer (Delivery Layer)
	app := fiber.New(fiber.Config{
		AppName:      "SupportFlow",
		ErrorHandler: api.ErrorHandler(zl),
	})
	api.SetupRouter(app, handler, metrics, api.RouterConfig{
		FrontendDir: cfg.FrontendDir,
		CORSOrigins: cfg.CORSOrigins,
		AccessLog:   true,
	})

	go func() {
		<-ctx.Done()
		zl.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			zl.Error("shutdown failed", zap.Error(err))
		}
	}()

	zl.Info("SupportFlow running",
		zap.String("addr", cfg.ListenAddr()),
		zap.Bool("remote_inference", inference.Available()),
		zap.String("frontend_dir", cfg.FrontendDir),
	)
	if err := app.Listen(cfg.ListenAddr()); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
