package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"traceability-backend/internal/config"
	"traceability-backend/internal/database"
	"traceability-backend/internal/logger"
	"traceability-backend/internal/reminder"
	"traceability-backend/internal/server"
	"traceability-backend/internal/state"
	"traceability-backend/internal/store"
)

func main() {
	cfg := config.Load()
	log := logger.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	cfg.Warn(log)

	db, err := database.Open(cfg.DatabaseDSN, log)
	if err != nil {
		log.Error("database unavailable", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := state.Load(ctx, store.NewGormStore(db), log)

	var notifier reminder.Notifier
	if cfg.NotifyWebhookURL != "" {
		notifier = reminder.NewWebhookNotifier(cfg.NotifyWebhookURL)
	}
	checker := reminder.NewChecker(app, notifier)

	sched, err := checker.Schedule(cfg.ReminderSchedule)
	if err != nil {
		log.Error("invalid REMINDER_SCHEDULE", slog.Any("error", err))
		os.Exit(1)
	}
	sched.Start()
	defer sched.Stop()

	srv := server.New(app, checker, server.Options{
		CORSOrigins:   cfg.CORSOrigins,
		PhotoMaxBytes: cfg.PhotoMaxBytes,
		Metrics:       cfg.MetricsEnabled,
	})

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		if err := srv.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Warn("shutdown", slog.Any("error", err))
		}
	}()

	log.Info("server listening", slog.String("port", cfg.HTTPPort))
	if err := srv.Listen(":" + cfg.HTTPPort); err != nil {
		log.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
