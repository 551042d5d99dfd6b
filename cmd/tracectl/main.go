// Command tracectl reads the traceability log books from the command line.
package main

import (
	"context"
	"fmt"
	"os"

	"traceability-backend/internal/config"
	"traceability-backend/internal/database"
	"traceability-backend/internal/logger"
	"traceability-backend/internal/reminder"
	"traceability-backend/internal/state"
	"traceability-backend/internal/store"
)

func main() {
	if err := newRootCmd(openEnv).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// env is what every subcommand works against.
type env struct {
	app      *state.App
	notifier reminder.Notifier
}

type opener func(ctx context.Context, dsn string, verbose bool) (*env, error)

func openEnv(ctx context.Context, dsn string, verbose bool) (*env, error) {
	cfg := config.Load()
	if dsn == "" {
		dsn = cfg.DatabaseDSN
	}

	log := logger.Discard()
	if verbose {
		log = logger.New(os.Stderr, "debug", cfg.LogFormat)
	}

	db, err := database.Open(dsn, log)
	if err != nil {
		return nil, err
	}

	e := &env{app: state.Load(ctx, store.NewGormStore(db), log)}
	if cfg.NotifyWebhookURL != "" {
		e.notifier = reminder.NewWebhookNotifier(cfg.NotifyWebhookURL)
	}
	return e, nil
}
