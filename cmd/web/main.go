package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/safar/go-inventory/internal/config"
	"github.com/safar/go-inventory/internal/database"
	"github.com/safar/go-inventory/internal/store"
	"github.com/safar/go-inventory/internal/web"
)

func main() {
	log := newLogger(config.LogConfig{Level: "info", Format: "json"})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	log = newLogger(cfg.Log)

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}
	defer db.Close()

	log.Info().
		Str("host", cfg.Database.Host).
		Str("database", cfg.Database.Name).
		Msg("connected to database")

	// A missing table guarantees later failures, so a schema setup error
	// aborts startup.
	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatal().Err(err).Msg("run schema migrations")
	}

	st := store.New(db)
	handlers := web.NewHandlers(st, db)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      web.NewRouter(log, handlers),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Info().Str("port", cfg.Server.Port).Msg("server starting")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server error")
	}
}

func newLogger(cfg config.LogConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var out = os.Stdout
	logger := zerolog.New(out)
	if cfg.Format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen})
	}

	return logger.Level(level).With().
		Timestamp().
		Str("service", "inventory-web").
		Logger()
}
