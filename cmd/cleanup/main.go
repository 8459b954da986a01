// Command cleanup removes media files no longer referenced by any
// occurrence. It is intended to be invoked by an external cron job, not
// as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/wordlens/wordlens-backend/internal/adapter/media"
	"github.com/wordlens/wordlens-backend/internal/adapter/postgres"
	"github.com/wordlens/wordlens-backend/internal/adapter/postgres/occurrence"
	"github.com/wordlens/wordlens-backend/internal/app"
	"github.com/wordlens/wordlens-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	store, err := media.NewStore(cfg.Media.Root)
	if err != nil {
		logger.Error("open media store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	referenced, err := occurrence.New(pool).ListMediaPaths(ctx)
	if err != nil {
		logger.Error("list referenced media", slog.String("error", err.Error()))
		os.Exit(1)
	}

	removed, err := store.RemoveOrphans(referenced)
	if err != nil {
		logger.Error("remove orphaned media", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("media cleanup completed",
		slog.Int("removed", removed),
		slog.Int("referenced", len(referenced)),
	)
}
