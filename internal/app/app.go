// Package app wires configuration, storage, services, and the HTTP
// transport into a running application.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wordlens/wordlens-backend/internal/adapter/media"
	"github.com/wordlens/wordlens-backend/internal/adapter/postgres"
	folderrepo "github.com/wordlens/wordlens-backend/internal/adapter/postgres/folder"
	occurrencerepo "github.com/wordlens/wordlens-backend/internal/adapter/postgres/occurrence"
	reviewlogrepo "github.com/wordlens/wordlens-backend/internal/adapter/postgres/reviewlog"
	termrepo "github.com/wordlens/wordlens-backend/internal/adapter/postgres/term"
	"github.com/wordlens/wordlens-backend/internal/config"
	"github.com/wordlens/wordlens-backend/internal/enrich"
	"github.com/wordlens/wordlens-backend/internal/pos"
	"github.com/wordlens/wordlens-backend/internal/service/capture"
	foldersvc "github.com/wordlens/wordlens-backend/internal/service/folder"
	"github.com/wordlens/wordlens-backend/internal/service/study"
	"github.com/wordlens/wordlens-backend/internal/service/vocab"
	"github.com/wordlens/wordlens-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects
// to the database, runs migrations, assembles the services, and serves
// HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("source_language", cfg.Languages.Source),
		slog.String("target_language", cfg.Languages.Target),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	terms := termrepo.New(pool)
	occurrences := occurrencerepo.New(pool)
	folders := folderrepo.New(pool)
	reviewLogs := reviewlogrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	folderService := foldersvc.NewService(logger, folders)
	if err := folderService.Bootstrap(ctx); err != nil {
		return fmt.Errorf("bootstrap folders: %w", err)
	}

	vocabService := vocab.NewService(logger, terms, occurrences, folders, txm)

	loc, err := cfg.Review.Location()
	if err != nil {
		return fmt.Errorf("resolve review timezone: %w", err)
	}
	scheduler := study.NewScheduler(loc)
	studyService := study.NewService(logger, terms, reviewLogs, txm, scheduler, cfg.Review.QueueLimit)

	mediaStore, err := media.NewStore(cfg.Media.Root)
	if err != nil {
		return fmt.Errorf("init media store: %w", err)
	}

	guessers, err := buildGuessers(cfg.Languages, logger)
	if err != nil {
		return fmt.Errorf("init taggers: %w", err)
	}

	var captureService *capture.Service
	if cfg.Enrichment.Enabled() {
		captureService = capture.NewService(logger, vocabService, guessers,
			enrich.NewClient(cfg.Enrichment), mediaStore, cfg.Languages)
	} else {
		logger.Warn("enrichment disabled: no API key configured")
		captureService = capture.NewService(logger, vocabService, guessers,
			nil, mediaStore, cfg.Languages)
	}

	router := rest.NewRouter(rest.Handlers{
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
		Capture: rest.NewCaptureHandler(captureService, logger),
		Vocab:   rest.NewVocabHandler(vocabService, logger),
		Study:   rest.NewStudyHandler(studyService, logger),
		Folders: rest.NewFolderHandler(folderService, logger),
		Media:   rest.NewMediaHandler(mediaStore, logger),
	}, logger, cfg.CORS)

	server := rest.NewServer(cfg.Server, router, logger)
	return server.Run(ctx)
}

// buildGuessers assembles the per-language part-of-speech guessers.
// A source language without a tagger gets no entry; the capture service
// falls back to "other" for those.
func buildGuessers(langs config.LanguagesConfig, logger *slog.Logger) (map[string]capture.PosGuesser, error) {
	guessers := make(map[string]capture.PosGuesser)

	switch langs.Source {
	case "en":
		tagger, err := pos.NewEnglishTagger()
		if err != nil {
			return nil, fmt.Errorf("english tagger: %w", err)
		}
		guessers["en"] = pos.NewGuesser(tagger)
	case "ja":
		tagger, err := pos.NewJapaneseTagger()
		if err != nil {
			return nil, fmt.Errorf("japanese tagger: %w", err)
		}
		guessers["ja"] = pos.NewGuesser(tagger)
	default:
		logger.Warn("no tagger for source language, words fall back to 'other'",
			slog.String("language", langs.Source))
	}

	return guessers, nil
}
