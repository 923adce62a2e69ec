package main

import (
	"fmt"

	"flashcards/internal/config"
	"flashcards/internal/repository"
	"flashcards/internal/repository/jsonfile"
	"flashcards/internal/repository/sqlstore"
	"flashcards/internal/service"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app holds what every command shares
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	cards  *service.FlashcardService
	close  func() error
}

// overrides are command-line values that win over the environment
type overrides struct {
	filePath string
	driver   string
}

func (a *app) init(o overrides) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if o.filePath != "" {
		cfg.Storage.FilePath = o.filePath
	}
	if o.driver != "" {
		cfg.Storage.Driver = o.driver
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	repo, closeRepo, err := openRepository(cfg, logger)
	if err != nil {
		logger.Error("Failed to open storage", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
		return err
	}
	a.close = closeRepo

	a.cards = service.NewFlashcardService(repo, logger)
	a.cards.Load()

	return nil
}

func (a *app) shutdown() {
	if a.close != nil {
		if err := a.close(); err != nil {
			a.logger.Warn("Failed to close storage", zap.Error(err))
		}
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// newLogger builds a production logger at the given level
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

// openRepository picks the storage backend named by the config
func openRepository(cfg *config.Config, logger *zap.Logger) (repository.FlashcardRepository, func() error, error) {
	if cfg.Storage.Driver == config.DriverJSON {
		logger.Info("Using JSON storage", zap.String("file", cfg.Storage.FilePath))
		return jsonfile.NewRepo(cfg.Storage.FilePath), nil, nil
	}

	db, err := sqlstore.Open(cfg.Storage.Driver, cfg.DataSource(), logger)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Database connection established", zap.String("driver", cfg.Storage.Driver))

	if err := sqlstore.Migrate(db, cfg.Storage.Driver, cfg.Storage.MigrationsPath, logger); err != nil {
		db.Close()
		return nil, nil, err
	}

	return sqlstore.NewRepo(db), db.Close, nil
}
