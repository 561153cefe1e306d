package cli

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"thesaurus/internal/config"
	"thesaurus/internal/database"
	"thesaurus/internal/repository"
	"thesaurus/internal/repository/breaker"
	"thesaurus/internal/repository/sqlstore"
)

// storeOpenTimeout is how long the CLI waits before retrying a tripped store
const storeOpenTimeout = 5 * time.Second

// Session is an open vocabulary database with the settings it was opened with
type Session struct {
	Store  repository.VocabularyStore
	Config *config.Config
	Logger *zap.Logger

	db *sql.DB
}

// Close releases the database and flushes the logger
func (s *Session) Close() error {
	_ = s.Logger.Sync()
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Opener opens a session for a command
type Opener func(flags *Flags) (*Session, error)

// OpenSession reads the environment configuration, applies flag and config
// file overrides and opens the database
func OpenSession(flags *Flags) (*Session, error) {
	logger, err := NewLogger(flags.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg, err := config.Read()
	if err != nil {
		return nil, err
	}
	applyOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	db, err := database.Open(cfg, logger)
	if err != nil {
		return nil, err
	}

	store := breaker.New(
		sqlstore.NewVocabularyStore(db),
		uint32(cfg.Health.MaxFailures),
		storeOpenTimeout,
		logger,
	)

	logger.Debug("Session opened",
		zap.String("driver", cfg.Database.Driver),
	)

	return &Session{
		Store:  store,
		Config: cfg,
		Logger: logger,
		db:     db,
	}, nil
}

// NewLogger returns a development logger when verbose and a warn-level
// production logger otherwise
func NewLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// applyOverrides copies flag, config file and THESAURUS_* values over the
// environment configuration
func applyOverrides(cfg *config.Config) {
	if v := viper.GetString("database.driver"); v != "" {
		cfg.Database.Driver = v
	}
	if v := viper.GetString("database.sqlite_path"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := viper.GetString("reader.word_chars"); v != "" {
		cfg.Reader.WordChars = v
	}
	if v := viper.GetString("reader.foreign"); v != "" {
		cfg.Reader.ForeignLang = v
	}
	if v := viper.GetString("reader.native"); v != "" {
		cfg.Reader.NativeLang = v
	}
}
