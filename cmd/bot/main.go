package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"thesaurus/internal/config"
	"thesaurus/internal/database"
	"thesaurus/internal/handler"
	"thesaurus/internal/i18n"
	"thesaurus/internal/middleware"
	"thesaurus/internal/repository/breaker"
	"thesaurus/internal/repository/sqlstore"
	"thesaurus/internal/service"
	"thesaurus/internal/tokenizer"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Thesaurus Bot")

	// Load configuration
	cfg, err := config.LoadBot()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully",
		zap.String("driver", cfg.Database.Driver),
	)

	// Connect to database and apply the schema
	db, err := database.Open(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database ready")

	// Initialize repositories
	userRepo := sqlstore.NewUserRepo(db)
	store := breaker.New(
		sqlstore.NewVocabularyStore(db),
		uint32(cfg.Health.MaxFailures),
		cfg.Health.Interval,
		logger,
	)

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.BotPassword)
	settingsService := service.NewSettingsService(userRepo, store, cfg.Reader.ForeignLang, cfg.Reader.NativeLang)
	healthMonitor := service.NewHealthMonitor(store, cfg.Health.Interval, cfg.Health.MaxFailures, logger)
	translator := i18n.NewTranslator(cfg.BotLocale, logger)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			logger.Error("Handler failed", zap.Error(err))
		},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	// Initialize handler
	bot.Use(middleware.AuthMiddleware(authService, translator, logger))
	h := handler.NewHandler(
		bot,
		authService,
		settingsService,
		store,
		tokenizer.New(cfg.Reader.WordChars),
		translator,
		logger,
	)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Watch the vocabulary store in background
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storeDown := make(chan error, 1)
	go func() {
		storeDown <- healthMonitor.Run(ctx)
	}()

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal or a dead store
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	exitCode := 0
	select {
	case <-sigChan:
		logger.Info("Shutdown signal received, stopping bot...")
	case err := <-storeDown:
		logger.Error("Vocabulary store is gone, stopping bot...",
			zap.Error(err),
			zap.Bool("breaker_open", store.Open()),
		)
		exitCode = 1
	}

	// Graceful shutdown
	bot.Stop()
	cancel()

	logger.Info("Bot stopped")
	if exitCode != 0 {
		logger.Sync()
		db.Close()
		os.Exit(exitCode)
	}
}
