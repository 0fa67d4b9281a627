package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/xaenox/campus-chatbot/internal/chat"
	"github.com/xaenox/campus-chatbot/internal/generator"
	"github.com/xaenox/campus-chatbot/internal/server"
	"github.com/xaenox/campus-chatbot/internal/storage"
	"github.com/xaenox/campus-chatbot/pkg/config"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Load .env if present, then configuration
	godotenv.Load()
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err), zap.String("path", "config.yaml"))
	}

	// Initialize storage
	store, err := newStorage(cfg.Database, logger)
	if err != nil {
		logger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer store.Close()

	// Initialize the optional generation capability. No API key means the
	// external fallback stage is simply skipped.
	var gen generator.Generator
	if cfg.OpenAI.APIKey != "" {
		logger.Info("External fallback enabled", zap.String("model", cfg.OpenAI.Model))
		gen = generator.NewOpenAIGenerator(
			cfg.OpenAI.APIKey,
			cfg.OpenAI.Model,
			cfg.OpenAI.MaxTokens,
			cfg.OpenAI.Temperature,
			logger,
		)
	}

	service := chat.NewService(store, gen,
		time.Duration(cfg.Chat.GeneratorTimeoutSeconds)*time.Second, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(service, store, cfg.Server.Address, logger)
	if err := srv.Start(ctx); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}

func newStorage(cfg config.DatabaseConfig, logger *zap.Logger) (storage.Storage, error) {
	switch cfg.Driver {
	case "memory":
		logger.Info("Using in-memory storage")
		return storage.NewSeededMemoryStorage(), nil
	case "postgres":
		logger.Info("Using PostgreSQL storage")
		return storage.NewPostgresStorage(storage.DatabaseConfig{
			Driver:   cfg.Driver,
			Host:     cfg.Host,
			Port:     cfg.Port,
			User:     cfg.User,
			Password: cfg.Password,
			DBName:   cfg.DBName,
			SSLMode:  cfg.SSLMode,
		}, logger)
	default:
		logger.Info("Using SQLite storage", zap.String("path", cfg.Path))
		_, statErr := os.Stat(cfg.Path)
		store, err := storage.NewSQLiteStorage(cfg.Path, logger)
		if err != nil {
			return nil, err
		}
		// First run: create the file and load the sample dataset, so the
		// chatbot answers something out of the box.
		if os.IsNotExist(statErr) {
			if err := store.Reset(context.Background()); err != nil {
				store.Close()
				return nil, err
			}
		}
		return store, nil
	}
}
