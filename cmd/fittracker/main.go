package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/AnthonyAlbero/TCC-fittracker/internal/config"
	"github.com/AnthonyAlbero/TCC-fittracker/internal/db"
	"github.com/AnthonyAlbero/TCC-fittracker/internal/logging"
	"github.com/AnthonyAlbero/TCC-fittracker/internal/service"
	"github.com/AnthonyAlbero/TCC-fittracker/internal/store"
	"github.com/AnthonyAlbero/TCC-fittracker/internal/vision"
	claudevision "github.com/AnthonyAlbero/TCC-fittracker/internal/vision/claude"
	geminivision "github.com/AnthonyAlbero/TCC-fittracker/internal/vision/gemini"
	openaivision "github.com/AnthonyAlbero/TCC-fittracker/internal/vision/openai"
	"github.com/AnthonyAlbero/TCC-fittracker/internal/web"
)

func main() {
	// A missing .env file is fine; config falls back to the environment.
	_ = godotenv.Load()

	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	foodStore := store.NewFoodStore(database)
	exerciseStore := store.NewExerciseStore(database)
	profileStore := store.NewProfileStore(database)
	foodEntryStore := store.NewFoodEntryStore(database)
	workoutEntryStore := store.NewWorkoutEntryStore(database)

	if err := store.Seed(context.Background(), foodStore, exerciseStore, logger); err != nil {
		logger.Error("failed to seed catalogues", "error", err)
		return
	}

	analyzer := newVisionAnalyzer(cfg, logger)
	if analyzer == nil {
		return
	}

	bodyFatService := service.NewBodyFatService(analyzer, logger)
	trackerService := service.NewTrackerService(foodStore, exerciseStore, profileStore, foodEntryStore, workoutEntryStore, logger)
	server := web.NewServer(bodyFatService, trackerService, logger)

	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}

func newVisionAnalyzer(cfg *config.Config, logger *slog.Logger) vision.Analyzer {
	switch cfg.VisionBackend {
	case "claude":
		if cfg.ClaudeAPIKey == "" {
			logger.Error("CLAUDE_API_KEY is required when VISION_BACKEND=claude")
			return nil
		}
		logger.Info("using Claude vision backend", "model", cfg.ClaudeModel)
		return claudevision.NewClaudeAnalyzer(cfg.ClaudeAPIKey, cfg.ClaudeModel)
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			logger.Error("OPENAI_API_KEY is required when VISION_BACKEND=openai")
			return nil
		}
		logger.Info("using OpenAI-compatible vision backend", "model", cfg.OpenAIModel)
		return openaivision.NewOpenAIAnalyzer(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
	default:
		if cfg.GeminiAPIKey == "" {
			logger.Error("GEMINI_API_KEY is required when VISION_BACKEND=gemini")
			return nil
		}
		logger.Info("using Gemini vision backend", "model", cfg.GeminiModel)
		return geminivision.NewGeminiAnalyzer(cfg.GeminiAPIKey, cfg.GeminiModel)
	}
}
