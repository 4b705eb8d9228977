package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"curcunapanel/internal/catalog"
	"curcunapanel/internal/chaos"
	"curcunapanel/internal/config"
	"curcunapanel/internal/gemini"
	"curcunapanel/internal/generation"
	"curcunapanel/internal/logging"
	"curcunapanel/internal/metrics"
	"curcunapanel/internal/server"
	"curcunapanel/internal/weather"
)

func main() {
	ctx := context.Background()

	// A missing .env is fine; the environment may already be set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Failed to read .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.IsDev())
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	metrics.Init(prometheus.DefaultRegisterer)

	cat, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		logger.Fatal("Failed to load fallback catalog", zap.String("path", cfg.CatalogFile), zap.Error(err))
	}
	dice := chaos.NewDice(cfg.RandomSeed)

	// Without a key every generative feature runs on its fallback.
	var gen generation.Generator
	if cfg.GenerationEnabled() {
		client, err := gemini.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Fatal("Failed to create Gemini client", zap.Error(err))
		}
		defer client.Close()
		gen = client
		logger.Info("Text generation enabled", zap.String("model", cfg.GeminiModel))
	} else {
		logger.Warn("GEMINI_API_KEY not set, generative features use fallbacks")
	}
	if !cfg.WeatherEnabled() {
		logger.Warn("OPENWEATHER_API_KEY not set, weather lookups return mock data")
	}

	srv := server.New(cfg, logger)
	srv.RegisterRoutes(server.Deps{
		Generation: generation.New(gen, cat, dice, logger),
		Weather:    weather.New(cfg.OpenWeatherAPIKey, cfg.OpenWeatherBaseURL, dice),
		Catalog:    cat,
		Dice:       dice,
	})

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			logger.Error("Server error", zap.Error(err))
		}
	}()

	logger.Info("Server started", zap.String("addr", cfg.ServerAddr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited")
}
