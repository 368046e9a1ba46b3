package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"prdgen/db"
	"prdgen/internal/config"
	"prdgen/internal/handler"
	"prdgen/internal/prd"
	"prdgen/internal/repository"
	"prdgen/pkg/llm"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {

	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatalf("error loading settings: %v", err)
	}

	cfg, err := config.Load(settings)
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)})))

	var usageRecorder prd.UsageRecorder
	var usageStore handler.UsageStore

	switch {
	case cfg.DatabaseURL != "":
		err = db.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("error connecting to DB: %v", err)
		}
		defer db.Close()

		repo := repository.NewUsageRepository(db.DB)
		usageRecorder, usageStore = repo, repo
	case cfg.RedisURL != "":
		err = db.ConnectRedis(context.Background(), cfg.RedisURL)
		if err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		defer db.CloseRedis()

		counter := repository.NewUsageCounter(db.Redis)
		usageRecorder, usageStore = counter, counter
	default:
		slog.Info("usage metering disabled")
	}

	client := cfg.NewClient()
	service := prd.NewService(client, llm.ExtractorFor(client.Name()), usageRecorder)

	prdHandler := handler.NewPrdHandler(service)
	healthHandler := handler.NewHealthHandler(usageStore, client.Name())

	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestID(), handler.RequestLogger())

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"X-Request-Id"},
	}))

	r.POST("/generate-prd", prdHandler.GeneratePrd)
	r.GET("/health", healthHandler.GetHealth)
	r.GET("/usage", healthHandler.GetUsage)

	slog.Info("starting server", "port", cfg.Port, "provider", client.Name(), "model", client.Model())

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
