package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hx450652229/cd0037-API-Development-and-Documentation-project/internal/app"
	"github.com/hx450652229/cd0037-API-Development-and-Documentation-project/internal/config"
	"github.com/hx450652229/cd0037-API-Development-and-Documentation-project/internal/database"
	"github.com/hx450652229/cd0037-API-Development-and-Documentation-project/pkg/logger"

	_ "github.com/hx450652229/cd0037-API-Development-and-Documentation-project/docs"

	"go.uber.org/zap"
)

// @title           Trivia API
// @version         1.0
// @description     REST API serving trivia questions, categories and quiz rounds
// @host            localhost:8080
// @BasePath        /

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger.Init(cfg.LogPath, cfg.LogLevel)
	defer logger.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Log.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.AutoMigrate(db); err != nil {
		logger.Log.Fatal("failed to migrate database", zap.Error(err))
	}
	if err := database.SeedCategories(db); err != nil {
		logger.Log.Fatal("failed to seed categories", zap.Error(err))
	}

	r := app.NewRouter(cfg, db)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		logger.Log.Info("server starting", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal("server forced to shutdown", zap.Error(err))
	}
	logger.Log.Info("server exited")
}
