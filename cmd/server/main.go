package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/davletovm/quizmaster-bot/internal/api"
	"github.com/davletovm/quizmaster-bot/internal/config"
	"github.com/davletovm/quizmaster-bot/internal/generator"
	"github.com/davletovm/quizmaster-bot/internal/logger"
	"github.com/davletovm/quizmaster-bot/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.ValidateServer(); err != nil {
		log.Fatal(err)
	}

	logg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gen := generator.New(cfg.AI, logg)
	quizHandler := api.NewQuizHandler(gen, logg)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router.Setup(quizHandler, cfg.Server.AllowedOrigins),
	}

	go func() {
		logg.Info("quiz API listening",
			zap.String("port", cfg.Server.Port),
			zap.String("model", cfg.AI.Model),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logg.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logg.Error("server shutdown", zap.Error(err))
	}
}
