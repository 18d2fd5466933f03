package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"message-relay/internal/config"
	"message-relay/internal/handlers"
	"message-relay/internal/logging"
	"message-relay/internal/router"
	"message-relay/internal/services"
)

func main() {
	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, cfg.Env)
	logger.Info().Str("env", cfg.Env).Msg("environment variables loaded")

	// ──── Step 2: Pick the reply strategy ────
	replier, closeReplier, err := services.NewReplier(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("gemini client initialization failed")
	}
	defer closeReplier()
	logger.Info().
		Bool("fake_mode", cfg.AllowFakeGemini).
		Bool("api_key", cfg.GeminiAPIKey != "").
		Str("replier", fmt.Sprintf("%T", replier)).
		Msg("reply strategy ready")

	// ──── Step 3: Start HTTP Server ────
	chatHandler := handlers.NewChatHandler(replier, logger)
	r := router.New(chatHandler, cfg.AllowedOrigins, logger)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.WriteTimeout(),
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	idle := make(chan struct{})
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info().Msg("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("server shutdown")
		}
		close(idle)
	}()

	logger.Info().
		Str("addr", server.Addr).
		Strs("cors_origins", cfg.AllowedOrigins).
		Msgf("message relay ready on http://localhost:%s", cfg.Port)

	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("server error")
	}
	<-idle
}
