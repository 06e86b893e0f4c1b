package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/agrisense/crop-advisory/internal/advisory"
	"github.com/agrisense/crop-advisory/internal/api"
	"github.com/agrisense/crop-advisory/internal/chat"
	"github.com/agrisense/crop-advisory/internal/config"
	"github.com/agrisense/crop-advisory/internal/store"
	"github.com/agrisense/crop-advisory/pkg/logger"
)

func main() {
	// Load configuration
	config.LoadConfig()

	// Setup logging
	if err := logger.Init(config.AppConfig.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Initialize the advisory engine and chat assistant
	engine := advisory.New()
	chatRouter := chat.NewRouter()
	sessions := chat.NewSessionStore(chatRouter)

	// Initialize feedback store
	feedbackStore := store.NewFeedbackStore(config.AppConfig.FeedbackPath)

	// Initialize API Handler and Router
	apiHandler := api.NewAPIHandler(engine, sessions, feedbackStore)
	router := api.NewRouter(apiHandler)

	// Start HTTP server
	serverAddr := fmt.Sprintf(":%s", config.AppConfig.HTTPPort)

	srv := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown handling
	go func() {
		logger.Info("starting server", zap.String("addr", serverAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("could not listen", zap.String("addr", serverAddr), zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	// Give active connections time to finish.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exiting gracefully")
}
