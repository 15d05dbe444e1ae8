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

	"pdf-analyzer-client/internal/config"
	"pdf-analyzer-client/internal/handler"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	container := config.NewContainer()
	cfg := container.Config

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Dispatched workflow steps are never cancelled, not even by shutdown.
	stepCtx := context.WithoutCancel(ctx)

	sessionHandler := handler.NewSessionHandler(
		stepCtx,
		container.Controller,
		container.Analyzer,
		container.PDFInspector,
		container.Logger,
		cfg.GetMaxFileSize(),
	)
	analyzerHandler := handler.NewAnalyzerHandler(container.Analyzer, container.Logger)
	requestLogger := handler.NewRequestLogger(container.Logger)

	router := handler.NewRouter(
		sessionHandler,
		analyzerHandler,
		requestLogger.Middleware,
		cfg.GetAllowedOrigins(),
	)

	server := &http.Server{
		Addr:              ":" + cfg.GetServerPort(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		container.Logger.Info("Console listening", "address", server.Addr, "analyzer", cfg.GetAnalyzerBaseURL())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		container.Logger.Info("Shutting down console...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		container.Logger.Error("Console stopped with error", err)
		os.Exit(1)
	}

	container.Controller.Wait()
	container.Logger.Info("Console exited")
}
