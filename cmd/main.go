package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"products_api/config"
	"products_api/internal/clients"
	"products_api/internal/delivery"
	"products_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.Info("Starting Products API...")

	cfg, err := config.LoadConfig(logger)
	if err != nil {
		logger.Fatalf("FATAL: %v", err)
	}

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
		logger.Warnf("Invalid LOG_LEVEL '%s', using default: %s", cfg.LogLevel, logLevel.String())
	}
	logger.SetLevel(logLevel)
	gin.SetMode(cfg.GinMode)

	// --- Dependency Injection ---
	productClient := clients.NewProductHTTPClient(cfg.ProductsAPIURL, cfg.UpstreamTimeout, logger)
	logger.Infof("Product API client initialized for target: %s", cfg.ProductsAPIURL)

	productUseCase := usecase.NewProductUseCase(productClient, logger)
	productHandler := delivery.NewProductHandler(productUseCase, logger)
	router := delivery.NewRouter(productHandler, logger)
	logger.Info("Routes registered.")

	srv := &http.Server{
		Addr:              cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.UpstreamTimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Infof("Products API listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	s := <-sigc
	logger.Infof("Received %s, shutting down", s)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server shutdown error: %v", err)
	}
	logger.Info("Products API stopped.")
}
