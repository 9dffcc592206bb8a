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

	"github.com/gin-gonic/gin"
	"github.com/stwalsh4118/faasdoc/internal/composer"
	"github.com/stwalsh4118/faasdoc/internal/config"
	"github.com/stwalsh4118/faasdoc/internal/database"
	"github.com/stwalsh4118/faasdoc/internal/format"
	"github.com/stwalsh4118/faasdoc/internal/handlers"
	"github.com/stwalsh4118/faasdoc/internal/logger"
	"github.com/stwalsh4118/faasdoc/internal/middleware"
	"github.com/stwalsh4118/faasdoc/internal/repository"
	"github.com/stwalsh4118/faasdoc/internal/services"
)

const (
	shutdownTimeout = 30 * time.Second
	maxBodyBytes    = 8 << 20
)

func main() {
	// Load configuration from .env and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Server.Env, logger.WithLevel(cfg.Server.LogLevel))
	log.Info("Starting faasdoc API", map[string]interface{}{
		"version":      handlers.APIVersion,
		"environment":  cfg.Server.Env,
		"port":         cfg.Server.Port,
		"record_store": cfg.Database.Enabled,
	})

	// The record store is optional; payload endpoints work without it
	ctx := context.Background()
	var (
		repo  repository.FaasRepository
		store handlers.Pinger
	)
	if cfg.Database.Enabled {
		db, err := database.NewPostgresPool(ctx, cfg.Database)
		if err != nil {
			log.Fatal("Failed to connect to record store", err, map[string]interface{}{
				"host": cfg.Database.Host,
				"port": cfg.Database.Port,
				"name": cfg.Database.Name,
			})
		}
		defer db.Close()

		if err := db.EnsureSchema(ctx); err != nil {
			log.Fatal("Failed to prepare record store schema", err, nil)
		}

		log.Info("Record store connection established", map[string]interface{}{
			"host":     cfg.Database.Host,
			"port":     cfg.Database.Port,
			"database": cfg.Database.Name,
			"pool_min": cfg.Database.PoolMin,
			"pool_max": cfg.Database.PoolMax,
		})

		repo = repository.NewFaasRepository(db)
		store = db
	}

	// Composition layers
	formatter := format.New(format.Options{
		Locale:       cfg.Document.Locale,
		CurrencyWord: cfg.Document.CurrencyWord,
	})
	cp := composer.New(formatter, composer.Options{LGUName: cfg.Document.LGUName})
	documentService := services.NewDocumentService(repo, cp, services.BatchLimits{
		MaxRecords:  cfg.Batch.MaxRecords,
		Concurrency: cfg.Batch.Concurrency,
	}, log)

	// Setup Gin router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware in order: RequestID -> Logger -> Recovery -> CORS -> body limit
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.CORS.Origins))
	router.Use(middleware.MaxBodyBytes(maxBodyBytes))

	healthHandler := handlers.NewHealthHandler(store, cfg.Server.Env, handlers.ServiceInfo{
		Locale:          cfg.Document.Locale,
		LGUName:         cfg.Document.LGUName,
		Variants:        []string{"faas", "tax_declaration"},
		Formats:         []string{"json", "yaml"},
		BatchMaxRecords: cfg.Batch.MaxRecords,
	})
	documentHandler := handlers.NewDocumentHandler(documentService)
	handlers.RegisterRoutes(router, healthHandler, documentHandler)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server listening", map[string]interface{}{
			"port": cfg.Server.Port,
			"addr": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", err, nil)
		}
	}()

	// Wait for interrupt signal (SIGINT or SIGTERM)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", err, map[string]interface{}{
			"timeout": shutdownTimeout.String(),
		})
	}

	log.Info("Server exited", nil)
}
