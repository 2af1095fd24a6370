// File: tea/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tea/config"
	"tea/handlers"
	"tea/middleware"
	"tea/routes"
	"tea/services/discovery"
	"tea/services/enrichment"
	ai "tea/services/intelligence"
	"tea/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())

	// Interpreter backend.
	interpCfg := ai.Config{
		Provider: config.AppConfig.InterpreterProvider,
		Model:    config.AppConfig.InterpreterModel,
		APIKey:   config.AppConfig.XAIAPIKey,
		BaseURL:  config.AppConfig.XAIBaseURL,
	}
	if interpCfg.Provider == "gemini" {
		interpCfg.APIKey = config.AppConfig.GeminiAPIKey
	}
	interpreter, err := ai.NewInterpreter(interpCfg, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to build interpreter: %v", err)
	}

	// Enrichment sources and the pipeline service.
	sources := enrichment.DefaultSources(enrichment.Config{
		GooglePlacesAPIKey: config.AppConfig.GooglePlacesAPIKey,
		YelpAPIKey:         config.AppConfig.YelpAPIKey,
		SerpAPIKey:         config.AppConfig.SerpAPIKey,
	})
	discoverySvc := discovery.NewDefaultDiscoveryService(interpreter, sources, discovery.Config{
		Locality:                config.AppConfig.DefaultLocality,
		PerSourceTimeout:        config.AppConfig.PerSourceTimeout(),
		MaxConcurrentCandidates: config.AppConfig.MaxConcurrentCandidates,
		CollapseDuplicateNames:  config.AppConfig.CollapseDuplicateNames,
	}, logger)

	handlerBundle := &routes.HandlerBundle{
		Discovery: handlers.NewDiscoveryHandler(discoverySvc, logger),
	}
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(config.AppConfig.XAIBaseURL)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
