package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"docbiz/internal/config"
	"docbiz/internal/extractor/gemini"
	"docbiz/internal/handler"
	"docbiz/internal/metrics"
	"docbiz/internal/repository/sqlite"
	"docbiz/internal/router"
	"docbiz/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := sqlite.NewDB(&cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	stateRepo := sqlite.NewStateRepo(db)

	// Initialize services
	m := metrics.New()
	intakeSvc := service.NewIntakeService(&cfg.Intake)
	storeSvc := service.NewStoreService(stateRepo)
	settingsSvc := service.NewSettingsService(stateRepo, cfg.Gemini.APIKey)
	extractorClient := gemini.NewClient(&cfg.Gemini)
	processSvc := service.NewProcessService(intakeSvc, extractorClient, storeSvc, settingsSvc, m)
	exportSvc := service.NewExportService(storeSvc)

	// Restore the persisted collection before serving requests.
	if err := storeSvc.Load(context.Background()); err != nil {
		return fmt.Errorf("failed to restore document store: %w", err)
	}

	// Initialize handlers
	extractH := handler.NewExtractHandler(processSvc)
	documentH := handler.NewDocumentHandler(storeSvc)
	exportH := handler.NewExportHandler(exportSvc)
	settingsH := handler.NewSettingsHandler(settingsSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg.CORS.AllowedOrigins, m, extractH, documentH, exportH, settingsH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
