package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"college-hub/internal/api"
	"college-hub/internal/api/handlers"
	"college-hub/internal/repository"
	"college-hub/internal/service"
	"college-hub/pkg/auth"
	"college-hub/pkg/config"
	"college-hub/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting college-hub service")

	// Load the immutable startup data
	kb, err := service.LoadKnowledgeBase(filepath.Join(cfg.Store.DataDir, cfg.Store.ChatbotKBFile))
	if err != nil {
		appLogger.Fatal("Failed to load knowledge base", zap.Error(err))
	}
	collegeInfo, err := service.LoadCollegeInfo(filepath.Join(cfg.Store.DataDir, cfg.Store.CollegeInfoFile))
	if err != nil {
		appLogger.Fatal("Failed to load college info", zap.Error(err))
	}

	// Initialize repositories
	recordRepo := repository.NewRecordRepository(cfg.Store.DataDir, appLogger)
	contentRepo := repository.NewContentRepository(cfg.Store.DataDir, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration)

	// Initialize services
	authService, err := service.NewAuthService(cfg.Admin, jwtManager, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize auth service", zap.Error(err))
	}

	kbService := service.NewKBService(kb, appLogger)
	fetcher := service.NewWebsiteFetcher(cfg.Site.WebsiteURL, cfg.Site.FetchTimeout, cfg.Site.MaxChars)
	snapshotService := service.NewSnapshotService(fetcher, cfg.Site.CacheTTL, appLogger)

	// The generator stays nil without an API key; the chat endpoint then
	// reports the capability as disabled.
	var generator service.Generator
	if cfg.Gemini.APIKey != "" {
		collegeName, _ := collegeInfo["college_name"].(string)
		gemini, err := service.NewGeminiGenerator(context.Background(), &cfg.Gemini, collegeName, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize Gemini client", zap.Error(err))
		}
		generator = gemini
	} else {
		appLogger.Warn("GEMINI_API_KEY not set, chat generation disabled")
	}

	chatService := service.NewChatService(kbService, snapshotService, generator, collegeInfo, appLogger)
	exportService := service.NewExportService(recordRepo, appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	chatHandler := handlers.NewChatHandler(chatService, appLogger)
	contentHandler := handlers.NewContentHandler(contentRepo, appLogger)
	formHandler := handlers.NewFormHandler(recordRepo, exportService, appLogger)

	// Setup router
	app := api.SetupRouter(authHandler, chatHandler, contentHandler, formHandler, jwtManager, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
