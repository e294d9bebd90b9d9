package app

import (
	"fmt"

	"hrmail_backend/internal/config"
	"hrmail_backend/internal/email"
	"hrmail_backend/internal/handlers"
	"hrmail_backend/internal/logger"
	"hrmail_backend/internal/middleware"
	"hrmail_backend/internal/routes"
	"hrmail_backend/internal/services"
	"hrmail_backend/internal/storage"
	"hrmail_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	ginRouter := SetupRouter(cfg)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the production dependency graph and returns the engine.
func SetupRouter(cfg *config.Config) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:     cfg.Storage.Type,
		BasePath: cfg.Storage.BasePath,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type, "base_path", cfg.Storage.BasePath)

	provider := newEmailProvider(cfg)

	return SetupRouterWith(cfg, storageInstance, provider)
}

// SetupRouterWith wires handlers over explicit dependencies. Tests inject
// relay doubles and scratch storage through here.
func SetupRouterWith(cfg *config.Config, store storage.Storage, provider email.Provider) *gin.Engine {
	mailService := services.NewMailService(provider, store)

	v := validator.New()
	base := handlers.NewBaseHandler(v)
	appHandlers := &handlers.AppHandlers{
		MailHandler: handlers.NewMailHandler(base, mailService, cfg.Upload.MaxSize),
	}

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

// newEmailProvider builds the relay client once at process start; the same
// instance is shared by all in-flight requests.
func newEmailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" || cfg.Email.SMTPUsername == "" {
		logger.Warn("SMTP relay is not configured; outgoing mail will be logged, not delivered")
		return &email.DryRunProvider{Log: logger.GetLogger()}
	}

	provider := email.NewSMTPProvider(&email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
	if err := provider.Validate(); err != nil {
		logger.Fatal("Invalid SMTP configuration", "error", err)
	}
	logger.Info("SMTP relay configured", "host", cfg.Email.SMTPHost, "port", cfg.Email.SMTPPort)

	return provider
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
