package main

import (
	"log/slog"
	"skyglance/internal/conditions"
	"skyglance/internal/config"

	"github.com/gin-gonic/gin"
)

// App encapsulates application dependencies
type App struct {
	router            *gin.Engine
	logger            *slog.Logger
	cfg               *config.Config
	conditionsService conditions.Service
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	app := &App{
		router:            router,
		logger:            logger,
		cfg:               cfg,
		conditionsService: conditions.NewService(logger),
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
