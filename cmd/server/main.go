package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appfulfillment "github.com/dropship/bridge/internal/application/fulfillment"
	"github.com/dropship/bridge/internal/infrastructure/config"
	"github.com/dropship/bridge/internal/infrastructure/dropship"
	"github.com/dropship/bridge/internal/infrastructure/logger"
	"github.com/dropship/bridge/internal/interfaces/http/handler"
	"github.com/dropship/bridge/internal/interfaces/http/middleware"
	"github.com/dropship/bridge/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Dropship Bridge",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Missing credentials are not fatal; the provider will reject
	// submissions until they are configured.
	if !cfg.Provider.HasCredentials() {
		log.Warn("Provider credentials not configured, submissions will be rejected by the provider")
	}

	providerConfig := &dropship.Config{
		Username:             cfg.Provider.Username,
		Password:             cfg.Provider.Password,
		BaseURL:              cfg.Provider.BaseURL,
		SubmitPath:           cfg.Provider.SubmitPath,
		OrdersPath:           cfg.Provider.OrdersPath,
		SubmitTimeoutSeconds: cfg.Provider.SubmitTimeoutSeconds,
		ProbeTimeoutSeconds:  cfg.Provider.ProbeTimeoutSeconds,
	}

	providerClient, err := dropship.NewAdapter(providerConfig, log)
	if err != nil {
		log.Fatal("Failed to initialize provider adapter", zap.Error(err))
	}

	// Application services
	intakeService := appfulfillment.NewIntakeService(providerClient, log)
	statusService := appfulfillment.NewStatusService(providerClient, log)

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Routes
	r := router.NewRouter(engine)
	r.Register(handler.NewWebhookHandler(intakeService, log)).
		Register(handler.NewFulfillmentHandler(statusService, log)).
		Register(handler.NewSystemHandler())
	r.Setup()

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
