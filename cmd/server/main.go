package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shortly/internal/config"
	"shortly/internal/generator"
	"shortly/internal/handler"
	"shortly/internal/mq"
	"shortly/internal/repository"
	"shortly/internal/service"
	"shortly/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Shortly API
// @version 1.0
// @description A URL shortening service with click accounting and dynamic admin configuration

// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Server.Mode)

	// Initialize storage
	cache := repository.NewRedisCache(&cfg.Database.Redis)
	defer cache.Close()

	store := repository.NewMySQLStore(&cfg.Database.MySQL)
	defer store.Close()

	// Initialize MQ producer (optional; without MQ clicks are counted in-process)
	var clickPublisher service.PublisherInterface
	var mqProducer *mq.Producer
	if cfg.RocketMQ.NameServer != "" {
		mqProducer, err = mq.NewProducer(&cfg.RocketMQ)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ producer, counting clicks in-process")
		} else {
			clickPublisher = mqProducer
		}
	}

	// Initialize services
	gen := generator.New(cfg.Shortener.CodeLength)
	shortLinkSvc := service.NewShortLinkService(store, cache, gen, cfg.Shortener.CacheTTL, cfg.Shortener.MaxAttempts)
	clickSvc := service.NewClickService(store, cache, clickPublisher, cfg.Shortener.ClickDedupeTTL)
	configSvc := service.NewConfigService(store, cache, cfg.RateLimit)
	adminSvc := service.NewAdminService(store, cache, cfg.Shortener.BaseURL)

	// Setup Gin
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.Maintenance(configSvc))
	router.Use(middleware.RateLimit(configSvc))

	// API v1 routes
	shortenHandler := handler.NewShortenHandler(shortLinkSvc, cfg.Shortener.BaseURL)
	redirectHandler := handler.NewRedirectHandler(shortLinkSvc, clickSvc, cfg.Shortener.BaseURL)
	adminHandler := handler.NewAdminHandler(adminSvc, configSvc)
	healthHandler := handler.NewHealthHandler(store, cache)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/shorten", shortenHandler.Shorten)
		v1.GET("/stats/:code", redirectHandler.GetStats)

		admin := v1.Group("/admin")
		{
			admin.POST("/config", adminHandler.SetConfig)
			admin.GET("/config", adminHandler.ListConfigs)
			admin.GET("/links", adminHandler.ListLinks)
			admin.POST("/links/:code/deactivate", adminHandler.Deactivate)
			admin.GET("/analytics/total_clicks", adminHandler.TotalClicks)
			admin.GET("/metrics", adminHandler.Metrics)
		}
	}

	// Redirect handler (short codes)
	router.GET("/:code", redirectHandler.Redirect)

	// Health checks
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Start MQ consumer if configured: each click event becomes one atomic
	// counter increment
	var mqConsumer *mq.Consumer
	if cfg.RocketMQ.NameServer != "" && mqProducer != nil {
		mqConsumer, err = mq.NewConsumer(&cfg.RocketMQ, func(ctx context.Context, event *mq.ClickEvent) error {
			updated, err := store.IncrementClick(ctx, event.Code)
			if err != nil {
				return err
			}
			if !updated {
				log.Debug().Str("code", event.Code).Msg("Click event for missing or inactive link")
			}
			return nil
		})

		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ consumer")
		} else {
			go func() {
				if err := mqConsumer.Subscribe(); err != nil {
					log.Error().Err(err).Msg("Failed to subscribe to RocketMQ")
				}
			}()
			defer mqConsumer.Close()
		}
	}

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Msgf("Starting server on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	if mqProducer != nil {
		mqProducer.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// setupLogger configures the logger
func setupLogger(mode string) {
	if mode == "release" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}
