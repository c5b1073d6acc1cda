package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"

	"github.com/wallnote/wallnote/internal/config"
	"github.com/wallnote/wallnote/internal/domain"
	"github.com/wallnote/wallnote/internal/handler"
	"github.com/wallnote/wallnote/internal/render"
	"github.com/wallnote/wallnote/internal/repository"
	"github.com/wallnote/wallnote/internal/service"
	"github.com/wallnote/wallnote/pkg/database"
	"github.com/wallnote/wallnote/pkg/log"
	"github.com/wallnote/wallnote/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log.Init(log.Config{
		Level:       cfg.Log.Level,
		Pretty:      cfg.Log.Pretty,
		ServiceName: "wallnote",
	})
	logger := log.L()

	// Connect to the data store using GORM
	db, err := database.New(&database.Config{
		URL:             cfg.Database.URL,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogQueries:      cfg.Database.LogQueries,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Ensure the message schema exists before serving traffic
	if err := database.AutoMigrate(db, &domain.MessageModel{}); err != nil {
		logger.Fatal().Err(err).Msg("failed to ensure message schema")
	}
	logger.Info().Msg("message schema ensured")

	// Presentation renderer over the embedded templates
	renderer, err := render.NewHTMLRenderer(web.Templates, "templates/*.html")
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load templates")
	}

	// Wire repository, service, handler
	repo := repository.NewGormMessageRepository(db)
	messages := service.NewMessageService(repo)
	httpHandler := handler.NewHandler(messages, renderer)

	// Setup Gin router
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(log.GinMiddleware(logger))
	router.Use(secure.New(secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))

	httpHandler.RegisterRoutes(router)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info().Str("addr", addr).Msg("starting wallnote")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("server forced to shutdown")
	}

	// Tear down the shared connection pool last
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Info().Msg("server exited")
}
