package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"appraisal/internal/auth"
	"appraisal/internal/cache"
	"appraisal/internal/config"
	"appraisal/internal/db"
	"appraisal/internal/handler"
	"appraisal/internal/logger"
	"appraisal/internal/repository"
	"appraisal/internal/router"
	"appraisal/internal/service"
)

// @title Faculty Appraisal API
// @version 1.0
// @description Faculty appraisal API: publications, experiences and semester feedback with JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	logger.Configure(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())

	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("database init")
	}
	defer db.Close(gormDB)

	cacheClient := openCache(cfg)
	defer cacheClient.Close()

	if cfg.ResetDB {
		logger.Warn().Msg("RESET_DB=true detected, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			logger.Fatal().Err(err).Msg("reset database")
		}
		n, err := service.ClearCachedState(context.Background(), cacheClient)
		if err != nil {
			logger.Warn().Err(err).Msg("clear cached state")
		}
		logger.Info().Int("keys", n).Msg("cached state cleared")
	}

	if err := db.Migrate(gormDB); err != nil {
		logger.Fatal().Err(err).Msg("migrate database")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	publicationRepo := repository.NewPublicationRepository(gormDB)
	experienceRepo := repository.NewExperienceRepository(gormDB)
	feedbackRepo := repository.NewFeedbackRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	identityService := service.NewIdentityService(userRepo, jwtService, tokenStore, cacheClient)
	academicService := service.NewAcademicService(userRepo, publicationRepo, experienceRepo)
	feedbackService := service.NewFeedbackService(userRepo, feedbackRepo, cacheClient, nil)
	reportService := service.NewReportService(userRepo, academicService, feedbackService)

	if cfg.SeedSample {
		n, err := identityService.SeedSampleUsers(context.Background())
		if err != nil {
			logger.Fatal().Err(err).Msg("seed sample users")
		}
		if n > 0 {
			logger.Info().Int("users", n).Msg("sample users created")
		}
	}

	// Register routes
	router.Register(e, cfg, jwtService, tokenStore, router.Handlers{
		Auth:         handler.NewAuthHandler(identityService),
		Faculty:      handler.NewFacultyHandler(identityService, feedbackService, reportService),
		Publications: handler.NewPublicationHandler(academicService),
		Experiences:  handler.NewExperienceHandler(academicService),
		Feedback:     handler.NewFeedbackHandler(feedbackService),
	})

	logger.Info().Str("url", swaggerURL(cfg)).Msg("swagger documentation available")

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("server shutdown")
	}
}

// openCache connects to the configured redis, falling back to an in-process
// server when redis is disabled or unreachable.
func openCache(cfg *config.Config) *cache.Client {
	if cfg.RedisOn {
		c := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		err := c.Ping(ctx)
		if err == nil {
			return c
		}
		logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable, using in-process cache")
		_ = c.Close()
	}

	c, err := cache.NewInProcess()
	if err != nil {
		logger.Warn().Err(err).Msg("in-process cache unavailable, caching disabled")
		return nil
	}
	return c
}

func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return host + "/swagger/index.html"
}
