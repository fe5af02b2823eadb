package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-api/internal/config"
	"portfolio-api/internal/db"
	"portfolio-api/internal/email"
	apihttp "portfolio-api/internal/http"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	var contactRepo repository.ContactRepository
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		contactRepo = repository.NewPgContactRepository(pool)
	} else {
		// Sin DATABASE_URL el proceso arranca igual; /health lo reporta.
		logger.Warn("database not configured")
	}

	emailSender := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			emailSender = sender
		}
	}

	window := time.Duration(cfg.RateLimitWindowMinutes) * time.Minute
	limiter := service.NewRateLimiter(window, cfg.RateLimitMax)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else if redisLimiter := service.NewRedisRateLimiter(redisClient, window, cfg.RateLimitMax); redisLimiter != nil {
			limiter = redisLimiter
		}
		cancel()
	}

	notifier := service.NewNotifier(emailSender, service.NotifierConfig{
		AdminEmail:   cfg.AdminEmail,
		SenderName:   cfg.SMTPFromName,
		PortfolioURL: cfg.PortfolioURL,
		WhatsAppURL:  cfg.WhatsAppURL,
		LinkedInURL:  cfg.LinkedInURL,
	})
	contactSvc := service.NewContactService(logger, contactRepo, notifier)

	var prober apihttp.DatabaseProber
	if contactRepo != nil {
		prober = contactRepo
	}
	presence := apihttp.ConfigPresence{
		Database:   cfg.DatabaseURL != "",
		SMTP:       cfg.SMTPHost != "" && cfg.SMTPFrom != "",
		AdminEmail: cfg.AdminEmail != "",
	}

	contactHandler := apihttp.NewContactHandler(logger, contactSvc, cfg.IsProduction())
	adminHandler := apihttp.NewAdminHandler(logger, contactSvc)
	healthHandler := apihttp.NewHealthHandler(logger, prober, cfg.Environment, presence)
	router := apihttp.NewRouter(logger, contactHandler, adminHandler, healthHandler, limiter, cfg.CORSOrigins)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("starting server",
			zap.String("port", cfg.HTTPPort),
			zap.String("environment", cfg.Environment),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}
