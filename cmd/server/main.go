package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/mareksuchodolski12-hash/marek-it-website/internal/api/router"
	"github.com/mareksuchodolski12-hash/marek-it-website/internal/config"
	"github.com/mareksuchodolski12-hash/marek-it-website/internal/leads"
	"github.com/mareksuchodolski12-hash/marek-it-website/internal/notify"
	"github.com/mareksuchodolski12-hash/marek-it-website/internal/observability/metrics"
	"github.com/mareksuchodolski12-hash/marek-it-website/internal/ratelimit"
	"github.com/mareksuchodolski12-hash/marek-it-website/pkg/logging"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	var logger *logging.Logger
	if cfg.Env == "development" {
		logger = logging.NewText(cfg.LogLevel)
	} else {
		logger = logging.New(cfg.LogLevel)
	}
	logger.Info("starting marek-it-website server",
		"env", cfg.Env,
		"port", cfg.Port,
		"leads_file", cfg.LeadsFile,
	)

	// Throttle state lives in Redis when an address is configured, so
	// multiple instances share one window; otherwise in-process.
	var limiter ratelimit.Limiter
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		limiter = ratelimit.NewRedisLimiter(client, cfg.RateLimitInterval)
		logger.Info("using redis rate limiter", "addr", cfg.RedisAddr)
	} else {
		limiter = ratelimit.NewIntervalLimiter(cfg.RateLimitInterval)
	}

	registry := prometheus.NewRegistry()
	leadMetrics := metrics.NewLeadMetrics(registry)

	var sender notify.EmailSender
	if s := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.SendGridFromEmail,
	}, logger); s != nil {
		sender = s
	} else {
		sender = notify.NewStubEmailSender(logger)
	}
	notifier := notify.NewLeadNotifier(sender, cfg.LeadNotifyEmail, logger)

	store := leads.NewFileStore(cfg.LeadsFile)
	leadsHandler := leads.NewHandler(leads.HandlerConfig{
		Store:        store,
		Logger:       logger,
		Metrics:      leadMetrics,
		Notifier:     notifier,
		MaxBodyBytes: cfg.MaxBodyBytes,
	})

	r := router.New(&router.Config{
		Logger:         logger,
		LeadsHandler:   leadsHandler,
		Limiter:        limiter,
		MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		PublicDir:      cfg.PublicDir,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
