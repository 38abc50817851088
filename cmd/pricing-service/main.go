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

	"go.uber.org/zap"

	"github.com/Cheertaboi/refill-pricing-service/internal/api"
	"github.com/Cheertaboi/refill-pricing-service/internal/cache"
	"github.com/Cheertaboi/refill-pricing-service/internal/config"
	"github.com/Cheertaboi/refill-pricing-service/internal/models"
	"github.com/Cheertaboi/refill-pricing-service/internal/repository"
	"github.com/Cheertaboi/refill-pricing-service/internal/service"
	"github.com/Cheertaboi/refill-pricing-service/pkg/db"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	// catalog + quote history: postgres when configured, memory otherwise
	var (
		prescriptions service.PrescriptionRepo
		quotes        service.QuoteStore
	)
	if cfg.Postgres.Enabled() {
		conn, err := db.NewPostgresConnection(cfg.Postgres)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer conn.Close()
		if err := db.EnsureSchema(context.Background(), conn); err != nil {
			logger.Fatal("db schema", zap.Error(err))
		}
		prescriptions = repository.NewPrescriptionRepo(conn)
		quotes = repository.NewQuoteRepo(conn)
	} else {
		logger.Warn("DB_HOST not set, using in-memory sample catalog")
		prescriptions = repository.NewMemoryPrescriptionRepo(models.SamplePrescriptions()...)
	}

	var quoteCache service.QuoteCache = cache.NewQuoteCache(cfg.QuoteCacheTTL)
	if cfg.RedisAddr != "" {
		client, err := db.NewRedisClient(db.RedisConfig{Addr: cfg.RedisAddr, Password: cfg.RedisPass, PoolSize: 10})
		if err != nil {
			logger.Fatal("redis connect", zap.Error(err))
		}
		defer client.Close()
		quoteCache = cache.NewRedisQuoteCache(client, cfg.QuoteCacheTTL, logger)
	}

	svc := service.NewPricingService(prescriptions, quotes, quoteCache, cfg.BatchWorkers, logger)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      api.NewRouter(svc, logger),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("HTTP server Shutdown", zap.Error(err))
		}
		close(idleConnsClosed)
	}()

	logger.Info("starting pricing-service", zap.String("addr", cfg.HTTPAddr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("listen", zap.Error(err))
	}

	<-idleConnsClosed
	logger.Info("server stopped")
}
