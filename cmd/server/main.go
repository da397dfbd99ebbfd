package main

import (
	"context"
	"errors"
	"fmt"
	"francoggm/payment-gateway/internal/app/bank"
	"francoggm/payment-gateway/internal/app/events"
	"francoggm/payment-gateway/internal/app/metrics"
	"francoggm/payment-gateway/internal/app/payment"
	"francoggm/payment-gateway/internal/app/server"
	"francoggm/payment-gateway/internal/app/storage"
	"francoggm/payment-gateway/internal/app/validation"
	"francoggm/payment-gateway/internal/app/workers"
	"francoggm/payment-gateway/internal/app/workers/processors"
	"francoggm/payment-gateway/internal/config"
	"francoggm/payment-gateway/internal/logger"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}

	runErr := run(cfg, log)
	if runErr != nil {
		log.Error("payment gateway stopped", zap.Error(runErr))
	}

	// Syncing a console stderr fails with EINVAL or ENOTTY on most systems
	if err := log.Sync(); err != nil && !errors.Is(err, syscall.EINVAL) && !errors.Is(err, syscall.ENOTTY) {
		fmt.Fprintln(os.Stderr, "failed to flush logs:", err)
	}

	if runErr != nil {
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx := context.Background()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	gatewayMetrics := metrics.NewMetrics(registry)

	// Storage
	store, closeStore, err := newStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize %s storage: %w", cfg.Storage.Backend, err)
	}
	defer closeStore()

	// Payment events
	var (
		eventQueue   payment.EventQueue
		orchestrator *workers.Orchestrator
	)
	if cfg.EventsEnabled() {
		publisher := events.NewKafkaPublisher(cfg.Events.Brokers, cfg.Events.Topic)
		defer func() {
			if err := publisher.Close(); err != nil {
				log.Error("failed to close event publisher", zap.Error(err))
			}
		}()

		paymentEventsCh := make(chan any, cfg.Events.BufferSize)
		orchestrator = workers.NewOrchestrator(cfg.Events.WorkersCount, cfg.Events.Reenqueue, paymentEventsCh, processors.NewEventProcessor(publisher), log)
		orchestrator.StartWorkers(ctx)
		eventQueue = orchestrator

		log.Info("payment events enabled", zap.Strings("brokers", cfg.Events.Brokers), zap.String("topic", cfg.Events.Topic))
	}

	// Services
	bankClient := bank.NewClient(cfg.Bank.BaseURL, cfg.Bank.Timeout, cfg.Bank.MaxConns, log)
	paymentService := payment.NewService(validation.NewValidator(), bankClient, store, eventQueue, gatewayMetrics, log)

	srv := server.NewServer(cfg, paymentService, registry, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var serveErr error
	select {
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
	case serveErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	// Requests still running after a forced shutdown go through Enqueue, which
	// drops their events once the queue is stopped
	if orchestrator != nil {
		orchestrator.Stop()
	}

	log.Info("server exited")

	return serveErr
}

func newStore(ctx context.Context, cfg *config.Config) (storage.Store, func(), error) {
	switch cfg.Storage.Backend {
	case config.StorageMemory:
		return storage.NewMemoryStore(), func() {}, nil
	case config.StorageRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%s", cfg.Cache.Host, cfg.Cache.Port),
			Password:     cfg.Cache.Password,
			DB:           0,
			MinIdleConns: 10,
		})

		store := storage.NewRedisStore(rdb)
		if err := store.Ping(ctx); err != nil {
			rdb.Close()
			return nil, nil, err
		}

		return store, func() { rdb.Close() }, nil
	}

	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}
