package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"service-storefront/internal"
	"service-storefront/internal/api/http/middleware"
	rateshttp "service-storefront/internal/api/http/rates"
	"service-storefront/internal/api/http/respond"
	storefronthttp "service-storefront/internal/api/http/storefront"
	"service-storefront/internal/job"
	"service-storefront/internal/metrics"
	"service-storefront/internal/nbu"
	"service-storefront/internal/postgresql"
	"service-storefront/internal/postgresql/migrations"
	"service-storefront/internal/privatbank"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("service stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// env
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	// DB
	dbCtx, cancelDB := context.WithTimeout(ctx, 5*time.Second)
	defer cancelDB()

	pool, err := pgxpool.New(dbCtx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(dbCtx); err != nil {
		return fmt.Errorf("ping db: %w", err)
	}

	if err := migrations.New(pool, logger).Setup(); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	// metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	ratesMetrics := metrics.NewRatesMetrics(reg)

	// rates
	cache := internal.NewRateCache()
	engine := internal.NewRateEngine(
		nbu.New(cfg.NBURatesURL),
		privatbank.New(cfg.PrivatRatesURL),
		postgresql.NewRateHistoryStorage(pool),
		cache,
		internal.WithProviderTimeout(cfg.ProviderTimeout),
		internal.WithColdStartLimit(cfg.ColdStartLimit),
		internal.WithObserver(ratesMetrics),
		internal.WithLogger(logger.With(slog.String("component", "rates"))),
	)

	ratesJob, err := job.StartRatesJob(ctx, engine, cfg.RatesSchedule, logger)
	if err != nil {
		return fmt.Errorf("start rates job: %w", err)
	}

	// HTTP
	storefront := internal.NewStorefront(
		postgresql.NewCatalogStorage(pool),
		internal.NewPriceConverter(cache),
	)
	audit := internal.NewStorageAuditLogger(postgresql.NewRequestLogStorage(pool))
	apiKeys := internal.NewAPIKeyValidator(postgresql.NewAPIKeyStorage(pool), cfg.EncodingKey)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		respond.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	storefronthttp.New(storefront, audit, logger).Register(mux)
	rateshttp.New(cache, engine).Register(mux, middleware.APIKeyAuth(apiKeys))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		<-gctx.Done()
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		ratesJob.Stop(stopCtx)
		return nil
	})

	g.Go(func() error {
		return serveHTTP(gctx, ":"+cfg.HTTPPort, middleware.RequestID(logger)(mux), logger)
	})

	logger.Info("running, stop with Ctrl+C / SIGTERM")
	return g.Wait()
}

func serveHTTP(ctx context.Context, addr string, h http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutCtx)
	}()

	logger.Info("http listening", slog.String("addr", addr))
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
