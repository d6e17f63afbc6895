package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	application "deliverytracker/internal/app"
	"deliverytracker/internal/handlers/rest/deliveries_get"
	"deliverytracker/internal/handlers/rest/deliveries_search_get"
	"deliverytracker/internal/handlers/rest/deliveries_stats_get"
	"deliverytracker/internal/handlers/rest/deliveries_status_get"
	"deliverytracker/internal/handlers/rest/delivery_confirm_post"
	"deliverytracker/internal/handlers/rest/delivery_delete"
	"deliverytracker/internal/handlers/rest/delivery_get"
	"deliverytracker/internal/handlers/rest/delivery_patch"
	"deliverytracker/internal/handlers/rest/delivery_post"
	"deliverytracker/internal/handlers/rest/healthcheck_head"
	"deliverytracker/internal/pkg/config"
	"deliverytracker/internal/pkg/dotenv"
	"deliverytracker/internal/pkg/middlewares/graceful_shutdown"
	"deliverytracker/internal/pkg/middlewares/metrics"
	"deliverytracker/internal/pkg/middlewares/rate_limiter"
	"deliverytracker/internal/pkg/middlewares/request_id"
	"deliverytracker/internal/pkg/middlewares/timeout"
	"deliverytracker/internal/pkg/postgres"
	"deliverytracker/pkg/logger"
	"deliverytracker/pkg/logger/zap_adapter"
	"deliverytracker/pkg/token_bucket"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	envLoaded, err := dotenv.Load(dotenv.DefaultFile)
	if err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}
	if err := dotenv.OverridePort(os.Args[1:]); err != nil {
		stdlog.Fatalf("flags: %v", err)
	}

	// уровень читается до config.Load, чтобы ошибки конфига уже шли в zap
	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting delivery-tracker application")
	if !envLoaded {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // ongoingCtx и shutdownCtx намеренно наследуются от context.Background()
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrationsEnabled {
		if err := postgres.Migrate(ctx, log, pool); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}

	if cfg.Database.SeedEnabled {
		application.InitializeSeeder(log, pool, pgxv5.DefaultCtxGetter).Run(ctx)
	}

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil канал при выключенном pprof, кейс не срабатывает
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	// ctx уже отменен, задачи выходят на ближайшем select
	businessApp.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))
	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(request_id.Middleware())
	router.Use(metrics.Middleware(log))

	router.Handle("/metrics", promhttp.Handler())
	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, app.Pinger)).Methods(http.MethodHead)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(rate_limiter.Middleware(
		log,
		cfg.RateLimiterQPS,
		token_bucket.NewTokenBucket(cfg.RateLimiterBurst, float64(cfg.RateLimiterQPS)),
	))

	// статические сегменты регистрируются раньше /deliveries/{id}
	api.Handle("/deliveries", deliveries_get.New(log, app.ServiceDelivery)).Methods(http.MethodGet)
	api.Handle("/deliveries", delivery_post.New(log, app.ServiceDelivery)).Methods(http.MethodPost)
	api.Handle("/deliveries/stats", deliveries_stats_get.New(log, app.ServiceDelivery)).Methods(http.MethodGet)
	api.Handle("/deliveries/search/{query}", deliveries_search_get.New(log, app.ServiceDelivery)).Methods(http.MethodGet)
	api.Handle("/deliveries/status/{status}", deliveries_status_get.New(log, app.ServiceDelivery)).Methods(http.MethodGet)
	api.Handle("/deliveries/confirm", delivery_confirm_post.New(log, app.ServiceDelivery)).Methods(http.MethodPost)

	api.Handle("/deliveries/{id}", delivery_get.New(log, app.ServiceDelivery)).Methods(http.MethodGet)
	api.Handle("/deliveries/{id}", delivery_patch.New(log, app.ServiceDelivery)).Methods(http.MethodPatch)
	api.Handle("/deliveries/{id}", delivery_delete.New(log, app.ServiceDelivery)).Methods(http.MethodDelete)

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, nil)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
