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
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "shipledger/internal/app"
	"shipledger/internal/entities"
	"shipledger/internal/handlers/rest/admin_accept_post"
	"shipledger/internal/handlers/rest/admin_propose_post"
	"shipledger/internal/handlers/rest/breach_post"
	"shipledger/internal/handlers/rest/delegate_post"
	"shipledger/internal/handlers/rest/dispute_post"
	"shipledger/internal/handlers/rest/dispute_resolve_post"
	"shipledger/internal/handlers/rest/escrow_deposit_post"
	"shipledger/internal/handlers/rest/escrow_get"
	"shipledger/internal/handlers/rest/escrow_refund_post"
	"shipledger/internal/handlers/rest/escrow_release_post"
	"shipledger/internal/handlers/rest/healthcheck_head"
	"shipledger/internal/handlers/rest/metadata_get"
	"shipledger/internal/handlers/rest/ping_get"
	"shipledger/internal/handlers/rest/proposal_approve_post"
	"shipledger/internal/handlers/rest/proposal_execute_post"
	"shipledger/internal/handlers/rest/proposal_get"
	"shipledger/internal/handlers/rest/proposal_post"
	"shipledger/internal/handlers/rest/reputation_get"
	"shipledger/internal/handlers/rest/role_get"
	"shipledger/internal/handlers/rest/role_post"
	"shipledger/internal/handlers/rest/shipment_cancel_post"
	"shipledger/internal/handlers/rest/shipment_confirm_post"
	"shipledger/internal/handlers/rest/shipment_deadline_post"
	"shipledger/internal/handlers/rest/shipment_get"
	"shipledger/internal/handlers/rest/shipment_handoff_post"
	"shipledger/internal/handlers/rest/shipment_milestone_post"
	"shipledger/internal/handlers/rest/shipment_post"
	"shipledger/internal/handlers/rest/shipment_proof_get"
	"shipledger/internal/handlers/rest/shipment_status_post"
	"shipledger/internal/handlers/rest/token_approve_post"
	"shipledger/internal/handlers/rest/token_balance_get"
	"shipledger/internal/handlers/rest/token_burn_post"
	"shipledger/internal/handlers/rest/token_mint_post"
	"shipledger/internal/handlers/rest/token_transfer_post"
	"shipledger/internal/handlers/rest/whitelist_delete"
	"shipledger/internal/handlers/rest/whitelist_post"
	"shipledger/internal/pkg/config"
	"shipledger/internal/pkg/dotenv"
	"shipledger/internal/pkg/kafka"
	metrics_system "shipledger/internal/pkg/metrics"
	"shipledger/internal/pkg/middlewares/graceful_shutdown"
	"shipledger/internal/pkg/middlewares/metrics"
	"shipledger/internal/pkg/middlewares/rate_limiter"
	"shipledger/internal/pkg/middlewares/signature"
	"shipledger/internal/pkg/middlewares/timeout"
	"shipledger/internal/pkg/postgres"
	"shipledger/pkg/logger"
	"shipledger/pkg/logger/zap_adapter"
	"shipledger/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
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

	mainLog.Info("starting shipledger application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
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

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
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

	brokers := strings.Split(cfg.Kafka.Brokers, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}

	producer, err := kafka.NewProducer(ctx, log, &cfg.Kafka, brokers)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		if err := producer.Close(); err != nil {
			runLog.Error("failed to close kafka producer",
				logger.NewField("error", err),
			)
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	admins := make([]entities.Address, 0, len(cfg.Bootstrap.AdminAddresses))
	for _, addr := range cfg.Bootstrap.AdminAddresses {
		admins = append(admins, entities.Address(addr))
	}
	if err := businessApp.ServiceIdentity.EnsureInitialized(ctx, admins, cfg.Bootstrap.MultisigThreshold); err != nil {
		return fmt.Errorf("bootstrap admins: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
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
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

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
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
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

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Use(signature.Middleware(log))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/shipment", shipment_post.New(log, app.ServiceShipment)).Methods("POST")
	router.Handle("/shipment/{id}", shipment_get.New(log, app.ServiceShipment)).Methods("GET")
	router.Handle("/shipment/{id}/status", shipment_status_post.New(log, app.ServiceShipment)).Methods("POST")
	router.Handle("/shipment/{id}/milestone", shipment_milestone_post.New(log, app.ServiceShipment)).Methods("POST")
	router.Handle("/shipment/{id}/handoff", shipment_handoff_post.New(log, app.ServiceShipment)).Methods("POST")
	router.Handle("/shipment/{id}/confirm", shipment_confirm_post.New(log, app.ServiceShipment)).Methods("POST")
	router.Handle("/shipment/{id}/cancel", shipment_cancel_post.New(log, app.ServiceShipment)).Methods("POST")
	router.Handle("/shipment/{id}/check-deadline", shipment_deadline_post.New(log, app.ServiceShipment)).Methods("POST")
	router.Handle("/shipment/{id}/proof", shipment_proof_get.New(log, app.ServiceShipment)).Methods("GET")

	router.Handle("/shipment/{id}/escrow", escrow_deposit_post.New(log, app.ServiceEscrow)).Methods("POST")
	router.Handle("/shipment/{id}/escrow", escrow_get.New(log, app.ServiceEscrow)).Methods("GET")
	router.Handle("/shipment/{id}/escrow/release", escrow_release_post.New(log, app.ServiceEscrow)).Methods("POST")
	router.Handle("/shipment/{id}/escrow/refund", escrow_refund_post.New(log, app.ServiceShipment)).Methods("POST")

	router.Handle("/shipment/{id}/dispute", dispute_post.New(log, app.ServiceDispute)).Methods("POST")
	router.Handle("/shipment/{id}/dispute/resolve", dispute_resolve_post.New(log, app.ServiceDispute)).Methods("POST")
	router.Handle("/shipment/{id}/breach", breach_post.New(log, app.ServiceDispute)).Methods("POST")
	router.Handle("/reputation/{address}", reputation_get.New(log, app.ServiceDispute)).Methods("GET")

	router.Handle("/role", role_post.New(log, app.ServiceIdentity)).Methods("POST")
	router.Handle("/role/{address}", role_get.New(log, app.ServiceIdentity)).Methods("GET")
	router.Handle("/whitelist", whitelist_post.New(log, app.ServiceIdentity)).Methods("POST")
	router.Handle("/whitelist/{address}", whitelist_delete.New(log, app.ServiceIdentity)).Methods("DELETE")
	router.Handle("/admin/transfer", admin_propose_post.New(log, app.ServiceIdentity)).Methods("POST")
	router.Handle("/admin/accept", admin_accept_post.New(log, app.ServiceIdentity)).Methods("POST")

	router.Handle("/proposal", proposal_post.New(log, app.ServiceGovernance)).Methods("POST")
	router.Handle("/proposal/{id}", proposal_get.New(log, app.ServiceGovernance)).Methods("GET")
	router.Handle("/proposal/{id}/approve", proposal_approve_post.New(log, app.ServiceGovernance)).Methods("POST")
	router.Handle("/proposal/{id}/execute", proposal_execute_post.New(log, app.ServiceGovernance)).Methods("POST")
	router.Handle("/delegate", delegate_post.New(log, app.ServiceGovernance)).Methods("POST")

	router.Handle("/metadata", metadata_get.New(log, app.ServiceShipment)).Methods("GET")

	router.Handle("/token/mint", token_mint_post.New(log, app.ServiceToken)).Methods("POST")
	router.Handle("/token/burn", token_burn_post.New(log, app.ServiceToken)).Methods("POST")
	router.Handle("/token/transfer", token_transfer_post.New(log, app.ServiceToken)).Methods("POST")
	router.Handle("/token/approve", token_approve_post.New(log, app.ServiceToken)).Methods("POST")
	router.Handle("/token/balance/{address}", token_balance_get.New(log, app.ServiceToken)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
