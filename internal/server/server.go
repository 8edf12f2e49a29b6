// Package server provides the shared service lifecycle runner.
// cmd/ services delegate to server.Run for signal handling, config
// loading, observability init, health checks, and graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/numera-labs/phone-lookup-platform/internal/config"
	"github.com/numera-labs/phone-lookup-platform/internal/domain"
	"github.com/numera-labs/phone-lookup-platform/internal/observability"
)

// SetupDeps carries the shared infrastructure a service's composition
// root wires its handlers into.
type SetupDeps struct {
	Config     *config.Config
	Logger     *slog.Logger
	HTTPMux    *http.ServeMux
	GRPCServer *grpc.Server
}

// SetupFunc builds a service's dependency graph and registers handlers.
// The returned cleanup runs during graceful shutdown, after the servers
// have drained.
type SetupFunc func(ctx context.Context, deps SetupDeps) (func(context.Context) error, error)

// Params configures a service's lifecycle runner.
type Params struct {
	// Name identifies the service (e.g. "lookupd").
	Name string

	// PortFromConfig extracts the HTTP port for this service from config.
	PortFromConfig func(cfg *config.Config) int

	// GRPCPortFromConfig extracts the gRPC port. Nil disables the gRPC
	// listener entirely.
	GRPCPortFromConfig func(cfg *config.Config) int

	// Setup is the service composition root. Nil means the service only
	// exposes health endpoints.
	Setup SetupFunc
}

// Listeners optionally injects pre-bound listeners instead of binding
// from config (enables port-0 testing).
type Listeners struct {
	HTTP net.Listener
	GRPC net.Listener
}

// Run executes the full service lifecycle: signal handling, config loading,
// observability initialization, HTTP + gRPC servers with health checks, and
// graceful shutdown.
func Run(ctx context.Context, p Params, lns Listeners) error {
	// Signal-based cancellation: ctx.Done() closes on SIGTERM/SIGINT.
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Initialize structured logging with secret redaction
	logger := observability.InitLogger(observability.LogConfig{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: p.Name,
		Environment: cfg.Environment,
	})

	// --- Startup order: tracer -> metrics -> setup -> servers ---

	telemetryCfg := observability.Config{
		ServiceName:    p.Name,
		ServiceVersion: "0.1.0",
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTEL.Endpoint,
	}

	tracerProvider, err := observability.InitTracer(ctx, telemetryCfg)
	if err != nil {
		return fmt.Errorf("initialize tracer: %w", err)
	}

	metricsProvider, err := observability.InitMetrics(ctx, telemetryCfg)
	if err != nil {
		return fmt.Errorf("initialize metrics: %w", err)
	}

	// Flushes both providers, metrics first. Runs on startup-failure
	// paths as well as in the shutdown goroutine.
	shutdownObservability := func() {
		otelCtx, cancel := context.WithTimeout(context.Background(), domain.ShutdownOTELTimeout)
		defer cancel()
		if shutdownErr := metricsProvider.Shutdown(otelCtx); shutdownErr != nil {
			logger.Error("failed to shutdown metrics", slog.String("error", shutdownErr.Error()))
		}
		if shutdownErr := tracerProvider.Shutdown(otelCtx); shutdownErr != nil {
			logger.Error("failed to shutdown tracer", slog.String("error", shutdownErr.Error()))
		}
	}

	// Health check shutdown coordination via atomic flag.
	var shuttingDown atomic.Bool

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if shuttingDown.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprintf(w, `{"status":"shutting_down","service":%q}`, p.Name)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"healthy","service":%q}`, p.Name)
	})

	grpcServer := grpc.NewServer()
	healthSrv := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthSrv)

	cleanup := func(context.Context) error { return nil }
	if p.Setup != nil {
		cleanup, err = p.Setup(ctx, SetupDeps{
			Config:     cfg,
			Logger:     logger,
			HTTPMux:    mux,
			GRPCServer: grpcServer,
		})
		if err != nil {
			shutdownObservability()
			return fmt.Errorf("%s setup: %w", p.Name, err)
		}
	}
	healthSrv.SetServingStatus(p.Name, grpc_health_v1.HealthCheckResponse_SERVING)

	// Bind listeners (use injected listeners or create from config).
	httpLn := lns.HTTP
	if httpLn == nil {
		httpLn, err = (&net.ListenConfig{}).Listen(ctx, "tcp", fmt.Sprintf(":%d", p.PortFromConfig(cfg)))
		if err != nil {
			shutdownObservability()
			return fmt.Errorf("listen http: %w", err)
		}
	}
	grpcLn := lns.GRPC
	if grpcLn == nil && p.GRPCPortFromConfig != nil {
		grpcLn, err = (&net.ListenConfig{}).Listen(ctx, "tcp", fmt.Sprintf(":%d", p.GRPCPortFromConfig(cfg)))
		if err != nil {
			httpLn.Close()
			shutdownObservability()
			return fmt.Errorf("listen grpc: %w", err)
		}
	}

	httpServer := &http.Server{
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// --- Structured concurrency via errgroup ---
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting HTTP server",
			slog.String("addr", httpLn.Addr().String()),
			slog.String("environment", cfg.Environment),
		)
		if serveErr := httpServer.Serve(httpLn); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			return serveErr
		}
		return nil
	})

	if grpcLn != nil {
		g.Go(func() error {
			logger.Info("starting gRPC server", slog.String("addr", grpcLn.Addr().String()))
			return grpcServer.Serve(grpcLn)
		})
	}

	// Shutdown trigger — waits for context cancellation, then drains.
	// Shutdown order is explicit reverse of startup: servers -> cleanup
	// -> metrics -> tracer.
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("received shutdown signal, starting graceful shutdown")

		// 1. Mark shutting down — health checks flip to not-serving
		shuttingDown.Store(true)
		healthSrv.Shutdown()

		// 2. Drain delay — let load balancer propagate endpoint removal
		time.Sleep(domain.ShutdownDrainDelay)

		// 3. Drain servers
		httpCtx, httpCancel := context.WithTimeout(context.Background(), domain.ShutdownHTTPTimeout)
		defer httpCancel()
		if shutdownErr := httpServer.Shutdown(httpCtx); shutdownErr != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", shutdownErr.Error()))
		}
		if grpcLn != nil {
			grpcServer.GracefulStop()
		}

		// 4. Service cleanup (adapters, connection pools)
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), domain.ShutdownHTTPTimeout)
		defer cleanupCancel()
		if cleanupErr := cleanup(cleanupCtx); cleanupErr != nil {
			logger.Error("cleanup error", slog.String("error", cleanupErr.Error()))
		}

		// 5. Flush OTEL (reverse: metrics first, then tracer)
		shutdownObservability()

		logger.Info("shutdown complete")
		return nil
	})

	return g.Wait()
}
