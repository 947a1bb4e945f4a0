// Package app contains the application setup for the product service.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vistula/firstapi/internal/product/config"
	"github.com/vistula/firstapi/internal/product/service"
	"github.com/vistula/firstapi/internal/product/store"
	"github.com/vistula/firstapi/internal/product/transport/rest"
	"github.com/vistula/firstapi/migrations"
	"github.com/vistula/firstapi/pkg/bootstrap"
	"github.com/vistula/firstapi/pkg/messaging"
	"github.com/vistula/firstapi/pkg/nats"
	"github.com/vistula/firstapi/pkg/server"
	"github.com/vistula/firstapi/pkg/web"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName names the service in telemetry and the configuration env prefix.
const ServiceName = "product"

type Dependencies struct {
	ProductService service.ProductService
	Pinger         web.Pinger
	Logger         *slog.Logger
}

func SetupDependencies(productStore store.ProductStore, pinger web.Pinger, publisher messaging.Publisher, logger *slog.Logger) *Dependencies {
	pService := service.NewService(productStore, publisher, logger)

	return &Dependencies{
		ProductService: pService,
		Pinger:         pinger,
		Logger:         logger,
	}
}

// Storage is the product store selected by configuration, plus what it takes to probe and release it.
type Storage struct {
	Store  store.ProductStore
	Pinger web.Pinger
	Close  func()
}

// SetupStorage opens the configured store. For postgres it optionally applies the embedded migrations first.
func SetupStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Storage, error) {
	if !cfg.Store.UsesPostgres() {
		logger.Info("Using in-memory product store")
		s := store.NewInMemoryStore()
		return &Storage{Store: s, Pinger: s, Close: func() {}}, nil
	}

	if cfg.Database.Migrate {
		if err := migrations.Up(cfg.Database.URL); err != nil {
			return nil, err
		}
		logger.Info("Database migrations applied")
	}
	dbPool, err := bootstrap.NewDbPool(ctx, cfg.Database.URL, cfg.Database.Timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection pool: %w", err)
	}
	logger.Info("Successfully connected to the database!")
	s := store.NewPgStore(dbPool)
	return &Storage{Store: s, Pinger: s, Close: dbPool.Close}, nil
}

// SetupPublisher connects to NATS JetStream when events are enabled. The returned func releases the connection.
func SetupPublisher(ctx context.Context, cfg *config.Config, logger *slog.Logger) (messaging.Publisher, func(), error) {
	if !cfg.NATS.Enabled {
		logger.Info("Product events disabled")
		return messaging.NopPublisher{}, func() {}, nil
	}

	nc, err := nats.NewClient(cfg.NATS.Url, cfg.NATS.Timeout)
	if err != nil {
		return nil, nil, err
	}
	js, err := nats.NewJetStreamContext(nc)
	if err != nil {
		return nil, nil, err
	}
	if err := nats.EnsureStream(ctx, js, cfg.NATS.Stream, messaging.ProductsSubjects); err != nil {
		nc.Close()
		return nil, nil, err
	}
	logger.Info("Publishing product events", slog.String("stream", cfg.NATS.Stream))

	closeFn := func() {
		if err := nc.Drain(); err != nil {
			logger.Warn("failed to drain NATS connection", "error", err)
		}
	}
	return nats.NewNatsPublisher(js, cfg.Resilience.CircuitBreaker), closeFn, nil
}

// SetupHttpHandler initializes the routes and middleware of the product service.
// Used by E2E tests to set up the HTTP server with the necessary routes and middleware.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps)
	return mux
}

// wireRoutes sets up the product API and the operational endpoints.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	productHandler := rest.NewHandler(deps.ProductService, deps.Logger)
	productHandler.RegisterRoutes(mux)

	mux.Get("/healthz", web.Live(deps.Logger))
	mux.Get("/readyz", web.Ready(deps.Logger, deps.Pinger))
	mux.Handle("/metrics", promhttp.Handler())
}

// SetupHttpServer creates and configures an instrumented HTTP server for the product service.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	handler := server.Instrument(ServiceName, SetupHttpHandler(deps))

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, handler)
}

// SetupGrpcServer initializes the gRPC server, which serves the standard health service.
func SetupGrpcServer(deps *Dependencies, reflectionEnabled bool) (*grpc.Server, *health.Server) {
	healthServer := health.NewServer()
	healthRegisterFunc := func(s *grpc.Server) {
		grpc_health_v1.RegisterHealthServer(s, healthServer)
	}
	grpcServer := server.NewGRPCServer(deps.Logger, reflectionEnabled, healthRegisterFunc)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	return grpcServer, healthServer
}
