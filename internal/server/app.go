// Package server wires the identity server together: database, migrations,
// services, the gRPC endpoint and the metrics endpoint.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/esgportal/internal/logging"
	"github.com/dmitrijs2005/esgportal/internal/server/config"
	"github.com/dmitrijs2005/esgportal/internal/server/federation"
	"github.com/dmitrijs2005/esgportal/internal/server/metrics"
	"github.com/dmitrijs2005/esgportal/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/esgportal/internal/server/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/esgportal/internal/server/grpc"
)

const (
	limiterCleanupInterval = 10 * time.Minute
	shutdownTimeout        = 10 * time.Second
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	registry    *prometheus.Registry
	collector   *metrics.Collector
	limiter     *services.KeyedLimiter
	accounts    *services.AccountService
	profiles    *services.ProfileService
	avatars     *services.AvatarService
}

// NewApp opens the database and builds the services. Close releases it.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {

	db, err := repomanager.OpenDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(registry)

	m := repomanager.NewPostgresRepositoryManager()
	limiter := services.NewKeyedLimiter(cfg.SignInRatePerMinute, cfg.SignInBurst)
	providers := federation.NewRegistry(cfg)

	app := &App{
		config:      cfg,
		logger:      logger,
		db:          db,
		repomanager: m,
		registry:    registry,
		collector:   collector,
		limiter:     limiter,
		accounts: services.NewAccountService(db, m, cfg, providers,
			services.NewLogMailer(logger), limiter, collector, logger),
		profiles: services.NewProfileService(db, m, logger),
		avatars:  services.NewAvatarService(cfg),
	}

	logger.Info(ctx, "App initialized", "federated_providers", len(providers))
	return app, nil
}

func (app *App) Close() error {
	return app.db.Close()
}

// Migrate applies pending schema migrations.
func (app *App) Migrate(ctx context.Context) error {
	if err := app.repomanager.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	app.logger.Info(ctx, "Migrations applied")
	return nil
}

// SetAdmin grants or revokes the admin flag on a profile.
func (app *App) SetAdmin(ctx context.Context, uid string, admin bool) error {
	if err := app.profiles.SetAdmin(ctx, uid, admin); err != nil {
		return err
	}
	app.logger.Info(ctx, "Admin flag changed", "uid", uid, "admin", admin)
	return nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context) error {
	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.accounts, app.profiles, app.avatars,
		app.config.SecretKey, app.collector.UnaryInterceptor())
	if err != nil {
		return err
	}
	return s.Run(ctx)
}

// serveMetrics serves /metrics on addr until ctx is done.
func serveMetrics(ctx context.Context, addr string, gatherer prometheus.Gatherer, logger logging.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           metrics.SetupMetricsRoute(gatherer),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "Starting metrics server", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info(ctx, "Stopping metrics server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// Run migrates the database and serves until a signal arrives or one of
// the servers fails.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if err := app.Migrate(ctx); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return app.startGRPCServer(gctx)
	})

	g.Go(func() error {
		return app.limiter.Run(gctx, limiterCleanupInterval)
	})

	if app.config.MetricsAddr != "" {
		g.Go(func() error {
			return serveMetrics(gctx, app.config.MetricsAddr, app.registry, app.logger)
		})
	}

	err := g.Wait()
	app.logger.Info(context.Background(), "App stopped")
	return err
}
