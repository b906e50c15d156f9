// Package server wires the memoryvault components together and runs them:
// the gRPC endpoint for clients and the ops HTTP endpoint for health checks
// and metrics. Both stop on SIGINT, SIGTERM or SIGQUIT.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/memoryvault/internal/logging"
	"github.com/dmitrijs2005/memoryvault/internal/server/config"
	"github.com/dmitrijs2005/memoryvault/internal/server/intake"
	"github.com/dmitrijs2005/memoryvault/internal/server/metrics"
	"github.com/dmitrijs2005/memoryvault/internal/server/ops"
	"github.com/dmitrijs2005/memoryvault/internal/server/privacy"
	"github.com/dmitrijs2005/memoryvault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/memoryvault/internal/server/services"
	"github.com/dmitrijs2005/memoryvault/internal/server/storage"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	gs "github.com/dmitrijs2005/memoryvault/internal/server/grpc"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	registry *prometheus.Registry
	gate     *intake.Gate
	objects  *services.ObjectService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	resolver, err := privacy.NewResolver(target(c.ZeroKnowledge), target(c.ServerManaged))
	if err != nil {
		return nil, fmt.Errorf("storage targets: %w", err)
	}

	gate, err := intake.NewGate(c.MaxUploadSize, c.AllowedMimeTypes)
	if err != nil {
		return nil, fmt.Errorf("intake gate: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	observer, err := metrics.NewObserver("", registry)
	if err != nil {
		return nil, fmt.Errorf("metrics init error: %w", err)
	}

	router, err := storage.NewRouter(ctx, resolver, storage.Options{
		Endpoint:     c.S3BaseEndpoint,
		Region:       c.S3Region,
		UsePathStyle: c.S3UsePathStyle,
		Timeout:      c.StorageTimeout,
	}, observer)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}
	if c.EnsureBuckets {
		if err := router.EnsureBuckets(ctx); err != nil {
			return nil, fmt.Errorf("bucket bootstrap error: %w", err)
		}
	}

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	objects := services.NewObjectService(db, rm, router, observer, logger, c.SignedURLExpiry)

	return &App{
		config:   c,
		logger:   logger,
		db:       db,
		registry: registry,
		gate:     gate,
		objects:  objects,
	}, nil
}

func target(b config.BucketConfig) privacy.Target {
	return privacy.Target{
		Bucket: b.Bucket,
		Credentials: privacy.Credentials{
			AccessKeyID:     b.AccessKeyID,
			SecretAccessKey: b.SecretAccessKey,
		},
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.objects, app.gate, app.config.SecretKey)
	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startOpsServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := ops.NewServer(app.config.EndpointAddrHTTP, app.db, app.registry, app.logger)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until ctx is cancelled, a signal arrives or a server fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startOpsServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
