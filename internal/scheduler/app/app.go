package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/huddle/internal/scheduler/http"
	"github.com/aussiebroadwan/huddle/internal/scheduler/service"
	"github.com/aussiebroadwan/huddle/internal/scheduler/store"
	"github.com/aussiebroadwan/huddle/internal/scheduler/store/drivers/sqlite"
	"github.com/aussiebroadwan/huddle/pkg/jwtx"
	"github.com/aussiebroadwan/huddle/pkg/pushx"
	"github.com/aussiebroadwan/huddle/pkg/slogx"
	"github.com/redis/go-redis/v9"
)

const (
	// BuildVersion is overridden at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the scheduler service with all its dependencies
type Application struct {
	cfg      Config
	logger   *slog.Logger
	location *time.Location

	// Core dependencies
	db        store.Store
	keys      *jwtx.KeySet
	verifier  jwtx.Verifier
	refresher *KeyRefresher // nil when keys come from a file
	cache     *redis.Client // nil without REDIS_ADDR
	push      *pushx.Client

	// Services
	directoryService    *service.DirectoryService
	eventStore          *service.EventStore
	workflow            *service.SchedulingWorkflow
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg:    cfg,
		logger: newLogger(cfg),
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid SCHEDULER_TIMEZONE %q: %w", cfg.Timezone, err)
	}
	app.location = loc

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	ctx := context.Background()
	if cfg.SeedFile != "" {
		if err := seedFrom(ctx, app.db, cfg.SeedFile, app.logger); err != nil {
			_ = app.db.Close()
			return nil, err
		}
	}

	keys, refresher, err := InitVerifierKeys(ctx, cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize verification keys: %w", err)
	}
	app.keys = keys
	app.refresher = refresher
	app.verifier = jwtx.NewCommonEdDSA(keys, cfg.Issuer, cfg.Audience)

	app.initCache(ctx)
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()
	if app.refresher != nil {
		app.refresher.Start()
	}

	app.logger.Info("scheduler starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"timezone", app.location.String(),
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown stops accepting requests, lets in-flight notification fan-outs
// finish and then closes the stores.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down scheduler...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Fan-outs are bounded by DispatchTimeout.
	app.workflow.Wait()

	app.housekeepingService.Stop()
	if app.refresher != nil {
		app.refresher.Stop()
	}

	if app.cache != nil {
		if err := app.cache.Close(); err != nil {
			app.logger.Error("error closing redis client", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("scheduler stopped")
	return nil
}

// Migrate applies the schema migrations and exits.
func Migrate(cfg Config) error {
	logger := newLogger(cfg)

	db, err := openDatabase(cfg.DatabaseFile)
	if err != nil {
		return err
	}
	defer db.Close()

	logger.Info("database migrations applied successfully", "database", cfg.DatabaseFile)
	return nil
}

// Seed loads a households file into the database.
func Seed(ctx context.Context, cfg Config, path string) error {
	logger := newLogger(cfg)

	db, err := openDatabase(cfg.DatabaseFile)
	if err != nil {
		return err
	}
	defer db.Close()

	return seedFrom(ctx, db, path, logger)
}

func newLogger(cfg Config) *slog.Logger {
	return slogx.New(slogx.Config{
		Service: "scheduler",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
}

func openDatabase(file string) (*sqlite.Store, error) {
	host := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", file)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}
	return db, nil
}

func seedFrom(ctx context.Context, db store.Store, path string, logger *slog.Logger) error {
	data, err := LoadSeedFile(path)
	if err != nil {
		return err
	}

	ctx = slogx.WithContext(ctx, logger)
	if err := (&service.SeedService{Store: db}).Seed(ctx, data); err != nil {
		return fmt.Errorf("failed to seed %s: %w", path, err)
	}
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	db, err := openDatabase(app.cfg.DatabaseFile)
	if err != nil {
		return err
	}
	app.db = db

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initCache connects to redis when configured. An unreachable redis is not
// fatal; idempotency falls back to pass-through.
func (app *Application) initCache(ctx context.Context) {
	if app.cfg.RedisAddr == "" {
		app.logger.Info("REDIS_ADDR not set, idempotency keys disabled")
		return
	}

	app.cache = redis.NewClient(&redis.Options{
		Addr:     app.cfg.RedisAddr,
		Password: app.cfg.RedisPassword,
		DB:       app.cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := app.cache.Ping(pingCtx).Err(); err != nil {
		app.logger.Warn("redis unreachable at startup", "addr", app.cfg.RedisAddr, "error", err)
		return
	}
	app.logger.Info("redis connected", "addr", app.cfg.RedisAddr)
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.push = pushx.NewClient(app.cfg.PushEndpoint, app.cfg.PushAccessToken, app.cfg.PushTimeout)

	app.directoryService = &service.DirectoryService{Store: app.db}
	app.eventStore = &service.EventStore{Store: app.db}
	app.workflow = &service.SchedulingWorkflow{
		Store:  app.db,
		Events: app.eventStore,
		Dispatcher: &service.NotificationDispatcher{
			Transport: app.push,
			Sound:     "default",
		},
		DispatchTimeout: app.cfg.DispatchTimeout,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
		app.cfg.DispatchRetention,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keys,
		app.verifier,
		BuildVersion,
		app.db,
		app.location,
		app.logger,
	)

	router.Workflow = app.workflow
	router.EventStore = app.eventStore
	router.DirectoryService = app.directoryService
	if app.cache != nil {
		router.Cache = app.cache
		router.IdempotencyTTL = app.cfg.IdempotencyTTL
	}
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
