package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/sessions"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-lesson-planner/internal/config"
	"github.com/sbilibin2017/gw-lesson-planner/internal/database"
	"github.com/sbilibin2017/gw-lesson-planner/internal/logger"
	"github.com/sbilibin2017/gw-lesson-planner/internal/router"
	"github.com/sbilibin2017/gw-lesson-planner/internal/session"
	"github.com/sbilibin2017/gw-lesson-planner/internal/views"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, database and session store, then serves HTTP
// until ctx is canceled or a shutdown signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.LogEncoding); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Open database
	logger.Log.Infow("Opening database", "driver", cfg.DBDriver)
	db, err := database.Open(ctx, database.Options{
		Driver:       cfg.DBDriver,
		DSN:          cfg.DBDSN,
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxIdleConns,
	})
	if err != nil {
		return fmt.Errorf("database connection error: %w", err)
	}
	defer db.Close()

	if cfg.DBAutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			return fmt.Errorf("database migration error: %w", err)
		}
	}

	// Initialize session store
	store, closeStore, err := newSessionStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()
	logger.Log.Infow("Session store initialized", "store", cfg.SessionStore)

	renderer, err := views.New()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.Setup(db, session.NewManager(store, cfg.SessionName), renderer, logger.Log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newSessionStore builds the store selected by SESSION_STORE. The returned
// func releases the resources held by the store.
func newSessionStore(ctx context.Context, cfg *config.Config) (sessions.Store, func(), error) {
	opts := session.Options{
		Secret: []byte(cfg.SessionSecret),
		TTL:    cfg.SessionTTL,
		Secure: cfg.SessionSecure,
	}
	noop := func() {}

	switch cfg.SessionStore {
	case session.StoreFilesystem:
		store, err := session.NewFilesystemStore(cfg.SessionDir, opts)
		if err != nil {
			return nil, noop, err
		}
		return store, noop, nil

	case session.StoreCookie:
		store, err := session.NewCookieStore(opts)
		if err != nil {
			return nil, noop, err
		}
		return store, noop, nil

	case session.StoreRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:         cfg.RedisAddr(),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, noop, fmt.Errorf("redis connection error: %w", err)
		}
		store, err := session.NewRedisStore(rdb, opts)
		if err != nil {
			rdb.Close()
			return nil, noop, err
		}
		return store, func() { rdb.Close() }, nil
	}

	return nil, noop, fmt.Errorf("unsupported session store %q", cfg.SessionStore)
}
