// Package app initializes and runs the main application service.
// It configures logging, storage, authentication, and routing,
// and handles graceful shutdown.
package app

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/patric-chuzhbe/guessnum/internal/auth"
	"github.com/patric-chuzhbe/guessnum/internal/router"

	"github.com/patric-chuzhbe/guessnum/internal/config"
	"github.com/patric-chuzhbe/guessnum/internal/db/memorystorage"
	"github.com/patric-chuzhbe/guessnum/internal/db/postgresdb"
	"github.com/patric-chuzhbe/guessnum/internal/db/sqlitedb"
	"github.com/patric-chuzhbe/guessnum/internal/db/storage"
	"github.com/patric-chuzhbe/guessnum/internal/game"
	"github.com/patric-chuzhbe/guessnum/internal/grpcserver"
	"github.com/patric-chuzhbe/guessnum/internal/ipchecker"
	"github.com/patric-chuzhbe/guessnum/internal/livefeed"
	"github.com/patric-chuzhbe/guessnum/internal/logger"
	"github.com/patric-chuzhbe/guessnum/internal/models"
	"github.com/patric-chuzhbe/guessnum/internal/ratelimit"
	"github.com/patric-chuzhbe/guessnum/internal/roundsrecorder"
	"github.com/patric-chuzhbe/guessnum/internal/service"
)

// App encapsulates the configuration, HTTP handler, storage backend,
// and background services (such as the rounds recorder) needed to run
// the number guessing game service.
type App struct {
	cfg            *config.Config
	db             storage.Storage
	roundsRecorder *roundsrecorder.RoundsRecorder
	rateLimiter    *ratelimit.Limiter
	httpHandler    http.Handler
	grpcServer     *grpc.Server
	grpcListener   net.Listener
}

// New initializes a new instance of App by:
// - loading configuration
// - initializing logger
// - selecting and setting up storage
// - setting up the background rounds recorder
// - setting up the router and middleware
// - setting up the gRPC server
func New() (*App, error) {
	var err error
	app := &App{}

	app.cfg, err = config.New()
	if err != nil {
		return nil, err
	}

	err = logger.Init(app.cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	app.db, err = getStorageByType(app.cfg)
	if err != nil {
		return nil, err
	}

	authCookieSigningSecretKey, err := base64.URLEncoding.DecodeString(app.cfg.AuthCookieSigningSecretKey)
	if err != nil {
		return nil, err
	}

	app.roundsRecorder = roundsrecorder.New(
		app.db,
		app.cfg.RoundsQueueCapacity,
		app.cfg.RoundsFlushDelay,
	)
	app.roundsRecorder.Run()
	app.roundsRecorder.ListenErrors(func(err error) {
		logger.Log.Debugln("Error passed from the `app.roundsRecorder.ListenErrors()`:", zap.Error(err))
	})

	seed, err := game.NewSeed()
	if err != nil {
		return nil, err
	}

	leaderboardFeed := livefeed.New()

	gameService := service.New(
		app.db,
		app.roundsRecorder,
		leaderboardFeed,
		seed,
	)

	userAuthenticator := auth.New(
		app.db,
		app.cfg.AuthCookieName,
		authCookieSigningSecretKey,
	)

	app.rateLimiter = ratelimit.New(app.cfg.RateLimitRPS, app.cfg.RateLimitBurst)

	statsChecker, err := ipchecker.New(app.cfg.TrustedSubnet)
	if err != nil {
		return nil, err
	}

	app.httpHandler = router.New(
		gameService,
		userAuthenticator,
		leaderboardFeed,
		app.rateLimiter,
		statsChecker,
	)

	app.grpcServer, app.grpcListener, err = grpcserver.NewGRPCServer(
		app.cfg.GRPCRunAddr,
		grpcserver.NewGameHandler(gameService, userAuthenticator),
		userAuthenticator,
		app.db,
	)
	if err != nil {
		return nil, err
	}

	return app, nil
}

// Run starts the HTTP and gRPC servers with graceful shutdown support.
// It listens for system signals and cleans up resources upon termination.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Log.Infoln(
		"server running",
		"RunAddr", a.cfg.RunAddr,
		"GRPCRunAddr", a.cfg.GRPCRunAddr,
	)

	server := &http.Server{
		Addr:    a.cfg.RunAddr,
		Handler: a.httpHandler,
	}

	serverErrCh := make(chan error, 1)
	go func() {
		serverErrCh <- server.ListenAndServe()
	}()

	grpcServerErrCh := make(chan error, 1)
	go func() {
		grpcServerErrCh <- a.grpcServer.Serve(a.grpcListener)
	}()

	select {
	case <-ctx.Done():
		logger.Log.Infoln("Received shutdown signal. Flushing finished rounds and exiting...")
		a.grpcServer.GracefulStop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}

		a.roundsRecorder.Stop()
		a.rateLimiter.Stop()

		return a.db.Close()

	case err := <-serverErrCh:
		return fmt.Errorf("server error: %w", err)

	case err := <-grpcServerErrCh:
		return fmt.Errorf("gRPC server error: %w", err)
	}
}

// Close finalizes resources used by App such as logging.
func (a *App) Close() {
	if err := logger.Sync(); err != nil {
		fmt.Println("Logger sync error:", err)
	}
}

func getAvailableStorageType(cfg *config.Config) int {
	if cfg.DatabaseDSN != "" {
		return models.StorageTypePostgresql
	}

	if cfg.DBFileName != "" {
		return models.StorageTypeFile
	}

	return models.StorageTypeMemory
}

func getStorageByType(cfg *config.Config) (storage.Storage, error) {
	switch getAvailableStorageType(cfg) {
	case models.StorageTypeUnknown:
		return nil, errors.New("unknown storage type")

	case models.StorageTypePostgresql:
		return postgresdb.New(
			context.Background(),
			cfg.DatabaseDSN,
			cfg.DBConnectionTimeout,
		)

	case models.StorageTypeFile:
		return sqlitedb.New(
			context.Background(),
			cfg.DBFileName,
			cfg.DBConnectionTimeout,
		)
	}

	return memorystorage.New(context.Background(), cfg.DBConnectionTimeout)
}
