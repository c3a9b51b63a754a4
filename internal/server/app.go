// Package server initializes and runs the application: it wires the
// repository manager, the domain services and the HTTP endpoint, applies
// pending migrations and handles graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/avolkovs/techcards/internal/logging"
	"github.com/avolkovs/techcards/internal/server/config"
	"github.com/avolkovs/techcards/internal/server/httpapi"
	"github.com/avolkovs/techcards/internal/server/repositories/repomanager"
	"github.com/avolkovs/techcards/internal/server/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repoManager repomanager.RepositoryManager
	httpServer  *httpapi.HTTPServer
}

func NewApp(cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	rm, err := repomanager.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	flashcardService := services.NewFlashcardService(rm.Flashcards(), cfg)
	userService := services.NewUserService(rm.Users(), cfg)

	httpServer := httpapi.NewHTTPServer(cfg, logger, flashcardService, userService, rm)

	return &App{
		config:      cfg,
		logger:      logger,
		repoManager: rm,
		httpServer:  httpServer,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	if err := app.repoManager.RunMigrations(ctx); err != nil {
		app.logger.Error(ctx, "migrations failed", "error", err)
		return
	}

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.httpServer.Run(ctx); err != nil {
			app.logger.Error(ctx, "http server error", "error", err)
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.repoManager.Close(); err != nil {
		app.logger.Error(ctx, "closing db", "error", err)
	}

	app.logger.Info(ctx, "Shutdown complete")
}
