// Package cli is the interactive terminal frontend: a REPL over the browse
// controller, the study navigator and the API client.
package cli

import (
	"bufio"
	"context"
	"math/rand"
	"os"
	"time"

	"github.com/avolkovs/techcards/internal/client/api"
	"github.com/avolkovs/techcards/internal/client/browse"
	"github.com/avolkovs/techcards/internal/client/config"
	"github.com/avolkovs/techcards/internal/client/models"
	"github.com/avolkovs/techcards/internal/client/study"
	"github.com/avolkovs/techcards/internal/logging"
	"go.uber.org/zap"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	api       *api.Client
	browser   *browse.Controller
	session   *study.Navigator
	scanner   *bufio.Scanner
	filter    models.Filter
	userEmail string
}

func NewApp(c *config.Config) (*App, error) {

	zl, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	logger := logging.NewZapLogger(zl)

	apiClient, err := api.New(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	browser := browse.NewController(apiClient, c.PageSize)
	session := study.NewNavigator(apiClient, c.StudyMaxCards, rand.New(rand.NewSource(time.Now().UnixNano())))

	return &App{
		config:  c,
		logger:  logger,
		api:     apiClient,
		browser: browser,
		session: session,
		scanner: bufio.NewScanner(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.userEmail != ""
}

func (a *App) getStatus() string {
	if a.userEmail != "" {
		return "(" + a.userEmail + ")"
	}
	return "(guest)"
}

func (a *App) Run(ctx context.Context) {
	a.logger.Info(ctx, "client started", "server", a.config.ServerEndpointAddr)
	printlnFn("Welcome to techcards CLI (type 'help' for commands)")

	if err := a.api.Health(ctx); err != nil {
		a.logger.Warn(ctx, "health check failed", "error", err)
		printlnFn("Warning: server unreachable at " + a.config.ServerEndpointAddr)
	}

	runREPL(ctx, a, a.getStatus, a.scanner)
	a.logger.Info(ctx, "client exiting")
}
