package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/avolkovs/techcards/internal/logging"
	"github.com/avolkovs/techcards/internal/server/config"
	"github.com/avolkovs/techcards/internal/server/services"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HTTPServer serves the JSON API. Reads are public; mutations sit behind the
// auth cookie.
type HTTPServer struct {
	cfg        *config.Config
	logger     logging.Logger
	flashcards *services.FlashcardService
	users      *services.UserService
	health     HealthChecker
}

func NewHTTPServer(cfg *config.Config, logger logging.Logger, flashcards *services.FlashcardService, users *services.UserService, health HealthChecker) *HTTPServer {
	return &HTTPServer{
		cfg:        cfg,
		logger:     logger,
		flashcards: flashcards,
		users:      users,
		health:     health,
	}
}

// Handler builds the routing table. Method-qualified patterns keep the
// method dispatch in the mux instead of in the handlers.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /flashcards", s.handleListFlashcards)
	mux.HandleFunc("GET /flashcards/{id}", s.handleGetFlashcard)
	mux.HandleFunc("POST /flashcards", s.requireAuth(s.handleCreateFlashcard))
	mux.HandleFunc("PUT /flashcards/{id}", s.requireAuth(s.handleUpdateFlashcard))
	mux.HandleFunc("DELETE /flashcards/{id}", s.requireAuth(s.handleDeleteFlashcard))

	mux.HandleFunc("GET /categories", s.handleCategories)

	mux.HandleFunc("POST /auth/login", s.handleLogin)
	mux.HandleFunc("POST /auth/logout", s.handleLogout)
	mux.HandleFunc("GET /auth/me", s.requireAuth(s.handleMe))

	mux.HandleFunc("GET /health", s.handleHealth)

	return s.withLogging(mux)
}

// Run serves until ctx is cancelled, then drains in-flight requests with a
// short shutdown grace period.
func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.EndpointAddr,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "starting http server", "addr", s.cfg.EndpointAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
