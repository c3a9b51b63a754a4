package repomanager

import (
	"context"
	"database/sql"

	"github.com/avolkovs/techcards/internal/server/repositories/flashcards"
	"github.com/avolkovs/techcards/internal/server/repositories/users"
)

// RepositoryManager owns the shared database handle and vends repositories
// bound to it. The handle is injected and explicitly closed on shutdown;
// nothing else in the process holds ambient DB state.
type RepositoryManager interface {
	Conn() *sql.DB
	Users() users.Repository
	Flashcards() flashcards.Repository
	RunMigrations(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}
