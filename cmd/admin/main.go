// Command admin is the operator tool for jobs the public API deliberately
// does not expose: account provisioning and deck seeding.
//
// Usage:
//
//	admin -cmd=adduser -email=admin@example.com -password=secret
//	admin -cmd=seed
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/avolkovs/techcards/internal/dbx"
	"github.com/avolkovs/techcards/internal/flagx"
	"github.com/avolkovs/techcards/internal/server/config"
	"github.com/avolkovs/techcards/internal/server/models"
	"github.com/avolkovs/techcards/internal/server/repositories/flashcards"
	"github.com/avolkovs/techcards/internal/server/repositories/repomanager"
	"github.com/avolkovs/techcards/internal/server/services"
	"github.com/google/uuid"
)

func main() {
	args := flagx.FilterArgs(os.Args[1:], []string{"-cmd", "-email", "-password"})

	fs := flag.NewFlagSet("admin", flag.ExitOnError)
	cmd := fs.String("cmd", "", "command to run: adduser, seed")
	email := fs.String("email", "", "account email (adduser)")
	password := fs.String("password", "", "account password (adduser)")
	if err := fs.Parse(args); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	cfg := config.LoadConfig()

	rm, err := repomanager.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	defer rm.Close()

	if err := rm.RunMigrations(ctx); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	switch *cmd {
	case "adduser":
		if err := addUser(ctx, rm, cfg, *email, *password); err != nil {
			log.Fatal(err)
		}
	case "seed":
		if err := seed(ctx, rm); err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatalf("unknown command %q (want adduser or seed)", *cmd)
	}
}

func addUser(ctx context.Context, rm repomanager.RepositoryManager, cfg *config.Config, email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("adduser requires -email and -password")
	}

	svc := services.NewUserService(rm.Users(), cfg)
	user, err := svc.CreateOrUpdateUser(ctx, email, password)
	if err != nil {
		return err
	}

	fmt.Printf("user %s ready (id %s)\n", user.Email, user.ID)
	return nil
}

// seed inserts a small starter deck in one transaction, so a half-seeded
// database cannot result from an interrupted run.
func seed(ctx context.Context, rm repomanager.RepositoryManager) error {
	medium := models.DifficultyMedium
	hard := models.DifficultyHard

	deck := []*models.Flashcard{
		{
			Question:   "What is a closure?",
			Answer:     "A function bundled with its lexical environment, keeping access to the scope it was created in.",
			Tech:       models.TechJavaScript,
			Categories: []string{"functions", "scope"},
			Difficulty: &medium,
		},
		{
			Question:   "What does the 'unknown' type mean?",
			Answer:     "A type-safe counterpart of 'any': values must be narrowed before use.",
			Tech:       models.TechTypeScript,
			Categories: []string{"types"},
			Difficulty: &medium,
		},
		{
			Question:   "When does useEffect run?",
			Answer:     "After the render is committed, and again whenever a dependency changes.",
			Tech:       models.TechReact,
			Categories: []string{"hooks", "lifecycle"},
		},
		{
			Question:   "How does the Node event loop handle blocking work?",
			Answer:     "It does not: long CPU work stalls the loop, so it belongs in worker threads.",
			Tech:       models.TechNode,
			Categories: []string{"async", "event-loop"},
			Difficulty: &hard,
		},
	}

	err := dbx.WithTx(ctx, rm.Conn(), nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := flashcards.NewPostgresRepository(tx)
		for _, card := range deck {
			card.ID = uuid.NewString()
			if _, err := repo.Create(ctx, card); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("seeded %d flashcards\n", len(deck))
	return nil
}
