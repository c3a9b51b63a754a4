package flashcards

import (
	"context"

	"github.com/avolkovs/techcards/internal/server/models"
)

type Repository interface {
	// List returns one page of the filtered listing, newest first.
	List(ctx context.Context, filter models.ListFilter, limit, offset int) ([]*models.Flashcard, error)
	// Count returns the total number of cards matching the filter,
	// ignoring pagination.
	Count(ctx context.Context, filter models.ListFilter) (int64, error)
	GetByID(ctx context.Context, id string) (*models.Flashcard, error)
	Create(ctx context.Context, card *models.Flashcard) (*models.Flashcard, error)
	Update(ctx context.Context, card *models.Flashcard) (*models.Flashcard, error)
	Delete(ctx context.Context, id string) error
	// DistinctCategories returns the sorted set of all tags across all cards.
	DistinctCategories(ctx context.Context) ([]string, error)
}
