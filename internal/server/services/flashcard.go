// Package services holds the business logic between the HTTP transport and
// the repositories: list normalization, payload validation, credential
// checks and error-kind mapping.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avolkovs/techcards/internal/common"
	"github.com/avolkovs/techcards/internal/server/config"
	"github.com/avolkovs/techcards/internal/server/models"
	"github.com/avolkovs/techcards/internal/server/repositories/flashcards"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CreateFlashcardInput is the create payload. Categories may be omitted; the
// persisted card always carries a (possibly empty) list.
type CreateFlashcardInput struct {
	Question   string   `json:"question" validate:"required"`
	Answer     string   `json:"answer" validate:"required"`
	Tech       string   `json:"tech" validate:"required,oneof=JavaScript TypeScript React Node"`
	Categories []string `json:"categories"`
	Difficulty string   `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
}

// UpdateFlashcardInput is the partial update payload. Nil fields are left
// unchanged. An empty Difficulty string clears the rating.
type UpdateFlashcardInput struct {
	Question   *string   `json:"question"`
	Answer     *string   `json:"answer"`
	Tech       *string   `json:"tech"`
	Categories *[]string `json:"categories"`
	Difficulty *string   `json:"difficulty"`
}

type FlashcardService struct {
	repo            flashcards.Repository
	validate        *validator.Validate
	defaultPageSize int
}

func NewFlashcardService(repo flashcards.Repository, cfg *config.Config) *FlashcardService {
	return &FlashcardService{
		repo:            repo,
		validate:        validator.New(validator.WithRequiredStructEnabled()),
		defaultPageSize: cfg.DefaultPageSize,
	}
}

func techValuesList() string {
	vals := models.TechValues()
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

func difficultyValuesList() string {
	vals := models.DifficultyValues()
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

// List returns one page of the filtered listing. Non-positive page or limit
// values fall back to page 1 and the configured default page size, so a
// malformed query can never produce a negative offset.
func (s *FlashcardService) List(ctx context.Context, filter models.ListFilter, page, limit int) (*models.FlashcardPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = s.defaultPageSize
	}
	offset := (page - 1) * limit

	totalCount, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", common.NewInternal("FETCH_ERROR", "Failed to fetch flashcards"), err)
	}

	items, err := s.repo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", common.NewInternal("FETCH_ERROR", "Failed to fetch flashcards"), err)
	}

	return &models.FlashcardPage{
		Flashcards: items,
		HasMore:    int64(offset+len(items)) < totalCount,
		Page:       page,
		Limit:      limit,
		TotalCount: totalCount,
	}, nil
}

// Get returns a single card. A syntactically invalid ID resolves to the same
// not-found outcome as an unknown one.
func (s *FlashcardService) Get(ctx context.Context, id string) (*models.Flashcard, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.NewNotFound("Flashcard not found")
	}

	card, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.NewNotFound("Flashcard not found")
		}
		return nil, fmt.Errorf("%w: %s", common.NewInternal("FETCH_ERROR", "Failed to fetch flashcard"), err)
	}
	return card, nil
}

func (s *FlashcardService) Create(ctx context.Context, in CreateFlashcardInput) (*models.Flashcard, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, createValidationError(err)
	}

	card := &models.Flashcard{
		ID:         uuid.NewString(),
		Question:   in.Question,
		Answer:     in.Answer,
		Tech:       models.Tech(in.Tech),
		Categories: in.Categories,
	}
	if card.Categories == nil {
		card.Categories = []string{}
	}
	if in.Difficulty != "" {
		d := models.Difficulty(in.Difficulty)
		card.Difficulty = &d
	}

	created, err := s.repo.Create(ctx, card)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", common.NewInternal("CREATE_ERROR", "Failed to create flashcard"), err)
	}
	return created, nil
}

// createValidationError maps validator failures onto the wire-visible
// messages: one for missing required fields, one per invalid enum.
func createValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "oneof" {
				switch fe.Field() {
				case "Tech":
					return common.NewValidation("Invalid tech value. Must be one of: %s", techValuesList())
				case "Difficulty":
					return common.NewValidation("Invalid difficulty value. Must be one of: %s", difficultyValuesList())
				}
			}
		}
	}
	return common.NewValidation("Missing required fields: question, answer, and tech are required")
}

func (s *FlashcardService) Update(ctx context.Context, id string, in UpdateFlashcardInput) (*models.Flashcard, error) {
	card, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Question != nil {
		if *in.Question == "" {
			return nil, common.NewValidation("Question cannot be empty")
		}
		card.Question = *in.Question
	}
	if in.Answer != nil {
		if *in.Answer == "" {
			return nil, common.NewValidation("Answer cannot be empty")
		}
		card.Answer = *in.Answer
	}
	if in.Tech != nil {
		tech, err := models.ParseTech(*in.Tech)
		if err != nil {
			return nil, common.NewValidation("Invalid tech value. Must be one of: %s", techValuesList())
		}
		card.Tech = tech
	}
	if in.Categories != nil {
		card.Categories = *in.Categories
		if card.Categories == nil {
			card.Categories = []string{}
		}
	}
	if in.Difficulty != nil {
		if *in.Difficulty == "" {
			card.Difficulty = nil
		} else {
			d, err := models.ParseDifficulty(*in.Difficulty)
			if err != nil {
				return nil, common.NewValidation("Invalid difficulty value. Must be one of: %s", difficultyValuesList())
			}
			card.Difficulty = &d
		}
	}

	updated, err := s.repo.Update(ctx, card)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.NewNotFound("Flashcard not found")
		}
		return nil, fmt.Errorf("%w: %s", common.NewInternal("UPDATE_ERROR", "Failed to update flashcard"), err)
	}
	return updated, nil
}

func (s *FlashcardService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.NewNotFound("Flashcard not found")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.NewNotFound("Flashcard not found")
		}
		return fmt.Errorf("%w: %s", common.NewInternal("DELETE_ERROR", "Failed to delete flashcard"), err)
	}
	return nil
}

// Categories returns the sorted distinct tag set across all cards, used to
// populate filter dropdowns with globally valid options.
func (s *FlashcardService) Categories(ctx context.Context) ([]string, error) {
	tags, err := s.repo.DistinctCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", common.NewInternal("FETCH_ERROR", "Failed to fetch categories"), err)
	}
	return tags, nil
}
