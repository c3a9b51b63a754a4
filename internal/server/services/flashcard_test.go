package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avolkovs/techcards/internal/common"
	"github.com/avolkovs/techcards/internal/server/config"
	"github.com/avolkovs/techcards/internal/server/models"
	"github.com/avolkovs/techcards/internal/server/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return cfg
}

func seedCards(repo *testutil.FakeFlashcardRepo, n int, tech models.Tech) []*models.Flashcard {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	cards := make([]*models.Flashcard, 0, n)
	for i := 0; i < n; i++ {
		c := &models.Flashcard{
			ID:         uuid.NewString(),
			Question:   "What is closure scope?",
			Answer:     "Lexical environment captured by a function",
			Tech:       tech,
			Categories: []string{"basics"},
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
			UpdatedAt:  base.Add(time.Duration(i) * time.Minute),
		}
		cards = append(cards, c)
	}
	repo.Seed(cards...)
	return cards
}

func TestList_DefaultsAndHasMore(t *testing.T) {
	repo := testutil.NewFakeFlashcardRepo()
	seedCards(repo, 45, models.TechJavaScript)
	svc := NewFlashcardService(repo, testConfig())

	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
		wantLen   int
		wantMore  bool
		wantTotal int64
	}{
		{"first page defaults", 0, 0, 1, 20, 20, true, 45},
		{"middle page", 2, 20, 2, 20, 20, true, 45},
		{"last partial page", 3, 20, 3, 20, 5, false, 45},
		{"past the end", 4, 20, 4, 20, 0, false, 45},
		{"negative inputs fall back", -3, -1, 1, 20, 20, true, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := svc.List(context.Background(), models.ListFilter{}, tt.page, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, page.Page)
			assert.Equal(t, tt.wantLimit, page.Limit)
			assert.Len(t, page.Flashcards, tt.wantLen)
			assert.Equal(t, tt.wantMore, page.HasMore)
			assert.Equal(t, tt.wantTotal, page.TotalCount)
			assert.NotNil(t, page.Flashcards)
		})
	}
}

func TestList_NewestFirst(t *testing.T) {
	repo := testutil.NewFakeFlashcardRepo()
	cards := seedCards(repo, 3, models.TechReact)
	svc := NewFlashcardService(repo, testConfig())

	page, err := svc.List(context.Background(), models.ListFilter{}, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Flashcards, 3)
	// seeded oldest to newest, listing returns newest first
	assert.Equal(t, cards[2].ID, page.Flashcards[0].ID)
	assert.Equal(t, cards[0].ID, page.Flashcards[2].ID)
}

func TestList_FilterCombination(t *testing.T) {
	repo := testutil.NewFakeFlashcardRepo()
	repo.Seed(
		&models.Flashcard{ID: uuid.NewString(), Question: "What are React hooks?", Answer: "Functions for state", Tech: models.TechReact, Categories: []string{"hooks"}, CreatedAt: time.Now()},
		&models.Flashcard{ID: uuid.NewString(), Question: "Explain useEffect", Answer: "Side effects in hooks", Tech: models.TechReact, Categories: []string{"hooks", "lifecycle"}, CreatedAt: time.Now()},
		&models.Flashcard{ID: uuid.NewString(), Question: "What is npm?", Answer: "Package manager", Tech: models.TechNode, Categories: []string{"tooling"}, CreatedAt: time.Now()},
	)
	svc := NewFlashcardService(repo, testConfig())

	filter := models.ListFilter{
		Tech:     models.ExactTech(models.TechReact),
		Category: "hooks",
		Search:   "useeffect",
	}
	page, err := svc.List(context.Background(), filter, 1, 20)
	require.NoError(t, err)
	require.Len(t, page.Flashcards, 1)
	assert.Equal(t, "Explain useEffect", page.Flashcards[0].Question)
	assert.Equal(t, int64(1), page.TotalCount)
	assert.False(t, page.HasMore)
}

func TestList_RepoFailure(t *testing.T) {
	repo := testutil.NewFakeFlashcardRepo()
	repo.Err = errors.New("connection refused")
	svc := NewFlashcardService(repo, testConfig())

	_, err := svc.List(context.Background(), models.ListFilter{}, 1, 20)
	var appErr *common.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, common.KindInternal, appErr.Kind)
	assert.Equal(t, "FETCH_ERROR", appErr.Code)
}

func TestGet(t *testing.T) {
	repo := testutil.NewFakeFlashcardRepo()
	cards := seedCards(repo, 1, models.TechTypeScript)
	svc := NewFlashcardService(repo, testConfig())

	got, err := svc.Get(context.Background(), cards[0].ID)
	require.NoError(t, err)
	assert.Equal(t, cards[0].Question, got.Question)

	_, err = svc.Get(context.Background(), uuid.NewString())
	var appErr *common.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, common.KindNotFound, appErr.Kind)

	// malformed id is indistinguishable from a missing card
	_, err = svc.Get(context.Background(), "not-a-uuid")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, common.KindNotFound, appErr.Kind)
}

func TestCreate(t *testing.T) {
	repo := testutil.NewFakeFlashcardRepo()
	svc := NewFlashcardService(repo, testConfig())

	created, err := svc.Create(context.Background(), CreateFlashcardInput{
		Question: "What is a goroutine... of JavaScript? An async function?",
		Answer:   "Not quite, but event-loop scheduled",
		Tech:     "JavaScript",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotNil(t, created.Categories)
	assert.Empty(t, created.Categories)
	assert.Nil(t, created.Difficulty)
	assert.False(t, created.CreatedAt.IsZero())

	withDiff, err := svc.Create(context.Background(), CreateFlashcardInput{
		Question:   "Explain generics",
		Answer:     "Parametric polymorphism",
		Tech:       "TypeScript",
		Categories: []string{"types"},
		Difficulty: "hard",
	})
	require.NoError(t, err)
	require.NotNil(t, withDiff.Difficulty)
	assert.Equal(t, models.DifficultyHard, *withDiff.Difficulty)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewFlashcardService(testutil.NewFakeFlashcardRepo(), testConfig())

	tests := []struct {
		name    string
		in      CreateFlashcardInput
		message string
	}{
		{
			"missing fields",
			CreateFlashcardInput{Question: "q"},
			"Missing required fields: question, answer, and tech are required",
		},
		{
			"invalid tech",
			CreateFlashcardInput{Question: "q", Answer: "a", Tech: "Rust"},
			"Invalid tech value. Must be one of: JavaScript, TypeScript, React, Node",
		},
		{
			"invalid difficulty",
			CreateFlashcardInput{Question: "q", Answer: "a", Tech: "Node", Difficulty: "brutal"},
			"Invalid difficulty value. Must be one of: easy, medium, hard",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.in)
			var appErr *common.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, common.KindValidation, appErr.Kind)
			assert.Equal(t, tt.message, appErr.Message)
		})
	}
}

func strPtr(s string) *string { return &s }

func TestUpdate_PartialFields(t *testing.T) {
	repo := testutil.NewFakeFlashcardRepo()
	hard := models.DifficultyHard
	repo.Seed(&models.Flashcard{
		ID:         uuid.NewString(),
		Question:   "Original question",
		Answer:     "Original answer",
		Tech:       models.TechNode,
		Categories: []string{"streams"},
		Difficulty: &hard,
		CreatedAt:  time.Now(),
	})
	svc := NewFlashcardService(repo, testConfig())

	page, err := svc.List(context.Background(), models.ListFilter{}, 1, 1)
	require.NoError(t, err)
	id := page.Flashcards[0].ID

	updated, err := svc.Update(context.Background(), id, UpdateFlashcardInput{
		Question: strPtr("Rewritten question"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Rewritten question", updated.Question)
	assert.Equal(t, "Original answer", updated.Answer)
	assert.Equal(t, models.TechNode, updated.Tech)
	require.NotNil(t, updated.Difficulty)
	assert.Equal(t, models.DifficultyHard, *updated.Difficulty)
}

func TestUpdate_ClearDifficulty(t *testing.T) {
	repo := testutil.NewFakeFlashcardRepo()
	medium := models.DifficultyMedium
	repo.Seed(&models.Flashcard{
		ID: uuid.NewString(), Question: "q", Answer: "a",
		Tech: models.TechReact, Categories: []string{}, Difficulty: &medium,
		CreatedAt: time.Now(),
	})
	svc := NewFlashcardService(repo, testConfig())

	page, _ := svc.List(context.Background(), models.ListFilter{}, 1, 1)
	id := page.Flashcards[0].ID

	// absent field leaves the rating alone
	unchanged, err := svc.Update(context.Background(), id, UpdateFlashcardInput{Answer: strPtr("b")})
	require.NoError(t, err)
	require.NotNil(t, unchanged.Difficulty)

	// explicit empty string clears it
	cleared, err := svc.Update(context.Background(), id, UpdateFlashcardInput{Difficulty: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, cleared.Difficulty)
}

func TestUpdate_Validation(t *testing.T) {
	repo := testutil.NewFakeFlashcardRepo()
	repo.Seed(&models.Flashcard{
		ID: uuid.NewString(), Question: "q", Answer: "a",
		Tech: models.TechReact, Categories: []string{}, CreatedAt: time.Now(),
	})
	svc := NewFlashcardService(repo, testConfig())

	page, _ := svc.List(context.Background(), models.ListFilter{}, 1, 1)
	id := page.Flashcards[0].ID

	var appErr *common.Error

	_, err := svc.Update(context.Background(), id, UpdateFlashcardInput{Tech: strPtr("COBOL")})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, common.KindValidation, appErr.Kind)

	_, err = svc.Update(context.Background(), id, UpdateFlashcardInput{Question: strPtr("")})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, common.KindValidation, appErr.Kind)

	_, err = svc.Update(context.Background(), uuid.NewString(), UpdateFlashcardInput{Answer: strPtr("b")})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, common.KindNotFound, appErr.Kind)
}

func TestDelete(t *testing.T) {
	repo := testutil.NewFakeFlashcardRepo()
	cards := seedCards(repo, 2, models.TechJavaScript)
	svc := NewFlashcardService(repo, testConfig())

	require.NoError(t, svc.Delete(context.Background(), cards[0].ID))

	var appErr *common.Error
	err := svc.Delete(context.Background(), cards[0].ID)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, common.KindNotFound, appErr.Kind)

	err = svc.Delete(context.Background(), "garbage")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, common.KindNotFound, appErr.Kind)
}

func TestCategories(t *testing.T) {
	repo := testutil.NewFakeFlashcardRepo()
	repo.Seed(
		&models.Flashcard{ID: uuid.NewString(), Question: "q1", Answer: "a1", Tech: models.TechReact, Categories: []string{"hooks", "state"}, CreatedAt: time.Now()},
		&models.Flashcard{ID: uuid.NewString(), Question: "q2", Answer: "a2", Tech: models.TechNode, Categories: []string{"async", "hooks"}, CreatedAt: time.Now()},
	)
	svc := NewFlashcardService(repo, testConfig())

	tags, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"async", "hooks", "state"}, tags)
}
