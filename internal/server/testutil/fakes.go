// Package testutil provides in-memory repository fakes that reproduce the
// Postgres filtering and pagination semantics closely enough for service and
// handler tests to run without a database.
package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/avolkovs/techcards/internal/common"
	"github.com/avolkovs/techcards/internal/server/models"
)

// FakeFlashcardRepo is an in-memory flashcards.Repository. Cards are kept in
// insertion order and listed newest-created first with ID as tiebreaker,
// matching the SQL ordering.
type FakeFlashcardRepo struct {
	mu    sync.Mutex
	cards []*models.Flashcard

	// Err, when set, is returned by every method. Used to exercise the
	// internal-error paths.
	Err error
}

func NewFakeFlashcardRepo() *FakeFlashcardRepo {
	return &FakeFlashcardRepo{}
}

func cloneCard(c *models.Flashcard) *models.Flashcard {
	cp := *c
	cp.Categories = append([]string(nil), c.Categories...)
	if cp.Categories == nil {
		cp.Categories = []string{}
	}
	if c.Difficulty != nil {
		d := *c.Difficulty
		cp.Difficulty = &d
	}
	return &cp
}

func matches(c *models.Flashcard, f models.ListFilter) bool {
	if tech, ok := f.Tech.Constraint(); ok && c.Tech != tech {
		return false
	}
	if f.Category != "" {
		found := false
		for _, cat := range c.Categories {
			if cat == f.Category {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(c.Question), needle) &&
			!strings.Contains(strings.ToLower(c.Answer), needle) {
			return false
		}
	}
	return true
}

func (r *FakeFlashcardRepo) filtered(f models.ListFilter) []*models.Flashcard {
	var out []*models.Flashcard
	for _, c := range r.cards {
		if matches(c, f) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (r *FakeFlashcardRepo) List(_ context.Context, f models.ListFilter, limit, offset int) ([]*models.Flashcard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	all := r.filtered(f)
	if offset >= len(all) {
		return []*models.Flashcard{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	page := make([]*models.Flashcard, 0, end-offset)
	for _, c := range all[offset:end] {
		page = append(page, cloneCard(c))
	}
	return page, nil
}

func (r *FakeFlashcardRepo) Count(_ context.Context, f models.ListFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return 0, r.Err
	}
	return int64(len(r.filtered(f))), nil
}

func (r *FakeFlashcardRepo) GetByID(_ context.Context, id string) (*models.Flashcard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, c := range r.cards {
		if c.ID == id {
			return cloneCard(c), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *FakeFlashcardRepo) Create(_ context.Context, card *models.Flashcard) (*models.Flashcard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	cp := cloneCard(card)
	now := time.Now().UTC()
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = now
	}
	cp.UpdatedAt = cp.CreatedAt
	r.cards = append(r.cards, cp)
	return cloneCard(cp), nil
}

func (r *FakeFlashcardRepo) Update(_ context.Context, card *models.Flashcard) (*models.Flashcard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for i, c := range r.cards {
		if c.ID == card.ID {
			cp := cloneCard(card)
			cp.CreatedAt = c.CreatedAt
			cp.UpdatedAt = time.Now().UTC()
			r.cards[i] = cp
			return cloneCard(cp), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *FakeFlashcardRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for i, c := range r.cards {
		if c.ID == id {
			r.cards = append(r.cards[:i], r.cards[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

func (r *FakeFlashcardRepo) DistinctCategories(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	seen := map[string]struct{}{}
	for _, c := range r.cards {
		for _, cat := range c.Categories {
			seen[cat] = struct{}{}
		}
	}
	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags, nil
}

// Seed inserts cards directly, preserving the given timestamps.
func (r *FakeFlashcardRepo) Seed(cards ...*models.Flashcard) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range cards {
		r.cards = append(r.cards, cloneCard(c))
	}
}

// FakeUserRepo is an in-memory users.Repository keyed by ID and email.
type FakeUserRepo struct {
	mu    sync.Mutex
	users []*models.User

	Err error
}

func NewFakeUserRepo() *FakeUserRepo {
	return &FakeUserRepo{}
}

func cloneUser(u *models.User) *models.User {
	cp := *u
	return &cp
}

func (r *FakeUserRepo) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	cp := cloneUser(user)
	now := time.Now().UTC()
	cp.CreatedAt = now
	cp.UpdatedAt = now
	r.users = append(r.users, cp)
	return cloneUser(cp), nil
}

func (r *FakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *FakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *FakeUserRepo) UpdatePasswordHash(_ context.Context, id, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for _, u := range r.users {
		if u.ID == id {
			u.PasswordHash = passwordHash
			u.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return common.ErrorNotFound
}
