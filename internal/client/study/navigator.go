// Package study implements the study-session navigator: a fixed working set
// of cards fetched once at session start, a cursor with wraparound, and an
// answer-visibility flag that resets on every move.
package study

import (
	"context"
	"math/rand"

	"github.com/avolkovs/techcards/internal/client/models"
)

// Fetcher is the slice of the API client the navigator needs.
type Fetcher interface {
	List(ctx context.Context, filter models.Filter, page, limit int) (*models.Page, error)
}

// Navigator walks a study working set. The set is frozen at Load time;
// cards created or deleted afterwards do not affect a running session.
type Navigator struct {
	fetch    Fetcher
	maxCards int
	rnd      *rand.Rand

	cards       []models.Flashcard
	index       int
	answerShown bool
}

// NewNavigator builds a navigator that fetches at most maxCards per session.
// rnd drives Random; tests inject a seeded source.
func NewNavigator(fetch Fetcher, maxCards int, rnd *rand.Rand) *Navigator {
	return &Navigator{fetch: fetch, maxCards: maxCards, rnd: rnd}
}

// Load starts a session over the cards matching filter. A filter matching
// more than the ceiling is silently truncated to the newest cards.
func (n *Navigator) Load(ctx context.Context, filter models.Filter) error {
	page, err := n.fetch.List(ctx, filter, 1, n.maxCards)
	if err != nil {
		return err
	}
	n.cards = page.Flashcards
	n.index = 0
	n.answerShown = false
	return nil
}

// Len reports the working-set size.
func (n *Navigator) Len() int {
	return len(n.cards)
}

// Current returns the card under the cursor, its 1-based position and
// whether the answer is revealed. ok is false on an empty set.
func (n *Navigator) Current() (card models.Flashcard, position int, answerShown bool, ok bool) {
	if len(n.cards) == 0 {
		return models.Flashcard{}, 0, false, false
	}
	return n.cards[n.index], n.index + 1, n.answerShown, true
}

// Next advances the cursor, wrapping from the last card to the first. The
// answer is hidden again after every move.
func (n *Navigator) Next() {
	if len(n.cards) == 0 {
		return
	}
	n.index = (n.index + 1) % len(n.cards)
	n.answerShown = false
}

// Previous moves the cursor back, wrapping from the first card to the last.
func (n *Navigator) Previous() {
	if len(n.cards) == 0 {
		return
	}
	n.index = (n.index - 1 + len(n.cards)) % len(n.cards)
	n.answerShown = false
}

// Random jumps to a uniformly chosen card. The current card is a legal
// outcome; the jump still hides the answer.
func (n *Navigator) Random() {
	if len(n.cards) == 0 {
		return
	}
	n.index = n.rnd.Intn(len(n.cards))
	n.answerShown = false
}

// ToggleAnswer flips answer visibility for the current card.
func (n *Navigator) ToggleAnswer() {
	if len(n.cards) == 0 {
		return
	}
	n.answerShown = !n.answerShown
}
