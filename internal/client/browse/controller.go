// Package browse implements the incremental listing state machine: it owns
// the current filter, the accumulated pages and the load flags, and keeps
// them consistent when filter changes and page loads overlap.
package browse

import (
	"context"
	"sync"

	"github.com/avolkovs/techcards/internal/client/models"
)

// Fetcher is the slice of the API client the controller needs.
type Fetcher interface {
	List(ctx context.Context, filter models.Filter, page, limit int) (*models.Page, error)
}

// Controller accumulates listing pages for one filter. Changing the filter
// starts a new generation; responses from earlier generations are discarded,
// so a slow page-2 fetch can never leak into a freshly filtered list.
type Controller struct {
	mu       sync.Mutex
	fetch    Fetcher
	pageSize int

	filter         models.Filter
	items          []models.Flashcard
	page           int
	hasMore        bool
	totalCount     int64
	loadingInitial bool
	loadingMore    bool
	err            error
	generation     uint64
}

// Snapshot is an immutable view of the controller state for rendering.
type Snapshot struct {
	Filter         models.Filter
	Items          []models.Flashcard
	HasMore        bool
	TotalCount     int64
	LoadingInitial bool
	LoadingMore    bool
	Err            error
}

func NewController(fetch Fetcher, pageSize int) *Controller {
	return &Controller{fetch: fetch, pageSize: pageSize, hasMore: false}
}

// Snapshot returns a copy of the current state. The items slice is shared
// but never mutated in place, only replaced.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Filter:         c.filter,
		Items:          c.items,
		HasMore:        c.hasMore,
		TotalCount:     c.totalCount,
		LoadingInitial: c.loadingInitial,
		LoadingMore:    c.loadingMore,
		Err:            c.err,
	}
}

// SetFilter replaces the filter and reloads from the first page. The old
// items stay visible until the response lands, so a filter change does not
// blank the list while loading.
func (c *Controller) SetFilter(ctx context.Context, filter models.Filter) error {
	c.mu.Lock()
	c.filter = filter
	c.mu.Unlock()
	return c.Reload(ctx)
}

// Reload refetches the first page for the current filter under a new
// generation.
func (c *Controller) Reload(ctx context.Context) error {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	filter := c.filter
	c.loadingInitial = true
	// a pending LoadMore belongs to the old generation; its result will be
	// discarded, so the flag must not survive the reset
	c.loadingMore = false
	c.err = nil
	c.mu.Unlock()

	page, err := c.fetch.List(ctx, filter, 1, c.pageSize)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		// a newer reset owns the state now
		return nil
	}
	c.loadingInitial = false
	if err != nil {
		c.err = err
		return err
	}
	c.items = page.Flashcards
	c.page = 1
	c.hasMore = page.HasMore
	c.totalCount = page.TotalCount
	return nil
}

// LoadMore appends the next page. It is a no-op while another load is in
// flight or when the listing is exhausted, so repeated scroll triggers
// cannot fetch the same page twice.
func (c *Controller) LoadMore(ctx context.Context) error {
	c.mu.Lock()
	if c.loadingInitial || c.loadingMore || !c.hasMore {
		c.mu.Unlock()
		return nil
	}
	c.loadingMore = true
	gen := c.generation
	filter := c.filter
	next := c.page + 1
	c.mu.Unlock()

	page, err := c.fetch.List(ctx, filter, next, c.pageSize)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return nil
	}
	c.loadingMore = false
	if err != nil {
		c.err = err
		return err
	}
	c.items = append(c.items, page.Flashcards...)
	c.page = next
	c.hasMore = page.HasMore
	c.totalCount = page.TotalCount
	return nil
}

// OnMutated resets to the first page after a create, update or delete, so
// the listing reflects the server's ordering again.
func (c *Controller) OnMutated(ctx context.Context) error {
	return c.Reload(ctx)
}
