package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/avolkovs/techcards/internal/client/models"
)

func formatCard(c models.Flashcard) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", c.Tech, c.Question)
	if len(c.Categories) > 0 {
		fmt.Fprintf(&b, " {%s}", strings.Join(c.Categories, ", "))
	}
	if c.Difficulty != nil {
		fmt.Fprintf(&b, " (%s)", *c.Difficulty)
	}
	fmt.Fprintf(&b, "\n    id: %s", c.ID)
	return b.String()
}

func (a *App) renderListing() {
	snap := a.browser.Snapshot()
	if snap.Err != nil {
		printlnFn(snap.Err.Error())
		return
	}
	if len(snap.Items) == 0 {
		printlnFn("No flashcards found.")
		return
	}
	for _, card := range snap.Items {
		printlnFn(formatCard(card))
	}
	if snap.HasMore {
		printlnFn(fmt.Sprintf("Showing %d of %d. Type 'more' to load the next page.", len(snap.Items), snap.TotalCount))
	} else {
		printlnFn(fmt.Sprintf("Showing all %d flashcards.", snap.TotalCount))
	}
}

// List reloads the first page for the current filter and prints it.
func (a *App) List(ctx context.Context) error {
	err := a.browser.Reload(ctx)
	if err != nil {
		a.logger.Error(ctx, "listing failed", "error", err)
	}
	a.renderListing()
	return err
}

// More appends the next page to the listing.
func (a *App) More(ctx context.Context) error {
	err := a.browser.LoadMore(ctx)
	if err != nil {
		a.logger.Error(ctx, "listing failed", "error", err)
	}
	a.renderListing()
	return err
}

// Filter prompts for the three filter dimensions (empty input clears a
// dimension) and reloads the listing.
func (a *App) Filter(ctx context.Context) error {
	tech, err := getSimpleText(a.scanner, "Tech (JavaScript, TypeScript, React, Node; empty for all)", os.Stdout)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.scanner, "Category (empty for all)", os.Stdout)
	if err != nil {
		return err
	}
	search, err := getSimpleText(a.scanner, "Search text (empty for none)", os.Stdout)
	if err != nil {
		return err
	}

	a.filter = models.Filter{Tech: tech, Category: category, Search: search}
	err = a.browser.SetFilter(ctx, a.filter)
	if err != nil {
		a.logger.Error(ctx, "listing failed", "error", err)
	}
	a.renderListing()
	return err
}

// Show fetches one card by id and prints it in full, answer included.
func (a *App) Show(ctx context.Context) error {
	id, err := getSimpleText(a.scanner, "Flashcard id", os.Stdout)
	if err != nil {
		return err
	}

	card, err := a.api.Get(ctx, id)
	if err != nil {
		a.logger.Error(ctx, "fetch failed", "id", id, "error", err)
		printlnFn(err.Error())
		return err
	}

	printlnFn(formatCard(*card))
	printlnFn("A: " + card.Answer)
	return nil
}

// Categories prints every tag in use across the deck.
func (a *App) Categories(ctx context.Context) error {
	tags, err := a.api.Categories(ctx)
	if err != nil {
		a.logger.Error(ctx, "categories fetch failed", "error", err)
		printlnFn(err.Error())
		return err
	}
	if len(tags) == 0 {
		printlnFn("No categories yet.")
		return nil
	}
	printlnFn(strings.Join(tags, ", "))
	return nil
}
