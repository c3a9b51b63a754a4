package cli

import (
	"context"
	"os"
	"strings"

	"github.com/avolkovs/techcards/internal/client/models"
)

func splitCategories(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Add interactively creates a flashcard and resets the listing so the new
// card shows up in server order.
func (a *App) Add(ctx context.Context) error {
	question, err := getSimpleText(a.scanner, "Question", os.Stdout)
	if err != nil {
		return err
	}
	answer, err := getSimpleText(a.scanner, "Answer", os.Stdout)
	if err != nil {
		return err
	}
	tech, err := getSimpleText(a.scanner, "Tech (JavaScript, TypeScript, React, Node)", os.Stdout)
	if err != nil {
		return err
	}
	categoriesRaw, err := getSimpleText(a.scanner, "Categories (comma-separated, optional)", os.Stdout)
	if err != nil {
		return err
	}
	difficulty, err := getSimpleText(a.scanner, "Difficulty (easy, medium, hard; optional)", os.Stdout)
	if err != nil {
		return err
	}

	categories := splitCategories(categoriesRaw)
	in := models.CardInput{Question: &question, Answer: &answer, Tech: &tech, Categories: &categories}
	if difficulty != "" {
		in.Difficulty = &difficulty
	}

	card, err := a.api.Create(ctx, in)
	if err != nil {
		a.logger.Error(ctx, "create failed", "error", err)
		printlnFn(err.Error())
		return err
	}

	printlnFn("Created " + card.ID)
	return a.browser.OnMutated(ctx)
}

// Edit interactively updates a flashcard. Empty input keeps a field; "-"
// clears the difficulty.
func (a *App) Edit(ctx context.Context) error {
	id, err := getSimpleText(a.scanner, "Flashcard id", os.Stdout)
	if err != nil {
		return err
	}

	current, err := a.api.Get(ctx, id)
	if err != nil {
		a.logger.Error(ctx, "fetch failed", "id", id, "error", err)
		printlnFn(err.Error())
		return err
	}
	printlnFn(formatCard(*current))

	var in models.CardInput

	if v, err := getSimpleText(a.scanner, "New question (empty to keep)", os.Stdout); err != nil {
		return err
	} else if v != "" {
		in.Question = &v
	}
	if v, err := getSimpleText(a.scanner, "New answer (empty to keep)", os.Stdout); err != nil {
		return err
	} else if v != "" {
		in.Answer = &v
	}
	if v, err := getSimpleText(a.scanner, "New tech (empty to keep)", os.Stdout); err != nil {
		return err
	} else if v != "" {
		in.Tech = &v
	}
	if v, err := getSimpleText(a.scanner, "New categories (comma-separated, empty to keep)", os.Stdout); err != nil {
		return err
	} else if v != "" {
		categories := splitCategories(v)
		in.Categories = &categories
	}
	if v, err := getSimpleText(a.scanner, "New difficulty (easy, medium, hard; '-' to clear, empty to keep)", os.Stdout); err != nil {
		return err
	} else if v == "-" {
		empty := ""
		in.Difficulty = &empty
	} else if v != "" {
		in.Difficulty = &v
	}

	card, err := a.api.Update(ctx, id, in)
	if err != nil {
		a.logger.Error(ctx, "update failed", "id", id, "error", err)
		printlnFn(err.Error())
		return err
	}

	printlnFn("Updated " + card.ID)
	return a.browser.OnMutated(ctx)
}

// Delete removes a flashcard after a confirmation prompt.
func (a *App) Delete(ctx context.Context) error {
	id, err := getSimpleText(a.scanner, "Flashcard id", os.Stdout)
	if err != nil {
		return err
	}

	confirm, err := getSimpleText(a.scanner, "Delete "+id+"? (y/N)", os.Stdout)
	if err != nil {
		return err
	}
	if !strings.EqualFold(confirm, "y") {
		printlnFn("Cancelled.")
		return nil
	}

	if err := a.api.Delete(ctx, id); err != nil {
		a.logger.Error(ctx, "delete failed", "id", id, "error", err)
		printlnFn(err.Error())
		return err
	}

	printlnFn("Deleted.")
	return a.browser.OnMutated(ctx)
}
