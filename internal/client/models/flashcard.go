// Package models holds the client-side wire types for the flashcards API.
package models

import (
	"net/url"
	"strconv"
	"time"
)

// Flashcard mirrors the server's card representation. Difficulty is nil when
// the card is unrated.
type Flashcard struct {
	ID         string    `json:"id"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	Tech       string    `json:"tech"`
	Categories []string  `json:"categories"`
	Difficulty *string   `json:"difficulty,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Page is one page of a filtered listing plus pagination metadata.
type Page struct {
	Flashcards []Flashcard `json:"flashcards"`
	HasMore    bool        `json:"hasMore"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalCount int64       `json:"totalCount"`
}

// Filter is the client's view of the three list dimensions. Empty strings
// mean unconstrained; the server ignores unknown tech values.
type Filter struct {
	Tech     string
	Category string
	Search   string
}

// Query encodes the filter and pagination into URL query parameters,
// omitting empty dimensions.
func (f Filter) Query(page, limit int) url.Values {
	q := url.Values{}
	if f.Tech != "" {
		q.Set("tech", f.Tech)
	}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return q
}

// CardInput is the create/update payload. Pointer fields are omitted when
// nil, so the same type serves full creates and partial updates.
type CardInput struct {
	Question   *string   `json:"question,omitempty"`
	Answer     *string   `json:"answer,omitempty"`
	Tech       *string   `json:"tech,omitempty"`
	Categories *[]string `json:"categories,omitempty"`
	Difficulty *string   `json:"difficulty,omitempty"`
}

// User is the public account projection returned by the profile endpoint.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
