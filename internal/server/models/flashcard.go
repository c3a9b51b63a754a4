// Package models holds the server-side domain types: flashcards, users and
// the list-query contract shared by repositories and services.
package models

import (
	"fmt"
	"time"
)

// Tech is the closed set of technologies a flashcard can be tagged with.
type Tech string

const (
	TechJavaScript Tech = "JavaScript"
	TechTypeScript Tech = "TypeScript"
	TechReact      Tech = "React"
	TechNode       Tech = "Node"
)

// TechValues lists the valid Tech members in display order.
func TechValues() []Tech {
	return []Tech{TechJavaScript, TechTypeScript, TechReact, TechNode}
}

// ParseTech validates raw against the Tech enumeration.
func ParseTech(raw string) (Tech, error) {
	for _, t := range TechValues() {
		if raw == string(t) {
			return t, nil
		}
	}
	return "", fmt.Errorf("invalid tech value: %q", raw)
}

// Difficulty is the optional rating of a flashcard. A nil *Difficulty on a
// card means "unrated".
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DifficultyValues lists the valid Difficulty members.
func DifficultyValues() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty validates raw against the Difficulty enumeration.
func ParseDifficulty(raw string) (Difficulty, error) {
	for _, d := range DifficultyValues() {
		if raw == string(d) {
			return d, nil
		}
	}
	return "", fmt.Errorf("invalid difficulty value: %q", raw)
}

// Flashcard is a persisted study card. Question, Answer and Tech are always
// non-empty; Categories is always a list, never nil, so it marshals as [].
type Flashcard struct {
	ID         string      `json:"id"`
	Question   string      `json:"question"`
	Answer     string      `json:"answer"`
	Tech       Tech        `json:"tech"`
	Categories []string    `json:"categories"`
	Difficulty *Difficulty `json:"difficulty,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}
