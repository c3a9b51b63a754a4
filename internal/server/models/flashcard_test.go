package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTech(t *testing.T) {
	for _, v := range TechValues() {
		got, err := ParseTech(string(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	for _, bad := range []string{"", "javascript", "Go", "react", "Node.js"} {
		_, err := ParseTech(bad)
		assert.Error(t, err, "value %q must not parse", bad)
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, v := range DifficultyValues() {
		got, err := ParseDifficulty(string(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	_, err := ParseDifficulty("EASY")
	assert.Error(t, err)
}

func TestTechFilterFrom_Permissive(t *testing.T) {
	f := TechFilterFrom("React")
	tech, ok := f.Constraint()
	require.True(t, ok)
	assert.Equal(t, TechReact, tech)

	// Unknown and empty values silently become unconstrained, never errors.
	for _, raw := range []string{"", "Rust", "REACT"} {
		_, ok := TechFilterFrom(raw).Constraint()
		assert.False(t, ok, "raw %q must be unconstrained", raw)
	}
}

func TestFlashcardJSON_CategoriesNeverNull(t *testing.T) {
	card := &Flashcard{ID: "1", Question: "q", Answer: "a", Tech: TechNode, Categories: []string{}}
	b, err := json.Marshal(card)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"categories":[]`)
	assert.NotContains(t, string(b), `"difficulty"`)
}

func TestFlashcardJSON_DifficultyWhenRated(t *testing.T) {
	d := DifficultyHard
	card := &Flashcard{ID: "1", Question: "q", Answer: "a", Tech: TechNode, Categories: []string{"x"}, Difficulty: &d}
	b, err := json.Marshal(card)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"difficulty":"hard"`)
}
