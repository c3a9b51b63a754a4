package models

// TechFilter constrains the tech dimension of a list query. The zero value
// is unconstrained. Parse failures deliberately collapse to unconstrained:
// an unknown tech in the query string means "no filter", never an error.
type TechFilter struct {
	tech  Tech
	exact bool
}

// ExactTech returns a filter matching only the given tech.
func ExactTech(t Tech) TechFilter {
	return TechFilter{tech: t, exact: true}
}

// TechFilterFrom parses raw into a filter. Empty or unrecognized values
// yield the unconstrained filter.
func TechFilterFrom(raw string) TechFilter {
	t, err := ParseTech(raw)
	if err != nil {
		return TechFilter{}
	}
	return ExactTech(t)
}

// Constraint reports the exact tech to match, if any.
func (f TechFilter) Constraint() (Tech, bool) {
	return f.tech, f.exact
}

// ListFilter is the conjunction of the three filter dimensions. Empty
// Category/Search strings mean the dimension is unconstrained.
type ListFilter struct {
	Tech     TechFilter
	Category string
	Search   string
}

// FlashcardPage is one page of a filtered listing plus pagination metadata.
type FlashcardPage struct {
	Flashcards []*Flashcard `json:"flashcards"`
	HasMore    bool         `json:"hasMore"`
	Page       int          `json:"page"`
	Limit      int          `json:"limit"`
	TotalCount int64        `json:"totalCount"`
}
