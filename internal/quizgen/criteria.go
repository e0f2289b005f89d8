// Package quizgen builds immutable quizzes from a question bank: it
// filters candidates by criteria, selects a subset by count or point
// budget, and derives the quiz-level metadata.
package quizgen

import (
	"fmt"

	"github.com/SatvikPraveen/TSVerseHub-sub002/internal/bank"
	"github.com/SatvikPraveen/TSVerseHub-sub002/internal/question"
)

// Criteria configures a generation run.
//
// TotalQuestions is required and must be positive. TotalPoints of zero
// means count-based selection; a positive value switches to the greedy
// point-budget strategy. The four filter dimensions have the same
// semantics as bank.Filter (tags are match-any). TimeLimit is advisory
// metadata in minutes; nothing in the engine enforces it.
type Criteria struct {
	TotalQuestions   int                   `json:"totalQuestions"`
	TotalPoints      int                   `json:"totalPoints,omitempty"`
	Categories       []string              `json:"categories,omitempty"`
	Difficulties     []question.Difficulty `json:"difficulties,omitempty"`
	Types            []question.Type       `json:"types,omitempty"`
	Tags             []string              `json:"tags,omitempty"`
	TimeLimit        int                   `json:"timeLimit,omitempty"`
	ShuffleQuestions bool                  `json:"shuffleQuestions,omitempty"`
	ShuffleOptions   bool                  `json:"shuffleOptions,omitempty"`
}

// Validate checks that the criteria are usable for generation.
func (c *Criteria) Validate() error {
	if c.TotalQuestions <= 0 {
		return fmt.Errorf("totalQuestions must be positive, got %d", c.TotalQuestions)
	}
	if c.TotalPoints < 0 {
		return fmt.Errorf("totalPoints must not be negative, got %d", c.TotalPoints)
	}
	if c.TimeLimit < 0 {
		return fmt.Errorf("timeLimit must not be negative, got %d", c.TimeLimit)
	}
	for _, d := range c.Difficulties {
		if !d.Valid() {
			return fmt.Errorf("unknown difficulty %q", d)
		}
	}
	for _, t := range c.Types {
		if !t.Valid() {
			return fmt.Errorf("unknown question type %q", t)
		}
	}
	return nil
}

// bankFilter maps the criteria's filter dimensions onto a bank filter.
func (c *Criteria) bankFilter() bank.Filter {
	return bank.Filter{
		Categories:   c.Categories,
		Difficulties: c.Difficulties,
		Types:        c.Types,
		Tags:         c.Tags,
	}
}

// Clone returns a deep copy of the criteria.
func (c Criteria) Clone() Criteria {
	out := c
	out.Categories = append([]string(nil), c.Categories...)
	out.Difficulties = append([]question.Difficulty(nil), c.Difficulties...)
	out.Types = append([]question.Type(nil), c.Types...)
	out.Tags = append([]string(nil), c.Tags...)
	return out
}
