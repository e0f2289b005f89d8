package question

import (
	"fmt"
	"sort"
)

// Question is a single bank entry. Type selects which payload field is
// populated; all other payload fields are nil. Questions are value types:
// the bank, generator, and scorer copy them and never mutate a stored
// question in place.
type Question struct {
	ID          string     `json:"id"`
	Type        Type       `json:"type"`
	Prompt      string     `json:"prompt"`
	Category    string     `json:"category"`
	Difficulty  Difficulty `json:"difficulty"`
	Points      int        `json:"points"`
	Tags        []string   `json:"tags,omitempty"`
	TimeLimit   int        `json:"timeLimit,omitempty"` // seconds, 0 = none
	Explanation string     `json:"explanation,omitempty"`
	References  []string   `json:"references,omitempty"`

	MultipleChoice *MultipleChoicePayload `json:"multipleChoice,omitempty"`
	TrueFalse      *TrueFalsePayload      `json:"trueFalse,omitempty"`
	ShortAnswer    *ShortAnswerPayload    `json:"shortAnswer,omitempty"`
	FillInBlank    *FillInBlankPayload    `json:"fillInBlank,omitempty"`
	Matching       *MatchingPayload       `json:"matching,omitempty"`
	Ordering       *OrderingPayload       `json:"ordering,omitempty"`
	CodeCompletion *CodeCompletionPayload `json:"codeCompletion,omitempty"`
}

// MultipleChoicePayload holds the options and the canonical answer for a
// multiple-choice question. When AllowMultiple is false, CorrectAnswer is
// the index of the single correct option; otherwise CorrectAnswers holds
// the indices of all correct options.
type MultipleChoicePayload struct {
	Options        []string `json:"options"`
	CorrectAnswer  int      `json:"correctAnswer"`
	AllowMultiple  bool     `json:"allowMultiple,omitempty"`
	CorrectAnswers []int    `json:"correctAnswers,omitempty"`
}

// TrueFalsePayload holds the canonical boolean answer.
type TrueFalsePayload struct {
	Answer bool `json:"answer"`
}

// ShortAnswerPayload holds the accepted answer strings and matching flags.
type ShortAnswerPayload struct {
	AcceptedAnswers []string `json:"acceptedAnswers"`
	CaseSensitive   bool     `json:"caseSensitive,omitempty"`
	ExactMatch      bool     `json:"exactMatch,omitempty"`
}

// Blank is a single gap in a fill-in-the-blank question.
type Blank struct {
	Position      int      `json:"position"`
	Accepted      []string `json:"accepted"`
	CaseSensitive bool     `json:"caseSensitive,omitempty"`
}

// FillInBlankPayload holds the text template and its blanks. Template uses
// "___" markers; Blanks are ordered by Position.
type FillInBlankPayload struct {
	Template string  `json:"template"`
	Blanks   []Blank `json:"blanks"`
}

// MatchingPayload holds the two item columns and the canonical mapping.
// CorrectPairs maps a left item index to its matching right item index.
type MatchingPayload struct {
	LeftItems    []string    `json:"leftItems"`
	RightItems   []string    `json:"rightItems"`
	CorrectPairs map[int]int `json:"correctPairs"`
}

// OrderingItem is a single sortable element of an ordering question.
type OrderingItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// OrderingPayload holds labelled items and the canonical id sequence.
type OrderingPayload struct {
	Items        []OrderingItem `json:"items"`
	CorrectOrder []string       `json:"correctOrder"`
}

// CodeTestCase documents an input/expected pair for a code-completion
// question. Test cases are descriptive review material; this engine does
// not execute code.
type CodeTestCase struct {
	Input    string `json:"input"`
	Expected string `json:"expected"`
}

// CodeCompletionPayload holds the code template to complete and the
// expected solution.
type CodeCompletionPayload struct {
	Template   string         `json:"template"`
	Solution   string         `json:"solution"`
	TestCases  []CodeTestCase `json:"testCases,omitempty"`
	ExactMatch bool           `json:"exactMatch,omitempty"`
}

// Validate checks the structural invariants of the question. It returns
// nil when the question is well formed.
func (q *Question) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("question has no id")
	}
	if !q.Type.Valid() {
		return fmt.Errorf("question %q: unknown type %q", q.ID, q.Type)
	}
	if q.Prompt == "" {
		return fmt.Errorf("question %q: empty prompt", q.ID)
	}
	if q.Points <= 0 {
		return fmt.Errorf("question %q: points must be positive, got %d", q.ID, q.Points)
	}
	if q.Difficulty != "" && !q.Difficulty.Valid() {
		return fmt.Errorf("question %q: unknown difficulty %q", q.ID, q.Difficulty)
	}
	if err := q.validatePayload(); err != nil {
		return fmt.Errorf("question %q: %w", q.ID, err)
	}
	return nil
}

func (q *Question) validatePayload() error {
	if n := q.payloadCount(); n != 1 {
		return fmt.Errorf("type %s requires exactly one payload, found %d", q.Type, n)
	}

	switch q.Type {
	case TypeMultipleChoice:
		p := q.MultipleChoice
		if p == nil {
			return fmt.Errorf("missing multipleChoice payload")
		}
		if len(p.Options) < 2 {
			return fmt.Errorf("multiple choice needs at least 2 options, got %d", len(p.Options))
		}
		if p.AllowMultiple {
			if len(p.CorrectAnswers) == 0 {
				return fmt.Errorf("allowMultiple set but correctAnswers is empty")
			}
			seen := make(map[int]bool, len(p.CorrectAnswers))
			for _, idx := range p.CorrectAnswers {
				if idx < 0 || idx >= len(p.Options) {
					return fmt.Errorf("correctAnswers index %d out of range", idx)
				}
				if seen[idx] {
					return fmt.Errorf("correctAnswers contains duplicate index %d", idx)
				}
				seen[idx] = true
			}
		} else if p.CorrectAnswer < 0 || p.CorrectAnswer >= len(p.Options) {
			return fmt.Errorf("correctAnswer index %d out of range", p.CorrectAnswer)
		}

	case TypeTrueFalse:
		if q.TrueFalse == nil {
			return fmt.Errorf("missing trueFalse payload")
		}

	case TypeShortAnswer:
		if q.ShortAnswer == nil || len(q.ShortAnswer.AcceptedAnswers) == 0 {
			return fmt.Errorf("short answer needs at least one accepted answer")
		}

	case TypeFillInBlank:
		p := q.FillInBlank
		if p == nil || len(p.Blanks) == 0 {
			return fmt.Errorf("fill-in-blank needs at least one blank")
		}
		for i, b := range p.Blanks {
			if len(b.Accepted) == 0 {
				return fmt.Errorf("blank %d has no accepted answers", i)
			}
		}

	case TypeMatching:
		p := q.Matching
		if p == nil {
			return fmt.Errorf("missing matching payload")
		}
		if len(p.LeftItems) == 0 || len(p.RightItems) == 0 {
			return fmt.Errorf("matching needs items in both columns")
		}
		if len(p.CorrectPairs) != len(p.LeftItems) {
			return fmt.Errorf("matching needs a pair for each of the %d left items, got %d", len(p.LeftItems), len(p.CorrectPairs))
		}
		for left, right := range p.CorrectPairs {
			if left < 0 || left >= len(p.LeftItems) {
				return fmt.Errorf("pair left index %d out of range", left)
			}
			if right < 0 || right >= len(p.RightItems) {
				return fmt.Errorf("pair right index %d out of range", right)
			}
		}

	case TypeOrdering:
		p := q.Ordering
		if p == nil {
			return fmt.Errorf("missing ordering payload")
		}
		if len(p.Items) < 2 {
			return fmt.Errorf("ordering needs at least 2 items, got %d", len(p.Items))
		}
		if len(p.CorrectOrder) != len(p.Items) {
			return fmt.Errorf("correctOrder must list all %d item ids, got %d", len(p.Items), len(p.CorrectOrder))
		}
		ids := make(map[string]bool, len(p.Items))
		for _, item := range p.Items {
			ids[item.ID] = true
		}
		for _, id := range p.CorrectOrder {
			if !ids[id] {
				return fmt.Errorf("correctOrder references unknown item id %q", id)
			}
		}

	case TypeCodeCompletion:
		p := q.CodeCompletion
		if p == nil || p.Solution == "" {
			return fmt.Errorf("code completion needs a solution")
		}
	}
	return nil
}

func (q *Question) payloadCount() int {
	n := 0
	if q.MultipleChoice != nil {
		n++
	}
	if q.TrueFalse != nil {
		n++
	}
	if q.ShortAnswer != nil {
		n++
	}
	if q.FillInBlank != nil {
		n++
	}
	if q.Matching != nil {
		n++
	}
	if q.Ordering != nil {
		n++
	}
	if q.CodeCompletion != nil {
		n++
	}
	return n
}

// HasTag reports whether the question carries the given tag.
func (q *Question) HasTag(tag string) bool {
	for _, t := range q.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the question. Payload pointers, slices, and
// maps are all duplicated so the copy can be shuffled or re-tagged without
// touching the original.
func (q Question) Clone() Question {
	c := q
	c.Tags = append([]string(nil), q.Tags...)
	c.References = append([]string(nil), q.References...)

	if q.MultipleChoice != nil {
		p := *q.MultipleChoice
		p.Options = append([]string(nil), q.MultipleChoice.Options...)
		p.CorrectAnswers = append([]int(nil), q.MultipleChoice.CorrectAnswers...)
		c.MultipleChoice = &p
	}
	if q.TrueFalse != nil {
		p := *q.TrueFalse
		c.TrueFalse = &p
	}
	if q.ShortAnswer != nil {
		p := *q.ShortAnswer
		p.AcceptedAnswers = append([]string(nil), q.ShortAnswer.AcceptedAnswers...)
		c.ShortAnswer = &p
	}
	if q.FillInBlank != nil {
		p := *q.FillInBlank
		p.Blanks = make([]Blank, len(q.FillInBlank.Blanks))
		for i, b := range q.FillInBlank.Blanks {
			b.Accepted = append([]string(nil), b.Accepted...)
			p.Blanks[i] = b
		}
		c.FillInBlank = &p
	}
	if q.Matching != nil {
		p := *q.Matching
		p.LeftItems = append([]string(nil), q.Matching.LeftItems...)
		p.RightItems = append([]string(nil), q.Matching.RightItems...)
		p.CorrectPairs = make(map[int]int, len(q.Matching.CorrectPairs))
		for k, v := range q.Matching.CorrectPairs {
			p.CorrectPairs[k] = v
		}
		c.Matching = &p
	}
	if q.Ordering != nil {
		p := *q.Ordering
		p.Items = append([]OrderingItem(nil), q.Ordering.Items...)
		p.CorrectOrder = append([]string(nil), q.Ordering.CorrectOrder...)
		c.Ordering = &p
	}
	if q.CodeCompletion != nil {
		p := *q.CodeCompletion
		p.TestCases = append([]CodeTestCase(nil), q.CodeCompletion.TestCases...)
		c.CodeCompletion = &p
	}
	return c
}

// SortedTags returns the question's tags sorted alphabetically.
func (q *Question) SortedTags() []string {
	tags := append([]string(nil), q.Tags...)
	sort.Strings(tags)
	return tags
}
