package scoring

import (
	"strings"

	"github.com/SatvikPraveen/TSVerseHub-sub002/internal/question"
)

// Validate reports whether the submitted answer is correct for the
// question. Dispatch is exhaustive over the question kinds; an answer of
// the wrong shape for the kind is simply incorrect, never an error.
func Validate(q *question.Question, a Answer) bool {
	switch q.Type {
	case question.TypeMultipleChoice:
		return validateMultipleChoice(q.MultipleChoice, a)
	case question.TypeTrueFalse:
		return q.TrueFalse != nil && a.BoolValue != nil && *a.BoolValue == q.TrueFalse.Answer
	case question.TypeShortAnswer:
		return validateShortAnswer(q.ShortAnswer, a)
	case question.TypeFillInBlank:
		return validateFillInBlank(q.FillInBlank, a)
	case question.TypeMatching:
		return validateMatching(q.Matching, a)
	case question.TypeOrdering:
		return validateOrdering(q.Ordering, a)
	case question.TypeCodeCompletion:
		return validateCodeCompletion(q.CodeCompletion, a)
	default:
		return false
	}
}

func validateMultipleChoice(p *question.MultipleChoicePayload, a Answer) bool {
	if p == nil {
		return false
	}
	if p.AllowMultiple {
		// Multi-answer requires the multi form: set equality, order
		// independent, no credit for a single-index submission.
		if a.SelectedIndexes == nil || len(a.SelectedIndexes) != len(p.CorrectAnswers) {
			return false
		}
		want := make(map[int]bool, len(p.CorrectAnswers))
		for _, idx := range p.CorrectAnswers {
			want[idx] = true
		}
		seen := make(map[int]bool, len(a.SelectedIndexes))
		for _, idx := range a.SelectedIndexes {
			if !want[idx] || seen[idx] {
				return false
			}
			seen[idx] = true
		}
		return true
	}
	return a.SelectedIndex != nil && *a.SelectedIndex == p.CorrectAnswer
}

func validateShortAnswer(p *question.ShortAnswerPayload, a Answer) bool {
	if p == nil || a.Text == nil {
		return false
	}
	submitted := normalizeText(*a.Text, p.CaseSensitive)
	if submitted == "" {
		return false
	}
	for _, accepted := range p.AcceptedAnswers {
		want := normalizeText(accepted, p.CaseSensitive)
		if p.ExactMatch {
			if submitted == want {
				return true
			}
			continue
		}
		// Loose mode: either string containing the other counts.
		if strings.Contains(submitted, want) || strings.Contains(want, submitted) {
			return true
		}
	}
	return false
}

func validateFillInBlank(p *question.FillInBlankPayload, a Answer) bool {
	if p == nil || len(a.Blanks) != len(p.Blanks) {
		return false
	}
	for i, blank := range p.Blanks {
		submitted := normalizeText(a.Blanks[i], blank.CaseSensitive)
		matched := false
		for _, accepted := range blank.Accepted {
			if submitted == normalizeText(accepted, blank.CaseSensitive) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

func validateMatching(p *question.MatchingPayload, a Answer) bool {
	if p == nil || len(a.Pairs) != len(p.CorrectPairs) {
		return false
	}
	for left, right := range p.CorrectPairs {
		got, ok := a.Pairs[left]
		if !ok || got != right {
			return false
		}
	}
	return true
}

func validateOrdering(p *question.OrderingPayload, a Answer) bool {
	if p == nil || len(a.Order) != len(p.CorrectOrder) {
		return false
	}
	for i, id := range p.CorrectOrder {
		if a.Order[i] != id {
			return false
		}
	}
	return true
}

func validateCodeCompletion(p *question.CodeCompletionPayload, a Answer) bool {
	if p == nil || a.Text == nil {
		return false
	}
	if p.ExactMatch {
		return strings.TrimSpace(*a.Text) == strings.TrimSpace(p.Solution)
	}
	return normalizeCode(*a.Text) == normalizeCode(p.Solution)
}

// normalizeText trims surrounding whitespace and, unless the question is
// case sensitive, lowercases.
func normalizeText(s string, caseSensitive bool) string {
	s = strings.TrimSpace(s)
	if !caseSensitive {
		s = strings.ToLower(s)
	}
	return s
}

// normalizeCode collapses all whitespace runs to single spaces so that
// formatting differences do not fail a correct solution.
func normalizeCode(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
