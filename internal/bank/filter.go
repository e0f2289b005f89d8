package bank

import (
	"sort"

	"github.com/SatvikPraveen/TSVerseHub-sub002/internal/question"
)

// Filter narrows the bank down to questions matching every supplied
// dimension. Nil/empty dimensions impose no constraint. List dimensions
// (Categories, Difficulties, Types) are membership tests; Tags matches
// when at least one requested tag is present on the question (match-any,
// not match-all). MaxPoints of zero means unbounded.
type Filter struct {
	Categories   []string
	Difficulties []question.Difficulty
	Types        []question.Type
	Tags         []string
	MinPoints    int
	MaxPoints    int
}

// Filter returns copies of all questions satisfying f, ordered by id.
func (b *Bank) Filter(f Filter) []question.Question {
	var out []question.Question
	for _, q := range b.questions {
		if f.matches(&q) {
			out = append(out, q.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *Filter) matches(q *question.Question) bool {
	if len(f.Categories) > 0 && !containsString(f.Categories, q.Category) {
		return false
	}
	if len(f.Difficulties) > 0 && !containsDifficulty(f.Difficulties, q.Difficulty) {
		return false
	}
	if len(f.Types) > 0 && !containsType(f.Types, q.Type) {
		return false
	}
	if len(f.Tags) > 0 && !hasAnyTag(q, f.Tags) {
		return false
	}
	if f.MinPoints > 0 && q.Points < f.MinPoints {
		return false
	}
	if f.MaxPoints > 0 && q.Points > f.MaxPoints {
		return false
	}
	return true
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func containsDifficulty(list []question.Difficulty, v question.Difficulty) bool {
	for _, d := range list {
		if d == v {
			return true
		}
	}
	return false
}

func containsType(list []question.Type, v question.Type) bool {
	for _, t := range list {
		if t == v {
			return true
		}
	}
	return false
}

func hasAnyTag(q *question.Question, tags []string) bool {
	for _, t := range tags {
		if q.HasTag(t) {
			return true
		}
	}
	return false
}
