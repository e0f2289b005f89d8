// Package templates holds named quiz-generation presets: a default set of
// criteria per template plus the list of criteria fields a caller may
// override when generating from it.
package templates

import (
	"fmt"
	"sort"

	"github.com/SatvikPraveen/TSVerseHub-sub002/internal/question"
	"github.com/SatvikPraveen/TSVerseHub-sub002/internal/quizgen"
)

// Template is a named generation preset. Customizable lists the criteria
// field names a caller may override via CriteriaFromTemplate; overrides
// for fields not in this list are ignored.
type Template struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Description       string           `json:"description,omitempty"`
	Criteria          quizgen.Criteria `json:"criteria"`
	Customizable      []string         `json:"customizable,omitempty"`
	PassingPercentage float64          `json:"passingPercentage,omitempty"`
}

// Criteria field names accepted in a Template's Customizable list.
const (
	FieldTotalQuestions   = "totalQuestions"
	FieldTotalPoints      = "totalPoints"
	FieldCategories       = "categories"
	FieldDifficulties     = "difficulties"
	FieldTypes            = "types"
	FieldTags             = "tags"
	FieldTimeLimit        = "timeLimit"
	FieldShuffleQuestions = "shuffleQuestions"
	FieldShuffleOptions   = "shuffleOptions"
)

// NotFoundError indicates a template id that is not registered.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("template %q not found", e.ID)
}

// Registry is an in-memory template store, seeded with the built-in
// presets. Not safe for concurrent use.
type Registry struct {
	templates map[string]Template
}

// NewRegistry returns a registry pre-populated with the built-in presets.
func NewRegistry() *Registry {
	r := &Registry{templates: make(map[string]Template)}
	for _, t := range builtinTemplates() {
		r.templates[t.ID] = t
	}
	return r
}

// Get returns the template with the given id.
func (r *Registry) Get(id string) (Template, bool) {
	t, ok := r.templates[id]
	return t, ok
}

// All returns every registered template, ordered by id.
func (r *Registry) All() []Template {
	out := make([]Template, 0, len(r.templates))
	for _, t := range r.templates {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Put registers a template, replacing any existing one with the same id.
func (r *Registry) Put(t Template) error {
	if t.ID == "" {
		return fmt.Errorf("template has no id")
	}
	if err := t.Criteria.Validate(); err != nil {
		return fmt.Errorf("template %q: %w", t.ID, err)
	}
	r.templates[t.ID] = t
	return nil
}

// Remove deletes a template and reports whether it was present.
func (r *Registry) Remove(id string) bool {
	if _, ok := r.templates[id]; !ok {
		return false
	}
	delete(r.templates, id)
	return true
}

// ByDifficulty returns templates whose criteria include the given
// difficulty (or constrain no difficulty at all), ordered by id.
func (r *Registry) ByDifficulty(d question.Difficulty) []Template {
	var out []Template
	for _, t := range r.All() {
		if len(t.Criteria.Difficulties) == 0 {
			out = append(out, t)
			continue
		}
		for _, td := range t.Criteria.Difficulties {
			if td == d {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

// ByQuestionCountRange returns templates whose default question count
// lies in [min, max], ordered by id.
func (r *Registry) ByQuestionCountRange(min, max int) []Template {
	var out []Template
	for _, t := range r.All() {
		n := t.Criteria.TotalQuestions
		if n >= min && n <= max {
			out = append(out, t)
		}
	}
	return out
}

// ByMaxTimeLimit returns templates whose default time limit is at most
// the given number of minutes. Templates without a time limit are
// excluded.
func (r *Registry) ByMaxTimeLimit(minutes int) []Template {
	var out []Template
	for _, t := range r.All() {
		if t.Criteria.TimeLimit > 0 && t.Criteria.TimeLimit <= minutes {
			out = append(out, t)
		}
	}
	return out
}
