package templates

import (
	"github.com/SatvikPraveen/TSVerseHub-sub002/internal/question"
	"github.com/SatvikPraveen/TSVerseHub-sub002/internal/quizgen"
)

// Overrides carries per-invocation customizations of a template's
// criteria. Nil pointer and nil slice fields mean "keep the template
// default".
type Overrides struct {
	TotalQuestions   *int
	TotalPoints      *int
	Categories       []string
	Difficulties     []question.Difficulty
	Types            []question.Type
	Tags             []string
	TimeLimit        *int
	ShuffleQuestions *bool
	ShuffleOptions   *bool
}

// CriteriaFromTemplate resolves a template into concrete criteria. It
// starts from the template's defaults, then applies each supplied
// override whose field name appears in the template's Customizable list.
// Overrides of non-customizable fields are silently ignored; template
// generation is a convenience path, and callers needing strictness build
// criteria directly. Unknown template ids fail with *NotFoundError.
func (r *Registry) CriteriaFromTemplate(id string, o *Overrides) (quizgen.Criteria, error) {
	t, ok := r.templates[id]
	if !ok {
		return quizgen.Criteria{}, &NotFoundError{ID: id}
	}
	c := t.Criteria.Clone()
	if o == nil {
		return c, nil
	}

	allowed := make(map[string]bool, len(t.Customizable))
	for _, f := range t.Customizable {
		allowed[f] = true
	}

	if o.TotalQuestions != nil && allowed[FieldTotalQuestions] {
		c.TotalQuestions = *o.TotalQuestions
	}
	if o.TotalPoints != nil && allowed[FieldTotalPoints] {
		c.TotalPoints = *o.TotalPoints
	}
	if o.Categories != nil && allowed[FieldCategories] {
		c.Categories = append([]string(nil), o.Categories...)
	}
	if o.Difficulties != nil && allowed[FieldDifficulties] {
		c.Difficulties = append([]question.Difficulty(nil), o.Difficulties...)
	}
	if o.Types != nil && allowed[FieldTypes] {
		c.Types = append([]question.Type(nil), o.Types...)
	}
	if o.Tags != nil && allowed[FieldTags] {
		c.Tags = append([]string(nil), o.Tags...)
	}
	if o.TimeLimit != nil && allowed[FieldTimeLimit] {
		c.TimeLimit = *o.TimeLimit
	}
	if o.ShuffleQuestions != nil && allowed[FieldShuffleQuestions] {
		c.ShuffleQuestions = *o.ShuffleQuestions
	}
	if o.ShuffleOptions != nil && allowed[FieldShuffleOptions] {
		c.ShuffleOptions = *o.ShuffleOptions
	}
	return c, nil
}
