package templates

import (
	"github.com/SatvikPraveen/TSVerseHub-sub002/internal/question"
	"github.com/SatvikPraveen/TSVerseHub-sub002/internal/quizgen"
)

// builtinTemplates returns the presets every registry starts with.
func builtinTemplates() []Template {
	return []Template{
		{
			ID:          "quick-practice",
			Name:        "Quick Practice",
			Description: "A short warm-up round over the easier material.",
			Criteria: quizgen.Criteria{
				TotalQuestions:   5,
				Difficulties:     []question.Difficulty{question.DifficultyBeginner},
				TimeLimit:        10,
				ShuffleQuestions: true,
			},
			Customizable:      []string{FieldCategories, FieldTags, FieldTotalQuestions},
			PassingPercentage: 60,
		},
		{
			ID:          "standard-assessment",
			Name:        "Standard Assessment",
			Description: "A balanced mixed-difficulty quiz for checking progress.",
			Criteria: quizgen.Criteria{
				TotalQuestions: 10,
				Difficulties: []question.Difficulty{
					question.DifficultyBeginner,
					question.DifficultyIntermediate,
				},
				TimeLimit:        25,
				ShuffleQuestions: true,
				ShuffleOptions:   true,
			},
			Customizable: []string{
				FieldCategories, FieldDifficulties, FieldTags,
				FieldTotalQuestions, FieldTimeLimit,
			},
			PassingPercentage: 70,
		},
		{
			ID:          "certification-exam",
			Name:        "Certification Exam",
			Description: "A long-form exam covering intermediate and advanced material.",
			Criteria: quizgen.Criteria{
				TotalQuestions: 25,
				TotalPoints:    100,
				Difficulties: []question.Difficulty{
					question.DifficultyIntermediate,
					question.DifficultyAdvanced,
				},
				TimeLimit:        60,
				ShuffleQuestions: true,
				ShuffleOptions:   true,
			},
			Customizable:      []string{FieldCategories},
			PassingPercentage: 80,
		},
		{
			ID:          "code-drill",
			Name:        "Code Drill",
			Description: "Hands-on completion exercises only.",
			Criteria: quizgen.Criteria{
				TotalQuestions: 5,
				Types:          []question.Type{question.TypeCodeCompletion},
				TimeLimit:      30,
			},
			Customizable: []string{
				FieldCategories, FieldDifficulties, FieldTags, FieldTotalQuestions,
			},
			PassingPercentage: 70,
		},
	}
}
