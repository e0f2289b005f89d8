package quizgen

import (
	"math/rand/v2"
	"testing"

	"github.com/SatvikPraveen/TSVerseHub-sub002/internal/bank"
	"github.com/SatvikPraveen/TSVerseHub-sub002/internal/question"
)

func generatedQuiz(t *testing.T) *Quiz {
	t.Helper()
	b := bank.New()
	for _, q := range []question.Question{
		tf("q1", "TS-Basics", question.DifficultyBeginner, 5),
		tf("q2", "TS-Basics", question.DifficultyBeginner, 3),
	} {
		if err := b.Add(q); err != nil {
			t.Fatal(err)
		}
	}
	quiz, err := NewGeneratorWithSource(b, rand.NewPCG(1, 2)).Generate("valid", Criteria{TotalQuestions: 2})
	if err != nil {
		t.Fatal(err)
	}
	return quiz
}

func TestValidateQuiz(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Quiz)
		wantValid bool
		wantErrs  int
	}{
		{"generated quiz is valid", func(q *Quiz) {}, true, 0},
		{"missing title", func(q *Quiz) { q.Title = "" }, false, 1},
		{"totalPoints drift", func(q *Quiz) { q.TotalPoints = 99 }, false, 1},
		{"zero estimated time", func(q *Quiz) { q.EstimatedTime = 0 }, false, 1},
		{"no questions", func(q *Quiz) {
			q.Questions = nil
			q.TotalPoints = 0
			q.EstimatedTime = 0
		}, false, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quiz := generatedQuiz(t)
			tt.mutate(quiz)
			res := ValidateQuiz(quiz)
			if res.IsValid != tt.wantValid {
				t.Errorf("IsValid = %v, want %v (errors: %v)", res.IsValid, tt.wantValid, res.Errors)
			}
			if len(res.Errors) != tt.wantErrs {
				t.Errorf("got %d errors %v, want %d", len(res.Errors), res.Errors, tt.wantErrs)
			}
		})
	}
}
