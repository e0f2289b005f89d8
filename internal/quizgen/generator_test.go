package quizgen

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/SatvikPraveen/TSVerseHub-sub002/internal/bank"
	"github.com/SatvikPraveen/TSVerseHub-sub002/internal/question"
)

func tf(id, category string, difficulty question.Difficulty, points int, tags ...string) question.Question {
	return question.Question{
		ID:         id,
		Type:       question.TypeTrueFalse,
		Prompt:     "Type annotations are optional.",
		Category:   category,
		Difficulty: difficulty,
		Points:     points,
		Tags:       tags,
		TrueFalse:  &question.TrueFalsePayload{Answer: true},
	}
}

func testGenerator(t *testing.T, questions ...question.Question) *Generator {
	t.Helper()
	b := bank.New()
	for _, q := range questions {
		if err := b.Add(q); err != nil {
			t.Fatalf("Add(%s): %v", q.ID, err)
		}
	}
	return NewGeneratorWithSource(b, rand.NewPCG(7, 11))
}

func TestGenerate_CountBased(t *testing.T) {
	g := testGenerator(t,
		tf("q1", "TS-Basics", question.DifficultyBeginner, 5),
		tf("q2", "TS-Basics", question.DifficultyBeginner, 3),
		tf("q3", "TS-Advanced", question.DifficultyAdvanced, 10),
		tf("q4", "TS-Advanced", question.DifficultyAdvanced, 8),
	)

	quiz, err := g.Generate("Practice", Criteria{TotalQuestions: 3})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(quiz.Questions) != 3 {
		t.Fatalf("generated %d questions, want 3", len(quiz.Questions))
	}
	if quiz.ID == "" {
		t.Errorf("quiz has no id")
	}
	if quiz.Title != "Practice" {
		t.Errorf("Title = %q, want Practice", quiz.Title)
	}
	if quiz.CreatedAt.IsZero() {
		t.Errorf("CreatedAt not stamped")
	}

	sum := 0
	seen := map[string]bool{}
	for _, q := range quiz.Questions {
		sum += q.Points
		if seen[q.ID] {
			t.Errorf("duplicate question %q in quiz", q.ID)
		}
		seen[q.ID] = true
	}
	if quiz.TotalPoints != sum {
		t.Errorf("TotalPoints = %d, want question sum %d", quiz.TotalPoints, sum)
	}
	if quiz.EstimatedTime <= 0 {
		t.Errorf("EstimatedTime = %d, want positive", quiz.EstimatedTime)
	}
}

func TestGenerate_InsufficientPool(t *testing.T) {
	g := testGenerator(t,
		tf("q1", "TS-Basics", question.DifficultyBeginner, 5),
		tf("q2", "TS-Advanced", question.DifficultyAdvanced, 10),
	)

	_, err := g.Generate("Too big", Criteria{
		TotalQuestions: 2,
		Categories:     []string{"TS-Basics"},
	})
	if err == nil {
		t.Fatalf("Generate() succeeded with an undersized pool")
	}

	var insufficient *InsufficientQuestionsError
	if !errors.As(err, &insufficient) {
		t.Fatalf("error = %T, want *InsufficientQuestionsError", err)
	}
	if insufficient.Available != 1 || insufficient.Requested != 2 {
		t.Errorf("error counts = %d/%d, want 1 available, 2 requested",
			insufficient.Available, insufficient.Requested)
	}
}

func TestGenerate_InvalidCriteria(t *testing.T) {
	g := testGenerator(t, tf("q1", "TS-Basics", question.DifficultyBeginner, 5))

	if _, err := g.Generate("bad", Criteria{TotalQuestions: 0}); err == nil {
		t.Errorf("Generate() accepted totalQuestions = 0")
	}
	if _, err := g.Generate("bad", Criteria{TotalQuestions: 1, Difficulties: []question.Difficulty{"impossible"}}); err == nil {
		t.Errorf("Generate() accepted an unknown difficulty")
	}
}

func TestGenerate_ConcreteScenario(t *testing.T) {
	// Bank: 5 and 3 points in TS-Basics, 10 points in TS-Advanced.
	g := testGenerator(t,
		tf("q1", "TS-Basics", question.DifficultyBeginner, 5),
		tf("q2", "TS-Basics", question.DifficultyBeginner, 3),
		tf("q3", "TS-Advanced", question.DifficultyAdvanced, 10),
	)

	quiz, err := g.Generate("t", Criteria{
		TotalQuestions: 2,
		Categories:     []string{"TS-Basics"},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if quiz.TotalPoints != 8 {
		t.Errorf("TotalPoints = %d, want 8", quiz.TotalPoints)
	}
	if quiz.Difficulty != question.DifficultyBeginner {
		t.Errorf("Difficulty = %q, want beginner", quiz.Difficulty)
	}
	if len(quiz.Categories) != 1 || quiz.Categories[0] != "TS-Basics" {
		t.Errorf("Categories = %v, want [TS-Basics]", quiz.Categories)
	}
}

func TestSelectByPointBudget_GreedyNeverExceedsBudget(t *testing.T) {
	pool := []question.Question{
		tf("q1", "c", question.DifficultyBeginner, 2),
		tf("q2", "c", question.DifficultyBeginner, 3),
		tf("q3", "c", question.DifficultyBeginner, 5),
		tf("q4", "c", question.DifficultyBeginner, 7),
		tf("q5", "c", question.DifficultyBeginner, 11),
	}
	g := testGenerator(t)

	tests := []struct {
		name       string
		count      int
		budget     int
		wantIDs    []string
		wantPoints int
	}{
		// 2+3+5 = 10 exactly; early stop before q4.
		{"exact hit", 3, 10, []string{"q1", "q2", "q3"}, 10},
		// 2+3 = 5, q3 would exceed 6; count not reached so q3 fills in.
		{"fill after greedy", 3, 6, []string{"q1", "q2", "q3"}, 10},
		// Count cap reached inside the budget.
		{"count cap", 2, 100, []string{"q1", "q2"}, 5},
		// Budget below every candidate: greedy takes nothing, fill
		// provides the count.
		{"budget too small", 2, 1, []string{"q1", "q2"}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.selectByPointBudget(pool, tt.count, tt.budget)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("selected %d questions, want %d", len(got), len(tt.wantIDs))
			}
			sum := 0
			for i, q := range got {
				if q.ID != tt.wantIDs[i] {
					t.Errorf("selection[%d] = %q, want %q", i, q.ID, tt.wantIDs[i])
				}
				sum += q.Points
			}
			if sum != tt.wantPoints {
				t.Errorf("selected points = %d, want %d", sum, tt.wantPoints)
			}
		})
	}
}

func TestGenerate_PointBudget(t *testing.T) {
	g := testGenerator(t,
		tf("q1", "c", question.DifficultyBeginner, 2),
		tf("q2", "c", question.DifficultyBeginner, 3),
		tf("q3", "c", question.DifficultyBeginner, 5),
		tf("q4", "c", question.DifficultyBeginner, 7),
	)

	quiz, err := g.Generate("budget", Criteria{TotalQuestions: 2, TotalPoints: 5})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if quiz.TotalPoints != 5 {
		t.Errorf("TotalPoints = %d, want exact budget 5 (2+3)", quiz.TotalPoints)
	}
	if len(quiz.Questions) != 2 {
		t.Errorf("selected %d questions, want 2", len(quiz.Questions))
	}
}

func TestGenerate_ShuffleOptionsRemapsCorrectIndices(t *testing.T) {
	mc := question.Question{
		ID: "mc", Type: question.TypeMultipleChoice, Prompt: "Pick string and number",
		Category: "TS-Basics", Difficulty: question.DifficultyBeginner, Points: 4,
		MultipleChoice: &question.MultipleChoicePayload{
			Options:        []string{"string", "Array", "number", "Map", "Set"},
			AllowMultiple:  true,
			CorrectAnswers: []int{0, 2},
		},
	}
	single := question.Question{
		ID: "mc2", Type: question.TypeMultipleChoice, Prompt: "Pick the primitive",
		Category: "TS-Basics", Difficulty: question.DifficultyBeginner, Points: 2,
		MultipleChoice: &question.MultipleChoicePayload{
			Options:       []string{"boolean", "Array", "Map"},
			CorrectAnswer: 0,
		},
	}
	g := testGenerator(t, mc, single)

	quiz, err := g.Generate("shuffled", Criteria{TotalQuestions: 2, ShuffleOptions: true})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for _, q := range quiz.Questions {
		p := q.MultipleChoice
		if p.AllowMultiple {
			want := map[string]bool{"string": true, "number": true}
			if len(p.CorrectAnswers) != 2 {
				t.Fatalf("CorrectAnswers = %v, want 2 entries", p.CorrectAnswers)
			}
			for _, idx := range p.CorrectAnswers {
				if !want[p.Options[idx]] {
					t.Errorf("CorrectAnswers points at %q after shuffle", p.Options[idx])
				}
			}
		} else if p.Options[p.CorrectAnswer] != "boolean" {
			t.Errorf("CorrectAnswer points at %q after shuffle, want boolean", p.Options[p.CorrectAnswer])
		}
	}
}

func TestGenerate_DoesNotMutateBank(t *testing.T) {
	b := bank.New()
	if err := b.Add(tf("q1", "TS-Basics", question.DifficultyBeginner, 5)); err != nil {
		t.Fatal(err)
	}
	g := NewGeneratorWithSource(b, rand.NewPCG(1, 1))

	quiz, err := g.Generate("snap", Criteria{TotalQuestions: 1})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	quiz.Questions[0].TrueFalse.Answer = false

	stored, _ := b.Get("q1")
	if !stored.TrueFalse.Answer {
		t.Errorf("mutating a quiz question changed the bank")
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	qs := []question.Question{
		tf("q1", "c", question.DifficultyBeginner, 1),
		tf("q2", "c", question.DifficultyBeginner, 2),
		tf("q3", "c", question.DifficultyBeginner, 3),
		tf("q4", "c", question.DifficultyBeginner, 4),
	}

	run := func() []string {
		b := bank.New()
		for _, q := range qs {
			if err := b.Add(q); err != nil {
				t.Fatal(err)
			}
		}
		g := NewGeneratorWithSource(b, rand.NewPCG(42, 42))
		quiz, err := g.Generate("det", Criteria{TotalQuestions: 2})
		if err != nil {
			t.Fatal(err)
		}
		ids := make([]string, len(quiz.Questions))
		for i, q := range quiz.Questions {
			ids[i] = q.ID
		}
		return ids
	}

	first, second := run(), run()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("same seed produced different selections: %v vs %v", first, second)
		}
	}
}
