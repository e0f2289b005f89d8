package quizgen

import (
	"math/rand/v2"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/SatvikPraveen/TSVerseHub-sub002/internal/bank"
	"github.com/SatvikPraveen/TSVerseHub-sub002/internal/question"
)

// Generator builds quizzes from a question bank.
type Generator struct {
	bank *bank.Bank
	rng  *rand.Rand
}

// NewGenerator returns a generator over the given bank with a
// time-seeded random source.
func NewGenerator(b *bank.Bank) *Generator {
	return NewGeneratorWithSource(b, rand.NewPCG(rand.Uint64(), uint64(time.Now().UnixNano())))
}

// NewGeneratorWithSource returns a generator using the given random
// source. Tests inject a fixed-seed source for deterministic selection.
func NewGeneratorWithSource(b *bank.Bank, src rand.Source) *Generator {
	return &Generator{bank: b, rng: rand.New(src)}
}

// Generate filters the bank by the criteria, selects questions, and
// returns an immutable Quiz with derived metadata. It fails with
// *InsufficientQuestionsError when the filtered pool is smaller than
// criteria.TotalQuestions.
func (g *Generator) Generate(title string, criteria Criteria) (*Quiz, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	pool := g.bank.Filter(criteria.bankFilter())
	if len(pool) < criteria.TotalQuestions {
		return nil, &InsufficientQuestionsError{
			Available: len(pool),
			Requested: criteria.TotalQuestions,
		}
	}

	var selected []question.Question
	if criteria.TotalPoints > 0 {
		selected = g.selectByPointBudget(pool, criteria.TotalQuestions, criteria.TotalPoints)
	} else {
		selected = g.selectByCount(pool, criteria.TotalQuestions)
	}

	if criteria.ShuffleQuestions {
		g.rng.Shuffle(len(selected), func(i, j int) {
			selected[i], selected[j] = selected[j], selected[i]
		})
	}
	if criteria.ShuffleOptions {
		for i := range selected {
			g.shuffleOptions(&selected[i])
		}
	}

	totalPoints := 0
	categorySet := make(map[string]bool)
	tagSet := make(map[string]bool)
	for _, q := range selected {
		totalPoints += q.Points
		if q.Category != "" {
			categorySet[q.Category] = true
		}
		for _, t := range q.Tags {
			tagSet[t] = true
		}
	}

	return &Quiz{
		ID:            uuid.New().String(),
		Title:         title,
		Questions:     selected,
		TotalPoints:   totalPoints,
		EstimatedTime: estimateTime(selected),
		Difficulty:    overallDifficulty(selected),
		Categories:    sortedSet(categorySet),
		Tags:          sortedSet(tagSet),
		CreatedAt:     time.Now().UTC(),
		Criteria:      criteria.Clone(),
	}, nil
}

// selectByCount shuffles the pool uniformly and takes the first count
// questions.
func (g *Generator) selectByCount(pool []question.Question, count int) []question.Question {
	g.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	return pool[:count]
}

// selectByPointBudget approximates the target point total: candidates are
// taken in ascending point order while they fit under the budget, with an
// early stop on an exact hit. If the greedy pass comes up short of count,
// remaining slots are filled from the unselected candidates regardless of
// budget. The budget is a ceiling for the greedy pass only; this is a
// deliberate heuristic, not a subset-sum solver, and the fill step may
// push the total past the target.
func (g *Generator) selectByPointBudget(pool []question.Question, count, budget int) []question.Question {
	sorted := append([]question.Question(nil), pool...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Points != sorted[j].Points {
			return sorted[i].Points < sorted[j].Points
		}
		return sorted[i].ID < sorted[j].ID
	})

	selected := make([]question.Question, 0, count)
	taken := make(map[string]bool, count)
	accumulated := 0
	for _, q := range sorted {
		if len(selected) >= count {
			break
		}
		if accumulated+q.Points > budget {
			continue
		}
		selected = append(selected, q)
		taken[q.ID] = true
		accumulated += q.Points
		if accumulated == budget {
			break
		}
	}

	// Fill remaining slots from unselected candidates, ascending points.
	for _, q := range sorted {
		if len(selected) >= count {
			break
		}
		if taken[q.ID] {
			continue
		}
		selected = append(selected, q)
		taken[q.ID] = true
	}
	return selected
}

// shuffleOptions reorders a multiple-choice question's options in place
// and remaps the correct indices to follow them. Other question types are
// left alone.
func (g *Generator) shuffleOptions(q *question.Question) {
	if q.Type != question.TypeMultipleChoice || q.MultipleChoice == nil {
		return
	}
	p := q.MultipleChoice

	perm := g.rng.Perm(len(p.Options)) // perm[old] = new position
	shuffled := make([]string, len(p.Options))
	for old, pos := range perm {
		shuffled[pos] = p.Options[old]
	}
	p.Options = shuffled
	p.CorrectAnswer = perm[p.CorrectAnswer]
	for i, idx := range p.CorrectAnswers {
		p.CorrectAnswers[i] = perm[idx]
	}
}

func sortedSet(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
