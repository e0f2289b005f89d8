package bank

import "github.com/SatvikPraveen/TSVerseHub-sub002/internal/question"

// Statistics summarizes the bank contents, partitioned by each
// discriminant field.
type Statistics struct {
	TotalQuestions   int                         `json:"totalQuestions"`
	TotalPoints      int                         `json:"totalPoints"`
	CategoryCounts   map[string]int              `json:"categoryCounts"`
	DifficultyCounts map[question.Difficulty]int `json:"difficultyCounts"`
	TypeCounts       map[question.Type]int       `json:"typeCounts"`
}

// Statistics computes aggregate counts over the current question set.
func (b *Bank) Statistics() Statistics {
	s := Statistics{
		TotalQuestions:   len(b.questions),
		CategoryCounts:   make(map[string]int),
		DifficultyCounts: make(map[question.Difficulty]int),
		TypeCounts:       make(map[question.Type]int),
	}
	for _, q := range b.questions {
		s.TotalPoints += q.Points
		if q.Category != "" {
			s.CategoryCounts[q.Category]++
		}
		s.DifficultyCounts[q.Difficulty]++
		s.TypeCounts[q.Type]++
	}
	return s
}
