package quizgen

import "fmt"

// ValidationResult carries the outcome of a structural quiz check.
// Failing validation is an expected outcome, so it is reported as data
// rather than as an error.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors,omitempty"`
}

// ValidateQuiz checks a quiz for structural self-consistency: a title,
// at least one question, positive derived totals, and a TotalPoints that
// matches the recomputed sum over its questions. It does not re-run
// generation.
func ValidateQuiz(q *Quiz) ValidationResult {
	var errs []string
	if q.Title == "" {
		errs = append(errs, "quiz has no title")
	}
	if len(q.Questions) == 0 {
		errs = append(errs, "quiz has no questions")
	}
	if q.TotalPoints <= 0 {
		errs = append(errs, fmt.Sprintf("totalPoints must be positive, got %d", q.TotalPoints))
	}
	if q.EstimatedTime <= 0 {
		errs = append(errs, fmt.Sprintf("estimatedTime must be positive, got %d", q.EstimatedTime))
	}

	sum := 0
	for _, qq := range q.Questions {
		sum += qq.Points
	}
	if len(q.Questions) > 0 && sum != q.TotalPoints {
		errs = append(errs, fmt.Sprintf("totalPoints %d does not match question sum %d", q.TotalPoints, sum))
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}
