package quizgen

import "fmt"

// InsufficientQuestionsError indicates the filtered candidate pool is
// smaller than the requested question count. Generation never degrades to
// a shorter quiz silently; the caller sees the shortfall.
type InsufficientQuestionsError struct {
	Available int
	Requested int
}

func (e *InsufficientQuestionsError) Error() string {
	return fmt.Sprintf("insufficient questions: %d available, %d requested", e.Available, e.Requested)
}
