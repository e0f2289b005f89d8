package quizgen

import (
	"time"

	"github.com/SatvikPraveen/TSVerseHub-sub002/internal/question"
)

// Quiz is an immutable snapshot produced by the generator: the selected
// questions in presentation order plus derived metadata. The question
// list never changes after creation; scoring reads it, nothing writes it.
type Quiz struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	Questions     []question.Question `json:"questions"`
	TotalPoints   int                 `json:"totalPoints"`
	EstimatedTime int                 `json:"estimatedTime"` // minutes
	Difficulty    question.Difficulty `json:"difficulty"`
	Categories    []string            `json:"categories"`
	Tags          []string            `json:"tags"`
	CreatedAt     time.Time           `json:"createdAt"`
	Criteria      Criteria            `json:"criteria"`
}

// QuestionByID returns the quiz question with the given id.
func (q *Quiz) QuestionByID(id string) (question.Question, bool) {
	for _, qq := range q.Questions {
		if qq.ID == id {
			return qq, true
		}
	}
	return question.Question{}, false
}
