package scoring

import (
	"time"

	"github.com/SatvikPraveen/TSVerseHub-sub002/internal/question"
)

// DefaultPassingPercentage is the pass threshold used when the caller
// does not supply one.
const DefaultPassingPercentage = 70.0

// QuestionResult is the outcome for a single question.
type QuestionResult struct {
	QuestionID     string  `json:"questionId"`
	Correct        bool    `json:"correct"`
	PointsEarned   int     `json:"pointsEarned"`
	PointsPossible int     `json:"pointsPossible"`
	Submitted      *Answer `json:"submitted,omitempty"` // nil when unanswered
	CorrectAnswer  Answer  `json:"correctAnswer"`
	TimeSpent      int     `json:"timeSpent,omitempty"` // seconds
	Feedback       string  `json:"feedback"`
}

// QuizResult aggregates a full scoring pass. Results are computed fresh
// on every call and never mutated afterward.
type QuizResult struct {
	TotalScore        float64          `json:"totalScore"`
	TotalPossible     float64          `json:"totalPossible"`
	Percentage        float64          `json:"percentage"`
	Passed            bool             `json:"passed"`
	Grade             string           `json:"grade"`
	QuestionsTotal    int              `json:"questionsTotal"`
	QuestionsCorrect  int              `json:"questionsCorrect"`
	TimeSpent         int              `json:"timeSpent"` // seconds
	PassingPercentage float64          `json:"passingPercentage"`
	Results           []QuestionResult `json:"results"`
	ScoredAt          time.Time        `json:"scoredAt"`
}

// Score validates every question against the learner's answer set and
// aggregates the outcome. A question with no submitted answer counts as
// incorrect with zero points and contributes no time. Percentage is
// defined as zero when there are no possible points, so an empty question
// list never yields NaN. passingPercentage <= 0 falls back to
// DefaultPassingPercentage.
func Score(questions []question.Question, answers []UserAnswer, passingPercentage float64) *QuizResult {
	if passingPercentage <= 0 {
		passingPercentage = DefaultPassingPercentage
	}

	byID := make(map[string]UserAnswer, len(answers))
	for _, a := range answers {
		byID[a.QuestionID] = a
	}

	result := &QuizResult{
		QuestionsTotal:    len(questions),
		PassingPercentage: passingPercentage,
		Results:           make([]QuestionResult, 0, len(questions)),
		ScoredAt:          time.Now().UTC(),
	}

	for i := range questions {
		q := &questions[i]
		qr := QuestionResult{
			QuestionID:     q.ID,
			PointsPossible: q.Points,
			CorrectAnswer:  CorrectAnswer(q),
		}

		if ua, ok := byID[q.ID]; ok {
			submitted := ua.Answer
			qr.Submitted = &submitted
			qr.TimeSpent = ua.TimeSpent
			qr.Correct = Validate(q, ua.Answer)
			result.TimeSpent += ua.TimeSpent
		}
		if qr.Correct {
			qr.PointsEarned = q.Points
			result.TotalScore += float64(q.Points)
			result.QuestionsCorrect++
		}
		qr.Feedback = feedbackFor(q.Type, qr.Correct)
		result.TotalPossible += float64(q.Points)
		result.Results = append(result.Results, qr)
	}

	if result.TotalPossible > 0 {
		result.Percentage = result.TotalScore / result.TotalPossible * 100
	}
	result.Passed = result.Percentage >= passingPercentage
	result.Grade = LetterGrade(result.Percentage)
	return result
}
