package scoring

import "github.com/SatvikPraveen/TSVerseHub-sub002/internal/question"

// CorrectAnswer projects the question's canonical answer into the Answer
// shape. It is review/feedback material for the UI layer; scoring goes
// through Validate, not through comparing against this projection.
func CorrectAnswer(q *question.Question) Answer {
	switch q.Type {
	case question.TypeMultipleChoice:
		if q.MultipleChoice == nil {
			return Answer{}
		}
		if q.MultipleChoice.AllowMultiple {
			return IndexesAnswer(append([]int(nil), q.MultipleChoice.CorrectAnswers...)...)
		}
		return IndexAnswer(q.MultipleChoice.CorrectAnswer)

	case question.TypeTrueFalse:
		if q.TrueFalse == nil {
			return Answer{}
		}
		return BoolAnswer(q.TrueFalse.Answer)

	case question.TypeShortAnswer:
		if q.ShortAnswer == nil || len(q.ShortAnswer.AcceptedAnswers) == 0 {
			return Answer{}
		}
		// The first accepted answer is the canonical one.
		return TextAnswer(q.ShortAnswer.AcceptedAnswers[0])

	case question.TypeFillInBlank:
		if q.FillInBlank == nil {
			return Answer{}
		}
		blanks := make([]string, len(q.FillInBlank.Blanks))
		for i, b := range q.FillInBlank.Blanks {
			if len(b.Accepted) > 0 {
				blanks[i] = b.Accepted[0]
			}
		}
		return BlanksAnswer(blanks...)

	case question.TypeMatching:
		if q.Matching == nil {
			return Answer{}
		}
		pairs := make(map[int]int, len(q.Matching.CorrectPairs))
		for k, v := range q.Matching.CorrectPairs {
			pairs[k] = v
		}
		return PairsAnswer(pairs)

	case question.TypeOrdering:
		if q.Ordering == nil {
			return Answer{}
		}
		return OrderAnswer(append([]string(nil), q.Ordering.CorrectOrder...)...)

	case question.TypeCodeCompletion:
		if q.CodeCompletion == nil {
			return Answer{}
		}
		return TextAnswer(q.CodeCompletion.Solution)

	default:
		return Answer{}
	}
}
