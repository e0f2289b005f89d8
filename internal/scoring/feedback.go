package scoring

import "github.com/SatvikPraveen/TSVerseHub-sub002/internal/question"

// feedbackFor returns the fixed per-kind feedback string. The strings are
// type-dispatched boilerplate, not content-aware commentary; rich
// feedback comes from the question's Explanation field.
func feedbackFor(t question.Type, correct bool) string {
	if correct {
		switch t {
		case question.TypeCodeCompletion:
			return "Correct! Your solution matches the expected code."
		case question.TypeMatching:
			return "Correct! All pairs matched."
		case question.TypeOrdering:
			return "Correct! The sequence is right."
		default:
			return "Correct!"
		}
	}
	switch t {
	case question.TypeMultipleChoice:
		return "Incorrect. Review the answer options and the explanation."
	case question.TypeTrueFalse:
		return "Incorrect. Re-read the statement carefully."
	case question.TypeShortAnswer:
		return "Incorrect. Check your wording against the expected answer."
	case question.TypeFillInBlank:
		return "Incorrect. One or more blanks do not match."
	case question.TypeMatching:
		return "Incorrect. One or more pairs are mismatched."
	case question.TypeOrdering:
		return "Incorrect. The sequence is out of order."
	case question.TypeCodeCompletion:
		return "Incorrect. Compare your code against the expected solution."
	default:
		return "Incorrect."
	}
}
