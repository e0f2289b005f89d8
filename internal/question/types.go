package question

// Type discriminates the question variants. Exactly one payload field on
// Question is populated, matching this value.
type Type string

const (
	TypeMultipleChoice Type = "multiple_choice"
	TypeTrueFalse      Type = "true_false"
	TypeShortAnswer    Type = "short_answer"
	TypeFillInBlank    Type = "fill_in_blank"
	TypeMatching       Type = "matching"
	TypeOrdering       Type = "ordering"
	TypeCodeCompletion Type = "code_completion"
)

// AllTypes returns every question type in a stable order.
func AllTypes() []Type {
	return []Type{
		TypeMultipleChoice,
		TypeTrueFalse,
		TypeShortAnswer,
		TypeFillInBlank,
		TypeMatching,
		TypeOrdering,
		TypeCodeCompletion,
	}
}

// Valid reports whether t is one of the known question types.
func (t Type) Valid() bool {
	switch t {
	case TypeMultipleChoice, TypeTrueFalse, TypeShortAnswer, TypeFillInBlank,
		TypeMatching, TypeOrdering, TypeCodeCompletion:
		return true
	}
	return false
}

// DisplayName returns a human-readable label for the type.
func (t Type) DisplayName() string {
	switch t {
	case TypeMultipleChoice:
		return "Multiple Choice"
	case TypeTrueFalse:
		return "True/False"
	case TypeShortAnswer:
		return "Short Answer"
	case TypeFillInBlank:
		return "Fill in the Blank"
	case TypeMatching:
		return "Matching"
	case TypeOrdering:
		return "Ordering"
	case TypeCodeCompletion:
		return "Code Completion"
	default:
		return string(t)
	}
}

// Difficulty represents how hard a question is.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
	DifficultyExpert       Difficulty = "expert"
)

// AllDifficulties returns all difficulties from lowest to highest.
func AllDifficulties() []Difficulty {
	return []Difficulty{
		DifficultyBeginner,
		DifficultyIntermediate,
		DifficultyAdvanced,
		DifficultyExpert,
	}
}

// Valid reports whether d is one of the known difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced, DifficultyExpert:
		return true
	}
	return false
}

// Ordinal returns the numeric rank of the difficulty (beginner=1 ... expert=4).
// Unknown difficulties rank as beginner.
func (d Difficulty) Ordinal() int {
	switch d {
	case DifficultyIntermediate:
		return 2
	case DifficultyAdvanced:
		return 3
	case DifficultyExpert:
		return 4
	default:
		return 1
	}
}

// DisplayName returns a human-readable label for the difficulty.
func (d Difficulty) DisplayName() string {
	switch d {
	case DifficultyBeginner:
		return "Beginner"
	case DifficultyIntermediate:
		return "Intermediate"
	case DifficultyAdvanced:
		return "Advanced"
	case DifficultyExpert:
		return "Expert"
	default:
		return string(d)
	}
}
