package scoring

// gradeStep maps a minimum percentage to a letter grade. Breakpoints are
// fixed; no grading curve is applied.
type gradeStep struct {
	min   float64
	grade string
}

// gradeTable is ordered from highest to lowest breakpoint; the first
// matching step wins. Anything below 65 is an F.
var gradeTable = []gradeStep{
	{97, "A+"},
	{93, "A"},
	{90, "A-"},
	{87, "B+"},
	{83, "B"},
	{80, "B-"},
	{77, "C+"},
	{73, "C"},
	{70, "C-"},
	{67, "D+"},
	{65, "D"},
}

// LetterGrade converts a percentage (0-100) to its letter grade.
func LetterGrade(percentage float64) string {
	for _, step := range gradeTable {
		if percentage >= step.min {
			return step.grade
		}
	}
	return "F"
}
