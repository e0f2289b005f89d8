package scoring

// ResultAnalytics is a coarse post-quiz summary. The strong/weak areas
// and suggestions are driven purely by percentage thresholds; this is a
// placeholder heuristic, not a real analytics engine.
type ResultAnalytics struct {
	AverageTimePerQuestion float64  `json:"averageTimePerQuestion"` // seconds
	StrongAreas            []string `json:"strongAreas"`
	WeakAreas              []string `json:"weakAreas"`
	ImprovementSuggestions []string `json:"improvementSuggestions"`
}

// Analytics derives a summary from a scored result.
func Analytics(result *QuizResult) ResultAnalytics {
	a := ResultAnalytics{}
	if result.QuestionsTotal > 0 {
		a.AverageTimePerQuestion = float64(result.TimeSpent) / float64(result.QuestionsTotal)
	}

	switch {
	case result.Percentage >= 90:
		a.StrongAreas = append(a.StrongAreas, "Overall mastery")
		a.ImprovementSuggestions = append(a.ImprovementSuggestions,
			"Excellent work. Try a harder difficulty or a new category.")
	case result.Percentage >= 70:
		a.StrongAreas = append(a.StrongAreas, "Core concepts")
		a.ImprovementSuggestions = append(a.ImprovementSuggestions,
			"Solid result. Review the questions you missed before moving on.")
	case result.Percentage >= 50:
		a.WeakAreas = append(a.WeakAreas, "Several core concepts")
		a.ImprovementSuggestions = append(a.ImprovementSuggestions,
			"Revisit the explanations for missed questions and retake the quiz.")
	default:
		a.WeakAreas = append(a.WeakAreas, "Fundamentals")
		a.ImprovementSuggestions = append(a.ImprovementSuggestions,
			"Work back through the study material before attempting this quiz again.")
	}

	return a
}
