package cmd

import (
	"github.com/spf13/cobra"

	"github.com/SatvikPraveen/TSVerseHub-sub002/internal/question"
	"github.com/SatvikPraveen/TSVerseHub-sub002/internal/quizgen"
	"github.com/SatvikPraveen/TSVerseHub-sub002/internal/templates"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a quiz from the question bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := loadBank(cmd)
		if err != nil {
			return err
		}

		criteria, err := criteriaFromFlags(cmd)
		if err != nil {
			return err
		}

		title, _ := cmd.Flags().GetString("title")
		quiz, err := quizgen.NewGenerator(b).Generate(title, criteria)
		if err != nil {
			return err
		}
		return printJSON(quiz)
	},
}

func init() {
	f := generateCmd.Flags()
	f.String("title", "Practice Quiz", "Quiz title")
	f.String("template", "", "Generate from a registered template id")
	f.Int("count", 10, "Number of questions")
	f.Int("points", 0, "Point budget (0 = count-based selection)")
	f.StringSlice("category", nil, "Category filter (repeatable)")
	f.StringSlice("difficulty", nil, "Difficulty filter (repeatable)")
	f.StringSlice("type", nil, "Question type filter (repeatable)")
	f.StringSlice("tag", nil, "Tag filter, match-any (repeatable)")
	f.Bool("shuffle", false, "Shuffle question order")
	f.Bool("shuffle-options", false, "Shuffle multiple-choice options")
}

// criteriaFromFlags builds generation criteria from the command line,
// resolving --template first (flags set by the user act as overrides).
func criteriaFromFlags(cmd *cobra.Command) (quizgen.Criteria, error) {
	f := cmd.Flags()

	count, _ := f.GetInt("count")
	points, _ := f.GetInt("points")
	cats, _ := f.GetStringSlice("category")
	diffs, _ := f.GetStringSlice("difficulty")
	types, _ := f.GetStringSlice("type")
	tags, _ := f.GetStringSlice("tag")
	shuffle, _ := f.GetBool("shuffle")
	shuffleOpts, _ := f.GetBool("shuffle-options")

	if id, _ := f.GetString("template"); id != "" {
		o := &templates.Overrides{}
		if f.Changed("count") {
			o.TotalQuestions = &count
		}
		if f.Changed("points") {
			o.TotalPoints = &points
		}
		if f.Changed("category") {
			o.Categories = cats
		}
		if f.Changed("difficulty") {
			o.Difficulties = toDifficulties(diffs)
		}
		if f.Changed("type") {
			o.Types = toTypes(types)
		}
		if f.Changed("tag") {
			o.Tags = tags
		}
		if f.Changed("shuffle") {
			o.ShuffleQuestions = &shuffle
		}
		if f.Changed("shuffle-options") {
			o.ShuffleOptions = &shuffleOpts
		}
		return templates.NewRegistry().CriteriaFromTemplate(id, o)
	}

	return quizgen.Criteria{
		TotalQuestions:   count,
		TotalPoints:      points,
		Categories:       cats,
		Difficulties:     toDifficulties(diffs),
		Types:            toTypes(types),
		Tags:             tags,
		ShuffleQuestions: shuffle,
		ShuffleOptions:   shuffleOpts,
	}, nil
}

func toDifficulties(values []string) []question.Difficulty {
	out := make([]question.Difficulty, 0, len(values))
	for _, v := range values {
		out = append(out, question.Difficulty(v))
	}
	return out
}

func toTypes(values []string) []question.Type {
	out := make([]question.Type, 0, len(values))
	for _, v := range values {
		out = append(out, question.Type(v))
	}
	return out
}
