package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SatvikPraveen/TSVerseHub-sub002/internal/quizgen"
	"github.com/SatvikPraveen/TSVerseHub-sub002/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a generated quiz against an answer file",
	RunE: func(cmd *cobra.Command, args []string) error {
		quizPath, _ := cmd.Flags().GetString("quiz")
		answersPath, _ := cmd.Flags().GetString("answers")
		passing, _ := cmd.Flags().GetFloat64("passing")

		quiz, err := readQuiz(quizPath)
		if err != nil {
			return err
		}
		answers, err := readAnswers(answersPath)
		if err != nil {
			return err
		}

		result := scoring.Score(quiz.Questions, answers, passing)
		if err := printJSON(result); err != nil {
			return err
		}
		if showAnalytics, _ := cmd.Flags().GetBool("analytics"); showAnalytics {
			return printJSON(scoring.Analytics(result))
		}
		return nil
	},
}

func init() {
	f := scoreCmd.Flags()
	f.String("quiz", "", "Path to a generated quiz JSON file")
	f.String("answers", "", "Path to a JSON array of user answers")
	f.Float64("passing", scoring.DefaultPassingPercentage, "Passing percentage")
	f.Bool("analytics", false, "Also print result analytics")
	_ = scoreCmd.MarkFlagRequired("quiz")
	_ = scoreCmd.MarkFlagRequired("answers")
}

func readQuiz(path string) (*quizgen.Quiz, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read quiz file: %w", err)
	}
	var quiz quizgen.Quiz
	if err := json.Unmarshal(data, &quiz); err != nil {
		return nil, fmt.Errorf("parse quiz file: %w", err)
	}
	return &quiz, nil
}

func readAnswers(path string) ([]scoring.UserAnswer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers file: %w", err)
	}
	var answers []scoring.UserAnswer
	if err := json.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("parse answers file: %w", err)
	}
	return answers, nil
}
