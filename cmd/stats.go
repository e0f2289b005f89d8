package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SatvikPraveen/TSVerseHub-sub002/internal/question"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show question bank statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := loadBank(cmd)
		if err != nil {
			return err
		}
		s := b.Statistics()
		fmt.Printf("Questions: %d (%d points total)\n", s.TotalQuestions, s.TotalPoints)

		fmt.Println("By category:")
		for _, c := range b.Categories() {
			fmt.Printf("  %-24s %d\n", c, s.CategoryCounts[c])
		}
		fmt.Println("By difficulty:")
		for _, d := range question.AllDifficulties() {
			if n := s.DifficultyCounts[d]; n > 0 {
				fmt.Printf("  %-24s %d\n", d.DisplayName(), n)
			}
		}
		fmt.Println("By type:")
		for _, t := range question.AllTypes() {
			if n := s.TypeCounts[t]; n > 0 {
				fmt.Printf("  %-24s %d\n", t.DisplayName(), n)
			}
		}
		return nil
	},
}
