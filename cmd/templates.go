package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SatvikPraveen/TSVerseHub-sub002/internal/templates"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the built-in quiz templates",
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range templates.NewRegistry().All() {
			fmt.Printf("%s — %s\n", t.ID, t.Name)
			fmt.Printf("  %s\n", t.Description)
			fmt.Printf("  questions: %d", t.Criteria.TotalQuestions)
			if t.Criteria.TotalPoints > 0 {
				fmt.Printf(", points: %d", t.Criteria.TotalPoints)
			}
			if t.Criteria.TimeLimit > 0 {
				fmt.Printf(", time limit: %dm", t.Criteria.TimeLimit)
			}
			fmt.Println()
			if len(t.Customizable) > 0 {
				fmt.Printf("  customizable: %s\n", strings.Join(t.Customizable, ", "))
			}
		}
	},
}
