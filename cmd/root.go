package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SatvikPraveen/TSVerseHub-sub002/internal/bank"
)

var rootCmd = &cobra.Command{
	Use:   "quizgen",
	Short: "TypeScript quiz generator and scorer",
	Long:  "quizgen — generates and scores quizzes from a TSVerseHub question bank export.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("bank", "", "Path to a question bank JSON export")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadBank reads the --bank file and imports it into a fresh bank.
func loadBank(cmd *cobra.Command) (*bank.Bank, error) {
	path, _ := cmd.Flags().GetString("bank")
	if path == "" {
		return nil, fmt.Errorf("--bank is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	b := bank.New()
	if _, err := b.ImportJSON(data); err != nil {
		return nil, fmt.Errorf("import bank: %w", err)
	}
	return b, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
