package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/johns/thoughtbuddy/internal/classify"
)

var trapsCmd = &cobra.Command{
	Use:   "traps <thought...>",
	Short: "Check a thought for thinking traps",
	Long: `Checks a thought against the known thinking traps and prints the
matches, each with a kinder way to look at the same situation. With
no match, a few common traps are shown instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(true)
		if err != nil {
			return err
		}
		defer a.close()

		text := strings.Join(args, " ")
		classifier := classify.New(a.catalog)

		detected := classifier.Classify(text)
		if len(detected) == 0 {
			fmt.Println("No thinking traps spotted! Here are some common ones to know about:")
		} else {
			fmt.Printf("Found %d thinking trap(s) in that thought:\n", len(detected))
		}
		fmt.Println()

		for _, d := range classifier.SuggestTraps(text) {
			fmt.Printf("%s %s\n", d.Emoji, d.Name)
			fmt.Printf("   %s\n", d.Description)
			fmt.Printf("   Try instead: %s\n\n", d.Reframe)
		}
		return nil
	},
}
