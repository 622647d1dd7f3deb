package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Browse the built-in content",
}

var contentTrapsCmd = &cobra.Command{
	Use:   "traps",
	Short: "List all thinking traps",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(true)
		if err != nil {
			return err
		}
		defer a.close()

		for _, d := range a.catalog.Distortions() {
			fmt.Printf("%s %s (%s)\n", d.Emoji, d.Name, d.ID)
			fmt.Printf("   %s\n", d.Description)
			fmt.Printf("   Example: %s\n", d.Example)
			fmt.Printf("   Try instead: %s\n\n", d.Reframe)
		}
		return nil
	},
}

var contentFeelingsCmd = &cobra.Command{
	Use:   "feelings",
	Short: "List the feelings and their strategy tips",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(true)
		if err != nil {
			return err
		}
		defer a.close()

		for _, f := range a.catalog.Feelings() {
			fmt.Printf("%s %s\n", f.Emoji, f.Name)
			for _, s := range f.Strategies {
				fmt.Printf("   - %s\n", s)
			}
			fmt.Println()
		}
		return nil
	},
}

var contentStrategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List the coping strategies",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(true)
		if err != nil {
			return err
		}
		defer a.close()

		for _, s := range a.catalog.Strategies() {
			fmt.Printf("%s %s\n", s.Emoji, s.Name)
			fmt.Printf("   %s\n", s.Description)
			for i, step := range s.Steps {
				fmt.Printf("   %d. %s\n", i+1, step)
			}
			fmt.Println()
		}
		return nil
	},
}

var contentScenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List the chat scenarios",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(true)
		if err != nil {
			return err
		}
		defer a.close()

		for _, s := range a.catalog.Scenarios() {
			fmt.Printf("%s %-12s %s\n", s.Emoji, s.ID, s.Label)
			fmt.Printf("   e.g. %q", s.Example)
			if len(s.Keywords) > 0 {
				fmt.Printf("  (keywords: %s)", strings.Join(s.Keywords, ", "))
			}
			fmt.Println()
		}
		return nil
	},
}
