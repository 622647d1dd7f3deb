package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/johns/thoughtbuddy/internal/progress"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show progress across all journeys",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(ephemeral)
		if err != nil {
			return err
		}
		defer a.close()

		// Recompute from the journey list so stale snapshots can't
		// survive a hand-edited or imported database.
		p, err := a.progress.Recompute(a.journeys.List())
		if err != nil {
			return err
		}
		fmt.Print(progress.Format(p))
		return nil
	},
}
