package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/johns/thoughtbuddy/internal/progress"
)

var journeysCmd = &cobra.Command{
	Use:   "journeys",
	Short: "List and inspect saved journeys",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runJourneysList(cmd, args)
	},
}

var journeysListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved journeys",
	RunE:  runJourneysList,
}

var journeysShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one journey in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(ephemeral)
		if err != nil {
			return err
		}
		defer a.close()

		j, ok := a.journeys.GetByID(args[0])
		if !ok {
			return fmt.Errorf("no journey %q", args[0])
		}
		fmt.Print(progress.FormatJourney(j))
		return nil
	},
}

var journeysDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a journey",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(ephemeral)
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.journeys.Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("deleted %s\n", args[0])
		return nil
	},
}

func runJourneysList(cmd *cobra.Command, args []string) error {
	a, err := newApp(ephemeral)
	if err != nil {
		return err
	}
	defer a.close()

	fmt.Print(progress.FormatJourneys(a.journeys.List()))
	return nil
}
