package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/johns/thoughtbuddy/internal/storage"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all journeys, progress, and settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			return fmt.Errorf("this deletes everything; run again with --yes to confirm")
		}

		a, err := newApp(ephemeral)
		if err != nil {
			return err
		}
		defer a.close()

		for _, key := range []string{storage.KeyJourneys, storage.KeyProgress, storage.KeySettings} {
			if err := a.kv.Delete(key); err != nil {
				return fmt.Errorf("reset %s: %w", key, err)
			}
		}
		fmt.Println("all data cleared")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "confirm the reset")
}
