package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/johns/thoughtbuddy/internal/backup"
)

var exportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Export journeys, progress, and settings to a file",
	Long: `Writes everything to a single backup file. A path ending in .zst is
zstd-compressed; any other path gets plain JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(ephemeral)
		if err != nil {
			return err
		}
		defer a.close()

		data, err := backup.Export(a.kv, time.Now)
		if err != nil {
			return err
		}
		if err := backup.WriteFile(args[0], data); err != nil {
			return err
		}
		fmt.Printf("exported to %s\n", args[0])
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Import a backup file",
	Long: `Restores journeys, progress, and settings from a backup. Sections are
independent: a bad section is reported and skipped while the valid
ones are still applied.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(ephemeral)
		if err != nil {
			return err
		}
		defer a.close()

		data, err := backup.ReadFile(args[0])
		if err != nil {
			return err
		}
		if err := backup.Import(a.kv, data, time.Now); err != nil {
			return err
		}
		fmt.Printf("imported %s\n", args[0])
		return nil
	},
}
