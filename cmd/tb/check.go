package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/johns/thoughtbuddy/internal/check"
	"github.com/johns/thoughtbuddy/internal/config"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Diagnose config, database, and content problems",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		report := check.Run(cfg)
		fmt.Print(report.Format())
		if report.HasFailures() {
			return fmt.Errorf("checks failed")
		}
		return nil
	},
}
