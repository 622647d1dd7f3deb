// Command tb is thoughtbuddy, a friendly thinking helper for kids.
// It walks a child through noticing a thought, naming the feeling
// behind it, and picking something helpful to do next.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/johns/thoughtbuddy/internal/config"
)

const version = "0.1.0"

var (
	debug     bool
	ephemeral bool
)

var rootCmd = &cobra.Command{
	Use:   "tb",
	Short: "thoughtbuddy - a thinking helper for kids",
	Long: `thoughtbuddy helps kids untangle tricky thoughts.

A guided chat walks through three questions: what are you thinking,
how does that make you feel, and what could you do about it. Along
the way it spots common thinking traps and suggests kinder ways to
look at the same situation.

Run without arguments to start a chat.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tb v%s (thoughtbuddy)\n", version)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.DefaultConfig()
		path, err := config.WriteDefault(cfg.DataDir)
		if err != nil {
			return err
		}
		fmt.Printf("config: %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write a debug log to the data directory")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "keep everything in memory, save nothing")

	journeysCmd.AddCommand(journeysListCmd)
	journeysCmd.AddCommand(journeysShowCmd)
	journeysCmd.AddCommand(journeysDeleteCmd)

	contentCmd.AddCommand(contentTrapsCmd)
	contentCmd.AddCommand(contentFeelingsCmd)
	contentCmd.AddCommand(contentStrategiesCmd)
	contentCmd.AddCommand(contentScenariosCmd)

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(journeysCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(trapsCmd)
	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tb: %v\n", err)
		os.Exit(1)
	}
}
