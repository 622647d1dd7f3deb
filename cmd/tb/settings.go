package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/johns/thoughtbuddy/internal/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSettingsShow(cmd, args)
	},
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current preferences",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a preference",
	Long: `Changes one preference. Keys:

  sound       true/false   play sounds in the chat
  animations  true/false   animate bot replies
  reminder    true/false   daily check-in reminder
  theme       light/dark/auto`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(ephemeral)
		if err != nil {
			return err
		}
		defer a.close()

		s := a.settings.Load()
		key, value := args[0], args[1]

		switch key {
		case "theme":
			if !settings.ValidTheme(value) {
				return fmt.Errorf("theme must be light, dark, or auto")
			}
			s.Theme = value
		case "sound", "animations", "reminder":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("%s must be true or false", key)
			}
			switch key {
			case "sound":
				s.SoundEnabled = b
			case "animations":
				s.AnimationsEnabled = b
			case "reminder":
				s.ReminderEnabled = b
			}
		default:
			return fmt.Errorf("unknown setting %q", key)
		}

		if err := a.settings.Save(s); err != nil {
			return err
		}
		fmt.Printf("%s = %s\n", key, value)
		return nil
	},
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	a, err := newApp(ephemeral)
	if err != nil {
		return err
	}
	defer a.close()

	s := a.settings.Load()
	fmt.Printf("sound       %v\n", s.SoundEnabled)
	fmt.Printf("animations  %v\n", s.AnimationsEnabled)
	fmt.Printf("reminder    %v\n", s.ReminderEnabled)
	fmt.Printf("theme       %s\n", s.Theme)
	return nil
}
