package main

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johns/thoughtbuddy/cmd/tb/ui"
	"github.com/johns/thoughtbuddy/internal/catalog"
)

var chatScenario string

var chatCmd = &cobra.Command{
	Use:   "chat [what's on your mind...]",
	Short: "Start a guided chat",
	Long: `Starts the guided three-step chat. Describe what's bothering you as
arguments and the right scenario is picked for you, or choose one
directly with --scenario (see "tb content scenarios" for the list).`,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVar(&chatScenario, "scenario", "", "scenario id to start with")
}

func runChat(cmd *cobra.Command, args []string) error {
	a, err := newApp(ephemeral)
	if err != nil {
		return err
	}
	defer a.close()

	var scenario catalog.Scenario
	switch {
	case chatScenario != "":
		s, ok := a.catalog.Scenario(chatScenario)
		if !ok {
			return fmt.Errorf("unknown scenario %q (try: tb content scenarios)", chatScenario)
		}
		scenario = s
	case len(args) > 0:
		scenario = a.catalog.MatchScenario(strings.Join(args, " "))
	default:
		scenario = a.catalog.MatchScenario("")
	}

	session := a.engine.NewSession(scenario)
	prefs := a.settings.Load()
	model := ui.NewModel(a.engine, session, a.journeys, prefs, a.log)

	p := tea.NewProgram(model, tea.WithAltScreen())

	// With an external catalog configured, hot-reload edits into the
	// running chat.
	if a.cfg.ContentPath != "" {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		go func() {
			err := catalog.Watch(ctx, a.cfg.ContentPath, a.log, func(cat *catalog.Catalog) {
				p.Send(ui.CatalogReloadedMsg{Catalog: cat})
			})
			if err != nil && ctx.Err() == nil {
				a.log.Warn("content watch stopped", zap.Error(err))
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("chat: %w", err)
	}
	return nil
}
