package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"sevanear/internal/app"
	"sevanear/internal/tui"
)

// browse: the interactive multi-page UI.
func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse services interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			maps := tui.NewMapRecorder()
			w, err := app.NewWire(appCfg, nil, maps)
			if err != nil {
				return err
			}
			program := tea.NewProgram(tui.New(w, maps), tea.WithAltScreen())
			_, err = program.Run()
			return err
		},
	}
}
