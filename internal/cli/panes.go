package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/leo/vim-mux/internal/tmux"
	"github.com/leo/vim-mux/internal/tui"
)

func newPanesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "panes",
		Short: "Inspect all panes interactively and jump to one",
		Long: `Panes opens a one-shot inspector over every tmux pane, showing which
ones have an editor in their process tree. Enter switches to the selected
pane, r takes a fresh snapshot, q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !tmux.InsideTmux() {
				return errors.New("vim-mux panes must be run inside tmux")
			}
			e := newEnv()
			p := tea.NewProgram(tui.NewModel(e.detector(), e.cfg.Timeout), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}
