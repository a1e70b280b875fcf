package cli

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/leo/vim-mux/internal/tmux"
)

func newNavigateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "navigate <left|right|up|down|previous>",
		Short: "Send the navigation key to Vim, or select the pane in that direction",
		Long: `Navigate is the whole key-routing decision in one command: when the
active pane's process tree contains an editor the configured key for the
direction is forwarded to the pane, otherwise tmux select-pane runs.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"left", "right", "up", "down", "previous"},
		RunE: func(cmd *cobra.Command, args []string) error {
			e := newEnv()
			dir := tmux.Direction(args[0])
			if tmux.SelectFlag(dir) == "" {
				return errors.Errorf("unknown direction %q", args[0])
			}

			root, err := tmux.CurrentPanePID()
			if err == nil {
				ctx, cancel := context.WithTimeout(cmd.Context(), e.cfg.Timeout)
				defer cancel()
				if e.detector().EditorInPane(ctx, root) {
					return tmux.SendKeysToActive(e.cfg.Keys.For(string(dir)))
				}
			} else {
				e.log.Debug().Err(err).Msg("no pane root pid, selecting pane")
			}
			return tmux.SelectPane(dir)
		},
	}
}
