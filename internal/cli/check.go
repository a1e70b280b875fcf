package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/leo/vim-mux/internal/tmux"
)

func newCheckCmd() *cobra.Command {
	var pid int
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Exit 0 if the active pane is running a Vim-family editor",
		Long: `Check inspects the active pane's process tree and exits 0 when any
descendant of the pane's root process is a Vim-family editor, 1 otherwise.
Anything that prevents a definite answer (no pane pid, unreadable process
table, deadline exceeded) also exits 1, so key routing never hangs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e := newEnv()
			root := pid
			if root == 0 {
				var err error
				root, err = tmux.CurrentPanePID()
				if err != nil {
					e.log.Debug().Err(err).Msg("no pane root pid")
					return errNotDetected
				}
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), e.cfg.Timeout)
			defer cancel()
			if e.detector().EditorInPane(ctx, root) {
				return nil
			}
			return errNotDetected
		},
	}
	cmd.Flags().IntVar(&pid, "pid", 0, "check this pane root pid instead of the active pane's")
	return cmd
}
