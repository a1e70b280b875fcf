package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leo/vim-mux/internal/proc"
	"github.com/leo/vim-mux/internal/tmux"
	"github.com/leo/vim-mux/internal/tui"
)

func newTreeCmd() *cobra.Command {
	var pid int
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the active pane's process tree with editor matches highlighted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e := newEnv()
			root := pid
			if root == 0 {
				var err error
				root, err = tmux.CurrentPanePID()
				if err != nil {
					return err
				}
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), e.cfg.Timeout)
			defer cancel()
			table, err := proc.Reader{}.ReadAll(ctx)
			if err != nil {
				return err
			}
			det := e.detector()
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderProcessTree(table, root, det.IsEditor))
			return nil
		},
	}
	cmd.Flags().IntVar(&pid, "pid", 0, "print the tree under this pid instead of the active pane's")
	return cmd
}
