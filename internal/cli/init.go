package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leo/vim-mux/internal/config"
	"github.com/leo/vim-mux/internal/tmux"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Print tmux.conf key bindings for seamless Vim/pane navigation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e := newEnv()
			fmt.Fprint(cmd.OutOrStdout(), Bindings(e.cfg.Keys))
			return nil
		},
	}
}

// Bindings renders the tmux.conf snippet that routes the configured keys
// through `vim-mux check`. Meant to be appended to tmux.conf or sourced via
// `run-shell "vim-mux init > …"`.
func Bindings(k config.Keys) string {
	var b strings.Builder
	b.WriteString("# vim-mux navigation bindings\n")
	for _, bind := range []struct {
		key string
		dir tmux.Direction
	}{
		{k.Left, tmux.Left},
		{k.Down, tmux.Down},
		{k.Up, tmux.Up},
		{k.Right, tmux.Right},
		{k.Previous, tmux.Previous},
	} {
		if bind.key == "" {
			continue
		}
		fmt.Fprintf(&b,
			"bind-key -n '%s' if-shell \"vim-mux check\" 'send-keys %s' 'select-pane %s'\n",
			bind.key, bind.key, tmux.SelectFlag(bind.dir))
	}
	return b.String()
}
