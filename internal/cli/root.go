// Package cli wires the vim-mux commands.
package cli

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/leo/vim-mux/internal/config"
	"github.com/leo/vim-mux/internal/logging"
	"github.com/leo/vim-mux/internal/proc"
	"github.com/leo/vim-mux/internal/vim"
)

// errNotDetected maps to exit code 1 without printing anything: for the
// check path the exit code is the verdict, and stderr is only for
// diagnostics the caller never parses.
var errNotDetected = errors.New("not detected")

var verbose bool

// NewRootCmd builds the vim-mux command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "vim-mux",
		Short:         "Route tmux navigation keys to Vim when a pane is running it",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
	cmd.AddCommand(
		newCheckCmd(),
		newNavigateCmd(),
		newTreeCmd(),
		newPanesCmd(),
		newInitCmd(),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		if !errors.Is(err, errNotDetected) {
			fmt.Fprintln(os.Stderr, "vim-mux:", err)
		}
		return 1
	}
	return 0
}

// env bundles the pieces every command needs.
type env struct {
	cfg config.Config
	log zerolog.Logger
}

func newEnv() env {
	cfg := config.Load()
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	return env{cfg: cfg, log: logging.New(os.Stderr, level)}
}

func (e env) detector() *vim.Detector {
	return vim.NewDetector(proc.Reader{}, e.cfg.Editors, e.log)
}
