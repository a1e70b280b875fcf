// Package vim decides whether a pane's process tree contains a Vim-family
// editor.
package vim

import (
	"context"
	"path"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/leo/vim-mux/internal/proc"
)

// editorName matches the Vim-family executable names: vim, nvim, gvim,
// view, gview, vimx and their diff variants. Anchored so commands that
// merely contain "vim" somewhere in a longer token never match.
var editorName = regexp.MustCompile(`^g?(view|n?vim?x?)(diff)?$`)

// Source provides process-table reads. Satisfied by proc.Reader.
type Source interface {
	ReadAll(ctx context.Context) (proc.Table, error)
	CommandLines(ctx context.Context, pids []int) (map[int]string, error)
}

// Detector classifies the descendants of a pane root process against the
// editor pattern. It holds no state across checks; every check takes a
// fresh snapshot.
type Detector struct {
	src   Source
	extra map[string]bool // user-configured editor basenames
	log   zerolog.Logger
}

// NewDetector builds a Detector. extraEditors are additional executable
// basenames (exact, case-insensitive) accepted on top of the builtin pattern.
func NewDetector(src Source, extraEditors []string, log zerolog.Logger) *Detector {
	extra := make(map[string]bool, len(extraEditors))
	for _, name := range extraEditors {
		if name = strings.ToLower(strings.TrimSpace(name)); name != "" {
			extra[name] = true
		}
	}
	return &Detector{src: src, extra: extra, log: log}
}

// IsEditor reports whether a command line runs an editor. The first argv
// token is reduced to its final path component and matched case-insensitively.
func (d *Detector) IsEditor(command string) bool {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return false
	}
	base := strings.ToLower(path.Base(fields[0]))
	return editorName.MatchString(base) || d.extra[base]
}

// EditorInPane reports whether any descendant of root is running an editor.
// Every failure degrades to false: the caller routes a navigation key on
// this verdict and must always get a definite answer, never an error.
func (d *Detector) EditorInPane(ctx context.Context, root int) bool {
	if root <= 0 {
		return false
	}
	table, err := d.src.ReadAll(ctx)
	if err != nil {
		d.log.Warn().Err(err).Msg("snapshot failed, reporting no editor")
		return false
	}
	return d.classify(ctx, table, root)
}

// EditorPanes evaluates several pane roots against a single snapshot, with
// one command-line lookup for the union of all descendants.
func (d *Detector) EditorPanes(ctx context.Context, roots []int) map[int]bool {
	verdicts := make(map[int]bool, len(roots))
	for _, root := range roots {
		verdicts[root] = false
	}
	table, err := d.src.ReadAll(ctx)
	if err != nil {
		d.log.Warn().Err(err).Msg("snapshot failed, reporting no editors")
		return verdicts
	}

	perRoot := make(map[int][]int, len(roots))
	var union []int
	seen := make(map[int]bool)
	for _, root := range roots {
		if root <= 0 {
			// A pane whose pid never parsed. Walking Children[0] would scan
			// every top-level process on the host; fail safe instead.
			continue
		}
		desc := Descendants(table, root)
		perRoot[root] = desc
		for _, pid := range desc {
			if !seen[pid] {
				seen[pid] = true
				union = append(union, pid)
			}
		}
	}
	if len(union) == 0 {
		return verdicts
	}

	cmds, err := d.src.CommandLines(ctx, union)
	if err != nil {
		d.log.Warn().Err(err).Msg("command lookup failed, reporting no editors")
		return verdicts
	}
	for _, root := range roots {
		for _, pid := range perRoot[root] {
			if cmd, ok := cmds[pid]; ok && d.IsEditor(cmd) {
				verdicts[root] = true
				break
			}
		}
	}
	return verdicts
}

func (d *Detector) classify(ctx context.Context, table proc.Table, root int) bool {
	desc := Descendants(table, root)
	if len(desc) == 0 {
		// No children at all, so nothing to look up.
		return false
	}
	cmds, err := d.src.CommandLines(ctx, desc)
	if err != nil {
		d.log.Warn().Err(err).Msg("command lookup failed, reporting no editor")
		return false
	}
	for _, pid := range desc {
		cmd, ok := cmds[pid]
		if !ok {
			// Exited between snapshot and lookup. Expected, not an error.
			continue
		}
		if d.IsEditor(cmd) {
			d.log.Debug().Int("pid", pid).Str("command", cmd).Msg("editor found")
			return true
		}
	}
	return false
}

// Descendants returns every pid transitively reachable from root through
// the table's child edges, in breadth-first order. The root itself is not
// included. The visited set keeps the walk finite even if a malformed table
// contains a parent cycle; each pid is enqueued at most once.
func Descendants(t proc.Table, root int) []int {
	var out []int
	visited := map[int]bool{root: true}
	queue := []int{root}
	for len(queue) > 0 {
		pid := queue[0]
		queue = queue[1:]
		for _, child := range t.Children[pid] {
			if visited[child] {
				continue
			}
			visited[child] = true
			out = append(out, child)
			queue = append(queue, child)
		}
	}
	return out
}
