package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/leo/vim-mux/internal/proc"
)

// RenderProcessTree renders the process tree under root as indented lines,
// one per descendant, highlighting the ones isEditor accepts. Children are
// sorted by pid so output is stable across runs.
func RenderProcessTree(t proc.Table, root int, isEditor func(string) bool) string {
	var b strings.Builder
	rootCmd := "?"
	if rec, ok := t.Records[root]; ok {
		rootCmd = rec.Command
	}
	fmt.Fprintf(&b, "%d %s\n", root, rootCmd)
	renderSubtree(&b, t, root, 1, map[int]bool{root: true}, isEditor)
	return b.String()
}

func renderSubtree(b *strings.Builder, t proc.Table, pid, depth int, visited map[int]bool, isEditor func(string) bool) {
	children := append([]int(nil), t.Children[pid]...)
	sort.Ints(children)
	for _, child := range children {
		if visited[child] {
			continue
		}
		visited[child] = true
		cmd := t.Records[child].Command
		line := fmt.Sprintf("%s%d %s", strings.Repeat("  ", depth), child, cmd)
		if isEditor(cmd) {
			line = editorLineStyle.Render(line) + " ●"
		}
		b.WriteString(line + "\n")
		renderSubtree(b, t, child, depth+1, visited, isEditor)
	}
}
