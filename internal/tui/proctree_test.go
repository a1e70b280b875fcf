package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leo/vim-mux/internal/proc"
)

func isNvim(cmd string) bool {
	return strings.HasPrefix(cmd, "nvim")
}

func TestRenderProcessTree(t *testing.T) {
	table, err := proc.ParseTable("100 1 bash\n205 100 bash -c x\n310 205 nvim notes.md\n400 100 less README")
	require.NoError(t, err)

	out := RenderProcessTree(table, 100, isNvim)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)

	assert.True(t, strings.HasPrefix(lines[0], "100 bash"))
	assert.Contains(t, out, "205 bash -c x")
	assert.Contains(t, out, "310 nvim notes.md")
	assert.Contains(t, out, "400 less README")
	// Editor rows carry the marker, others do not.
	for _, line := range lines {
		if strings.Contains(line, "nvim") {
			assert.True(t, strings.HasSuffix(line, "●"))
		} else {
			assert.False(t, strings.HasSuffix(line, "●"), line)
		}
	}
	// Depth is reflected as indentation.
	assert.Contains(t, out, "\n  205 ")
	assert.Contains(t, out, "\n    310 ")
}

func TestRenderProcessTreeUnknownRoot(t *testing.T) {
	table, err := proc.ParseTable("100 1 bash")
	require.NoError(t, err)

	out := RenderProcessTree(table, 999, isNvim)
	assert.Equal(t, "999 ?\n", out)
}

func TestRenderProcessTreeCycleTerminates(t *testing.T) {
	table := proc.Table{
		Records: map[int]proc.Record{
			100: {PID: 100, PPID: 1, Command: "bash"},
			205: {PID: 205, PPID: 100, Command: "bash"},
		},
		Children: map[int][]int{
			100: {205},
			205: {100}, // malformed cycle
		},
	}
	out := RenderProcessTree(table, 100, isNvim)
	assert.Equal(t, 2, strings.Count(out, "\n"), "each pid rendered once")
}
