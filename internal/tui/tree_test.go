package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leo/vim-mux/internal/tmux"
)

func pane(session, window, pane string, editor bool) PaneInfo {
	return PaneInfo{
		Pane: tmux.Pane{
			Target:  session + ":" + window + "." + pane,
			Session: session,
			Window:  window,
			Pane:    pane,
		},
		Editor: editor,
	}
}

func TestGroupBySession(t *testing.T) {
	sessions := GroupBySession([]PaneInfo{
		pane("work", "1", "0", false),
		pane("main", "0", "0", true),
		pane("main", "1", "0", false),
	})
	require.Len(t, sessions, 2)
	assert.Equal(t, "main", sessions[0].Name)
	assert.Len(t, sessions[0].Panes, 2)
	assert.Equal(t, "work", sessions[1].Name)
}

func TestFlattenTree(t *testing.T) {
	sessions := GroupBySession([]PaneInfo{
		pane("main", "0", "0", true),
		pane("main", "1", "0", false),
		pane("work", "1", "0", false),
	})
	items := FlattenTree(sessions)
	require.Len(t, items, 5)
	assert.Equal(t, KindSession, items[0].Kind)
	assert.Equal(t, KindPane, items[1].Kind)
	assert.Equal(t, KindPane, items[2].Kind)
	assert.Equal(t, KindSession, items[3].Kind)
	assert.Equal(t, KindPane, items[4].Kind)
}

func TestPaneNavigation(t *testing.T) {
	sessions := GroupBySession([]PaneInfo{
		pane("main", "0", "0", false),
		pane("work", "1", "0", true),
	})
	items := FlattenTree(sessions) // [session, pane, session, pane]

	assert.Equal(t, 1, FirstPane(items))
	assert.Equal(t, 3, NextPane(items, 1))
	assert.Equal(t, 3, NextPane(items, 3), "stays put at the end")
	assert.Equal(t, 1, PrevPane(items, 3))
	assert.Equal(t, 1, NearestPane(items, 2), "header resolves to previous pane")
	assert.Equal(t, 3, NearestPane(items, 99), "clamps past the end")
	assert.Equal(t, 3, FirstEditorPane(items, sessions))
}

func TestNearestPaneEmpty(t *testing.T) {
	assert.Equal(t, 0, NearestPane(nil, 5))
}

func TestVisibleSlice(t *testing.T) {
	assert.Equal(t, 0, VisibleSlice(5, 2, 10), "fits entirely")
	assert.Equal(t, 3, VisibleSlice(20, 12, 10), "cursor below the fold")
	assert.Equal(t, 10, VisibleSlice(20, 19, 10), "clamped to the tail")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "", truncate("hello", 0))
	assert.Equal(t, "he", truncate("hello", 2))
	assert.Equal(t, "hello", truncate("hello", 5))
	assert.Equal(t, "hel...", truncate("hello world", 6))
}
