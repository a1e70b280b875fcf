package tui

import (
	"sort"
	"strings"

	"github.com/leo/vim-mux/internal/tmux"
)

// ItemKind distinguishes session headers from pane entries.
type ItemKind int

const (
	KindSession ItemKind = iota
	KindPane
)

// TreeItem is one visible row in the flattened tree.
type TreeItem struct {
	Kind         ItemKind
	SessionIndex int
	PaneIndex    int
}

// PaneInfo is a tmux pane together with its editor verdict.
type PaneInfo struct {
	Pane   tmux.Pane
	Editor bool
}

// Session groups panes under one tmux session.
type Session struct {
	Name  string
	Panes []PaneInfo
}

// GroupBySession groups panes by session name, sessions sorted by name.
func GroupBySession(panes []PaneInfo) []Session {
	groups := make(map[string][]PaneInfo)
	for _, p := range panes {
		groups[p.Pane.Session] = append(groups[p.Pane.Session], p)
	}
	var sessions []Session
	for name, ps := range groups {
		sessions = append(sessions, Session{Name: name, Panes: ps})
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Name < sessions[j].Name
	})
	return sessions
}

// FlattenTree builds the visible flat list from sessions.
// Sessions are always expanded; headers are non-selectable.
func FlattenTree(sessions []Session) []TreeItem {
	var items []TreeItem
	for si, s := range sessions {
		items = append(items, TreeItem{Kind: KindSession, SessionIndex: si})
		for pi := range s.Panes {
			items = append(items, TreeItem{Kind: KindPane, SessionIndex: si, PaneIndex: pi})
		}
	}
	return items
}

// NextPane returns the index of the next KindPane item after from, or from if none.
func NextPane(items []TreeItem, from int) int {
	for i := from + 1; i < len(items); i++ {
		if items[i].Kind == KindPane {
			return i
		}
	}
	return from
}

// PrevPane returns the index of the previous KindPane item before from, or from if none.
func PrevPane(items []TreeItem, from int) int {
	for i := from - 1; i >= 0; i-- {
		if items[i].Kind == KindPane {
			return i
		}
	}
	return from
}

// NearestPane returns the closest KindPane to the given index.
// It clamps out-of-bounds indices, keeps the position if it's already a pane,
// otherwise tries the previous pane first, then next.
func NearestPane(items []TreeItem, from int) int {
	if len(items) == 0 {
		return 0
	}
	if from >= len(items) {
		from = len(items) - 1
	}
	if from < 0 {
		from = 0
	}
	if items[from].Kind == KindPane {
		return from
	}
	if prev := PrevPane(items, from); prev != from {
		return prev
	}
	if next := NextPane(items, from); next != from {
		return next
	}
	return 0
}

// FirstPane returns the index of the first KindPane item, or 0 if none.
func FirstPane(items []TreeItem) int {
	for i, it := range items {
		if it.Kind == KindPane {
			return i
		}
	}
	return 0
}

// FirstEditorPane returns the index of the first pane whose tree holds an
// editor, falling back to FirstPane if none do.
func FirstEditorPane(items []TreeItem, sessions []Session) int {
	for i, it := range items {
		if it.Kind == KindPane && sessions[it.SessionIndex].Panes[it.PaneIndex].Editor {
			return i
		}
	}
	return FirstPane(items)
}

// RenderTreeItem renders a single row.
func RenderTreeItem(item TreeItem, sessions []Session, selected bool, width int) string {
	switch item.Kind {
	case KindSession:
		name := truncate(sessions[item.SessionIndex].Name, max(width-2, 0))
		text := " " + name
		text += strings.Repeat(" ", max(width-len(text), 0))
		return sessionStyle.Render(text)

	case KindPane:
		p := sessions[item.SessionIndex].Panes[item.PaneIndex]
		label := p.Pane.Window + "." + p.Pane.Pane
		right := " " + p.Pane.Command + " "

		prefix := "   "
		middle := label
		avail := width - len(prefix) - 2 - len(right) // 2 for icon+space
		if avail < 0 {
			right = " "
			avail = max(width-len(prefix)-2-len(right), 0)
		}
		if len(middle) > avail {
			middle = truncate(middle, avail)
		}
		gap := max(avail-len(middle), 0)

		if selected {
			var icon string
			if p.Editor {
				icon = editorIconSelectedStyle.Render("●")
			} else {
				icon = plainIconSelectedStyle.Render("○")
			}
			return selectedStyle.Render(prefix) + icon + selectedStyle.Render(" "+middle+strings.Repeat(" ", gap)+right)
		}
		var icon string
		if p.Editor {
			icon = editorIconStyle.Render("●")
		} else {
			icon = paneItemStyle.Render("○")
		}
		return paneItemStyle.Render(prefix) + icon + paneItemStyle.Render(" "+middle) + dimStyle.Render(strings.Repeat(" ", gap)+right)
	}
	return ""
}

// truncate shortens s to maxLen, adding ellipsis if needed.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// VisibleSlice returns the start index for scrolling the tree view.
func VisibleSlice(total, cursor, height int) int {
	if total <= height {
		return 0
	}
	start := 0
	if cursor >= height {
		start = cursor - height + 1
	}
	if start+height > total {
		start = total - height
	}
	return start
}
