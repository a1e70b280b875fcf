package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/leo/vim-mux/internal/tmux"
	"github.com/leo/vim-mux/internal/vim"
)

// Messages
type panesLoadedMsg struct {
	panes []PaneInfo
	err   error
}

type previewLoadedMsg struct {
	target  string
	content string
}

// Commands
func loadPanes(det *vim.Detector, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		panes, err := tmux.ListPanes()
		if err != nil {
			return panesLoadedMsg{err: err}
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		roots := make([]int, len(panes))
		for i, p := range panes {
			roots[i] = p.PID
		}
		verdicts := det.EditorPanes(ctx, roots)
		infos := make([]PaneInfo, len(panes))
		for i, p := range panes {
			infos[i] = PaneInfo{Pane: p, Editor: verdicts[p.PID]}
		}
		return panesLoadedMsg{panes: infos}
	}
}

func loadPreview(target string) tea.Cmd {
	return func() tea.Msg {
		content, err := tmux.CapturePane(target, 50)
		if err != nil {
			content = "error: " + err.Error()
		}
		return previewLoadedMsg{target: target, content: content}
	}
}

// Model is the top-level Bubble Tea model for the panes inspector.
// Everything it shows is a single point-in-time snapshot; a new one is taken
// only on user action (r), never on a timer.
type Model struct {
	det     *vim.Detector
	timeout time.Duration

	sessions   []Session
	items      []TreeItem
	cursor     int
	preview    viewport.Model
	previewFor string
	width      int
	height     int
	err        error
	loaded     bool
}

// NewModel creates the initial model. The first snapshot loads async so the
// UI is ready on the first frame.
func NewModel(det *vim.Detector, timeout time.Duration) Model {
	return Model{
		det:     det,
		timeout: timeout,
		preview: viewport.New(40, 20),
	}
}

func (m Model) Init() tea.Cmd {
	return loadPanes(m.det, m.timeout)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.preview.Width = m.previewWidth()
		m.preview.Height = m.height
		return m, nil

	case panesLoadedMsg:
		first := !m.loaded
		m.loaded = true
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.sessions = GroupBySession(msg.panes)
		m.items = FlattenTree(m.sessions)
		if first {
			m.cursor = FirstEditorPane(m.items, m.sessions)
		} else {
			m.cursor = NearestPane(m.items, m.cursor)
		}
		m.previewFor = "" // force refresh
		if cmd := m.previewCmd(); cmd != nil {
			return m, cmd
		}
		return m, nil

	case previewLoadedMsg:
		m.previewFor = msg.target
		m.preview.SetContent(strings.TrimRight(msg.content, "\n"))
		m.preview.GotoBottom()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit

		case "j", "down":
			if next := NextPane(m.items, m.cursor); next != m.cursor {
				m.cursor = next
				return m, m.previewCmd()
			}

		case "k", "up":
			if prev := PrevPane(m.items, m.cursor); prev != m.cursor {
				m.cursor = prev
				return m, m.previewCmd()
			}

		case "r":
			return m, loadPanes(m.det, m.timeout)

		case "enter":
			if m.cursor >= 0 && m.cursor < len(m.items) && m.items[m.cursor].Kind == KindPane {
				item := m.items[m.cursor]
				pane := m.sessions[item.SessionIndex].Panes[item.PaneIndex].Pane
				_ = tmux.SwitchToPane(pane.Target)
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.width == 0 || !m.loaded {
		return ""
	}

	if m.err != nil {
		return errStyle.Render("Error: " + m.err.Error())
	}

	if len(m.items) == 0 {
		return helpStyle.Render("No panes found.\nPress q to quit.")
	}

	listWidth := m.listWidth()
	h := max(m.height-1, 1)

	treeLines := m.renderTree(listWidth, h)
	listContent := strings.Join(treeLines, "\n")
	listRendered := lipgloss.NewStyle().Width(listWidth).Height(h).Render(listContent)

	// Vertical separator: one column of "│" repeated for each row
	sep := separatorStyle.Render(strings.Repeat("│\n", h-1) + "│")

	pw := m.previewWidth()
	m.preview.Width = pw
	m.preview.Height = h
	previewRendered := lipgloss.NewStyle().Width(pw).Height(h).Render(m.preview.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top, listRendered, sep, previewRendered)
	help := helpStyle.Render(" ● editor in pane · j/k move · enter jump · r refresh · q quit")
	return body + "\n" + help
}

func (m Model) listWidth() int {
	return max(m.width*25/100, 20)
}

func (m Model) previewWidth() int {
	return m.width - m.listWidth() - 1 // 1 for separator
}

func (m Model) renderTree(width, height int) []string {
	if len(m.items) == 0 {
		return []string{"  No panes"}
	}

	start := VisibleSlice(len(m.items), m.cursor, height)
	end := min(start+height, len(m.items))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, RenderTreeItem(m.items[i], m.sessions, i == m.cursor, width))
	}
	return lines
}

func (m Model) previewCmd() tea.Cmd {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return nil
	}
	item := m.items[m.cursor]
	if item.Kind != KindPane {
		return nil
	}
	target := m.sessions[item.SessionIndex].Panes[item.PaneIndex].Pane.Target
	if target == m.previewFor {
		return nil
	}
	return loadPreview(target)
}
