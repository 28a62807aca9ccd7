package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/cluso-mindmap/pkg/config"
	"github.com/dd0wney/cluso-mindmap/pkg/graph"
	"github.com/dd0wney/cluso-mindmap/pkg/session"
)

// nudgeStep is how far one h/j/k/l press moves the selected node.
const nudgeStep = 40.0

type keyMap struct {
	Tab        key.Binding
	Enter      key.Binding
	Quit       key.Binding
	Up         key.Binding
	Down       key.Binding
	NudgeLeft  key.Binding
	NudgeDown  key.Binding
	NudgeUp    key.Binding
	NudgeRight key.Binding
}

var keys = keyMap{
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next strategy"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "expand/collapse"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "down"),
	),
	NudgeLeft: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("h", "move left"),
	),
	NudgeDown: key.NewBinding(
		key.WithKeys("j"),
		key.WithHelp("j", "move down"),
	),
	NudgeUp: key.NewBinding(
		key.WithKeys("k"),
		key.WithHelp("k", "move up"),
	),
	NudgeRight: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "move right"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Tab, k.NudgeLeft, k.NudgeDown, k.NudgeUp, k.NudgeRight, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter, k.Tab},
		{k.NudgeLeft, k.NudgeDown, k.NudgeUp, k.NudgeRight},
		{k.Quit},
	}
}

type model struct {
	session    *session.Session
	nodeTable  table.Model
	help       help.Model
	keys       keyMap
	rows       []graph.Node // visible nodes in table order
	width      int
	height     int
	message    string
	messageErr bool
}

func initialModel(s *session.Session) model {
	columns := []table.Column{
		{Title: "Node", Width: 44},
		{Title: "Kind", Width: 10},
		{Title: "Position", Width: 20},
		{Title: "Children", Width: 8},
	}

	// Arrow keys only: h/j/k/l move nodes, not the cursor.
	km := table.DefaultKeyMap()
	km.LineUp = keys.Up
	km.LineDown = keys.Down

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(16),
		table.WithKeyMap(km),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#00FFFF")).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#FF00FF")).
		Bold(false)
	t.SetStyles(st)

	m := model{
		session:   s,
		nodeTable: t,
		help:      help.New(),
		keys:      keys,
	}
	m.refresh()
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Tab):
			m.nextStrategy()
			return m, nil

		case key.Matches(msg, m.keys.Enter):
			m.toggleSelected()
			return m, nil

		case key.Matches(msg, m.keys.NudgeLeft):
			m.nudgeSelected(-nudgeStep, 0)
			return m, nil
		case key.Matches(msg, m.keys.NudgeRight):
			m.nudgeSelected(nudgeStep, 0)
			return m, nil
		case key.Matches(msg, m.keys.NudgeUp):
			m.nudgeSelected(0, -nudgeStep)
			return m, nil
		case key.Matches(msg, m.keys.NudgeDown):
			m.nudgeSelected(0, nudgeStep)
			return m, nil
		}
	}

	m.nodeTable, cmd = m.nodeTable.Update(msg)
	return m, cmd
}

func (m *model) selected() (graph.Node, bool) {
	i := m.nodeTable.Cursor()
	if i < 0 || i >= len(m.rows) {
		return graph.Node{}, false
	}
	return m.rows[i], true
}

func (m *model) toggleSelected() {
	n, ok := m.selected()
	if !ok {
		return
	}
	if !n.Data.Expandable {
		m.setMessage(fmt.Sprintf("%s has no children", n.Data.Label), false)
		return
	}

	expanded, err := m.session.Toggle(n.ID)
	if err != nil {
		m.setMessage(err.Error(), true)
		return
	}
	verb := "Collapsed"
	if expanded {
		verb = "Expanded"
	}
	m.setMessage(fmt.Sprintf("%s %s", verb, n.Data.Label), false)
	m.refresh()
}

func (m *model) nudgeSelected(dx, dy float64) {
	n, ok := m.selected()
	if !ok {
		return
	}

	to := graph.Position{X: n.Position.X + dx, Y: n.Position.Y + dy}
	if err := m.session.DragStop(n.ID, to); err != nil {
		m.setMessage(err.Error(), true)
		return
	}
	m.setMessage(fmt.Sprintf("Moved %s to %s", n.Data.Label, formatPosition(to)), false)
	m.refresh()
}

func (m *model) nextStrategy() {
	names := config.Strategies()
	current := m.session.Strategy()
	next := names[0]
	for i, name := range names {
		if name == current {
			next = names[(i+1)%len(names)]
			break
		}
	}

	if err := m.session.SetStrategy(next); err != nil {
		m.setMessage(err.Error(), true)
		return
	}
	m.setMessage("Layout: "+next, false)
	m.refresh()
}

func (m *model) setMessage(msg string, isErr bool) {
	m.message = msg
	m.messageErr = isErr
}

// refresh reloads the view and keeps the cursor on the same node.
func (m *model) refresh() {
	var keep string
	if n, ok := m.selected(); ok {
		keep = n.ID
	}

	view := m.session.View()
	m.rows = orderNodes(view.Nodes, m.session.Hierarchy())

	rows := make([]table.Row, len(m.rows))
	cursor := 0
	for i, n := range m.rows {
		rows[i] = table.Row{
			treeLabel(n),
			string(n.Type),
			formatPosition(n.Position),
			fmt.Sprintf("%d", n.Data.ChildCount),
		}
		if n.ID == keep {
			cursor = i
		}
	}
	m.nodeTable.SetRows(rows)
	m.nodeTable.SetCursor(cursor)
}

// orderNodes lists nodes depth first along the hierarchy, starting from the
// level-0 nodes. Nodes the hierarchy does not reach are appended in input
// order.
func orderNodes(nodes []graph.Node, h graph.Hierarchy) []graph.Node {
	byID := make(map[string]graph.Node, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = n
	}

	out := make([]graph.Node, 0, len(nodes))
	seen := make(map[string]bool, len(nodes))
	var walk func(id string)
	walk = func(id string) {
		n, ok := byID[id]
		if !ok || seen[id] {
			return
		}
		seen[id] = true
		out = append(out, n)
		for _, child := range h.Children(id) {
			walk(child)
		}
	}

	for _, n := range nodes {
		if n.Data.Level == 0 {
			walk(n.ID)
		}
	}
	for _, n := range nodes {
		if !seen[n.ID] {
			out = append(out, n)
		}
	}
	return out
}

func treeLabel(n graph.Node) string {
	marker := "  "
	if n.Data.Expandable {
		marker = "▸ "
		if n.Data.Expanded {
			marker = "▾ "
		}
	}
	return strings.Repeat("  ", n.Data.Level) + marker + n.Data.Label
}

func formatPosition(p graph.Position) string {
	return fmt.Sprintf("(%.0f, %.0f)", p.X, p.Y)
}
