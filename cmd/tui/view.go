package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF")).
			MarginLeft(2).
			MarginTop(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF")).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FFFF")).
			Padding(0, 1)

	contentStyle = lipgloss.NewStyle().
			MarginLeft(2).
			MarginTop(1)

	statsBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(1, 2).
			MarginLeft(2)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1).
			MarginLeft(2)
)

func (m model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("Knowledge Base Mindmap Explorer"))
	s.WriteString("\n\n")

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderNodes(),
		statsBoxStyle.Render(m.renderStats()),
	)
	s.WriteString(contentStyle.Render(body))

	if m.message != "" {
		s.WriteString("\n\n")
		if m.messageErr {
			s.WriteString(errorStyle.Render("✗ " + m.message))
		} else {
			s.WriteString(successStyle.Render("✓ " + m.message))
		}
	}

	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())))

	return s.String()
}

func (m model) renderNodes() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("Visible Nodes"))
	s.WriteString("\n\n")
	s.WriteString(m.nodeTable.View())
	return s.String()
}

func (m model) renderStats() string {
	view := m.session.View()
	info := m.session.LastBuild()

	buildID := info.ID
	if len(buildID) > 8 {
		buildID = buildID[:8]
	}

	return fmt.Sprintf(`Layout
━━━━━━━━━━━━━━━
Strategy:   %s
Nodes:      %d
Edges:      %d
Expanded:   %d
Pinned:     %d

Last build
━━━━━━━━━━━━━━━
ID:         %s
Time:       %s
Passes:     %d
Converged:  %v
Fallbacks:  %d`,
		info.Strategy,
		len(view.Nodes),
		len(view.Edges),
		len(m.session.Expanded()),
		m.session.Positions().Len(),
		buildID,
		info.Duration,
		info.Iterations,
		info.Converged,
		info.Placement.Fallbacks,
	)
}
