package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/threads/internal/core/comment"
	"github.com/colonyops/threads/internal/core/styles"
)

// View renders the TUI.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	mainView := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		"",
		m.composer.View(),
		"",
		m.view.View(),
		m.renderFooter(),
	)

	w, h := m.width, m.height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}

	var content string
	switch {
	case m.state == stateShowingHelp && m.helpDialog != nil:
		content = m.helpDialog.Overlay(mainView, w, h)
	case m.state == stateShowingInfo && m.infoDialog != nil:
		content = m.infoDialog.Overlay(mainView, w, h)
	default:
		content = mainView
	}

	content = m.toasts.Overlay(content, w, h)

	v := tea.NewView(content)
	v.AltScreen = true
	return v
}

func (m Model) renderHeader() string {
	count := m.thread.Len()
	noun := "comments"
	if count == 1 {
		noun = "comment"
	}

	title := styles.HeaderTitleStyle.Render(styles.IconComment+" "+Title) +
		"  " + styles.HeaderCountStyle.Render(fmt.Sprintf("%d %s", count, noun))

	return lipgloss.JoinVertical(lipgloss.Left, title, m.renderSortSelector())
}

// renderSortSelector shows all four sort modes with the active one
// highlighted.
func (m Model) renderSortSelector() string {
	active := m.thread.Sort()
	sep := styles.SortSeparatorStyle.Render("│")

	parts := make([]string, 0, len(comment.SortModes()))
	for i, mode := range comment.SortModes() {
		label := fmt.Sprintf("%d %s", i+1, mode.Label())
		if mode == active {
			parts = append(parts, styles.SortSelectedStyle.Render(styles.IconActive+" "+label))
		} else {
			parts = append(parts, styles.SortOptionStyle.Render(label))
		}
	}

	return styles.TextMutedStyle.Render("Sort ") + strings.Join(parts, sep)
}

func (m Model) renderFooter() string {
	var hints []string
	switch {
	case m.composer.Focused():
		hints = []string{"enter post", "esc cancel", "tab list"}
	case m.view.HasEditorFocus():
		hints = []string{"enter reply", "esc close", "tab list"}
	default:
		hints = []string{"n new", "r reply", "+/- vote", "s sort", "? help", "q quit"}
	}
	return styles.FormHelpStyle.Render(" " + strings.Join(hints, " • "))
}
