// Package tui implements the interactive comment thread.
package tui

import (
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/threads/internal/core/comment"
	"github.com/colonyops/threads/internal/core/config"
	"github.com/colonyops/threads/internal/core/logging"
	"github.com/colonyops/threads/internal/core/thread"
	"github.com/colonyops/threads/internal/tui/components"
	threadview "github.com/colonyops/threads/internal/tui/views/thread"
)

// Title is shown at the top of the screen.
const Title = "Simple Comment Section"

type uiState int

const (
	stateNormal uiState = iota
	stateShowingHelp
	stateShowingInfo
)

// Options configures the root model.
type Options struct {
	Thread    *thread.Thread
	Config    *config.Config
	SessionID string
	Build     BuildInfo
	Now       func() time.Time
}

// Model is the root Bubble Tea model. It owns the thread, the only mutable
// domain state, and derives the sorted display tree after every change.
type Model struct {
	thread   *thread.Thread
	view     threadview.View
	composer *components.Composer
	keys     KeyMap
	toasts   *ToastController

	helpDialog *components.HelpDialog
	infoDialog *components.InfoDialog
	state      uiState

	cfg       *config.Config
	sessionID string
	build     BuildInfo

	width    int
	height   int
	quitting bool
	log      zerolog.Logger
}

// New creates the root model.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		defaults := config.DefaultConfig()
		cfg = &defaults
	}

	th := opts.Thread
	if th == nil {
		th = thread.New(thread.WithSort(cfg.SortMode()))
	}

	composerOpts := components.ComposerOptions{
		Placeholder: cfg.Composer.Placeholder,
		CharLimit:   cfg.Composer.CharLimit,
	}

	view := threadview.New(threadview.Options{
		Indent:   cfg.TUI.Indent,
		Markdown: cfg.TUI.Markdown,
		Composer: composerOpts,
		Now:      opts.Now,
	})

	topOpts := composerOpts
	topOpts.Label = "New comment"

	m := Model{
		thread:    th,
		view:      view,
		composer:  components.NewComposer(comment.NoParent, topOpts),
		keys:      DefaultKeyMap(),
		toasts:    NewToastController(),
		cfg:       cfg,
		sessionID: opts.SessionID,
		build:     opts.Build,
		width:     80,
		height:    24,
		log:       logging.Component("tui"),
	}
	m.refresh()
	m.layout()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case toastTickMsg:
		return m, m.toasts.HandleTick()

	case components.SubmitMsg:
		return m, m.submit(msg)

	case components.CancelMsg:
		if msg.ParentID == comment.NoParent {
			m.composer.Blur()
		} else {
			m.view.CloseReply(msg.ParentID)
		}
		return m, nil

	case threadview.VoteMsg:
		if m.thread.Vote(msg.ID, msg.Delta) {
			m.refresh()
		}
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	return m.forward(msg)
}

// forward passes non-key messages to whichever input has focus.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.composer.Focused() {
		_, cmd := m.composer.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	switch m.state {
	case stateShowingHelp:
		return m.handleHelpKey(msg)
	case stateShowingInfo:
		return m.handleInfoKey(msg)
	}

	if m.composer.Focused() {
		if key.Matches(msg, m.keys.Blur) {
			m.composer.Blur()
			return m, nil
		}
		_, cmd := m.composer.Update(msg)
		return m, cmd
	}

	if m.view.HasEditorFocus() {
		var cmd tea.Cmd
		m.view, cmd = m.view.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.helpDialog = components.NewHelpDialog("Keyboard Shortcuts", helpSections(m.keys, m.view.Keys()))
		m.state = stateShowingHelp
		return m, nil
	case key.Matches(msg, m.keys.Info):
		m.infoDialog = components.NewInfoDialog("Thread Info", m.infoSections(), "[j/k] scroll  [esc] close", m.width, m.height)
		m.state = stateShowingInfo
		return m, nil
	case key.Matches(msg, m.keys.Dismiss):
		m.toasts.DismissAll()
		return m, nil
	case key.Matches(msg, m.keys.Compose):
		return m, m.composer.Focus()
	case key.Matches(msg, m.keys.SortNext):
		return m, m.setSort(m.thread.Sort().Next())
	case key.Matches(msg, m.keys.SortPrev):
		return m, m.setSort(m.thread.Sort().Prev())
	}

	modes := comment.SortModes()
	for i, b := range m.keys.SortPick {
		if key.Matches(msg, b) {
			return m, m.setSort(modes[i])
		}
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

func (m Model) handleHelpKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "?", "q", "enter":
		m.helpDialog = nil
		m.state = stateNormal
	}
	return m, nil
}

func (m Model) handleInfoKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "i", "q", "enter":
		m.infoDialog = nil
		m.state = stateNormal
	case "up", "k":
		m.infoDialog.ScrollUp()
	case "down", "j":
		m.infoDialog.ScrollDown()
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.log.Info().Int("comments", m.thread.Len()).Msg("quitting")
	return m, tea.Quit
}

// submit applies a composer submission to the thread and moves the cursor
// to the new comment. Replies close their box once accepted.
func (m *Model) submit(msg components.SubmitMsg) tea.Cmd {
	c, ok := m.thread.AddComment(msg.Text, msg.ParentID)
	if !ok {
		if msg.ParentID != comment.NoParent {
			m.view.CloseReply(msg.ParentID)
			m.toasts.Push(toastWarning, "That comment no longer exists")
			return m.toasts.StartTicking()
		}
		return nil
	}

	m.refresh()
	m.view.Select(c.ID)
	if msg.ParentID == comment.NoParent {
		m.toasts.Push(toastSuccess, "Comment posted")
	} else {
		m.view.CloseReply(msg.ParentID)
		m.toasts.Push(toastSuccess, "Reply posted")
	}
	return m.toasts.StartTicking()
}

func (m *Model) setSort(mode comment.SortMode) tea.Cmd {
	if mode == m.thread.Sort() || !m.thread.SetSort(mode) {
		return nil
	}
	m.refresh()
	m.toasts.Push(toastInfo, "Sorted by "+mode.Label())
	return m.toasts.StartTicking()
}

// refresh re-derives the display tree from the canonical one.
func (m *Model) refresh() {
	m.view.SetTree(m.thread.Sorted())
}

// layout sizes the children to the current window.
func (m *Model) layout() {
	m.composer.SetWidth(min(m.width-4, 100))
	used := lipgloss.Height(m.renderHeader()) + lipgloss.Height(m.composer.View()) + lipgloss.Height(m.renderFooter()) + 2
	m.view.SetSize(m.width, m.height-used)
}

// Thread exposes the underlying thread, mainly for tests.
func (m Model) Thread() *thread.Thread {
	return m.thread
}
