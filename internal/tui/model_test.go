package tui

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/threads/internal/core/comment"
	"github.com/colonyops/threads/internal/core/config"
	"github.com/colonyops/threads/internal/core/thread"
	"github.com/colonyops/threads/internal/tui/components"
	threadview "github.com/colonyops/threads/internal/tui/views/thread"
	"github.com/colonyops/threads/pkg/tuitest"
)

func tickingClock() func() time.Time {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

func newModel(t *testing.T) Model {
	t.Helper()
	m := New(Options{
		Thread:    thread.New(thread.WithClock(tickingClock())),
		SessionID: "test-session",
		Build:     BuildInfo{Version: "v1.2.3"},
	})
	next, _ := m.Update(tuitest.WindowSize(100, 40))
	return next.(Model)
}

// press feeds msgs through Update and delivers the submit, cancel and vote
// messages produced by the children, the way the Bubble Tea runtime would.
func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, cmd := m.Update(msg)
		m = next.(Model)
		if cmd == nil {
			continue
		}
		switch out := cmd().(type) {
		case components.SubmitMsg, components.CancelMsg, threadview.VoteMsg:
			next, _ = m.Update(out)
			m = next.(Model)
		}
	}
	return m
}

func post(t *testing.T, m Model, text string) Model {
	t.Helper()
	m = press(t, m, tuitest.KeyPress('n'))
	m = press(t, m, tuitest.Type(text)...)
	m = press(t, m, tuitest.KeyEnter(), tuitest.KeyTab())
	return m
}

func screen(m Model) string {
	return tuitest.StripANSI(m.View().Content)
}

func rootTexts(m Model) []string {
	sorted := m.Thread().Sorted()
	out := make([]string, len(sorted))
	for i, c := range sorted {
		out[i] = c.Text
	}
	return out
}

func TestModel_InitialScreen(t *testing.T) {
	m := newModel(t)

	out := screen(m)
	assert.Contains(t, out, "Simple Comment Section")
	assert.Contains(t, out, "0 comments")
	assert.Contains(t, out, "● 1 Newest First")
	assert.Contains(t, out, "2 Oldest First")
	assert.Contains(t, out, "3 Most Score")
	assert.Contains(t, out, "4 Least Score")
	assert.Contains(t, out, "No comments yet")
	assert.True(t, m.View().AltScreen)
}

func TestModel_ConfiguredSort(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.TUI.Sort = string(comment.SortLeast)

	m := New(Options{Config: &cfg})
	assert.Equal(t, comment.SortLeast, m.Thread().Sort())
}

func TestModel_Post(t *testing.T) {
	m := newModel(t)

	m = press(t, m, tuitest.KeyPress('n'))
	require.True(t, m.composer.Focused())

	m = press(t, m, tuitest.Type("hello world")...)
	m = press(t, m, tuitest.KeyEnter())

	assert.Equal(t, []string{"hello world"}, rootTexts(m))
	assert.Empty(t, m.composer.Value(), "accepted submit clears the composer")
	assert.True(t, m.composer.Focused(), "composer keeps focus for the next post")
	assert.Contains(t, screen(m), "hello world")
	assert.Contains(t, screen(m), "1 comment")
	assert.Contains(t, screen(m), "Comment posted")
}

func TestModel_BlankPostIgnored(t *testing.T) {
	m := newModel(t)

	m = press(t, m, tuitest.KeyPress('n'))
	m = press(t, m, tuitest.Type("   ")...)
	m = press(t, m, tuitest.KeyEnter())

	assert.Equal(t, 0, m.Thread().Len())
	assert.Equal(t, "   ", m.composer.Value(), "rejected submit keeps the text")
}

func TestModel_ComposerSwallowsShortcuts(t *testing.T) {
	m := newModel(t)

	m = press(t, m, tuitest.KeyPress('c'))
	m = press(t, m, tuitest.Type("q s ?")...)

	assert.False(t, m.quitting)
	assert.Equal(t, comment.SortNewest, m.Thread().Sort())
	assert.Equal(t, "q s ?", m.composer.Value())

	m = press(t, m, tuitest.KeyEsc())
	assert.False(t, m.composer.Focused())
	assert.Equal(t, "q s ?", m.composer.Value())
}

func TestModel_Reply(t *testing.T) {
	m := newModel(t)
	m = post(t, m, "hello")
	m = post(t, m, "world")
	require.Equal(t, []string{"world", "hello"}, rootTexts(m))

	// cursor starts on "world", move to "hello" and reply
	m = press(t, m, tuitest.KeyPress('j'), tuitest.KeyPress('r'))
	sel, _ := m.view.Selected()
	require.Equal(t, "hello", sel.Text)
	require.True(t, m.view.IsReplyOpen(sel.ID))

	m = press(t, m, tuitest.Type("hi")...)
	m = press(t, m, tuitest.KeyEnter())

	a, ok := comment.Find(m.Thread().Comments(), sel.ID)
	require.True(t, ok)
	require.Len(t, a.Replies, 1)
	assert.Equal(t, "hi", a.Replies[0].Text)

	assert.False(t, m.view.IsReplyOpen(sel.ID), "box closes after an accepted reply")
	assert.False(t, m.view.HasEditorFocus())

	cur, _ := m.view.Selected()
	assert.Equal(t, "hi", cur.Text, "cursor follows the new reply")
	assert.Contains(t, screen(m), "Reply posted")
}

func TestModel_BlankReplyKeepsBoxOpen(t *testing.T) {
	m := newModel(t)
	m = post(t, m, "hello")

	m = press(t, m, tuitest.KeyPress('r'))
	m = press(t, m, tuitest.Type(" ")...)
	m = press(t, m, tuitest.KeyEnter())

	sel, _ := m.view.Selected()
	assert.True(t, m.view.IsReplyOpen(sel.ID))
	assert.Equal(t, 1, m.Thread().Len())
}

func TestModel_ReplyEscCloses(t *testing.T) {
	m := newModel(t)
	m = post(t, m, "hello")

	m = press(t, m, tuitest.KeyPress('r'))
	m = press(t, m, tuitest.Type("draft")...)
	m = press(t, m, tuitest.KeyEsc())

	sel, _ := m.view.Selected()
	assert.False(t, m.view.IsReplyOpen(sel.ID))
	assert.Equal(t, 1, m.Thread().Len())
}

func TestModel_Vote(t *testing.T) {
	m := newModel(t)
	m = post(t, m, "hello")

	m = press(t, m, tuitest.KeyPress('+'), tuitest.KeyPress('+'), tuitest.KeyPress('-'))

	assert.Equal(t, 1, m.Thread().Comments()[0].Score)
	assert.Contains(t, screen(m), "▲ 1 ▼ hello")
}

func TestModel_Sort(t *testing.T) {
	m := newModel(t)
	m = post(t, m, "low")
	m = post(t, m, "high")
	// cursor on "high" (newest)
	m = press(t, m, tuitest.KeyPress('+'))

	m = press(t, m, tuitest.KeyPress('s'))
	assert.Equal(t, comment.SortOldest, m.Thread().Sort())
	assert.Equal(t, []string{"low", "high"}, rootTexts(m))

	m = press(t, m, tuitest.KeyPress('4'))
	assert.Equal(t, comment.SortLeast, m.Thread().Sort())
	assert.Equal(t, []string{"low", "high"}, rootTexts(m))
	assert.Contains(t, screen(m), "● 4 Least Score")

	m = press(t, m, tuitest.KeyPress('S'))
	assert.Equal(t, comment.SortMost, m.Thread().Sort())
	assert.Equal(t, []string{"high", "low"}, rootTexts(m))

	sel, _ := m.view.Selected()
	assert.Equal(t, "high", sel.Text, "selection survives a re-sort")
}

func TestModel_HelpDialog(t *testing.T) {
	m := newModel(t)

	m = press(t, m, tuitest.KeyPress('?'))
	out := screen(m)
	assert.Contains(t, out, "Keyboard Shortcuts")
	assert.Contains(t, out, "toggle reply box")
	assert.Contains(t, out, "pick sort mode")

	m = press(t, m, tuitest.KeyPress('q'))
	assert.False(t, m.quitting, "q closes the dialog first")
	assert.NotContains(t, screen(m), "Keyboard Shortcuts")
}

func TestModel_InfoDialog(t *testing.T) {
	m := newModel(t)
	m = post(t, m, "hello")
	m = press(t, m, tuitest.KeyPress('r'))
	m = press(t, m, tuitest.Type("hi")...)
	m = press(t, m, tuitest.KeyEnter())

	m = press(t, m, tuitest.KeyPress('i'))
	out := screen(m)
	assert.Contains(t, out, "Thread Info")
	assert.Contains(t, out, "test-session")
	assert.Contains(t, out, "v1.2.3")

	m = press(t, m, tuitest.KeyEsc())
	assert.NotContains(t, screen(m), "Thread Info")
}

func TestModel_InfoDialogCountsOpenReplies(t *testing.T) {
	m := newModel(t)
	m = post(t, m, "hello")
	m = post(t, m, "world")

	m = press(t, m, tuitest.KeyPress('r'), tuitest.KeyTab())
	m = press(t, m, tuitest.KeyPress('j'), tuitest.KeyPress('r'), tuitest.KeyTab())
	require.False(t, m.view.HasEditorFocus())

	m = press(t, m, tuitest.KeyPress('i'))
	assert.Contains(t, screen(m), "Open reply boxes  2")
}

func TestModel_EscDismissesToasts(t *testing.T) {
	m := newModel(t)
	m = post(t, m, "hello")
	require.True(t, m.toasts.HasToasts())
	require.Contains(t, screen(m), "Comment posted")

	m = press(t, m, tuitest.KeyEsc())

	assert.False(t, m.toasts.HasToasts())
	assert.NotContains(t, screen(m), "Comment posted")
	assert.Equal(t, 1, m.Thread().Len())
}

func TestModel_Quit(t *testing.T) {
	m := newModel(t)

	next, cmd := m.Update(tuitest.KeyPress('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.(Model).View().Content)

	m = press(t, m, tuitest.KeyPress('n'))
	_, cmd = m.Update(tuitest.KeyCtrl('c'))
	require.NotNil(t, cmd, "ctrl+c quits even while typing")
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

// Post "hello" (A), post "world" (B), reply "hi" to A, vote A +1 +1 -1.
func TestModel_Scenario(t *testing.T) {
	m := newModel(t)
	m = post(t, m, "hello")
	m = post(t, m, "world")
	assert.Equal(t, []string{"world", "hello"}, rootTexts(m))

	m = press(t, m, tuitest.KeyPress('j'), tuitest.KeyPress('r'))
	m = press(t, m, tuitest.Type("hi")...)
	m = press(t, m, tuitest.KeyEnter())

	// cursor is on the new reply, go back to A
	m = press(t, m, tuitest.KeyPress('k'))
	a, _ := m.view.Selected()
	require.Equal(t, "hello", a.Text)

	m = press(t, m, tuitest.KeyPress('+'), tuitest.KeyPress('+'), tuitest.KeyPress('-'))

	got, _ := comment.Find(m.Thread().Comments(), a.ID)
	assert.Equal(t, 1, got.Score)
	assert.Equal(t, []string{"hi"}, []string{got.Replies[0].Text})

	sorted := m.Thread().Sorted()
	assert.Empty(t, sorted[0].Replies, "world is unaffected")
}
