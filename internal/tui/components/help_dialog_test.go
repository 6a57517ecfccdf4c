package components

import (
	"strings"
	"testing"

	"charm.land/bubbles/v2/key"
	"github.com/stretchr/testify/assert"

	"github.com/colonyops/threads/pkg/tuitest"
)

func TestEntriesFromBindings(t *testing.T) {
	up := key.NewBinding(key.WithKeys("+"), key.WithHelp("+", "upvote"))
	hidden := key.NewBinding(key.WithKeys("x"))
	disabled := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "gone"), key.WithDisabled())

	got := EntriesFromBindings(up, hidden, disabled)

	assert.Equal(t, []HelpEntry{{Key: "+", Desc: "upvote"}}, got)
}

func TestHelpDialog_View(t *testing.T) {
	d := NewHelpDialog("Keys", []HelpDialogSection{
		{Title: "Comments", Entries: []HelpEntry{{Key: "r", Desc: "reply"}, {Key: "+/-", Desc: "vote"}}},
		{Title: "Sort", Entries: []HelpEntry{{Key: "s", Desc: "next sort"}}},
	})

	out := tuitest.StripANSI(d.View())

	assert.Contains(t, out, "Keys")
	assert.Contains(t, out, "Comments")
	assert.Contains(t, out, "reply")
	assert.Contains(t, out, "next sort")
	assert.Contains(t, out, "esc/? close")
	assert.Less(t, strings.Index(out, "Comments"), strings.Index(out, "Sort"))
}

func TestHelpDialog_Overlay(t *testing.T) {
	d := NewHelpDialog("Keys", []HelpDialogSection{{Entries: []HelpEntry{{Key: "q", Desc: "quit"}}}})

	bg := strings.Repeat(strings.Repeat(".", 60)+"\n", 20)
	out := tuitest.StripANSI(d.Overlay(bg, 60, 20))

	assert.Contains(t, out, "quit")
	assert.Contains(t, out, "....")
}

func TestPad(t *testing.T) {
	assert.Empty(t, Pad(-1))
	assert.Equal(t, "   ", Pad(3))
	assert.Len(t, Pad(100), 100)
}
