package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/colonyops/threads/internal/core/comment"
	"github.com/colonyops/threads/internal/tui/components"
	threadview "github.com/colonyops/threads/internal/tui/views/thread"
)

// KeyMap holds the bindings handled by the root model.
type KeyMap struct {
	Quit     key.Binding
	Help     key.Binding
	Info     key.Binding
	Compose  key.Binding
	Blur     key.Binding
	Dismiss  key.Binding
	SortNext key.Binding
	SortPrev key.Binding
	SortPick []key.Binding // one per sort mode, selector order
}

// DefaultKeyMap returns the default root bindings.
func DefaultKeyMap() KeyMap {
	km := KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Info: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "thread info"),
		),
		Compose: key.NewBinding(
			key.WithKeys("n", "c"),
			key.WithHelp("n/c", "write a new comment"),
		),
		Blur: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "back to the list"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss notifications"),
		),
		SortNext: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "next sort mode"),
		),
		SortPrev: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "previous sort mode"),
		),
	}

	for i := range comment.SortModes() {
		digit := string(rune('1' + i))
		opts := []key.BindingOpt{key.WithKeys(digit)}
		if i == 0 {
			opts = append(opts, key.WithHelp("1-4", "pick sort mode"))
		}
		km.SortPick = append(km.SortPick, key.NewBinding(opts...))
	}

	return km
}

// helpSections builds the help dialog content from the root and view bindings.
func helpSections(root KeyMap, view threadview.KeyMap) []components.HelpDialogSection {
	return []components.HelpDialogSection{
		{
			Title:   "Navigation",
			Entries: components.EntriesFromBindings(view.Navigation()...),
		},
		{
			Title:   "Comments",
			Entries: components.EntriesFromBindings(append([]key.Binding{root.Compose}, view.Comment()...)...),
		},
		{
			Title:   "Sorting",
			Entries: components.EntriesFromBindings(root.SortNext, root.SortPrev, root.SortPick[0]),
		},
		{
			Title: "Composer",
			Entries: []components.HelpEntry{
				{Key: "enter", Desc: "post"},
				{Key: "esc", Desc: "cancel"},
			},
		},
		{
			Title:   "General",
			Entries: components.EntriesFromBindings(root.Info, root.Dismiss, root.Help, root.Quit),
		},
	}
}
