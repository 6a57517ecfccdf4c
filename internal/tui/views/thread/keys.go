package thread

import "charm.land/bubbles/v2/key"

// KeyMap holds the bindings handled by the thread view.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Reply    key.Binding
	Focus    key.Binding
	Upvote   key.Binding
	Downvote key.Binding
}

// DefaultKeyMap returns the default thread view bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous comment"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next comment"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first comment"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last comment"),
		),
		Reply: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "toggle reply box"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch list/reply box"),
		),
		Upvote: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "upvote"),
		),
		Downvote: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "downvote"),
		),
	}
}

// Navigation returns the cursor bindings for help output.
func (k KeyMap) Navigation() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Top, k.Bottom}
}

// Comment returns the per-comment bindings for help output.
func (k KeyMap) Comment() []key.Binding {
	return []key.Binding{k.Upvote, k.Downvote, k.Reply, k.Focus}
}
