package components

import (
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/threads/internal/core/styles"
	"github.com/colonyops/threads/internal/core/validate"
)

// SubmitMsg is emitted when a composer accepts its input.
type SubmitMsg struct {
	ParentID int64 // comment.NoParent for top-level posts
	Text     string
}

// CancelMsg is emitted when esc is pressed in a focused composer.
type CancelMsg struct {
	ParentID int64
}

// ComposerOptions configures a Composer.
type ComposerOptions struct {
	Label       string
	Placeholder string
	CharLimit   int
	Width       int
}

var (
	submitKey = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit"))
	cancelKey = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))
)

// Composer is a single-line comment input bound to a parent comment.
type Composer struct {
	input    textinput.Model
	label    string
	parentID int64
	focused  bool
}

// NewComposer creates a composer that posts under parentID.
func NewComposer(parentID int64, opts ComposerOptions) *Composer {
	ti := textinput.New()
	ti.Placeholder = opts.Placeholder
	ti.Prompt = ""
	ti.CharLimit = opts.CharLimit
	if opts.Width > 0 {
		ti.SetWidth(opts.Width)
	} else {
		ti.SetWidth(40)
	}

	inputStyles := textinput.DefaultStyles(true)
	inputStyles.Cursor.Color = styles.CurrentPalette.Primary
	inputStyles.Cursor.Blink = false
	inputStyles.Focused.Placeholder = lipgloss.NewStyle().Foreground(styles.CurrentPalette.Muted)
	inputStyles.Blurred.Placeholder = lipgloss.NewStyle().Foreground(styles.CurrentPalette.Muted)
	ti.SetStyles(inputStyles)

	return &Composer{
		input:    ti,
		label:    opts.Label,
		parentID: parentID,
	}
}

// Update handles input while focused. Enter submits, esc cancels. A blank
// submit is ignored and leaves the field untouched.
func (c *Composer) Update(msg tea.Msg) (*Composer, tea.Cmd) {
	if !c.focused {
		return c, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch {
		case key.Matches(keyMsg, submitKey):
			return c, c.submit()
		case key.Matches(keyMsg, cancelKey):
			parentID := c.parentID
			return c, func() tea.Msg { return CancelMsg{ParentID: parentID} }
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *Composer) submit() tea.Cmd {
	text, err := validate.CommentText(c.input.Value())
	if err != nil {
		return nil
	}

	c.input.Reset()
	out := SubmitMsg{ParentID: c.parentID, Text: text}
	return func() tea.Msg { return out }
}

func (c *Composer) View() string {
	titleStyle := styles.FormTitleBlurredStyle
	if c.focused {
		titleStyle = styles.FormTitleStyle
	}

	content := c.input.View()
	if c.label != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(c.label), content)
	}

	borderStyle := styles.FormFieldStyle
	if c.focused {
		borderStyle = styles.FormFieldFocusedStyle
	}

	return borderStyle.Render(content)
}

func (c *Composer) Focus() tea.Cmd {
	c.focused = true
	return c.input.Focus()
}

func (c *Composer) Blur() {
	c.focused = false
	c.input.Blur()
}

// SetWidth resizes the input, leaving room for the border.
func (c *Composer) SetWidth(w int) {
	c.input.SetWidth(max(w-2, 10))
}

func (c *Composer) Focused() bool { return c.focused }
func (c *Composer) Value() string { return c.input.Value() }
