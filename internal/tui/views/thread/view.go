package thread

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/threads/internal/core/comment"
	"github.com/colonyops/threads/internal/core/styles"
	"github.com/colonyops/threads/internal/tui/components"
)

const minTextWidth = 16

// VoteMsg asks the owner of the thread to apply a vote.
type VoteMsg struct {
	ID    int64
	Delta int
}

// Options configures the thread view.
type Options struct {
	Indent   int  // columns per nesting level
	Markdown bool // render comment text with glamour
	Composer components.ComposerOptions
	Now      func() time.Time
}

// View is the Bubble Tea sub-model that renders the comment tree, moves the
// cursor and owns the per-comment reply boxes.
type View struct {
	ctrl      *Controller
	keys      KeyMap
	opts      Options
	composers map[int64]*components.Composer
	markdown  map[int]*glamour.TermRenderer // by wrap width
	width     int
	height    int
}

// New creates a thread View.
func New(opts Options) View {
	if opts.Indent < 1 {
		opts.Indent = 2
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return View{
		ctrl:      NewController(),
		keys:      DefaultKeyMap(),
		opts:      opts,
		composers: make(map[int64]*components.Composer),
		markdown:  make(map[int]*glamour.TermRenderer),
	}
}

// Update handles messages for the thread view.
func (v View) Update(msg tea.Msg) (View, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		return v.handleKey(keyMsg)
	}

	// cursor blink and paste go to whichever reply box has focus
	if c := v.focusedComposer(); c != nil {
		_, cmd := c.Update(msg)
		return v, cmd
	}
	return v, nil
}

// SetTree replaces the displayed comments with a sorted tree.
func (v *View) SetTree(sorted []comment.Comment) {
	v.ctrl.SetTree(sorted)
}

// SetSize updates the view dimensions.
func (v *View) SetSize(width, height int) {
	v.width = width
	v.height = max(height, 1)
}

// Keys returns the bindings handled by the view.
func (v View) Keys() KeyMap {
	return v.keys
}

// Selected returns the comment under the cursor.
func (v View) Selected() (comment.Comment, bool) {
	row, ok := v.ctrl.Selected()
	return row.Comment, ok
}

// Select moves the cursor to the comment with id.
func (v *View) Select(id int64) bool {
	return v.ctrl.Select(id)
}

// HasEditorFocus returns true while a reply box is taking input.
func (v View) HasEditorFocus() bool {
	return v.focusedComposer() != nil
}

// BlurEditor returns focus from any reply box to the list.
func (v *View) BlurEditor() {
	if c := v.focusedComposer(); c != nil {
		c.Blur()
	}
}

// OpenReplies returns the number of reply boxes currently shown.
func (v View) OpenReplies() int {
	return v.ctrl.OpenReplies()
}

// IsReplyOpen reports whether the reply box under comment id is shown.
func (v View) IsReplyOpen(id int64) bool {
	return v.ctrl.IsReplyOpen(id)
}

// CloseReply hides the reply box under comment id and drops its draft.
func (v *View) CloseReply(id int64) {
	v.ctrl.CloseReply(id)
	delete(v.composers, id)
}

// ReplyDraft returns the current text of the reply box under comment id.
func (v View) ReplyDraft(id int64) string {
	if c, ok := v.composers[id]; ok {
		return c.Value()
	}
	return ""
}

func (v View) focusedComposer() *components.Composer {
	for _, c := range v.composers {
		if c.Focused() {
			return c
		}
	}
	return nil
}

func (v View) handleKey(msg tea.KeyPressMsg) (View, tea.Cmd) {
	if c := v.focusedComposer(); c != nil {
		if key.Matches(msg, v.keys.Focus) {
			c.Blur()
			return v, nil
		}
		_, cmd := c.Update(msg)
		return v, cmd
	}

	switch {
	case key.Matches(msg, v.keys.Up):
		v.ctrl.MoveUp()
	case key.Matches(msg, v.keys.Down):
		v.ctrl.MoveDown()
	case key.Matches(msg, v.keys.Top):
		v.ctrl.Top()
	case key.Matches(msg, v.keys.Bottom):
		v.ctrl.Bottom()
	case key.Matches(msg, v.keys.Reply):
		return v, v.toggleReply()
	case key.Matches(msg, v.keys.Focus):
		return v, v.focusReply()
	case key.Matches(msg, v.keys.Upvote):
		return v, v.vote(1)
	case key.Matches(msg, v.keys.Downvote):
		return v, v.vote(-1)
	}
	return v, nil
}

func (v *View) toggleReply() tea.Cmd {
	row, ok := v.ctrl.Selected()
	if !ok {
		return nil
	}

	id := row.Comment.ID
	if !v.ctrl.ToggleReply(id) {
		delete(v.composers, id)
		return nil
	}

	opts := v.opts.Composer
	opts.Label = styles.IconReply + " Reply"
	v.composers[id] = components.NewComposer(id, opts)
	return v.focusReply()
}

func (v *View) focusReply() tea.Cmd {
	row, ok := v.ctrl.Selected()
	if !ok {
		return nil
	}

	c, ok := v.composers[row.Comment.ID]
	if !ok {
		return nil
	}

	v.BlurEditor()
	return c.Focus()
}

func (v View) vote(delta int) tea.Cmd {
	row, ok := v.ctrl.Selected()
	if !ok {
		return nil
	}
	msg := VoteMsg{ID: row.Comment.ID, Delta: delta}
	return func() tea.Msg { return msg }
}

// View renders the visible part of the comment tree, padded to the view
// height.
func (v View) View() string {
	rows := v.ctrl.Rows()
	if len(rows) == 0 {
		return padLines([]string{
			"",
			"  " + styles.EmptyStateStyle.Render("No comments yet. Press n to start the discussion."),
		}, v.height)
	}

	blocks := make([]string, len(rows))
	heights := make([]int, len(rows))
	cursor := v.ctrl.Cursor()
	for i, row := range rows {
		blocks[i] = v.renderRow(row, i == cursor)
		heights[i] = lipgloss.Height(blocks[i])
	}

	v.ctrl.ClampOffset(heights, v.height)

	lines := make([]string, 0, v.height)
	for i := v.ctrl.Offset(); i < len(blocks) && len(lines) < v.height; i++ {
		lines = append(lines, strings.Split(blocks[i], "\n")...)
	}
	return padLines(lines, v.height)
}

func (v View) renderRow(row Row, selected bool) string {
	c := row.Comment

	gutter := "  "
	if selected {
		gutter = styles.CommentCursorStyle.Render(styles.IconCursor) + " "
	}

	guide := v.guide(row)
	cont := v.continuation(row)

	badge := scoreBadge(c.Score)
	badgeWidth := lipgloss.Width(badge)

	textWidth := max(v.width-2-lipgloss.Width(guide)-badgeWidth-1, minTextWidth)
	textLines := v.renderText(c.Text, textWidth)

	textStyle := styles.CommentTextStyle
	if selected {
		textStyle = styles.CommentSelectedStyle
	}
	style := func(s string) string {
		if v.opts.Markdown {
			return s
		}
		return textStyle.Render(s)
	}

	meta := styles.CommentMetaStyle.Render(" · " + formatAge(v.opts.Now().Sub(c.CreatedAt)) + replyCount(c))

	var b strings.Builder
	b.WriteString(gutter)
	b.WriteString(styles.TreeGuideStyle.Render(guide))
	b.WriteString(badge)
	b.WriteString(" ")
	b.WriteString(style(textLines[0]))
	b.WriteString(meta)

	hang := "  " + styles.TreeGuideStyle.Render(cont) + components.Pad(badgeWidth+1)
	for _, line := range textLines[1:] {
		b.WriteString("\n")
		b.WriteString(hang)
		b.WriteString(style(line))
	}

	if composer, ok := v.composers[c.ID]; ok && v.ctrl.IsReplyOpen(c.ID) {
		composer.SetWidth(textWidth)
		for _, line := range strings.Split(composer.View(), "\n") {
			b.WriteString("\n")
			b.WriteString(hang)
			b.WriteString(line)
		}
	}

	return b.String()
}

// guide draws the tree connectors in front of a row.
func (v View) guide(row Row) string {
	if row.Depth == 0 {
		return ""
	}

	var b strings.Builder
	for _, rail := range row.Rails {
		b.WriteString(v.rail(rail))
	}

	corner := styles.TreeBranch
	if row.Last {
		corner = styles.TreeLast
	}
	b.WriteString(corner)
	b.WriteString(strings.Repeat(styles.TreeDash, v.opts.Indent-1))
	b.WriteString(" ")
	return b.String()
}

// continuation draws the connectors for the extra lines of a row.
func (v View) continuation(row Row) string {
	if row.Depth == 0 {
		return ""
	}

	var b strings.Builder
	for _, rail := range row.Rails {
		b.WriteString(v.rail(rail))
	}
	b.WriteString(v.rail(!row.Last))
	return b.String()
}

func (v View) rail(on bool) string {
	if on {
		return styles.TreePipe + components.Pad(v.opts.Indent)
	}
	return components.Pad(v.opts.Indent + 1)
}

func (v View) renderText(text string, width int) []string {
	if v.opts.Markdown {
		if lines, ok := v.renderMarkdown(text, width); ok {
			return lines
		}
	}
	return strings.Split(ansi.Wrap(text, width, ""), "\n")
}

func (v View) renderMarkdown(text string, width int) ([]string, bool) {
	r, ok := v.markdown[width]
	if !ok {
		var err error
		r, err = glamour.NewTermRenderer(
			glamour.WithStyles(styles.GlamourStyle()),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			log.Debug().Err(err).Msg("failed to create markdown renderer, showing raw text")
			return nil, false
		}
		v.markdown[width] = r
	}

	rendered, err := r.Render(text)
	if err != nil {
		log.Debug().Err(err).Msg("failed to render markdown, showing raw text")
		return nil, false
	}

	rendered = strings.Trim(rendered, "\n")
	lines := strings.Split(rendered, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	if len(lines) == 0 {
		return nil, false
	}
	return lines, true
}

func scoreBadge(score int) string {
	return styles.TextMutedStyle.Render(styles.IconUpvote) + " " +
		styles.ScoreStyle(score).Render(fmt.Sprintf("%d", score)) + " " +
		styles.TextMutedStyle.Render(styles.IconDownvote)
}

func replyCount(c comment.Comment) string {
	switch n := len(c.Replies); n {
	case 0:
		return ""
	case 1:
		return " · 1 reply"
	default:
		return fmt.Sprintf(" · %d replies", n)
	}
}

func formatAge(d time.Duration) string {
	d = max(d, 0)
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}

func padLines(lines []string, height int) string {
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
