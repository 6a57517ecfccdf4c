package thread

import (
	"github.com/colonyops/threads/internal/core/comment"
)

// Row is one comment in the flattened display order.
type Row struct {
	Comment comment.Comment
	Depth   int
	Last    bool   // no later sibling under the same parent
	Rails   []bool // per ancestor level below the root, whether a rail continues
}

// Controller manages the flattened comment rows, the cursor and which reply
// panels are open. It contains pure data logic with no Bubble Tea
// dependencies.
type Controller struct {
	rows   []Row
	cursor int
	offset int
	open   map[int64]bool
}

// NewController creates a new thread controller.
func NewController() *Controller {
	return &Controller{
		open: make(map[int64]bool),
	}
}

// SetTree replaces the rows with a sorted tree. The cursor stays on the
// previously selected comment when it is still present.
func (c *Controller) SetTree(sorted []comment.Comment) {
	var selectedID int64
	hadSelection := false
	if row, ok := c.Selected(); ok {
		selectedID = row.Comment.ID
		hadSelection = true
	}

	c.rows = c.rows[:0]
	c.flatten(sorted, 0, nil)

	if hadSelection {
		for i, row := range c.rows {
			if row.Comment.ID == selectedID {
				c.cursor = i
				return
			}
		}
	}
	c.cursor = min(c.cursor, max(len(c.rows)-1, 0))
}

func (c *Controller) flatten(nodes []comment.Comment, depth int, rails []bool) {
	for i, n := range nodes {
		last := i == len(nodes)-1
		c.rows = append(c.rows, Row{
			Comment: n,
			Depth:   depth,
			Last:    last,
			Rails:   rails,
		})

		if len(n.Replies) == 0 {
			continue
		}

		childRails := rails
		if depth > 0 {
			childRails = make([]bool, len(rails), len(rails)+1)
			copy(childRails, rails)
			childRails = append(childRails, !last)
		}
		c.flatten(n.Replies, depth+1, childRails)
	}
}

// MoveUp moves the cursor up one row.
func (c *Controller) MoveUp() {
	if c.cursor > 0 {
		c.cursor--
	}
}

// MoveDown moves the cursor down one row.
func (c *Controller) MoveDown() {
	if c.cursor < len(c.rows)-1 {
		c.cursor++
	}
}

// Top moves the cursor to the first row.
func (c *Controller) Top() {
	c.cursor = 0
}

// Bottom moves the cursor to the last row.
func (c *Controller) Bottom() {
	c.cursor = max(len(c.rows)-1, 0)
}

// Select moves the cursor to the comment with id. Unknown ids are ignored.
func (c *Controller) Select(id int64) bool {
	for i, row := range c.rows {
		if row.Comment.ID == id {
			c.cursor = i
			return true
		}
	}
	return false
}

// Selected returns the row under the cursor.
func (c *Controller) Selected() (Row, bool) {
	if c.cursor < 0 || c.cursor >= len(c.rows) {
		return Row{}, false
	}
	return c.rows[c.cursor], true
}

// ToggleReply flips the reply panel of id and reports whether it is now open.
func (c *Controller) ToggleReply(id int64) bool {
	if c.open[id] {
		delete(c.open, id)
		return false
	}
	c.open[id] = true
	return true
}

// CloseReply hides the reply panel of id.
func (c *Controller) CloseReply(id int64) {
	delete(c.open, id)
}

// IsReplyOpen reports whether the reply panel of id is visible.
func (c *Controller) IsReplyOpen(id int64) bool {
	return c.open[id]
}

// OpenReplies returns the number of visible reply panels.
func (c *Controller) OpenReplies() int {
	return len(c.open)
}

// Rows returns the flattened rows in display order.
func (c *Controller) Rows() []Row {
	return c.rows
}

// Cursor returns the current cursor position.
func (c *Controller) Cursor() int {
	return c.cursor
}

// Offset returns the index of the first visible row.
func (c *Controller) Offset() int {
	return c.offset
}

// Len returns the number of rows.
func (c *Controller) Len() int {
	return len(c.rows)
}

// ClampOffset scrolls so the cursor row fits in visibleLines, given the
// rendered height of every row.
func (c *Controller) ClampOffset(heights []int, visibleLines int) {
	if len(heights) == 0 {
		c.offset = 0
		return
	}

	if c.cursor < c.offset {
		c.offset = c.cursor
	}

	for c.offset < c.cursor && span(heights, c.offset, c.cursor) > visibleLines {
		c.offset++
	}

	// pull back up when there is room left below the last row
	for c.offset > 0 && span(heights, c.offset-1, len(heights)-1) <= visibleLines {
		c.offset--
	}
}

// span sums heights[from..to] inclusive.
func span(heights []int, from, to int) int {
	total := 0
	for i := from; i <= to && i < len(heights); i++ {
		total += heights[i]
	}
	return total
}
