package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/threads/internal/core/comment"
	"github.com/colonyops/threads/pkg/tuitest"
)

func newFocusedComposer(parentID int64) *Composer {
	c := NewComposer(parentID, ComposerOptions{Label: "Reply", Placeholder: "Write a comment..."})
	c.Focus()
	return c
}

func typeInto(c *Composer, s string) *Composer {
	for _, msg := range tuitest.Type(s) {
		c, _ = c.Update(msg)
	}
	return c
}

func TestComposer(t *testing.T) {
	t.Run("creation", func(t *testing.T) {
		c := NewComposer(comment.NoParent, ComposerOptions{})
		assert.Empty(t, c.Value())
		assert.False(t, c.Focused())
	})

	t.Run("focus and blur", func(t *testing.T) {
		c := NewComposer(comment.NoParent, ComposerOptions{})
		c.Focus()
		assert.True(t, c.Focused())
		c.Blur()
		assert.False(t, c.Focused())
	})

	t.Run("update ignored when not focused", func(t *testing.T) {
		c := NewComposer(comment.NoParent, ComposerOptions{})
		c, cmd := c.Update(tuitest.KeyPress('a'))
		assert.Nil(t, cmd)
		assert.Empty(t, c.Value())
	})

	t.Run("typing fills the input", func(t *testing.T) {
		c := typeInto(newFocusedComposer(comment.NoParent), "hello there")
		assert.Equal(t, "hello there", c.Value())
	})

	t.Run("char limit", func(t *testing.T) {
		c := NewComposer(comment.NoParent, ComposerOptions{CharLimit: 3})
		c.Focus()
		c = typeInto(c, "abcdef")
		assert.Equal(t, "abc", c.Value())
	})
}

func TestComposer_Submit(t *testing.T) {
	t.Run("accepted text is emitted and the field cleared", func(t *testing.T) {
		c := typeInto(newFocusedComposer(42), "  hi  ")

		c, cmd := c.Update(tuitest.KeyEnter())
		require.NotNil(t, cmd)

		msg, ok := cmd().(SubmitMsg)
		require.True(t, ok)
		assert.Equal(t, SubmitMsg{ParentID: 42, Text: "hi"}, msg)
		assert.Empty(t, c.Value())
	})

	t.Run("blank text is ignored and kept", func(t *testing.T) {
		for _, text := range []string{"", "   "} {
			c := typeInto(newFocusedComposer(comment.NoParent), text)

			c, cmd := c.Update(tuitest.KeyEnter())

			assert.Nil(t, cmd, "%q", text)
			assert.Equal(t, text, c.Value())
		}
	})
}

func TestComposer_Cancel(t *testing.T) {
	c := typeInto(newFocusedComposer(9), "draft")

	c, cmd := c.Update(tuitest.KeyEsc())
	require.NotNil(t, cmd)

	assert.Equal(t, CancelMsg{ParentID: 9}, cmd())
	assert.Equal(t, "draft", c.Value(), "cancel keeps the draft")
}

func TestComposer_View(t *testing.T) {
	c := NewComposer(comment.NoParent, ComposerOptions{Label: "New comment", Placeholder: "Write a comment..."})
	unfocused := c.View()
	assert.Contains(t, tuitest.StripANSI(unfocused), "New comment")

	c.Focus()
	assert.NotEqual(t, unfocused, c.View())
}
