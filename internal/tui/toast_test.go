package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/threads/pkg/tuitest"
)

func TestToastController_Push(t *testing.T) {
	c := NewToastController()

	c.Push(toastSuccess, "Comment posted")

	require.True(t, c.HasToasts())
	assert.Equal(t, "Comment posted", c.Toasts()[0].message)
	assert.Equal(t, defaultToastTTL, c.Toasts()[0].remaining)
}

func TestToastController_Push_evicts_oldest_at_max(t *testing.T) {
	c := NewToastController()

	for i := range defaultMaxToasts + 2 {
		c.Push(toastInfo, time.Duration(i).String())
	}

	assert.Len(t, c.Toasts(), defaultMaxToasts)
	assert.Equal(t, "2ns", c.Toasts()[0].message)
}

func TestToastController_Tick(t *testing.T) {
	c := NewToastController()
	c.Push(toastInfo, "expires")
	c.Push(toastInfo, "survives")

	c.toasts[0].remaining = 50 * time.Millisecond
	c.Tick(100 * time.Millisecond)

	require.Len(t, c.Toasts(), 1)
	assert.Equal(t, "survives", c.Toasts()[0].message)
	assert.Equal(t, defaultToastTTL-100*time.Millisecond, c.Toasts()[0].remaining)
}

func TestToastController_Ticking(t *testing.T) {
	c := NewToastController()
	c.Push(toastInfo, "a")

	assert.NotNil(t, c.StartTicking())
	assert.Nil(t, c.StartTicking(), "only one tick in flight")

	assert.NotNil(t, c.HandleTick(), "keeps ticking while toasts remain")

	c.DismissAll()
	assert.Nil(t, c.HandleTick())
	assert.NotNil(t, c.StartTicking(), "restarts after stopping")
}

func TestToastController_Overlay(t *testing.T) {
	c := NewToastController()
	bg := strings.Repeat(strings.Repeat(".", 80)+"\n", 10)

	assert.Equal(t, bg, c.Overlay(bg, 80, 10))

	c.Push(toastWarning, "heads up")
	out := tuitest.StripANSI(c.Overlay(bg, 80, 10))
	assert.Contains(t, out, "heads up")
}

func TestToastController_Overlay_bottom_right(t *testing.T) {
	c := NewToastController()
	bg := strings.Repeat(strings.Repeat(".", 80)+"\n", 20)

	c.Push(toastInfo, "placed")
	lines := strings.Split(tuitest.StripANSI(c.Overlay(bg, 80, 20)), "\n")

	row := -1
	for i, line := range lines {
		if strings.Contains(line, "placed") {
			row = i
			break
		}
	}
	require.GreaterOrEqual(t, row, 0)
	assert.Greater(t, row, 10, "toast sits in the lower half")
	assert.Greater(t, strings.Index(lines[row], "placed"), 40, "toast sits on the right")
}
