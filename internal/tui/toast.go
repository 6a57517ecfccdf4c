package tui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/threads/internal/core/styles"
)

const (
	defaultToastTTL   = 3 * time.Second
	defaultMaxToasts  = 3
	toastTickInterval = 100 * time.Millisecond
	toastWidth        = 36
)

type toastLevel int

const (
	toastInfo toastLevel = iota
	toastSuccess
	toastWarning
)

type toast struct {
	level     toastLevel
	message   string
	remaining time.Duration
}

type toastTickMsg time.Time

func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

// ToastController manages the lifecycle of short status messages shown
// after a comment is posted or the sort changes.
type ToastController struct {
	toasts  []toast
	ticking bool
}

func NewToastController() *ToastController {
	return &ToastController{}
}

// Push adds a toast. When the stack exceeds defaultMaxToasts the oldest is
// evicted.
func (c *ToastController) Push(level toastLevel, message string) {
	c.toasts = append(c.toasts, toast{
		level:     level,
		message:   message,
		remaining: defaultToastTTL,
	})
	if len(c.toasts) > defaultMaxToasts {
		c.toasts = c.toasts[len(c.toasts)-defaultMaxToasts:]
	}
}

// Tick decrements the remaining TTL on all toasts by d and removes any that
// have expired.
func (c *ToastController) Tick(d time.Duration) {
	alive := c.toasts[:0]
	for _, t := range c.toasts {
		t.remaining -= d
		if t.remaining > 0 {
			alive = append(alive, t)
		}
	}
	c.toasts = alive
}

// DismissAll removes all active toasts.
func (c *ToastController) DismissAll() {
	c.toasts = c.toasts[:0]
}

func (c *ToastController) HasToasts() bool { return len(c.toasts) > 0 }
func (c *ToastController) Toasts() []toast { return c.toasts }

// StartTicking returns the tick command unless a tick is already pending.
func (c *ToastController) StartTicking() tea.Cmd {
	if c.ticking {
		return nil
	}
	c.ticking = true
	return scheduleToastTick()
}

// HandleTick advances the toasts and keeps ticking while any remain.
func (c *ToastController) HandleTick() tea.Cmd {
	c.Tick(toastTickInterval)
	if !c.HasToasts() {
		c.ticking = false
		return nil
	}
	return scheduleToastTick()
}

func renderToast(t toast) string {
	var icon string
	var style lipgloss.Style

	switch t.level {
	case toastSuccess:
		icon = styles.IconToastSuccess
		style = styles.ToastSuccessStyle
	case toastWarning:
		icon = styles.IconToastWarning
		style = styles.ToastWarningStyle
	default:
		icon = styles.IconToastInfo
		style = styles.ToastInfoStyle
	}

	return style.Width(toastWidth).Render(icon + " " + t.message)
}

// Overlay composites the toast stack over background in the lower-right
// corner.
func (c *ToastController) Overlay(background string, width, height int) string {
	if !c.HasToasts() {
		return background
	}

	rendered := make([]string, 0, len(c.toasts))
	for _, t := range c.toasts {
		rendered = append(rendered, renderToast(t))
	}
	content := strings.Join(rendered, "\n")

	bgLayer := lipgloss.NewLayer(background)
	toastLayer := lipgloss.NewLayer(content)

	rightX := max(width-lipgloss.Width(content)-1, 0)
	bottomY := max(height-lipgloss.Height(content)-1, 0)
	toastLayer.X(rightX).Y(bottomY).Z(2)

	return lipgloss.NewCompositor(bgLayer, toastLayer).Render()
}
