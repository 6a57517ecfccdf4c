// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"
	"strings"

	lipgloss "charm.land/lipgloss/v2"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	DividerStyle       lipgloss.Style

	TextForegroundStyle lipgloss.Style
	TextMutedStyle      lipgloss.Style
	TextPrimaryStyle    lipgloss.Style
	TextSuccessStyle    lipgloss.Style
	TextErrorStyle      lipgloss.Style

	// Header and sort selector.
	HeaderTitleStyle   lipgloss.Style
	HeaderCountStyle   lipgloss.Style
	SortOptionStyle    lipgloss.Style
	SortSelectedStyle  lipgloss.Style
	SortSeparatorStyle lipgloss.Style

	// Comment nodes.
	CommentTextStyle     lipgloss.Style
	CommentSelectedStyle lipgloss.Style
	CommentMetaStyle     lipgloss.Style
	CommentCursorStyle   lipgloss.Style
	TreeGuideStyle       lipgloss.Style
	ScorePositiveStyle   lipgloss.Style
	ScoreNegativeStyle   lipgloss.Style
	ScoreNeutralStyle    lipgloss.Style
	EmptyStateStyle      lipgloss.Style

	// Composer.
	FormTitleStyle        lipgloss.Style
	FormTitleBlurredStyle lipgloss.Style
	FormFieldStyle        lipgloss.Style
	FormFieldFocusedStyle lipgloss.Style
	FormHelpStyle         lipgloss.Style

	// Help dialog.
	ModalStyle       lipgloss.Style
	ModalTitleStyle  lipgloss.Style
	ModalHelpStyle   lipgloss.Style
	HelpKeyStyle     lipgloss.Style
	HelpDescStyle    lipgloss.Style
	HelpSectionStyle lipgloss.Style

	// Toasts.
	ToastInfoStyle    lipgloss.Style
	ToastSuccessStyle lipgloss.Style
	ToastWarningStyle lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	DividerStyle = lipgloss.NewStyle().
		Foreground(p.Muted)

	TextForegroundStyle = lipgloss.NewStyle().Foreground(p.Foreground)
	TextMutedStyle = lipgloss.NewStyle().Foreground(p.Muted)
	TextPrimaryStyle = lipgloss.NewStyle().Foreground(p.Primary)
	TextSuccessStyle = lipgloss.NewStyle().Foreground(p.Success)
	TextErrorStyle = lipgloss.NewStyle().Foreground(p.Error)

	HeaderTitleStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	HeaderCountStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	SortOptionStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Padding(0, 1)
	SortSelectedStyle = lipgloss.NewStyle().
		Foreground(p.Background).
		Background(p.Primary).
		Bold(true).
		Padding(0, 1)
	SortSeparatorStyle = lipgloss.NewStyle().
		Foreground(p.Surface)

	CommentTextStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)
	CommentSelectedStyle = lipgloss.NewStyle().
		Foreground(p.Foreground).
		Bold(true)
	CommentMetaStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	CommentCursorStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	TreeGuideStyle = lipgloss.NewStyle().
		Foreground(p.Surface)
	ScorePositiveStyle = lipgloss.NewStyle().
		Foreground(p.Success).
		Bold(true)
	ScoreNegativeStyle = lipgloss.NewStyle().
		Foreground(p.Error).
		Bold(true)
	ScoreNeutralStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	EmptyStateStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)

	FormTitleStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	FormTitleBlurredStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	FormFieldStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(p.Muted).
		PaddingLeft(1)
	FormFieldFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(p.Primary).
		PaddingLeft(1)
	FormHelpStyle = lipgloss.NewStyle().
		Foreground(p.Muted)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Foreground)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)
	HelpKeyStyle = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Bold(true)
	HelpDescStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)
	HelpSectionStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true).
		MarginTop(1)

	toast := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Foreground(p.Foreground)
	ToastInfoStyle = toast.BorderForeground(p.Primary)
	ToastSuccessStyle = toast.BorderForeground(p.Success)
	ToastWarningStyle = toast.BorderForeground(p.Warning)
}

// ScoreStyle picks the score color by sign.
func ScoreStyle(score int) lipgloss.Style {
	switch {
	case score > 0:
		return ScorePositiveStyle
	case score < 0:
		return ScoreNegativeStyle
	default:
		return ScoreNeutralStyle
	}
}

// Swatch renders a short sample of every palette color, used by the themes
// command.
func Swatch(p Palette) string {
	colors := []color.Color{p.Primary, p.Secondary, p.Foreground, p.Muted, p.Success, p.Warning, p.Error}
	var b strings.Builder
	for _, c := range colors {
		b.WriteString(lipgloss.NewStyle().Background(c).Render("   "))
	}
	return b.String()
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
