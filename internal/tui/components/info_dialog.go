package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/threads/internal/core/styles"
)

const (
	infoModalMaxHeight = 24
	infoModalMargin    = 4
	infoModalChrome    = 6 // title + divider + help + spacing
	infoModalMinWidth  = 40
)

// InfoItem is a single labeled row in an info section.
type InfoItem struct {
	Label string
	Value string
}

// InfoSection groups related info items under a section title.
type InfoSection struct {
	Title string
	Items []InfoItem
}

// InfoDialog displays labeled values in a scrollable modal.
type InfoDialog struct {
	title    string
	sections []InfoSection
	helpText string
	viewport viewport.Model
}

// NewInfoDialog creates a new info dialog sized for a width x height screen.
func NewInfoDialog(title string, sections []InfoSection, helpText string, width, height int) *InfoDialog {
	modalWidth := infoModalWidth(width)
	contentHeight := max(infoModalHeight(height)-infoModalChrome, 1)

	vp := viewport.New(
		viewport.WithWidth(modalWidth-4),
		viewport.WithHeight(contentHeight),
	)

	d := &InfoDialog{
		title:    title,
		sections: sections,
		helpText: helpText,
		viewport: vp,
	}
	d.viewport.SetContent(d.renderContent(modalWidth))
	return d
}

func infoModalWidth(width int) int {
	return max(min(max(width*2/3, infoModalMinWidth), width-infoModalMargin), 10)
}

func infoModalHeight(height int) int {
	return max(min(height-infoModalMargin, infoModalMaxHeight), infoModalChrome+1)
}

func (d *InfoDialog) renderContent(modalWidth int) string {
	separator := styles.DividerStyle.Render(strings.Repeat("─", max(modalWidth-6, 1)))

	labelWidth := 0
	for _, section := range d.sections {
		for _, item := range section.Items {
			labelWidth = max(labelWidth, lipgloss.Width(item.Label))
		}
	}

	var lines []string
	for i, section := range d.sections {
		if i > 0 {
			lines = append(lines, "")
		}
		if section.Title != "" {
			lines = append(lines, styles.HelpSectionStyle.Render(section.Title))
			lines = append(lines, separator)
		}
		for _, item := range section.Items {
			label := item.Label + Pad(labelWidth-lipgloss.Width(item.Label))
			lines = append(lines, styles.HelpKeyStyle.Render(label)+"  "+styles.TextMutedStyle.Render(item.Value))
		}
	}

	return strings.Join(lines, "\n")
}

// ScrollUp scrolls the viewport up.
func (d *InfoDialog) ScrollUp() {
	d.viewport.ScrollUp(1)
}

// ScrollDown scrolls the viewport down.
func (d *InfoDialog) ScrollDown() {
	d.viewport.ScrollDown(1)
}

// Overlay renders the dialog centered over the provided background.
func (d *InfoDialog) Overlay(background string, width, height int) string {
	modalWidth := infoModalWidth(width)

	scrollInfo := ""
	if d.viewport.TotalLineCount() > d.viewport.VisibleLineCount() {
		scrollInfo = styles.TextMutedStyle.Render(
			fmt.Sprintf(" (%.0f%%)", d.viewport.ScrollPercent()*100),
		)
	}

	divider := styles.DividerStyle.Render(strings.Repeat("─", max(modalWidth-6, 1)))
	modalContent := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render(d.title+scrollInfo),
		divider,
		d.viewport.View(),
		styles.ModalHelpStyle.Render(d.helpText),
	)

	modal := styles.ModalStyle.
		Width(modalWidth).
		Render(modalContent)

	bgLayer := lipgloss.NewLayer(background)
	modalLayer := lipgloss.NewLayer(modal)

	centerX := max((width-lipgloss.Width(modal))/2, 0)
	centerY := max((height-lipgloss.Height(modal))/2, 0)
	modalLayer.X(centerX).Y(centerY).Z(1)

	return lipgloss.NewCompositor(bgLayer, modalLayer).Render()
}
