package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
	gray   lipgloss.Style
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
		gray:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// RenderPopupOverlay centers a popup on top of the main content
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)
	x := (width - lipgloss.Width(styledPopup)) / 2
	y := (height - lipgloss.Height(styledPopup)) / 2
	return pr.place(mainContent, styledPopup, x, y)
}

// RenderPopupAt draws an already styled popup with its top edge at row y,
// horizontally centered
func (pr *PopupRenderer) RenderPopupAt(mainContent, styledPopup string, y, width int) string {
	x := (width - lipgloss.Width(styledPopup)) / 2
	return pr.place(mainContent, styledPopup, x, y)
}

// place splices the popup lines into the desaturated base
func (pr *PopupRenderer) place(base, popup string, x, y int) string {
	return splice(base, popup, x, y, pr.gray.Render)
}

// splice draws popup over base with its top left corner at column x, row y,
// keeping the base text left and right of the popup box. When restyle is
// set, base lines are stripped of their styling and passed through it.
func splice(base, popup string, x, y int, restyle func(...string) string) string {
	x, y = max(x, 0), max(y, 0)
	popupLines := strings.Split(popup, "\n")
	popupW := lipgloss.Width(popup)

	baseLines := strings.Split(base, "\n")
	for len(baseLines) < y+len(popupLines) {
		baseLines = append(baseLines, "")
	}

	style := func(s string) string {
		if restyle == nil || s == "" {
			return s
		}
		return restyle(s)
	}

	out := make([]string, len(baseLines))
	for i, line := range baseLines {
		if restyle != nil {
			line = ansi.Strip(line)
		}
		row := i - y
		if row < 0 || row >= len(popupLines) {
			out[i] = style(line)
			continue
		}

		left := ansi.Truncate(line, x, "")
		left += strings.Repeat(" ", max(x-ansi.StringWidth(left), 0))
		right := ansi.TruncateLeft(line, x+popupW, "")

		pl := popupLines[row]
		pl += strings.Repeat(" ", max(popupW-lipgloss.Width(pl), 0))
		out[i] = style(left) + pl + style(right)
	}
	return strings.Join(out, "\n")
}
