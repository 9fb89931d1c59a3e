package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"campaigndash/internal/palette"
)

// paletteRow is a rendered line of the palette and the global item index it
// belongs to, or -1 for section headers
type paletteRow struct {
	text  string
	index int
}

func (r *Renderer) renderPalette(p *PaletteView, width int) string {
	boxWidth := min(max(width-8, 30), 72)
	inner := boxWidth - 4

	var rows []paletteRow
	index := 0
	section := func(title string, items []palette.Item) {
		if len(items) == 0 {
			return
		}
		rows = append(rows, paletteRow{text: r.styles.Section.Render(title), index: -1})
		for _, it := range items {
			rows = append(rows, paletteRow{text: r.renderPaletteItem(it, index == p.Selected, inner), index: index})
			index++
		}
	}
	section("Contacts", p.Sections.Contacts)
	section("Recent searches", p.Sections.Searches)
	section("Quick actions", p.Sections.Actions)

	lines := []string{
		r.styles.Key.Render("› ") + p.Input,
		r.styles.Dim.Render(strings.Repeat("─", inner)),
	}
	if len(rows) == 0 {
		lines = append(lines, r.styles.Dim.Render("No results found."))
	} else {
		lines = append(lines, windowRows(rows, p.Offset, p.Height)...)
	}
	lines = append(lines, "", r.styles.Dim.Render("↑↓ navigate · enter select · esc close"))

	return r.styles.PaletteBox.Width(boxWidth).Render(strings.Join(lines, "\n"))
}

// windowRows returns the rows from the first item at offset, including its
// section header, with room for up to height items and their headers
func windowRows(rows []paletteRow, offset, height int) []string {
	start := 0
	for i, row := range rows {
		if row.index == offset {
			start = i
			if i > 0 && rows[i-1].index == -1 {
				start = i - 1
			}
			break
		}
	}

	var out []string
	items := 0
	for _, row := range rows[start:] {
		if items == height {
			break
		}
		if row.index >= 0 {
			items++
		}
		out = append(out, row.text)
	}

	if len(out) > 0 && start > 0 {
		out = append([]string{fmt.Sprintf("  ↑ %d more", offset)}, out...)
	}
	return out
}

func (r *Renderer) renderPaletteItem(it palette.Item, selected bool, width int) string {
	left := it.Title()
	if sub := it.Subtitle(); sub != "" {
		left += "  " + r.styles.Subtitle.Render(sub)
	}
	right := ""
	if it.Kind == palette.KindQuickAction {
		right = r.styles.Key.Render(it.Action.Shortcut)
	}

	if selected {
		plain := "› " + it.Title()
		if sub := it.Subtitle(); sub != "" {
			plain += "  " + sub
		}
		return r.styles.SelectionBg.Width(width).Render(plain)
	}
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	return "  " + left + strings.Repeat(" ", gap) + right
}
