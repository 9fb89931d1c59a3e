package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

type helpEntry struct {
	keys string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

var helpSections = []helpSection{
	{"Navigation", []helpEntry{
		{"↑/↓, j/k", "Move through the sidebar"},
		{"PgUp/PgDn", "Page up/down"},
		{"gg/G", "Go to top/bottom"},
		{"Enter", "Open the highlighted page"},
		{"Tab", "Switch between sidebar and notification list"},
	}},
	{"Command palette", []helpEntry{
		{"Ctrl+K, /", "Open the palette"},
		{"↑/↓, Ctrl+P/N", "Move the selection (wraps around)"},
		{"Enter", "Open the selected result"},
		{"Esc", "Close the palette"},
	}},
	{"Dashboard", []helpEntry{
		{"t", "Cycle the time range (7d, 30d, 90d)"},
		{"n", "Ask to be notified when a page launches"},
		{"L", "Sign out"},
	}},
	{"Notifications", []helpEntry{
		{"r", "Mark as read"},
		{"R", "Mark all as read"},
		{"x", "Remove"},
		{"C", "Clear all"},
	}},
	{"Sign in & sign up", []helpEntry{
		{"Tab/Shift+Tab", "Next/previous field"},
		{"Enter", "Submit"},
		{"Ctrl+D", "Fill in the demo account"},
		{"Ctrl+S", "Switch between sign in and sign up"},
		{"Space", "Toggle the terms checkbox"},
		{"Ctrl+R", "Resend the verification code"},
		{"Esc", "Go back"},
		{"F1", "Help"},
	}},
	{"Other", []helpEntry{
		{"?", "Toggle this help"},
		{"q, Ctrl+C", "Quit"},
	}},
}

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	title   lipgloss.Style
	section lipgloss.Style
	key     lipgloss.Style
	desc    lipgloss.Style
	dim     lipgloss.Style
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).MarginBottom(1),
		section: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1),
		key:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		desc:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// RenderHelpContentPlain generates the full help text with colors, for the pager
func (r *HelpRenderer) RenderHelpContentPlain() string {
	width := 0
	for _, s := range helpSections {
		for _, e := range s.entries {
			width = max(width, lipgloss.Width(e.keys))
		}
	}

	var help strings.Builder
	help.WriteString(r.title.Render("campaigndash help"))
	help.WriteString("\n")
	for i, s := range helpSections {
		help.WriteString(r.section.Render(s.title))
		help.WriteString("\n")
		for j, e := range s.entries {
			pad := strings.Repeat(" ", width-lipgloss.Width(e.keys))
			fmt.Fprintf(&help, "  %s%s  %s", r.key.Render(e.keys), pad, r.desc.Render(e.desc))
			if i < len(helpSections)-1 || j < len(s.entries)-1 {
				help.WriteString("\n")
			}
		}
	}
	return help.String()
}

// renderHelpContent renders the help window for the inline popup
func (r *HelpRenderer) renderHelpContent(height int, scrollOffset int) string {
	lines := strings.Split(r.RenderHelpContentPlain(), "\n")
	totalLines := len(lines)

	// account for popup border and padding
	visibleHeight := max(height-4, 5)
	if totalLines <= visibleHeight {
		return strings.Join(lines, "\n")
	}

	scrollOffset = min(max(scrollOffset, 0), totalLines-visibleHeight)
	endLine := min(scrollOffset+visibleHeight, totalLines)
	visible := append([]string(nil), lines[scrollOffset:endLine]...)

	if scrollOffset > 0 {
		visible[0] = r.dim.Render("↑ (more above)")
	}
	if endLine < totalLines {
		visible[len(visible)-1] = r.dim.Render("↓ (more below)")
	}
	return strings.Join(visible, "\n")
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
