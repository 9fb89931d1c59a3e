package views

import (
	"github.com/charmbracelet/lipgloss"

	"campaigndash/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Main          lipgloss.Style
	Header        lipgloss.Style
	Badge         lipgloss.Style
	Sidebar       lipgloss.Style
	SidebarHeader lipgloss.Style
	SidebarActive lipgloss.Style
	Scroll        lipgloss.Style
	Highlight     lipgloss.Style
	HighlightBg   lipgloss.Style
	SelectionBg   lipgloss.Style
	Card          lipgloss.Style
	CardValue     lipgloss.Style
	Panel         lipgloss.Style
	InfoBox       lipgloss.Style
	PaletteBox    lipgloss.Style
	Section       lipgloss.Style
	Key           lipgloss.Style
	Label         lipgloss.Style
	Input         lipgloss.Style
	InputFocused  lipgloss.Style
	Button        lipgloss.Style
	Help          lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusLoading lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusInfo    lipgloss.Style
	Toast         lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Dim:      lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Main: lipgloss.NewStyle().
			Padding(0, 1),
		Header: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color("238")),
		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("203")).
			Padding(0, 1),
		Sidebar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(lipgloss.Color("238")).
			PaddingRight(1),
		SidebarHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		SidebarActive: lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		HighlightBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		SelectionBg:   lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("231")),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		CardValue: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		PaletteBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Section:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Key:           lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Label:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Input:         lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
		InputFocused:  lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("99")).Padding(0, 1),
		Button:        lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("62")).Padding(0, 2),
		Help:          lipgloss.NewStyle().Faint(true),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StatusInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // cyan
		Toast: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),
	}
}

// NotificationColor returns the color for a notification type
func NotificationColor(t domain.NotificationType) string {
	switch t {
	case domain.NotificationSuccess:
		return "78" // green
	case domain.NotificationError:
		return "203" // red
	case domain.NotificationWarning:
		return "214" // yellow
	default:
		return "51" // cyan
	}
}

// NotificationIcon returns the glyph drawn in front of a notification
func NotificationIcon(t domain.NotificationType) string {
	switch t {
	case domain.NotificationSuccess:
		return "✓"
	case domain.NotificationError:
		return "✗"
	case domain.NotificationWarning:
		return "!"
	default:
		return "i"
	}
}

// TrendColor returns green for growth and red for decline
func TrendColor(t domain.Trend) string {
	if t == domain.TrendDown {
		return "203"
	}
	return "78"
}
