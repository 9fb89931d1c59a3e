package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"campaigndash/internal/auth"
	"campaigndash/internal/domain"
	"campaigndash/internal/palette"
	"campaigndash/internal/routes"
)

// Screen is the top-level surface being shown
type Screen int

const (
	ScreenLoading Screen = iota
	ScreenLogin
	ScreenSignup
	ScreenDashboard
)

const sidebarWidth = 24

// FieldView is one rendered form field
type FieldView struct {
	Key      string
	Label    string
	Input    string // rendered text input
	Error    string
	Focused  bool
	Checkbox bool
	Checked  bool
}

// LoginView is the sign in screen, both steps
type LoginView struct {
	Step           auth.Step
	Fields         []FieldView
	GeneralError   string
	Busy           bool
	Email          string
	Code           string
	CodeError      string
	Countdown      int
	ChoosingMethod bool
	Methods        []string
	MethodIndex    int
	Demo           auth.Credentials
}

// SignupView is the sign up screen
type SignupView struct {
	Fields   []FieldView
	Password string
	Busy     bool
}

// PaletteView is the open command palette
type PaletteView struct {
	Input    string
	Sections palette.Sections
	Selected int
	Offset   int
	Height   int
}

// SidebarView is the navigation column
type SidebarView struct {
	Entries []routes.FlatEntry
	Cursor  int
	Offset  int
	Height  int
	Active  string
	Focused bool
}

// PageView is the content area of the dashboard
type PageView struct {
	Route              routes.Route
	Path               string
	Loading            bool
	TimeRange          domain.TimeRange
	Metrics            []domain.Metric
	Chart              []domain.ChartPoint
	Contact            *domain.Contact
	Notifications      []domain.Notification
	NotificationCursor int
	NotificationOffset int
	NotificationHeight int
	ContentFocused     bool
	Notified           bool
}

// Toast is a transient message
type Toast struct {
	Text string
	Type domain.NotificationType
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width       int
	Height      int
	Screen      Screen
	User        string
	Unread      int
	Sidebar     SidebarView
	Page        PageView
	Login       *LoginView
	Signup      *SignupView
	Palette     *PaletteView
	Toasts      []Toast
	ShowHelp    bool
	HelpContent string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width, height := state.Width, state.Height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	var content string
	switch state.Screen {
	case ScreenLoading:
		content = lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			r.styles.StatusLoading.Render("Loading..."))
	case ScreenLogin:
		content = lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, r.renderLogin(state.Login))
	case ScreenSignup:
		content = lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, r.renderSignup(state.Signup))
	default:
		content = r.renderDashboard(state, width, height)
	}

	if len(state.Toasts) > 0 {
		content = r.overlayToasts(content, state.Toasts, width)
	}

	if state.Palette != nil {
		return r.popupRender.RenderPopupAt(content, r.renderPalette(state.Palette, width), height/6, width)
	}

	if state.ShowHelp {
		return r.popupRender.RenderPopupOverlay(content, state.HelpContent, height, width, r.styles.InfoBox)
	}

	return content
}

func (r *Renderer) renderDashboard(state ViewState, width, height int) string {
	header := r.renderHeader(state, width)
	footer := r.styles.Help.Render("ctrl+k search • ? help • L sign out • q quit")

	bodyHeight := max(height-lipgloss.Height(header)-1, 1)
	sidebar := r.styles.Sidebar.Height(bodyHeight).Render(r.renderSidebar(state.Sidebar))
	contentWidth := max(width-lipgloss.Width(sidebar)-2, 10)
	page := lipgloss.NewStyle().
		Width(contentWidth).
		MaxHeight(bodyHeight).
		PaddingLeft(1).
		Render(r.renderPage(state.Page, contentWidth-1))

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, page)
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (r *Renderer) renderHeader(state ViewState, width int) string {
	left := r.styles.Title.Render("campaigndash")
	if title := state.Page.Route.Title; title != "" {
		left += r.styles.Subtitle.Render(" · " + title)
	}

	bell := r.styles.Dim.Render("🔔")
	if state.Unread > 0 {
		bell = r.styles.Badge.Render(fmt.Sprintf("🔔 %d", state.Unread))
	}
	right := bell + "  " + r.styles.Label.Render(state.User)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	line := left + strings.Repeat(" ", max(gap, 2)) + right
	return r.styles.Header.Width(width).Render(line)
}

func (r *Renderer) renderSidebar(s SidebarView) string {
	height := max(s.Height, 1)
	end := min(s.Offset+height, len(s.Entries))

	var lines []string
	if s.Offset > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more", s.Offset)))
	}
	for i := s.Offset; i < end; i++ {
		e := s.Entries[i]
		if e.Path == "" {
			lines = append(lines, r.styles.SidebarHeader.Render(e.Title))
			continue
		}

		text := strings.Repeat("  ", e.Depth) + e.Title
		text = fmt.Sprintf("%-*s", sidebarWidth-2, text)
		switch {
		case i == s.Cursor && !s.Focused:
			lines = append(lines, r.styles.SelectionBg.Render(text))
		case e.Path == s.Active:
			lines = append(lines, r.styles.SidebarActive.Render(text))
		default:
			lines = append(lines, r.styles.Label.Render(text))
		}
	}
	if end < len(s.Entries) {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more", len(s.Entries)-end)))
	}
	return lipgloss.NewStyle().Width(sidebarWidth).Render(strings.Join(lines, "\n"))
}

// overlayToasts stacks toasts in the top right corner without dimming the
// content below
func (r *Renderer) overlayToasts(content string, toasts []Toast, width int) string {
	var boxes []string
	for _, t := range toasts {
		color := lipgloss.Color(NotificationColor(t.Type))
		text := lipgloss.NewStyle().Foreground(color).Render(NotificationIcon(t.Type)) + " " + t.Text
		boxes = append(boxes, r.styles.Toast.BorderForeground(color).Render(text))
	}
	stack := lipgloss.JoinVertical(lipgloss.Right, boxes...)
	x := width - lipgloss.Width(stack) - 1
	return splice(content, stack, x, 1, nil)
}
