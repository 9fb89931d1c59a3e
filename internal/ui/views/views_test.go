package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaigndash/internal/auth"
	"campaigndash/internal/domain"
	"campaigndash/internal/mockdata"
	"campaigndash/internal/palette"
	"campaigndash/internal/routes"
)

func TestSpliceKeepsBaseAroundPopup(t *testing.T) {
	base := "aaaaaaaaaa\nbbbbbbbbbb\ncccccccccc"
	out := splice(base, "XY\nZW", 3, 1, nil)
	assert.Equal(t, "aaaaaaaaaa\nbbbXYbbbbb\ncccZWccccc", out)
}

func TestSplicePadsShortBase(t *testing.T) {
	out := splice("ab", "XY", 4, 2, nil)
	assert.Equal(t, "ab\n\n    XY", out)
}

func TestSpliceRestylesBase(t *testing.T) {
	wrap := func(s ...string) string { return "<" + strings.Join(s, "") + ">" }
	out := splice("\x1b[1mbold\x1b[0m text", "P", 0, 0, wrap)
	assert.Equal(t, "P<old text>", out)
}

func TestWindowRows(t *testing.T) {
	rows := []paletteRow{
		{"Contacts", -1},
		{"c0", 0},
		{"c1", 1},
		{"Quick actions", -1},
		{"a2", 2},
		{"a3", 3},
	}

	assert.Equal(t, []string{"Contacts", "c0", "c1"}, windowRows(rows, 0, 2))
	assert.Equal(t, []string{"  ↑ 1 more", "c1", "Quick actions", "a2"}, windowRows(rows, 1, 2))
	// a window starting on a section's first item keeps its header
	assert.Equal(t, []string{"  ↑ 2 more", "Quick actions", "a2", "a3"}, windowRows(rows, 2, 5))
}

func testState(screen Screen) ViewState {
	table := routes.NewTable()
	match, _ := table.Match(routes.Dashboard)
	return ViewState{
		Width:  100,
		Height: 30,
		Screen: screen,
		User:   "Ada Lovelace",
		Unread: 2,
		Sidebar: SidebarView{
			Entries: routes.FlattenSidebar(routes.Sidebar()),
			Height:  20,
			Active:  routes.Dashboard,
		},
		Page: PageView{
			Route:     match.Route,
			Path:      routes.Dashboard,
			TimeRange: domain.Range30Days,
			Metrics:   mockdata.Metrics(domain.Range30Days),
		},
	}
}

func TestRenderDashboard(t *testing.T) {
	out := ansi.Strip(NewRenderer().Render(testState(ScreenDashboard)))
	assert.Contains(t, out, "campaigndash · Overview")
	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "🔔 2")
	assert.Contains(t, out, "Analytics")
	assert.Contains(t, out, "Last 30 days")
}

func TestRenderComingSoon(t *testing.T) {
	state := testState(ScreenDashboard)
	match, ok := routes.NewTable().Match(routes.Settings)
	require.True(t, ok)
	state.Page = PageView{Route: match.Route, Path: routes.Settings}

	out := ansi.Strip(NewRenderer().Render(state))
	assert.Contains(t, out, "Press n to get notified")

	state.Page.Notified = true
	out = ansi.Strip(NewRenderer().Render(state))
	assert.Contains(t, out, "We'll let you know when it launches.")
}

func TestRenderToastsAndPalette(t *testing.T) {
	state := testState(ScreenDashboard)
	state.Toasts = []Toast{{Text: "Saved!", Type: domain.NotificationSuccess}}

	catalog := palette.Catalog{Searches: mockdata.RecentSearches()}
	state.Palette = &PaletteView{Sections: catalog.Filter(""), Selected: 0, Height: 8}

	out := ansi.Strip(NewRenderer().Render(state))
	assert.Contains(t, out, "Saved!")
	assert.Contains(t, out, "Recent searches")
	assert.Contains(t, out, "› "+mockdata.RecentSearches()[0].Title)
}

func TestRenderEmptyPalette(t *testing.T) {
	state := testState(ScreenDashboard)
	state.Palette = &PaletteView{Selected: palette.NoSelection, Height: 8}
	out := ansi.Strip(NewRenderer().Render(state))
	assert.Contains(t, out, "No results found.")
}

func TestRenderLoginScreens(t *testing.T) {
	r := NewRenderer()
	state := testState(ScreenLogin)
	state.Login = &LoginView{
		Fields: []FieldView{{Key: auth.FieldEmail, Label: "Email", Error: "Email is required"}},
		Demo:   auth.DefaultCredentials(),
	}
	out := ansi.Strip(r.Render(state))
	assert.Contains(t, out, "Sign in to campaigndash")
	assert.Contains(t, out, "Email is required")
	assert.Contains(t, out, auth.DefaultDemoEmail)

	state.Login = &LoginView{Step: auth.StepCode, Email: "ada@example.com", Code: "12", Countdown: 75}
	out = ansi.Strip(r.Render(state))
	assert.Contains(t, out, "Enter the 6-digit code sent to ada@example.com")
	assert.Contains(t, out, "Resend code in 1:15")
}

func TestRenderLoading(t *testing.T) {
	out := ansi.Strip(NewRenderer().Render(ViewState{Screen: ScreenLoading}))
	assert.Contains(t, out, "Loading...")
}
