package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchStaticRoutes(t *testing.T) {
	tbl := NewTable()

	for _, p := range []string{
		"/", "/analytics", "/campaigns", "/campaigns/create", "/campaigns/settings",
		"/campaigns/templates", "/campaigns/ai-bots", "/contacts", "/contacts/create",
		"/messages", "/notifications", "/settings", "/login", "/signup",
	} {
		m, ok := tbl.Match(p)
		require.True(t, ok, "expected %s to match", p)
		assert.Equal(t, p, m.Route.Template, "route template for %s", p)
	}
}

func TestMatchContactDetail(t *testing.T) {
	tbl := NewTable()

	m, ok := tbl.Match("/contacts/6")
	require.True(t, ok)
	assert.Equal(t, ContactDetail, m.Route.Template)
	assert.Equal(t, "6", m.Vars["id"])

	// create must win over the {id} template
	m, ok = tbl.Match("/contacts/create")
	require.True(t, ok)
	assert.Equal(t, ContactNew, m.Route.Template)
}

func TestUnmatchedPaths(t *testing.T) {
	tbl := NewTable()
	for _, p := range []string{"/nope", "/contacts/6/edit", "/campaigns/unknown"} {
		_, ok := tbl.Match(p)
		assert.False(t, ok, "expected %s not to match", p)
	}
}

func TestCleanAndPublic(t *testing.T) {
	tbl := NewTable()
	assert.Equal(t, "/", Clean(""))
	assert.Equal(t, "/settings", Clean("settings"))
	assert.Equal(t, "/login", Clean("/login/"))

	assert.True(t, tbl.IsPublic("/login"))
	assert.True(t, tbl.IsPublic("/signup/"))
	assert.False(t, tbl.IsPublic("/"))
	assert.False(t, tbl.IsPublic("/contacts/6"))
}

func TestContactPath(t *testing.T) {
	assert.Equal(t, "/contacts/6", ContactPath("6"))
}

func TestFlattenSidebar(t *testing.T) {
	rows := FlattenSidebar(Sidebar())
	require.NotEmpty(t, rows)
	assert.Equal(t, "Overview", rows[0].Title)

	var campaignsHeader, createRow bool
	for _, r := range rows {
		if r.Title == "Campaigns" && r.Path == "" {
			campaignsHeader = true
		}
		if r.Path == CampaignNew {
			createRow = true
			assert.Equal(t, 1, r.Depth)
		}
	}
	assert.True(t, campaignsHeader, "campaigns header row")
	assert.True(t, createRow, "campaign create row")
}
