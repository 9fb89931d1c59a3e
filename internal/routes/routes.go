// Package routes holds the static route table of the dashboard.
package routes

import (
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/gorilla/mux"
)

// Well-known paths
const (
	Login         = "/login"
	Signup        = "/signup"
	Dashboard     = "/"
	Analytics     = "/analytics"
	Campaigns     = "/campaigns"
	CampaignNew   = "/campaigns/create"
	CampaignSet   = "/campaigns/settings"
	Templates     = "/campaigns/templates"
	AIBots        = "/campaigns/ai-bots"
	Contacts      = "/contacts"
	ContactNew    = "/contacts/create"
	ContactDetail = "/contacts/{id}"
	Messages      = "/messages"
	Notifications = "/notifications"
	Settings      = "/settings"
)

// Route describes one page of the application
type Route struct {
	Name        string
	Template    string
	Title       string
	Description string
	Public      bool
	ComingSoon  bool
}

// Match is the result of resolving a concrete path
type Match struct {
	Route Route
	Path  string
	Vars  map[string]string
}

var table = []Route{
	{Name: "login", Template: Login, Title: "Sign in", Public: true},
	{Name: "signup", Template: Signup, Title: "Create account", Public: true},
	{Name: "overview", Template: Dashboard, Title: "Overview", Description: "Messaging performance at a glance"},
	{Name: "analytics", Template: Analytics, Title: "Analytics", Description: "Delivery and engagement trends"},
	{Name: "campaigns", Template: Campaigns, Title: "Campaigns", Description: "View and manage campaigns", ComingSoon: true},
	{Name: "campaigns-create", Template: CampaignNew, Title: "Create Campaign", Description: "Start a new messaging campaign", ComingSoon: true},
	{Name: "campaigns-settings", Template: CampaignSet, Title: "Campaign Settings", Description: "Defaults for every campaign", ComingSoon: true},
	{Name: "campaigns-templates", Template: Templates, Title: "Templates", Description: "Manage message templates", ComingSoon: true},
	{Name: "campaigns-ai-bots", Template: AIBots, Title: "AI Bots", Description: "Configure and manage AI-powered campaign bots", ComingSoon: true},
	{Name: "contacts", Template: Contacts, Title: "Contacts", Description: "Everyone you message", ComingSoon: true},
	// must precede the {id} template
	{Name: "contacts-create", Template: ContactNew, Title: "Create Contact", Description: "Add a new contact to your database", ComingSoon: true},
	{Name: "contact-detail", Template: ContactDetail, Title: "Contact", Description: "Contact profile"},
	{Name: "messages", Template: Messages, Title: "Messages", Description: "Conversations with your contacts", ComingSoon: true},
	{Name: "notifications", Template: Notifications, Title: "Notifications", Description: "Everything that happened recently"},
	{Name: "settings", Template: Settings, Title: "Settings", Description: "Configure application settings", ComingSoon: true},
}

// Table resolves concrete paths against the route templates
type Table struct {
	router *mux.Router
	byName map[string]Route
	public map[string]bool
}

// NewTable builds the route table
func NewTable() *Table {
	t := &Table{
		router: mux.NewRouter(),
		byName: make(map[string]Route, len(table)),
		public: make(map[string]bool),
	}
	for _, r := range table {
		t.router.NewRoute().Path(r.Template).Name(r.Name)
		t.byName[r.Name] = r
		if r.Public {
			t.public[r.Template] = true
		}
	}
	return t
}

// Match resolves a concrete path. ok is false for unmatched paths.
func (t *Table) Match(p string) (Match, bool) {
	clean := Clean(p)
	req := &http.Request{Method: http.MethodGet, URL: &url.URL{Path: clean}}
	var rm mux.RouteMatch
	if !t.router.Match(req, &rm) || rm.Route == nil {
		return Match{}, false
	}
	r, ok := t.byName[rm.Route.GetName()]
	if !ok {
		return Match{}, false
	}
	return Match{Route: r, Path: clean, Vars: rm.Vars}, true
}

// IsPublic reports whether the path is one of the public paths
func (t *Table) IsPublic(p string) bool {
	return t.public[Clean(p)]
}

// Routes returns the full table in declaration order
func (t *Table) Routes() []Route {
	out := make([]Route, len(table))
	copy(out, table)
	return out
}

// ContactPath builds the detail path for a contact id
func ContactPath(id string) string {
	u, err := mux.NewRouter().NewRoute().Path(ContactDetail).URLPath("id", id)
	if err != nil {
		return Contacts + "/" + url.PathEscape(id)
	}
	return u.Path
}

// Clean normalizes a path: leading slash, no trailing slash, no dot segments
func Clean(p string) string {
	if p == "" {
		return Dashboard
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}
