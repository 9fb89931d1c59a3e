// Package palette implements the command palette: filtering a static catalog
// of contacts, recent searches and quick actions, and a keyboard-driven
// selection cursor over the rendered result list.
package palette

import (
	"strings"

	"campaigndash/internal/domain"
)

// Section caps
const (
	MaxContacts       = 5
	MaxRecentSearches = 3
)

// Kind tags the variant held by an Item
type Kind int

const (
	KindContact Kind = iota
	KindRecentSearch
	KindQuickAction
)

func (k Kind) String() string {
	switch k {
	case KindContact:
		return "contact"
	case KindRecentSearch:
		return "recent-search"
	case KindQuickAction:
		return "quick-action"
	default:
		return "unknown"
	}
}

// Action is a quick action bound to the function that performs it
type Action struct {
	domain.QuickAction
	Invoke func()
}

// Item is one row of the palette. Exactly one of Contact, Search or Action is
// meaningful, selected by Kind.
type Item struct {
	Kind    Kind
	Contact domain.Contact
	Search  domain.RecentSearch
	Action  Action
}

// ContactItem wraps a contact
func ContactItem(c domain.Contact) Item { return Item{Kind: KindContact, Contact: c} }

// SearchItem wraps a recent search
func SearchItem(s domain.RecentSearch) Item { return Item{Kind: KindRecentSearch, Search: s} }

// ActionItem wraps a quick action
func ActionItem(a Action) Item { return Item{Kind: KindQuickAction, Action: a} }

// ID returns the id of the wrapped entity
func (i Item) ID() string {
	switch i.Kind {
	case KindContact:
		return i.Contact.ID
	case KindRecentSearch:
		return i.Search.ID
	case KindQuickAction:
		return i.Action.ID
	}
	return ""
}

// Title is the primary text of the row
func (i Item) Title() string {
	switch i.Kind {
	case KindContact:
		return i.Contact.Name
	case KindRecentSearch:
		return i.Search.Title
	case KindQuickAction:
		return i.Action.Title
	}
	return ""
}

// Subtitle is the secondary text of the row
func (i Item) Subtitle() string {
	switch i.Kind {
	case KindContact:
		return i.Contact.Phone
	case KindRecentSearch:
		return i.Search.Description
	case KindQuickAction:
		return i.Action.Description
	}
	return ""
}

// Catalog is the static set of searchable entries
type Catalog struct {
	Contacts []domain.Contact
	Searches []domain.RecentSearch
	Actions  []Action
}

// Sections is the rendered result split by section, each already capped
type Sections struct {
	Contacts []Item
	Searches []Item
	Actions  []Item
}

// Len is the number of rendered rows
func (s Sections) Len() int {
	return len(s.Contacts) + len(s.Searches) + len(s.Actions)
}

// Items concatenates the sections in display order
func (s Sections) Items() []Item {
	out := make([]Item, 0, s.Len())
	out = append(out, s.Contacts...)
	out = append(out, s.Searches...)
	return append(out, s.Actions...)
}

// Filter computes the rendered sections for a query. Contacts only appear
// once something has been typed; the other sections show unfiltered when
// the query is blank.
func (c Catalog) Filter(query string) Sections {
	blank := strings.TrimSpace(query) == ""
	q := strings.ToLower(query)
	var s Sections

	if !blank {
		for _, ct := range c.Contacts {
			if len(s.Contacts) == MaxContacts {
				break
			}
			if contains(q, ct.Name, ct.Phone) {
				s.Contacts = append(s.Contacts, ContactItem(ct))
			}
		}
	}

	for _, rs := range c.Searches {
		if len(s.Searches) == MaxRecentSearches {
			break
		}
		if blank || contains(q, rs.Title, rs.Description, string(rs.Kind)) {
			s.Searches = append(s.Searches, SearchItem(rs))
		}
	}

	for _, a := range c.Actions {
		if blank || contains(q, a.Title, a.Description, string(a.Category)) {
			s.Actions = append(s.Actions, ActionItem(a))
		}
	}
	return s
}

// VisibleItems is the rendered, capped concatenation for a query
func VisibleItems(c Catalog, query string) []Item {
	return c.Filter(query).Items()
}

func contains(q string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
