package palette

import (
	"strings"

	"campaigndash/internal/domain"
	"campaigndash/internal/routes"
)

// LegacyContactRoute is where a recent search of kind contact leads
const LegacyContactRoute = "/contacts/6"

// Direction moves the selection cursor
type Direction int

const (
	Next Direction = iota
	Previous
)

// NoSelection is the cursor value when nothing is selected
const NoSelection = -1

// Activation describes what activating an item did
type Activation struct {
	Item Item
	// Route is the navigation target for contacts and recent searches.
	// Quick actions navigate through their bound Invoke instead.
	Route   string
	Invoked bool
}

// ScrollRequest asks the view to bring Index into view. Requests from an
// older generation are stale and must be dropped.
type ScrollRequest struct {
	Index      int
	Generation uint64
}

// Selector holds the palette state: visibility, query and cursor
type Selector struct {
	catalog  Catalog
	open     bool
	query    string
	sections Sections
	visible  []Item
	selected int
	scroll   uint64
}

// NewSelector creates a closed palette over a catalog
func NewSelector(c Catalog) *Selector {
	s := &Selector{catalog: c, selected: NoSelection}
	s.refresh()
	return s
}

// Open shows the palette with an empty query
func (s *Selector) Open() {
	s.open = true
	s.SetQuery("")
}

// Close hides the palette and invalidates pending scroll requests
func (s *Selector) Close() {
	s.open = false
	s.scroll++
}

// IsOpen reports visibility
func (s *Selector) IsOpen() bool { return s.open }

// Query returns the current filter text
func (s *Selector) Query() string { return s.query }

// Selected returns the cursor, or NoSelection
func (s *Selector) Selected() int { return s.selected }

// Visible returns the rendered rows
func (s *Selector) Visible() []Item { return s.visible }

// Sections returns the rendered rows grouped by section
func (s *Selector) Sections() Sections { return s.sections }

// SetQuery replaces the query and clears the selection
func (s *Selector) SetQuery(q string) {
	s.query = q
	s.selected = NoSelection
	s.refresh()
}

// Move advances or retreats the cursor with wraparound over the rendered
// rows and returns a scroll request for the new position.
func (s *Selector) Move(dir Direction) (ScrollRequest, bool) {
	n := len(s.visible)
	if n == 0 {
		s.selected = NoSelection
		return ScrollRequest{}, false
	}

	switch {
	case s.selected == NoSelection && dir == Next:
		s.selected = 0
	case s.selected == NoSelection:
		s.selected = n - 1
	case dir == Next:
		s.selected = (s.selected + 1) % n
	default:
		s.selected = (s.selected - 1 + n) % n
	}

	s.scroll++
	return ScrollRequest{Index: s.selected, Generation: s.scroll}, true
}

// Select points the cursor at a rendered row, as a click would
func (s *Selector) Select(index int) bool {
	if index < 0 || index >= len(s.visible) {
		return false
	}
	s.selected = index
	return true
}

// IsCurrent reports whether a scroll request is still valid
func (s *Selector) IsCurrent(req ScrollRequest) bool {
	return s.open && req.Generation == s.scroll && req.Index == s.selected
}

// Activate runs the selected row and closes the palette. With no selection
// it does nothing and the palette stays open.
func (s *Selector) Activate() (Activation, bool) {
	if s.selected < 0 || s.selected >= len(s.visible) {
		return Activation{}, false
	}
	item := s.visible[s.selected]
	act := Activation{Item: item}

	switch item.Kind {
	case KindContact:
		act.Route = routes.ContactPath(item.Contact.ID)
	case KindRecentSearch:
		act.Route = searchRoute(item)
	case KindQuickAction:
		if item.Action.Invoke != nil {
			item.Action.Invoke()
			act.Invoked = true
		}
	}

	s.Close()
	return act, true
}

func searchRoute(item Item) string {
	switch item.Search.Kind {
	case domain.SearchKindContact:
		return LegacyContactRoute
	default:
		return "/" + strings.ToLower(item.Search.Title)
	}
}

// refresh recomputes the rendered rows and revalidates the cursor
func (s *Selector) refresh() {
	s.sections = s.catalog.Filter(s.query)
	s.visible = s.sections.Items()
	if s.selected >= len(s.visible) {
		s.selected = NoSelection
	}
}
