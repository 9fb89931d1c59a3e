package palette

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaigndash/internal/domain"
	"campaigndash/internal/mockdata"
)

func testCatalog(invoked map[string]int) Catalog {
	var actions []Action
	for _, qa := range mockdata.QuickActions() {
		qa := qa
		actions = append(actions, Action{QuickAction: qa, Invoke: func() { invoked[qa.ID]++ }})
	}
	return Catalog{
		Contacts: mockdata.Contacts(),
		Searches: mockdata.RecentSearches(),
		Actions:  actions,
	}
}

func TestVisibleItemsSingleContactMatch(t *testing.T) {
	c := Catalog{Contacts: []domain.Contact{{ID: "6", Name: "Omar Sattam", Phone: "555-0101"}}}
	s := c.Filter("omar")
	require.Len(t, s.Contacts, 1)
	assert.Equal(t, "6", s.Contacts[0].ID())
	assert.Equal(t, KindContact, s.Contacts[0].Kind)
}

func TestVisibleItemsEmptyQuery(t *testing.T) {
	c := testCatalog(map[string]int{})
	s := c.Filter("")
	assert.Empty(t, s.Contacts)
	assert.Len(t, s.Searches, 3)
	assert.Len(t, s.Actions, len(c.Actions))
	assert.Len(t, VisibleItems(c, ""), 3+len(c.Actions))

	// whitespace counts as empty
	assert.Empty(t, c.Filter("   ").Contacts)
}

func TestVisibleItemsCapsAndOrder(t *testing.T) {
	var contacts []domain.Contact
	for i := 0; i < 8; i++ {
		contacts = append(contacts, domain.Contact{ID: fmt.Sprint(i), Name: fmt.Sprintf("Sam %d", i), Phone: "555"})
	}
	var searches []domain.RecentSearch
	for i := 0; i < 5; i++ {
		searches = append(searches, domain.RecentSearch{ID: fmt.Sprint(i), Title: "Sam search", Kind: domain.SearchKindPage})
	}
	actions := []Action{{QuickAction: domain.QuickAction{ID: "a", Title: "Sam action", Category: domain.CategoryAction}}}
	c := Catalog{Contacts: contacts, Searches: searches, Actions: actions}

	items := VisibleItems(c, "SAM")
	require.Len(t, items, MaxContacts+MaxRecentSearches+1)
	for i := 0; i < MaxContacts; i++ {
		assert.Equal(t, KindContact, items[i].Kind)
	}
	for i := MaxContacts; i < MaxContacts+MaxRecentSearches; i++ {
		assert.Equal(t, KindRecentSearch, items[i].Kind)
	}
	assert.Equal(t, KindQuickAction, items[len(items)-1].Kind)
}

func TestFilterMatchesSecondaryFields(t *testing.T) {
	c := testCatalog(map[string]int{})

	// phone
	s := c.Filter("0101")
	require.Len(t, s.Contacts, 1)
	assert.Equal(t, "Omar Sattam", s.Contacts[0].Title())

	// recent search kind
	s = c.Filter("page")
	assert.Len(t, s.Searches, 2)

	// action category
	s = c.Filter("navigation")
	assert.Len(t, s.Actions, 3)

	// nothing
	assert.Empty(t, VisibleItems(c, "zzzz-no-match"))
}

func TestSetQueryResetsSelection(t *testing.T) {
	sel := NewSelector(testCatalog(map[string]int{}))
	sel.Open()
	sel.Move(Next)
	sel.Move(Next)
	require.Equal(t, 1, sel.Selected())

	sel.SetQuery("camp")
	assert.Equal(t, NoSelection, sel.Selected())

	sel.Move(Next)
	sel.SetQuery("")
	assert.Equal(t, NoSelection, sel.Selected())
}

func TestMoveFromNoSelection(t *testing.T) {
	sel := NewSelector(testCatalog(map[string]int{}))
	sel.Open()
	n := len(sel.Visible())

	sel.Move(Next)
	assert.Equal(t, 0, sel.Selected())

	sel.SetQuery("")
	sel.Move(Previous)
	assert.Equal(t, n-1, sel.Selected())
}

func TestMoveWrapsAround(t *testing.T) {
	sel := NewSelector(testCatalog(map[string]int{}))
	sel.Open()
	n := len(sel.Visible())

	sel.Move(Previous) // last
	sel.Move(Next)
	assert.Equal(t, 0, sel.Selected(), "next from last wraps to first")
	sel.Move(Previous)
	assert.Equal(t, n-1, sel.Selected(), "previous from first wraps to last")
}

func TestMoveRoundTrip(t *testing.T) {
	sel := NewSelector(testCatalog(map[string]int{}))
	sel.Open()
	n := len(sel.Visible())
	require.Greater(t, n, 1)

	for start := 0; start < n; start++ {
		require.True(t, sel.Select(start))
		sel.Move(Next)
		sel.Move(Previous)
		assert.Equal(t, start, sel.Selected())
	}
}

func TestMoveOnEmptyListIsNoop(t *testing.T) {
	sel := NewSelector(testCatalog(map[string]int{}))
	sel.Open()
	sel.SetQuery("zzzz-no-match")

	_, ok := sel.Move(Next)
	assert.False(t, ok)
	assert.Equal(t, NoSelection, sel.Selected())
	_, ok = sel.Move(Previous)
	assert.False(t, ok)
	assert.Equal(t, NoSelection, sel.Selected())
}

func TestMoveSingleItem(t *testing.T) {
	sel := NewSelector(Catalog{Contacts: []domain.Contact{{ID: "6", Name: "Omar Sattam", Phone: "555-0101"}}})
	sel.Open()
	sel.SetQuery("omar")
	sel.Move(Next)
	assert.Equal(t, 0, sel.Selected())
	sel.Move(Next)
	assert.Equal(t, 0, sel.Selected())
	sel.Move(Previous)
	assert.Equal(t, 0, sel.Selected())
}

// The cursor indexes the capped, rendered list. With more matching contacts
// than the cap, the first recent search sits right after the fifth contact,
// not after every matching contact.
func TestSelectionIndexesRenderedList(t *testing.T) {
	var contacts []domain.Contact
	for i := 0; i < 9; i++ {
		contacts = append(contacts, domain.Contact{ID: fmt.Sprint(i + 100), Name: fmt.Sprintf("Camp Person %d", i), Phone: "1"})
	}
	c := testCatalog(map[string]int{})
	c.Contacts = contacts

	sel := NewSelector(c)
	sel.Open()
	sel.SetQuery("camp")

	sections := sel.Sections()
	require.Len(t, sections.Contacts, MaxContacts)
	require.NotEmpty(t, sections.Searches)

	require.True(t, sel.Select(MaxContacts))
	act, ok := sel.Activate()
	require.True(t, ok)
	assert.Equal(t, KindRecentSearch, act.Item.Kind)
	assert.Equal(t, "/campaigns", act.Route)

	// the last rendered row is the last quick action, and nothing past it exists
	sel.Open()
	sel.SetQuery("camp")
	last := len(sel.Visible()) - 1
	assert.Equal(t, sections.Len()-1, last)
	assert.False(t, sel.Select(last+1))
	assert.True(t, sel.Select(last))
	assert.Equal(t, KindQuickAction, sel.Visible()[last].Kind)
}

func TestActivateContact(t *testing.T) {
	sel := NewSelector(testCatalog(map[string]int{}))
	sel.Open()
	sel.SetQuery("omar")
	sel.Move(Next)

	act, ok := sel.Activate()
	require.True(t, ok)
	assert.Equal(t, KindContact, act.Item.Kind)
	assert.Equal(t, "/contacts/6", act.Route)
	assert.False(t, sel.IsOpen())
}

func TestActivateRecentSearches(t *testing.T) {
	sel := NewSelector(testCatalog(map[string]int{}))

	sel.Open()
	sel.Move(Next) // "Omar Sattam" recent search of kind contact
	act, ok := sel.Activate()
	require.True(t, ok)
	assert.Equal(t, KindRecentSearch, act.Item.Kind)
	assert.Equal(t, LegacyContactRoute, act.Route)

	sel.Open()
	sel.Select(2) // "Settings" page
	act, ok = sel.Activate()
	require.True(t, ok)
	assert.Equal(t, "/settings", act.Route)
}

func TestActivateQuickActionInvokesOnce(t *testing.T) {
	invoked := map[string]int{}
	sel := NewSelector(testCatalog(invoked))
	sel.Open()
	sel.SetQuery("analytics")
	sel.Move(Next)

	act, ok := sel.Activate()
	require.True(t, ok)
	assert.True(t, act.Invoked)
	assert.Equal(t, 1, invoked["view-analytics"])
	assert.Len(t, invoked, 1)
	assert.False(t, sel.IsOpen())
}

func TestActivateWithoutSelectionIsNoop(t *testing.T) {
	invoked := map[string]int{}
	sel := NewSelector(testCatalog(invoked))
	sel.Open()

	_, ok := sel.Activate()
	assert.False(t, ok)
	assert.True(t, sel.IsOpen())
	assert.Empty(t, invoked)
}

func TestOpenResetsQuery(t *testing.T) {
	sel := NewSelector(testCatalog(map[string]int{}))
	sel.Open()
	sel.SetQuery("omar")
	sel.Close()
	sel.Open()
	assert.Equal(t, "", sel.Query())
	assert.Equal(t, NoSelection, sel.Selected())
	assert.True(t, sel.IsOpen())
}

func TestScrollRequestsGoStaleOnClose(t *testing.T) {
	sel := NewSelector(testCatalog(map[string]int{}))
	sel.Open()

	req, ok := sel.Move(Next)
	require.True(t, ok)
	assert.True(t, sel.IsCurrent(req))

	newer, _ := sel.Move(Next)
	assert.False(t, sel.IsCurrent(req), "superseded by a newer move")
	assert.True(t, sel.IsCurrent(newer))

	sel.Close()
	assert.False(t, sel.IsCurrent(newer), "closing cancels pending scrolls")
}

func TestItemAccessors(t *testing.T) {
	a := ActionItem(Action{QuickAction: domain.QuickAction{ID: "x", Title: "T", Description: "D"}})
	assert.Equal(t, "x", a.ID())
	assert.Equal(t, "T", a.Title())
	assert.Equal(t, "D", a.Subtitle())
	assert.Equal(t, "quick-action", a.Kind.String())

	s := SearchItem(domain.RecentSearch{ID: "1", Title: "Omar", Description: "Contact profile"})
	assert.Equal(t, "Contact profile", s.Subtitle())
}
