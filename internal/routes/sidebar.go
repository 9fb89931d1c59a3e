package routes

// NavItem is one entry of the sidebar
type NavItem struct {
	Title    string
	Path     string
	Children []NavItem
}

// Sidebar returns the navigation tree shown next to every protected page
func Sidebar() []NavItem {
	return []NavItem{
		{Title: "Overview", Path: Dashboard},
		{Title: "Analytics", Path: Analytics},
		{Title: "Campaigns", Path: Campaigns, Children: []NavItem{
			{Title: "All campaigns", Path: Campaigns},
			{Title: "Create", Path: CampaignNew},
			{Title: "Templates", Path: Templates},
			{Title: "AI Bots", Path: AIBots},
			{Title: "Settings", Path: CampaignSet},
		}},
		{Title: "Contacts", Path: Contacts, Children: []NavItem{
			{Title: "All contacts", Path: Contacts},
			{Title: "Create", Path: ContactNew},
		}},
		{Title: "Messages", Path: Messages},
		{Title: "Notifications", Path: Notifications},
		{Title: "Settings", Path: Settings},
	}
}

// FlatEntry is a sidebar row after flattening the tree
type FlatEntry struct {
	Title string
	Path  string
	Depth int
}

// FlattenSidebar returns the rows of the sidebar in display order. Parents
// with children are rendered as headers and are not selectable themselves,
// so only their children appear as rows below the header entry.
func FlattenSidebar(items []NavItem) []FlatEntry {
	var out []FlatEntry
	for _, it := range items {
		if len(it.Children) == 0 {
			out = append(out, FlatEntry{Title: it.Title, Path: it.Path})
			continue
		}
		out = append(out, FlatEntry{Title: it.Title, Depth: 0})
		for _, c := range it.Children {
			out = append(out, FlatEntry{Title: c.Title, Path: c.Path, Depth: 1})
		}
	}
	return out
}
