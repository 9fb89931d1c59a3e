// Package mockdata holds the static data the dashboard renders in place of a
// backend.
package mockdata

import (
	"time"

	"campaigndash/internal/domain"
)

// Contacts returns the address book
func Contacts() []domain.Contact {
	return []domain.Contact{
		{ID: "1", Name: "Sarah Johnson", Phone: "+1 555-0134", Email: "sarah.johnson@example.com", Company: "Brightline", Tags: []string{"vip"}},
		{ID: "2", Name: "Michael Chen", Phone: "+1 555-0178", Email: "m.chen@example.com", Company: "Northwind"},
		{ID: "3", Name: "Emma Rodriguez", Phone: "+1 555-0112", Email: "emma.r@example.com", Company: "Acme Retail", Tags: []string{"newsletter"}},
		{ID: "4", Name: "James Wilson", Phone: "+1 555-0199", Email: "jwilson@example.com", Company: "Wilson & Co"},
		{ID: "5", Name: "Aisha Patel", Phone: "+44 20 7946 0321", Email: "aisha.patel@example.com", Company: "Lumen Health", Tags: []string{"vip", "beta"}},
		{ID: "6", Name: "Omar Sattam", Phone: "555-0101", Email: "omar.sattam@example.com", Company: "Sattam Trading", Tags: []string{"vip"}},
		{ID: "7", Name: "Lucas Martin", Phone: "+33 1 70 36 39 50", Email: "lucas.martin@example.com", Company: "Atelier Martin"},
		{ID: "8", Name: "Sofia Rossi", Phone: "+39 06 6982 1234", Email: "sofia.rossi@example.com", Company: "Rossi Design", Tags: []string{"newsletter"}},
		{ID: "9", Name: "Daniel Kim", Phone: "+1 555-0156", Email: "daniel.kim@example.com", Company: "Kim Logistics"},
		{ID: "10", Name: "Olivia Brown", Phone: "+1 555-0187", Email: "olivia.brown@example.com", Company: "Brown Bakery"},
		{ID: "11", Name: "Noah Davis", Phone: "+1 555-0143", Email: "noah.davis@example.com", Company: "Davis Fitness"},
		{ID: "12", Name: "Mia Garcia", Phone: "+34 91 123 4567", Email: "mia.garcia@example.com", Company: "Garcia Foods", Tags: []string{"beta"}},
	}
}

// ContactByID finds a contact
func ContactByID(id string) (domain.Contact, bool) {
	for _, c := range Contacts() {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Contact{}, false
}

// RecentSearches returns the palette's latest searches
func RecentSearches() []domain.RecentSearch {
	return []domain.RecentSearch{
		{ID: "1", Title: "Omar Sattam", Description: "Contact profile", Kind: domain.SearchKindContact},
		{ID: "2", Title: "Campaigns", Description: "View all campaigns", Kind: domain.SearchKindPage},
		{ID: "3", Title: "Settings", Description: "Configure app settings", Kind: domain.SearchKindPage},
	}
}

// QuickActions returns the palette's quick actions
func QuickActions() []domain.QuickAction {
	return []domain.QuickAction{
		{ID: "create-contact", Title: "Create new contact", Description: "Add a new contact to your database", Shortcut: "⌘ A", Category: domain.CategoryAction, Route: "/contacts/create"},
		{ID: "create-campaign", Title: "Create new campaign", Description: "Start a new messaging campaign", Shortcut: "⌘ B", Category: domain.CategoryAction, Route: "/campaigns/create"},
		{ID: "view-analytics", Title: "View analytics", Description: "Open analytics dashboard", Shortcut: "⌘ C", Category: domain.CategoryNavigation, Route: "/analytics"},
		{ID: "settings", Title: "Settings", Description: "Configure application settings", Shortcut: "⌘ D", Category: domain.CategoryNavigation, Route: "/settings"},
		{ID: "templates", Title: "Message templates", Description: "Manage message templates", Shortcut: "⌘ E", Category: domain.CategoryAction, Route: "/campaigns/templates"},
		{ID: "campaigns", Title: "All campaigns", Description: "View and manage campaigns", Shortcut: "⌘ F", Category: domain.CategoryNavigation, Route: "/campaigns"},
	}
}

// Metrics returns the overview cards for a time range
func Metrics(r domain.TimeRange) []domain.Metric {
	period := r.Label()
	type row struct{ sent, sentChg, delivery, deliveryChg, senders, sendersChg, response, responseChg string }
	var d row
	switch r {
	case domain.Range7Days:
		d = row{"28,420", "+8.2%", "99.1%", "+0.3%", "456", "+5.1%", "35.2%", "+2.1%"}
	case domain.Range90Days:
		d = row{"384,250", "+18.3%", "97.9%", "-0.8%", "3,892", "+22.1%", "29.8%", "+1.2%"}
	default:
		d = row{"128,420", "+12.5%", "98.7%", "-0.2%", "1,246", "+12.5%", "32.4%", "+4.5%"}
	}
	return []domain.Metric{
		{Label: "Messages Sent", Value: d.sent, Change: d.sentChg, Trend: trendOf(d.sentChg), Footer: "Sent in the last " + period},
		{Label: "Delivery Rate", Value: d.delivery, Change: d.deliveryChg, Trend: trendOf(d.deliveryChg), Footer: "Delivered over " + period},
		{Label: "Active Senders", Value: d.senders, Change: d.sendersChg, Trend: trendOf(d.sendersChg), Footer: "Unique senders in " + period},
		{Label: "Response Rate", Value: d.response, Change: d.responseChg, Trend: trendOf(d.responseChg), Footer: "Replies over " + period},
	}
}

func trendOf(change string) domain.Trend {
	if len(change) > 0 && change[0] == '-' {
		return domain.TrendDown
	}
	return domain.TrendUp
}

// ChartSeries returns daily message volume ending at end, trimmed to the
// requested range. The values are deterministic.
func ChartSeries(r domain.TimeRange, end time.Time) []domain.ChartPoint {
	days := 30
	switch r {
	case domain.Range7Days:
		days = 7
	case domain.Range90Days:
		days = 90
	}
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
	out := make([]domain.ChartPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := end.AddDate(0, 0, -i)
		seed := day.YearDay()
		out = append(out, domain.ChartPoint{
			Date:    day,
			Desktop: 120 + (seed*37)%380,
			Mobile:  90 + (seed*53)%410,
		})
	}
	return out
}

// Notifications returns the seed notifications relative to now
func Notifications(now time.Time) []domain.Notification {
	return []domain.Notification{
		{ID: "1", Title: "New Campaign Created", Description: "Your campaign 'Summer Sale' has been successfully created", Type: domain.NotificationSuccess, Timestamp: now.Add(-5 * time.Minute)},
		{ID: "2", Title: "Message Delivery Failed", Description: "Failed to deliver message to 5 recipients", Type: domain.NotificationError, Timestamp: now.Add(-15 * time.Minute)},
		{ID: "3", Title: "New Contact Added", Description: "John Doe has been added to your contact list", Type: domain.NotificationInfo, Timestamp: now.Add(-30 * time.Minute), Read: true},
		{ID: "4", Title: "Campaign Completed", Description: "Your campaign 'Welcome Series' has finished sending", Type: domain.NotificationSuccess, Timestamp: now.Add(-2 * time.Hour), Read: true},
		{ID: "5", Title: "Low Balance Alert", Description: "Your account balance is running low", Type: domain.NotificationWarning, Timestamp: now.Add(-24 * time.Hour)},
		{ID: "6", Title: "Template Updated", Description: "Your email template 'Welcome' has been updated", Type: domain.NotificationInfo, Timestamp: now.Add(-48 * time.Hour), Read: true},
	}
}
