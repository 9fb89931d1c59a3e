package domain

import "time"

// User represents the signed-in account
type User struct {
	Email string
	Name  string // optional display name
}

// DisplayName returns the name if present, otherwise the email
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// Contact represents an address book entry
type Contact struct {
	ID      string
	Name    string
	Phone   string
	Email   string
	Company string
	Tags    []string
}

// SearchKind tells where a recent search leads
type SearchKind string

const (
	SearchKindContact SearchKind = "contact"
	SearchKindPage    SearchKind = "page"
)

// RecentSearch is a previously executed palette search
type RecentSearch struct {
	ID          string
	Title       string
	Description string
	Kind        SearchKind
}

// ActionCategory groups quick actions
type ActionCategory string

const (
	CategorySearch     ActionCategory = "search"
	CategoryAction     ActionCategory = "action"
	CategoryNavigation ActionCategory = "navigation"
)

// QuickAction is a predefined operation offered by the command palette.
// Route is the navigation target the host binds the action to.
type QuickAction struct {
	ID          string
	Title       string
	Description string
	Shortcut    string
	Category    ActionCategory
	Route       string
}

// NotificationType is the severity of a notification
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
)

// Notification is an entry in the notification center
type Notification struct {
	ID          string
	Title       string
	Description string
	Type        NotificationType
	Timestamp   time.Time
	Read        bool
}

// Trend is the direction of a metric change
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// Metric is one analytics card
type Metric struct {
	Label  string
	Value  string
	Change string
	Trend  Trend
	Footer string
}

// TimeRange selects the analytics window
type TimeRange string

const (
	Range7Days  TimeRange = "7d"
	Range30Days TimeRange = "30d"
	Range90Days TimeRange = "90d"
)

// Next cycles 7d -> 30d -> 90d -> 7d
func (r TimeRange) Next() TimeRange {
	switch r {
	case Range7Days:
		return Range30Days
	case Range30Days:
		return Range90Days
	default:
		return Range7Days
	}
}

// Label returns the human period for the range
func (r TimeRange) Label() string {
	switch r {
	case Range7Days:
		return "7 days"
	case Range90Days:
		return "3 months"
	default:
		return "30 days"
	}
}

// ChartPoint is one day of message volume
type ChartPoint struct {
	Date    time.Time
	Desktop int
	Mobile  int
}
