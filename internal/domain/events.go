package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSessionRestored   EventType = "SessionRestored"
	EventLoggedIn          EventType = "LoggedIn"
	EventLoggedOut         EventType = "LoggedOut"
	EventNavigated         EventType = "Navigated"
	EventNotificationAdded EventType = "NotificationAdded"
	EventCodeSent          EventType = "CodeSent"
	EventError             EventType = "Error"
	EventConfigLoaded      EventType = "ConfigLoaded"
	EventConfigSaved       EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SessionRestoredEvent is emitted once the stored session has been read
type SessionRestoredEvent struct {
	User *User // nil when nobody was signed in
}

func (e SessionRestoredEvent) Type() EventType { return EventSessionRestored }

// LoggedInEvent is emitted after a successful sign-in or signup
type LoggedInEvent struct {
	User     User
	Redirect string
}

func (e LoggedInEvent) Type() EventType { return EventLoggedIn }

// LoggedOutEvent is emitted after the session is cleared
type LoggedOutEvent struct {
	Email string // empty when nobody was signed in
}

func (e LoggedOutEvent) Type() EventType { return EventLoggedOut }

// NavigatedEvent is emitted when the visible route changes
type NavigatedEvent struct {
	From string
	To   string
}

func (e NavigatedEvent) Type() EventType { return EventNavigated }

// NotificationAddedEvent is emitted when the notification center grows
type NotificationAddedEvent struct {
	Notification Notification
}

func (e NotificationAddedEvent) Type() EventType { return EventNotificationAdded }

// CodeSentEvent is emitted when a verification code is (re)sent
type CodeSentEvent struct {
	Email  string
	Method string
}

func (e CodeSentEvent) Type() EventType { return EventCodeSent }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
