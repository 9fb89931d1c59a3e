// Package notifications keeps the in-memory notification center shown in the
// header badge and on the notifications page.
package notifications

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"campaigndash/internal/domain"
	"campaigndash/internal/eventbus"
	"campaigndash/internal/mockdata"
)

// DefaultMax is how many notifications the center keeps
const DefaultMax = 10

// Center holds notifications newest first. Safe for concurrent use.
type Center struct {
	mu     sync.RWMutex
	items  []domain.Notification
	max    int
	now    func() time.Time
	newID  func() string
	bus    eventbus.EventBus
	logger *zap.Logger
	seeded bool
}

// Option configures a Center
type Option func(*Center)

// WithMax caps the list length
func WithMax(n int) Option {
	return func(c *Center) {
		if n > 0 {
			c.max = n
		}
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(c *Center) { c.now = now }
}

// WithBus publishes NotificationAddedEvent on every Add
func WithBus(b eventbus.EventBus) Option {
	return func(c *Center) { c.bus = b }
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(c *Center) { c.logger = l }
}

// WithSeed replaces the built-in seed notifications
func WithSeed(items []domain.Notification) Option {
	return func(c *Center) {
		c.items = append([]domain.Notification(nil), items...)
		c.seeded = true
	}
}

// New creates a center holding the seed notifications
func New(opts ...Option) *Center {
	c := &Center{
		max:    DefaultMax,
		now:    time.Now,
		newID:  func() string { return uuid.NewString() },
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if !c.seeded {
		c.items = mockdata.Notifications(c.now())
	}
	if len(c.items) > c.max {
		c.items = c.items[:c.max]
	}
	c.logger = c.logger.Named("notifications")
	return c
}

// Add prepends an unread notification, dropping the oldest past the cap
func (c *Center) Add(title, description string, typ domain.NotificationType) domain.Notification {
	n := domain.Notification{
		ID:          c.newID(),
		Title:       title,
		Description: description,
		Type:        typ,
		Timestamp:   c.now(),
	}

	c.mu.Lock()
	keep := c.items
	if len(keep) > c.max-1 {
		keep = keep[:c.max-1]
	}
	c.items = append([]domain.Notification{n}, keep...)
	c.mu.Unlock()

	c.logger.Debug("notification added", zap.String("id", n.ID), zap.String("title", title))
	if c.bus != nil {
		c.bus.Publish(eventbus.NotificationAddedEvent{Notification: n})
	}
	return n
}

// List returns a copy, newest first
func (c *Center) List() []domain.Notification {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.Notification(nil), c.items...)
}

// Len returns the number of notifications
func (c *Center) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// UnreadCount returns how many are unread
func (c *Center) UnreadCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	count := 0
	for _, n := range c.items {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkAsRead marks one notification. Unknown ids are ignored.
func (c *Center) MarkAsRead(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Read = true
			return true
		}
	}
	return false
}

// MarkAllAsRead marks every notification
func (c *Center) MarkAllAsRead() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		c.items[i].Read = true
	}
}

// Remove deletes one notification
func (c *Center) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, n := range c.items {
		if n.ID == id {
			c.items = append(c.items[:i:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// ClearAll empties the center
func (c *Center) ClearAll() {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()
}

// Subscribe records session activity as notifications. The returned func
// detaches every handler.
func (c *Center) Subscribe(b eventbus.EventBus) func() {
	unsubs := []func(){
		b.Subscribe(eventbus.EventLoggedIn, func(e eventbus.DomainEvent) {
			ev, ok := e.(eventbus.LoggedInEvent)
			if !ok {
				return
			}
			c.Add("Signed in", "Welcome back, "+ev.User.DisplayName()+".", domain.NotificationSuccess)
		}),
		b.Subscribe(eventbus.EventLoggedOut, func(e eventbus.DomainEvent) {
			ev, ok := e.(eventbus.LoggedOutEvent)
			if !ok || ev.Email == "" {
				return
			}
			c.Add("Signed out", ev.Email+" signed out.", domain.NotificationInfo)
		}),
		b.Subscribe(eventbus.EventCodeSent, func(e eventbus.DomainEvent) {
			ev, ok := e.(eventbus.CodeSentEvent)
			if !ok {
				return
			}
			c.Add("Verification code sent", "A new code was sent to "+ev.Email+" via "+ev.Method+".", domain.NotificationInfo)
		}),
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}
