// Package session owns the authentication state of the dashboard: who is
// signed in, whether the stored session has been read yet, and which page a
// requested path resolves to.
package session

import (
	"go.uber.org/zap"

	"campaigndash/internal/domain"
	"campaigndash/internal/eventbus"
	"campaigndash/internal/routes"
	"campaigndash/internal/storage"
)

// Phase is the state machine position of the session
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseUnauthenticated
	PhaseAuthenticated
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// State is a snapshot of the session
type State struct {
	User      *domain.User
	IsLoading bool
}

// IsAuthenticated is true iff a user is present
func (s State) IsAuthenticated() bool {
	return s.User != nil
}

// Manager is the single source of truth for authentication. It is not safe
// for concurrent use; the UI mutates it from its update loop only.
type Manager struct {
	store  storage.Store
	routes *routes.Table
	bus    eventbus.EventBus
	logger *zap.Logger

	user      *domain.User
	isLoading bool
	landing   string
}

// Option configures a Manager
type Option func(*Manager)

// WithBus publishes session events on the bus
func WithBus(bus eventbus.EventBus) Option {
	return func(m *Manager) { m.bus = bus }
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithLanding overrides the default landing route used after login
func WithLanding(path string) Option {
	return func(m *Manager) {
		if path != "" {
			m.landing = routes.Clean(path)
		}
	}
}

// NewManager creates a manager in the loading phase. A nil store behaves like
// disabled storage.
func NewManager(store storage.Store, table *routes.Table, opts ...Option) *Manager {
	if store == nil {
		store = storage.Unavailable{}
	}
	if table == nil {
		table = routes.NewTable()
	}
	m := &Manager{
		store:     store,
		routes:    table,
		logger:    zap.NewNop(),
		isLoading: true,
		landing:   routes.Dashboard,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.Named("session")
	return m
}

// State returns a snapshot of the current session
func (m *Manager) State() State {
	var u *domain.User
	if m.user != nil {
		cp := *m.user
		u = &cp
	}
	return State{User: u, IsLoading: m.isLoading}
}

// User returns the signed-in user, or nil
func (m *Manager) User() *domain.User {
	return m.State().User
}

// IsAuthenticated reports whether someone is signed in
func (m *Manager) IsAuthenticated() bool {
	return m.user != nil
}

// IsLoading reports whether Restore has not completed yet
func (m *Manager) IsLoading() bool {
	return m.isLoading
}

// Phase returns the state machine position
func (m *Manager) Phase() Phase {
	switch {
	case m.isLoading:
		return PhaseLoading
	case m.user != nil:
		return PhaseAuthenticated
	default:
		return PhaseUnauthenticated
	}
}

// Restore reads the stored session. Missing, malformed or unreadable storage
// leaves the user signed out. IsLoading is false afterwards, always.
func (m *Manager) Restore() {
	defer func() { m.isLoading = false }()

	m.user = nil
	flag := m.read(storage.KeyIsAuthenticated)
	email := m.read(storage.KeyUserEmail)
	if flag == "true" && email != "" {
		m.user = &domain.User{Email: email, Name: m.read(storage.KeyUserName)}
		m.logger.Info("session restored", zap.String("email", email))
	} else {
		m.logger.Debug("no stored session")
	}

	if m.bus != nil {
		m.bus.Publish(domain.SessionRestoredEvent{User: m.User()})
	}
}

// Login stores the session and signs the user in. It returns the route to
// navigate to: redirect when given, otherwise the landing route.
func (m *Manager) Login(email, name, redirect string) string {
	// storage first so a read-back right after Login is consistent
	m.write(storage.KeyIsAuthenticated, "true")
	m.write(storage.KeyUserEmail, email)
	if name != "" {
		m.write(storage.KeyUserName, name)
	} else if err := m.store.Delete(storage.KeyUserName); err != nil {
		// a name left over from an earlier account must not be restored
		m.logger.Debug("failed to clear stale name", zap.Error(err))
	}

	m.user = &domain.User{Email: email, Name: name}

	target := m.landing
	if redirect != "" {
		target = routes.Clean(redirect)
	}
	m.logger.Info("logged in", zap.String("email", email), zap.String("redirect", target))

	if m.bus != nil {
		m.bus.Publish(domain.LoggedInEvent{User: *m.user, Redirect: target})
	}
	return target
}

// Logout clears storage and the in-memory user. It is safe to call when
// nobody is signed in. It returns the login route.
func (m *Manager) Logout() string {
	for _, key := range []string{storage.KeyIsAuthenticated, storage.KeyUserEmail, storage.KeyUserName} {
		if err := m.store.Delete(key); err != nil {
			m.logger.Debug("failed to clear session key", zap.String("key", key), zap.Error(err))
		}
	}

	var email string
	if m.user != nil {
		email = m.user.Email
	}
	m.user = nil
	m.logger.Info("logged out", zap.String("email", email))

	if m.bus != nil {
		m.bus.Publish(domain.LoggedOutEvent{Email: email})
	}
	return routes.Login
}

func (m *Manager) read(key string) string {
	v, ok, err := m.store.Get(key)
	if err != nil {
		m.logger.Debug("storage read failed", zap.String("key", key), zap.Error(err))
		return ""
	}
	if !ok {
		return ""
	}
	return v
}

func (m *Manager) write(key, value string) {
	if err := m.store.Set(key, value); err != nil {
		m.logger.Warn("storage write failed", zap.String("key", key), zap.Error(err))
	}
}
