package session

import "context"

type contextKey struct{}

// NewContext returns a copy of ctx carrying the manager
func NewContext(ctx context.Context, m *Manager) context.Context {
	return context.WithValue(ctx, contextKey{}, m)
}

// FromContext returns the manager carried by ctx, if any
func FromContext(ctx context.Context) (*Manager, bool) {
	m, ok := ctx.Value(contextKey{}).(*Manager)
	return m, ok && m != nil
}

// MustFromContext returns the manager carried by ctx. A missing manager is a
// wiring defect and panics.
func MustFromContext(ctx context.Context) *Manager {
	m, ok := FromContext(ctx)
	if !ok {
		panic("session: MustFromContext called without a session manager in context")
	}
	return m
}
