package session

import "campaigndash/internal/routes"

// Decision is the outcome of the route guard
type Decision int

const (
	Pending Decision = iota
	AllowProtected
	AllowPublic
	RedirectToLogin
	RedirectToDashboard
)

func (d Decision) String() string {
	switch d {
	case Pending:
		return "pending"
	case AllowProtected:
		return "allow-protected"
	case AllowPublic:
		return "allow-public"
	case RedirectToLogin:
		return "redirect-login"
	case RedirectToDashboard:
		return "redirect-dashboard"
	default:
		return "unknown"
	}
}

// IsRedirect reports whether the decision sends the user elsewhere
func (d Decision) IsRedirect() bool {
	return d == RedirectToLogin || d == RedirectToDashboard
}

// Guard is the route guard decision table
func Guard(isLoading, isAuthenticated, isPublic bool) Decision {
	switch {
	case isLoading:
		return Pending
	case !isAuthenticated && !isPublic:
		return RedirectToLogin
	case !isAuthenticated && isPublic:
		return AllowPublic
	case isAuthenticated && isPublic:
		return RedirectToDashboard
	default:
		return AllowProtected
	}
}

// RouteGuard applies the decision table to the current session
func (m *Manager) RouteGuard(path string) Decision {
	return Guard(m.isLoading, m.user != nil, m.routes.IsPublic(path))
}

// Resolution is where a requested path ends up
type Resolution struct {
	Decision Decision
	Path     string // the path to render, or the redirect target
	Match    routes.Match
}

// Resolve applies the guard and the route table to a requested path.
// Unmatched paths redirect to the login route, which the guard may in turn
// send to the dashboard for a signed-in user.
func (m *Manager) Resolve(path string) Resolution {
	requested := routes.Clean(path)
	if m.isLoading {
		return Resolution{Decision: Pending, Path: requested}
	}

	if _, ok := m.routes.Match(requested); !ok {
		requested = routes.Login
	}

	d := m.RouteGuard(requested)
	target := requested
	switch d {
	case RedirectToLogin:
		target = routes.Login
	case RedirectToDashboard:
		target = m.landing
	}

	match, _ := m.routes.Match(target)
	return Resolution{Decision: d, Path: target, Match: match}
}
