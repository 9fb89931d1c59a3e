package ui

import (
	"campaigndash/internal/eventbus"
	"campaigndash/internal/palette"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// restoreSessionMsg asks the model to read the stored session
type restoreSessionMsg struct{}

// pageLoadedMsg ends the simulated page-data latency. Messages from an
// older page generation are dropped.
type pageLoadedMsg struct {
	gen uint64
}

// authDoneMsg ends the simulated latency of a sign in, code or signup
// submission started under generation gen
type authDoneMsg struct {
	gen  uint64
	kind authKind
}

type authKind int

const (
	authCredentials authKind = iota
	authCode
	authSignup
)

// countdownMsg is one second of the resend countdown
type countdownMsg struct {
	gen uint64
}

// scrollMsg delivers a palette scroll request on the next frame
type scrollMsg struct {
	req palette.ScrollRequest
}

// toastExpiredMsg removes the toast with the given id
type toastExpiredMsg struct {
	id int
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
