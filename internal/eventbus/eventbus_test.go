package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPublishDeliversToSubscribers(t *testing.T) {
	b := New(zap.NewNop())
	defer b.Close()

	got := make(chan DomainEvent, 1)
	b.Subscribe(EventLoggedIn, func(e DomainEvent) { got <- e })

	b.Publish(LoggedInEvent{Redirect: "/analytics"})

	select {
	case e := <-got:
		ev, ok := e.(LoggedInEvent)
		require.True(t, ok)
		require.Equal(t, "/analytics", ev.Redirect)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New(nil)
	defer b.Close()

	got := make(chan DomainEvent, 4)
	unsubscribe := b.Subscribe(EventLoggedOut, func(e DomainEvent) { got <- e })
	unsubscribe()

	marker := make(chan struct{})
	b.Subscribe(EventLoggedOut, func(DomainEvent) { close(marker) })
	b.Publish(LoggedOutEvent{})

	select {
	case <-marker:
	case <-time.After(2 * time.Second):
		t.Fatal("second subscriber was not called")
	}
	require.Len(t, got, 0)
}

func TestHandlerPanicDoesNotStopBus(t *testing.T) {
	b := New(zap.NewNop())
	defer b.Close()

	ok := make(chan struct{}, 1)
	b.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventError, func(DomainEvent) { ok <- struct{}{} })

	b.Publish(ErrorEvent{Message: "x"})

	select {
	case <-ok:
	case <-time.After(2 * time.Second):
		t.Fatal("healthy handler was not called")
	}
}
