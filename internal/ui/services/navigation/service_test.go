package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigateClampsAtEdges(t *testing.T) {
	s := NewService(3)
	s.SetTotal(5)

	assert.False(t, s.Navigate(DirectionUp))
	assert.Equal(t, 0, s.GetCursor())

	for i := 0; i < 10; i++ {
		s.Navigate(DirectionDown)
	}
	assert.Equal(t, 4, s.GetCursor())
	assert.Equal(t, 2, s.GetViewportOffset())
}

func TestViewportFollowsCursor(t *testing.T) {
	s := NewService(3)
	s.SetTotal(10)

	s.MoveToIndex(7)
	start, end := s.Window()
	assert.Equal(t, 5, start)
	assert.Equal(t, 8, end)

	s.Navigate(DirectionHome)
	assert.Equal(t, 0, s.GetViewportOffset())

	s.Navigate(DirectionEnd)
	assert.Equal(t, 9, s.GetCursor())
	assert.Equal(t, 7, s.GetViewportOffset())

	s.Navigate(DirectionPageUp)
	assert.Equal(t, 7, s.GetCursor())
}

func TestSkipRows(t *testing.T) {
	s := NewService(10)
	s.SetTotal(5)
	s.SetSkip(func(i int) bool { return i == 1 || i == 2 })

	s.Navigate(DirectionDown)
	assert.Equal(t, 3, s.GetCursor())
	s.Navigate(DirectionUp)
	assert.Equal(t, 0, s.GetCursor())
}

func TestRevealWithoutMovingCursor(t *testing.T) {
	s := NewService(2)
	s.SetTotal(6)
	s.Reveal(5)
	assert.Equal(t, 0, s.GetCursor())
	assert.Equal(t, 4, s.GetViewportOffset())
	s.Reveal(1)
	assert.Equal(t, 1, s.GetViewportOffset())
}

func TestShrinkingTotalClamps(t *testing.T) {
	s := NewService(3)
	s.SetTotal(10)
	s.MoveToIndex(9)
	s.SetTotal(4)
	assert.Equal(t, 3, s.GetCursor())
	start, end := s.Window()
	assert.Equal(t, 1, start)
	assert.Equal(t, 4, end)

	s.SetTotal(0)
	assert.False(t, s.Navigate(DirectionDown))
	start, end = s.Window()
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}
