// Package navigation keeps a cursor and a scrolled viewport over a list of
// rows. The sidebar, the notification list and the palette results each own
// one.
package navigation

// Service handles cursor movement and viewport scrolling
type Service struct {
	vp   *viewport
	skip func(index int) bool
}

// NewService creates a service showing height rows at a time
func NewService(height int) *Service {
	s := &Service{vp: &viewport{}}
	s.SetViewportHeight(height)
	return s
}

// SetSkip marks rows the cursor steps over, such as section headers
func (s *Service) SetSkip(fn func(index int) bool) {
	s.skip = fn
}

// GetCursor returns current cursor position
func (s *Service) GetCursor() int {
	return s.vp.cursor
}

// GetViewportOffset returns the first visible row
func (s *Service) GetViewportOffset() int {
	return s.vp.offset
}

// GetViewportHeight returns current viewport height
func (s *Service) GetViewportHeight() int {
	return s.vp.height
}

// Total returns the number of rows
func (s *Service) Total() int {
	return s.vp.total
}

// Window returns the visible half-open range [start, end)
func (s *Service) Window() (int, int) {
	start := s.vp.offset
	end := start + s.vp.height
	if end > s.vp.total {
		end = s.vp.total
	}
	if start > end {
		start = end
	}
	return start, end
}

// SetViewportHeight updates viewport height
func (s *Service) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	s.vp.height = height
	s.Reveal(s.vp.cursor)
}

// SetTotal updates the row count, clamping the cursor and the viewport
func (s *Service) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	s.vp.total = total
	s.vp.cursor = s.vp.clamp(s.vp.cursor)
	if maxOffset := s.vp.maxOffset(); s.vp.offset > maxOffset {
		s.vp.offset = maxOffset
	}
	s.Reveal(s.vp.cursor)
}

// Navigate moves the cursor and reports whether it moved
func (s *Service) Navigate(direction Direction) bool {
	if s.vp.total == 0 {
		return false
	}
	oldCursor := s.vp.cursor

	switch direction {
	case DirectionUp:
		s.step(-1)
	case DirectionDown:
		s.step(1)
	case DirectionPageUp:
		s.jump(s.vp.cursor-(s.vp.height-1), 1)
	case DirectionPageDown:
		s.jump(s.vp.cursor+(s.vp.height-1), -1)
	case DirectionHome:
		s.jump(0, 1)
	case DirectionEnd:
		s.jump(s.vp.total-1, -1)
	}

	s.Reveal(s.vp.cursor)
	return oldCursor != s.vp.cursor
}

// MoveToIndex moves cursor to specific index
func (s *Service) MoveToIndex(index int) {
	s.vp.cursor = s.vp.clamp(index)
	s.Reveal(s.vp.cursor)
}

// Reveal scrolls the viewport just enough to show index
func (s *Service) Reveal(index int) {
	if s.vp.total == 0 {
		s.vp.offset = 0
		return
	}
	index = s.vp.clamp(index)
	if index < s.vp.offset {
		s.vp.offset = index
	} else if index >= s.vp.offset+s.vp.height {
		s.vp.offset = index - s.vp.height + 1
	}
}

func (s *Service) step(delta int) {
	for i := s.vp.cursor + delta; i >= 0 && i < s.vp.total; i += delta {
		if !s.skipped(i) {
			s.vp.cursor = i
			return
		}
	}
}

// jump lands on target, or the nearest selectable row walking in fallback
// direction from it
func (s *Service) jump(target, fallback int) {
	target = s.vp.clamp(target)
	for i := target; i >= 0 && i < s.vp.total; i += fallback {
		if !s.skipped(i) {
			s.vp.cursor = i
			return
		}
	}
}

func (s *Service) skipped(i int) bool {
	return s.skip != nil && s.skip(i)
}
