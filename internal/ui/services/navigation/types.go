package navigation

// viewport is the cursor and the visible window over a list of rows
type viewport struct {
	cursor int
	offset int
	height int
	total  int
}

func (v *viewport) clamp(index int) int {
	if index < 0 || v.total == 0 {
		return 0
	}
	if index >= v.total {
		return v.total - 1
	}
	return index
}

func (v *viewport) maxOffset() int {
	return max(v.total-v.height, 0)
}

// Direction is a cursor movement. Input modes send these as plain strings.
type Direction string

const (
	DirectionUp       Direction = "up"
	DirectionDown     Direction = "down"
	DirectionPageUp   Direction = "pageup"
	DirectionPageDown Direction = "pagedown"
	DirectionHome     Direction = "home"
	DirectionEnd      Direction = "end"
)
