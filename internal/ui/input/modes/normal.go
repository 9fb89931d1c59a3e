package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"campaigndash/internal/ui/input/types"
)

// NormalMode handles the dashboard shell: sidebar, page keys and globals
type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	m.lastKeyWasG = false
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyCtrlK:
		return []types.Action{types.ChangeModeAction{Mode: types.ModePalette}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter:
		return []types.Action{types.OpenSelectedAction{}}, true

	case tea.KeyTab, tea.KeyShiftTab:
		if ctx.OnNotificationsPage() {
			return []types.Action{types.ToggleFocusAction{}}, true
		}
		return nil, true
	}

	key := msg.String()
	if key != "g" {
		m.lastKeyWasG = false
	}

	switch key {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "G":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModePalette}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "t":
		if ctx.HasTimeRange() {
			return []types.Action{types.CycleTimeRangeAction{}}, true
		}
		return nil, true

	case "L":
		return []types.Action{types.LogoutAction{}}, true

	case "n":
		if ctx.IsComingSoon() {
			return []types.Action{types.NotifyMeAction{}}, true
		}
		return nil, true

	case "r", "R", "x", "C":
		if !ctx.OnNotificationsPage() {
			return nil, true
		}
		switch key {
		case "r":
			return []types.Action{types.MarkReadAction{}}, true
		case "R":
			return []types.Action{types.MarkAllReadAction{}}, true
		case "x":
			return []types.Action{types.RemoveNotificationAction{}}, true
		default:
			return []types.Action{types.ClearNotificationsAction{}}, true
		}

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}
