package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"campaigndash/internal/ui/input/types"
)

// PaletteMode edits the palette query in the shared text input and moves
// the selection cursor
type PaletteMode struct {
	textInput *textinput.Model
}

func NewPaletteMode(ti *textinput.Model) *PaletteMode {
	return &PaletteMode{textInput: ti}
}

func (m *PaletteMode) Name() string {
	return "palette"
}

func (m *PaletteMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Reset()
		m.textInput.Placeholder = "Search contacts, pages and actions..."
		m.textInput.Prompt = "" // drawn by the palette view
		m.textInput.Focus()
	}
	return []types.Action{types.OpenPaletteAction{}}
}

func (m *PaletteMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
		m.textInput.Reset()
	}
	return []types.Action{types.ClosePaletteAction{}}
}

func (m *PaletteMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "ctrl+k":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "down", "ctrl+n", "tab":
		return []types.Action{types.PaletteMoveAction{Direction: "next"}}, true
	case "up", "ctrl+p", "shift+tab":
		return []types.Action{types.PaletteMoveAction{Direction: "prev"}}, true
	case "enter":
		// the model leaves the mode only if something was activated
		return []types.Action{types.PaletteActivateAction{}}, true
	default:
		// typed characters go to the shared text input
		return nil, false
	}
}
