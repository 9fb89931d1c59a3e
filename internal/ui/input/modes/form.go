package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"campaigndash/internal/auth"
	"campaigndash/internal/ui/input/types"
)

// FormMode drives the multi-field auth forms. Keys it does not bind are
// forwarded to the focused field through FormKeyAction.
type FormMode struct {
	mode types.Mode
	name string
}

func NewLoginMode() *FormMode {
	return &FormMode{mode: types.ModeLogin, name: "login"}
}

func NewSignupMode() *FormMode {
	return &FormMode{mode: types.ModeSignup, name: "signup"}
}

func (m *FormMode) Name() string {
	return m.name
}

func (m *FormMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *FormMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *FormMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}
	// a submission is in flight
	if ctx.Busy() {
		return nil, true
	}

	switch msg.String() {
	case "tab", "down":
		return []types.Action{types.FocusFieldAction{Delta: 1}}, true
	case "shift+tab", "up":
		return []types.Action{types.FocusFieldAction{Delta: -1}}, true
	case "enter":
		return []types.Action{types.SubmitFormAction{}}, true
	case "ctrl+d":
		return []types.Action{types.DemoFillAction{}}, true
	case "ctrl+s":
		return []types.Action{types.SwitchAuthScreenAction{}}, true
	case "f1":
		return []types.Action{types.ToggleHelpAction{}}, true
	case "esc":
		if m.mode == types.ModeSignup {
			return []types.Action{types.SwitchAuthScreenAction{}}, true
		}
		return nil, true
	case " ":
		if ctx.FocusedField() == auth.FieldTerms {
			return []types.Action{types.ToggleTermsAction{}}, true
		}
	}

	if ctx.FocusedField() == auth.FieldTerms {
		// the checkbox takes no text
		return nil, true
	}
	return []types.Action{types.FormKeyAction{Msg: msg}}, true
}

// CodeMode is the one-time-code step of sign in
type CodeMode struct{}

func NewCodeMode() *CodeMode {
	return &CodeMode{}
}

func (m *CodeMode) Name() string {
	return "code"
}

func (m *CodeMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *CodeMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *CodeMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}
	if ctx.Busy() {
		return nil, true
	}

	switch msg.Type {
	case tea.KeyEnter:
		return []types.Action{types.SubmitFormAction{}}, true
	case tea.KeyEsc:
		return []types.Action{types.BackAction{}}, true
	case tea.KeyBackspace, tea.KeyDelete, tea.KeyLeft, tea.KeyRight, tea.KeyHome, tea.KeyEnd:
		return []types.Action{types.FormKeyAction{Msg: msg}}, true
	case tea.KeyCtrlR:
		if ctx.CanResend() {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeResendMethod}}, true
		}
		return nil, true
	case tea.KeyF1:
		return []types.Action{types.ToggleHelpAction{}}, true
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if r < '0' || r > '9' {
				return nil, true
			}
		}
		return []types.Action{types.FormKeyAction{Msg: msg}}, true
	}
	return nil, true
}

// ResendMode picks the channel a new code is sent through
type ResendMode struct{}

func NewResendMode() *ResendMode {
	return &ResendMode{}
}

func (m *ResendMode) Name() string {
	return "resend"
}

func (m *ResendMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.PickMethodAction{Delta: 0}}
}

func (m *ResendMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ResendMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "q":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeCode}}, true
	case "up", "k", "shift+tab":
		return []types.Action{types.PickMethodAction{Delta: -1}}, true
	case "down", "j", "tab":
		return []types.Action{types.PickMethodAction{Delta: 1}}, true
	case "enter":
		return []types.Action{
			types.SendCodeAction{},
			types.ChangeModeAction{Mode: types.ModeCode},
		}, true
	}
	return nil, true
}

// HelpMode is active while the inline help popup is shown
type HelpMode struct{}

func NewHelpMode() *HelpMode {
	return &HelpMode{}
}

func (m *HelpMode) Name() string {
	return "help"
}

func (m *HelpMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *HelpMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *HelpMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "q", "?", "f1", "enter":
		return []types.Action{types.ToggleHelpAction{}}, true
	}
	return nil, true
}
