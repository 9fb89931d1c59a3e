package types

import tea "github.com/charmbracelet/bubbletea"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// OpenSelectedAction opens the sidebar row under the cursor
type OpenSelectedAction struct{}

func (a OpenSelectedAction) Type() string { return "open_selected" }

type GoToAction struct {
	Path string
}

func (a GoToAction) Type() string { return "go_to" }

type ToggleFocusAction struct{}

func (a ToggleFocusAction) Type() string { return "toggle_focus" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// FormKeyAction forwards a key to the focused form field
type FormKeyAction struct {
	Msg tea.KeyMsg
}

func (a FormKeyAction) Type() string { return "form_key" }

// Palette actions
type OpenPaletteAction struct{}

func (a OpenPaletteAction) Type() string { return "open_palette" }

type ClosePaletteAction struct{}

func (a ClosePaletteAction) Type() string { return "close_palette" }

type PaletteMoveAction struct {
	Direction string // "next" or "prev"
}

func (a PaletteMoveAction) Type() string { return "palette_move" }

type PaletteActivateAction struct{}

func (a PaletteActivateAction) Type() string { return "palette_activate" }

// Dashboard actions
type CycleTimeRangeAction struct{}

func (a CycleTimeRangeAction) Type() string { return "cycle_time_range" }

type LogoutAction struct{}

func (a LogoutAction) Type() string { return "logout" }

type NotifyMeAction struct{}

func (a NotifyMeAction) Type() string { return "notify_me" }

// Notification center actions
type MarkReadAction struct{}

func (a MarkReadAction) Type() string { return "mark_read" }

type MarkAllReadAction struct{}

func (a MarkAllReadAction) Type() string { return "mark_all_read" }

type RemoveNotificationAction struct{}

func (a RemoveNotificationAction) Type() string { return "remove_notification" }

type ClearNotificationsAction struct{}

func (a ClearNotificationsAction) Type() string { return "clear_notifications" }

// Form actions
type FocusFieldAction struct {
	Delta int // +1 next field, -1 previous field
}

func (a FocusFieldAction) Type() string { return "focus_field" }

type SubmitFormAction struct{}

func (a SubmitFormAction) Type() string { return "submit_form" }

type DemoFillAction struct{}

func (a DemoFillAction) Type() string { return "demo_fill" }

type ToggleTermsAction struct{}

func (a ToggleTermsAction) Type() string { return "toggle_terms" }

// SwitchAuthScreenAction flips between sign in and sign up
type SwitchAuthScreenAction struct{}

func (a SwitchAuthScreenAction) Type() string { return "switch_auth_screen" }

type BackAction struct{}

func (a BackAction) Type() string { return "back" }

// Resend actions
type PickMethodAction struct {
	Delta int
}

func (a PickMethodAction) Type() string { return "pick_method" }

type SendCodeAction struct{}

func (a SendCodeAction) Type() string { return "send_code" }

// Other actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
