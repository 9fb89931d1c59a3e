package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"campaigndash/internal/auth"
)

const formWidth = 44

func (r *Renderer) renderField(f FieldView) string {
	if f.Checkbox {
		box := "[ ]"
		if f.Checked {
			box = "[x]"
		}
		line := box + " " + f.Label
		if f.Focused {
			line = r.styles.Highlight.Render(line)
		} else {
			line = r.styles.Label.Render(line)
		}
		if f.Error != "" {
			line += "\n" + r.styles.StatusError.Render(f.Error)
		}
		return line
	}

	box := r.styles.Input
	if f.Focused {
		box = r.styles.InputFocused
	}
	out := r.styles.Label.Render(f.Label) + "\n" + box.Width(formWidth).Render(f.Input)
	if f.Error != "" {
		out += "\n" + r.styles.StatusError.Render(f.Error)
	}
	return out
}

func (r *Renderer) renderLogin(v *LoginView) string {
	if v == nil {
		return ""
	}
	if v.Step == auth.StepCode {
		return r.renderCode(v)
	}

	parts := []string{
		r.styles.Title.Render("Sign in to campaigndash"),
		r.styles.Subtitle.Render("Enter your credentials to continue"),
		"",
	}
	if v.GeneralError != "" {
		parts = append(parts, r.styles.StatusError.Render("✗ "+v.GeneralError), "")
	}
	for _, f := range v.Fields {
		parts = append(parts, r.renderField(f))
	}

	button := "Sign in"
	if v.Busy {
		button = "Signing in..."
	}
	parts = append(parts,
		"",
		r.styles.Button.Render(button),
		"",
		r.styles.Dim.Render(fmt.Sprintf("Demo: %s / %s  (ctrl+d to fill)", v.Demo.Email, v.Demo.Password)),
		r.styles.Dim.Render("No account? ctrl+s to sign up"),
	)
	return r.styles.Panel.Render(strings.Join(parts, "\n"))
}

func (r *Renderer) renderCode(v *LoginView) string {
	var boxes []string
	for i := 0; i < auth.CodeLength; i++ {
		digit := " "
		if i < len(v.Code) {
			digit = string(v.Code[i])
		}
		style := r.styles.Input
		if i == len(v.Code) {
			style = r.styles.InputFocused
		}
		boxes = append(boxes, style.Render(digit))
	}

	parts := []string{
		r.styles.Title.Render("Verify your identity"),
		r.styles.Subtitle.Render("Enter the 6-digit code sent to " + v.Email),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, boxes...),
	}
	if v.CodeError != "" {
		parts = append(parts, r.styles.StatusError.Render(v.CodeError))
	}

	button := "Verify"
	if v.Busy {
		button = "Verifying..."
	}
	parts = append(parts, "", r.styles.Button.Render(button), "")

	switch {
	case v.ChoosingMethod:
		parts = append(parts, r.styles.Section.Render("Send a new code via"))
		for i, m := range v.Methods {
			line := "  " + m
			if i == v.MethodIndex {
				line = r.styles.SelectionBg.Render("> " + m)
			}
			parts = append(parts, line)
		}
		parts = append(parts, r.styles.Dim.Render("enter send · esc cancel"))
	case v.Countdown > 0:
		parts = append(parts, r.styles.Dim.Render(fmt.Sprintf("Resend code in %d:%02d", v.Countdown/60, v.Countdown%60)))
	default:
		parts = append(parts, r.styles.Key.Render("ctrl+r")+r.styles.Dim.Render(" to resend the code"))
	}

	parts = append(parts, "", r.styles.Dim.Render(fmt.Sprintf("esc back · demo code %s", v.Demo.Code)))
	return r.styles.Panel.Render(strings.Join(parts, "\n"))
}

func (r *Renderer) renderSignup(v *SignupView) string {
	if v == nil {
		return ""
	}
	parts := []string{
		r.styles.Title.Render("Create your account"),
		r.styles.Subtitle.Render("Start sending campaigns in minutes"),
		"",
	}
	for _, f := range v.Fields {
		parts = append(parts, r.renderField(f))
		if f.Key == auth.FieldPassword && v.Password != "" {
			parts = append(parts, r.renderStrength(auth.PasswordStrength(v.Password)))
		}
	}

	button := "Create account"
	if v.Busy {
		button = "Creating account..."
	}
	parts = append(parts,
		"",
		r.styles.Button.Render(button),
		"",
		r.styles.Dim.Render("ctrl+d demo details · space toggles terms"),
		r.styles.Dim.Render("Have an account? ctrl+s or esc to sign in"),
	)
	return r.styles.Panel.Render(strings.Join(parts, "\n"))
}

func (r *Renderer) renderStrength(s auth.Strength) string {
	color := "203"
	switch s.Label {
	case "Strong":
		color = "78"
	case "Good":
		color = "39"
	case "Fair":
		color = "214"
	}
	bar := strings.Repeat("█", s.Score) + strings.Repeat("░", 5-s.Score)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(bar + " " + s.Label)
}
