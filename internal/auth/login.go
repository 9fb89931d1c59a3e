package auth

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidCode        = errors.New("invalid verification code")
	ErrIncompleteCode     = errors.New("verification code incomplete")
	ErrResendNotReady     = errors.New("resend countdown still running")
	ErrUnknownMethod      = errors.New("unknown verification method")
	ErrWrongStep          = errors.New("login flow is on another step")
)

// CodeLength is the number of digits in a verification code
const CodeLength = 6

// DefaultResendCooldown is the wait between verification code sends
const DefaultResendCooldown = 30 * time.Second

// Demo account defaults
const (
	DefaultDemoEmail    = "demo@campaigndash.app"
	DefaultDemoPassword = "Demo@2024"
	DefaultOTPCode      = "000000"
)

// Credentials is the mock account the flows accept
type Credentials struct {
	Email    string
	Password string
	Code     string
}

// DefaultCredentials returns the built-in demo account
func DefaultCredentials() Credentials {
	return Credentials{Email: DefaultDemoEmail, Password: DefaultDemoPassword, Code: DefaultOTPCode}
}

// Step is a stage of the login flow
type Step int

const (
	StepCredentials Step = iota
	StepCode
)

func (s Step) String() string {
	if s == StepCode {
		return "code"
	}
	return "credentials"
}

// Method is a channel a verification code can be sent through
type Method string

const (
	MethodEmail    Method = "email"
	MethodSMS      Method = "sms"
	MethodWhatsApp Method = "whatsapp"
	MethodCall     Method = "call"
)

// Methods lists the resend channels in display order
func Methods() []Method {
	return []Method{MethodEmail, MethodSMS, MethodWhatsApp, MethodCall}
}

// DisplayName is the human name used in messages
func (m Method) DisplayName() string {
	switch m {
	case MethodEmail:
		return "email"
	case MethodSMS:
		return "SMS"
	case MethodWhatsApp:
		return "WhatsApp"
	case MethodCall:
		return "phone call"
	}
	return string(m)
}

// LoginFlow walks a user from credentials to a verified code. It holds no
// timers; the caller drives the countdown with Tick once per second.
type LoginFlow struct {
	creds    Credentials
	cooldown int

	step      Step
	email     string
	errs      FieldErrors
	general   string
	countdown int
}

// NewLoginFlow starts a flow on the credentials step
func NewLoginFlow(creds Credentials, cooldown time.Duration) *LoginFlow {
	if cooldown <= 0 {
		cooldown = DefaultResendCooldown
	}
	return &LoginFlow{
		creds:    creds,
		cooldown: int(cooldown / time.Second),
		errs:     FieldErrors{},
	}
}

func (f *LoginFlow) Step() Step { return f.step }
func (f *LoginFlow) Email() string { return f.email }
func (f *LoginFlow) Errors() FieldErrors { return f.errs }
func (f *LoginFlow) GeneralError() string { return f.general }
func (f *LoginFlow) Countdown() int { return f.countdown }
func (f *LoginFlow) Credentials() Credentials { return f.creds }
func (f *LoginFlow) FieldError(k string) string { return f.errs[k] }

// ClearError drops a field message and the general error, as typing does
func (f *LoginFlow) ClearError(field string) {
	delete(f.errs, field)
	f.general = ""
}

// SubmitCredentials validates the form and checks it against the account.
// On success the flow moves to the code step and the resend countdown starts.
func (f *LoginFlow) SubmitCredentials(email, password string) error {
	if f.step != StepCredentials {
		return ErrWrongStep
	}
	f.general = ""
	if errs := ValidateLogin(email, password); !errs.Valid() {
		f.errs = errs
		return errs
	}
	if email != f.creds.Email || password != f.creds.Password {
		f.errs = FieldErrors{}
		f.general = "Invalid email or password"
		return ErrInvalidCredentials
	}

	f.step = StepCode
	f.email = email
	f.errs = FieldErrors{}
	f.countdown = f.cooldown
	return nil
}

// SubmitCode checks a verification code. Codes shorter than CodeLength
// digits are ignored.
func (f *LoginFlow) SubmitCode(code string) error {
	if f.step != StepCode {
		return ErrWrongStep
	}
	if !IsCompleteCode(code) {
		return ErrIncompleteCode
	}
	if code != f.creds.Code {
		f.errs = FieldErrors{FieldCode: "Invalid OTP code"}
		return ErrInvalidCode
	}
	f.errs = FieldErrors{}
	return nil
}

// Back returns to the credentials step
func (f *LoginFlow) Back() {
	f.step = StepCredentials
	f.errs = FieldErrors{}
	f.general = ""
}

// Tick counts the resend countdown down one second. It reports whether the
// countdown is still running afterwards.
func (f *LoginFlow) Tick() bool {
	if f.countdown > 0 {
		f.countdown--
	}
	return f.countdown > 0
}

// CanResend reports whether a new code may be requested
func (f *LoginFlow) CanResend() bool {
	return f.step == StepCode && f.countdown == 0
}

// Resend records a new code send and restarts the countdown. The returned
// message is shown to the user.
func (f *LoginFlow) Resend(m Method) (string, error) {
	if !validMethod(m) {
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, string(m))
	}
	if !f.CanResend() {
		return "", ErrResendNotReady
	}
	f.countdown = f.cooldown
	return fmt.Sprintf("A new verification code has been sent via %s.", m.DisplayName()), nil
}

// IsCompleteCode reports whether code is exactly CodeLength digits
func IsCompleteCode(code string) bool {
	if len(code) != CodeLength {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func validMethod(m Method) bool {
	for _, x := range Methods() {
		if x == m {
			return true
		}
	}
	return false
}
