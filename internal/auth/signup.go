package auth

import "strings"

// SignupForm is the account creation form
type SignupForm struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
	AgreeToTerms    bool
}

// DemoSignup is the form the demo fill shortcut produces
func DemoSignup(creds Credentials) SignupForm {
	return SignupForm{
		FirstName:       "John",
		LastName:        "Doe",
		Email:           creds.Email,
		Password:        creds.Password,
		ConfirmPassword: creds.Password,
		AgreeToTerms:    true,
	}
}

// Validate returns one message per failing field
func (f SignupForm) Validate() FieldErrors {
	return collect(validate.Struct(signupInput{
		FirstName:       strings.TrimSpace(f.FirstName),
		LastName:        strings.TrimSpace(f.LastName),
		Email:           f.Email,
		Password:        f.Password,
		ConfirmPassword: f.ConfirmPassword,
		AgreeToTerms:    f.AgreeToTerms,
	}))
}

// FullName is the display name stored on sign-up
func (f SignupForm) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(f.FirstName) + " " + strings.TrimSpace(f.LastName))
}

// Strength grades a password for the strength meter
type Strength struct {
	Score int
	Label string
}

// PasswordStrength scores a password from 0 to 5, one point per satisfied
// sign-up rule.
func PasswordStrength(pw string) Strength {
	score := 0
	if len(pw) >= 8 {
		score++
	}
	for _, check := range []func(string) bool{
		hasRange('a', 'z'),
		hasRange('A', 'Z'),
		hasRange('0', '9'),
		func(s string) bool { return strings.ContainsAny(s, specialChars) },
	} {
		if check(pw) {
			score++
		}
	}

	label := "Weak"
	switch {
	case score == 5:
		label = "Strong"
	case score >= 4:
		label = "Good"
	case score >= 3:
		label = "Fair"
	}
	return Strength{Score: score, Label: label}
}
