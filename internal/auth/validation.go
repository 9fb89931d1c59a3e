// Package auth holds the sign-in and sign-up flows: form validation, the
// credentials then one-time-code login sequence and the resend countdown.
package auth

import (
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Form field keys, as reported in FieldErrors
const (
	FieldFirstName       = "firstName"
	FieldLastName        = "lastName"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldTerms           = "agreeToTerms"
	FieldCode            = "otp"
)

var fieldLabels = map[string]string{
	FieldFirstName: "First name",
	FieldLastName:  "Last name",
	FieldEmail:     "Email",
	FieldPassword:  "Password",
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	namePattern  = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
)

const specialChars = "@$!%*?&"

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("form")
	})

	rules := map[string]func(string) bool{
		"notblank":   func(s string) bool { return strings.TrimSpace(s) != "" },
		"emailaddr":  emailPattern.MatchString,
		"personname": namePattern.MatchString,
		"haslower":   hasRange('a', 'z'),
		"hasupper":   hasRange('A', 'Z'),
		"hasdigit":   hasRange('0', '9'),
		"hasspecial": func(s string) bool { return strings.ContainsAny(s, specialChars) },
	}
	for tag, fn := range rules {
		fn := fn
		// registration only fails on an empty tag
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return fn(fl.Field().String())
		})
	}
	return v
}

func hasRange(lo, hi rune) func(string) bool {
	return func(s string) bool {
		return strings.IndexFunc(s, func(r rune) bool { return r >= lo && r <= hi }) >= 0
	}
}

// Tag chains, checked left to right; the first failing rule names the message.
const (
	emailRules    = "notblank,emailaddr"
	passwordRules = "required,min=8,haslower,hasupper,hasdigit,hasspecial"
	nameRules     = "required,min=2,max=50,personname"
)

// FieldErrors maps a field key to its message. Each field carries at most one.
type FieldErrors map[string]string

// Valid reports whether no field failed
func (e FieldErrors) Valid() bool { return len(e) == 0 }

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return "invalid form: " + strings.Join(parts, "; ")
}

type loginInput struct {
	Email    string `form:"email" validate:"notblank,emailaddr"`
	Password string `form:"password" validate:"required"`
}

type signupInput struct {
	FirstName       string `form:"firstName" validate:"required,min=2,max=50,personname"`
	LastName        string `form:"lastName" validate:"required,min=2,max=50,personname"`
	Email           string `form:"email" validate:"notblank,emailaddr"`
	Password        string `form:"password" validate:"required,min=8,haslower,hasupper,hasdigit,hasspecial"`
	ConfirmPassword string `form:"confirmPassword" validate:"required,eqfield=Password"`
	AgreeToTerms    bool   `form:"agreeToTerms" validate:"required"`
}

// ValidateLogin checks the sign-in form
func ValidateLogin(email, password string) FieldErrors {
	return collect(validate.Struct(loginInput{Email: email, Password: password}))
}

// ValidateEmail returns the message for an invalid email, or ""
func ValidateEmail(email string) string {
	return checkVar(FieldEmail, email, emailRules)
}

// ValidatePassword returns the message for a password that breaks the
// sign-up rules, or ""
func ValidatePassword(password string) string {
	return checkVar(FieldPassword, password, passwordRules)
}

// ValidateName checks a name field after trimming. label prefixes the message.
func ValidateName(name, label string) string {
	err := validate.Var(strings.TrimSpace(name), nameRules)
	if err == nil {
		return ""
	}
	fe := firstFieldError(err)
	if fe == nil {
		return label + " is invalid"
	}
	return messageFor(label, fe.Tag(), fe.Param())
}

// ValidateConfirmPassword checks the confirmation field against the password
func ValidateConfirmPassword(password, confirm string) string {
	switch {
	case confirm == "":
		return "Please confirm your password"
	case password != confirm:
		return "Passwords do not match"
	}
	return ""
}

func checkVar(field, value, rules string) string {
	err := validate.Var(value, rules)
	if err == nil {
		return ""
	}
	fe := firstFieldError(err)
	if fe == nil {
		return fieldLabels[field] + " is invalid"
	}
	return fieldMessage(field, fe.Tag(), fe.Param())
}

func collect(err error) FieldErrors {
	out := FieldErrors{}
	if err == nil {
		return out
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out[FieldEmail] = err.Error()
		return out
	}
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = fieldMessage(fe.Field(), fe.Tag(), fe.Param())
	}
	return out
}

func firstFieldError(err error) validator.FieldError {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return nil
	}
	return verrs[0]
}

func fieldMessage(field, tag, param string) string {
	switch field {
	case FieldConfirmPassword:
		if tag == "eqfield" {
			return "Passwords do not match"
		}
		return "Please confirm your password"
	case FieldTerms:
		return "You must agree to the terms and conditions"
	}
	return messageFor(fieldLabels[field], tag, param)
}

func messageFor(label, tag, param string) string {
	switch tag {
	case "required", "notblank":
		return label + " is required"
	case "emailaddr":
		return "Please enter a valid email address"
	case "min":
		return label + " must be at least " + param + " characters long"
	case "max":
		return label + " must be less than " + param + " characters"
	case "personname":
		return label + " can only contain letters, spaces, hyphens, and apostrophes"
	case "haslower":
		return label + " must contain at least one lowercase letter"
	case "hasupper":
		return label + " must contain at least one uppercase letter"
	case "hasdigit":
		return label + " must contain at least one number"
	case "hasspecial":
		return label + " must contain at least one special character (" + specialChars + ")"
	default:
		return label + " is invalid"
	}
}
