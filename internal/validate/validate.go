// Package validate performs client-side input checks before any network
// call is made. Failures are field-level errors shown next to the form
// control; they never reach the transport.
package validate

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = validator.New()

// FieldError names the offending field and a human-readable message.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FieldErrors aggregates per-field failures.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}

func check(errs *FieldErrors, field, value, tag, message string) {
	if err := v.Var(value, tag); err != nil {
		*errs = append(*errs, FieldError{Field: field, Message: message})
	}
}

func result(errs FieldErrors) error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Login validates email/password credentials.
func Login(email, password string) error {
	var errs FieldErrors
	check(&errs, "email", email, "required,email", "must be a valid email address")
	check(&errs, "password", password, "required,min=8", "must be at least 8 characters")
	return result(errs)
}

// Registration validates the register form.
func Registration(email, password, username, displayName string) error {
	var errs FieldErrors
	check(&errs, "email", email, "required,email", "must be a valid email address")
	check(&errs, "password", password, "required,min=8", "must be at least 8 characters")
	check(&errs, "username", username, "required,min=3,max=30,alphanum", "must be 3-30 alphanumeric characters")
	check(&errs, "displayName", displayName, "required,max=50", "is required and at most 50 characters")
	return result(errs)
}

// Phone validates an E.164 phone number.
func Phone(phone string) error {
	var errs FieldErrors
	check(&errs, "phone", phone, "required,e164", "must be an international phone number like +15551234567")
	return result(errs)
}

// OTP validates a 6-digit verification code.
func OTP(code string) error {
	var errs FieldErrors
	check(&errs, "otp", code, "required,len=6,number", "must be a 6-digit code")
	return result(errs)
}
