package inquiry

import (
	"fmt"
	"net/mail"
	"strings"
)

// FieldError reports a form field that blocks submission.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

// validateRequired fails when value is empty or whitespace only.
func validateRequired(field, displayName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &FieldError{Field: field, Message: fmt.Sprintf("%s is required", displayName)}
	}
	return nil
}

func validateEmail(field, value string) error {
	if err := validateRequired(field, "Email address", value); err != nil {
		return err
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != strings.TrimSpace(value) {
		return &FieldError{Field: field, Message: "Please enter a valid email address"}
	}
	return nil
}
