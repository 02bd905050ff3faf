// Package validation contains input validation rules for account fields.
package validation

import (
	"errors"
	"net/mail"
	"regexp"
	"strings"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]{1,22}[a-zA-Z0-9]$`)

// ValidateUsername checks username length and allowed characters.
// Usernames are 3-24 characters of letters, digits, underscore or dash,
// and must start and end with a letter or digit.
func ValidateUsername(username string) error {
	if len(username) < 3 || len(username) > 24 {
		return errors.New("username must be between 3 and 24 characters")
	}
	if !usernameRegex.MatchString(username) {
		return errors.New("username may only contain letters, digits, underscores and dashes, and must start and end with a letter or digit")
	}
	return nil
}

// ValidateEmail checks that the address parses and fits the RFC length cap.
func ValidateEmail(email string) error {
	if len(email) > 254 {
		return errors.New("email must be at most 254 characters")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errors.New("invalid email address")
	}
	if strings.HasSuffix(email, ".") {
		return errors.New("invalid email address")
	}
	return nil
}

// ValidatePassword enforces the minimum password length. Hashing caps the
// useful length at 72 bytes, bcrypt's input limit.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	if len(password) > 72 {
		return errors.New("password must be at most 72 characters")
	}
	return nil
}
