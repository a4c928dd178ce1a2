// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"warbler/internal/models"
)

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	emailRe    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ValidateUsername checks if a username meets requirements (1-30 chars,
// letters/digits/underscores/hyphens).
func ValidateUsername(username string) error {
	if len(username) < 1 {
		return fmt.Errorf("username is required")
	}
	if len(username) > 30 {
		return fmt.Errorf("username must not exceed 30 characters")
	}
	if !usernameRe.MatchString(username) {
		return fmt.Errorf("username can only contain letters, numbers, underscores, and hyphens")
	}
	if username[0] == '_' || username[0] == '-' || username[len(username)-1] == '_' || username[len(username)-1] == '-' {
		return fmt.Errorf("username cannot start or end with underscore or hyphen")
	}
	return nil
}

// ValidateEmail checks basic email shape and the 50-character bound.
func ValidateEmail(email string) error {
	if len(email) < 1 {
		return fmt.Errorf("email is required")
	}
	if len(email) > 50 {
		return fmt.Errorf("email must not exceed 50 characters")
	}
	if !emailRe.MatchString(email) {
		return fmt.Errorf("email address is not valid")
	}
	return nil
}

// ValidatePassword checks if a password meets security requirements
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters long")
	}
	if len(password) > 128 {
		return fmt.Errorf("password must not exceed 128 characters")
	}
	return nil
}

// ValidateMessageText checks the 1-140 character bound on message text.
func ValidateMessageText(text string) error {
	if len(text) == 0 {
		return fmt.Errorf("message text is required")
	}
	if utf8.RuneCountInString(text) > models.MaxMessageLength {
		return fmt.Errorf("message text must not exceed %d characters", models.MaxMessageLength)
	}
	return nil
}
