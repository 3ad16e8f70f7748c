package service

import (
	"regexp"       // Regular expressions
	"unicode/utf8" // Character-based length counting
)

// emailPattern accepts anything of the shape local@domain.tld without
// whitespace, mirroring the store-level isEmail check it replaces
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateUsername checks the username is present and 3-50 characters
func validateUsername(username string) error {
	if username == "" {
		return &ValidationError{Field: "username", Message: "username is required"}
	}
	if n := utf8.RuneCountInString(username); n < 3 || n > 50 {
		return &ValidationError{Field: "username", Message: "username must be between 3 and 50 characters"}
	}
	return nil
}

// validateEmail checks the email is present and syntactically valid
func validateEmail(email string) error {
	if email == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if !emailPattern.MatchString(email) {
		return &ValidationError{Field: "email", Message: "email must be a valid email address"}
	}
	return nil
}

// validateTitle checks the title is present and 5-255 characters
func validateTitle(title string) error {
	if title == "" {
		return &ValidationError{Field: "title", Message: "title is required"}
	}
	if n := utf8.RuneCountInString(title); n < 5 || n > 255 {
		return &ValidationError{Field: "title", Message: "title must be between 5 and 255 characters"}
	}
	return nil
}

// validateContent checks the content is present and 10-10000 characters
func validateContent(content string) error {
	if content == "" {
		return &ValidationError{Field: "content", Message: "content is required"}
	}
	if n := utf8.RuneCountInString(content); n < 10 || n > 10000 {
		return &ValidationError{Field: "content", Message: "content must be between 10 and 10000 characters"}
	}
	return nil
}
