// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"unicode"
)

// PasswordPolicyMessage is the user-facing message for any password policy
// violation. The wording is part of the API contract.
const PasswordPolicyMessage = "password must have at least 8 characters, including digits and symbols."

// ValidatePassword checks if a password meets security requirements:
// at least 8 characters with at least one digit and one symbol.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf(PasswordPolicyMessage)
	}

	// Cap length to keep bcrypt input bounded
	if len(password) > 128 {
		return fmt.Errorf("password must not exceed 128 characters")
	}

	hasDigit := false
	hasSymbol := false
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSymbol = true
		}
	}

	if !hasDigit || !hasSymbol {
		return fmt.Errorf(PasswordPolicyMessage)
	}

	return nil
}

// ValidateUsername checks if a username meets requirements
func ValidateUsername(username string) error {
	if len(username) < 3 {
		return fmt.Errorf("username must be at least 3 characters long")
	}

	if len(username) > 30 {
		return fmt.Errorf("username must not exceed 30 characters")
	}

	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' && r != '.' {
			return fmt.Errorf("username can only contain letters, numbers, underscores, hyphens, and dots")
		}
	}

	return nil
}
