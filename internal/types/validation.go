package types

import (
	"fmt"
	"regexp"
	"strings"
)

// emailRegex mirrors the loose check the signup form applies: something,
// an @, something, a dot, something. The server is the real authority.
var emailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidateEmail rejects obviously malformed addresses before any network call.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("email is invalid")
	}
	return nil
}

// ValidatePassword enforces the minimum password policy.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password is required")
	}
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	return nil
}

// ValidateHabit checks a habit's user-supplied fields.
func ValidateHabit(name string, target int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("habit name is required")
	}
	if target <= 0 {
		return fmt.Errorf("habit target must be positive")
	}
	return nil
}

// ValidateGoal checks a goal's user-supplied fields.
func ValidateGoal(title string, target float64, unit string, deadline Date) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("goal title is required")
	}
	if target <= 0 {
		return fmt.Errorf("goal target must be positive")
	}
	if strings.TrimSpace(unit) == "" {
		return fmt.Errorf("goal unit is required")
	}
	if deadline.IsZero() {
		return fmt.Errorf("goal deadline is required")
	}
	return nil
}

// ValidateFoodEntry checks a food entry's user-supplied fields.
func ValidateFoodEntry(name string, calories int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("food name is required")
	}
	if calories < 0 {
		return fmt.Errorf("calories must not be negative")
	}
	return nil
}
