// Package model defines the core domain types shared across the application.
package model

import (
	"strings"
	"time"
)

// Registration represents one registration entry as held by the backing store.
type Registration struct {
	CreatedAt time.Time
	Name      string
	Email     string
	Category  string
	Company   string // optional, empty when absent
	Phone     string // optional, empty when absent
	ID        int64
}

// CategoryKey returns the normalized (lowercase) category value used for
// filtering and counting. The category set is open: whatever values exist in
// the collection define it.
func (r Registration) CategoryKey() string {
	return strings.ToLower(strings.TrimSpace(r.Category))
}

// RegistrationInput carries the user-supplied fields for a new registration.
// ID and CreatedAt are assigned by the backing store on insert.
type RegistrationInput struct {
	Name     string
	Email    string
	Category string
	Company  string
	Phone    string
}

// MissingFields returns the names of required fields that are empty or
// whitespace. An empty result means the input is valid for submission.
func (in RegistrationInput) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(in.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(in.Category) == "" {
		missing = append(missing, "category")
	}
	return missing
}
