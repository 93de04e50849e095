// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/pranavpatil70/Registeration-hub-admin/internal/model"
)

// Store defines the contract the view engine needs from the backing store:
// one named collection of registrations with full-fetch, single insert and
// single delete. Implementations perform no retries; errors are returned
// verbatim as human-readable messages.
type Store interface {
	// ListRegistrations returns every record in the collection ordered by
	// creation time, newest first.
	ListRegistrations(ctx context.Context) ([]model.Registration, error)

	// CreateRegistration inserts a record and returns the stored copy with
	// its assigned ID and CreatedAt.
	CreateRegistration(ctx context.Context, input model.RegistrationInput) (*model.Registration, error)

	// DeleteRegistration removes the record with the given id.
	DeleteRegistration(ctx context.Context, id int64) error

	Close() error
}
