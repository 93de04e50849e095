// Package testutil provides shared helpers for tests that need a real
// backing store instead of a mock.
package testutil

import (
	"context"
	"testing"

	"github.com/pranavpatil70/Registeration-hub-admin/internal/model"
	"github.com/pranavpatil70/Registeration-hub-admin/internal/service"
	"github.com/pranavpatil70/Registeration-hub-admin/internal/storage"
)

// SetupTestStore creates a migrated in-memory SQLite store seeded with the
// given inputs, oldest first, and registers cleanup.
func SetupTestStore(t *testing.T, seed ...model.RegistrationInput) service.Store {
	t.Helper()

	store, err := storage.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to migrate test store: %v", err)
	}

	for _, input := range seed {
		if _, err := store.CreateRegistration(ctx, input); err != nil {
			t.Fatalf("failed to seed registration %q: %v", input.Name, err)
		}
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

// Input builds a valid registration input with the given name and category.
func Input(name, category string) model.RegistrationInput {
	return model.RegistrationInput{
		Name:     name,
		Email:    name + "@example.com",
		Category: category,
	}
}
