package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranavpatil70/Registeration-hub-admin/internal/engine"
	"github.com/pranavpatil70/Registeration-hub-admin/internal/model"
	"github.com/pranavpatil70/Registeration-hub-admin/internal/testutil"
)

// The engine against a real SQLite store: load, mutate, and observe the
// derived view without refetching.
func TestEngineOverSQLiteStore(t *testing.T) {
	ctx := context.Background()
	store := testutil.SetupTestStore(t,
		testutil.Input("Amy", "student"),
		testutil.Input("Ben", "pro"),
		testutil.Input("Cara", "student"),
	)

	e := engine.New(store, engine.WithPageSize(2))
	require.NoError(t, e.Load(ctx))

	view := e.View()
	assert.Equal(t, 3, view.TotalFiltered)
	assert.Equal(t, 2, view.TotalPages)
	assert.Equal(t, "Cara", view.Page[0].Name, "store lists newest first")

	t.Run("add is visible immediately", func(t *testing.T) {
		result := e.Add(ctx, model.RegistrationInput{
			Name:     "Dan",
			Email:    "dan@example.com",
			Category: "vendor",
		})
		require.True(t, result.Success)

		view := e.View()
		assert.Equal(t, 4, view.TotalFiltered)
		assert.Equal(t, "Dan", view.Page[0].Name)
		assert.Equal(t, 1, e.Counts().ByCategory["vendor"])
	})

	t.Run("delete is visible immediately", func(t *testing.T) {
		view := e.View()
		victim := view.Page[0]

		result := e.Delete(ctx, victim.ID)
		require.True(t, result.Success)
		assert.Equal(t, 3, e.View().TotalFiltered)

		// The store agrees after a fresh load.
		e2 := engine.New(store)
		require.NoError(t, e2.Load(ctx))
		assert.Equal(t, 3, e2.Counts().All)
	})

	t.Run("category filter over stored data", func(t *testing.T) {
		e.SetCategoryFilter("student")
		view := e.View()
		assert.Equal(t, 2, view.TotalFiltered)
		for _, r := range view.Filtered {
			assert.Equal(t, "student", r.CategoryKey())
		}
	})
}
