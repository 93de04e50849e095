package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/pranavpatil70/Registeration-hub-admin/internal/supabase"
)

func TestLoadStoreSettings(t *testing.T) {
	t.Run("defaults to sqlite", func(t *testing.T) {
		viper.Reset()
		t.Cleanup(viper.Reset)

		settings := LoadStoreSettings()
		assert.Equal(t, BackendSQLite, settings.Backend)
		assert.NotEmpty(t, settings.DBPath)
		assert.Equal(t, supabase.DefaultTable, settings.Supabase.Table)
	})

	t.Run("supabase credentials imply the remote backend", func(t *testing.T) {
		viper.Reset()
		t.Cleanup(viper.Reset)
		viper.Set("supabase.url", "https://example.supabase.co")
		viper.Set("supabase.key", "anon-key")

		settings := LoadStoreSettings()
		assert.Equal(t, BackendSupabase, settings.Backend)
		assert.Equal(t, "https://example.supabase.co", settings.Supabase.URL)
	})

	t.Run("explicit backend wins", func(t *testing.T) {
		viper.Reset()
		t.Cleanup(viper.Reset)
		viper.Set("store.backend", BackendSQLite)
		viper.Set("supabase.url", "https://example.supabase.co")

		settings := LoadStoreSettings()
		assert.Equal(t, BackendSQLite, settings.Backend)
	})
}

func TestPageSize(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	assert.Equal(t, 10, PageSize())

	viper.Set("ui.page_size", 25)
	assert.Equal(t, 25, PageSize())
}

func TestExpandPath(t *testing.T) {
	t.Run("expands tilde", func(t *testing.T) {
		expanded := ExpandPath("~/data/reghub.db")
		assert.NotContains(t, expanded, "~")
	})

	t.Run("expands environment variables", func(t *testing.T) {
		t.Setenv("REGHUB_TEST_DIR", "/tmp/reghub")
		assert.Equal(t, "/tmp/reghub/reghub.db", ExpandPath("$REGHUB_TEST_DIR/reghub.db"))
	})

	t.Run("empty path stays empty", func(t *testing.T) {
		assert.Empty(t, ExpandPath(""))
	})
}
