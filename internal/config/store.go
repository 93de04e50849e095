package config

import (
	"github.com/spf13/viper"

	"github.com/pranavpatil70/Registeration-hub-admin/internal/supabase"
)

// Store backends.
const (
	BackendSQLite   = "sqlite"
	BackendSupabase = "supabase"
)

// StoreSettings selects and configures the backing store.
type StoreSettings struct {
	Backend  string
	DBPath   string
	Supabase supabase.Config
}

// LoadStoreSettings reads the backing store configuration from Viper.
// Precedence is config file, then REGHUB_ environment variables, then
// defaults: the SQLite backend at DefaultDBPath.
func LoadStoreSettings() StoreSettings {
	settings := StoreSettings{
		Backend: BackendSQLite,
		DBPath:  DefaultDBPath(),
		Supabase: supabase.Config{
			Table: supabase.DefaultTable,
		},
	}

	if v := viper.GetString("store.backend"); v != "" {
		settings.Backend = v
	}
	if v := viper.GetString("store.path"); v != "" {
		settings.DBPath = ExpandPath(v)
	}
	if v := viper.GetString("supabase.url"); v != "" {
		settings.Supabase.URL = v
	}
	if v := viper.GetString("supabase.key"); v != "" {
		settings.Supabase.Key = v
	}
	if v := viper.GetString("supabase.table"); v != "" {
		settings.Supabase.Table = v
	}

	// Having Supabase credentials configured implies the remote backend
	// unless the backend was set explicitly.
	if !viper.IsSet("store.backend") && settings.Supabase.URL != "" {
		settings.Backend = BackendSupabase
	}

	return settings
}

// PageSize returns the configured default page size for views.
func PageSize() int {
	if v := viper.GetInt("ui.page_size"); v > 0 {
		return v
	}
	return 10
}
