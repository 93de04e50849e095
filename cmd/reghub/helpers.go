package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/pranavpatil70/Registeration-hub-admin/internal/common"
	"github.com/pranavpatil70/Registeration-hub-admin/internal/config"
	"github.com/pranavpatil70/Registeration-hub-admin/internal/engine"
	"github.com/pranavpatil70/Registeration-hub-admin/internal/service"
	"github.com/pranavpatil70/Registeration-hub-admin/internal/storage"
	"github.com/pranavpatil70/Registeration-hub-admin/internal/supabase"
)

// initStore builds the configured backing store client.
func initStore(ctx context.Context) (service.Store, error) {
	settings := config.LoadStoreSettings()

	switch settings.Backend {
	case config.BackendSupabase:
		return supabase.New(settings.Supabase)

	case config.BackendSQLite:
		store, err := storage.NewSQLiteStore(settings.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open local store: %w", err)
		}
		if err := store.Migrate(ctx); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("failed to migrate local store: %w", err)
		}
		return store, nil

	default:
		return nil, fmt.Errorf("%w: unknown store backend %q", common.ErrInvalidConfig, settings.Backend)
	}
}

func closeStore(store service.Store) {
	if err := store.Close(); err != nil {
		slog.Error("failed to close store", "error", err)
	}
}

// loadedEngine builds the view engine over the configured store and
// performs the initial fetch.
func loadedEngine(ctx context.Context) (*engine.Engine, service.Store, error) {
	store, err := initStore(ctx)
	if err != nil {
		return nil, nil, err
	}

	e := engine.New(store, engine.WithPageSize(config.PageSize()))
	if err := e.Load(ctx); err != nil {
		closeStore(store)
		return nil, nil, err
	}

	return e, store, nil
}

// viewFlags are the shared filter/sort/page flags for list and export.
type viewFlags struct {
	category string
	search   string
	preset   string
	from     string
	to       string
	sortBy   string
	asc      bool
	page     int
	pageSize int
}

func addViewFlags(cmd *cobra.Command, flags *viewFlags) {
	cmd.Flags().StringVar(&flags.category, "category", engine.FilterAll, "category filter (\"all\" or one category value)")
	cmd.Flags().StringVar(&flags.search, "search", "", "free-text search over name, email, phone and company")
	cmd.Flags().StringVar(&flags.preset, "range", "all", "date range: all, today, last7days, last30days, custom")
	cmd.Flags().StringVar(&flags.from, "from", "", "custom range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.to, "to", "", "custom range end (YYYY-MM-DD, defaults to --from)")
	cmd.Flags().StringVar(&flags.sortBy, "sort", "created", "sort field: name, category, created")
	cmd.Flags().BoolVar(&flags.asc, "asc", false, "sort ascending instead of descending")
	cmd.Flags().IntVar(&flags.page, "page", 1, "1-based page number")
	cmd.Flags().IntVar(&flags.pageSize, "page-size", 0, "page size (default from config)")
}

// applyViewFlags pushes parsed flag state into the engine.
func applyViewFlags(e *engine.Engine, flags viewFlags) error {
	e.SetCategoryFilter(flags.category)
	e.SetSearch(flags.search)

	preset, err := parseDatePreset(flags.preset)
	if err != nil {
		return err
	}
	if preset == engine.DateCustom || flags.from != "" {
		from, to, err := parseCustomRange(flags.from, flags.to)
		if err != nil {
			return err
		}
		e.SetCustomRange(from, to)
	} else {
		e.SetDatePreset(preset)
	}

	field, err := parseSortField(flags.sortBy)
	if err != nil {
		return err
	}
	dir := engine.Descending
	if flags.asc {
		dir = engine.Ascending
	}
	e.SetSort(field, dir)

	if flags.pageSize > 0 {
		e.SetPageSize(flags.pageSize)
	}
	e.SetPage(flags.page)
	return nil
}

func parseDatePreset(s string) (engine.DatePreset, error) {
	switch s {
	case "all", "":
		return engine.DateAll, nil
	case "today":
		return engine.DateToday, nil
	case "last7days":
		return engine.DateLast7Days, nil
	case "last30days":
		return engine.DateLast30Days, nil
	case "custom":
		return engine.DateCustom, nil
	default:
		return engine.DateAll, fmt.Errorf("invalid date range %q", s)
	}
}

func parseCustomRange(from, to string) (time.Time, time.Time, error) {
	if from == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("--from is required for a custom date range")
	}

	fromDate, err := time.ParseInLocation("2006-01-02", from, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid --from date %q: %w", from, err)
	}

	if to == "" {
		return fromDate, time.Time{}, nil
	}
	toDate, err := time.ParseInLocation("2006-01-02", to, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid --to date %q: %w", to, err)
	}
	return fromDate, toDate, nil
}

func parseSortField(s string) (engine.SortField, error) {
	switch s {
	case "name":
		return engine.SortByName, nil
	case "category":
		return engine.SortByCategory, nil
	case "created", "createdAt", "":
		return engine.SortByCreatedAt, nil
	default:
		return engine.SortByCreatedAt, fmt.Errorf("invalid sort field %q", s)
	}
}
