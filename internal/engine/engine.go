// Package engine implements the client-side view engine for registrations:
// an in-memory mirror of the backing store plus the filter, search, date
// range, sort and pagination state that derives the rendered view from it.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pranavpatil70/Registeration-hub-admin/internal/common"
	"github.com/pranavpatil70/Registeration-hub-admin/internal/model"
	"github.com/pranavpatil70/Registeration-hub-admin/internal/service"
)

// FilterAll is the sentinel category filter that passes every record.
const FilterAll = "all"

// SortField selects the record field the ordering stage compares.
type SortField string

// Sortable fields.
const (
	SortByName      SortField = "name"
	SortByCategory  SortField = "category"
	SortByCreatedAt SortField = "createdAt"
)

// SortDirection selects ascending or descending order.
type SortDirection string

// Sort directions.
const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// DatePreset selects the date-range stage behavior.
type DatePreset string

// Date range presets.
const (
	DateAll        DatePreset = "all"
	DateToday      DatePreset = "today"
	DateLast7Days  DatePreset = "last7days"
	DateLast30Days DatePreset = "last30days"
	DateCustom     DatePreset = "custom"
)

// DateRange holds the custom date range bounds as calendar dates; time of
// day is ignored. A zero From disables the custom stage entirely. A zero To
// defaults to From.
type DateRange struct {
	From time.Time
	To   time.Time
}

// MutationResult reports the outcome of an add or delete request. It is a
// plain value so every presentation surface can render success and failure
// feedback uniformly; mutations never panic or bubble raw errors.
type MutationResult struct {
	Registration *model.Registration // set on a successful add
	Error        string
	Success      bool
}

// View is one fully derived rendering of the current state: the filtered,
// sorted result plus the pagination window over it. Each call to
// Engine.View produces fresh slices; views are never mutated in place.
type View struct {
	Page          []model.Registration
	Filtered      []model.Registration
	TotalFiltered int
	TotalPages    int
	CurrentPage   int
	PageSize      int
}

// Engine owns the local mirror of the registration collection and every
// piece of view state derived from it. It is designed for a single
// event-driven owner (a UI loop or a command); it is not safe for
// concurrent use and the collection is mutated only after the backing
// store confirms an operation.
type Engine struct {
	now         func() time.Time
	store       service.Store
	collator    *collate.Collator
	records     []model.Registration
	filter      string
	search      string
	sortField   SortField
	sortDir     SortDirection
	datePreset  DatePreset
	customRange DateRange
	page        int
	pageSize    int
	loaded      bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source used for "today" calculations.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithPageSize sets the initial page size.
func WithPageSize(size int) Option {
	return func(e *Engine) {
		if size > 0 {
			e.pageSize = size
		}
	}
}

// New creates a view engine over the given backing store with default view
// state: no filters, newest first, page 1 of 10.
func New(store service.Store, opts ...Option) *Engine {
	e := &Engine{
		store:      store,
		now:        time.Now,
		collator:   collate.New(language.English),
		filter:     FilterAll,
		sortField:  SortByCreatedAt,
		sortDir:    Descending,
		datePreset: DateAll,
		page:       1,
		pageSize:   10,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Load replaces the local collection wholesale with the backing store's
// current contents. A failure here is fatal to the view: no partial data is
// kept and the caller should render a full error state.
func (e *Engine) Load(ctx context.Context) error {
	records, err := e.store.ListRegistrations(ctx)
	if err != nil {
		return common.NewUserError("failed to fetch registrations", fmt.Errorf("%w: %v", common.ErrFetchFailed, err))
	}

	e.records = records
	e.loaded = true
	slog.Debug("loaded registrations", "count", len(records))
	return nil
}

// Loaded reports whether an initial Load has succeeded.
func (e *Engine) Loaded() bool {
	return e.loaded
}

// Records returns a copy of the unfiltered collection, newest first.
func (e *Engine) Records() []model.Registration {
	out := make([]model.Registration, len(e.records))
	copy(out, e.records)
	return out
}

// Add validates the input, submits it to the backing store and, on
// confirmation, prepends the stored record to the local collection.
// Validation failures never reach the network; store failures leave local
// state untouched.
func (e *Engine) Add(ctx context.Context, input model.RegistrationInput) MutationResult {
	if missing := input.MissingFields(); len(missing) > 0 {
		return MutationResult{
			Error: fmt.Sprintf("%s: %s required", common.ErrValidation, strings.Join(missing, ", ")),
		}
	}

	stored, err := e.store.CreateRegistration(ctx, input)
	if err != nil {
		common.LogError(err, "add registration rejected", common.Fields{"name": input.Name})
		return MutationResult{Error: common.UserMessage(err)}
	}

	e.records = append([]model.Registration{*stored}, e.records...)
	slog.Info("registration added", "id", stored.ID, "category", stored.CategoryKey())
	return MutationResult{Success: true, Registration: stored}
}

// Delete submits a delete to the backing store and, on confirmation,
// removes the matching local entry. A store failure leaves local state
// untouched.
func (e *Engine) Delete(ctx context.Context, id int64) MutationResult {
	if err := e.store.DeleteRegistration(ctx, id); err != nil {
		common.LogError(err, "delete registration rejected", common.Fields{"id": id})
		return MutationResult{Error: common.UserMessage(err)}
	}

	for i, r := range e.records {
		if r.ID == id {
			e.records = append(e.records[:i:i], e.records[i+1:]...)
			break
		}
	}

	slog.Info("registration deleted", "id", id)
	return MutationResult{Success: true}
}

// SetCategoryFilter sets the category stage to the given lowercase category,
// or to the pass-through sentinel when given "all" or blank input. Resets to
// page 1.
func (e *Engine) SetCategoryFilter(filter string) {
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" {
		filter = FilterAll
	}
	e.filter = filter
	e.page = 1
}

// SetSearch sets the free-text query. Resets to page 1.
func (e *Engine) SetSearch(query string) {
	e.search = query
	e.page = 1
}

// SetDatePreset selects a date-range preset. Resets to page 1.
func (e *Engine) SetDatePreset(preset DatePreset) {
	e.datePreset = preset
	e.page = 1
}

// SetCustomRange selects the custom preset with the given bounds. A zero To
// defaults to From; a zero From makes the date stage a no-op. Resets to
// page 1.
func (e *Engine) SetCustomRange(from, to time.Time) {
	e.customRange = DateRange{From: from, To: to}
	e.datePreset = DateCustom
	e.page = 1
}

// SetPageSize changes the pagination window size. Resets to page 1.
// Non-positive sizes are ignored.
func (e *Engine) SetPageSize(size int) {
	if size <= 0 {
		return
	}
	e.pageSize = size
	e.page = 1
}

// SetPage moves to the given 1-based page. Out-of-range pages are allowed
// and simply yield an empty slice from View. Pages below 1 are ignored.
func (e *Engine) SetPage(page int) {
	if page < 1 {
		return
	}
	e.page = page
}

// SetSort sets the sort field and direction directly. Like ToggleSort it
// does not reset the current page.
func (e *Engine) SetSort(field SortField, dir SortDirection) {
	e.sortField = field
	e.sortDir = dir
}

// ToggleSort flips the direction when field is already active, otherwise
// selects field with descending direction. Sort changes do not reset the
// current page.
func (e *Engine) ToggleSort(field SortField) {
	if e.sortField == field {
		if e.sortDir == Ascending {
			e.sortDir = Descending
		} else {
			e.sortDir = Ascending
		}
		return
	}
	e.sortField = field
	e.sortDir = Descending
}

// CategoryFilter returns the active category filter ("all" when inactive).
func (e *Engine) CategoryFilter() string {
	return e.filter
}

// Search returns the current free-text query.
func (e *Engine) Search() string {
	return e.search
}

// Sort returns the active sort field and direction.
func (e *Engine) Sort() (SortField, SortDirection) {
	return e.sortField, e.sortDir
}

// DatePreset returns the active date-range preset.
func (e *Engine) DatePreset() DatePreset {
	return e.datePreset
}

// CustomRange returns the custom date-range bounds.
func (e *Engine) CustomRange() DateRange {
	return e.customRange
}

// Page returns the current 1-based page number.
func (e *Engine) Page() int {
	return e.page
}

// PageSize returns the pagination window size.
func (e *Engine) PageSize() int {
	return e.pageSize
}

// View recomputes the full pipeline → sort → window chain from current
// state. Recomputation is pure: the same collection and view state always
// produce the same view.
func (e *Engine) View() View {
	filtered := e.applyPredicates(e.records)
	e.sortRecords(filtered)

	total := len(filtered)
	return View{
		Page:          pageSlice(filtered, e.page, e.pageSize),
		Filtered:      filtered,
		TotalFiltered: total,
		TotalPages:    totalPages(total, e.pageSize),
		CurrentPage:   e.page,
		PageSize:      e.pageSize,
	}
}
