package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pranavpatil70/Registeration-hub-admin/internal/common"
	"github.com/pranavpatil70/Registeration-hub-admin/internal/engine"
	"github.com/pranavpatil70/Registeration-hub-admin/internal/model"
	"github.com/pranavpatil70/Registeration-hub-admin/internal/tui/components"
	"github.com/pranavpatil70/Registeration-hub-admin/internal/tui/themes"
)

type state int

const (
	stateLoading state = iota
	stateBrowse
	stateSearch
	stateAdd
	stateConfirmDelete
	stateSubmitting
	stateError
	stateHelp
)

type statusKind int

const (
	statusNone statusKind = iota
	statusInfo
	statusSuccess
	statusError
)

// Model is the dashboard's bubbletea model. The engine is owned by the
// update loop: commands that mutate it only run while the model is in
// stateLoading or stateSubmitting, so reads and writes never overlap.
type Model struct {
	ctx    context.Context
	engine *engine.Engine
	theme  themes.Theme
	keys   keyMap

	state     state
	prevState state

	cursor      int
	width       int
	height      int
	searchInput textinput.Model
	form        components.AddForm

	pendingDelete model.Registration

	status     string
	statusKind statusKind
	loadErr    error
}

// NewModel builds the dashboard model from a validated config.
func NewModel(cfg Config) (*Model, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	search := textinput.New()
	search.Placeholder = "name, email, phone or company"
	search.CharLimit = 200
	search.Width = 40

	return &Model{
		ctx:         cfg.Ctx,
		engine:      engine.New(cfg.Store, engine.WithPageSize(cfg.PageSize)),
		theme:       cfg.Theme,
		keys:        defaultKeyMap(),
		state:       stateLoading,
		searchInput: search,
	}, nil
}

// Init starts the initial fetch.
func (m *Model) Init() tea.Cmd {
	return m.loadCmd()
}

// Update routes messages to the current state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case engineLoadedMsg:
		if msg.err != nil {
			m.loadErr = msg.err
			m.state = stateError
			return m, nil
		}
		m.state = stateBrowse
		m.clampCursor()
		return m, nil

	case mutationDoneMsg:
		return m.handleMutationDone(msg)

	case exportDoneMsg:
		if msg.err != nil {
			return m, m.setStatus(statusError, fmt.Sprintf("export failed: %v", msg.err))
		}
		return m, m.setStatus(statusSuccess, fmt.Sprintf("exported %d registrations to %s", msg.rows, msg.filename))

	case statusClearMsg:
		m.status = ""
		m.statusKind = statusNone
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, regardless of state.
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.state {
	case stateLoading, stateSubmitting:
		// Waiting on the engine; ignore everything else.
		return m, nil
	case stateError:
		return m, tea.Quit
	case stateHelp:
		m.state = m.prevState
		return m, nil
	case stateSearch:
		return m.handleSearchKey(msg)
	case stateAdd:
		return m.handleAddKey(msg)
	case stateConfirmDelete:
		return m.handleConfirmKey(msg)
	default:
		return m.handleBrowseKey(msg)
	}
}

func (m *Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys

	switch {
	case keyMatches(msg, keys.Quit):
		return m, tea.Quit

	case keyMatches(msg, keys.Help):
		m.prevState = m.state
		m.state = stateHelp
		return m, nil

	case keyMatches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case keyMatches(msg, keys.Down):
		if m.cursor < len(m.engine.View().Page)-1 {
			m.cursor++
		}
		return m, nil

	case keyMatches(msg, keys.PrevPage):
		if page := m.engine.Page(); page > 1 {
			m.engine.SetPage(page - 1)
			m.clampCursor()
		}
		return m, nil

	case keyMatches(msg, keys.NextPage):
		view := m.engine.View()
		if view.CurrentPage < view.TotalPages {
			m.engine.SetPage(view.CurrentPage + 1)
			m.clampCursor()
		}
		return m, nil

	case keyMatches(msg, keys.Search):
		m.state = stateSearch
		m.searchInput.SetValue(m.engine.Search())
		m.searchInput.Focus()
		return m, textinput.Blink

	case keyMatches(msg, keys.Filter):
		m.engine.SetCategoryFilter(m.nextCategory())
		m.clampCursor()
		return m, nil

	case keyMatches(msg, keys.DateRange):
		m.engine.SetDatePreset(nextDatePreset(m.engine.DatePreset()))
		m.clampCursor()
		return m, nil

	case keyMatches(msg, keys.SortName):
		m.engine.ToggleSort(engine.SortByName)
		return m, nil

	case keyMatches(msg, keys.SortCat):
		m.engine.ToggleSort(engine.SortByCategory)
		return m, nil

	case keyMatches(msg, keys.SortDate):
		m.engine.ToggleSort(engine.SortByCreatedAt)
		return m, nil

	case keyMatches(msg, keys.PageSize):
		m.engine.SetPageSize(nextPageSize(m.engine.PageSize()))
		m.clampCursor()
		return m, nil

	case keyMatches(msg, keys.Add):
		m.state = stateAdd
		m.form = components.NewAddForm(m.theme)
		return m, textinput.Blink

	case keyMatches(msg, keys.Delete):
		page := m.engine.View().Page
		if m.cursor >= len(page) {
			return m, nil
		}
		m.pendingDelete = page[m.cursor]
		m.state = stateConfirmDelete
		return m, nil

	case keyMatches(msg, keys.ExportAll):
		return m, m.exportCmd(m.engine.Records(), "all_registrations")

	case keyMatches(msg, keys.ExportView):
		return m, m.exportCmd(m.engine.View().Filtered, "filtered_registrations")

	case keyMatches(msg, keys.Refresh):
		m.state = stateLoading
		return m, m.loadCmd()
	}

	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.engine.SetSearch(m.searchInput.Value())
		m.searchInput.Blur()
		m.state = stateBrowse
		m.clampCursor()
		return m, nil
	case "esc":
		m.searchInput.Blur()
		m.state = stateBrowse
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m *Model) handleAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = stateBrowse
		return m, nil
	case "enter":
		if !m.form.Validate() {
			return m, nil
		}
		m.state = stateSubmitting
		return m, m.addCmd(m.form.Input())
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "y", "enter":
		m.state = stateSubmitting
		return m, m.deleteCmd(m.pendingDelete.ID)
	case "n", "esc":
		m.state = stateBrowse
		return m, nil
	}
	return m, nil
}

func (m *Model) handleMutationDone(msg mutationDoneMsg) (tea.Model, tea.Cmd) {
	if !msg.result.Success {
		if msg.kind == "add" {
			// Keep the form open so the input isn't lost.
			m.state = stateAdd
			m.form.SetError(msg.result.Error)
			return m, nil
		}
		m.state = stateBrowse
		return m, m.setStatus(statusError, msg.result.Error)
	}

	m.state = stateBrowse
	m.clampCursor()

	switch msg.kind {
	case "add":
		r := msg.result.Registration
		slog.Info("registration added", "id", r.ID, "category", r.CategoryKey())
		return m, m.setStatus(statusSuccess, fmt.Sprintf("added %s (#%d)", r.Name, r.ID))
	case "delete":
		slog.Info("registration deleted", "id", m.pendingDelete.ID)
		return m, m.setStatus(statusSuccess, fmt.Sprintf("deleted %s (#%d)", m.pendingDelete.Name, m.pendingDelete.ID))
	}
	return m, nil
}

func (m *Model) setStatus(kind statusKind, text string) tea.Cmd {
	m.status = text
	m.statusKind = kind
	return clearStatusCmd()
}

func (m *Model) clampCursor() {
	if n := len(m.engine.View().Page); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// nextCategory cycles all -> first category -> ... -> last -> all.
func (m *Model) nextCategory() string {
	categories := m.engine.Categories()
	current := m.engine.CategoryFilter()

	if current == engine.FilterAll {
		if len(categories) == 0 {
			return engine.FilterAll
		}
		return categories[0]
	}
	for i, category := range categories {
		if category == current && i+1 < len(categories) {
			return categories[i+1]
		}
	}
	return engine.FilterAll
}

var pageSizes = []int{10, 25, 50}

// nextPageSize cycles 10 -> 25 -> 50 -> 10. A size configured outside the
// cycle falls back to the first step.
func nextPageSize(current int) int {
	for i, size := range pageSizes {
		if size == current {
			return pageSizes[(i+1)%len(pageSizes)]
		}
	}
	return pageSizes[0]
}

// nextDatePreset cycles the presets the dashboard exposes. Custom ranges
// are a CLI affordance and are skipped here.
func nextDatePreset(p engine.DatePreset) engine.DatePreset {
	switch p {
	case engine.DateAll:
		return engine.DateToday
	case engine.DateToday:
		return engine.DateLast7Days
	case engine.DateLast7Days:
		return engine.DateLast30Days
	default:
		return engine.DateAll
	}
}

// LoadError reports the fetch failure, if any, for the caller to surface
// after the program exits.
func (m *Model) LoadError() error {
	if m.loadErr == nil {
		return nil
	}
	return fmt.Errorf("%s", common.UserMessage(m.loadErr))
}
