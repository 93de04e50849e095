package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pranavpatil70/Registeration-hub-admin/internal/engine"
	"github.com/pranavpatil70/Registeration-hub-admin/internal/tui/components"
)

const timestampLayout = "2006-01-02 15:04"

// View renders the dashboard for the current state.
func (m *Model) View() string {
	switch m.state {
	case stateLoading:
		return m.theme.Subtitle.Render("Loading registrations...")
	case stateError:
		return m.theme.StatusError.Render(fmt.Sprintf("Failed to load registrations: %v", m.loadErr)) +
			"\n\n" + m.theme.Subtitle.Render("press any key to exit")
	case stateAdd:
		return m.form.View()
	case stateSubmitting:
		return m.browseView() + "\n" + m.theme.Subtitle.Render("saving...")
	case stateHelp:
		return m.helpView()
	}

	return m.browseView()
}

func (m *Model) browseView() string {
	view := m.engine.View()
	counts := m.engine.Counts()

	sections := []string{
		m.theme.Title.Render("Registration Hub"),
		components.StatCards(m.theme, counts),
		components.CategoryBadges(m.theme, m.engine.Categories(), counts, m.engine.CategoryFilter()),
		m.filterLine(),
		m.tableView(view),
		m.footerView(view),
	}

	if m.state == stateConfirmDelete {
		sections = append(sections, m.confirmView())
	}
	if m.state == stateSearch {
		sections = append(sections, m.theme.Bold.Render("Search: ")+m.searchInput.View())
	}
	if m.status != "" {
		sections = append(sections, m.statusView())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

// filterLine summarizes the active predicates and ordering.
func (m *Model) filterLine() string {
	parts := []string{fmt.Sprintf("range: %s", datePresetLabel(m.engine.DatePreset()))}

	if q := m.engine.Search(); q != "" {
		parts = append(parts, fmt.Sprintf("search: %q", q))
	}

	field, dir := m.engine.Sort()
	arrow := "↓"
	if dir == engine.Ascending {
		arrow = "↑"
	}
	parts = append(parts, fmt.Sprintf("sort: %s %s", sortFieldLabel(field), arrow))

	return m.theme.Subtitle.Render(strings.Join(parts, "  •  "))
}

func (m *Model) tableView(view engine.View) string {
	if len(view.Page) == 0 {
		return m.theme.Box.Render(m.theme.Subtitle.Render("No registrations match the current filters."))
	}

	header := fmt.Sprintf("%-5s %-20s %-28s %-14s %-18s %s",
		"ID", "Name", "Email", "Category", "Company", "Registered")

	rows := []string{m.theme.TableHeader.Render(header)}
	for i, r := range view.Page {
		line := fmt.Sprintf("%-5d %-20s %-28s %-14s %-18s %s",
			r.ID,
			truncate(r.Name, 20),
			truncate(r.Email, 28),
			truncate(r.CategoryKey(), 14),
			truncate(orDash(r.Company), 18),
			r.CreatedAt.Local().Format(timestampLayout),
		)
		if i == m.cursor && m.state != stateConfirmDelete {
			rows = append(rows, m.theme.Selected.Render(line))
		} else {
			rows = append(rows, m.theme.Normal.Render(line))
		}
	}

	return strings.Join(rows, "\n")
}

func (m *Model) footerView(view engine.View) string {
	page := fmt.Sprintf("page %d/%d", view.CurrentPage, max(view.TotalPages, 1))
	total := fmt.Sprintf("%d matching", view.TotalFiltered)
	hints := "?: help • q: quit"
	return m.theme.Subtitle.Render(fmt.Sprintf("%s  •  %s  •  %s", page, total, hints))
}

func (m *Model) confirmView() string {
	r := m.pendingDelete
	prompt := fmt.Sprintf("Delete %s <%s> (#%d)? [y/N]", r.Name, r.Email, r.ID)
	return m.theme.StatusError.Render(prompt)
}

func (m *Model) statusView() string {
	switch m.statusKind {
	case statusSuccess:
		return m.theme.StatusSuccess.Render("✓ " + m.status)
	case statusError:
		return m.theme.StatusError.Render("✗ " + m.status)
	default:
		return m.theme.StatusInfo.Render(m.status)
	}
}

func (m *Model) helpView() string {
	lines := []string{
		m.theme.Title.Render("Keys"),
		"",
		"↑/k ↓/j      move selection",
		"←/h →/l      previous / next page",
		"/            search name, email, phone, company",
		"f            cycle category filter",
		"d            cycle date range (all, today, 7d, 30d)",
		"n, c, t      sort by name / category / date (press again to flip)",
		"p            cycle page size (10, 25, 50)",
		"a            add a registration",
		"x            delete the selected registration",
		"e / E        export all / filtered to CSV",
		"r            refetch from the store",
		"q            quit",
		"",
		m.theme.Subtitle.Render("press any key to return"),
	}
	return m.theme.Box.Render(strings.Join(lines, "\n"))
}

func datePresetLabel(p engine.DatePreset) string {
	switch p {
	case engine.DateToday:
		return "today"
	case engine.DateLast7Days:
		return "last 7 days"
	case engine.DateLast30Days:
		return "last 30 days"
	case engine.DateCustom:
		return "custom"
	default:
		return "all time"
	}
}

func sortFieldLabel(f engine.SortField) string {
	switch f {
	case engine.SortByName:
		return "name"
	case engine.SortByCategory:
		return "category"
	default:
		return "date"
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

