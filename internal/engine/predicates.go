package engine

import (
	"strings"
	"time"

	"github.com/pranavpatil70/Registeration-hub-admin/internal/model"
)

// applyPredicates runs the category → search → date-range stages over the
// collection and returns the surviving records in collection order. Each
// stage is a pure predicate, so the fixed order only matters for keeping
// the output deterministic, not for the final set.
func (e *Engine) applyPredicates(records []model.Registration) []model.Registration {
	query := strings.ToLower(strings.TrimSpace(e.search))
	today := startOfDay(e.now())

	out := make([]model.Registration, 0, len(records))
	for _, r := range records {
		if !e.matchesCategory(r) {
			continue
		}
		if !matchesQuery(r, query) {
			continue
		}
		if !e.matchesDateRange(r, today) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// matchesCategory implements the category stage: pass-through on the "all"
// sentinel, otherwise an exact match on the lowercase category value.
func (e *Engine) matchesCategory(r model.Registration) bool {
	if e.filter == FilterAll {
		return true
	}
	return r.CategoryKey() == e.filter
}

// matchesQuery implements the search stage: case-insensitive substring over
// name, email, phone and company. Absent optional fields never match. The
// query must already be lower-cased and trimmed; an empty query passes
// everything.
func matchesQuery(r model.Registration, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Name), query) ||
		strings.Contains(strings.ToLower(r.Email), query) ||
		(r.Phone != "" && strings.Contains(strings.ToLower(r.Phone), query)) ||
		(r.Company != "" && strings.Contains(strings.ToLower(r.Company), query))
}

// matchesDateRange implements the date-range stage at calendar-day
// precision. The 7/30-day presets keep records strictly after the boundary
// instant or on the boundary day itself, so the lower bound is inclusive at
// day granularity.
func (e *Engine) matchesDateRange(r model.Registration, today time.Time) bool {
	switch e.datePreset {
	case DateToday:
		return sameDay(r.CreatedAt, today)
	case DateLast7Days:
		return withinLastDays(r.CreatedAt, today, 7)
	case DateLast30Days:
		return withinLastDays(r.CreatedAt, today, 30)
	case DateCustom:
		return e.matchesCustomRange(r.CreatedAt)
	default:
		return true
	}
}

// matchesCustomRange keeps records whose day falls within [From, To], both
// bounds day-truncated. An unset From degenerates to a pass-through.
func (e *Engine) matchesCustomRange(created time.Time) bool {
	if e.customRange.From.IsZero() {
		return true
	}

	from := startOfDay(e.customRange.From)
	to := from
	if !e.customRange.To.IsZero() {
		to = startOfDay(e.customRange.To)
	}

	day := startOfDay(created.In(from.Location()))
	return !day.Before(from) && !day.After(to)
}

func withinLastDays(created, today time.Time, days int) bool {
	boundary := today.AddDate(0, 0, -days)
	return created.After(boundary) || sameDay(created, boundary)
}

// sameDay reports whether t falls on the given calendar day, evaluated in
// that day's location so records stored in UTC compare correctly against a
// local clock.
func sameDay(t, day time.Time) bool {
	return startOfDay(t.In(day.Location())).Equal(startOfDay(day))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
