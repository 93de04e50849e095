package engine

import "sort"

// Counts holds the aggregate statistics derived from the unfiltered
// collection. They back the summary cards and filter-button badges, so
// they deliberately ignore the active filters and stay correct immediately
// after any confirmed add or delete.
type Counts struct {
	ByCategory map[string]int
	All        int
	Today      int
	Last7Days  int
}

// Counts recomputes the aggregates from the raw collection.
func (e *Engine) Counts() Counts {
	today := startOfDay(e.now())

	counts := Counts{
		ByCategory: make(map[string]int),
		All:        len(e.records),
	}

	for _, r := range e.records {
		if key := r.CategoryKey(); key != "" {
			counts.ByCategory[key]++
		}
		if sameDay(r.CreatedAt, today) {
			counts.Today++
		}
		if withinLastDays(r.CreatedAt, today, 7) {
			counts.Last7Days++
		}
	}

	return counts
}

// Categories returns the distinct lowercase category values currently
// present in the collection, sorted. The set is open: it is derived from
// live data, never from a fixed enum.
func (e *Engine) Categories() []string {
	seen := make(map[string]struct{})
	for _, r := range e.records {
		if key := r.CategoryKey(); key != "" {
			seen[key] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for key := range seen {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}
