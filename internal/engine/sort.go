package engine

import (
	"sort"

	"github.com/pranavpatil70/Registeration-hub-admin/internal/model"
)

// sortRecords orders the pipeline output in place by the active SortSpec.
// The sort is stable and uses no secondary tie-break: records with equal
// keys keep their pipeline-output relative order, which itself follows the
// collection order (newest first from the initial load, adjusted by
// add/remove).
func (e *Engine) sortRecords(records []model.Registration) {
	cmp := e.comparator()
	sort.SliceStable(records, func(i, j int) bool {
		return cmp(records[i], records[j]) < 0
	})
}

// comparator builds the ascending comparator for the active field and
// negates it for descending order. Name and category use locale-aware
// collation; createdAt compares instants.
func (e *Engine) comparator() func(a, b model.Registration) int {
	var cmp func(a, b model.Registration) int

	switch e.sortField {
	case SortByName:
		cmp = func(a, b model.Registration) int {
			return e.collator.CompareString(a.Name, b.Name)
		}
	case SortByCategory:
		cmp = func(a, b model.Registration) int {
			return e.collator.CompareString(a.Category, b.Category)
		}
	default:
		cmp = func(a, b model.Registration) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		}
	}

	if e.sortDir == Descending {
		asc := cmp
		return func(a, b model.Registration) int {
			return -asc(a, b)
		}
	}
	return cmp
}
