package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/pranavpatil70/Registeration-hub-admin/internal/model"
)

// drawRecords generates a newest-first collection with arbitrary categories
// and creation days spread around "today".
func drawRecords(rt *rapid.T) []model.Registration {
	n := rapid.IntRange(0, 40).Draw(rt, "n")
	records := make([]model.Registration, 0, n)
	for i := 0; i < n; i++ {
		daysBack := rapid.IntRange(0, 60).Draw(rt, "daysBack")
		records = append(records, model.Registration{
			ID:        int64(n - i),
			Name:      rapid.StringMatching(`[A-Za-z]{1,8}`).Draw(rt, "name"),
			Email:     rapid.StringMatching(`[a-z]{1,8}@example\.com`).Draw(rt, "email"),
			Category:  rapid.SampledFrom([]string{"student", "pro", "Vendor", "alumni"}).Draw(rt, "category"),
			CreatedAt: testNow.AddDate(0, 0, -daysBack),
		})
	}
	return records
}

func drawEngine(rt *rapid.T, records []model.Registration) *Engine {
	store := NewMockStore(records...)
	store.Clock = testClock
	e := New(store, WithClock(testClock))
	if err := e.Load(context.Background()); err != nil {
		rt.Fatalf("load: %v", err)
	}

	e.SetCategoryFilter(rapid.SampledFrom([]string{FilterAll, "student", "pro", "vendor", "none"}).Draw(rt, "filter"))
	e.SetSearch(rapid.SampledFrom([]string{"", "a", "example", "zz"}).Draw(rt, "search"))
	e.SetDatePreset(rapid.SampledFrom([]DatePreset{DateAll, DateToday, DateLast7Days, DateLast30Days}).Draw(rt, "preset"))
	e.SetPageSize(rapid.IntRange(1, 15).Draw(rt, "pageSize"))
	e.SetPage(rapid.IntRange(1, 10).Draw(rt, "page"))
	return e
}

func TestPropertyFilteredSubsetSatisfiesPredicates(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		records := drawRecords(rt)
		e := drawEngine(rt, records)

		byID := make(map[int64]model.Registration, len(records))
		for _, r := range records {
			byID[r.ID] = r
		}

		view := e.View()
		today := startOfDay(testNow)
		for _, r := range view.Filtered {
			original, ok := byID[r.ID]
			require.True(rt, ok, "filtered record must come from the collection")
			require.Equal(rt, original, r)
			require.True(rt, e.matchesCategory(r))
			require.True(rt, e.matchesDateRange(r, today))
		}
	})
}

func TestPropertyWindowArithmetic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		records := drawRecords(rt)
		e := drawEngine(rt, records)

		view := e.View()
		size := view.PageSize
		total := view.TotalFiltered

		if total == 0 {
			require.Equal(rt, 0, view.TotalPages)
		} else {
			require.Equal(rt, (total+size-1)/size, view.TotalPages)
		}

		offset := (view.CurrentPage - 1) * size
		switch {
		case offset >= total:
			require.Empty(rt, view.Page)
		case total-offset < size:
			require.Len(rt, view.Page, total-offset)
		default:
			require.Len(rt, view.Page, size)
		}

		if len(view.Page) > 0 {
			require.Equal(rt, view.Filtered[offset], view.Page[0])
		}
	})
}

func TestPropertyRecomputationIsIdempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		records := drawRecords(rt)
		e := drawEngine(rt, records)

		first := e.View()
		second := e.View()
		require.Equal(rt, first, second)
	})
}

func TestPropertySortToggleReversesUniqueKeys(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		// Unique creation instants guarantee no ties on the createdAt key.
		n := rapid.IntRange(0, 25).Draw(rt, "n")
		records := make([]model.Registration, 0, n)
		for i := 0; i < n; i++ {
			records = append(records, model.Registration{
				ID:        int64(n - i),
				Name:      "Person",
				Email:     "person@example.com",
				Category:  "student",
				CreatedAt: testNow.Add(-time.Duration(i+1) * time.Minute),
			})
		}

		store := NewMockStore(records...)
		store.Clock = testClock
		e := New(store, WithClock(testClock))
		require.NoError(rt, e.Load(context.Background()))

		desc := e.View().Filtered
		e.ToggleSort(SortByCreatedAt)
		asc := e.View().Filtered

		require.Len(rt, desc, len(asc))
		for i := range asc {
			require.Equal(rt, asc[i], desc[len(desc)-1-i])
		}
	})
}
