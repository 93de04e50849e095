package engine

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranavpatil70/Registeration-hub-admin/internal/model"
)

func seedRecords(n int) []model.Registration {
	records := make([]model.Registration, 0, n)
	for i := n; i >= 1; i-- {
		records = append(records, reg(
			int64(i),
			fmt.Sprintf("Person %02d", i),
			fmt.Sprintf("person%02d@example.com", i),
			"student",
			testNow.Add(-time.Duration(n-i)*time.Minute),
		))
	}
	return records
}

func TestWindowing(t *testing.T) {
	e, _ := newTestEngine(t, seedRecords(23)...)
	e.SetPageSize(10)

	t.Run("full first page", func(t *testing.T) {
		e.SetPage(1)
		view := e.View()
		assert.Equal(t, 23, view.TotalFiltered)
		assert.Equal(t, 3, view.TotalPages)
		require.Len(t, view.Page, 10)
		assert.Equal(t, int64(23), view.Page[0].ID)
	})

	t.Run("short last page", func(t *testing.T) {
		e.SetPage(3)
		view := e.View()
		require.Len(t, view.Page, 3)
		assert.Equal(t, int64(3), view.Page[0].ID)
		assert.Equal(t, int64(1), view.Page[2].ID)
	})

	t.Run("out-of-range page yields empty slice", func(t *testing.T) {
		e.SetPage(9)
		view := e.View()
		assert.Empty(t, view.Page)
		assert.Equal(t, 3, view.TotalPages)
	})

	t.Run("page size change rewindows from page one", func(t *testing.T) {
		e.SetPageSize(25)
		view := e.View()
		assert.Equal(t, 1, view.CurrentPage)
		assert.Equal(t, 1, view.TotalPages)
		assert.Len(t, view.Page, 23)
	})
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int
		size  int
		want  int
	}{
		{"empty result has zero pages", 0, 10, 0},
		{"exact multiple", 20, 10, 2},
		{"remainder adds a page", 21, 10, 3},
		{"single short page", 3, 10, 1},
		{"page size one", 5, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, totalPages(tt.total, tt.size))
		})
	}
}

func TestEmptyFilteredResult(t *testing.T) {
	e, _ := newTestEngine(t, seedRecords(5)...)
	e.SetSearch("no such person")

	view := e.View()
	assert.Equal(t, 0, view.TotalFiltered)
	assert.Equal(t, 0, view.TotalPages)
	assert.Empty(t, view.Page)
}
