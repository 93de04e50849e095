package engine

import "github.com/pranavpatil70/Registeration-hub-admin/internal/model"

// pageSlice returns the 1-based page window over the ordered result,
// clipped to the available length. An out-of-range page yields an empty
// slice, not an error.
func pageSlice(records []model.Registration, page, size int) []model.Registration {
	start := (page - 1) * size
	if start >= len(records) || start < 0 {
		return []model.Registration{}
	}

	end := start + size
	if end > len(records) {
		end = len(records)
	}

	out := make([]model.Registration, end-start)
	copy(out, records[start:end])
	return out
}

// totalPages is ceil(total/size). An empty result has zero pages; there is
// no minimum of one.
func totalPages(total, size int) int {
	if total == 0 {
		return 0
	}
	return (total + size - 1) / size
}
