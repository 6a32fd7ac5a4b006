package pagination

const (
	// DefaultPageSize matches the storefront's result grid.
	DefaultPageSize = 12
	// MaxPageSize caps how many records one page can request.
	MaxPageSize = 50
)

// Window describes one resolved page over a result list. Start and End are
// half-open slice bounds into the full list.
type Window struct {
	Start      int `json:"-"`
	End        int `json:"-"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NormalizePageSize enforces the configured default and maximum sizes.
func NormalizePageSize(size int) int {
	if size <= 0 {
		return DefaultPageSize
	}
	if size > MaxPageSize {
		return MaxPageSize
	}
	return size
}

// Compute clamps a 1-based page number into the valid range for the given
// total and returns the resolved window. Out-of-range pages clamp, they never
// fail; an empty list yields page 1 of 1 with an empty window.
func Compute(total, page, size int) Window {
	size = NormalizePageSize(size)

	totalPages := (total + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	return Window{
		Start:      start,
		End:        end,
		Page:       page,
		PageSize:   size,
		Total:      total,
		TotalPages: totalPages,
	}
}
