package pagination

const defaultLimit = 10

// Params holds normalized page/limit values parsed from the query string.
type Params struct {
	Page   int
	Limit  int
	Offset int
}

// Normalize clamps page and limit to sane values and computes the offset.
func Normalize(page, limit int) Params {
	if limit <= 0 {
		limit = defaultLimit
	}
	if page <= 0 {
		page = 1
	}
	return Params{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// Meta is the pagination envelope attached to list responses.
type Meta struct {
	TotalItems      int64 `json:"total_items"`
	ItemsPerPage    int   `json:"items_per_page"`
	CurrentPage     int   `json:"current_page"`
	TotalPages      int   `json:"total_pages"`
	HasNextPage     bool  `json:"has_next_page"`
	HasPreviousPage bool  `json:"has_previous_page"`
}

// NewMeta builds the envelope for a result set of totalItems rows.
func NewMeta(p Params, totalItems int64) Meta {
	totalPages := int((totalItems + int64(p.Limit) - 1) / int64(p.Limit))
	return Meta{
		TotalItems:      totalItems,
		ItemsPerPage:    p.Limit,
		CurrentPage:     p.Page,
		TotalPages:      totalPages,
		HasNextPage:     p.Page < totalPages,
		HasPreviousPage: p.Page > 1,
	}
}
