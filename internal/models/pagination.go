package models

// Pagination is the listing metadata returned alongside query results.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// NewPagination computes metadata for a result set. TotalPages is the
// ceiling of total/limit and stays 0 for an empty result set.
func NewPagination(total int64, page, limit int) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

// ListQuery carries page/limit/search parameters for supplier listings.
// Zero or negative values fall back to the defaults instead of erroring.
type ListQuery struct {
	Page   int
	Limit  int
	Search string
	Sort   string
}

// Clamped returns a copy with page and limit coerced to their defaults
// (1 and 10) when out of range.
func (q ListQuery) Clamped() ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	return q
}
