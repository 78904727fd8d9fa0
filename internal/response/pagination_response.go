package response

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int64 `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
	HasMore    bool  `json:"has_more"`
	From       int   `json:"from"`
	To         int   `json:"to"`
}

// NewPagination derives the page window metadata from the request's page
// parameters, the total row count and the number of rows actually returned.
func NewPagination(page, pageSize, returned int, total int64) *Pagination {
	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)

	from, to := 0, 0
	if returned > 0 {
		from = (page-1)*pageSize + 1
		to = from + returned - 1
	}

	return &Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: total,
		HasMore:    int64(page) < totalPages,
		From:       from,
		To:         to,
	}
}
