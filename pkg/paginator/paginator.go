package paginator

// Adjust fills in defaults and clamps the limit to MaxLimit.
func (q *PaginateQuery) Adjust() {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	switch {
	case q.Limit < 1:
		q.Limit = DefaultLimit
	case q.Limit > MaxLimit:
		q.Limit = MaxLimit
	}
}

// Offset is the number of rows to skip for the current page.
func (q PaginateQuery) Offset() int64 {
	return int64(q.Page-1) * q.Limit
}

// New builds the page description for an adjusted query.
func New(q PaginateQuery, total, count int64) Paginator {
	return Paginator{
		Total:       total,
		Count:       count,
		PerPage:     q.Limit,
		CurrentPage: q.Page,
	}
}

func (p Paginator) TotalPages() int {
	if p.Total <= 0 || p.PerPage <= 0 {
		return 0
	}
	return int((p.Total + p.PerPage - 1) / p.PerPage)
}

func (p Paginator) HasNextPage() bool {
	return p.CurrentPage < p.TotalPages()
}

func (p Paginator) HasPreviousPage() bool {
	return p.CurrentPage > 1
}

func (p Paginator) ToResponse() PaginatorResponse {
	return PaginatorResponse{
		Total:       p.Total,
		Count:       p.Count,
		PerPage:     p.PerPage,
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages(),
		HasNext:     p.HasNextPage(),
		HasPrev:     p.HasPreviousPage(),
	}
}
