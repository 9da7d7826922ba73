package paginator

// PaginateQuery is the page request bound from the query string.
type PaginateQuery struct {
	Page  int   `form:"page" binding:"omitempty,min=1"`
	Limit int64 `form:"limit" binding:"omitempty,min=1,max=200"`
}

// Paginator describes one page of a result set.
type Paginator struct {
	Total       int64
	Count       int64
	PerPage     int64
	CurrentPage int
}

type PaginatorResponse struct {
	Total       int64 `json:"total"`
	Count       int64 `json:"count"`
	PerPage     int64 `json:"per_page"`
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrev     bool  `json:"has_prev"`
}
