package entities

import "time"

// QuoteListItem is the reduced projection of a quote used by the admin
// list view. It never carries line items.
type QuoteListItem struct {
	ID           string      `json:"id"`
	QuoteNumber  string      `json:"quoteNumber"`
	Title        string      `json:"title"`
	CustomerName string      `json:"customerName"`
	Status       QuoteStatus `json:"status"`
	Total        float64     `json:"total"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// QuoteFilters narrows a quote list query. Zero values mean "no filter".
type QuoteFilters struct {
	Status QuoteStatus
	Search string
}

// PaginationMeta describes one page of an in-memory paginated result.
type PaginationMeta struct {
	CurrentPage int  `json:"currentPage"`
	PageSize    int  `json:"pageSize"`
	TotalItems  int  `json:"totalItems"`
	TotalPages  int  `json:"totalPages"`
	HasPrevious bool `json:"hasPrevious"`
	HasNext     bool `json:"hasNext"`
}

// NewPaginationMeta derives pagination metadata from the total item count
// and the requested page/pageSize. totalPages = ceil(totalItems/pageSize).
func NewPaginationMeta(page, pageSize, totalItems int) PaginationMeta {
	totalPages := (totalItems + pageSize - 1) / pageSize
	return PaginationMeta{
		CurrentPage: page,
		PageSize:    pageSize,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		HasPrevious: page > 1,
		HasNext:     page < totalPages,
	}
}
