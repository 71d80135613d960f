package request

import (
	"webquote/internal/domain/entities"
	"webquote/internal/usecase"
)

// QuoteListRequest is the query-string payload of the admin list endpoint.
type QuoteListRequest struct {
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"pageSize,default=10"`
	Status   string `form:"status"`
	Search   string `form:"search"`
}

func (r QuoteListRequest) ToParams() usecase.ListQuotesParams {
	return usecase.ListQuotesParams{
		Page:     r.Page,
		PageSize: r.PageSize,
		Status:   entities.QuoteStatus(r.Status),
		Search:   r.Search,
	}
}
