package response

import (
	"time"

	"webquote/internal/domain/entities"
	"webquote/internal/usecase"
)

// Envelope is the standard success wrapper: {success:true, data:...}.
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func Success(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

type SenderResponse struct {
	CompanyName    string `json:"companyName"`
	Representative string `json:"representative"`
	BusinessNumber string `json:"businessNumber"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	LogoURL        string `json:"logoUrl,omitempty"`
}

type ReceiverResponse struct {
	CompanyName    string `json:"companyName"`
	Representative string `json:"representative,omitempty"`
	Address        string `json:"address,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty"`
}

type QuoteItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Amount      float64 `json:"amount"`
}

type QuoteResponse struct {
	ID          string              `json:"id"`
	QuoteNumber string              `json:"quoteNumber"`
	Title       string              `json:"title"`
	Sender      SenderResponse      `json:"sender"`
	Receiver    ReceiverResponse    `json:"receiver"`
	Items       []QuoteItemResponse `json:"items"`
	Subtotal    float64             `json:"subtotal"`
	TaxRate     float64             `json:"taxRate"`
	Tax         float64             `json:"tax"`
	Total       float64             `json:"total"`
	Notes       string              `json:"notes,omitempty"`
	ValidUntil  *time.Time          `json:"validUntil,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
	Status      string              `json:"status"`
}

func FromQuote(q *entities.Quote) QuoteResponse {
	items := make([]QuoteItemResponse, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, QuoteItemResponse{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Amount:      it.Amount,
		})
	}

	return QuoteResponse{
		ID:          q.ID,
		QuoteNumber: q.QuoteNumber,
		Title:       q.Title,
		Sender: SenderResponse{
			CompanyName:    q.Sender.CompanyName,
			Representative: q.Sender.Representative,
			BusinessNumber: q.Sender.BusinessNumber,
			Address:        q.Sender.Address,
			Phone:          q.Sender.Phone,
			Email:          q.Sender.Email,
			LogoURL:        q.Sender.LogoURL,
		},
		Receiver: ReceiverResponse{
			CompanyName:    q.Receiver.CompanyName,
			Representative: q.Receiver.Representative,
			Address:        q.Receiver.Address,
			Phone:          q.Receiver.Phone,
			Email:          q.Receiver.Email,
		},
		Items:      items,
		Subtotal:   q.Subtotal,
		TaxRate:    q.TaxRate,
		Tax:        q.Tax,
		Total:      q.Total,
		Notes:      q.Notes,
		ValidUntil: q.ValidUntil,
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
		Status:     string(q.Status),
	}
}

type QuoteListItemResponse struct {
	ID           string    `json:"id"`
	QuoteNumber  string    `json:"quoteNumber"`
	Title        string    `json:"title"`
	CustomerName string    `json:"customerName"`
	Status       string    `json:"status"`
	Total        float64   `json:"total"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type QuoteListResponse struct {
	Items      []QuoteListItemResponse `json:"items"`
	Pagination entities.PaginationMeta `json:"pagination"`
}

func FromQuoteList(list *usecase.QuoteList) QuoteListResponse {
	items := make([]QuoteListItemResponse, 0, len(list.Items))
	for _, it := range list.Items {
		items = append(items, QuoteListItemResponse{
			ID:           it.ID,
			QuoteNumber:  it.QuoteNumber,
			Title:        it.Title,
			CustomerName: it.CustomerName,
			Status:       string(it.Status),
			Total:        it.Total,
			CreatedAt:    it.CreatedAt,
			UpdatedAt:    it.UpdatedAt,
		})
	}
	return QuoteListResponse{Items: items, Pagination: list.Pagination}
}
