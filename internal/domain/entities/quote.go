package entities

import (
	"math"
	"time"
)

// QuoteStatus represents the lifecycle of a quotation (견적서).
//
// Domain notes:
//   - Notion is the source of truth; quotes are read-only projections
//     rebuilt from the Notion databases on every fetch.
//   - The Notion select/status property stores Korean labels which are
//     translated to these values by the persistence adapter.
type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusApproved QuoteStatus = "approved"
	QuoteStatusRejected QuoteStatus = "rejected"
)

// Valid reports whether s is one of the known quote statuses.
func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusPending, QuoteStatusApproved, QuoteStatusRejected:
		return true
	}
	return false
}

// TaxRate is the VAT rate applied to every quote (10% 부가세).
const TaxRate = 0.1

// SenderInfo is the issuing company profile. It is loaded from static
// configuration, never from Notion records.
type SenderInfo struct {
	CompanyName    string `json:"companyName"`
	Representative string `json:"representative"`
	BusinessNumber string `json:"businessNumber"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	LogoURL        string `json:"logoUrl,omitempty"`
}

// ReceiverInfo is the customer profile. Only the company name is sourced
// from Notion (클라이언트명); the remaining fields exist in the document
// shape but have no per-record source.
type ReceiverInfo struct {
	CompanyName    string `json:"companyName"`
	Representative string `json:"representative,omitempty"`
	Address        string `json:"address,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty"`
}

// QuoteItem is one priced row of a quote.
//
// Amount is taken from the Notion 금액 property when present, otherwise
// computed as Quantity*UnitPrice. The two can disagree when the upstream
// data is inconsistent; the mapper picks one source and does not reconcile.
type QuoteItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Amount      float64 `json:"amount"`
}

// Quote is the full quotation document assembled from a Notion invoice
// page and its related item pages.
type Quote struct {
	ID          string       `json:"id"`
	QuoteNumber string       `json:"quoteNumber"`
	Title       string       `json:"title"`
	Sender      SenderInfo   `json:"sender"`
	Receiver    ReceiverInfo `json:"receiver"`
	Items       []QuoteItem  `json:"items"`
	Subtotal    float64      `json:"subtotal"`
	TaxRate     float64      `json:"taxRate"`
	Tax         float64      `json:"tax"`
	Total       float64      `json:"total"`
	Notes       string       `json:"notes,omitempty"`
	ValidUntil  *time.Time   `json:"validUntil,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	Status      QuoteStatus  `json:"status"`
}

// ComputeTotals derives subtotal, tax and total from a list of items.
// These values are authoritative: any total stored on the Notion invoice
// page is an informational fallback only.
func ComputeTotals(items []QuoteItem) (subtotal, tax, total float64) {
	for _, it := range items {
		subtotal += it.Amount
	}
	tax = math.Round(subtotal * TaxRate)
	total = subtotal + tax
	return subtotal, tax, total
}
