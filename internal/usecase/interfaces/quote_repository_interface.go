package interfaces

import (
	"context"

	"webquote/internal/domain/entities"
)

// IQuoteRepository abstracts the Notion-backed read model for quotes.
//
// The service must be able to:
//   - assemble one full quote from an invoice page and its item relations
//   - query invoices with store-native filtering, newest issue date first,
//     with authoritative item-derived totals
//   - resolve items through the items database back relation
//
//go:generate mockgen -source=quote_repository_interface.go -destination=mocks/quote_repository_mock.go -package=mock_interfaces

type IQuoteRepository interface {
	GetQuoteByID(ctx context.Context, id string) (*entities.Quote, error)
	QueryQuotes(ctx context.Context, filters entities.QuoteFilters) ([]entities.QuoteListItem, error)
	GetItemsByQuoteID(ctx context.Context, quoteID string) ([]entities.QuoteItem, error)
}
