package notionrepo

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"webquote/internal/domain/entities"
	"webquote/internal/infrastructure/notion"
	"webquote/internal/usecase/interfaces"
)

// Relation property on item pages pointing back at their invoice.
const propItemInvoices = "Invoices"

// notionAPI is the slice of the Notion client this repository consumes.
type notionAPI interface {
	RetrievePage(ctx context.Context, pageID string) (*notion.Page, error)
	QueryDatabase(ctx context.Context, databaseID string, query *notion.DatabaseQuery) ([]notion.Page, error)
}

// NotionQuoteRepository reads quotes from the Notion invoices and items
// databases and maps them to domain entities.
type NotionQuoteRepository struct {
	api          notionAPI
	invoicesDBID string
	itemsDBID    string
	sender       entities.SenderInfo
	log          zerolog.Logger
}

var _ interfaces.IQuoteRepository = (*NotionQuoteRepository)(nil)

func NewNotionQuoteRepository(api notionAPI, invoicesDBID, itemsDBID string, sender entities.SenderInfo, log zerolog.Logger) *NotionQuoteRepository {
	return &NotionQuoteRepository{
		api:          api,
		invoicesDBID: invoicesDBID,
		itemsDBID:    itemsDBID,
		sender:       sender,
		log:          log,
	}
}

// GetQuoteByID fetches one invoice page and assembles the full quote.
// Returns (nil, nil) when the store reports the page does not exist.
// Store errors other than not-found propagate to the caller.
func (r *NotionQuoteRepository) GetQuoteByID(ctx context.Context, id string) (*entities.Quote, error) {
	page, err := r.api.RetrievePage(ctx, id)
	if err != nil {
		if notion.IsObjectNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if page.Properties == nil {
		// Deleted or archived pages come back without properties.
		return nil, nil
	}

	itemIDs := ExtractRelationIDs(property(page, propItems))
	items := r.fetchItems(ctx, itemIDs)

	return MapQuote(page, items, r.sender), nil
}

// fetchItems retrieves item pages in parallel. An individual fetch
// failure drops that item instead of failing the whole quote, so totals
// can shrink when the store is flaky.
func (r *NotionQuoteRepository) fetchItems(ctx context.Context, itemIDs []string) []entities.QuoteItem {
	if len(itemIDs) == 0 {
		return []entities.QuoteItem{}
	}

	pages := make([]*notion.Page, len(itemIDs))
	var wg sync.WaitGroup
	for i, itemID := range itemIDs {
		wg.Add(1)
		go func(i int, itemID string) {
			defer wg.Done()
			page, err := r.api.RetrievePage(ctx, itemID)
			if err != nil {
				r.log.Warn().Err(err).Str("item_id", itemID).Msg("item fetch failed, dropping item")
				return
			}
			pages[i] = page
		}(i, itemID)
	}
	wg.Wait()

	items := make([]entities.QuoteItem, 0, len(itemIDs))
	for _, page := range pages {
		if page == nil || page.Properties == nil {
			continue
		}
		items = append(items, MapItem(page))
	}
	return items
}

// QueryQuotes runs one bounded query against the invoices database,
// sorted by issue date descending, and computes an authoritative total
// for every returned invoice from its resolved items.
//
// Unlike the by-id path, a failing per-invoice total computation fails
// the whole batch.
func (r *NotionQuoteRepository) QueryQuotes(ctx context.Context, filters entities.QuoteFilters) ([]entities.QuoteListItem, error) {
	query := &notion.DatabaseQuery{
		Filter: buildQuoteFilter(filters),
		Sorts: []notion.Sort{
			{Property: propIssueDate, Direction: notion.SortDescending},
		},
		PageSize: notion.MaxQueryPageSize,
	}

	pages, err := r.api.QueryDatabase(ctx, r.invoicesDBID, query)
	if err != nil {
		return nil, err
	}

	results := make([]entities.QuoteListItem, len(pages))
	g, ctx := errgroup.WithContext(ctx)
	for i := range pages {
		g.Go(func() error {
			total, err := r.computeTotal(ctx, &pages[i])
			if err != nil {
				return err
			}
			results[i] = MapQuoteListItem(&pages[i], total)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// computeTotal sums the invoice's item amounts plus tax. Returns nil when
// the invoice has no item relations, letting the mapper fall back to the
// legacy total columns.
func (r *NotionQuoteRepository) computeTotal(ctx context.Context, page *notion.Page) (*float64, error) {
	itemIDs := ExtractRelationIDs(property(page, propItems))
	if len(itemIDs) == 0 {
		return nil, nil
	}

	items := make([]entities.QuoteItem, 0, len(itemIDs))
	for _, itemID := range itemIDs {
		itemPage, err := r.api.RetrievePage(ctx, itemID)
		if err != nil {
			return nil, err
		}
		if itemPage.Properties == nil {
			continue
		}
		items = append(items, MapItem(itemPage))
	}

	_, _, total := entities.ComputeTotals(items)
	return &total, nil
}

// GetItemsByQuoteID resolves items through the items database's back
// relation instead of the invoice's relation cell. Query failures degrade
// to an empty list.
func (r *NotionQuoteRepository) GetItemsByQuoteID(ctx context.Context, quoteID string) ([]entities.QuoteItem, error) {
	pages, err := r.api.QueryDatabase(ctx, r.itemsDBID, &notion.DatabaseQuery{
		Filter: &notion.Filter{
			Property: propItemInvoices,
			Relation: &notion.RelationCondition{Contains: quoteID},
		},
	})
	if err != nil {
		r.log.Warn().Err(err).Str("quote_id", quoteID).Msg("item query failed")
		return []entities.QuoteItem{}, nil
	}

	items := make([]entities.QuoteItem, 0, len(pages))
	for i := range pages {
		if pages[i].Properties == nil {
			continue
		}
		items = append(items, MapItem(&pages[i]))
	}
	return items, nil
}

// buildQuoteFilter translates domain filters into the store's native
// filter shape: status equality and a contains-match across customer name
// and quote number, ANDed when both are present.
func buildQuoteFilter(filters entities.QuoteFilters) *notion.Filter {
	var parts []notion.Filter

	if filters.Status.Valid() {
		parts = append(parts, notion.Filter{
			Property: propStatus,
			Select:   &notion.SelectCondition{Equals: NotionStatusLabel(filters.Status)},
		})
	}

	if filters.Search != "" {
		parts = append(parts, notion.Filter{
			Or: []notion.Filter{
				{Property: propClientName, RichText: &notion.TextCondition{Contains: filters.Search}},
				{Property: propQuoteNumber, Title: &notion.TextCondition{Contains: filters.Search}},
			},
		})
	}

	switch len(parts) {
	case 0:
		return nil
	case 1:
		return &parts[0]
	default:
		return &notion.Filter{And: parts}
	}
}
