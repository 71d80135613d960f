package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"webquote/internal/domain/entities"
	"webquote/internal/usecase/interfaces"
)

var (
	ErrQuoteNotFound   = errors.New("quote not found")
	ErrInvalidQuoteID  = errors.New("invalid quote id: expected 32 hex characters or a hyphenated UUID")
	ErrInvalidPage     = errors.New("invalid pagination: page must be >= 1")
	ErrInvalidPageSize = errors.New("invalid pagination: pageSize must be between 1 and 100")
	ErrInvalidStatus   = errors.New("invalid status filter")
)

// Notion page ids are UUID v4, with or without hyphens.
var quoteIDPattern = regexp.MustCompile(`^[0-9a-f]{8}-?[0-9a-f]{4}-?4[0-9a-f]{3}-?[89ab][0-9a-f]{3}-?[0-9a-f]{12}$`)

const maxPageSize = 100

// ValidateQuoteID rejects anything that is not a Notion page id shape
// before the external store is touched.
func ValidateQuoteID(id string) error {
	if !quoteIDPattern.MatchString(strings.ToLower(id)) {
		return ErrInvalidQuoteID
	}
	return nil
}

// ListQuotesParams carries the admin list query. Defaults for absent
// page/pageSize are supplied at the binding layer; here anything below 1
// is rejected, an explicit zero included.
type ListQuotesParams struct {
	Page     int
	PageSize int
	Status   entities.QuoteStatus
	Search   string
}

// QuoteList is one page of the admin list view.
type QuoteList struct {
	Items      []entities.QuoteListItem
	Pagination entities.PaginationMeta
}

// IQuoteUseCase exposes the read operations of the quotation service.
type IQuoteUseCase interface {
	GetQuoteByID(ctx context.Context, id string) (*entities.Quote, error)
	ListQuotes(ctx context.Context, params ListQuotesParams) (*QuoteList, error)
}

type QuoteUseCase struct {
	repo interfaces.IQuoteRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo}
}

// GetQuoteByID validates the id shape and loads the full quote.
func (u *QuoteUseCase) GetQuoteByID(ctx context.Context, id string) (*entities.Quote, error) {
	id = strings.TrimSpace(id)
	if err := ValidateQuoteID(id); err != nil {
		return nil, err
	}

	quote, err := u.repo.GetQuoteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, ErrQuoteNotFound
	}
	return quote, nil
}

// ListQuotes queries the store once and paginates the returned batch in
// memory. The store cannot express offset pagination, so ordering is
// exactly its descending-issue-date order and pages beyond the single
// batch cap are unreachable.
func (u *QuoteUseCase) ListQuotes(ctx context.Context, params ListQuotesParams) (*QuoteList, error) {
	if params.Page < 1 {
		return nil, ErrInvalidPage
	}
	if params.PageSize < 1 || params.PageSize > maxPageSize {
		return nil, ErrInvalidPageSize
	}
	if params.Status != "" && !params.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	all, err := u.repo.QueryQuotes(ctx, entities.QuoteFilters{
		Status: params.Status,
		Search: strings.TrimSpace(params.Search),
	})
	if err != nil {
		return nil, err
	}

	start := (params.Page - 1) * params.PageSize
	end := start + params.PageSize
	if start > len(all) {
		start = len(all)
	}
	if end > len(all) {
		end = len(all)
	}

	return &QuoteList{
		Items:      all[start:end],
		Pagination: entities.NewPaginationMeta(params.Page, params.PageSize, len(all)),
	}, nil
}
