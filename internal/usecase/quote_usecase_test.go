package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/mock/gomock"

	"webquote/internal/domain/entities"
	mock_interfaces "webquote/internal/usecase/interfaces/mocks"
)

const validQuoteID = "550e8400-e29b-41d4-a716-446655440000"

func TestValidateQuoteID(t *testing.T) {
	valid := []string{
		validQuoteID,
		"550e8400e29b41d4a716446655440000",
		"550E8400-E29B-41D4-A716-446655440000",
	}
	for _, id := range valid {
		t.Run("accepts "+id, func(t *testing.T) {
			if err := ValidateQuoteID(id); err != nil {
				t.Errorf("expected %q to be accepted: %v", id, err)
			}
		})
	}

	invalid := []string{
		"",
		"abc123",
		"550e8400-e29b-11d4-a716-446655440000", // wrong version nibble
		"550e8400-e29b-41d4-c716-446655440000", // wrong variant nibble
		"550e8400-e29b-41d4-a716-44665544000",  // too short
		"zzze8400-e29b-41d4-a716-446655440000",
	}
	for _, id := range invalid {
		t.Run(fmt.Sprintf("rejects %q", id), func(t *testing.T) {
			if err := ValidateQuoteID(id); !errors.Is(err, ErrInvalidQuoteID) {
				t.Errorf("expected ErrInvalidQuoteID for %q, got %v", id, err)
			}
		})
	}
}

func TestQuoteUseCaseGetQuoteByID(t *testing.T) {
	t.Run("returns quote from repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		repo.EXPECT().GetQuoteByID(gomock.Any(), validQuoteID).Return(&entities.Quote{ID: validQuoteID}, nil)

		quote, err := NewQuoteUseCase(repo).GetQuoteByID(context.Background(), validQuoteID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.ID != validQuoteID {
			t.Errorf("unexpected quote %+v", quote)
		}
	})

	t.Run("trims surrounding whitespace before lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		repo.EXPECT().GetQuoteByID(gomock.Any(), validQuoteID).Return(&entities.Quote{ID: validQuoteID}, nil)

		if _, err := NewQuoteUseCase(repo).GetQuoteByID(context.Background(), "  "+validQuoteID+"\n"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects malformed id without touching repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)

		_, err := NewQuoteUseCase(repo).GetQuoteByID(context.Background(), "abc123")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Errorf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("nil quote becomes not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		repo.EXPECT().GetQuoteByID(gomock.Any(), validQuoteID).Return(nil, nil)

		_, err := NewQuoteUseCase(repo).GetQuoteByID(context.Background(), validQuoteID)
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Errorf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("repository error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		boom := errors.New("store down")
		repo.EXPECT().GetQuoteByID(gomock.Any(), validQuoteID).Return(nil, boom)

		_, err := NewQuoteUseCase(repo).GetQuoteByID(context.Background(), validQuoteID)
		if !errors.Is(err, boom) {
			t.Errorf("expected store error, got %v", err)
		}
	})
}

func listItems(n int) []entities.QuoteListItem {
	items := make([]entities.QuoteListItem, n)
	for i := range items {
		items[i] = entities.QuoteListItem{ID: fmt.Sprintf("quote-%d", i+1)}
	}
	return items
}

func TestQuoteUseCaseListQuotes(t *testing.T) {
	t.Run("filters pass through trimmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		repo.EXPECT().
			QueryQuotes(gomock.Any(), entities.QuoteFilters{Status: entities.QuoteStatusApproved, Search: "클라이언트"}).
			Return(listItems(3), nil)

		list, err := NewQuoteUseCase(repo).ListQuotes(context.Background(), ListQuotesParams{
			Page:     1,
			PageSize: 10,
			Status:   entities.QuoteStatusApproved,
			Search:   "  클라이언트  ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list.Items) != 3 {
			t.Errorf("expected 3 items, got %d", len(list.Items))
		}
		if list.Pagination.CurrentPage != 1 || list.Pagination.PageSize != 10 {
			t.Errorf("unexpected pagination meta %+v", list.Pagination)
		}
	})

	t.Run("slices the requested window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		repo.EXPECT().QueryQuotes(gomock.Any(), gomock.Any()).Return(listItems(25), nil)

		list, err := NewQuoteUseCase(repo).ListQuotes(context.Background(), ListQuotesParams{Page: 2, PageSize: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list.Items) != 10 {
			t.Fatalf("expected 10 items, got %d", len(list.Items))
		}
		if list.Items[0].ID != "quote-11" || list.Items[9].ID != "quote-20" {
			t.Errorf("unexpected window %q..%q", list.Items[0].ID, list.Items[9].ID)
		}
		if list.Pagination.TotalItems != 25 || list.Pagination.TotalPages != 3 {
			t.Errorf("unexpected meta %+v", list.Pagination)
		}
		if !list.Pagination.HasNext || !list.Pagination.HasPrevious {
			t.Errorf("expected both neighbors, got %+v", list.Pagination)
		}
	})

	t.Run("page beyond the batch yields empty items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		repo.EXPECT().QueryQuotes(gomock.Any(), gomock.Any()).Return(listItems(5), nil)

		list, err := NewQuoteUseCase(repo).ListQuotes(context.Background(), ListQuotesParams{Page: 4, PageSize: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list.Items) != 0 {
			t.Errorf("expected empty page, got %d items", len(list.Items))
		}
		if list.Pagination.TotalItems != 5 {
			t.Errorf("unexpected meta %+v", list.Pagination)
		}
	})

	t.Run("rejects invalid pagination", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		u := NewQuoteUseCase(repo)

		if _, err := u.ListQuotes(context.Background(), ListQuotesParams{Page: -1, PageSize: 10}); !errors.Is(err, ErrInvalidPage) {
			t.Errorf("expected ErrInvalidPage, got %v", err)
		}
		if _, err := u.ListQuotes(context.Background(), ListQuotesParams{Page: 0, PageSize: 10}); !errors.Is(err, ErrInvalidPage) {
			t.Errorf("expected ErrInvalidPage for explicit zero page, got %v", err)
		}
		if _, err := u.ListQuotes(context.Background(), ListQuotesParams{Page: 1, PageSize: 0}); !errors.Is(err, ErrInvalidPageSize) {
			t.Errorf("expected ErrInvalidPageSize for explicit zero pageSize, got %v", err)
		}
		if _, err := u.ListQuotes(context.Background(), ListQuotesParams{Page: 1, PageSize: 101}); !errors.Is(err, ErrInvalidPageSize) {
			t.Errorf("expected ErrInvalidPageSize, got %v", err)
		}
		if _, err := u.ListQuotes(context.Background(), ListQuotesParams{Page: 1, PageSize: -5}); !errors.Is(err, ErrInvalidPageSize) {
			t.Errorf("expected ErrInvalidPageSize, got %v", err)
		}
	})

	t.Run("rejects unknown status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)

		_, err := NewQuoteUseCase(repo).ListQuotes(context.Background(), ListQuotesParams{Page: 1, PageSize: 10, Status: "draft"})
		if !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("repository error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		boom := errors.New("store down")
		repo.EXPECT().QueryQuotes(gomock.Any(), gomock.Any()).Return(nil, boom)

		_, err := NewQuoteUseCase(repo).ListQuotes(context.Background(), ListQuotesParams{Page: 1, PageSize: 10})
		if !errors.Is(err, boom) {
			t.Errorf("expected store error, got %v", err)
		}
	})
}
