package notionrepo

import (
	"time"

	"webquote/internal/domain/entities"
	"webquote/internal/infrastructure/notion"
)

// Property names of the invoices (견적서) database.
const (
	propQuoteNumber = "견적서 번호"
	propIssueDate   = "발행일"
	propStatus      = "상태"
	propValidUntil  = "유효기간"
	propClientName  = "클라이언트명"
	propItems       = "항목"
)

// Property names of the items (품목) database.
const (
	propItemName  = "항목명"
	propUnitPrice = "단가"
	propQuantity  = "수량"
	propAmount    = "금액"
)

// Legacy total columns seen across database generations, in precedence
// order. Only consulted when no computed total is available.
var legacyTotalProps = []string{"총 금액", "총액", "합계"}

// Placeholder customer name when the client cell is empty.
const unspecifiedClient = "미지정"

// MapItem converts an item page into a QuoteItem. Missing cells degrade
// to zero values; the function never fails.
//
// Amount source: the page's own 금액 cell when the property key exists
// (even holding zero), otherwise unitPrice*quantity. Upstream may store an
// amount that disagrees with the product; no reconciliation happens here.
func MapItem(page *notion.Page) entities.QuoteItem {
	name := ExtractTitle(property(page, propItemName))
	unitPrice := ExtractNumber(property(page, propUnitPrice))
	quantity := ExtractNumber(property(page, propQuantity))

	amount := unitPrice * quantity
	if amountProp := property(page, propAmount); amountProp != nil {
		amount = ExtractNumber(amountProp)
	}

	return entities.QuoteItem{
		ID:        page.ID,
		Name:      name,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Amount:    amount,
	}
}

// MapQuote assembles the full Quote from an invoice page and its already
// resolved items. Totals are always recomputed from items; any total
// column on the invoice page is ignored on this path.
func MapQuote(page *notion.Page, items []entities.QuoteItem, sender entities.SenderInfo) *entities.Quote {
	quoteNumber := ExtractTitle(property(page, propQuoteNumber))

	createdAt, ok := parseNotionTime(ExtractDate(property(page, propIssueDate)))
	if !ok {
		createdAt = time.Now().UTC()
	}
	updatedAt, ok := parseNotionTime(page.LastEditedTime)
	if !ok {
		updatedAt = createdAt
	}

	var validUntil *time.Time
	if t, ok := parseNotionTime(ExtractDate(property(page, propValidUntil))); ok {
		validUntil = &t
	}

	receiver := entities.ReceiverInfo{CompanyName: unspecifiedClient}
	if clientName := ExtractPlainText(property(page, propClientName)); clientName != "" {
		receiver.CompanyName = clientName
	}

	status := MapNotionStatus(ExtractStatusName(property(page, propStatus)))
	subtotal, tax, total := entities.ComputeTotals(items)

	return &entities.Quote{
		ID:          page.ID,
		QuoteNumber: quoteNumber,
		Title:       "견적서 - " + quoteNumber,
		Sender:      sender,
		Receiver:    receiver,
		Items:       items,
		Subtotal:    subtotal,
		TaxRate:     entities.TaxRate,
		Tax:         tax,
		Total:       total,
		ValidUntil:  validUntil,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
		Status:      status,
	}
}

// MapQuoteListItem converts an invoice page into the list projection.
// calculatedTotal is the item-derived total computed by the caller; when
// nil the legacy total columns are consulted, falling back to 0.
func MapQuoteListItem(page *notion.Page, calculatedTotal *float64) entities.QuoteListItem {
	quoteNumber := ExtractTitle(property(page, propQuoteNumber))

	createdAt, ok := parseNotionTime(ExtractDate(property(page, propIssueDate)))
	if !ok {
		createdAt, _ = parseNotionTime(page.CreatedTime)
	}
	updatedAt, ok := parseNotionTime(page.LastEditedTime)
	if !ok {
		updatedAt = createdAt
	}

	customerName := ExtractPlainText(property(page, propClientName))
	if customerName == "" {
		customerName = unspecifiedClient
	}

	total := 0.0
	if calculatedTotal != nil {
		total = *calculatedTotal
	} else {
		for _, name := range legacyTotalProps {
			if v := ExtractNumber(property(page, name)); v != 0 {
				total = v
				break
			}
		}
	}

	return entities.QuoteListItem{
		ID:           page.ID,
		QuoteNumber:  quoteNumber,
		Title:        "견적서 - " + quoteNumber,
		CustomerName: customerName,
		Status:       MapNotionStatus(ExtractStatusName(property(page, propStatus))),
		Total:        total,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// parseNotionTime accepts the two date shapes Notion emits: a full
// RFC 3339 timestamp or a bare date.
func parseNotionTime(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, true
	}
	return time.Time{}, false
}
