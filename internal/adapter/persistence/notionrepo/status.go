package notionrepo

import "webquote/internal/domain/entities"

// Korean status labels used by the Notion databases.
const (
	NotionStatusPending  = "대기"
	NotionStatusApproved = "승인"
	NotionStatusRejected = "거절"
)

var notionToAppStatus = map[string]entities.QuoteStatus{
	NotionStatusPending:  entities.QuoteStatusPending,
	NotionStatusApproved: entities.QuoteStatusApproved,
	NotionStatusRejected: entities.QuoteStatusRejected,
}

var appToNotionStatus = map[entities.QuoteStatus]string{
	entities.QuoteStatusPending:  NotionStatusPending,
	entities.QuoteStatusApproved: NotionStatusApproved,
	entities.QuoteStatusRejected: NotionStatusRejected,
}

// MapNotionStatus translates a Notion label to the internal status.
// Absent or unrecognized labels fall back to pending; the fallback is a
// deliberate default, not an error.
func MapNotionStatus(label string) entities.QuoteStatus {
	if status, ok := notionToAppStatus[label]; ok {
		return status
	}
	return entities.QuoteStatusPending
}

// NotionStatusLabel is the reverse translation, used when building
// outbound filter queries. It is total over the three internal statuses.
func NotionStatusLabel(status entities.QuoteStatus) string {
	if label, ok := appToNotionStatus[status]; ok {
		return label
	}
	return NotionStatusPending
}
