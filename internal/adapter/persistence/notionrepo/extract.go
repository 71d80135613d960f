package notionrepo

import (
	"strings"

	"webquote/internal/infrastructure/notion"
)

// Property extraction helpers. All of them are total: malformed, absent or
// wrong-typed cells degrade to zero values, they never panic. A missing
// number is therefore indistinguishable from a true zero.

// ExtractTitle concatenates the plain-text runs of a title property.
func ExtractTitle(prop *notion.Property) string {
	if prop == nil || prop.Type != notion.PropertyTypeTitle {
		return ""
	}
	return joinPlainText(prop.Title)
}

// ExtractPlainText concatenates the plain-text runs of a rich_text property.
func ExtractPlainText(prop *notion.Property) string {
	if prop == nil || prop.Type != notion.PropertyTypeRichText {
		return ""
	}
	return joinPlainText(prop.RichText)
}

func joinPlainText(runs []notion.RichText) string {
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.PlainText)
	}
	return b.String()
}

// ExtractDate returns the start date of a date property as an ISO 8601
// string, or "" when absent.
func ExtractDate(prop *notion.Property) string {
	if prop == nil || prop.Type != notion.PropertyTypeDate || prop.Date == nil {
		return ""
	}
	return prop.Date.Start
}

// ExtractSelect returns the selected option name of a select property,
// or "" when nothing is selected.
func ExtractSelect(prop *notion.Property) string {
	if prop == nil || prop.Type != notion.PropertyTypeSelect || prop.Select == nil {
		return ""
	}
	return prop.Select.Name
}

// ExtractStatusName returns the option name of a status-kind cell.
// Depending on how the database was configured upstream the 상태 column is
// either a structured status property or a plain select; both are handled
// without a schema migration.
func ExtractStatusName(prop *notion.Property) string {
	if prop == nil {
		return ""
	}
	if prop.Type == notion.PropertyTypeStatus && prop.Status != nil {
		return prop.Status.Name
	}
	return ExtractSelect(prop)
}

// ExtractNumber returns the numeric value of a number property. Formula
// and rollup cells are unwrapped only when their nested result is itself
// numeric; anything else yields 0.
func ExtractNumber(prop *notion.Property) float64 {
	if prop == nil {
		return 0
	}

	switch prop.Type {
	case notion.PropertyTypeNumber:
		if prop.Number != nil {
			return *prop.Number
		}
	case notion.PropertyTypeFormula:
		if prop.Formula != nil && prop.Formula.Type == notion.PropertyTypeNumber && prop.Formula.Number != nil {
			return *prop.Formula.Number
		}
	case notion.PropertyTypeRollup:
		if prop.Rollup != nil && prop.Rollup.Type == notion.PropertyTypeNumber && prop.Rollup.Number != nil {
			return *prop.Rollup.Number
		}
	}
	return 0
}

// ExtractRelationIDs returns the ids of the pages referenced by a
// relation property.
func ExtractRelationIDs(prop *notion.Property) []string {
	if prop == nil || prop.Type != notion.PropertyTypeRelation {
		return nil
	}
	ids := make([]string, 0, len(prop.Relation))
	for _, ref := range prop.Relation {
		ids = append(ids, ref.ID)
	}
	return ids
}

// property looks up a named cell of a page, returning nil when the key
// is absent so the extractors above can degrade safely.
func property(page *notion.Page, name string) *notion.Property {
	if page == nil {
		return nil
	}
	if prop, ok := page.Properties[name]; ok {
		return &prop
	}
	return nil
}
