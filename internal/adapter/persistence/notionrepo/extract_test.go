package notionrepo

import (
	"testing"

	"webquote/internal/infrastructure/notion"
)

func numberPtr(v float64) *float64 { return &v }

func TestExtractTitle(t *testing.T) {
	t.Run("concatenates runs", func(t *testing.T) {
		prop := &notion.Property{
			Type:  notion.PropertyTypeTitle,
			Title: []notion.RichText{{PlainText: "견적서 "}, {PlainText: "Q-2024-001"}},
		}
		if got := ExtractTitle(prop); got != "견적서 Q-2024-001" {
			t.Errorf("unexpected title %q", got)
		}
	})

	t.Run("nil and wrong type yield empty", func(t *testing.T) {
		if got := ExtractTitle(nil); got != "" {
			t.Errorf("expected empty, got %q", got)
		}
		prop := &notion.Property{Type: notion.PropertyTypeRichText, RichText: []notion.RichText{{PlainText: "x"}}}
		if got := ExtractTitle(prop); got != "" {
			t.Errorf("expected empty for wrong type, got %q", got)
		}
	})
}

func TestExtractPlainText(t *testing.T) {
	prop := &notion.Property{
		Type:     notion.PropertyTypeRichText,
		RichText: []notion.RichText{{PlainText: "에이"}, {PlainText: "비"}},
	}
	if got := ExtractPlainText(prop); got != "에이비" {
		t.Errorf("unexpected text %q", got)
	}
	if got := ExtractPlainText(&notion.Property{Type: notion.PropertyTypeTitle}); got != "" {
		t.Errorf("expected empty for wrong type, got %q", got)
	}
}

func TestExtractDate(t *testing.T) {
	prop := &notion.Property{
		Type: notion.PropertyTypeDate,
		Date: &notion.DateValue{Start: "2024-03-15"},
	}
	if got := ExtractDate(prop); got != "2024-03-15" {
		t.Errorf("unexpected date %q", got)
	}
	if got := ExtractDate(&notion.Property{Type: notion.PropertyTypeDate}); got != "" {
		t.Errorf("expected empty for nil date, got %q", got)
	}
	if got := ExtractDate(nil); got != "" {
		t.Errorf("expected empty for nil prop, got %q", got)
	}
}

func TestExtractSelect(t *testing.T) {
	prop := &notion.Property{
		Type:   notion.PropertyTypeSelect,
		Select: &notion.SelectOption{Name: "승인"},
	}
	if got := ExtractSelect(prop); got != "승인" {
		t.Errorf("unexpected select %q", got)
	}
	if got := ExtractSelect(&notion.Property{Type: notion.PropertyTypeSelect}); got != "" {
		t.Errorf("expected empty for nothing selected, got %q", got)
	}
}

func TestExtractStatusName(t *testing.T) {
	t.Run("structured status cell", func(t *testing.T) {
		prop := &notion.Property{
			Type:   notion.PropertyTypeStatus,
			Status: &notion.SelectOption{Name: "거절"},
		}
		if got := ExtractStatusName(prop); got != "거절" {
			t.Errorf("unexpected status %q", got)
		}
	})

	t.Run("select cell fallback", func(t *testing.T) {
		prop := &notion.Property{
			Type:   notion.PropertyTypeSelect,
			Select: &notion.SelectOption{Name: "대기"},
		}
		if got := ExtractStatusName(prop); got != "대기" {
			t.Errorf("unexpected status %q", got)
		}
	})

	t.Run("nil yields empty", func(t *testing.T) {
		if got := ExtractStatusName(nil); got != "" {
			t.Errorf("expected empty, got %q", got)
		}
	})
}

func TestExtractNumber(t *testing.T) {
	cases := []struct {
		name string
		prop *notion.Property
		want float64
	}{
		{name: "nil prop", prop: nil, want: 0},
		{name: "number", prop: &notion.Property{Type: notion.PropertyTypeNumber, Number: numberPtr(1500)}, want: 1500},
		{name: "number null", prop: &notion.Property{Type: notion.PropertyTypeNumber}, want: 0},
		{
			name: "formula with number result",
			prop: &notion.Property{Type: notion.PropertyTypeFormula, Formula: &notion.FormulaValue{Type: "number", Number: numberPtr(300000)}},
			want: 300000,
		},
		{
			name: "formula with string result",
			prop: &notion.Property{Type: notion.PropertyTypeFormula, Formula: &notion.FormulaValue{Type: "string"}},
			want: 0,
		},
		{name: "formula missing body", prop: &notion.Property{Type: notion.PropertyTypeFormula}, want: 0},
		{
			name: "rollup with number result",
			prop: &notion.Property{Type: notion.PropertyTypeRollup, Rollup: &notion.RollupValue{Type: "number", Number: numberPtr(42)}},
			want: 42,
		},
		{
			name: "rollup with non-number result",
			prop: &notion.Property{Type: notion.PropertyTypeRollup, Rollup: &notion.RollupValue{Type: "array"}},
			want: 0,
		},
		{name: "wrong type", prop: &notion.Property{Type: notion.PropertyTypeTitle}, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractNumber(tc.prop); got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestExtractRelationIDs(t *testing.T) {
	prop := &notion.Property{
		Type:     notion.PropertyTypeRelation,
		Relation: []notion.RelationRef{{ID: "item-1"}, {ID: "item-2"}},
	}
	ids := ExtractRelationIDs(prop)
	if len(ids) != 2 || ids[0] != "item-1" || ids[1] != "item-2" {
		t.Errorf("unexpected ids %v", ids)
	}

	if ids := ExtractRelationIDs(nil); len(ids) != 0 {
		t.Errorf("expected no ids, got %v", ids)
	}
	if ids := ExtractRelationIDs(&notion.Property{Type: notion.PropertyTypeNumber}); len(ids) != 0 {
		t.Errorf("expected no ids for wrong type, got %v", ids)
	}
}
