package notion

// Property type discriminators used by the Notion API.
const (
	PropertyTypeTitle    = "title"
	PropertyTypeRichText = "rich_text"
	PropertyTypeNumber   = "number"
	PropertyTypeSelect   = "select"
	PropertyTypeStatus   = "status"
	PropertyTypeDate     = "date"
	PropertyTypeRelation = "relation"
	PropertyTypeFormula  = "formula"
	PropertyTypeRollup   = "rollup"
)

// RichText is one text run inside a title or rich_text property.
type RichText struct {
	PlainText string `json:"plain_text"`
}

// SelectOption is the chosen option of a select or status property.
type SelectOption struct {
	Name string `json:"name"`
}

// DateValue is the value of a date property.
type DateValue struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// RelationRef references another page through a relation property.
type RelationRef struct {
	ID string `json:"id"`
}

// FormulaValue is the evaluated result of a formula property. Only the
// member matching Type is populated.
type FormulaValue struct {
	Type   string   `json:"type"`
	Number *float64 `json:"number,omitempty"`
	String *string  `json:"string,omitempty"`
}

// RollupValue is the aggregated result of a rollup property.
type RollupValue struct {
	Type   string   `json:"type"`
	Number *float64 `json:"number,omitempty"`
}

// Property is one typed property cell of a page. It is a tagged union:
// Type names the populated member, everything else stays zero.
type Property struct {
	Type     string        `json:"type"`
	Title    []RichText    `json:"title,omitempty"`
	RichText []RichText    `json:"rich_text,omitempty"`
	Number   *float64      `json:"number,omitempty"`
	Select   *SelectOption `json:"select,omitempty"`
	Status   *SelectOption `json:"status,omitempty"`
	Date     *DateValue    `json:"date,omitempty"`
	Relation []RelationRef `json:"relation,omitempty"`
	Formula  *FormulaValue `json:"formula,omitempty"`
	Rollup   *RollupValue  `json:"rollup,omitempty"`
}

// Page is one record of a Notion database: an opaque id plus a bag of
// named typed properties.
type Page struct {
	Object         string              `json:"object"`
	ID             string              `json:"id"`
	CreatedTime    string              `json:"created_time"`
	LastEditedTime string              `json:"last_edited_time"`
	Archived       bool                `json:"archived"`
	Properties     map[string]Property `json:"properties"`
}

// TextCondition matches text-bearing properties.
type TextCondition struct {
	Contains string `json:"contains,omitempty"`
	Equals   string `json:"equals,omitempty"`
}

// SelectCondition matches select properties by option name.
type SelectCondition struct {
	Equals string `json:"equals,omitempty"`
}

// RelationCondition matches relation properties by referenced page id.
type RelationCondition struct {
	Contains string `json:"contains,omitempty"`
}

// Filter is a (possibly compound) Notion database filter.
type Filter struct {
	And      []Filter           `json:"and,omitempty"`
	Or       []Filter           `json:"or,omitempty"`
	Property string             `json:"property,omitempty"`
	Title    *TextCondition     `json:"title,omitempty"`
	RichText *TextCondition     `json:"rich_text,omitempty"`
	Select   *SelectCondition   `json:"select,omitempty"`
	Relation *RelationCondition `json:"relation,omitempty"`
}

// Sort orders query results by a property.
type Sort struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
}

const (
	SortAscending  = "ascending"
	SortDescending = "descending"
)

// DatabaseQuery is the body of a database query request.
type DatabaseQuery struct {
	Filter   *Filter `json:"filter,omitempty"`
	Sorts    []Sort  `json:"sorts,omitempty"`
	PageSize int     `json:"page_size,omitempty"`
}

type queryResponse struct {
	Object     string `json:"object"`
	Results    []Page `json:"results"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor"`
}
