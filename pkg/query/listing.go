// Package query turns loosely specified listing parameters into a store-neutral
// query description. Storage backends translate a Listing into their own query
// language; nothing here talks to a store.
package query

// Field names of the transaction record as seen by queries. Backends map them
// to their own column or document keys.
const (
	FieldID          = "id"
	FieldProductID   = "productId"
	FieldCardID      = "cardId"
	FieldCreatedDate = "createdDate"
)

// Default paging limits used when the caller does not configure any.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Criterion is an equality predicate on one field.
type Criterion struct {
	Field string
	Value string
}

// SortKey orders results by Field.
type SortKey struct {
	Field      string
	Descending bool
}

// Listing describes one page of transactions.
//
// AnyOf is a disjunction: a record matches when at least one criterion holds.
// An empty AnyOf matches every record.
type Listing struct {
	AnyOf     []Criterion
	Sort      []SortKey
	PageIndex int
	Size      int
}

// Skip is the number of records preceding the page.
func (l Listing) Skip() int {
	return l.PageIndex * l.Size
}

// Limit is the maximum number of records on the page.
func (l Listing) Limit() int {
	return l.Size
}

// Params are the caller-facing listing inputs. Page is 1-based. Empty filter
// values mean the filter was not supplied.
type Params struct {
	ProductID string
	CardID    string
	Page      int
	Size      int
}

// Builder builds listings within configured page size limits.
type Builder struct {
	defaultSize int
	maxSize     int
}

// NewBuilder returns a Builder. Non-positive limits fall back to the package defaults.
func NewBuilder(defaultSize, maxSize int) Builder {
	if defaultSize < 1 {
		defaultSize = DefaultPageSize
	}
	if maxSize < 1 {
		maxSize = MaxPageSize
	}
	if defaultSize > maxSize {
		defaultSize = maxSize
	}
	return Builder{defaultSize: defaultSize, maxSize: maxSize}
}

// Build returns the listing for p.
//
// Results are ordered newest first with the identifier as tie-breaker, so
// records sharing a creation instant keep a stable position across pages.
// When both ProductID and CardID are given the listing matches either of them.
func (b Builder) Build(p Params) Listing {
	size := p.Size
	switch {
	case size < 1:
		size = b.defaultSize
	case size > b.maxSize:
		size = b.maxSize
	}

	var anyOf []Criterion
	if p.ProductID != "" {
		anyOf = append(anyOf, Criterion{Field: FieldProductID, Value: p.ProductID})
	}
	if p.CardID != "" {
		anyOf = append(anyOf, Criterion{Field: FieldCardID, Value: p.CardID})
	}

	return Listing{
		AnyOf: anyOf,
		Sort: []SortKey{
			{Field: FieldCreatedDate, Descending: true},
			{Field: FieldID, Descending: true},
		},
		PageIndex: PageIndex(p.Page),
		Size:      size,
	}
}

// PageIndex converts a 1-based page number into a 0-based index. Pages below 1
// map to the first page.
func PageIndex(page int) int {
	return max(0, page-1)
}
