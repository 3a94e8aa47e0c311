// Package types - Expense table types
package types

import "github.com/shopspring/decimal"

// ExpenseKind distinguishes per-unit costs from one-off costs
type ExpenseKind string

const (
	// ExpenseVariable scales with the number of units produced
	ExpenseVariable ExpenseKind = "variable"

	// ExpenseFixed is paid once regardless of units produced
	ExpenseFixed ExpenseKind = "fixed"
)

// String returns the string representation
func (k ExpenseKind) String() string {
	return string(k)
}

// LineItem is a single accepted expense entry
type LineItem struct {
	// Name is the item name as typed
	Name string `json:"name"`

	// Quantity is the number of units bought (always 1 for fixed expenses)
	Quantity int64 `json:"quantity"`

	// UnitPrice is the price for one unit
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Cost returns Quantity * UnitPrice
func (l LineItem) Cost() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))
}

// ExpenseTable is an ordered list of line items of one kind.
// Insertion order is kept for display.
type ExpenseTable struct {
	Kind  ExpenseKind `json:"kind"`
	items []LineItem
}

// NewExpenseTable creates an empty table
func NewExpenseTable(kind ExpenseKind) *ExpenseTable {
	return &ExpenseTable{Kind: kind}
}

// Add appends an item
func (t *ExpenseTable) Add(item LineItem) {
	t.items = append(t.items, item)
}

// Items returns a copy of the items in insertion order
func (t *ExpenseTable) Items() []LineItem {
	out := make([]LineItem, len(t.items))
	copy(out, t.items)
	return out
}

// Len returns the number of items
func (t *ExpenseTable) Len() int {
	return len(t.items)
}

// IsEmpty reports whether no items were collected
func (t *ExpenseTable) IsEmpty() bool {
	return len(t.items) == 0
}

// Subtotal returns the sum of all item costs, zero when empty
func (t *ExpenseTable) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range t.items {
		total = total.Add(item.Cost())
	}
	return total
}

// CanFinish reports whether collection may stop. A variable table needs
// at least one item; a fixed table may be empty.
func (t *ExpenseTable) CanFinish() bool {
	return t.Kind == ExpenseFixed || len(t.items) > 0
}
