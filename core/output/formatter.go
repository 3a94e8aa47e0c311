// Package output provides output formatting interfaces.
// This package produces the human-readable price report.
package output

import (
	"io"
	"time"

	"github.com/shopspring/decimal"

	"fundraiser/core/pricing"
	"fundraiser/core/types"
)

// Formatter renders a report for saving
type Formatter interface {
	Render(w io.Writer, report *Report) error
}

// Report is everything shown at the end of a run
type Report struct {
	// ProductName is the product being sold
	ProductName string

	// Date is when the calculation was made
	Date time.Time

	// Variable holds the variable expenses
	Variable *types.ExpenseTable

	// Fixed holds the fixed expenses; nil or empty when there are none
	Fixed *types.ExpenseTable

	// Price is the calculated price
	Price *pricing.Result
}

// HasFixed reports whether any fixed cost was entered. A fixed table
// whose subtotal is zero is treated as none.
func (r *Report) HasFixed() bool {
	return r.Fixed != nil && !r.Fixed.IsEmpty() && !r.Fixed.Subtotal().IsZero()
}

// Currency formats an amount as dollars with two decimals
func Currency(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
