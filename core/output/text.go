package output

import (
	"fmt"
	"io"
	"strconv"

	"fundraiser/core/types"
	"fundraiser/core/ui"
)

// TextFormatter renders the report as plain text
type TextFormatter struct{}

// NewTextFormatter creates a text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Render writes the report lines to w
func (f *TextFormatter) Render(w io.Writer, report *Report) error {
	for _, line := range f.Lines(report) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Lines returns the report as individual lines. Blank strings are
// section spacers.
func (f *TextFormatter) Lines(report *Report) []string {
	price := report.Price
	date := report.Date.Format("02/01/2006")

	lines := []string{
		ui.Statement(fmt.Sprintf("Fund Raising Calculator (%s, %s)", report.ProductName, date), "-"),
		fmt.Sprintf("Quantity being made: %d", price.Quantity),
		"",
		ui.Statement("Variable Expenses", "-"),
		ExpenseTable(report.Variable).String(),
		fmt.Sprintf("Variable Expenses Subtotal: %s", Currency(price.VariableSubtotal)),
		"",
	}

	if report.HasFixed() {
		lines = append(lines,
			ui.Statement("Fixed Expenses", "-"),
			ExpenseTable(report.Fixed).String(),
			fmt.Sprintf("Fixed Expenses Subtotal: %s", Currency(price.FixedSubtotal)),
		)
	} else {
		lines = append(lines,
			ui.Statement("You have no Fixed Expenses", "-"),
			fmt.Sprintf("Fixed Expenses Subtotal: %s", Currency(price.FixedSubtotal)),
		)
	}

	lines = append(lines,
		"",
		ui.Statement("Selling Price Calculations", "="),
		fmt.Sprintf("Total Expenses: %s", Currency(price.TotalExpenses)),
		fmt.Sprintf("Profit Goal: %s", Currency(price.ProfitGoal)),
		fmt.Sprintf("Total Sales Needed: %s", Currency(price.SalesTarget)),
		"",
		fmt.Sprintf("Minimum Selling Price: %s", Currency(price.MinimumPrice)),
		ui.Statement(fmt.Sprintf("Suggested Selling Price: %s", Currency(price.SuggestedPrice)), "*"),
	)
	return lines
}

// ExpenseTable lays out an expense table. Variable tables show quantity
// and unit price; fixed tables only the cost.
func ExpenseTable(table *types.ExpenseTable) *ui.Table {
	if table.Kind == types.ExpenseFixed {
		t := ui.NewTable("Item", "Cost").AlignRight(1)
		for _, item := range table.Items() {
			t.AddRow(item.Name, Currency(item.Cost()))
		}
		return t
	}

	t := ui.NewTable("Item", "Amount", "$ / Item", "Cost").AlignRight(1, 2, 3)
	for _, item := range table.Items() {
		t.AddRow(item.Name,
			strconv.FormatInt(item.Quantity, 10),
			Currency(item.UnitPrice),
			Currency(item.Cost()))
	}
	return t
}
