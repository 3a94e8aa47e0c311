// Package pricing turns collected costs and a profit goal into a unit
// selling price.
package pricing

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"fundraiser/internal/errors"
	"fundraiser/internal/logging"
)

// Input is everything the price calculation needs
type Input struct {
	// Quantity is the number of units being made
	Quantity int64

	// VariableSubtotal is the sum of variable expenses
	VariableSubtotal decimal.Decimal

	// FixedSubtotal is the sum of fixed expenses
	FixedSubtotal decimal.Decimal

	// ProfitGoal is the resolved goal in dollars
	ProfitGoal decimal.Decimal

	// RoundTo is the unit the suggested price is rounded up to
	RoundTo decimal.Decimal
}

// Result holds the derived prices
type Result struct {
	Quantity         int64           `json:"quantity"`
	VariableSubtotal decimal.Decimal `json:"variable_subtotal"`
	FixedSubtotal    decimal.Decimal `json:"fixed_subtotal"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	ProfitGoal       decimal.Decimal `json:"profit_goal"`
	SalesTarget      decimal.Decimal `json:"sales_target"`
	MinimumPrice     decimal.Decimal `json:"minimum_price"`
	RoundTo          decimal.Decimal `json:"round_to"`
	SuggestedPrice   decimal.Decimal `json:"suggested_price"`
}

// TotalExpenses returns the sum of the variable and fixed subtotals
func TotalExpenses(variable, fixed decimal.Decimal) decimal.Decimal {
	return variable.Add(fixed)
}

// RoundUp rounds amount up to the next multiple of unit. Exact multiples
// are returned unchanged.
func RoundUp(amount, unit decimal.Decimal) decimal.Decimal {
	return amount.Div(unit).Ceil().Mul(unit)
}

// Calculate derives the sales target, minimum price and suggested price.
func Calculate(in Input) (*Result, error) {
	if in.Quantity <= 0 {
		return nil, errors.Input("quantity must be more than 0").WithContext("quantity", in.Quantity)
	}
	if !in.RoundTo.IsPositive() {
		return nil, errors.Input("rounding unit must be more than 0").WithContext("round_to", in.RoundTo.String())
	}
	if in.ProfitGoal.IsNegative() {
		return nil, errors.Input("profit goal must not be negative")
	}

	total := TotalExpenses(in.VariableSubtotal, in.FixedSubtotal)
	target := total.Add(in.ProfitGoal)
	minimum := target.Div(decimal.NewFromInt(in.Quantity))

	result := &Result{
		Quantity:         in.Quantity,
		VariableSubtotal: in.VariableSubtotal,
		FixedSubtotal:    in.FixedSubtotal,
		TotalExpenses:    total,
		ProfitGoal:       in.ProfitGoal,
		SalesTarget:      target,
		MinimumPrice:     minimum,
		RoundTo:          in.RoundTo,
		SuggestedPrice:   RoundUp(minimum, in.RoundTo),
	}

	logging.Debug("price calculated",
		zap.Stringer("sales_target", result.SalesTarget),
		zap.Stringer("minimum_price", result.MinimumPrice),
		zap.Stringer("suggested_price", result.SuggestedPrice))
	return result, nil
}
