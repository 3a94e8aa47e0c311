// Package expense collects expense line items interactively.
package expense

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"fundraiser/core/prompt"
	"fundraiser/core/types"
	"fundraiser/internal/logging"
)

// NoItemsMessage is printed when a variable list is ended while empty.
const NoItemsMessage = "Oops you have not entered anything. You need at least one item."

// Collector gathers line items until the user types the done keyword.
type Collector struct {
	prompter    *prompt.Prompter
	doneKeyword string
}

// NewCollector creates a collector that ends a list on doneKeyword
func NewCollector(p *prompt.Prompter, doneKeyword string) *Collector {
	return &Collector{
		prompter:    p,
		doneKeyword: doneKeyword,
	}
}

// Collect builds a table of the given kind. For variable expenses an empty
// quantity answer means defaultQuantity; fixed expenses always have
// quantity 1. A variable table is never returned empty.
func (c *Collector) Collect(ctx context.Context, kind types.ExpenseKind, defaultQuantity int64) (*types.ExpenseTable, error) {
	table := types.NewExpenseTable(kind)
	log := logging.With(zap.Stringer("kind", kind))

	priceQuestion := "How much? $"
	if kind == types.ExpenseVariable {
		priceQuestion = "Price for one? $"
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entry, err := c.prompter.Entry("Item Name: ", c.doneKeyword)
		if err != nil {
			return nil, err
		}

		if entry.Done {
			if table.CanFinish() {
				break
			}
			c.prompter.Println(NoItemsMessage)
			continue
		}

		quantity := int64(1)
		if kind == types.ExpenseVariable {
			answer, err := c.prompter.NumCheckOrSkip(
				fmt.Sprintf("How many <enter for %d>: ", defaultQuantity), prompt.Integer, "")
			if err != nil {
				return nil, err
			}
			quantity = defaultQuantity
			if !answer.Skipped {
				quantity = answer.Value.IntPart()
			}
		}

		price, err := c.prompter.NumCheck(priceQuestion, prompt.Float)
		if err != nil {
			return nil, err
		}

		item := types.LineItem{Name: entry.Text, Quantity: quantity, UnitPrice: price}
		table.Add(item)
		log.Debug("expense accepted",
			zap.String("item", item.Name),
			zap.Int64("quantity", item.Quantity),
			zap.Stringer("unit_price", item.UnitPrice))
	}

	log.Info("expenses collected",
		zap.Int("items", table.Len()),
		zap.Stringer("subtotal", table.Subtotal()))
	return table, nil
}
