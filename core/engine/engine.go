// Package engine runs one interactive price calculation.
// The CLI is a thin wrapper around this engine.
package engine

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"fundraiser/core/expense"
	"fundraiser/core/output"
	"fundraiser/core/pricing"
	"fundraiser/core/profit"
	"fundraiser/core/prompt"
	"fundraiser/core/types"
	"fundraiser/internal/logging"
)

// Instructions are shown when the user asks for them.
const Instructions = `This program will ask you for...
 - The name of the product you are selling
 - How many items you plan on selling
 - The cost for each component of the product
    (variable cost)
 - Whether or not you have fixed expenses (if you have
    fixed expenses, it will ask you what they are)
 - How much money you want to gain (profit goal)

It will also ask you how much the recommended sales price should be
rounded to.

Type %[1]q as an item name when a list of expenses is complete.
To use %[1]q as a real item name, type \%[1]s instead.

The program outputs an itemised list of the variable and
fixed expenses (which includes subtotal for these expenses)

Finally it will tell you how much you would sell for each item
to reach your goal.

The data will also be written to a text file which has the
same name as your product and also the date.`

// Config configures a calculation run
type Config struct {
	// DoneKeyword ends an expense list
	DoneKeyword string

	// SkipInstructions suppresses the instructions question
	SkipInstructions bool
}

// Engine asks every question of a run in order and returns the report.
type Engine struct {
	prompter  *prompt.Prompter
	collector *expense.Collector
	resolver  *profit.Resolver
	config    Config
	now       func() time.Time
}

// New creates an engine reading answers through p
func New(p *prompt.Prompter, cfg Config) *Engine {
	return &Engine{
		prompter:  p,
		collector: expense.NewCollector(p, cfg.DoneKeyword),
		resolver:  profit.NewResolver(p),
		config:    cfg,
		now:       time.Now,
	}
}

// WithClock replaces the date source used for the report
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Run performs the whole calculation: product details, variable then
// optional fixed expenses, profit goal and rounding.
func (e *Engine) Run(ctx context.Context) (*output.Report, error) {
	if !e.config.SkipInstructions {
		want, err := e.prompter.YesNo("Do you want to see the instructions? ")
		if err != nil {
			return nil, err
		}
		if want {
			e.prompter.Println("")
			e.prompter.Println(fmt.Sprintf(Instructions, e.config.DoneKeyword))
			e.prompter.Println("")
		}
	}

	product, err := e.prompter.NotBlank("Product Name: ")
	if err != nil {
		return nil, err
	}
	quantity, err := e.prompter.NumCheck("Quantity being made: ", prompt.Integer)
	if err != nil {
		return nil, err
	}
	made := quantity.IntPart()

	log := logging.With(zap.String("product", product), zap.Int64("quantity", made))
	log.Info("calculation started")

	e.prompter.Println("Let's get the variable expenses...")
	variable, err := e.collector.Collect(ctx, types.ExpenseVariable, made)
	if err != nil {
		return nil, fmt.Errorf("collecting variable expenses: %w", err)
	}

	fixed := types.NewExpenseTable(types.ExpenseFixed)
	hasFixed, err := e.prompter.YesNo("Do you have fixed expenses? ")
	if err != nil {
		return nil, err
	}
	if hasFixed {
		fixed, err = e.collector.Collect(ctx, types.ExpenseFixed, 1)
		if err != nil {
			return nil, fmt.Errorf("collecting fixed expenses: %w", err)
		}
	}

	total := pricing.TotalExpenses(variable.Subtotal(), fixed.Subtotal())
	goal, err := e.resolver.Resolve(ctx, total)
	if err != nil {
		return nil, fmt.Errorf("resolving profit goal: %w", err)
	}

	roundTo, err := e.prompter.NumCheck("Round To: ", prompt.Integer)
	if err != nil {
		return nil, err
	}

	price, err := pricing.Calculate(pricing.Input{
		Quantity:         made,
		VariableSubtotal: variable.Subtotal(),
		FixedSubtotal:    fixed.Subtotal(),
		ProfitGoal:       goal,
		RoundTo:          roundTo,
	})
	if err != nil {
		return nil, err
	}

	log.Info("calculation finished",
		zap.Stringer("total_expenses", price.TotalExpenses),
		zap.Stringer("suggested_price", price.SuggestedPrice))

	return &output.Report{
		ProductName: product,
		Date:        e.now(),
		Variable:    variable,
		Fixed:       fixed,
		Price:       price,
	}, nil
}
