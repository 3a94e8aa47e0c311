package profit

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"fundraiser/core/prompt"
	"fundraiser/internal/logging"
)

// GoalQuestion asks for the profit goal.
const GoalQuestion = "What is your profit goal (eg $500 or 50%): "

// Resolver asks for a profit goal and turns it into a dollar amount.
type Resolver struct {
	prompter *prompt.Prompter
}

// NewResolver creates a Resolver
func NewResolver(p *prompt.Prompter) *Resolver {
	return &Resolver{prompter: p}
}

// Resolve asks until a goal is given and its kind is settled, then returns
// the goal in dollars. Percentages are taken of totalCost.
func (r *Resolver) Resolve(ctx context.Context, totalCost decimal.Decimal) (decimal.Decimal, error) {
	for {
		if err := ctx.Err(); err != nil {
			return decimal.Zero, err
		}

		raw, err := r.prompter.Ask(GoalQuestion)
		if err != nil {
			return decimal.Zero, err
		}

		goal, err := Parse(raw)
		if err != nil {
			logging.Debug("profit goal rejected", zap.String("answer", raw))
			r.prompter.Println(InvalidGoalMessage)
			continue
		}

		if goal.Kind == Unknown {
			kind, err := r.disambiguate(goal.Amount)
			if err != nil {
				return decimal.Zero, err
			}
			if kind == Unknown {
				// neither reading was confirmed; ask again from scratch
				continue
			}
			goal.Kind = kind
		}

		value, err := goal.Value(totalCost)
		if err != nil {
			return decimal.Zero, err
		}
		logging.Info("profit goal resolved",
			zap.Stringer("kind", goal.Kind),
			zap.Stringer("amount", goal.Amount),
			zap.Stringer("value", value))
		return value, nil
	}
}

// disambiguate confirms the likelier reading of a bare number first. A
// rejected percentage is offered as dollars before giving up.
func (r *Resolver) disambiguate(amount decimal.Decimal) (Kind, error) {
	dollarQuestion := fmt.Sprintf("Do you mean $%s? (yes, no) ", amount.StringFixed(2))
	percentQuestion := fmt.Sprintf("Do you mean %s%%? (yes, no) ", amount.String())

	if amount.GreaterThanOrEqual(DollarThreshold) {
		yes, err := r.prompter.YesNo(dollarQuestion)
		if err != nil {
			return Unknown, err
		}
		if yes {
			return Dollar, nil
		}
		return Percent, nil
	}

	yes, err := r.prompter.YesNo(percentQuestion)
	if err != nil {
		return Unknown, err
	}
	if yes {
		return Percent, nil
	}

	yes, err = r.prompter.YesNo(dollarQuestion)
	if err != nil {
		return Unknown, err
	}
	if yes {
		return Dollar, nil
	}
	return Unknown, nil
}
