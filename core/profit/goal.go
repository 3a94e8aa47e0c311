// Package profit parses and resolves the seller's profit goal.
package profit

import (
	"strings"

	"github.com/shopspring/decimal"

	"fundraiser/internal/errors"
)

// Kind tags how a profit goal amount should be read
type Kind int

const (
	// Unknown means the answer had neither a "$" prefix nor a "%" suffix
	Unknown Kind = iota

	// Dollar is an absolute amount
	Dollar

	// Percent is a percentage of total cost
	Percent
)

// String returns the string representation
func (k Kind) String() string {
	switch k {
	case Dollar:
		return "dollar"
	case Percent:
		return "percent"
	default:
		return "unknown"
	}
}

// InvalidGoalMessage is printed when a goal cannot be parsed.
const InvalidGoalMessage = "Please enter a valid profit goal"

// DollarThreshold splits unmarked answers: at or above it the answer is
// probably dollars, below it probably a percentage.
var DollarThreshold = decimal.NewFromInt(100)

// Goal is a parsed, not yet resolved, profit goal.
type Goal struct {
	Kind   Kind
	Amount decimal.Decimal
}

// Parse classifies raw as "$N", "N%" or a bare number and requires the
// number to be positive.
func Parse(raw string) (Goal, error) {
	s := strings.TrimSpace(raw)

	goal := Goal{Kind: Unknown}
	number := s
	switch {
	case strings.HasPrefix(s, "$"):
		goal.Kind = Dollar
		number = s[1:]
	case strings.HasSuffix(s, "%"):
		goal.Kind = Percent
		number = s[:len(s)-1]
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(number))
	if err != nil {
		return Goal{}, errors.Wrap(errors.TypeInvalidProfitGoalFormat, InvalidGoalMessage, err)
	}
	if !amount.IsPositive() {
		return Goal{}, errors.New(errors.TypeInvalidProfitGoalFormat, InvalidGoalMessage).
			WithContext("amount", amount.String())
	}

	goal.Amount = amount
	return goal, nil
}

// Value converts a Dollar or Percent goal into dollars. Unknown goals
// must be disambiguated first.
func (g Goal) Value(totalCost decimal.Decimal) (decimal.Decimal, error) {
	switch g.Kind {
	case Dollar:
		return g.Amount, nil
	case Percent:
		return g.Amount.Div(decimal.NewFromInt(100)).Mul(totalCost), nil
	default:
		return decimal.Zero, errors.Internal("profit goal kind was never resolved", nil)
	}
}
