package prompt

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"fundraiser/internal/errors"
)

// NumKind selects how a numeric answer is parsed
type NumKind int

const (
	// Float accepts any decimal number
	Float NumKind = iota

	// Integer accepts whole numbers only
	Integer
)

// ErrorMessage is printed when an answer of this kind is rejected
func (k NumKind) ErrorMessage() string {
	if k == Integer {
		return "Please enter an integer more than 0."
	}
	return "Please enter a number more than 0."
}

// NumberAnswer is a validated numeric answer, or the skip marker.
type NumberAnswer struct {
	Value   decimal.Decimal
	Skipped bool
}

// ParseNumber parses raw as kind and requires it to be strictly positive.
func ParseNumber(raw string, kind NumKind) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)

	var value decimal.Decimal
	switch kind {
	case Integer:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return decimal.Zero, errors.Wrap(errors.TypeInvalidNumberFormat, kind.ErrorMessage(), err)
		}
		value = decimal.NewFromInt(n)
	default:
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, errors.Wrap(errors.TypeInvalidNumberFormat, kind.ErrorMessage(), err)
		}
		value = d
	}

	if !value.IsPositive() {
		return decimal.Zero, errors.New(errors.TypeNonPositiveNumber, kind.ErrorMessage()).
			WithContext("value", value.String())
	}
	return value, nil
}

// NumCheck asks until the answer parses as a positive number of kind.
func (p *Prompter) NumCheck(question string, kind NumKind) (decimal.Decimal, error) {
	answer, err := p.numCheck(question, kind, nil)
	return answer.Value, err
}

// NumCheckOrSkip is NumCheck that also accepts skip verbatim, reported
// as Skipped without any parsing.
func (p *Prompter) NumCheckOrSkip(question string, kind NumKind, skip string) (NumberAnswer, error) {
	return p.numCheck(question, kind, &skip)
}

func (p *Prompter) numCheck(question string, kind NumKind, skip *string) (NumberAnswer, error) {
	for {
		raw, err := p.Ask(question)
		if err != nil {
			return NumberAnswer{}, err
		}
		if skip != nil && raw == *skip {
			return NumberAnswer{Skipped: true}, nil
		}

		value, err := ParseNumber(raw, kind)
		if err == nil {
			return NumberAnswer{Value: value}, nil
		}
		p.reject(err)
	}
}
