package profit

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"fundraiser/core/prompt"
	"fundraiser/internal/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		raw     string
		kind    Kind
		amount  string
		wantErr bool
	}{
		{raw: "$250", kind: Dollar, amount: "250"},
		{raw: "25%", kind: Percent, amount: "25"},
		{raw: "150", kind: Unknown, amount: "150"},
		{raw: " $12.50 ", kind: Dollar, amount: "12.5"},
		{raw: "", wantErr: true},
		{raw: "$", wantErr: true},
		{raw: "%", wantErr: true},
		{raw: "lots", wantErr: true},
		{raw: "$0", wantErr: true},
		{raw: "-10%", wantErr: true},
		{raw: "$50%", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			goal, err := Parse(tt.raw)
			if tt.wantErr {
				if !errors.IsType(err, errors.TypeInvalidProfitGoalFormat) {
					t.Fatalf("Parse(%q) error = %v, want INVALID_PROFIT_GOAL_FORMAT", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.raw, err)
			}
			if goal.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", goal.Kind, tt.kind)
			}
			if !goal.Amount.Equal(decimal.RequireFromString(tt.amount)) {
				t.Errorf("amount = %s, want %s", goal.Amount, tt.amount)
			}
		})
	}
}

func TestGoalValueUnknownIsAnError(t *testing.T) {
	_, err := Goal{Kind: Unknown, Amount: decimal.NewFromInt(5)}.Value(decimal.NewFromInt(100))
	if !errors.IsType(err, errors.TypeInternal) {
		t.Fatalf("expected INTERNAL_ERROR, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	totalCost := decimal.NewFromInt(1000)

	tests := []struct {
		name    string
		input   []string
		want    string
		invalid int
	}{
		{name: "dollar", input: []string{"$250"}, want: "250"},
		{name: "percent", input: []string{"25%"}, want: "250"},
		{name: "large bare number confirmed as dollars", input: []string{"150", "yes"}, want: "150"},
		{name: "large bare number read as percent", input: []string{"150", "no"}, want: "1500"},
		{name: "small bare number confirmed as percent", input: []string{"25", "y"}, want: "250"},
		{name: "small bare number rejected as percent then dollars", input: []string{"25", "n", "yes"}, want: "25"},
		{name: "neither reading restarts", input: []string{"25", "n", "n", "$40"}, want: "40"},
		{name: "invalid then valid", input: []string{"abc", "", "0", "$30"}, want: "30", invalid: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			in := strings.NewReader(strings.Join(tt.input, "\n") + "\n")
			r := NewResolver(prompt.New(in, &out))

			got, err := r.Resolve(context.Background(), totalCost)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("Resolve = %s, want %s", got, tt.want)
			}
			if n := strings.Count(out.String(), InvalidGoalMessage); n != tt.invalid {
				t.Errorf("invalid message printed %d times, want %d", n, tt.invalid)
			}
		})
	}
}

func TestResolveQuestions(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("150\nyes\n")
	if _, err := NewResolver(prompt.New(in, &out)).Resolve(context.Background(), decimal.NewFromInt(10)); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !strings.Contains(out.String(), "Do you mean $150.00?") {
		t.Errorf("missing dollar confirmation, output: %s", out.String())
	}

	out.Reset()
	in = strings.NewReader("50\nyes\n")
	if _, err := NewResolver(prompt.New(in, &out)).Resolve(context.Background(), decimal.NewFromInt(10)); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !strings.Contains(out.String(), "Do you mean 50%?") {
		t.Errorf("missing percent confirmation, output: %s", out.String())
	}
}
