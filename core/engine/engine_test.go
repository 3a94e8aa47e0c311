package engine

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"fundraiser/core/prompt"
	"fundraiser/internal/errors"
)

func run(t *testing.T, cfg Config, lines ...string) (*bytes.Buffer, *Engine) {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	e := New(prompt.New(in, &out), cfg).WithClock(func() time.Time {
		return time.Date(2026, time.October, 16, 0, 0, 0, 0, time.UTC)
	})
	return &out, e
}

func TestRunEndToEnd(t *testing.T) {
	out, e := run(t, Config{DoneKeyword: "xxx"},
		"no",                    // instructions
		"Cookies",               // product
		"10",                    // quantity
		"flour", "", "2", "xxx", // variable expenses
		"no",                    // fixed expenses
		"$30",                   // profit goal
		"1",                     // round to
	)

	report, err := e.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v\noutput: %s", err, out.String())
	}

	price := report.Price
	checks := []struct {
		field string
		got   decimal.Decimal
		want  int64
	}{
		{"VariableSubtotal", price.VariableSubtotal, 20},
		{"FixedSubtotal", price.FixedSubtotal, 0},
		{"TotalExpenses", price.TotalExpenses, 20},
		{"SalesTarget", price.SalesTarget, 50},
		{"MinimumPrice", price.MinimumPrice, 5},
		{"SuggestedPrice", price.SuggestedPrice, 5},
	}
	for _, c := range checks {
		if !c.got.Equal(decimal.NewFromInt(c.want)) {
			t.Errorf("%s = %s, want %d", c.field, c.got, c.want)
		}
	}
	if report.ProductName != "Cookies" {
		t.Errorf("ProductName = %q", report.ProductName)
	}
	if report.HasFixed() {
		t.Error("report should have no fixed expenses")
	}
	if report.Date.Year() != 2026 {
		t.Errorf("Date = %v, want injected clock", report.Date)
	}
}

func TestRunWithFixedAndPercentGoal(t *testing.T) {
	out, e := run(t, Config{DoneKeyword: "done", SkipInstructions: true},
		"Candles",
		"20",
		"wax", "", "3", "wicks", "40", "0.1", "done",
		"y",
		"stall", "50", "done",
		"25%",
		"5",
	)

	report, err := e.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v\noutput: %s", err, out.String())
	}

	// variable 60 + 4, fixed 50, goal 25% of 114 = 28.5, target 142.5, min 7.125
	price := report.Price
	if !price.TotalExpenses.Equal(decimal.NewFromInt(114)) {
		t.Errorf("TotalExpenses = %s, want 114", price.TotalExpenses)
	}
	if !price.ProfitGoal.Equal(decimal.RequireFromString("28.5")) {
		t.Errorf("ProfitGoal = %s, want 28.5", price.ProfitGoal)
	}
	if !price.MinimumPrice.Equal(decimal.RequireFromString("7.125")) {
		t.Errorf("MinimumPrice = %s, want 7.125", price.MinimumPrice)
	}
	if !price.SuggestedPrice.Equal(decimal.NewFromInt(10)) {
		t.Errorf("SuggestedPrice = %s, want 10", price.SuggestedPrice)
	}
	if !report.HasFixed() {
		t.Error("report should have fixed expenses")
	}
	if strings.Contains(out.String(), "instructions") {
		t.Error("instructions question should be skipped")
	}
}

func TestRunShowsInstructions(t *testing.T) {
	out, e := run(t, Config{DoneKeyword: "xxx"}, "yes")

	_, err := e.Run(context.Background())
	if !errors.IsType(err, errors.TypeAborted) {
		t.Fatalf("expected ABORTED after input ran out, got %v", err)
	}
	if !strings.Contains(out.String(), `Type "xxx" as an item name`) {
		t.Errorf("instructions not shown:\n%s", out.String())
	}
	if !strings.Contains(out.String(), `type \xxx instead`) {
		t.Errorf("escape hint not shown:\n%s", out.String())
	}
}
