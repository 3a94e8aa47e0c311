package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestTableString(t *testing.T) {
	table := NewTable("Item", "Cost").AlignRight(1)
	table.AddRow("flour", "$20.00")
	table.AddRow("eggs", "$3.00")

	want := strings.Join([]string{
		"+-------+--------+",
		"| Item  | Cost   |",
		"|-------+--------|",
		"| flour | $20.00 |",
		"| eggs  |  $3.00 |",
		"+-------+--------+",
	}, "\n")

	if got := table.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestTableWideCharacters(t *testing.T) {
	table := NewTable("Item")
	table.AddRow("🍪 cookies")

	lines := strings.Split(table.String(), "\n")
	// the emoji takes two cells, so the data row must be as wide as the border
	if got, want := runewidth.StringWidth(lines[3]), len(lines[0]); got != want {
		t.Errorf("row width = %d, border width = %d\n%s", got, want, table.String())
	}
}

func TestTablePadsShortRows(t *testing.T) {
	table := NewTable("A", "B", "C")
	table.AddRow("1")
	if !strings.Contains(table.String(), "| 1 |   |   |") {
		t.Errorf("short row not padded:\n%s", table.String())
	}
}

func TestWriterNoColor(t *testing.T) {
	var out bytes.Buffer
	w := NewWriter(&out, true)

	w.Success("saved %s", "report.txt")
	w.Info("reports are disabled")
	w.Header("Fund Raising Calculator")

	if strings.Contains(out.String(), "\x1b[") {
		t.Errorf("expected no escape codes, got %q", out.String())
	}
	if !strings.Contains(out.String(), "✓ saved report.txt") {
		t.Errorf("missing success line: %q", out.String())
	}
	if !strings.Contains(out.String(), "ℹ reports are disabled") {
		t.Errorf("missing info line: %q", out.String())
	}
}

func TestStatement(t *testing.T) {
	if got := Statement("Fixed Expenses", "-"); got != "--- Fixed Expenses ---" {
		t.Errorf("Statement() = %q", got)
	}
}
