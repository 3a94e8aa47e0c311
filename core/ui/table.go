package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table renders rows in a boxed, psql-like layout. Widths are measured in
// terminal cells so emoji and wide characters line up.
type Table struct {
	headers []string
	rows    [][]string
	widths  []int
	right   []bool
}

// NewTable creates a table
func NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	return &Table{
		headers: headers,
		widths:  widths,
		right:   make([]bool, len(headers)),
	}
}

// AlignRight right-aligns the given columns
func (t *Table) AlignRight(cols ...int) *Table {
	for _, c := range cols {
		if c >= 0 && c < len(t.right) {
			t.right[c] = true
		}
	}
	return t
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	// Pad or truncate cells to match header count
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
		if w := runewidth.StringWidth(row[i]); w > t.widths[i] {
			t.widths[i] = w
		}
	}
	t.rows = append(t.rows, row)
}

// String renders the table without colors
func (t *Table) String() string {
	var b strings.Builder

	border := t.rule("+", "+", "+")
	b.WriteString(border)
	b.WriteString(t.line(t.headers, false))
	b.WriteString(t.rule("|", "+", "|"))
	for _, row := range t.rows {
		b.WriteString(t.line(row, true))
	}
	b.WriteString(border)

	return strings.TrimSuffix(b.String(), "\n")
}

func (t *Table) rule(left, mid, right string) string {
	parts := make([]string, len(t.widths))
	for i, width := range t.widths {
		parts[i] = strings.Repeat("-", width+2)
	}
	return left + strings.Join(parts, mid) + right + "\n"
}

func (t *Table) line(cells []string, align bool) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		if align && t.right[i] {
			parts[i] = " " + runewidth.FillLeft(cell, t.widths[i]) + " "
		} else {
			parts[i] = " " + runewidth.FillRight(cell, t.widths[i]) + " "
		}
	}
	return "|" + strings.Join(parts, "|") + "|\n"
}
