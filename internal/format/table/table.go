package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Table collects rows and renders them with every column padded to its
// widest cell. Widths are measured in terminal cells, so styled or wide
// text lines up.
type Table struct {
	align []Alignment
	rows  [][]string
	cols  int
}

// New returns a table whose columns use the given alignments; columns past
// the list align left.
func New(align ...Alignment) *Table {
	return &Table{align: align}
}

// Row appends a row. Short rows are padded with empty cells.
func (t *Table) Row(cells ...string) {
	if len(cells) > t.cols {
		t.cols = len(cells)
	}
	t.rows = append(t.rows, cells)
}

// Len reports the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Lines renders each row. Trailing padding is dropped.
func (t *Table) Lines() []string {
	if len(t.rows) == 0 {
		return nil
	}
	widths := make([]int, t.cols)
	for _, row := range t.rows {
		for c, cell := range row {
			if w := ansi.StringWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	out := make([]string, len(t.rows))
	for i, row := range t.rows {
		var b strings.Builder
		for c := 0; c < t.cols; c++ {
			var cell string
			if c < len(row) {
				cell = row[c]
			}
			if c > 0 {
				b.WriteString("  ")
			}
			pad := widths[c] - ansi.StringWidth(cell)
			if c < len(t.align) && t.align[c] == AlignRight {
				b.WriteString(strings.Repeat(" ", pad))
				b.WriteString(cell)
				continue
			}
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", pad))
		}
		out[i] = strings.TrimRight(b.String(), " ")
	}
	return out
}

// String joins the rendered lines with newlines.
func (t *Table) String() string {
	lines := t.Lines()
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
