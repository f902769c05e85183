package ui

import (
	"strings"
	"unicode/utf8"
)

// Cells are flattened to one line and capped so a single long title
// cannot blow out an entire listing.
const (
	cellWidthCap = 50
	cellEllipsis = "..."
	columnGap    = 2
)

// TableBuilder accumulates rows for an aligned plain-text table.
type TableBuilder struct {
	headers []string
	rows    [][]string
}

func NewTableBuilder(headers []string, capacity int) *TableBuilder {
	return &TableBuilder{headers: headers, rows: make([][]string, 0, capacity)}
}

func (builder *TableBuilder) AddRow(row []string) {
	builder.rows = append(builder.rows, row)
}

func (builder *TableBuilder) String() string {
	return FormatTable(builder.headers, builder.rows)
}

// FormatTable renders headers and rows with columns padded to the
// widest visible cell. Width math ignores ANSI color sequences, so
// styled cells line up with plain ones.
func FormatTable(headers []string, rows [][]string) string {
	lines := make([][]string, 0, len(rows)+1)
	lines = append(lines, flattenRow(headers))
	for _, row := range rows {
		lines = append(lines, flattenRow(row))
	}

	widths := make([]int, len(headers))
	for _, line := range lines {
		for i, cell := range line {
			if i >= len(widths) {
				break
			}
			if w := visibleWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var out strings.Builder
	for _, line := range lines {
		for i, cell := range line {
			out.WriteString(cell)
			if i < len(line)-1 {
				out.WriteString(strings.Repeat(" ", widths[i]-visibleWidth(cell)+columnGap))
			}
		}
		out.WriteByte('\n')
	}
	return out.String()
}

// TruncateTableCell caps a cell at the table's width limit, appending
// an ellipsis. ANSI sequences are carried through without counting
// toward the limit.
func TruncateTableCell(value string) string {
	value = flattenCell(value)
	if visibleWidth(value) <= cellWidthCap {
		return value
	}
	return cutVisible(value, cellWidthCap-len(cellEllipsis)) + cellEllipsis
}

var cellFlattener = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

func flattenCell(value string) string {
	return cellFlattener.Replace(value)
}

func flattenRow(row []string) []string {
	flat := make([]string, len(row))
	for i, cell := range row {
		flat[i] = flattenCell(cell)
	}
	return flat
}

func visibleWidth(value string) int {
	return utf8.RuneCountInString(stripANSICodes(value))
}

// cutVisible keeps the first max visible runes of value. Escape
// sequences before the cutoff pass through uncounted.
func cutVisible(value string, max int) string {
	var out strings.Builder
	visible := 0
	for i := 0; i < len(value); {
		if n := ansiSequenceAt(value, i); n > 0 {
			out.WriteString(value[i : i+n])
			i += n
			continue
		}
		if visible >= max {
			break
		}
		_, size := utf8.DecodeRuneInString(value[i:])
		out.WriteString(value[i : i+size])
		visible++
		i += size
	}
	return out.String()
}

// ansiSequenceAt returns the byte length of the SGR sequence starting
// at i, or 0 when there is none.
func ansiSequenceAt(value string, i int) int {
	if value[i] != '\x1b' || i+1 >= len(value) || value[i+1] != '[' {
		return 0
	}
	end := i + 2
	for end < len(value) && value[end] != 'm' {
		end++
	}
	if end < len(value) {
		end++
	}
	return end - i
}

// stripANSICodes drops everything from an escape byte through the next
// 'm', leaving only what the terminal displays.
func stripANSICodes(input string) string {
	var out strings.Builder
	out.Grow(len(input))
	for i := 0; i < len(input); i++ {
		if input[i] != '\x1b' {
			out.WriteByte(input[i])
			continue
		}
		for i < len(input) && input[i] != 'm' {
			i++
		}
	}
	return out.String()
}
