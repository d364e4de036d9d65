package ui

import (
	"strings"
)

// Style is a table layout. Each style has exactly one render function;
// which one runs is selected by configuration or the --format flag.
type Style int

const (
	// StyleBlank is padded columns with no borders (the default).
	StyleBlank Style = iota
	// StyleASCII draws classic +---+ borders.
	StyleASCII
	// StyleMarkdown emits a GitHub-flavored markdown table.
	StyleMarkdown
	// StyleCSV emits comma-separated values.
	StyleCSV
	// StylePSQL mimics psql's default output.
	StylePSQL
)

// StyleNames lists the accepted style names, in display order.
var StyleNames = []string{"blank", "ascii", "markdown", "csv", "psql"}

// ParseStyle maps a style name to a Style. Unknown names fall back to blank.
func ParseStyle(name string) Style {
	switch strings.ToLower(name) {
	case "ascii":
		return StyleASCII
	case "markdown":
		return StyleMarkdown
	case "csv":
		return StyleCSV
	case "psql":
		return StylePSQL
	default:
		return StyleBlank
	}
}

// Table collects rows for rendering in one of the supported styles.
type Table struct {
	header     []string
	rows       [][]string
	showHeader bool
}

// NewTable creates a table with the given header cells.
func NewTable(header ...string) *Table {
	return &Table{header: header, showHeader: len(header) > 0}
}

// HideHeader suppresses the header row.
func (t *Table) HideHeader() {
	t.showHeader = false
}

// AddRow appends a row; missing cells render empty.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// Empty reports whether the table has no data rows.
func (t *Table) Empty() bool {
	return len(t.rows) == 0
}

// Render renders the table in the given style.
func (t *Table) Render(style Style) string {
	switch style {
	case StyleASCII:
		return t.renderASCII()
	case StyleMarkdown:
		return t.renderMarkdown()
	case StyleCSV:
		return t.renderCSV()
	case StylePSQL:
		return t.renderPSQL()
	default:
		return t.renderBlank()
	}
}

func (t *Table) columns() int {
	cols := len(t.header)
	for _, row := range t.rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return cols
}

func (t *Table) widths() []int {
	widths := make([]int, t.columns())
	measure := func(row []string) {
		for i, cell := range row {
			if n := len([]rune(cell)); n > widths[i] {
				widths[i] = n
			}
		}
	}
	if t.showHeader {
		measure(t.header)
	}
	for _, row := range t.rows {
		measure(row)
	}
	return widths
}

func pad(cell string, width int) string {
	return cell + strings.Repeat(" ", width-len([]rune(cell)))
}

func (t *Table) paddedRow(row []string, widths []int, sep string, trimLast bool) string {
	cells := make([]string, len(widths))
	for i := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		cells[i] = pad(cell, widths[i])
	}
	line := strings.Join(cells, sep)
	if trimLast {
		line = strings.TrimRight(line, " ")
	}
	return line
}

func (t *Table) renderBlank() string {
	widths := t.widths()
	var sb strings.Builder
	if t.showHeader {
		sb.WriteString(t.paddedRow(t.header, widths, "  ", true))
		sb.WriteByte('\n')
	}
	for _, row := range t.rows {
		sb.WriteString(t.paddedRow(row, widths, "  ", true))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (t *Table) renderASCII() string {
	widths := t.widths()
	rule := asciiRule(widths)
	var sb strings.Builder
	sb.WriteString(rule)
	if t.showHeader {
		sb.WriteString("| " + t.paddedRow(t.header, widths, " | ", false) + " |\n")
		sb.WriteString(rule)
	}
	for _, row := range t.rows {
		sb.WriteString("| " + t.paddedRow(row, widths, " | ", false) + " |\n")
	}
	sb.WriteString(rule)
	return sb.String()
}

func asciiRule(widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("-", w+2)
	}
	return "+" + strings.Join(parts, "+") + "+\n"
}

func (t *Table) renderMarkdown() string {
	widths := t.widths()
	var sb strings.Builder
	if t.showHeader {
		sb.WriteString("| " + t.paddedRow(t.header, widths, " | ", false) + " |\n")
	} else {
		// Markdown tables need a header row; emit an empty one.
		sb.WriteString("| " + t.paddedRow(nil, widths, " | ", false) + " |\n")
	}
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("-", w)
	}
	sb.WriteString("| " + strings.Join(parts, " | ") + " |\n")
	for _, row := range t.rows {
		sb.WriteString("| " + t.paddedRow(row, widths, " | ", false) + " |\n")
	}
	return sb.String()
}

func (t *Table) renderCSV() string {
	var sb strings.Builder
	writeRow := func(row []string) {
		cells := make([]string, t.columns())
		for i := range cells {
			if i < len(row) {
				cells[i] = csvEscape(row[i])
			}
		}
		sb.WriteString(strings.Join(cells, ","))
		sb.WriteByte('\n')
	}
	if t.showHeader {
		writeRow(t.header)
	}
	for _, row := range t.rows {
		writeRow(row)
	}
	return sb.String()
}

func csvEscape(cell string) string {
	if strings.ContainsAny(cell, ",\"\n") {
		return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
	}
	return cell
}

func (t *Table) renderPSQL() string {
	widths := t.widths()
	var sb strings.Builder
	if t.showHeader {
		sb.WriteString(" " + t.paddedRow(t.header, widths, " | ", true) + "\n")
		parts := make([]string, len(widths))
		for i, w := range widths {
			parts[i] = strings.Repeat("-", w+2)
		}
		sb.WriteString(strings.Join(parts, "+") + "\n")
	}
	for _, row := range t.rows {
		sb.WriteString(" " + t.paddedRow(row, widths, " | ", true) + "\n")
	}
	return sb.String()
}
