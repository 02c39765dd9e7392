package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cristianoliveira/station-menu/internal/colors"
)

// Column describes one column of a Table.
type Column struct {
	// Name is the header shown by the table formatter.
	Name string
	// Key is the JSON field name.
	Key string
	// Width is the table column width. Zero means as wide as the content.
	Width int
	// Alignment is left, right or center.
	Alignment string
}

// Table is a set of rows with one value per column.
type Table struct {
	Columns []Column
	Rows    [][]string
}

// SimpleFormatter prints rows as tab separated values.
type SimpleFormatter struct{}

// NewSimpleFormatter creates a new SimpleFormatter.
func NewSimpleFormatter() *SimpleFormatter {
	return &SimpleFormatter{}
}

// Format implements Formatter.
func (f *SimpleFormatter) Format(t Table, writer io.Writer) error {
	for _, row := range t.Rows {
		if _, err := fmt.Fprintln(writer, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}

// TableFormatter prints aligned columns with a colored header.
type TableFormatter struct {
	ShowHeaders bool
	HeaderColor string
}

// NewTableFormatter creates a new TableFormatter with headers enabled.
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{ShowHeaders: true, HeaderColor: colors.Blue}
}

// Format implements Formatter.
func (f *TableFormatter) Format(t Table, writer io.Writer) error {
	if len(t.Rows) == 0 {
		return nil
	}
	widths := columnWidths(t)
	if f.ShowHeaders {
		names := make([]string, len(t.Columns))
		seps := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			names[i] = formatString(col.Name, widths[i], "left")
			seps[i] = makeSeparator(widths[i])
		}
		if err := f.writeLine(writer, names, true); err != nil {
			return err
		}
		if err := f.writeLine(writer, seps, true); err != nil {
			return err
		}
	}
	for _, row := range t.Rows {
		cells := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			cells[i] = truncateString(cell(row, i), widths[i], col.Alignment)
		}
		if err := f.writeLine(writer, cells, false); err != nil {
			return err
		}
	}
	return nil
}

func (f *TableFormatter) writeLine(writer io.Writer, cells []string, header bool) error {
	line := strings.TrimRight(strings.Join(cells, "  "), " ")
	if header && f.HeaderColor != "" {
		line = f.HeaderColor + line + colors.Reset
	}
	_, err := fmt.Fprintln(writer, line)
	return err
}

// JSONFormatter prints rows as a JSON array of objects.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format implements Formatter.
func (f *JSONFormatter) Format(t Table, writer io.Writer) error {
	out := make([]map[string]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		obj := make(map[string]string, len(t.Columns))
		for i, col := range t.Columns {
			key := col.Key
			if key == "" {
				key = strings.ToLower(col.Name)
			}
			obj[key] = cell(row, i)
		}
		out = append(out, obj)
	}
	enc := json.NewEncoder(writer)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func columnWidths(t Table) []int {
	widths := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		if col.Width > 0 {
			widths[i] = col.Width
			continue
		}
		widths[i] = len(col.Name)
		for _, row := range t.Rows {
			if n := len(cell(row, i)); n > widths[i] {
				widths[i] = n
			}
		}
	}
	return widths
}

// formatString pads s to width with the given alignment, cutting it if longer.
func formatString(s string, width int, alignment string) string {
	if len(s) >= width {
		return s[:width]
	}

	switch alignment {
	case "right":
		return strings.Repeat(" ", width-len(s)) + s
	case "center":
		left := (width - len(s)) / 2
		right := width - len(s) - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", width-len(s))
	}
}

// truncateString fits s in width, adding "..." if truncated.
func truncateString(s string, width int, alignment string) string {
	if len(s) <= width {
		return formatString(s, width, alignment)
	}
	if width < 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}

// makeSeparator creates a separator line of the specified width.
func makeSeparator(width int) string {
	return strings.Repeat("-", width)
}
