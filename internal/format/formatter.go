// Package format renders tables of stations, actions, alarms and plays for the CLI.
package format

import (
	"io"
	"strings"
)

// Formatter writes a table in some output style.
type Formatter interface {
	Format(t Table, writer io.Writer) error
}

// FormatterType represents the type of formatter to use.
type FormatterType string

const (
	// FormatterTypeSimple prints one tab separated line per row, no header.
	FormatterTypeSimple FormatterType = "simple"

	// FormatterTypeTable prints aligned columns with a header.
	FormatterTypeTable FormatterType = "table"

	// FormatterTypeJSON prints a JSON array of objects keyed by column.
	FormatterTypeJSON FormatterType = "json"
)

// ParseFormatterType returns the formatter type for name, defaulting to table.
func ParseFormatterType(name string) FormatterType {
	switch FormatterType(strings.ToLower(strings.TrimSpace(name))) {
	case FormatterTypeSimple:
		return FormatterTypeSimple
	case FormatterTypeJSON:
		return FormatterTypeJSON
	default:
		return FormatterTypeTable
	}
}

// NewFormatter creates a new formatter of the specified type.
func NewFormatter(formatterType FormatterType) Formatter {
	switch formatterType {
	case FormatterTypeSimple:
		return NewSimpleFormatter()
	case FormatterTypeJSON:
		return NewJSONFormatter()
	default:
		return NewTableFormatter()
	}
}
