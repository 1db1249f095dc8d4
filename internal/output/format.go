package output

import (
	"strings"

	"github.com/samber/lo"
)

// OutputFormat specifies how a command prints structured data.
type OutputFormat string

const (
	// FormatText prints "KEY : value" lines.
	FormatText OutputFormat = "text"

	// FormatTable prints a bordered table.
	FormatTable OutputFormat = "table"

	// FormatYAML prints YAML.
	FormatYAML OutputFormat = "yaml"

	// FormatJSON prints JSON.
	FormatJSON OutputFormat = "json"
)

var validFormats = []OutputFormat{FormatText, FormatTable, FormatYAML, FormatJSON}

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	return string(f)
}

// Valid checks if the output format is known.
func (f OutputFormat) Valid() bool {
	return lo.Contains(validFormats, f)
}

// ParseOutputFormat parses a string into an OutputFormat.
// The second result is false when the string names no known format.
func ParseOutputFormat(s string) (OutputFormat, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, true
	case "table":
		return FormatTable, true
	case "yaml", "yml":
		return FormatYAML, true
	case "json":
		return FormatJSON, true
	default:
		return OutputFormat(s), false
	}
}

// ValidFormats returns the valid output format strings.
func ValidFormats() []string {
	return lo.Map(validFormats, func(f OutputFormat, _ int) string { return string(f) })
}
