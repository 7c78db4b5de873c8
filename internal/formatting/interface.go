// Package formatting renders command results in the output formats the CLI
// supports (console, JSON, YAML, table).
package formatting

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// OutputFormat represents the desired output format
type OutputFormat string

const (
	FormatConsole OutputFormat = "console" // Simple console output
	FormatJSON    OutputFormat = "json"    // JSON output
	FormatYAML    OutputFormat = "yaml"    // YAML output
	FormatTable   OutputFormat = "table"   // Rich table output
)

// ValidFormats lists every supported output format.
var ValidFormats = []OutputFormat{FormatConsole, FormatJSON, FormatYAML, FormatTable}

// ParseOutputFormat maps a --output value to an OutputFormat. Matching is
// case insensitive and an empty value selects the console format.
func ParseOutputFormat(s string) (OutputFormat, error) {
	if s == "" {
		return FormatConsole, nil
	}
	for _, f := range ValidFormats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	names := make([]string, len(ValidFormats))
	for i, f := range ValidFormats {
		names[i] = string(f)
	}
	return "", fmt.Errorf("unsupported output format %q (valid: %s)", s, strings.Join(names, ", "))
}

// Options configures the formatter behavior
type Options struct {
	Format OutputFormat
	Quiet  bool      // Suppress decorative elements
	Color  bool      // Enable colored output
	Writer io.Writer // Defaults to os.Stdout
}

func (o Options) writer() io.Writer {
	if o.Writer == nil {
		return os.Stdout
	}
	return o.Writer
}

// Tabular is implemented by values that can be shown as a table.
type Tabular interface {
	Headers() []string
	Rows() [][]string
}

// Formatter writes command results in one output format.
type Formatter interface {
	FormatData(data interface{}) error

	SetOptions(options Options)
	GetOptions() Options
}

// Factory creates formatters for different output formats
type Factory interface {
	CreateFormatter(options Options) Formatter
}

// NewFactory creates a new formatter factory
func NewFactory() Factory {
	return &factory{}
}

// factory implements the Factory interface
type factory struct{}

// CreateFormatter creates the appropriate formatter based on options
func (f *factory) CreateFormatter(options Options) Formatter {
	switch options.Format {
	case FormatJSON:
		return NewJSONFormatter(options)
	case FormatYAML:
		return NewYAMLFormatter(options)
	case FormatTable:
		return NewTableFormatter(options)
	case FormatConsole:
		fallthrough
	default:
		return NewConsoleFormatter(options)
	}
}
