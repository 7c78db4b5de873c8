package formatting

import (
	"fmt"
)

// ConsoleFormatter writes plain text. Strings and fmt.Stringer values are
// written as they are; anything else is shown as indented JSON.
type ConsoleFormatter struct {
	options Options
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter(options Options) Formatter {
	return &ConsoleFormatter{
		options: options,
	}
}

// FormatData writes data to the configured writer.
func (f *ConsoleFormatter) FormatData(data interface{}) error {
	var out string
	switch v := data.(type) {
	case string:
		out = v
	case fmt.Stringer:
		out = v.String()
	default:
		var err error
		if out, err = encodeJSON(v, false); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(f.options.writer(), out)
	return err
}

// SetOptions updates the formatter options
func (f *ConsoleFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *ConsoleFormatter) GetOptions() Options {
	return f.options
}
