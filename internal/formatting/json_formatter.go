package formatting

import (
	"fmt"
)

// JSONFormatter writes data as JSON.
type JSONFormatter struct {
	options Options
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(options Options) Formatter {
	return &JSONFormatter{
		options: options,
	}
}

// FormatData writes data as indented JSON, or compact JSON in quiet mode.
func (f *JSONFormatter) FormatData(data interface{}) error {
	out, err := encodeJSON(data, f.options.Quiet)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(f.options.writer(), out)
	return err
}

// SetOptions updates the formatter options
func (f *JSONFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *JSONFormatter) GetOptions() Options {
	return f.options
}
