package formatting

import (
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	dbtstrings "github.com/giantswarm/dbterra/pkg/strings"
)

// TableFormatter writes data as a rounded go-pretty table.
type TableFormatter struct {
	options Options
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(options Options) Formatter {
	return &TableFormatter{
		options: options,
	}
}

// FormatData writes Tabular values as a table with their own columns, maps as
// key/value tables and slices as numbered lists.
func (f *TableFormatter) FormatData(data interface{}) error {
	switch v := data.(type) {
	case Tabular:
		return f.formatTabular(v)
	case map[string]interface{}:
		return f.formatObjectData(v)
	case []interface{}:
		return f.formatArrayData(v)
	default:
		out, err := encodeJSON(v, false)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(f.options.writer(), out)
		return err
	}
}

// SetOptions updates the formatter options
func (f *TableFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *TableFormatter) GetOptions() Options {
	return f.options
}

// createTable creates a new table with standard styling
func (f *TableFormatter) createTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(f.options.writer())
	t.SetStyle(table.StyleRounded)
	return t
}

func (f *TableFormatter) header(s string) string {
	if !f.options.Color {
		return s
	}
	return text.FgHiCyan.Sprint(s)
}

func (f *TableFormatter) formatTabular(data Tabular) error {
	t := f.createTable()

	headers := data.Headers()
	row := make(table.Row, len(headers))
	for i, h := range headers {
		row[i] = f.header(h)
	}
	t.AppendHeader(row)

	for _, cells := range data.Rows() {
		r := make(table.Row, len(cells))
		for i, c := range cells {
			r[i] = c
		}
		t.AppendRow(r)
	}

	t.Render()
	return nil
}

// formatObjectData formats object data as key-value pairs
func (f *TableFormatter) formatObjectData(data map[string]interface{}) error {
	t := f.createTable()
	t.AppendHeader(table.Row{f.header("KEY"), f.header("VALUE")})

	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		t.AppendRow(table.Row{
			key,
			dbtstrings.SingleLine(fmt.Sprintf("%v", data[key]), dbtstrings.CellMaxLen),
		})
	}

	t.Render()
	return nil
}

// formatArrayData formats array data as a numbered list
func (f *TableFormatter) formatArrayData(data []interface{}) error {
	w := f.options.writer()
	if len(data) == 0 {
		_, err := fmt.Fprintln(w, "No items found")
		return err
	}

	for i, item := range data {
		fmt.Fprintf(w, "  %d. %v\n", i+1, item)
	}
	_, err := fmt.Fprintf(w, "\nTotal: %d items\n", len(data))
	return err
}
