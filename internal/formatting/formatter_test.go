package formatting

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbtstrings "github.com/giantswarm/dbterra/pkg/strings"
)

type fakeTable struct{}

func (fakeTable) Headers() []string { return []string{"PROJECT", "CREATE"} }
func (fakeTable) Rows() [][]string {
	return [][]string{{"analytics", "1"}, {"TOTAL", "1"}}
}

type stringer struct{}

func (stringer) String() string { return "daily run" }

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    OutputFormat
		wantErr bool
	}{
		{input: "", want: FormatConsole},
		{input: "console", want: FormatConsole},
		{input: "JSON", want: FormatJSON},
		{input: "yaml", want: FormatYAML},
		{input: "table", want: FormatTable},
		{input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "console, json, yaml, table")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFactory_CreateFormatter(t *testing.T) {
	factory := NewFactory()

	assert.IsType(t, &JSONFormatter{}, factory.CreateFormatter(Options{Format: FormatJSON}))
	assert.IsType(t, &YAMLFormatter{}, factory.CreateFormatter(Options{Format: FormatYAML}))
	assert.IsType(t, &TableFormatter{}, factory.CreateFormatter(Options{Format: FormatTable}))
	assert.IsType(t, &ConsoleFormatter{}, factory.CreateFormatter(Options{Format: FormatConsole}))
	assert.IsType(t, &ConsoleFormatter{}, factory.CreateFormatter(Options{}))
}

func TestJSONFormatter(t *testing.T) {
	data := map[string]interface{}{"name": "Daily Run", "threads": 4}

	t.Run("indented", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewJSONFormatter(Options{Writer: &buf}).FormatData(data))
		assert.Equal(t, "{\n  \"name\": \"Daily Run\",\n  \"threads\": 4\n}\n", buf.String())
	})

	t.Run("compact when quiet", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewJSONFormatter(Options{Writer: &buf, Quiet: true}).FormatData(data))
		assert.Equal(t, "{\"name\":\"Daily Run\",\"threads\":4}\n", buf.String())
	})

	t.Run("marshal failure", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewJSONFormatter(Options{Writer: &buf}).FormatData(make(chan int))
		assert.Error(t, err)
		assert.Empty(t, buf.String())
	})
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	data := struct {
		Project string `yaml:"project"`
		Create  int    `yaml:"create"`
	}{Project: "analytics", Create: 2}

	require.NoError(t, NewYAMLFormatter(Options{Writer: &buf}).FormatData(data))
	assert.Equal(t, "project: analytics\ncreate: 2\n", buf.String())
}

func TestTableFormatter(t *testing.T) {
	t.Run("tabular", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewTableFormatter(Options{Writer: &buf}).FormatData(fakeTable{}))

		out := buf.String()
		assert.Contains(t, out, "PROJECT")
		assert.Contains(t, out, "analytics")
		assert.Contains(t, out, "TOTAL")
		assert.Contains(t, out, "╭")
	})

	t.Run("object sorted by key", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewTableFormatter(Options{Writer: &buf}).FormatData(map[string]interface{}{
			"zeta":  1,
			"alpha": 2,
		}))

		out := buf.String()
		assert.Less(t, bytes.Index([]byte(out), []byte("alpha")), bytes.Index([]byte(out), []byte("zeta")))
	})

	t.Run("empty array", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewTableFormatter(Options{Writer: &buf}).FormatData([]interface{}{}))
		assert.Equal(t, "No items found\n", buf.String())
	})

	t.Run("array", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewTableFormatter(Options{Writer: &buf}).FormatData([]interface{}{"a", "b"}))
		assert.Equal(t, "  1. a\n  2. b\n\nTotal: 2 items\n", buf.String())
	})

	t.Run("long value cut to one line", func(t *testing.T) {
		var buf bytes.Buffer
		steps := "dbt run\n" + strings.Repeat("x", dbtstrings.CellMaxLen)
		require.NoError(t, NewTableFormatter(Options{Writer: &buf}).FormatData(map[string]interface{}{
			"execute_steps": steps,
		}))

		out := buf.String()
		assert.Contains(t, out, "dbt run xxx")
		assert.Contains(t, out, "...")
		assert.NotContains(t, out, strings.Repeat("x", dbtstrings.CellMaxLen))
	})

	t.Run("fallback marshal failure", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewTableFormatter(Options{Writer: &buf}).FormatData(make(chan int))
		assert.ErrorContains(t, err, "failed to format JSON")
		assert.Empty(t, buf.String())
	})
}

func TestConsoleFormatter(t *testing.T) {
	tests := []struct {
		name string
		data interface{}
		want string
	}{
		{name: "string", data: "no changes", want: "no changes\n"},
		{name: "stringer", data: stringer{}, want: "daily run\n"},
		{name: "other", data: []int{1}, want: "[\n  1\n]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewConsoleFormatter(Options{Writer: &buf}).FormatData(tt.data))
			assert.Equal(t, tt.want, buf.String())
		})
	}

	t.Run("marshal failure", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewConsoleFormatter(Options{Writer: &buf}).FormatData(map[string]interface{}{"hook": func() {}})
		assert.ErrorContains(t, err, "failed to format JSON")
		assert.Empty(t, buf.String())
	})
}
