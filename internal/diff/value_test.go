package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromJSON_Kinds(t *testing.T) {
	v := mustJSON(t, `{"a": null, "b": true, "c": 1.5, "d": "s", "e": [1], "f": {}}`)
	require.Equal(t, KindObject, v.Kind())
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, v.Keys())

	expected := map[string]Kind{
		"a": KindNull,
		"b": KindBool,
		"c": KindNumber,
		"d": KindString,
		"e": KindArray,
		"f": KindObject,
	}
	for key, kind := range expected {
		field, ok := v.Field(key)
		require.True(t, ok, key)
		assert.Equal(t, kind, field.Kind(), key)
	}

	_, err := FromJSON([]byte(`{"a":`))
	assert.Error(t, err)
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{in: `null`, expected: `null`},
		{in: `"0/10 * * * *"`, expected: `"0/10 * * * *"`},
		{in: `"a<b>&c"`, expected: `"a<b>&c"`},
		{in: `12345678901234567890`, expected: `12345678901234567890`},
		{in: `{ "b": [1, 2], "a": {"x": false} }`, expected: `{"a":{"x":false},"b":[1,2]}`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, mustJSON(t, tt.in).String())
		})
	}
}

func TestValue_Equal(t *testing.T) {
	assert.True(t, mustJSON(t, `{"a": [1, {"b": null}]}`).Equal(mustJSON(t, `{"a": [1, {"b": null}]}`)))
	assert.False(t, mustJSON(t, `{"a": [1]}`).Equal(mustJSON(t, `{"a": [1, 2]}`)))
	assert.False(t, mustJSON(t, `{"a": 1}`).Equal(mustJSON(t, `{"b": 1}`)))
	assert.False(t, Null().Equal(String("")))
	assert.True(t, Array().Equal(mustJSON(t, `[]`)))
}

func TestValue_Index(t *testing.T) {
	v := Array(String("a"), String("b"))
	item, ok := v.Index(1)
	assert.True(t, ok)
	assert.Equal(t, `"b"`, item.String())

	_, ok = v.Index(2)
	assert.False(t, ok)
	assert.Equal(t, 2, v.Len())
}
