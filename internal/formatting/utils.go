package formatting

import (
	"encoding/json"
	"fmt"
)

// encodeJSON renders v as JSON indented by two spaces, or on one line when
// compact is set.
func encodeJSON(v interface{}, compact bool) (string, error) {
	var (
		b   []byte
		err error
	)
	if compact {
		b, err = json.Marshal(v)
	} else {
		b, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return "", fmt.Errorf("failed to format JSON: %w", err)
	}
	return string(b), nil
}
