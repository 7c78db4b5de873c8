package formatting

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter writes data as YAML.
type YAMLFormatter struct {
	options Options
}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter(options Options) Formatter {
	return &YAMLFormatter{
		options: options,
	}
}

// FormatData writes data as a YAML document.
func (f *YAMLFormatter) FormatData(data interface{}) error {
	yamlBytes, err := f.marshal(data)
	if err != nil {
		return err
	}
	_, err = io.WriteString(f.options.writer(), string(yamlBytes))
	return err
}

// SetOptions updates the formatter options
func (f *YAMLFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *YAMLFormatter) GetOptions() Options {
	return f.options
}

// marshal converts data to YAML
func (f *YAMLFormatter) marshal(data interface{}) ([]byte, error) {
	yamlBytes, err := yaml.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to format YAML: %w", err)
	}
	return yamlBytes, nil
}
