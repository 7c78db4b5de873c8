package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"gopkg.in/yaml.v3"

	"github.com/giantswarm/dbterra/pkg/logging"
)

// DefaultConfigFile is the desired state file read when --config is not given.
const DefaultConfigFile = "dbt_cloud.yml"

// LoadConfig reads the desired state from path.
//
// The file is rendered as a Go template with the sprig function map before it
// is parsed, so values such as `{{ env "PROD_ENV_ID" }}` can be pulled from
// the environment. The returned Root is validated.
func LoadConfig(path string) (Root, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Root{}, NewConfigurationErrorWithDetails(path, "io",
				"file not found", err.Error(),
				[]string{fmt.Sprintf("create %s or point --config at an existing file", filepath.Base(path))})
		}
		return Root{}, NewConfigurationError(path, "io", err.Error())
	}

	rendered, err := renderTemplate(path, data)
	if err != nil {
		return Root{}, NewConfigurationErrorWithDetails(path, "template",
			"failed to render template", err.Error(), nil)
	}

	root, err := Parse(rendered)
	if err != nil {
		return Root{}, NewConfigurationErrorWithDetails(path, "parse",
			"malformed YAML", err.Error(), nil)
	}

	if verr := Validate(root); verr.HasErrors() {
		return Root{}, NewConfigurationErrorWithDetails(path, "validation",
			"invalid desired state", verr.Error(), verr.Messages())
	}

	logging.Info("Config", "Loaded desired state from %s (%d projects)", path, len(root.Projects))
	return root, nil
}

// Parse decodes YAML into a Root without templating or validation.
// Unknown keys are rejected so typos do not silently drop settings.
func Parse(data []byte) (Root, error) {
	var root Root
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&root); err != nil && !errors.Is(err, io.EOF) {
		return Root{}, err
	}
	return root, nil
}

func renderTemplate(path string, data []byte) ([]byte, error) {
	tmpl, err := template.New(filepath.Base(path)).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(string(data))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, nil); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
