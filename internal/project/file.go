package project

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	gerrors "github.com/gwa/cli/internal/errors"
)

// LoadParams reads a YAML or JSON parameter file into a MapSource.
// Keys must be field names; unknown keys are rejected.
func LoadParams(path string) (MapSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, gerrors.NewNotFoundError("parameter file not found", path,
				"Pass a YAML or JSON file with keys like project_name, author_name.")
		}
		return nil, fmt.Errorf("reading parameter file %s: %w", path, err)
	}
	return ParseParams(data)
}

// ParseParams decodes YAML (or JSON) parameter bytes into a MapSource.
func ParseParams(data []byte) (MapSource, error) {
	params := MapSource{}
	if err := yaml.Unmarshal(data, &params); err != nil {
		return nil, gerrors.NewValidation("parameters", fmt.Sprintf("not valid YAML or JSON: %v", err))
	}
	if err := params.CheckKeys(); err != nil {
		return nil, err
	}
	return params, nil
}
