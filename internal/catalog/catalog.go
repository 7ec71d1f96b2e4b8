// Package catalog provides the portfolio project entries.
package catalog

import (
	"fmt"
	"os"

	"folio/internal/enrich"
	"folio/internal/model"

	"gopkg.in/yaml.v3"
)

// Builtin validates the catalog compiled into the binary.
func Builtin() ([]*model.Project, error) {
	return build("builtin", builtin)
}

// Load returns the built-in catalog when path is empty, otherwise the
// projects listed in the YAML file at path.
func Load(path string) ([]*model.Project, error) {
	if path == "" {
		return Builtin()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(path, data)
}

// Parse decodes a YAML list of projects.
func Parse(source string, data []byte) ([]*model.Project, error) {
	var raw []enrich.RawProject
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &model.MalformedRecordError{Source: source, Err: fmt.Errorf("decode catalog: %w", err)}
	}
	return build(source, raw)
}

func build(source string, raw []enrich.RawProject) ([]*model.Project, error) {
	projects := make([]*model.Project, 0, len(raw))
	for i, r := range raw {
		p, err := enrich.Project(fmt.Sprintf("%s[%d]", source, i), r)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}
