package project

import (
	"fmt"
	"sort"
	"strings"
)

// FieldSource supplies explicit field values. A field that is not present
// resolves to its derived default.
type FieldSource interface {
	Lookup(field Field) (any, bool)
}

// MapSource is a loosely-typed mapping keyed by field name, as supplied by a
// host call or a parameter file. Nil values count as absent.
type MapSource map[string]any

// Lookup implements FieldSource.
func (m MapSource) Lookup(field Field) (any, bool) {
	v, ok := m[string(field)]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// CheckKeys rejects keys that are neither configuration fields nor listed in
// extra.
func (m MapSource) CheckKeys(extra ...string) error {
	allowed := make(map[string]bool, len(fields)+len(extra))
	for _, spec := range fields {
		allowed[string(spec.Name)] = true
	}
	for _, k := range extra {
		allowed[k] = true
	}

	var unknown []string
	for k := range m {
		if !allowed[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) == 0 {
		return nil
	}

	sort.Strings(unknown)
	return invalid(Field(unknown[0]), fmt.Sprintf("unknown parameter (valid: %s)", strings.Join(Names(), ", ")))
}

type defaultsSource struct {
	name string
}

// Defaults returns the fast-track source: only the project name is explicit,
// everything else takes its derived default.
func Defaults(projectName string) FieldSource {
	return defaultsSource{name: projectName}
}

func (d defaultsSource) Lookup(field Field) (any, bool) {
	if field != FieldProjectName {
		return nil, false
	}
	return d.name, true
}

// Overlay consults each source in order; the first source holding a field
// wins.
type Overlay []FieldSource

// Lookup implements FieldSource.
func (o Overlay) Lookup(field Field) (any, bool) {
	for _, src := range o {
		if src == nil {
			continue
		}
		if v, ok := src.Lookup(field); ok {
			return v, true
		}
	}
	return nil, false
}
