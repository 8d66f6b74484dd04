package project

import (
	"strings"

	gerrors "github.com/gwa/cli/internal/errors"
)

// MissingNameHint is the corrective instruction attached to a missing
// project name.
const MissingNameHint = "a project name is required, e.g. `gwa create my-app`"

// Resolve fills every field from src or from its derived default, validating
// as it goes. It is the only place defaults are computed; every entry surface
// calls it.
//
// A missing or empty project name fails with MissingRequiredFieldError before
// anything is derived. Any other invalid value fails with ValidationError and
// no partial record is returned.
func Resolve(src FieldSource) (Config, error) {
	var c Config

	for _, spec := range fields {
		raw, ok := src.Lookup(spec.Name)

		if err := spec.CheckPresent(raw, ok); err != nil {
			return Config{}, err
		}

		var v string
		if ok {
			accepted, err := spec.Accept(raw)
			if err != nil {
				return Config{}, err
			}
			v = accepted
		} else {
			v = spec.Default(c)
			if spec.check != nil {
				if err := spec.check(v); err != nil {
					return Config{}, err
				}
			}
		}

		spec.set(&c, v)
	}

	if err := ValidateConfig(c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// CheckPresent fails with MissingRequiredFieldError when a required field is
// absent or blank. Optional fields always pass.
func (s FieldSpec) CheckPresent(raw any, ok bool) error {
	if s.Required && (!ok || isBlank(raw)) {
		return gerrors.NewMissingField(string(s.Name), MissingNameHint)
	}
	return nil
}

func isBlank(raw any) bool {
	s, ok := raw.(string)
	return ok && strings.TrimSpace(s) == ""
}
