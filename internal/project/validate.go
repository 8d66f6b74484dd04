package project

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	gerrors "github.com/gwa/cli/internal/errors"
)

// validate is safe for concurrent use and caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report json field names so errors match the keys users type.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return emailShape(fl.Field().String()) == ""
	})

	return v
}

// ValidateProjectName rejects empty or whitespace-only names, and names with
// leading or trailing whitespace since they reach derived values and the
// generator unchanged. Case and inner separators are left alone.
func ValidateProjectName(name string) error {
	trimmed := strings.TrimSpace(name)
	if err := validate.Var(trimmed, "required"); err != nil {
		return invalid(FieldProjectName, "must not be empty")
	}
	if trimmed != name {
		return invalid(FieldProjectName, "must not start or end with whitespace")
	}
	return nil
}

// ValidateIdentifier accepts any string. Reverse-domain grammar is a naming
// convention for app_identifier, not an enforced rule.
func ValidateIdentifier(string) error {
	return nil
}

// ValidateEmail performs a structural check: one '@' with non-empty local and
// domain parts. An empty value is accepted as an explicit choice.
func ValidateEmail(email string) error {
	if email == "" {
		return nil
	}
	if err := validate.Var(email, "emailshape"); err != nil {
		return invalid(FieldAuthorEmail, emailShape(email))
	}
	return nil
}

// ParseBool accepts strconv-style booleans plus yes/no/y/n, case-insensitively.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "t", "true", "y", "yes", "on":
		return true, nil
	case "0", "f", "false", "n", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("%q is not a yes/no value", s)
	}
}

// ValidateConfig runs the record-level checks on a fully resolved record.
func ValidateConfig(c Config) error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return invalid(Field(fe.Field()), "must not be empty")
	case "emailshape":
		return invalid(Field(fe.Field()), emailShape(fmt.Sprint(fe.Value())))
	default:
		return invalid(Field(fe.Field()), fmt.Sprintf("failed %q check", fe.Tag()))
	}
}

// emailShape returns the reason email is malformed, or "" when it is fine.
func emailShape(email string) string {
	if strings.Count(email, "@") != 1 {
		return "must contain exactly one '@'"
	}
	local, domain, _ := strings.Cut(email, "@")
	if strings.TrimSpace(local) == "" {
		return "local part before '@' must not be empty"
	}
	if strings.TrimSpace(domain) == "" {
		return "domain after '@' must not be empty"
	}
	return ""
}

func invalid(field Field, reason string) error {
	return gerrors.NewValidation(string(field), reason)
}
