package project

import (
	"fmt"
	"strconv"
)

// Field names a configuration field. The string value is the key used by
// host mappings, parameter files and template variables.
type Field string

// Configuration fields, in resolution order.
const (
	FieldProjectName         Field = "project_name"
	FieldAuthorName          Field = "author_name"
	FieldAuthorEmail         Field = "author_email"
	FieldAppIdentifier       Field = "app_identifier"
	FieldDBName              Field = "db_name"
	FieldDBOwnerAdmin        Field = "db_owner_admin"
	FieldDBOwnerPword        Field = "db_owner_pword"
	FieldIncludeServer       Field = "include_server"
	FieldIncludeFrontend     Field = "include_frontend"
	FieldIncludeTauriDesktop Field = "include_tauri_desktop"
	FieldDenoPackageName     Field = "deno_package_name"
)

// Kind is the value kind of a field.
type Kind int

const (
	// KindText is free-form text.
	KindText Kind = iota
	// KindSecret is text that should not be echoed.
	KindSecret
	// KindBool is a yes/no toggle.
	KindBool
)

// FieldSpec describes how one field is defaulted, validated and stored.
type FieldSpec struct {
	Name  Field
	Title string
	Kind  Kind

	// Required fields have no computable default.
	Required bool

	// HostOnly fields are settable only through host-call mappings and are
	// never prompted for.
	HostOnly bool

	derive func(Config) string
	check  func(string) error
	get    func(Config) string
	set    func(*Config, string)
}

// fields is the single table shared by Resolve and the interactive flow.
// db_name must precede db_owner_admin.
var fields = []FieldSpec{
	{
		Name:     FieldProjectName,
		Title:    "Project name",
		Required: true,
		check:    ValidateProjectName,
		get:      func(c Config) string { return c.ProjectName },
		set:      func(c *Config, v string) { c.ProjectName = v },
	},
	{
		Name:   FieldAuthorName,
		Title:  "Author name",
		derive: func(Config) string { return DefaultAuthorName },
		get:    func(c Config) string { return c.AuthorName },
		set:    func(c *Config, v string) { c.AuthorName = v },
	},
	{
		Name:   FieldAuthorEmail,
		Title:  "Author email",
		derive: func(Config) string { return DefaultAuthorEmail },
		check:  ValidateEmail,
		get:    func(c Config) string { return c.AuthorEmail },
		set:    func(c *Config, v string) { c.AuthorEmail = v },
	},
	{
		Name:   FieldAppIdentifier,
		Title:  "App identifier",
		derive: func(c Config) string { return DeriveAppIdentifier(c.ProjectName) },
		check:  ValidateIdentifier,
		get:    func(c Config) string { return c.AppIdentifier },
		set:    func(c *Config, v string) { c.AppIdentifier = v },
	},
	{
		Name:   FieldDBName,
		Title:  "Database name",
		derive: func(c Config) string { return DeriveDBName(c.ProjectName) },
		get:    func(c Config) string { return c.DBName },
		set:    func(c *Config, v string) { c.DBName = v },
	},
	{
		Name:   FieldDBOwnerAdmin,
		Title:  "Database owner",
		derive: func(c Config) string { return DeriveDBOwner(c.DBName) },
		get:    func(c Config) string { return c.DBOwnerAdmin },
		set:    func(c *Config, v string) { c.DBOwnerAdmin = v },
	},
	{
		Name:   FieldDBOwnerPword,
		Title:  "Database owner password",
		Kind:   KindSecret,
		derive: func(Config) string { return DefaultDBOwnerPword },
		get:    func(c Config) string { return c.DBOwnerPword },
		set:    func(c *Config, v string) { c.DBOwnerPword = v },
	},
	boolField(FieldIncludeServer, "Include server",
		func(c Config) bool { return c.IncludeServer },
		func(c *Config, b bool) { c.IncludeServer = b }),
	boolField(FieldIncludeFrontend, "Include frontend",
		func(c Config) bool { return c.IncludeFrontend },
		func(c *Config, b bool) { c.IncludeFrontend = b }),
	boolField(FieldIncludeTauriDesktop, "Include Tauri desktop app",
		func(c Config) bool { return c.IncludeTauriDesktop },
		func(c *Config, b bool) { c.IncludeTauriDesktop = b }),
	{
		Name:     FieldDenoPackageName,
		Title:    "Deno package name",
		HostOnly: true,
		derive:   func(Config) string { return DefaultDenoPackageName },
		get:      func(c Config) string { return c.DenoPackageName },
		set:      func(c *Config, v string) { c.DenoPackageName = v },
	},
}

func boolField(name Field, title string, get func(Config) bool, set func(*Config, bool)) FieldSpec {
	return FieldSpec{
		Name:   name,
		Title:  title,
		Kind:   KindBool,
		derive: func(Config) string { return strconv.FormatBool(true) },
		check: func(v string) error {
			if _, err := ParseBool(v); err != nil {
				return invalid(name, err.Error())
			}
			return nil
		},
		get: func(c Config) string { return strconv.FormatBool(get(c)) },
		set: func(c *Config, v string) {
			b, _ := ParseBool(v)
			set(c, b)
		},
	}
}

// Fields returns the field table in resolution order.
func Fields() []FieldSpec {
	out := make([]FieldSpec, len(fields))
	copy(out, fields)
	return out
}

// Names returns every field name in resolution order.
func Names() []string {
	names := make([]string, len(fields))
	for i, spec := range fields {
		names[i] = string(spec.Name)
	}
	return names
}

// Lookup returns the spec for name.
func Lookup(name string) (FieldSpec, bool) {
	for _, spec := range fields {
		if string(spec.Name) == name {
			return spec, true
		}
	}
	return FieldSpec{}, false
}

// Default computes the field's default from the fields resolved so far.
// Required fields have no default and return "".
func (s FieldSpec) Default(partial Config) string {
	if s.derive == nil {
		return ""
	}
	return s.derive(partial)
}

// Accept normalizes a raw explicit value and validates it. The returned
// string is the canonical form stored by Set.
func (s FieldSpec) Accept(raw any) (string, error) {
	v, err := s.normalize(raw)
	if err != nil {
		return "", err
	}
	if s.check != nil {
		if err := s.check(v); err != nil {
			return "", err
		}
	}
	return v, nil
}

// Set stores an accepted value on c.
func (s FieldSpec) Set(c *Config, v string) {
	s.set(c, v)
}

// Get returns the canonical string form of the field on c.
func (s FieldSpec) Get(c Config) string {
	return s.get(c)
}

func (s FieldSpec) normalize(raw any) (string, error) {
	if s.Kind == KindBool {
		switch v := raw.(type) {
		case bool:
			return strconv.FormatBool(v), nil
		case string:
			b, err := ParseBool(v)
			if err != nil {
				return "", invalid(s.Name, err.Error())
			}
			return strconv.FormatBool(b), nil
		default:
			return "", invalid(s.Name, fmt.Sprintf("must be a boolean, got %T", raw))
		}
	}

	switch v := raw.(type) {
	case string:
		return v, nil
	case int, int32, int64, uint, uint32, uint64, float32, float64:
		return fmt.Sprint(v), nil
	default:
		return "", invalid(s.Name, fmt.Sprintf("must be a string, got %T", raw))
	}
}

func (s FieldSpec) typed(v string) any {
	if s.Kind == KindBool {
		b, _ := ParseBool(v)
		return b
	}
	return v
}
