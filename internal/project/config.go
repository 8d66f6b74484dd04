// Package project resolves and validates the configuration record handed to the
// Template Generator.
package project

// Config is the complete configuration record for one project generation.
// It is produced by Resolve and passed by value; nothing mutates it after
// resolution.
type Config struct {
	ProjectName         string `json:"project_name" yaml:"project_name" validate:"required"`
	AuthorName          string `json:"author_name" yaml:"author_name"`
	AuthorEmail         string `json:"author_email" yaml:"author_email" validate:"omitempty,emailshape"`
	AppIdentifier       string `json:"app_identifier" yaml:"app_identifier"`
	DBName              string `json:"db_name" yaml:"db_name"`
	DBOwnerAdmin        string `json:"db_owner_admin" yaml:"db_owner_admin"`
	DBOwnerPword        string `json:"db_owner_pword" yaml:"db_owner_pword"`
	IncludeServer       bool   `json:"include_server" yaml:"include_server"`
	IncludeFrontend     bool   `json:"include_frontend" yaml:"include_frontend"`
	IncludeTauriDesktop bool   `json:"include_tauri_desktop" yaml:"include_tauri_desktop"`
	DenoPackageName     string `json:"deno_package_name" yaml:"deno_package_name"`
}

// Values returns the record keyed by field name with booleans kept as bool.
func (c Config) Values() map[string]any {
	out := make(map[string]any, len(fields))
	for _, spec := range fields {
		out[string(spec.Name)] = spec.typed(spec.get(c))
	}
	return out
}
