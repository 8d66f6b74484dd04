package project

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/gwa/cli/internal/errors"
)

func TestResolve_FastTrackDefaults(t *testing.T) {
	cfg, err := Resolve(Defaults("My-App"))
	require.NoError(t, err)

	assert.Equal(t, Config{
		ProjectName:         "My-App",
		AuthorName:          DefaultAuthorName,
		AuthorEmail:         DefaultAuthorEmail,
		AppIdentifier:       "com.example.myapp",
		DBName:              "my_app",
		DBOwnerAdmin:        "my_app_owner",
		DBOwnerPword:        DefaultDBOwnerPword,
		IncludeServer:       true,
		IncludeFrontend:     true,
		IncludeTauriDesktop: true,
		DenoPackageName:     DefaultDenoPackageName,
	}, cfg)
}

func TestResolve_DerivedDefaultsForAnyName(t *testing.T) {
	for _, name := range []string{"demo", "My-App", "a-b_c", "UPPER", "x"} {
		t.Run(name, func(t *testing.T) {
			cfg, err := Resolve(MapSource{"project_name": name})
			require.NoError(t, err)

			assert.Equal(t, DeriveAppIdentifier(name), cfg.AppIdentifier)
			assert.Equal(t, DeriveDBName(name), cfg.DBName)
			assert.Equal(t, cfg.DBName+"_owner", cfg.DBOwnerAdmin)
		})
	}
}

func TestResolve_MissingProjectName(t *testing.T) {
	sources := map[string]FieldSource{
		"absent": MapSource{"db_name": "x", "author_email": "not-an-email"},
		"empty":  MapSource{"project_name": ""},
		"blank":  MapSource{"project_name": "   "},
		"nil":    MapSource{"project_name": nil, "include_server": "bogus"},
		"none":   Overlay{},
	}

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			_, err := Resolve(src)
			require.Error(t, err)
			assert.True(t, errors.Is(err, gerrors.ErrMissingField))

			var missing *gerrors.MissingRequiredFieldError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, "project_name", missing.Field)
			assert.NotEmpty(t, missing.Hint)
		})
	}
}

func TestResolve_ExplicitDBNameDrivesOwner(t *testing.T) {
	cfg, err := Resolve(MapSource{"project_name": "demo", "db_name": "custom_db"})
	require.NoError(t, err)

	assert.Equal(t, "custom_db", cfg.DBName)
	assert.Equal(t, "custom_db_owner", cfg.DBOwnerAdmin)
}

func TestResolve_ExplicitValuesOverrideDefaults(t *testing.T) {
	src := MapSource{
		"project_name":          "demo",
		"author_name":           "",
		"author_email":          "",
		"app_identifier":        "",
		"db_name":               "",
		"db_owner_admin":        "root",
		"db_owner_pword":        12345,
		"include_server":        false,
		"include_frontend":      "no",
		"include_tauri_desktop": "y",
		"deno_package_name":     "@acme",
	}

	cfg, err := Resolve(src)
	require.NoError(t, err)

	assert.Equal(t, "", cfg.AuthorName)
	assert.Equal(t, "", cfg.AuthorEmail)
	assert.Equal(t, "", cfg.AppIdentifier)
	assert.Equal(t, "", cfg.DBName)
	assert.Equal(t, "root", cfg.DBOwnerAdmin)
	assert.Equal(t, "12345", cfg.DBOwnerPword)
	assert.False(t, cfg.IncludeServer)
	assert.False(t, cfg.IncludeFrontend)
	assert.True(t, cfg.IncludeTauriDesktop)
	assert.Equal(t, "@acme", cfg.DenoPackageName)
}

func TestResolve_EmptyDBNameStillDrivesOwner(t *testing.T) {
	cfg, err := Resolve(MapSource{"project_name": "demo", "db_name": ""})
	require.NoError(t, err)
	assert.Equal(t, "_owner", cfg.DBOwnerAdmin)
}

func TestResolve_Idempotent(t *testing.T) {
	src := MapSource{
		"project_name":   "Idem-Potent",
		"author_name":    "Ada",
		"author_email":   "ada@example.org",
		"include_server": false,
	}

	first, err := Resolve(src)
	require.NoError(t, err)
	second, err := Resolve(src)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestResolve_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		src   MapSource
		field string
	}{
		{"padded name", MapSource{"project_name": "  My-App  "}, "project_name"},
		{"bad email", MapSource{"project_name": "demo", "author_email": "nope"}, "author_email"},
		{"bad bool", MapSource{"project_name": "demo", "include_frontend": "sometimes"}, "include_frontend"},
		{"wrong bool type", MapSource{"project_name": "demo", "include_server": 3}, "include_server"},
		{"wrong string type", MapSource{"project_name": "demo", "author_name": []any{"a"}}, "author_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Resolve(tt.src)
			require.Error(t, err)
			assert.Equal(t, Config{}, cfg, "no partial record on failure")

			var verr *gerrors.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestConfig_Values(t *testing.T) {
	cfg, err := Resolve(Defaults("demo"))
	require.NoError(t, err)

	values := cfg.Values()
	assert.Len(t, values, len(Names()))
	assert.Equal(t, "demo", values["project_name"])
	assert.Equal(t, true, values["include_server"])
	assert.Equal(t, "demo_owner", values["db_owner_admin"])
}
