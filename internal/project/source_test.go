package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/gwa/cli/internal/errors"
)

func TestMapSource_Lookup(t *testing.T) {
	src := MapSource{"project_name": "demo", "db_name": nil}

	v, ok := src.Lookup(FieldProjectName)
	assert.True(t, ok)
	assert.Equal(t, "demo", v)

	_, ok = src.Lookup(FieldDBName)
	assert.False(t, ok, "nil counts as absent")

	_, ok = src.Lookup(FieldAuthorName)
	assert.False(t, ok)
}

func TestMapSource_CheckKeys(t *testing.T) {
	assert.NoError(t, MapSource{"project_name": "x", "destination": "."}.CheckKeys("destination"))

	err := MapSource{"project_name": "x", "colour": "blue"}.CheckKeys()
	require.Error(t, err)

	var verr *gerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "colour", verr.Field)
}

func TestDefaults(t *testing.T) {
	src := Defaults("demo")

	v, ok := src.Lookup(FieldProjectName)
	assert.True(t, ok)
	assert.Equal(t, "demo", v)

	for _, spec := range Fields()[1:] {
		_, ok := src.Lookup(spec.Name)
		assert.False(t, ok, spec.Name)
	}
}

func TestOverlay_FirstWins(t *testing.T) {
	src := Overlay{
		MapSource{"author_name": "Flag"},
		nil,
		MapSource{"author_name": "File", "db_name": "file_db"},
	}

	v, ok := src.Lookup(FieldAuthorName)
	require.True(t, ok)
	assert.Equal(t, "Flag", v)

	v, ok = src.Lookup(FieldDBName)
	require.True(t, ok)
	assert.Equal(t, "file_db", v)

	_, ok = src.Lookup(FieldProjectName)
	assert.False(t, ok)
}

func TestFields_Order(t *testing.T) {
	names := Names()
	require.NotEmpty(t, names)
	assert.Equal(t, "project_name", names[0])

	index := map[string]int{}
	for i, n := range names {
		index[n] = i
	}
	assert.Less(t, index["db_name"], index["db_owner_admin"])

	spec, ok := Lookup("deno_package_name")
	require.True(t, ok)
	assert.True(t, spec.HostOnly)

	_, ok = Lookup("nope")
	assert.False(t, ok)
}

func TestLoadParams(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "params.yaml")
		content := `
project_name: demo
db_name: custom_db
include_server: false
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		params, err := LoadParams(path)
		require.NoError(t, err)

		cfg, err := Resolve(params)
		require.NoError(t, err)
		assert.Equal(t, "custom_db_owner", cfg.DBOwnerAdmin)
		assert.False(t, cfg.IncludeServer)
	})

	t.Run("json", func(t *testing.T) {
		params, err := ParseParams([]byte(`{"project_name": "demo", "include_frontend": "no"}`))
		require.NoError(t, err)

		cfg, err := Resolve(params)
		require.NoError(t, err)
		assert.False(t, cfg.IncludeFrontend)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := ParseParams([]byte("project_name: demo\nflavour: vanilla\n"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, gerrors.ErrValidation))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadParams(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, gerrors.ErrNotFound))
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := ParseParams([]byte("project_name: [unterminated"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, gerrors.ErrValidation))
	})
}
