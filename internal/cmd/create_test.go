package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	gerrors "github.com/gwa/cli/internal/errors"
	"github.com/gwa/cli/internal/handoff"
	"github.com/gwa/cli/internal/project"
	"github.com/gwa/cli/internal/prompt"
	"github.com/gwa/cli/internal/testutil"
)

// recordingGenerator captures requests instead of running cargo-generate.
type recordingGenerator struct {
	requests []handoff.Request
	err      error
}

func (g *recordingGenerator) Generate(_ context.Context, req handoff.Request) (string, error) {
	g.requests = append(g.requests, req)
	if g.err != nil {
		return "", g.err
	}
	return filepath.Join(req.Destination, req.Name), nil
}

// answers replies to prompts by field; unanswered fields take the default.
type answers map[project.Field]string

func (a answers) Ask(_ context.Context, p prompt.Prompt) (string, error) {
	return a[p.Field], nil
}

func (a answers) Reject(prompt.Prompt, error) {}

func runGWA(t *testing.T, deps createDeps, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(deps)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCreate_FastTrack(t *testing.T) {
	testutil.IsolateHome(t)
	dest := t.TempDir()
	gen := &recordingGenerator{}

	out, err := runGWA(t, createDeps{generator: gen}, "create", "My-App", "-y", "-d", dest)
	require.NoError(t, err)
	require.Len(t, gen.requests, 1)

	req := gen.requests[0]
	assert.Equal(t, "My-App", req.Name)
	assert.Equal(t, dest, req.Destination)
	assert.Equal(t, handoff.DefaultRepository, req.Template.Repository)
	assert.Equal(t, handoff.DefaultBranch, req.Template.Branch)
	assert.Equal(t, "com.example.myapp", req.Variables["app_identifier"])
	assert.Equal(t, "my_app", req.Variables["db_name"])
	assert.Equal(t, "my_app_owner", req.Variables["db_owner_admin"])
	assert.Equal(t, "true", req.Variables["include_server"])
	assert.Equal(t, "true", req.Variables["include_frontend"])
	assert.Equal(t, "true", req.Variables["include_tauri_desktop"])

	assert.Contains(t, out, "My-App")
	assert.Contains(t, out, filepath.Join(dest, "My-App"))
	assert.Contains(t, out, "cd My-App")
	assert.Contains(t, out, "README.md")
}

func TestCreate_FastTrackRequiresName(t *testing.T) {
	testutil.IsolateHome(t)
	gen := &recordingGenerator{}

	_, err := runGWA(t, createDeps{generator: gen}, "create", "-y")
	require.Error(t, err)
	assert.Empty(t, gen.requests)

	var exitErr *gerrors.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, gerrors.ExitValidationError, exitErr.Code)
	assert.True(t, exitErr.Printed)

	var missing *gerrors.MissingRequiredFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "project_name", missing.Field)
	assert.Equal(t, FastTrackHint, missing.Hint)
}

func TestCreate_FlagsOverrideDefaults(t *testing.T) {
	testutil.IsolateHome(t)
	gen := &recordingGenerator{}

	_, err := runGWA(t, createDeps{generator: gen},
		"create", "demo", "-y", "-d", t.TempDir(),
		"--db-name", "custom_db",
		"--author-name", "",
		"--include-tauri-desktop=false",
	)
	require.NoError(t, err)
	require.Len(t, gen.requests, 1)

	vars := gen.requests[0].Variables
	assert.Equal(t, "custom_db", vars["db_name"])
	assert.Equal(t, "custom_db_owner", vars["db_owner_admin"])
	assert.Equal(t, "", vars["author_name"])
	assert.Equal(t, "false", vars["include_tauri_desktop"])
	assert.Equal(t, "true", vars["include_server"])
}

func TestCreate_InvalidFlagValue(t *testing.T) {
	testutil.IsolateHome(t)
	gen := &recordingGenerator{}

	_, err := runGWA(t, createDeps{generator: gen}, "create", "demo", "-y", "--author-email", "nope")
	require.Error(t, err)
	assert.Empty(t, gen.requests)
	assert.Equal(t, gerrors.ExitValidationError, gerrors.ExitCodeFromError(err))

	var verr *gerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "author_email", verr.Field)
}

func TestCreate_FromFile(t *testing.T) {
	testutil.IsolateHome(t)
	gen := &recordingGenerator{}

	params := testutil.WriteFile(t, t.TempDir(), "params.yaml", `
project_name: from-file
author_name: File Author
include_frontend: no
`)

	_, err := runGWA(t, createDeps{generator: gen},
		"create", "-y", "-d", t.TempDir(), "--from", params, "--author-name", "Flag Author")
	require.NoError(t, err)
	require.Len(t, gen.requests, 1)

	req := gen.requests[0]
	assert.Equal(t, "from-file", req.Name)
	assert.Equal(t, "Flag Author", req.Variables["author_name"], "flags win over the file")
	assert.Equal(t, "false", req.Variables["include_frontend"])
}

func TestCreate_FromFileErrors(t *testing.T) {
	testutil.IsolateHome(t)

	t.Run("missing", func(t *testing.T) {
		_, err := runGWA(t, createDeps{generator: &recordingGenerator{}},
			"create", "demo", "-y", "--from", filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Equal(t, gerrors.ExitNotFound, gerrors.ExitCodeFromError(err))
	})

	t.Run("unknown key", func(t *testing.T) {
		params := testutil.WriteFile(t, t.TempDir(), "params.yaml", "flavour: vanilla\n")

		_, err := runGWA(t, createDeps{generator: &recordingGenerator{}},
			"create", "demo", "-y", "--from", params)
		require.Error(t, err)
		assert.Equal(t, gerrors.ExitValidationError, gerrors.ExitCodeFromError(err))
	})
}

func TestCreate_DryRun(t *testing.T) {
	testutil.IsolateHome(t)
	gen := &recordingGenerator{}

	out, err := runGWA(t, createDeps{generator: gen}, "create", "demo", "-y", "--dry-run", "-o", "json")
	require.NoError(t, err)
	assert.Empty(t, gen.requests, "dry run never generates")

	var result dryRunResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, handoff.DefaultRepository, result.Template)
	assert.Equal(t, ".", result.Destination)
	assert.Equal(t, "demo_owner", result.Variables["db_owner_admin"])
	assert.Equal(t, maskedSecret, result.Variables["db_owner_pword"])
	assert.Len(t, result.Variables, len(project.Names()))
}

func TestCreate_DryRunTable(t *testing.T) {
	testutil.IsolateHome(t)

	out, err := runGWA(t, createDeps{generator: &recordingGenerator{}},
		"create", "demo", "-y", "--dry-run", "-o", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "com.example.demo")
}

func TestCreate_InvalidOutputFormat(t *testing.T) {
	testutil.IsolateHome(t)

	_, err := runGWA(t, createDeps{generator: &recordingGenerator{}},
		"create", "demo", "-y", "--dry-run", "-o", "xml")
	require.Error(t, err)
}

func TestCreate_TemplateFromConfigAndEnv(t *testing.T) {
	home := testutil.IsolateHome(t)

	cfgPath := testutil.WriteFile(t, home, "gwa.yaml", `
template:
  repository: https://example.com/fork.git
  branch: stable
`)

	t.Run("config file", func(t *testing.T) {
		out, err := runGWA(t, createDeps{generator: &recordingGenerator{}},
			"--config", cfgPath, "create", "demo", "-y", "--dry-run")
		require.NoError(t, err)

		var result dryRunResult
		require.NoError(t, yaml.Unmarshal([]byte(out), &result))
		assert.Equal(t, "https://example.com/fork.git", result.Template)
		assert.Equal(t, "stable", result.Branch)
	})

	t.Run("env beats config", func(t *testing.T) {
		t.Setenv("GWA_TEMPLATE_BRANCH", "from-env")

		out, err := runGWA(t, createDeps{generator: &recordingGenerator{}},
			"--config", cfgPath, "create", "demo", "-y", "--dry-run")
		require.NoError(t, err)

		var result dryRunResult
		require.NoError(t, yaml.Unmarshal([]byte(out), &result))
		assert.Equal(t, "from-env", result.Branch)
	})

	t.Run("flag beats env", func(t *testing.T) {
		t.Setenv("GWA_TEMPLATE_BRANCH", "from-env")

		out, err := runGWA(t, createDeps{generator: &recordingGenerator{}},
			"--config", cfgPath, "create", "demo", "-y", "--dry-run", "--template-branch", "from-flag")
		require.NoError(t, err)

		var result dryRunResult
		require.NoError(t, yaml.Unmarshal([]byte(out), &result))
		assert.Equal(t, "from-flag", result.Branch)
	})
}

func TestCreate_Interactive(t *testing.T) {
	testutil.IsolateHome(t)
	gen := &recordingGenerator{}

	p := answers{
		project.FieldProjectName:   "Prompted-App",
		project.FieldAuthorEmail:   "dev@example.org",
		project.FieldIncludeServer: "n",
	}

	_, err := runGWA(t, createDeps{prompter: p, generator: gen},
		"create", "-d", t.TempDir(), "--db-name", "flag_db")
	require.NoError(t, err)
	require.Len(t, gen.requests, 1)

	vars := gen.requests[0].Variables
	assert.Equal(t, "Prompted-App", vars["project_name"])
	assert.Equal(t, "dev@example.org", vars["author_email"])
	assert.Equal(t, "com.example.promptedapp", vars["app_identifier"])
	assert.Equal(t, "flag_db", vars["db_name"])
	assert.Equal(t, "flag_db_owner", vars["db_owner_admin"])
	assert.Equal(t, "false", vars["include_server"])
}

func TestCreate_GenerationFailure(t *testing.T) {
	testutil.IsolateHome(t)
	gen := &recordingGenerator{err: errors.New("exit status 101")}

	_, err := runGWA(t, createDeps{generator: gen}, "create", "demo", "-y", "-d", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, gerrors.ExitGenerationFailed, gerrors.ExitCodeFromError(err))
	assert.True(t, errors.Is(err, gerrors.ErrGeneration))
}

func TestCreate_MissingGeneratorBinary(t *testing.T) {
	testutil.IsolateHome(t)

	_, err := runGWA(t, createDeps{},
		"create", "demo", "-y", "-d", t.TempDir(), "--generator", "gwa-no-such-binary")
	require.Error(t, err)
	assert.Equal(t, gerrors.ExitNotFound, gerrors.ExitCodeFromError(err))
}

func TestNewCreateCmd_FlagsExist(t *testing.T) {
	c := NewCreateCmd(nil)
	assert.Equal(t, "create [project-name]", c.Use)

	f := c.Flags()
	for _, name := range []string{
		"destination", "yes", "from", "dry-run", "output",
		"author-name", "db-owner-pword", "include-tauri-desktop",
		"template-repo", "template-branch", "generator",
	} {
		assert.NotNil(t, f.Lookup(name), name)
	}
	assert.Equal(t, "d", f.Lookup("destination").Shorthand)
	assert.Equal(t, ".", f.Lookup("destination").DefValue)
}
