// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// gwaEnv lists every variable the CLI reads.
var gwaEnv = []string{
	"GWA_CONFIG",
	"GWA_TEMPLATE_REPOSITORY",
	"GWA_TEMPLATE_BRANCH",
	"GWA_GENERATOR_BINARY",
}

// IsolateHome points HOME at a fresh temp directory and clears the GWA_*
// variables, so a developer's own ~/.gwa never leaks into a test. It
// returns the new home directory.
func IsolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range gwaEnv {
		t.Setenv(key, "")
	}
	return home
}

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// FakeGenerator writes an executable shell script named cargo-generate
// whose body is body, and returns its path. Tests are skipped where no
// POSIX shell is available.
func FakeGenerator(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("generator stub needs a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "cargo-generate")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("failed to write generator stub: %v", err)
	}
	return path
}
