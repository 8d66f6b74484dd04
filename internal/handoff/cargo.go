package handoff

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	gerrors "github.com/gwa/cli/internal/errors"
)

// DefaultBinary is the cargo-generate executable looked up in PATH.
const DefaultBinary = "cargo-generate"

// InstallHint tells the user how to get the generator binary.
const InstallHint = "Install it with `cargo install cargo-generate`, or set generator.binary in the gwa config."

// CargoGenerate runs the cargo-generate binary as the Template Generator.
type CargoGenerate struct {
	// Binary is a name looked up in PATH or a path. Empty means DefaultBinary.
	Binary string

	// Stdout receives the generator's standard output. Nil discards it.
	Stdout io.Writer
}

// Generate implements Generator.
func (g CargoGenerate) Generate(ctx context.Context, req Request) (string, error) {
	bin := g.Binary
	if bin == "" {
		bin = DefaultBinary
	}

	path, err := exec.LookPath(bin)
	if err != nil {
		return "", gerrors.NewNotFoundError(
			fmt.Sprintf("template generator %q not found in PATH", bin), "", InstallHint)
	}

	cmd := exec.CommandContext(ctx, path, cargoArgs(req)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if g.Stdout != nil {
		cmd.Stdout = g.Stdout
	}

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s: %w: %s", bin, err, msg)
		}
		return "", fmt.Errorf("%s: %w", bin, err)
	}

	return filepath.Join(req.Destination, req.Name), nil
}

// cargoArgs renders req as cargo-generate arguments. Variables are sorted
// so the command line is stable.
func cargoArgs(req Request) []string {
	args := []string{
		"generate",
		"--git", req.Template.Repository,
		"--branch", req.Template.Branch,
		"--name", req.Name,
		"--destination", req.Destination,
	}

	keys := make([]string, 0, len(req.Variables))
	for k := range req.Variables {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, "--define", k+"="+req.Variables[k])
	}

	if req.Overwrite {
		args = append(args, "--overwrite")
	}
	return append(args, "--silent")
}
