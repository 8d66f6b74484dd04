package version

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"
)

// versionRegex matches output like "cargo-generate 0.21.3".
var versionRegex = regexp.MustCompile(`v?\d+\.\d+\.\d+(?:-[a-zA-Z0-9.]+)?`)

// detectTimeout bounds the `--version` call.
const detectTimeout = 5 * time.Second

// GeneratorInfo describes the installed Template Generator binary.
type GeneratorInfo struct {
	Binary  string `json:"binary" yaml:"binary"`
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	Found   bool   `json:"found" yaml:"found"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// DetectGenerator looks binary up in PATH and asks it for its version.
func DetectGenerator(ctx context.Context, binary string) GeneratorInfo {
	info := GeneratorInfo{Binary: binary}

	path, err := exec.LookPath(binary)
	if err != nil {
		info.Message = binary + " not found in PATH"
		return info
	}
	info.Path = path
	info.Found = true

	ctx, cancel := context.WithTimeout(ctx, detectTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, path, "--version")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		info.Message = "failed to get version: " + err.Error()
		return info
	}

	v, err := extractVersion(out.String())
	if err != nil {
		info.Message = err.Error()
		return info
	}
	info.Version = v
	return info
}

// String returns a human-readable generator summary.
func (g GeneratorInfo) String() string {
	if !g.Found {
		return fmt.Sprintf("  Generator: %s (not found)", g.Binary)
	}
	v := g.Version
	if v == "" {
		v = "unknown"
	}
	return fmt.Sprintf("  Generator: %s %s\n  Path:      %s", g.Binary, v, g.Path)
}

// extractVersion pulls a semantic version out of --version output and
// normalizes it to a "v" prefix.
func extractVersion(output string) (string, error) {
	match := versionRegex.FindString(output)
	if match == "" {
		return "", fmt.Errorf("failed to parse version from output: %s", strings.TrimSpace(output))
	}
	if !strings.HasPrefix(match, "v") {
		match = "v" + match
	}
	return match, nil
}
