package config

import (
	"os"
	"path/filepath"
)

// EnvConfig overrides the config file location.
const EnvConfig = "GWA_CONFIG"

// Paths contains standard filesystem paths for gwa.
type Paths struct {
	// ConfigFile is the path to the config file (~/.gwa/config.yaml).
	ConfigFile string

	// HomeDir is the gwa home directory (~/.gwa).
	HomeDir string
}

// DefaultPaths returns the default paths for gwa.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	gwaHome := filepath.Join(homeDir, ".gwa")

	return &Paths{
		ConfigFile: filepath.Join(gwaHome, "config.yaml"),
		HomeDir:    gwaHome,
	}, nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username is not supported
	return path, nil
}
