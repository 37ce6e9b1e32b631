// Package cli implements the meshslice command-line interface.
//
// This package provides commands for slicing STL meshes into per-layer
// 2D vector-polygon files and for inspecting mesh geometry. The CLI is
// built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - slice: Cut a mesh into horizontal layers and export DXF, SVG, or JSON
//   - info: Print mesh statistics (counts, bounds, manifoldness)
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context so the slicing core stays decoupled
// from any particular notification mechanism.
package cli

import (
	"os"
	"path/filepath"
)

// appName is the application name used for directories and display.
const appName = "meshslice"

// configDir returns the configuration directory using the XDG standard
// (~/.config/meshslice/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
