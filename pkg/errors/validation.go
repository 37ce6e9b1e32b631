package errors

import (
	"os"
	"path/filepath"
)

// Outline offset bounds in length units (millimetres for typical STL
// input). Offsets outside this range are rejected up front.
const (
	MinOutlineOffset = 0.1
	MaxOutlineOffset = 10.0
)

// ValidateLayers validates the requested layer count.
// Zero or negative layer counts are rejected before any slicing starts.
func ValidateLayers(n int) error {
	if n < 1 {
		return New(ErrCodeInvalidConfig, "layer count must be at least 1, got %d", n)
	}
	return nil
}

// ValidateOutlineOffset validates the outline offset distance.
func ValidateOutlineOffset(d float64) error {
	if d < MinOutlineOffset || d > MaxOutlineOffset {
		return New(ErrCodeInvalidConfig,
			"outline offset must be in [%g, %g], got %g", MinOutlineOffset, MaxOutlineOffset, d)
	}
	return nil
}

// ValidateOutputDir checks that dir exists, is a directory, and is
// writable. Writability is probed by creating and removing a temporary
// file, which works uniformly across platforms and mount options.
//
// The whole run is aborted before any slicing if this check fails.
func ValidateOutputDir(dir string) error {
	if dir == "" {
		return New(ErrCodeInvalidPath, "output directory cannot be empty")
	}

	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return New(ErrCodeInvalidPath, "output directory does not exist: %s", dir)
	}
	if err != nil {
		return Wrap(ErrCodeInvalidPath, err, "stat %s", dir)
	}
	if !info.IsDir() {
		return New(ErrCodeInvalidPath, "output path is not a directory: %s", dir)
	}

	probe, err := os.CreateTemp(dir, ".meshslice-probe-*")
	if err != nil {
		return Wrap(ErrCodeUnwritableOutput, err, "no write permission for directory: %s", dir)
	}
	name := probe.Name()
	_ = probe.Close()
	_ = os.Remove(name)
	return nil
}

// ValidateInputFile checks that path names an existing regular file.
func ValidateInputFile(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "input file cannot be empty")
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return New(ErrCodeFileNotFound, "input file does not exist: %s", filepath.Clean(path))
	}
	if err != nil {
		return Wrap(ErrCodeInvalidPath, err, "stat %s", path)
	}
	if info.IsDir() {
		return New(ErrCodeInvalidPath, "input path is a directory: %s", path)
	}
	return nil
}
