package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/meshslice/pkg/errors"
)

// Config holds the persistent option surface loaded from a TOML file.
// Command-line flags override any value set here.
//
// Example config (~/.config/meshslice/config.toml):
//
//	layers = 20
//	direction = "bottom_to_top"
//	outline = "contour"
//	outline_offset = 0.5
//	format = "dxf"
//	workers = 4
//	scale = 1.0
type Config struct {
	Layers        int     `toml:"layers"`
	Direction     string  `toml:"direction"`
	Outline       string  `toml:"outline"`
	OutlineOffset float64 `toml:"outline_offset"`
	Format        string  `toml:"format"`
	Workers       int     `toml:"workers"`
	Scale         float64 `toml:"scale"`
}

// defaultConfig returns the built-in defaults: 10 layers, bottom to
// top, no outline, sequential slicing, DXF output.
func defaultConfig() Config {
	return Config{
		Layers:        10,
		Direction:     "bottom_to_top",
		Outline:       "none",
		OutlineOffset: 0.5,
		Format:        "dxf",
		Workers:       1,
		Scale:         1.0,
	}
}

// loadConfig reads the config file at path, or the default XDG location
// when path is empty. A missing file is not an error; defaults apply.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "config.toml")
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if explicit {
			return cfg, errors.New(errors.ErrCodeFileNotFound, "config file does not exist: %s", path)
		}
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	return cfg, nil
}
