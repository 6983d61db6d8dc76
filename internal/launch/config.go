// Package launch reads the launch manifest described in spec.md §3, §6: an
// immutable {location; windows?/linux?/macos? argv} value read once from
// <resources>/launch.toml. Grounded directly on
// original_source/fmiapi/src/common/spawn/launch_config.rs, the closest the
// Rust source comes to a config-file reader; the parsing library itself
// (go-toml/v2) is grounded in the wider example pack, see SPEC_FULL.md's
// Ambient Stack section.
package launch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pelletier/go-toml/v2"
)

// Location selects whether the dispatcher should spawn a local subprocess
// or merely bind a socket and wait for a remote peer (spec.md §3).
type Location string

const (
	LocationLocal  Location = "Local"
	LocationRemote Location = "Remote"
)

// Config is the immutable value described in spec.md §3:
// "{location ∈ {Local, Remote}; windows?: argv; linux?: argv; macos?: argv}".
type Config struct {
	Location Location `toml:"location"`
	Windows  []string `toml:"windows"`
	Linux    []string `toml:"linux"`
	Macos    []string `toml:"macos"`
}

// ErrNotFound, ErrInvalid and ErrUnsupportedOS are the three distinct,
// independently diagnosable error cases spec.md §6 calls out: "Parsing
// failure, absence of a vector for the running OS, and absence of the file
// itself are distinct, independently diagnosable errors."
var (
	ErrNotFound      = errors.New("launch: launch.toml not found")
	ErrInvalid       = errors.New("launch: launch.toml is not valid TOML")
	ErrUnsupportedOS = errors.New("launch: no launch command for the running OS")
)

// Load reads and parses <resourcesDir>/launch.toml.
func Load(resourcesDir string) (*Config, error) {
	path := filepath.Join(resourcesDir, "launch.toml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("launch: reading %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
	}

	if cfg.Location == "" {
		cfg.Location = LocationLocal
	}

	return &cfg, nil
}

// Argv selects the argument vector for the running operating system.
func (c *Config) Argv() ([]string, error) {
	var argv []string
	switch runtime.GOOS {
	case "windows":
		argv = c.Windows
	case "darwin":
		argv = c.Macos
	case "linux":
		argv = c.Linux
	}

	if argv == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOS, runtime.GOOS)
	}

	return argv, nil
}
