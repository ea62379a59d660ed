// Package project locates and loads declc.toml, the optional per-project
// configuration: the default dialect, the diagnostic cap, and the typedef
// snapshot path.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"declc/internal/dialect"
)

// DefaultMaxDiagnostics caps diagnostic output when neither the config nor
// the command line says otherwise.
const DefaultMaxDiagnostics = 20

// Config is the contents of declc.toml.
type Config struct {
	Check    CheckConfig    `toml:"check"`
	Typedefs TypedefsConfig `toml:"typedefs"`
}

type CheckConfig struct {
	// Lang is the default dialect name, e.g. "c23" or "c++17".
	Lang string `toml:"lang"`
	// MaxDiagnostics caps how many diagnostics are kept per run.
	MaxDiagnostics int `toml:"max-diagnostics"`
}

type TypedefsConfig struct {
	// Snapshot is the path of a typedef snapshot to preload, relative to
	// the config file's directory.
	Snapshot string `toml:"snapshot"`
}

// Manifest is a loaded config together with where it was found.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Lang resolves the configured dialect, or def when the config does not
// name one.
func (m *Manifest) Lang(def dialect.ID) (dialect.ID, error) {
	if m == nil || m.Config.Check.Lang == "" {
		return def, nil
	}
	id, err := dialect.Parse(m.Config.Check.Lang)
	if err != nil {
		return def, fmt.Errorf("%s: %w", m.Path, err)
	}
	return id, nil
}

// MaxDiagnostics returns the configured cap, defaulted when unset.
func (m *Manifest) MaxDiagnostics() int {
	if m == nil || m.Config.Check.MaxDiagnostics <= 0 {
		return DefaultMaxDiagnostics
	}
	return m.Config.Check.MaxDiagnostics
}

// SnapshotPath returns the typedef snapshot path resolved against the
// config file's directory, or "" when none is configured.
func (m *Manifest) SnapshotPath() string {
	if m == nil || m.Config.Typedefs.Snapshot == "" {
		return ""
	}
	if filepath.IsAbs(m.Config.Typedefs.Snapshot) {
		return m.Config.Typedefs.Snapshot
	}
	return filepath.Join(m.Root, m.Config.Typedefs.Snapshot)
}

// FindConfig walks up from startDir to locate declc.toml.
func FindConfig(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "declc.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load parses the config file at path.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, nil
}

// Discover walks up from startDir and loads the nearest declc.toml. A
// missing config is not an error; ok reports whether one was found.
func Discover(startDir string) (*Manifest, bool, error) {
	path, ok, err := FindConfig(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, true, nil
}
