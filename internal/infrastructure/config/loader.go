package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// FileName is the config file read by Loader.Load
const FileName = "ghost.json"

// Loader loads configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// Load reads ghost.json on top of the defaults
func (l *Loader) Load() (*Config, error) {
	return l.LoadFile(FileName)
}

// LoadFile reads the named JSON file on top of the defaults.
// Fields missing from the file keep their default values.
func (l *Loader) LoadFile(name string) (*Config, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	return cfg, nil
}

// LoadAll reads ghost.json, applies environment overrides and validates the result
func (l *Loader) LoadAll() (*Config, error) {
	return l.LoadAllFile(FileName)
}

// LoadAllFile is LoadAll for a config file other than ghost.json
func (l *Loader) LoadAllFile(name string) (*Config, error) {
	cfg, err := l.LoadFile(name)
	if err != nil {
		return nil, err
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
