package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up when --config is not given.
const DefaultFileName = "dwg2glb.toml"

// yamlFileName is the alternative config file accepted during the upward search.
const yamlFileName = "dwg2glb.yaml"

// Tools holds explicit paths to the external executables. Any entry may be
// empty; resolution then falls back to PATH and well-known locations.
type Tools struct {
	AutoCAD string `toml:"autocad" yaml:"autocad"`
	Blender string `toml:"blender" yaml:"blender"`
	ODA     string `toml:"oda" yaml:"oda"`
	Assimp  string `toml:"assimp" yaml:"assimp"`
}

// Defaults holds fallback values for legacy-workflow options.
type Defaults struct {
	DXFVersion string `toml:"dxf_version" yaml:"dxf_version"`
	GLB        *bool  `toml:"glb" yaml:"glb"`
}

// Config represents the dwg2glb.toml (or dwg2glb.yaml) file.
type Config struct {
	Tools    Tools    `toml:"tools" yaml:"tools"`
	Defaults Defaults `toml:"defaults" yaml:"defaults"`
}

// EmitGLB reports whether the legacy workflow should emit binary GLB.
// Unset in the config means GLB.
func (c *Config) EmitGLB() bool {
	if c.Defaults.GLB == nil {
		return true
	}
	return *c.Defaults.GLB
}

// Load reads and parses the config file at path. A file that does not exist
// yields an empty config; a file that exists but cannot be parsed is an
// error. When path is the default name and absent in the working directory,
// parent directories are searched upward for dwg2glb.toml or dwg2glb.yaml.
func Load(path string) (*Config, error) {
	resolved, ok := find(path)
	if !ok {
		return &Config{}, nil
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", resolved, err)
	}

	var config Config
	switch filepath.Ext(resolved) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = toml.Unmarshal(data, &config)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", resolved, err)
	}

	return &config, nil
}

// find locates the config file to load. An explicit path is used as given;
// only the default name triggers the upward search.
func find(path string) (string, bool) {
	if _, err := os.Stat(path); err == nil {
		return path, true
	}
	if path != DefaultFileName {
		return "", false
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false
	}

	dir := cwd
	for {
		for _, name := range []string{DefaultFileName, yamlFileName} {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, true
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
