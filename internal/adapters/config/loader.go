// Package config provides the configuration loader for clpack.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/clpack/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the config file looked up in the working directory.
const DefaultFilename = "clpack.yaml"

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// Load reads the configuration from the given working directory. A missing
// config file yields the built-in defaults.
func (l *FileConfigLoader) Load(cwd string) (*domain.Config, error) {
	name := l.Filename
	if name == "" {
		name = DefaultFilename
	}
	if filepath.IsAbs(name) {
		return Load(name)
	}
	return Load(filepath.Join(cwd, name))
}

// File represents the structure of the clpack.yaml configuration file.
type File struct {
	Version   string       `yaml:"version"`
	Src       string       `yaml:"src"`
	Dst       string       `yaml:"dst"`
	SourceExt string       `yaml:"sourceExt"`
	OutputExt string       `yaml:"outputExt"`
	Exclude   []string     `yaml:"exclude"`
	Copyright CopyrightDTO `yaml:"copyright"`
}

// CopyrightDTO holds the banner fields of the configuration file.
type CopyrightDTO struct {
	Holder string `yaml:"holder"`
	Since  int    `yaml:"since"`
}

// Load reads a configuration file from the given path and returns a validated
// domain.Config. If the file does not exist the defaults are returned.
func Load(path string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	if file.Src != "" {
		cfg.SrcDir = file.Src
	}
	if file.Dst != "" {
		cfg.DstDir = file.Dst
	}
	if file.SourceExt != "" {
		cfg.SourceExt = file.SourceExt
	}
	if file.OutputExt != "" {
		cfg.OutputExt = file.OutputExt
	}
	if file.Exclude != nil {
		cfg.Exclude = file.Exclude
	}
	cfg.Holder = file.Copyright.Holder
	cfg.Since = file.Copyright.Since

	if err := cfg.Validate(); err != nil {
		return nil, zerr.Wrap(err, "invalid config file")
	}

	return cfg, nil
}
