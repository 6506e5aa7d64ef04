// Package config provides the configuration loader for sourcerer.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/sourcerer/internal/core/domain"
	"go.trai.ch/sourcerer/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const supportedVersion = "1"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration at path. With an empty path the default file in
// the working directory is used, and its absence yields the defaults.
//
// Relative paths in the file resolve against the file's directory, and every
// path of the result is absolute. Without a mount entry the file's directory
// is the mount root.
func (l *Loader) Load(path string) (*domain.Config, error) {
	explicit := path != ""
	if !explicit {
		path = domain.ConfigFileName
	}

	base, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, domain.WithMeta(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file File
	err = readAndUnmarshalYAML(path, &file)
	switch {
	case err == nil:
	case !explicit && errors.Is(err, os.ErrNotExist):
		l.Logger.Info(fmt.Sprintf("no %s found, using defaults", domain.ConfigFileName))
		cfg := merge(domain.DefaultConfig(), &File{}, base)
		return cfg, cfg.Validate()
	default:
		return nil, domain.WithMeta(err, "path", path)
	}

	if file.Version != "" && file.Version != supportedVersion {
		return nil, zerr.With(domain.WithMeta(domain.ErrInvalidConfig, "version", file.Version), "path", path)
	}

	cfg := merge(domain.DefaultConfig(), &file, base)
	if err := cfg.Validate(); err != nil {
		return nil, domain.WithMeta(err, "path", path)
	}
	return cfg, nil
}

// merge applies f onto the defaults. base must be absolute.
func merge(cfg *domain.Config, f *File, base string) *domain.Config {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}

	cfg.MountRoot = base
	if f.Mount != "" {
		cfg.MountRoot = resolve(f.Mount)
	}
	if f.Catalog != "" {
		cfg.CatalogPath = f.Catalog
	}
	if f.Report != "" {
		cfg.ReportPath = f.Report
	}
	if f.Analysis != "" {
		cfg.AnalysisPath = f.Analysis
	}
	if f.State != "" {
		cfg.StateDir = f.State
	}
	cfg.CatalogPath = resolve(cfg.CatalogPath)
	cfg.ReportPath = resolve(cfg.ReportPath)
	cfg.AnalysisPath = resolve(cfg.AnalysisPath)
	cfg.StateDir = resolve(cfg.StateDir)

	if f.Workers != 0 {
		cfg.Workers = f.Workers
	}
	if f.ProgressInterval != 0 {
		cfg.ProgressInterval = f.ProgressInterval
	}

	if f.Build.Tool != "" {
		cfg.Build.Tool = f.Build.Tool
	}
	if f.Build.Target != "" {
		cfg.Build.Target = f.Build.Target
	}
	cfg.Build.Timeout = f.Build.Timeout
	cfg.Build.Env = f.Build.Env

	cfg.Index.URL = f.Index.URL
	if f.Index.Timeout != 0 {
		cfg.Index.Timeout = f.Index.Timeout
	}
	if f.Index.PollInterval != 0 {
		cfg.Index.PollInterval = f.Index.PollInterval
	}
	return cfg
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is chosen by the operator
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(configFile))
	dec.KnownFields(true)
	if parseErr := dec.Decode(target); parseErr != nil && !errors.Is(parseErr, io.EOF) {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
