// Package config provides the settings loader for mason.
package config

import (
	_ "embed"
	"fmt"
	"path/filepath"

	"github.com/gracelang/mason/internal/core/domain"
	"github.com/gracelang/mason/internal/core/ports"
	"github.com/xeipuuv/gojsonschema"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

//go:embed mason.schema.json
var schemaBytes []byte

// Loader implements ports.SettingsLoader using a YAML file.
type Loader struct {
	fs     FileSystem
	logger ports.Logger
}

// NewLoader creates a new Loader reading through the given filesystem.
func NewLoader(fsys FileSystem, logger ports.Logger) *Loader {
	return &Loader{fs: fsys, logger: logger}
}

var _ ports.SettingsLoader = (*Loader)(nil)

// Load discovers mason.yaml by walking up from cwd and returns the
// resolved settings. A missing file is not an error: the defaults
// reproduce the project's conventional layout, anchored at cwd.
func (l *Loader) Load(cwd string) (*domain.Settings, error) {
	path, found := l.find(cwd)
	if !found {
		return domain.DefaultSettings(cwd), nil
	}

	masonfile, err := l.read(path)
	if err != nil {
		return nil, err
	}

	settings := masonfile.toSettings(filepath.Dir(path))
	if settings.Backend != domain.DefaultBackend {
		l.logger.Warn(fmt.Sprintf("backend %q is not the supported %q backend, invoking it with cmake-shaped arguments", settings.Backend, domain.DefaultBackend))
	}

	return settings, nil
}

// Validate checks the discovered settings file against the embedded
// schema and returns its path. Unlike Load, a missing file is an error:
// there is nothing to validate.
func (l *Loader) Validate(cwd string) (string, error) {
	path, found := l.find(cwd)
	if !found {
		return "", zerr.With(domain.ErrSettingsNotFound, "cwd", cwd)
	}

	raw, err := l.fs.ReadFile(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrSettingsReadFailed.Error()), "path", path)
	}

	// The schema speaks JSON, so the YAML document is handed over as a
	// generic Go value.
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrSettingsParseFailed.Error()), "path", path)
	}
	if doc == nil {
		// An empty file is an empty settings object.
		doc = map[string]any{}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaBytes),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrSettingsInvalid.Error()), "path", path)
	}

	if !result.Valid() {
		invalid := zerr.With(domain.ErrSettingsInvalid, "path", path)
		for i, desc := range result.Errors() {
			invalid = zerr.With(invalid, fmt.Sprintf("problem_%d", i+1), desc.String())
		}
		return "", invalid
	}

	return path, nil
}

// find walks up from cwd looking for the settings file.
func (l *Loader) find(cwd string) (string, bool) {
	dir := cwd
	for {
		path := filepath.Join(dir, domain.SettingsFileName)
		if info, err := l.fs.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return "", false
		}
		dir = parent
	}
}

func (l *Loader) read(path string) (*Masonfile, error) {
	raw, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsReadFailed.Error()), "path", path)
	}

	var masonfile Masonfile
	if err := yaml.Unmarshal(raw, &masonfile); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsParseFailed.Error()), "path", path)
	}

	return &masonfile, nil
}

// toSettings merges the parsed file over the defaults. Unset fields
// keep their default; zero or negative numbers count as unset.
func (f *Masonfile) toSettings(root string) *domain.Settings {
	settings := domain.DefaultSettings(root)
	settings.Version = f.Version
	settings.Generator = f.Generator
	settings.Defines = f.Defines

	if f.Backend != "" {
		settings.Backend = f.Backend
	}
	if f.Source != "" {
		settings.Source = f.Source
	}
	if f.BuildDir != "" {
		settings.BuildDir = f.BuildDir
	}
	if f.Jobs > 0 {
		settings.Jobs = f.Jobs
	}
	if f.Benchmark.Script != "" {
		settings.Benchmark.Script = f.Benchmark.Script
	}
	if f.Benchmark.Iterations > 0 {
		settings.Benchmark.Iterations = f.Benchmark.Iterations
	}
	if f.Examples.Dir != "" {
		settings.Examples.Dir = f.Examples.Dir
	}

	return settings
}
