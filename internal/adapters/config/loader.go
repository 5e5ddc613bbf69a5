// Package config loads the optional wodl.yaml run configuration.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"go.trai.ch/wodl/internal/core/domain"
	"go.trai.ch/wodl/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration at path and merges it over the defaults.
// An empty path means wodl.yaml in the working directory. A missing file yields the defaults.
func (l *Loader) Load(path string) (*domain.Config, error) {
	if path == "" {
		path = domain.ConfigFileName
	}

	var file File
	found, err := readAndUnmarshalYAML(path, &file)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	if !found {
		l.Logger.Debug("no " + path + " found, using the default configuration")
		return Defaults(), nil
	}

	cfg, err := build(&file)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return cfg, nil
}

func readAndUnmarshalYAML[T any](path string, target *T) (bool, error) {
	// #nosec G304 -- path is chosen by the operator
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return false, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return true, nil
}

// build overlays the file onto the defaults and validates the result.
func build(file *File) (*domain.Config, error) {
	cfg := Defaults()

	if file.API.BaseURL != "" {
		cfg.API.BaseURL = strings.TrimRight(file.API.BaseURL, "/")
	}
	if file.API.WorkOrderLimit != nil {
		cfg.API.WorkOrderLimit = *file.API.WorkOrderLimit
	}
	if file.API.LookupTimeout != nil {
		cfg.API.LookupTimeout = *file.API.LookupTimeout
	}

	if file.Cache.Dir != "" {
		cfg.Cache.Dir = file.Cache.Dir
	}
	if file.Cache.Reuse != "" {
		cfg.Cache.Reuse = domain.ReuseMode(file.Cache.Reuse)
	}
	if file.Cache.NotFoundTTL != nil {
		cfg.Cache.NotFoundTTL = *file.Cache.NotFoundTTL
	}

	if file.Export.Dir != "" {
		cfg.Export.Dir = file.Export.Dir
	}
	if file.Export.Separator != "" {
		cfg.Export.Separator = file.Export.Separator
	}

	if file.Enrich.Concurrency != nil {
		cfg.Enrich.Concurrency = *file.Enrich.Concurrency
	}
	if file.Enrich.ProgressEvery != nil {
		cfg.Enrich.ProgressEvery = *file.Enrich.ProgressEvery
	}
	if file.Enrich.Strategies != nil {
		cfg.Enrich.Strategies = make([]domain.StrategySpec, 0, len(file.Enrich.Strategies))
		for _, dto := range file.Enrich.Strategies {
			cfg.Enrich.Strategies = append(cfg.Enrich.Strategies, buildStrategy(dto))
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildStrategy(dto StrategyDTO) domain.StrategySpec {
	spec := domain.StrategySpec{
		Kind: domain.StrategyKind(dto.Kind),
		Keep: dto.Keep,
	}
	for _, ref := range dto.Fields {
		spec.Fields = append(spec.Fields, domain.FieldRef{
			Field:  strings.TrimSpace(ref.Field),
			Entity: domain.EntityType(strings.TrimSpace(ref.Entity)),
		})
	}
	return spec
}
