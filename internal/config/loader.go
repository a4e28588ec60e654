package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default values for optional settings.
const (
	DefaultStorage        = StorageFileSystem
	DefaultFilenameSuffix = "_name"
	DefaultFileCacheDir   = "%kernel.cache_dir%/uploader"
	DefaultURIPrefix      = "/uploads"
	DefaultDriver         = DriverORM
	defaultTwig           = true
	defaultAutoDetection  = true
	defaultDeleteOnUpdate = true
	defaultDeleteOnRemove = true
	defaultInjectOnLoad   = false
)

// Default returns a configuration with every optional setting at its default.
func Default() *Config {
	return &Config{
		DBDriver:                       DefaultDriver,
		Storage:                        Literal(DefaultStorage),
		Twig:                           defaultTwig,
		DefaultFilenameAttributeSuffix: DefaultFilenameSuffix,
		Metadata: Metadata{
			Cache:         CacheSelector{Kind: CacheFile},
			AutoDetection: defaultAutoDetection,
			FileCache:     FileCache{Dir: DefaultFileCacheDir},
		},
	}
}

// DefaultMapping returns a mapping with every optional setting at its default.
func DefaultMapping() Mapping {
	return Mapping{
		URIPrefix:      DefaultURIPrefix,
		InjectOnLoad:   defaultInjectOnLoad,
		DeleteOnUpdate: defaultDeleteOnUpdate,
		DeleteOnRemove: defaultDeleteOnRemove,
	}
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config. Keys absent from data keep their
// defaults; unknown top-level keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults normalizes values that are case- or whitespace-insensitive.
// A mapping driver is case-folded only when it names a built-in driver;
// custom drivers are kept as written.
func applyDefaults(cfg *Config) {
	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))

	for i := range cfg.Mappings {
		m := &cfg.Mappings[i]
		m.DBDriver = normalizeDriver(m.DBDriver)
	}

	if cfg.Metadata.Cache.Kind == 0 {
		cfg.Metadata.Cache = CacheSelector{Kind: CacheFile}
	}
}

func normalizeDriver(d string) string {
	d = strings.TrimSpace(d)
	if folded := strings.ToLower(d); IsKnownDriver(folded) {
		return folded
	}

	return d
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// WriteFile writes a Config to the given path.
func WriteFile(cfg *Config, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
