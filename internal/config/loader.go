package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ordervox/ordervox/internal/correct"
	"github.com/ordervox/ordervox/pkg/menu"
)

// Load reads the YAML configuration file at path and returns a validated
// [Config]. It is a convenience wrapper around [LoadFromReader].
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r and validates the result.
// Useful in tests where configs are constructed from string literals.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.LogLevel != "" && !cfg.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("log_level %q is invalid; valid values: debug, info, warn, error", cfg.LogLevel))
	}
	if t := cfg.Engine.FuzzyThreshold; t < 0 || t > 1 {
		errs = append(errs, fmt.Errorf("engine.fuzzy_threshold %v is invalid; must be within [0, 1], where 0 means the default", t))
	}
	if cfg.Engine.MaxQuantity < 0 {
		errs = append(errs, fmt.Errorf("engine.max_quantity %d is invalid; must not be negative, where 0 means the default", cfg.Engine.MaxQuantity))
	}

	return errors.Join(errs...)
}

// Catalog returns the catalog configured by cfg: the file at CatalogFile
// when set, the built-in menu otherwise. Malformed catalog data is a fatal
// initialization error.
func (cfg *Config) Catalog() (*menu.Catalog, error) {
	if cfg.CatalogFile == "" {
		return menu.Default(), nil
	}

	f, err := os.Open(cfg.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("config: open catalog %q: %w", cfg.CatalogFile, err)
	}
	defer f.Close()

	cat, err := LoadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("config: catalog %q: %w", cfg.CatalogFile, err)
	}
	return cat, nil
}

// LoadCatalog decodes and validates a YAML catalog from r.
func LoadCatalog(r io.Reader) (*menu.Catalog, error) {
	var file catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if len(file.Items) == 0 {
		return nil, errors.New("catalog contains no items")
	}

	var errs []error
	seen := make(map[int]string, len(file.Items))
	for i, it := range file.Items {
		if it.ID <= 0 {
			errs = append(errs, fmt.Errorf("item %d: id %d is invalid; must be positive", i, it.ID))
		}
		if prev, dup := seen[it.ID]; dup {
			errs = append(errs, fmt.Errorf("item %d: id %d already used by %q", i, it.ID, prev))
		}
		seen[it.ID] = it.Name
		if it.Name == "" {
			errs = append(errs, fmt.Errorf("item %d: name is empty", i))
		}
		if it.Price < 0 {
			errs = append(errs, fmt.Errorf("item %q: price %d is negative", it.Name, it.Price))
		}
		if !it.Category.IsValid() {
			errs = append(errs, fmt.Errorf("item %q: category %q is invalid", it.Name, it.Category))
		}
		if it.Size != "" && !it.Size.IsValid() {
			errs = append(errs, fmt.Errorf("item %q: size %q is invalid; valid values: small, medium, large", it.Name, it.Size))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return menu.New(file.Items), nil
}

// Corrector returns the correction table configured by cfg: the file at
// CorrectionsFile when set, the built-in table otherwise.
func (cfg *Config) Corrector() (*correct.Corrector, error) {
	if cfg.CorrectionsFile == "" {
		return correct.Default(), nil
	}

	f, err := os.Open(cfg.CorrectionsFile)
	if err != nil {
		return nil, fmt.Errorf("config: open corrections %q: %w", cfg.CorrectionsFile, err)
	}
	defer f.Close()

	c, err := LoadRules(f)
	if err != nil {
		return nil, fmt.Errorf("config: corrections %q: %w", cfg.CorrectionsFile, err)
	}
	return c, nil
}

// LoadRules decodes and validates a YAML correction table from r. The rule
// order in the file is the precedence order and is preserved exactly.
func LoadRules(r io.Reader) (*correct.Corrector, error) {
	var file rulesFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if len(file.Rules) == 0 {
		return nil, errors.New("correction table contains no rules")
	}

	var errs []error
	rules := make([]correct.Rule, 0, len(file.Rules))
	for i, r := range file.Rules {
		if r.Pattern == "" {
			errs = append(errs, fmt.Errorf("rule %d: pattern is empty", i))
		}
		if r.Replacement == "" {
			errs = append(errs, fmt.Errorf("rule %d (%q): replacement is empty", i, r.Pattern))
		}
		rules = append(rules, correct.Rule{Pattern: r.Pattern, Replacement: r.Replacement})
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return correct.New(rules), nil
}
