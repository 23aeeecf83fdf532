package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ordervox/ordervox/internal/config"
)

func TestLoadFromReader(t *testing.T) {
	t.Parallel()

	const raw = `
log_level: debug
telemetry:
  service_name: ordervox-test
engine:
  fuzzy_threshold: 0.8
  max_quantity: 10
`
	cfg, err := config.LoadFromReader(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}

	if cfg.LogLevel != config.LogDebug {
		t.Errorf("LogLevel=%q, want debug", cfg.LogLevel)
	}
	if cfg.Telemetry.ServiceName != "ordervox-test" {
		t.Errorf("ServiceName=%q, want ordervox-test", cfg.Telemetry.ServiceName)
	}
	if cfg.Engine.FuzzyThreshold != 0.8 {
		t.Errorf("FuzzyThreshold=%v, want 0.8", cfg.Engine.FuzzyThreshold)
	}
	if cfg.Engine.MaxQuantity != 10 {
		t.Errorf("MaxQuantity=%d, want 10", cfg.Engine.MaxQuantity)
	}
}

func TestLoadFromReader_EmptyIsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFromReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadFromReader(empty): %v", err)
	}
	if cfg.LogLevel != "" || cfg.Engine.FuzzyThreshold != 0 || cfg.Engine.MaxQuantity != 0 {
		t.Errorf("LoadFromReader(empty)=%+v, want zero values", cfg)
	}
}

func TestLoadFromReader_UnknownFieldRejected(t *testing.T) {
	t.Parallel()

	_, err := config.LoadFromReader(strings.NewReader("log_levl: info\n"))
	if err == nil {
		t.Fatal("LoadFromReader with misspelled key: no error, want decode failure")
	}
}

func TestValidate_CollectsAllFailures(t *testing.T) {
	t.Parallel()

	const raw = `
log_level: loud
engine:
  fuzzy_threshold: 1.5
  max_quantity: -3
`
	_, err := config.LoadFromReader(strings.NewReader(raw))
	if err == nil {
		t.Fatal("LoadFromReader: no error, want validation failures")
	}
	for _, want := range []string{"log_level", "fuzzy_threshold", "max_quantity"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestValidate_ZeroThresholdMeansDefault(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFromReader(strings.NewReader("engine:\n  fuzzy_threshold: 0\n"))
	if err != nil {
		t.Fatalf("LoadFromReader(zero threshold): %v, want accepted as default marker", err)
	}
	if cfg.Engine.FuzzyThreshold != 0 {
		t.Errorf("FuzzyThreshold=%v, want 0", cfg.Engine.FuzzyThreshold)
	}
}

func TestLoad_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log_level: warn\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != config.LogWarn {
		t.Errorf("LogLevel=%q, want warn", cfg.LogLevel)
	}

	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load(missing file): no error")
	}
}

func TestConfig_DefaultCatalogAndCorrector(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}

	cat, err := cfg.Catalog()
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	if cat.Len() != 62 {
		t.Errorf("default catalog has %d items, want 62", cat.Len())
	}

	c, err := cfg.Corrector()
	if err != nil {
		t.Fatalf("Corrector: %v", err)
	}
	if got := c.Correct("prize"); got != "fries" {
		t.Errorf("default corrector: Correct(%q)=%q, want fries", "prize", got)
	}
}

func TestLoadCatalog(t *testing.T) {
	t.Parallel()

	const raw = `
items:
  - id: 1
    name: Margherita Pizza
    price: 899
    category: pizza
  - id: 2
    name: Large Fries
    price: 199
    category: fries
    size: large
`
	cat, err := config.LoadCatalog(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("Len()=%d, want 2", cat.Len())
	}
	it, ok := cat.ByID(2)
	if !ok || it.Name != "Large Fries" {
		t.Errorf("ByID(2)=(%+v, %v), want Large Fries", it, ok)
	}
}

func TestLoadCatalog_Invalid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"no items", "items: []\n", "no items"},
		{"duplicate id", `
items:
  - {id: 1, name: Pepsi, price: 99, category: drinks}
  - {id: 1, name: Sprite, price: 99, category: drinks}
`, "already used"},
		{"bad category", `
items:
  - {id: 1, name: Haggis, price: 500, category: scottish}
`, "category"},
		{"negative price", `
items:
  - {id: 1, name: Pepsi, price: -1, category: drinks}
`, "price"},
		{"empty name", `
items:
  - {id: 1, name: "", price: 99, category: drinks}
`, "name is empty"},
		{"bad size", `
items:
  - {id: 1, name: Fries, price: 99, category: fries, size: colossal}
`, "size"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.LoadCatalog(strings.NewReader(tc.raw))
			if err == nil {
				t.Fatal("LoadCatalog: no error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadRules(t *testing.T) {
	t.Parallel()

	const raw = `
rules:
  - pattern: loaded prize
    replacement: loaded fries
  - pattern: prize
    replacement: fries
`
	c, err := config.LoadRules(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("LoadRules: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len()=%d, want 2", c.Len())
	}

	// File order is precedence order: the earlier two-word rule must win.
	if got := c.Correct("loaded prize"); got != "loaded fries" {
		t.Errorf("Correct(%q)=%q, want loaded fries", "loaded prize", got)
	}
}

func TestLoadRules_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := config.LoadRules(strings.NewReader("rules: []\n")); err == nil {
		t.Error("LoadRules(no rules): no error")
	}

	const raw = `
rules:
  - pattern: ""
    replacement: fries
`
	if _, err := config.LoadRules(strings.NewReader(raw)); err == nil {
		t.Error("LoadRules(empty pattern): no error")
	}
}
