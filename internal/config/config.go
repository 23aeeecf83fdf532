// Package config provides the configuration schema and loaders for the
// OrderVox resolution engine: engine tuning, logging, telemetry, and the
// optional catalog and correction-table override files.
//
// The engine itself never reads files; this package is the loading
// collaborator that validates all static inputs before the engine starts.
// Malformed catalog or rule data is rejected here, at initialization; it is
// the only fatal error class in the system.
package config

import "github.com/ordervox/ordervox/pkg/menu"

// LogLevel controls log verbosity.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Config is the root configuration structure for OrderVox.
// It is typically loaded from a YAML file using [Load] or [LoadFromReader].
type Config struct {
	// LogLevel controls verbosity. Empty means "info".
	LogLevel LogLevel `yaml:"log_level"`

	// Telemetry configures the OTel providers.
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Engine holds the resolution tuning knobs.
	Engine EngineConfig `yaml:"engine"`

	// CatalogFile optionally points to a YAML catalog replacing the
	// built-in menu. Empty means use the default catalog.
	CatalogFile string `yaml:"catalog_file"`

	// CorrectionsFile optionally points to a YAML rule table replacing the
	// built-in STT corrections. Empty means use the default table.
	CorrectionsFile string `yaml:"corrections_file"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	// ServiceName is reported in telemetry resource attributes.
	// Empty means "ordervox".
	ServiceName string `yaml:"service_name"`
}

// EngineConfig carries the engine's tuning constants. Both started life as
// hard-coded literals; they are configuration so they can be tuned without a
// rebuild.
type EngineConfig struct {
	// FuzzyThreshold is the minimum normalized word similarity accepted by
	// the fuzzy resolution pass. Zero means the default (0.65).
	FuzzyThreshold float64 `yaml:"fuzzy_threshold"`

	// MaxQuantity is the largest per-line quantity accepted before a
	// segment is rejected. Zero means the default (20).
	MaxQuantity int `yaml:"max_quantity"`
}

// catalogFile is the on-disk shape of a catalog override.
type catalogFile struct {
	Items []menu.Item `yaml:"items"`
}

// rulesFile is the on-disk shape of a correction-table override. The list
// order is the rule precedence order.
type rulesFile struct {
	Rules []ruleEntry `yaml:"rules"`
}

type ruleEntry struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}
