// Package config defines the YAML configuration for the rosetta engine and
// tooling: language preferences, the lexicon source, rendering behavior,
// logging, metrics, and the HTTP server. Configuration is loaded once,
// validated, and treated as read-only; there are no process-wide mutable
// flags.
package config

import "time"

// Config is the root configuration.
type Config struct {
	// Languages is the ordered language preference list, most preferred
	// first. Locale syntax is accepted ("en-AU", "en_AU").
	Languages []string `yaml:"languages"`

	// FallbackLanguage terminates the fallback chain. Required.
	FallbackLanguage string `yaml:"fallback_language"`

	// EnablePanic adds last-resort related-language tags to the chain.
	EnablePanic bool `yaml:"enable_panic"`

	// NumericFormat is "none", "comma" or "dot".
	NumericFormat string `yaml:"numeric_format"`

	// StrictArguments renders missing arguments as a visible marker
	// instead of silently substituting the empty string.
	StrictArguments bool `yaml:"strict_arguments"`

	Lexicon LexiconConfig `yaml:"lexicon"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
	Server  ServerConfig  `yaml:"server"`
}

// Lexicon source kinds.
const (
	SourceFile      = "file"
	SourceDirectory = "directory"
	SourceSQLite    = "sqlite"
)

// LexiconConfig selects and tunes the rule repository.
type LexiconConfig struct {
	// Source is one of "file", "directory", "sqlite".
	Source string `yaml:"source"`

	// Path is the rule file, directory, or SQLite database path.
	Path string `yaml:"path"`

	// Encoding is the character encoding of rule files ("utf-8" default;
	// any IANA charset name is accepted, e.g. "ISO-8859-1").
	Encoding string `yaml:"encoding"`

	// Table is the SQLite table name (default "translations").
	Table string `yaml:"table"`

	// Watch enables fsnotify-based hot reload for file and directory
	// sources.
	Watch bool `yaml:"watch"`

	// DebounceInterval is the quiet period before a watch-triggered
	// reload.
	DebounceInterval time.Duration `yaml:"debounce_interval"`

	// ReloadSchedule is an optional cron expression for periodic reloads
	// ("*/15 * * * *"). Empty disables scheduled reloading.
	ReloadSchedule string `yaml:"reload_schedule"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	// Level is "debug", "info", "warn" or "error".
	Level string `yaml:"level"`

	// Format is "text" or "json".
	Format string `yaml:"format"`

	// AddSource includes file:line in log records.
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig controls Prometheus instrumentation.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
	Subsystem string `yaml:"subsystem"`
}

// ServerConfig controls the HTTP translation server.
type ServerConfig struct {
	// ListenAddress is the host:port to bind ("127.0.0.1:8089").
	ListenAddress string `yaml:"listen_address"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// ReadTimeout and WriteTimeout bound request handling.
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}
