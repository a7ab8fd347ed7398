package config

import (
	"fmt"

	"glossa-hq/rosetta/pkg/engine"
	"glossa-hq/rosetta/pkg/langtag"
	"glossa-hq/rosetta/pkg/telemetry/logging"
)

// Validate checks the configuration after defaults are applied. It returns
// the first error found; configuration errors are fatal and never silently
// corrected.
func Validate(cfg *Config) error {
	if _, err := langtag.Normalize(cfg.FallbackLanguage); err != nil {
		return fmt.Errorf("fallback_language %q: %w", cfg.FallbackLanguage, err)
	}

	if _, err := engine.ParseNumericFormat(cfg.NumericFormat); err != nil {
		return fmt.Errorf("numeric_format: %w", err)
	}

	switch cfg.Lexicon.Source {
	case "", SourceFile, SourceDirectory, SourceSQLite:
	default:
		return fmt.Errorf("lexicon.source %q: must be %q, %q or %q",
			cfg.Lexicon.Source, SourceFile, SourceDirectory, SourceSQLite)
	}
	if cfg.Lexicon.Source != "" && cfg.Lexicon.Path == "" {
		return fmt.Errorf("lexicon.path is required when lexicon.source is set")
	}
	if cfg.Lexicon.Watch && cfg.Lexicon.Source == SourceSQLite {
		return fmt.Errorf("lexicon.watch is not supported for the sqlite source; use reload_schedule")
	}
	if cfg.Lexicon.DebounceInterval < 0 {
		return fmt.Errorf("lexicon.debounce_interval must not be negative")
	}

	if _, err := logging.ParseLevel(cfg.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if _, err := logging.ParseFormat(cfg.Logging.Format); err != nil {
		return fmt.Errorf("logging.format: %w", err)
	}

	if cfg.Server.ShutdownTimeout < 0 || cfg.Server.ReadTimeout < 0 || cfg.Server.WriteTimeout < 0 {
		return fmt.Errorf("server timeouts must not be negative")
	}

	return nil
}
