package config

import "time"

// Default values applied before validation.
const (
	DefaultFallbackLanguage = "en"
	DefaultNumericFormat    = "none"
	DefaultEncoding         = "utf-8"
	DefaultTable            = "translations"
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultMetricsNamespace = "rosetta"
	DefaultMetricsSubsystem = "engine"
	DefaultListenAddress    = "127.0.0.1:8089"

	DefaultDebounceInterval = 100 * time.Millisecond
	DefaultShutdownTimeout  = 10 * time.Second
	DefaultReadTimeout      = 5 * time.Second
	DefaultWriteTimeout     = 10 * time.Second
)

// ApplyDefaults fills in zero-valued fields. The fallback language is
// defaulted here; an explicitly empty value in the file therefore still
// yields a working configuration, while a malformed one fails validation.
func ApplyDefaults(cfg *Config) {
	if cfg.FallbackLanguage == "" {
		cfg.FallbackLanguage = DefaultFallbackLanguage
	}
	if cfg.NumericFormat == "" {
		cfg.NumericFormat = DefaultNumericFormat
	}

	if cfg.Lexicon.Encoding == "" {
		cfg.Lexicon.Encoding = DefaultEncoding
	}
	if cfg.Lexicon.Table == "" {
		cfg.Lexicon.Table = DefaultTable
	}
	if cfg.Lexicon.DebounceInterval == 0 {
		cfg.Lexicon.DebounceInterval = DefaultDebounceInterval
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}

	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Metrics.Subsystem == "" {
		cfg.Metrics.Subsystem = DefaultMetricsSubsystem
	}

	if cfg.Server.ListenAddress == "" {
		cfg.Server.ListenAddress = DefaultListenAddress
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultWriteTimeout
	}
}
