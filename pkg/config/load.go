package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads configuration from a YAML file, applies defaults, applies
// ROSETTA_* environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	return finish(&cfg)
}

// Default returns a validated configuration without reading a file. Useful
// for one-shot CLI invocations that take everything from flags.
func Default() (*Config, error) {
	return finish(&Config{})
}

func finish(cfg *Config) (*Config, error) {
	ApplyDefaults(cfg)
	applyEnvOverrides(cfg)
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides applies ROSETTA_SECTION_FIELD environment variables.
// Environment always takes precedence over the file.
func applyEnvOverrides(cfg *Config) {
	if v, ok := os.LookupEnv("ROSETTA_LANGUAGES"); ok {
		var langs []string
		for _, l := range strings.Split(v, ",") {
			if l = strings.TrimSpace(l); l != "" {
				langs = append(langs, l)
			}
		}
		cfg.Languages = langs
	}
	if v, ok := os.LookupEnv("ROSETTA_FALLBACK_LANGUAGE"); ok {
		cfg.FallbackLanguage = v
	}
	if v, ok := os.LookupEnv("ROSETTA_NUMERIC_FORMAT"); ok {
		cfg.NumericFormat = v
	}
	if v, ok := lookupBool("ROSETTA_ENABLE_PANIC"); ok {
		cfg.EnablePanic = v
	}
	if v, ok := lookupBool("ROSETTA_STRICT_ARGUMENTS"); ok {
		cfg.StrictArguments = v
	}

	if v, ok := os.LookupEnv("ROSETTA_LEXICON_SOURCE"); ok {
		cfg.Lexicon.Source = v
	}
	if v, ok := os.LookupEnv("ROSETTA_LEXICON_PATH"); ok {
		cfg.Lexicon.Path = v
	}
	if v, ok := os.LookupEnv("ROSETTA_LEXICON_ENCODING"); ok {
		cfg.Lexicon.Encoding = v
	}
	if v, ok := lookupBool("ROSETTA_LEXICON_WATCH"); ok {
		cfg.Lexicon.Watch = v
	}

	if v, ok := os.LookupEnv("ROSETTA_LOG_LEVEL"); ok {
		cfg.Logging.Level = v
	}
	if v, ok := os.LookupEnv("ROSETTA_LOG_FORMAT"); ok {
		cfg.Logging.Format = v
	}

	if v, ok := lookupBool("ROSETTA_METRICS_ENABLED"); ok {
		cfg.Metrics.Enabled = v
	}
	if v, ok := os.LookupEnv("ROSETTA_SERVER_LISTEN_ADDRESS"); ok {
		cfg.Server.ListenAddress = v
	}
}

func lookupBool(name string) (bool, bool) {
	v, ok := os.LookupEnv(name)
	if !ok {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}
