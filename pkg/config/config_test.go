package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
languages: [en-AU, en]
fallback_language: en
numeric_format: comma
lexicon:
  source: directory
  path: /var/lib/rosetta/lexicon
  watch: true
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.Languages) != 2 || cfg.Languages[0] != "en-AU" {
		t.Errorf("Languages = %v", cfg.Languages)
	}
	if cfg.NumericFormat != "comma" {
		t.Errorf("NumericFormat = %q", cfg.NumericFormat)
	}
	if cfg.Lexicon.Source != SourceDirectory || !cfg.Lexicon.Watch {
		t.Errorf("Lexicon = %+v", cfg.Lexicon)
	}

	// Defaults fill the rest.
	if cfg.Lexicon.Encoding != DefaultEncoding {
		t.Errorf("Encoding = %q, want default", cfg.Lexicon.Encoding)
	}
	if cfg.Server.ListenAddress != DefaultListenAddress {
		t.Errorf("ListenAddress = %q, want default", cfg.Server.ListenAddress)
	}
}

func TestLoadDefaultsFallbackLanguage(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if cfg.FallbackLanguage != DefaultFallbackLanguage {
		t.Errorf("FallbackLanguage = %q", cfg.FallbackLanguage)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad numeric format", content: "numeric_format: fancy\n"},
		{name: "bad fallback", content: "fallback_language: '---'\n"},
		{name: "bad source", content: "lexicon:\n  source: carrier-pigeon\n  path: /x\n"},
		{name: "source without path", content: "lexicon:\n  source: file\n"},
		{name: "watch on sqlite", content: "lexicon:\n  source: sqlite\n  path: /x.db\n  watch: true\n"},
		{name: "bad log level", content: "logging:\n  level: chatty\n"},
		{name: "bad yaml", content: "languages: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Error("Load() expected error, got nil")
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ROSETTA_FALLBACK_LANGUAGE", "fr")
	t.Setenv("ROSETTA_LANGUAGES", "fr-CA, fr")
	t.Setenv("ROSETTA_NUMERIC_FORMAT", "dot")
	t.Setenv("ROSETTA_STRICT_ARGUMENTS", "true")

	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	if cfg.FallbackLanguage != "fr" {
		t.Errorf("FallbackLanguage = %q", cfg.FallbackLanguage)
	}
	if len(cfg.Languages) != 2 || cfg.Languages[0] != "fr-CA" || cfg.Languages[1] != "fr" {
		t.Errorf("Languages = %v", cfg.Languages)
	}
	if cfg.NumericFormat != "dot" || !cfg.StrictArguments {
		t.Errorf("cfg = %+v", cfg)
	}
}
