package lexicon

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"glossa-hq/rosetta/pkg/langtag"
)

// FileSource loads rules from a single flat file and serves them from an
// in-memory snapshot. Reload re-reads the file atomically: a parse failure
// keeps the previous snapshot active.
type FileSource struct {
	path     string
	encoding string
	logger   *slog.Logger

	mu    sync.RWMutex
	rules []Rule
}

// NewFileSource creates a file repository and performs the initial load.
func NewFileSource(ctx context.Context, path, encodingName string, logger *slog.Logger) (*FileSource, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &FileSource{
		path:     path,
		encoding: encodingName,
		logger:   logger.With("component", "lexicon.file"),
	}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Rules implements Repository.
func (s *FileSource) Rules(_ context.Context, q Query) ([]Rule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Rule
	for _, r := range s.rules {
		if q.Match(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Reload implements Reloader.
func (s *FileSource) Reload(_ context.Context) error {
	rules, err := loadRuleFile(s.path, s.encoding, "")
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.rules = rules
	s.mu.Unlock()

	s.logger.Info("loaded rule file", "path", s.path, "rule_count", len(rules))
	return nil
}

// All returns a copy of the full rule snapshot.
func (s *FileSource) All(_ context.Context) ([]Rule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Rule(nil), s.rules...), nil
}

// Path returns the watched file path.
func (s *FileSource) Path() string { return s.path }

// DirSource loads rules from a directory of per-language files. The
// language of a group that omits the language field is inferred from the
// file name: "en_au.tr" contributes en_au rules.
type DirSource struct {
	dir      string
	ext      string
	encoding string
	logger   *slog.Logger

	mu    sync.RWMutex
	rules []Rule
}

// DefaultExtension is the rule-file extension a DirSource scans for.
const DefaultExtension = ".tr"

// NewDirSource creates a directory repository and performs the initial load.
func NewDirSource(ctx context.Context, dir, encodingName string, logger *slog.Logger) (*DirSource, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &DirSource{
		dir:      dir,
		ext:      DefaultExtension,
		encoding: encodingName,
		logger:   logger.With("component", "lexicon.dir"),
	}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Rules implements Repository.
func (s *DirSource) Rules(_ context.Context, q Query) ([]Rule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Rule
	for _, r := range s.rules {
		if q.Match(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Reload implements Reloader.
func (s *DirSource) Reload(_ context.Context) error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("failed to read lexicon directory %q: %w", s.dir, err)
	}

	var rules []Rule
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), s.ext) {
			continue
		}

		base := strings.TrimSuffix(entry.Name(), s.ext)
		lang, err := langtag.Normalize(base)
		if err != nil {
			s.logger.Warn("skipping rule file with unparseable language name",
				"file", entry.Name(),
				"error", err,
			)
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		fileRules, err := loadRuleFile(path, s.encoding, lang)
		if err != nil {
			return err
		}
		rules = append(rules, fileRules...)
	}

	s.mu.Lock()
	s.rules = rules
	s.mu.Unlock()

	s.logger.Info("loaded rule directory", "dir", s.dir, "rule_count", len(rules))
	return nil
}

// All returns a copy of the full rule snapshot.
func (s *DirSource) All(_ context.Context) ([]Rule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Rule(nil), s.rules...), nil
}

// Path returns the watched directory path.
func (s *DirSource) Path() string { return s.dir }

// loadRuleFile reads and parses one rule file, converting from the named
// encoding to UTF-8.
func loadRuleFile(path, encodingName, defaultLanguage string) ([]Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open rule file %q: %w", path, err)
	}
	defer f.Close()

	r, err := decodeReader(f, encodingName)
	if err != nil {
		return nil, fmt.Errorf("rule file %q: %w", path, err)
	}

	return parseRules(r, path, defaultLanguage)
}
