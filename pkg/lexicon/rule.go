// Package lexicon defines the translation rule data model and the
// repositories that load rules from flat files, directories of per-language
// files, or a SQLite table.
//
// Repositories own all I/O concerns: locating and caching source data,
// reloading it, and normalizing character encodings to UTF-8. The selection
// engine only ever sees immutable Rule values.
package lexicon

import (
	"errors"
	"fmt"

	"glossa-hq/rosetta/pkg/langtag"
)

// Rule is one candidate translation: a key, the language the translation is
// written in, an optional disambiguating context, a selection priority, an
// optional guard expression and the translation text itself. Rules are
// created at load time and read-only afterward.
//
// A rule with a non-empty expression and priority 0 is valid: priority only
// orders candidates within the same language, it is not tied to the guard.
type Rule struct {
	Key         string
	Language    string // canonical tag, e.g. "en_au"
	Context     string // empty means "no context"
	Priority    int
	Expression  string // empty means "always matches"
	Translation string // may contain positional placeholders [_1], [_2], ...
}

// Validation errors for rule records.
var (
	ErrMissingKey         = errors.New("rule has no key")
	ErrMissingTranslation = errors.New("rule has no translation")
	ErrMissingLanguage    = errors.New("rule has no language")
)

// Validate checks the structural invariants of a rule and normalizes its
// language tag in place.
func (r *Rule) Validate() error {
	if r.Key == "" {
		return ErrMissingKey
	}
	if r.Translation == "" {
		return fmt.Errorf("%w: key %q", ErrMissingTranslation, r.Key)
	}
	if r.Language == "" {
		return fmt.Errorf("%w: key %q", ErrMissingLanguage, r.Key)
	}
	tag, err := langtag.Normalize(r.Language)
	if err != nil {
		return fmt.Errorf("rule %q: invalid language %q: %w", r.Key, r.Language, err)
	}
	r.Language = tag
	return nil
}

// Query identifies the candidate pool for one lookup: all rules with the
// given key and context whose language is one of Languages.
type Query struct {
	Context   string
	Key       string
	Languages []string // canonical tags, highest preference first
}

// Match reports whether a rule belongs to the query's candidate pool.
func (q Query) Match(r Rule) bool {
	if r.Key != q.Key || r.Context != q.Context {
		return false
	}
	for _, lang := range q.Languages {
		if langtag.Equal(r.Language, lang) {
			return true
		}
	}
	return false
}
