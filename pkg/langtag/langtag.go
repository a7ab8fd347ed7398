// Package langtag normalizes language/locale identifiers and expands an
// ordered preference list into the full fallback chain used during rule
// lookup.
//
// Tags are stored in a canonical internal form: lowercase, underscore
// separated, restricted to [a-z0-9_] (for example "en_au"). Input may use
// locale syntax ("en-AU", "en_AU.UTF-8"); parseable tags are canonicalized
// through golang.org/x/text/language, everything else falls back to a plain
// character-level cleanup so private or irregular tags still round-trip.
package langtag

import (
	"errors"
	"strings"

	"golang.org/x/text/language"
)

// ErrNoFallback indicates the configured fallback language is empty or
// cannot be normalized. Resolution cannot produce a valid chain without a
// terminal fallback, so this is fatal at construction time.
var ErrNoFallback = errors.New("fallback language is empty or invalid")

// ErrEmptyTag indicates a tag normalized to the empty string.
var ErrEmptyTag = errors.New("language tag is empty after normalization")

// Normalize converts a language/locale string into the canonical internal
// form. An encoding suffix (".UTF-8") and POSIX modifiers ("@euro") are
// stripped before parsing.
//
// Normalization is case and separator canonicalization only. Deprecated
// ISO codes ("iw", "in", "ji", "tl") are kept as written; mapping them to
// their successors is the alternates table's job, which preserves the
// caller's preference order.
func Normalize(s string) (string, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return "", ErrEmptyTag
	}

	// x/text wants BCP 47 syntax. Raw parsing validates and canonicalizes
	// casing without substituting legacy subtags.
	bcp := strings.ReplaceAll(s, "_", "-")
	if tag, err := language.Raw.Parse(bcp); err == nil {
		s = tag.String()
	}

	out := clean(s)
	if out == "" {
		return "", ErrEmptyTag
	}
	return out, nil
}

// Equal reports whether two tags denote the same language variant,
// ignoring case and separator differences.
func Equal(a, b string) bool {
	return clean(a) == clean(b)
}

// clean lowercases, maps separators to underscore and drops every other
// character outside [a-z0-9_]. Consecutive and trailing separators collapse.
func clean(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSep := true // suppress a leading separator
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
			lastSep = false
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastSep = false
		case r == '-' || r == '_':
			if !lastSep {
				b.WriteByte('_')
				lastSep = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}

// primary returns the primary language subtag of a canonical tag
// ("en_au" -> "en").
func primary(tag string) string {
	if i := strings.IndexByte(tag, '_'); i >= 0 {
		return tag[:i]
	}
	return tag
}

// superordinates returns the more general tags subsuming a canonical tag,
// most specific first ("en_au_posix" -> ["en_au", "en"]).
func superordinates(tag string) []string {
	var supers []string
	for {
		i := strings.LastIndexByte(tag, '_')
		if i < 0 {
			return supers
		}
		tag = tag[:i]
		supers = append(supers, tag)
	}
}
