package langtag

import "fmt"

// Chain is the fully expanded, ordered, deduplicated list of canonical tags
// tried during rule lookup. Later elements are strictly lower preference
// than earlier ones. A valid chain is never empty and always contains the
// configured fallback tag; when the fallback also appears among the
// preferences it keeps its earlier position.
type Chain []string

// Index returns the position of tag within the chain under tag equivalence,
// or -1 when the tag is not part of the chain.
func (c Chain) Index(tag string) int {
	norm := clean(tag)
	for i, t := range c {
		if t == norm {
			return i
		}
	}
	return -1
}

// Contains reports whether the chain includes tag under tag equivalence.
func (c Chain) Contains(tag string) bool {
	return c.Index(tag) >= 0
}

// Resolve expands an ordered language preference list into a fallback chain.
//
// Each preference contributes, in order: its canonical tag, its
// superordinate tags ("en_au" also yields "en"), and alternate tags known to
// denote the same language. When enablePanic is set, tags of related
// languages are appended after all of the above as a last-resort
// approximation. The normalized fallback tag terminates the chain.
// Duplicates are removed under tag equivalence, keeping first-seen order.
//
// Unparseable preferences are skipped; an empty or unparseable fallback is a
// configuration error (ErrNoFallback).
func Resolve(preferences []string, enablePanic bool, fallback string) (Chain, error) {
	fallbackTag, err := Normalize(fallback)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNoFallback, fallback)
	}

	var working []string
	for _, pref := range preferences {
		tag, err := Normalize(pref)
		if err != nil {
			continue
		}
		working = append(working, tag)
		working = append(working, superordinates(tag)...)
	}

	// Alternates of everything gathered so far, in gathered order.
	for _, tag := range append([]string(nil), working...) {
		working = append(working, alternatesFor(tag)...)
	}

	if enablePanic {
		for _, tag := range append([]string(nil), working...) {
			working = append(working, panicsFor(tag)...)
		}
	}

	working = append(working, fallbackTag)

	chain := make(Chain, 0, len(working))
	seen := make(map[string]struct{}, len(working))
	for _, tag := range working {
		// Tags in working are already canonical; clean again so the
		// dedupe key matches what Index uses.
		tag = clean(tag)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		chain = append(chain, tag)
	}

	return chain, nil
}
