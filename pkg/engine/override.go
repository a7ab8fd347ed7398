package engine

import (
	"sync"

	"glossa-hq/rosetta/pkg/langtag"
)

// Override customizes per-language behavior over a fixed capability set.
// Each method reports whether the override handled the call; on false the
// engine falls back to its default behavior (or the next weaker language).
type Override interface {
	// FormatNumber renders a numeric argument for the language.
	FormatNumber(n float64, mode NumericFormat) (string, bool)

	// ParseYesNo interprets a localized affirmative/negative answer.
	ParseYesNo(input string) (yes bool, ok bool)
}

// OverrideRegistry maps normalized language tags to Override
// implementations. The engine consults the first registered override along
// the active fallback chain.
type OverrideRegistry struct {
	mu        sync.RWMutex
	overrides map[string]Override
}

// NewOverrideRegistry creates an empty registry.
func NewOverrideRegistry() *OverrideRegistry {
	return &OverrideRegistry{overrides: make(map[string]Override)}
}

// Register installs an override for a language tag, replacing any previous
// registration. The tag is normalized before storage.
func (r *OverrideRegistry) Register(tag string, o Override) error {
	norm, err := langtag.Normalize(tag)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.overrides[norm] = o
	r.mu.Unlock()
	return nil
}

// Lookup returns the first override registered for any tag in the chain,
// in chain order, or nil when none is registered.
func (r *OverrideRegistry) Lookup(chain langtag.Chain) Override {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, tag := range chain {
		if o, ok := r.overrides[tag]; ok {
			return o
		}
	}
	return nil
}
