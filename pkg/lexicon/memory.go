package lexicon

import (
	"context"
	"sync"
)

// MemorySource is an in-memory rule repository, used by tests and by callers
// that assemble their lexicon programmatically.
type MemorySource struct {
	mu    sync.RWMutex
	rules []Rule
}

// NewMemorySource creates a memory repository seeded with the given rules.
// Invalid rules are rejected.
func NewMemorySource(rules ...Rule) (*MemorySource, error) {
	s := &MemorySource{}
	if err := s.Replace(rules); err != nil {
		return nil, err
	}
	return s, nil
}

// Replace swaps the full rule set atomically.
func (s *MemorySource) Replace(rules []Rule) error {
	validated := make([]Rule, len(rules))
	for i, r := range rules {
		if err := r.Validate(); err != nil {
			return err
		}
		validated[i] = r
	}

	s.mu.Lock()
	s.rules = validated
	s.mu.Unlock()
	return nil
}

// Add appends rules to the current set.
func (s *MemorySource) Add(rules ...Rule) error {
	validated := make([]Rule, len(rules))
	for i, r := range rules {
		if err := r.Validate(); err != nil {
			return err
		}
		validated[i] = r
	}

	s.mu.Lock()
	s.rules = append(s.rules, validated...)
	s.mu.Unlock()
	return nil
}

// Rules implements Repository.
func (s *MemorySource) Rules(_ context.Context, q Query) ([]Rule, error) {
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

// Len returns the number of loaded rules.
func (s *MemorySource) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rules)
}
