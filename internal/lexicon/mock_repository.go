package lexicon

import (
	"context"
	"sync/atomic"

	"glossa-hq/rosetta/pkg/lexicon"
)

// MockRepository is a mock implementation of lexicon.Repository for testing.
// It serves a fixed rule slice and can be forced to fail.
type MockRepository struct {
	rules []lexicon.Rule
	err   error
	calls atomic.Int64
}

// NewMockRepository creates a mock serving the given rules.
func NewMockRepository(rules ...lexicon.Rule) *MockRepository {
	return &MockRepository{rules: rules}
}

// FailWith makes every Rules call return err.
func (m *MockRepository) FailWith(err error) *MockRepository {
	m.err = err
	return m
}

// Rules implements lexicon.Repository.
func (m *MockRepository) Rules(_ context.Context, q lexicon.Query) ([]lexicon.Rule, error) {
	m.calls.Add(1)
	if m.err != nil {
		return nil, m.err
	}

	var out []lexicon.Rule
	for _, r := range m.rules {
		if q.Match(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Calls returns how many times Rules was invoked.
func (m *MockRepository) Calls() int64 {
	return m.calls.Load()
}
