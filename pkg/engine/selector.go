package engine

import (
	"sort"

	"glossa-hq/rosetta/pkg/guard"
	"glossa-hq/rosetta/pkg/langtag"
	"glossa-hq/rosetta/pkg/lexicon"
)

// Select orders a candidate pool and returns the first rule whose guard
// matches the arguments, or nil when no candidate is reachable.
//
// Ordering is deterministic: chain index of the rule's language ascending
// (rules whose language is off-chain are excluded before sorting), then
// priority descending, then the pool's original relative order. Selection is
// first-match-wins: the scan stops at the first rule whose expression is
// empty or evaluates true.
//
// A guard that fails to parse or evaluate only disqualifies its own rule;
// onGuardError is invoked (when non-nil) and the scan continues.
func Select(candidates []lexicon.Rule, chain langtag.Chain, args []any, onGuardError func(lexicon.Rule, error)) *lexicon.Rule {
	type ranked struct {
		rule       lexicon.Rule
		chainIndex int
	}

	pool := make([]ranked, 0, len(candidates))
	for _, r := range candidates {
		idx := chain.Index(r.Language)
		if idx < 0 {
			continue
		}
		pool = append(pool, ranked{rule: r, chainIndex: idx})
	}

	sort.SliceStable(pool, func(i, j int) bool {
		if pool[i].chainIndex != pool[j].chainIndex {
			return pool[i].chainIndex < pool[j].chainIndex
		}
		return pool[i].rule.Priority > pool[j].rule.Priority
	})

	for i := range pool {
		r := &pool[i].rule
		ok, err := guard.Evaluate(r.Expression, args)
		if err != nil {
			if onGuardError != nil {
				onGuardError(*r, err)
			}
			continue
		}
		if ok {
			return r
		}
	}
	return nil
}
