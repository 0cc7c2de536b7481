package vocab

import (
	"fmt"

	"github.com/hazyview/boorupack/pkg/boorupack/internalerr"
)

// Resolver answers canonical-form and implied-tag queries against a
// loaded vocabulary. The implication graph is transitively closed at
// construction time, so Implied never needs to walk chains: if "a"
// implies "b" and "b" implies "c", Implied("a") contains both.
type Resolver struct {
	aliases      AliasMap
	implications map[string]TagSet
}

// NewResolver builds a resolver from an alias map and a raw implication
// graph (antecedent -> directly implied tags). Construction rewrites
// every node and edge to its canonical form, then saturates the graph
// to a fixed point.
func NewResolver(aliases AliasMap, implications map[string]TagSet) (*Resolver, error) {
	canon := make(map[string]TagSet, len(implications))
	for tag, implied := range implications {
		ctag := aliases.Canonical(tag)
		dst := canon[ctag]
		if dst == nil {
			dst = make(TagSet, len(implied))
			canon[ctag] = dst
		}
		for t := range implied {
			dst.Add(aliases.Canonical(t))
		}
	}

	if err := saturate(canon); err != nil {
		return nil, err
	}

	return &Resolver{aliases: aliases, implications: canon}, nil
}

// saturate expands the graph until every implied set also contains the
// implications of its members. Updates collected during a pass are
// applied only after the pass completes, so the result does not depend
// on map iteration order. Sets only ever grow and the vocabulary is
// finite, so a fixed point exists; the pass cap is a safety net against
// a broken update step looping forever.
func saturate(graph map[string]TagSet) error {
	maxPasses := len(graph) + 1
	for pass := 0; ; pass++ {
		if pass > maxPasses {
			return fmt.Errorf("%w after %d passes", internalerr.ErrNoFixedPoint, pass)
		}

		updates := make(map[string]TagSet)
		for tag, implied := range graph {
			var pending TagSet
			for t := range implied {
				for u := range graph[t] {
					if !implied.Has(u) {
						if pending == nil {
							pending = make(TagSet)
						}
						pending.Add(u)
					}
				}
			}
			if pending != nil {
				updates[tag] = pending
			}
		}

		if len(updates) == 0 {
			return nil
		}
		for tag, pending := range updates {
			graph[tag].AddAll(pending)
		}
	}
}

// Canonical returns the canonical spelling for a tag.
func (r *Resolver) Canonical(tag string) string {
	return r.aliases.Canonical(tag)
}

// Implied returns every tag implied by the given tag, directly or
// transitively. The input is canonicalized first. Returns nil for tags
// with no implications. Callers must not mutate the returned set.
func (r *Resolver) Implied(tag string) TagSet {
	return r.implications[r.aliases.Canonical(tag)]
}
