package vocab

import (
	"fmt"

	"github.com/hazyview/boorupack/pkg/boorupack/internalerr"
)

// Pair is one alias or implication edge: the antecedent is replaced by
// (alias) or implies the presence of (implication) the consequent.
type Pair struct {
	Antecedent string
	Consequent string
}

// TagSet is a set of tag names.
type TagSet map[string]struct{}

// NewTagSet creates a set from the given tags.
func NewTagSet(tags ...string) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

// Has checks set membership.
func (s TagSet) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

// Add inserts a tag into the set.
func (s TagSet) Add(tag string) {
	s[tag] = struct{}{}
}

// AddAll unions another set into this one.
func (s TagSet) AddAll(other TagSet) {
	for t := range other {
		s[t] = struct{}{}
	}
}

// Tags returns the members in unspecified order.
func (s TagSet) Tags() []string {
	result := make([]string, 0, len(s))
	for t := range s {
		result = append(result, t)
	}
	return result
}

// AliasMap maps alternate tag spellings to their canonical form.
// Example: "ff7" -> "final_fantasy_vii".
//
// Consequents are themselves canonical: the map holds no chains, so a
// single lookup fully resolves any tag.
type AliasMap map[string]string

// NewAliasMap builds an alias map from raw pairs, enforcing that no pair
// is a self-alias, that an antecedent maps to exactly one consequent
// (identical duplicates collapse), and that no consequent is also an
// antecedent. Each violation is a configuration error.
func NewAliasMap(pairs []Pair) (AliasMap, error) {
	m := make(AliasMap, len(pairs))
	for _, p := range pairs {
		if p.Antecedent == p.Consequent {
			return nil, fmt.Errorf("%w: self-alias %q", internalerr.ErrInvalidConfig, p.Antecedent)
		}
		if existing, ok := m[p.Antecedent]; ok {
			if existing != p.Consequent {
				return nil, fmt.Errorf("%w: alias %q maps to both %q and %q",
					internalerr.ErrInvalidConfig, p.Antecedent, existing, p.Consequent)
			}
			continue
		}
		m[p.Antecedent] = p.Consequent
	}

	// Chain check: a consequent that is also an antecedent would need a
	// second lookup to resolve, which Canonical never performs.
	for antecedent, consequent := range m {
		if _, ok := m[consequent]; ok {
			return nil, fmt.Errorf("%w: alias chain %q -> %q -> %q",
				internalerr.ErrInvalidConfig, antecedent, consequent, m[consequent])
		}
	}

	return m, nil
}

// Canonical returns the canonical spelling for a tag. Tags without an
// alias entry are already canonical and pass through unchanged.
func (m AliasMap) Canonical(tag string) string {
	if c, ok := m[tag]; ok {
		return c
	}
	return tag
}
