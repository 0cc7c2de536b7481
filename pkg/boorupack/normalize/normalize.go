package normalize

import (
	"fmt"
	"strings"

	"github.com/hazyview/boorupack/pkg/boorupack/post"
	"github.com/hazyview/boorupack/pkg/boorupack/source"
	"github.com/hazyview/boorupack/pkg/boorupack/vocab"
)

// Normalizer turns raw post rows into cleaned records:
// tag string → token set → canonical forms → implication expansion → filtering
type Normalizer struct {
	resolver *vocab.Resolver
	exclude  vocab.TagSet
}

// New creates a normalizer. Blacklisted and deprecated tags are stripped
// from every post after alias and implication expansion.
func New(resolver *vocab.Resolver, blacklist, deprecations vocab.TagSet) *Normalizer {
	exclude := make(vocab.TagSet, len(blacklist)+len(deprecations))
	exclude.AddAll(blacklist)
	exclude.AddAll(deprecations)
	return &Normalizer{resolver: resolver, exclude: exclude}
}

// Row normalizes one raw row into a post record.
func (n *Normalizer) Row(row source.Row) (*post.Post, error) {
	rating, err := post.ParseRating(row.Rating)
	if err != nil {
		return nil, fmt.Errorf("post %d: %w", row.PostID, err)
	}

	tags := make(vocab.TagSet)
	for _, tok := range strings.Fields(row.TagString) {
		tags.Add(n.resolver.Canonical(tok))
	}

	// Expand implications against the canonicalized set only. Implied
	// sets are already transitively closed, so tags added here never
	// need a second expansion pass.
	var implied []vocab.TagSet
	for tag := range tags {
		if s := n.resolver.Implied(tag); len(s) > 0 {
			implied = append(implied, s)
		}
	}
	for _, s := range implied {
		tags.AddAll(s)
	}

	for tag := range tags {
		if n.exclude.Has(tag) {
			delete(tags, tag)
		}
	}

	return &post.Post{
		ID:     row.PostID,
		Tags:   tags,
		Hash:   row.Hash,
		Score:  row.Score,
		Rating: rating,
	}, nil
}
