// Package boorupack prepares an ML training manifest from a booru-style
// image board dump: it normalizes the tag vocabulary through
// alias/implication/blacklist/deprecation rules, merges duplicate images
// into single records, and selects the most frequent tags as the output
// vocabulary.
package boorupack

import (
	"context"
	"crypto/rand"
	"fmt"

	"github.com/oklog/ulid/v2"

	"github.com/hazyview/boorupack/pkg/boorupack/dedupe"
	"github.com/hazyview/boorupack/pkg/boorupack/internalerr"
	"github.com/hazyview/boorupack/pkg/boorupack/normalize"
	"github.com/hazyview/boorupack/pkg/boorupack/post"
	"github.com/hazyview/boorupack/pkg/boorupack/source"
	"github.com/hazyview/boorupack/pkg/boorupack/vocab"
)

// Builder runs the manifest build pipeline end to end.
type Builder struct {
	src      source.Source
	norm     *normalize.Normalizer
	merger   *dedupe.Merger
	topN     int
	forbid   vocab.TagSet
	progress func(done, total int64)
	entropy  *ulid.MonotonicEntropy
}

// Options configures a Builder
type Options struct {
	Source       source.Source
	Resolver     *vocab.Resolver
	Blacklist    vocab.TagSet
	Deprecations vocab.TagSet
	Duplicates   *dedupe.Index

	// TopN is the output vocabulary size. Defaults to 6000.
	TopN int

	// ForbidInTop lists tags that must never reach the top vocabulary.
	ForbidInTop []string

	// Progress, if set, is called after every processed row.
	Progress func(done, total int64)
}

// New creates a Builder with the given dependencies
func New(opts Options) *Builder {
	topN := opts.TopN
	if topN == 0 {
		topN = 6000
	}
	return &Builder{
		src:      opts.Source,
		norm:     normalize.New(opts.Resolver, opts.Blacklist, opts.Deprecations),
		merger:   dedupe.NewMerger(opts.Duplicates),
		topN:     topN,
		forbid:   vocab.NewTagSet(opts.ForbidInTop...),
		progress: opts.Progress,
		entropy:  ulid.Monotonic(rand.Reader, 0),
	}
}

// Result summarizes one completed build.
type Result struct {
	BuildID   string
	Table     map[int64]*post.Post
	TopTags   []string
	TagCounts map[string]int
	Absorbed  int
	Stats     dedupe.TagStats
}

// Run streams every row from the source through normalization and
// duplicate merging, then selects the top-tag vocabulary. Any error is
// fatal to the run; no partial result is produced.
func (b *Builder) Run(ctx context.Context) (*Result, error) {
	total, err := b.src.CountPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}

	var done int64
	err = b.src.ScanPosts(ctx, func(row source.Row) error {
		p, err := b.norm.Row(row)
		if err != nil {
			return err
		}
		b.merger.Add(p)

		done++
		if b.progress != nil {
			b.progress(done, total)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan posts: %w", err)
	}

	table := b.merger.Table()
	counts := dedupe.TagCounts(table)
	top := dedupe.TopTags(counts, b.topN)

	for _, tag := range top {
		if b.forbid.Has(tag) {
			return nil, fmt.Errorf("%w: forbidden tag %q reached the top vocabulary",
				internalerr.ErrInvalidConfig, tag)
		}
	}

	return &Result{
		BuildID:   ulid.MustNew(ulid.Now(), b.entropy).String(),
		Table:     table,
		TopTags:   top,
		TagCounts: counts,
		Absorbed:  b.merger.Absorbed(),
		Stats:     dedupe.ComputeTagStats(table),
	}, nil
}
