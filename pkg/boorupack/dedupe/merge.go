package dedupe

import (
	"sort"

	"github.com/hazyview/boorupack/pkg/boorupack/post"
)

// Merger folds a stream of normalized posts into a table with one entry
// per distinct image. The first member of a duplicate group to arrive
// becomes the group's representative; later members are absorbed into
// it and never get their own entry. The merger exclusively owns every
// record added to it.
type Merger struct {
	index    *Index
	table    map[int64]*post.Post
	groupRep map[int]int64
	seen     int
}

// NewMerger creates a merger backed by the given duplicate index. A nil
// index means no known duplicates.
func NewMerger(index *Index) *Merger {
	if index == nil {
		index = &Index{byHash: map[string]int{}}
	}
	return &Merger{
		index:    index,
		table:    make(map[int64]*post.Post),
		groupRep: make(map[int]int64),
	}
}

// Add folds one normalized post into the table. Absorbing a duplicate
// unions its tags into the representative and keeps the maximum score
// and rating; union and max are commutative, so the merged result does
// not depend on arrival order (beyond which member holds the entry key).
func (m *Merger) Add(p *post.Post) {
	m.seen++

	gid, ok := m.index.GroupID(p.Hash)
	if !ok {
		m.table[p.ID] = p
		return
	}

	repID, ok := m.groupRep[gid]
	if !ok {
		m.groupRep[gid] = p.ID
		m.table[p.ID] = p
		return
	}

	rep := m.table[repID]
	rep.Tags.AddAll(p.Tags)
	if p.Score > rep.Score {
		rep.Score = p.Score
	}
	if p.Rating > rep.Rating {
		rep.Rating = p.Rating
	}
}

// Table returns the merged table, keyed by post id.
func (m *Merger) Table() map[int64]*post.Post {
	return m.table
}

// Absorbed returns how many posts were merged away into representatives.
func (m *Merger) Absorbed() int {
	return m.seen - len(m.table)
}

// TagCounts counts how many posts carry each tag. Tag sets are sets, so
// a tag counts once per post.
func TagCounts(table map[int64]*post.Post) map[string]int {
	counts := make(map[string]int)
	for _, p := range table {
		for tag := range p.Tags {
			counts[tag]++
		}
	}
	return counts
}

// TopTags returns the n most frequent tags in descending count order.
// Ties keep their relative order from the count extraction; no secondary
// sort key is applied.
func TopTags(counts map[string]int, n int) []string {
	tags := make([]string, 0, len(counts))
	for tag := range counts {
		tags = append(tags, tag)
	}
	sort.SliceStable(tags, func(i, j int) bool {
		return counts[tags[i]] > counts[tags[j]]
	})
	if n < len(tags) {
		tags = tags[:n]
	}
	return tags
}
