package dedupe

import (
	"fmt"

	"github.com/hazyview/boorupack/pkg/boorupack/internalerr"
)

// Group is a set of content hashes known to depict the same image.
type Group [][]byte

// Index maps content hashes to their duplicate-group id (the group's
// position in the input list).
type Index struct {
	byHash map[string]int
}

// NewIndex builds the hash lookup. A hash claimed by two different
// groups makes duplicate membership ambiguous and is rejected.
func NewIndex(groups []Group) (*Index, error) {
	byHash := make(map[string]int)
	for id, group := range groups {
		for _, hash := range group {
			key := string(hash)
			if prev, ok := byHash[key]; ok && prev != id {
				return nil, fmt.Errorf("%w: %x in groups %d and %d",
					internalerr.ErrAmbiguousDuplicate, hash, prev, id)
			}
			byHash[key] = id
		}
	}
	return &Index{byHash: byHash}, nil
}

// GroupID returns the duplicate group for a hash, if any.
func (i *Index) GroupID(hash []byte) (int, bool) {
	id, ok := i.byHash[string(hash)]
	return id, ok
}

// Len returns the number of indexed hashes.
func (i *Index) Len() int {
	return len(i.byHash)
}
