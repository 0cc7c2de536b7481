package post

import (
	"fmt"

	"github.com/hazyview/boorupack/pkg/boorupack/internalerr"
	"github.com/hazyview/boorupack/pkg/boorupack/vocab"
)

// HashSize is the content hash width in bytes (sha256 of the source file).
const HashSize = 32

// Rating is the content-maturity classification. The ordinal order
// matters: duplicate merging keeps the maximum, so the more restrictive
// rating wins.
type Rating int8

const (
	RatingSafe Rating = iota
	RatingQuestionable
	RatingExplicit
)

// ParseRating converts a one-letter rating code from the data source.
// Anything outside the closed three-value set is a contract violation.
func ParseRating(code string) (Rating, error) {
	switch code {
	case "s":
		return RatingSafe, nil
	case "q":
		return RatingQuestionable, nil
	case "e":
		return RatingExplicit, nil
	}
	return 0, fmt.Errorf("%w: %q", internalerr.ErrUnknownRating, code)
}

func (r Rating) String() string {
	switch r {
	case RatingSafe:
		return "safe"
	case RatingQuestionable:
		return "questionable"
	case RatingExplicit:
		return "explicit"
	}
	return fmt.Sprintf("rating(%d)", int8(r))
}

// Post is one manifest record: a distinct image with its normalized tag
// set. Records are mutated in place during normalization and duplicate
// merging, then handed to the serializer; the merge table exclusively
// owns every record it holds.
type Post struct {
	ID     int64
	Tags   vocab.TagSet
	Hash   []byte
	Score  int16
	Rating Rating
}
