package dedupe

import "github.com/hazyview/boorupack/pkg/boorupack/post"

// TagStats summarizes tag-set sizes across the merged table.
type TagStats struct {
	Min  int
	Max  int
	Mean float64
}

// ComputeTagStats reports min/max/mean tags per post. Returns the zero
// value for an empty table.
func ComputeTagStats(table map[int64]*post.Post) TagStats {
	if len(table) == 0 {
		return TagStats{}
	}

	stats := TagStats{Min: int(^uint(0) >> 1)}
	sum := 0
	for _, p := range table {
		n := len(p.Tags)
		if n < stats.Min {
			stats.Min = n
		}
		if n > stats.Max {
			stats.Max = n
		}
		sum += n
	}
	stats.Mean = float64(sum) / float64(len(table))
	return stats
}
