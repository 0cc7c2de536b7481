package source

import "context"

// Row is one raw post row as delivered by the data source.
type Row struct {
	PostID    int64
	TagString string
	Hash      []byte
	Score     int16
	Rating    string
}

// Source is a sequential cursor over raw post rows.
type Source interface {
	Close() error

	// CountPosts reports how many rows ScanPosts will deliver. Used
	// only for progress estimation.
	CountPosts(ctx context.Context) (int64, error)

	// ScanPosts streams rows in source order, calling fn once per row.
	// Scanning stops at the first error fn returns.
	ScanPosts(ctx context.Context, fn func(Row) error) error
}
