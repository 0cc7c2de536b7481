package memsource

import (
	"context"

	"github.com/hazyview/boorupack/pkg/boorupack/source"
)

// Source is an in-memory implementation of source.Source for tests.
type Source struct {
	rows []source.Row
}

// New creates a source that delivers the given rows in order.
func New(rows ...source.Row) *Source {
	return &Source{rows: rows}
}

// Close implements source.Source.
func (s *Source) Close() error { return nil }

// CountPosts implements source.Source.
func (s *Source) CountPosts(ctx context.Context) (int64, error) {
	return int64(len(s.rows)), nil
}

// ScanPosts implements source.Source.
func (s *Source) ScanPosts(ctx context.Context, fn func(source.Row) error) error {
	for _, row := range s.rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(row); err != nil {
			return err
		}
	}
	return nil
}
