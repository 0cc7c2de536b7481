package sqlite

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/hazyview/boorupack/pkg/boorupack/source"
)

// postSource implements source.Source over a SQLite post dump.
type postSource struct {
	db *sql.DB
}

// Only posts with an embedding are manifested; the join excludes rows
// the embedding stage skipped (gif posts, for example).
const (
	countQuery = `SELECT COUNT(*)
FROM posts INNER JOIN embeddings ON posts.file_hash = embeddings.hash`

	scanQuery = `SELECT posts.post_id, posts.tag_string, posts.file_hash, posts.score, posts.rating
FROM posts INNER JOIN embeddings ON posts.file_hash = embeddings.hash`
)

// Open opens a SQLite post database with WAL mode enabled.
func Open(ctx context.Context, path string) (source.Source, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode so a concurrent importer does not block reads
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	return &postSource{db: db}, nil
}

// Close closes the database connection
func (s *postSource) Close() error {
	return s.db.Close()
}

// CountPosts implements source.Source.
func (s *postSource) CountPosts(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, countQuery).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// ScanPosts implements source.Source.
func (s *postSource) ScanPosts(ctx context.Context, fn func(source.Row) error) error {
	rows, err := s.db.QueryContext(ctx, scanQuery)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			row   source.Row
			score int64
		)
		if err := rows.Scan(&row.PostID, &row.TagString, &row.Hash, &score, &row.Rating); err != nil {
			return err
		}
		row.Score = int16(score)

		if err := fn(row); err != nil {
			return err
		}
	}

	return rows.Err()
}
