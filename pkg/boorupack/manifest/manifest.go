package manifest

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/hazyview/boorupack/pkg/boorupack/post"
)

// The manifest is a flat little-endian record stream:
//
//	magic    "BPM1"
//	count    uint32   number of records
//
// then per record:
//
//	post_id  int64
//	n_tags   uint16
//	tags     n_tags × int16   indices into the top-tag vocabulary
//	hash     32 bytes
//	rating   int8
//	score    int16
//
// Tags outside the vocabulary are dropped at encoding time.
const Magic = "BPM1"

// Write serializes the merged table against the top-tag vocabulary.
// Records are flushed in batches of batchSize to bound writer memory;
// batch boundaries carry no meaning. The file is written to a temp path
// and renamed into place, so a failed run never leaves a partial
// manifest behind.
func Write(path string, table map[int64]*post.Post, topTags []string, batchSize int) error {
	if batchSize <= 0 {
		batchSize = 1000
	}

	index := make(map[string]int16, len(topTags))
	for i, tag := range topTags {
		index[tag] = int16(i)
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	if _, err := w.WriteString(Magic); err != nil {
		f.Close()
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(table))); err != nil {
		f.Close()
		return err
	}

	written := 0
	for _, p := range table {
		if err := writeRecord(w, p, index); err != nil {
			f.Close()
			return fmt.Errorf("post %d: %w", p.ID, err)
		}
		written++
		if written%batchSize == 0 {
			if err := w.Flush(); err != nil {
				f.Close()
				return err
			}
		}
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func writeRecord(w *bufio.Writer, p *post.Post, index map[string]int16) error {
	if len(p.Hash) != post.HashSize {
		return fmt.Errorf("hash is %d bytes, want %d", len(p.Hash), post.HashSize)
	}

	ids := make([]int16, 0, len(p.Tags))
	for tag := range p.Tags {
		if id, ok := index[tag]; ok {
			ids = append(ids, id)
		}
	}
	// Stable id order keeps the file reproducible across runs
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	if err := binary.Write(w, binary.LittleEndian, p.ID); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint16(len(ids))); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, ids); err != nil {
		return err
	}
	if _, err := w.Write(p.Hash); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int8(p.Rating)); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, p.Score)
}

// WriteTopTags writes the vocabulary to a text file, one tag per line
// in vocabulary order.
func WriteTopTags(path string, topTags []string) error {
	var b strings.Builder
	for _, tag := range topTags {
		b.WriteString(tag)
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0644)
}
