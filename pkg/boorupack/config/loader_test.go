package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hazyview/boorupack/pkg/boorupack/internalerr"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadAliases(t *testing.T) {
	path := writeFile(t, "aliases.jsonl", `
{"antecedent_name": "ff7", "consequent_name": "final_fantasy_vii", "status": "active"}
{"antecedent_name": "old_tag", "consequent_name": "new_tag", "status": "retired"}
{"antecedent_name": "ffvii", "consequent_name": "final_fantasy_vii", "status": "active"}
`)

	m, err := LoadAliases(path)
	if err != nil {
		t.Fatalf("LoadAliases: %v", err)
	}

	if len(m) != 2 {
		t.Errorf("Expected 2 active aliases, got %d", len(m))
	}
	if m.Canonical("ff7") != "final_fantasy_vii" {
		t.Errorf("Canonical(ff7) = %q", m.Canonical("ff7"))
	}
	// Non-active records must not participate
	if m.Canonical("old_tag") != "old_tag" {
		t.Error("Retired alias should not be loaded")
	}
}

func TestLoadAliasesMalformed(t *testing.T) {
	path := writeFile(t, "aliases.jsonl", `
{"antecedent_name": "ff7", "consequent_name": "final_fantasy_vii", "status": "active"}
not json
`)

	if _, err := LoadAliases(path); err == nil {
		t.Error("Malformed line should be fatal")
	}
}

func TestLoadAliasesInvalid(t *testing.T) {
	path := writeFile(t, "aliases.jsonl",
		`{"antecedent_name": "cat", "consequent_name": "cat", "status": "active"}`)

	_, err := LoadAliases(path)
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadImplications(t *testing.T) {
	path := writeFile(t, "implications.jsonl", `
{"antecedent_name": "mouse_ears", "consequent_name": "animal_ears", "status": "active"}
{"antecedent_name": "mouse_ears", "consequent_name": "mouse_girl", "status": "active"}
{"antecedent_name": "cat_ears", "consequent_name": "animal_ears", "status": "deleted"}
`)

	implications, err := LoadImplications(path)
	if err != nil {
		t.Fatalf("LoadImplications: %v", err)
	}

	if len(implications) != 1 {
		t.Fatalf("Expected 1 antecedent, got %d", len(implications))
	}
	implied := implications["mouse_ears"]
	if len(implied) != 2 || !implied.Has("animal_ears") || !implied.Has("mouse_girl") {
		t.Errorf("Implications union wrong: %v", implied.Tags())
	}
}

func TestLoadTagList(t *testing.T) {
	path := writeFile(t, "blacklist.txt", "\n  tagme \nduplicate\n\nduplicate\n")

	tags, err := LoadTagList(path)
	if err != nil {
		t.Fatalf("LoadTagList: %v", err)
	}

	if len(tags) != 2 || !tags.Has("tagme") || !tags.Has("duplicate") {
		t.Errorf("Tags = %v", tags.Tags())
	}
}

func TestLoadDuplicates(t *testing.T) {
	a := bytes.Repeat([]byte{0xAA}, 32)
	b := bytes.Repeat([]byte{0xBB}, 32)
	path := writeFile(t, "duplicates.txt",
		"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb\ncccc\n")

	groups, err := LoadDuplicates(path)
	if err != nil {
		t.Fatalf("LoadDuplicates: %v", err)
	}

	if len(groups) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(groups))
	}
	if len(groups[0]) != 2 || !bytes.Equal(groups[0][0], a) || !bytes.Equal(groups[0][1], b) {
		t.Errorf("Group 0 wrong: %x", groups[0])
	}
	if len(groups[1]) != 1 || len(groups[1][0]) != 2 {
		t.Errorf("Group 1 wrong: %x", groups[1])
	}
}

func TestLoadDuplicatesBadHex(t *testing.T) {
	path := writeFile(t, "duplicates.txt", "zzzz\n")

	if _, err := LoadDuplicates(path); err == nil {
		t.Error("Bad hex should be fatal")
	}
}

func TestLoaderEmptyPaths(t *testing.T) {
	loader := Loader{}
	comp, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if comp.Resolver == nil {
		t.Fatal("Resolver should always be built")
	}
	if comp.Resolver.Canonical("tag") != "tag" {
		t.Error("Empty resolver should pass tags through")
	}
	if len(comp.Blacklist) != 0 || len(comp.Deprecations) != 0 || len(comp.Duplicates) != 0 {
		t.Error("Empty paths should yield empty components")
	}
}

func TestLoaderFull(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		return path
	}

	loader := Loader{
		AliasesPath: write("aliases.jsonl",
			`{"antecedent_name": "ff7", "consequent_name": "final_fantasy_vii", "status": "active"}`),
		ImplicationsPath: write("implications.jsonl",
			`{"antecedent_name": "mouse_ears", "consequent_name": "animal_ears", "status": "active"}`),
		BlacklistPath:    write("blacklist.txt", "tagme\n"),
		DeprecationsPath: write("deprecations.txt", "old_meta\n"),
		DuplicatesPath:   write("duplicates.txt", "aabb ccdd\n"),
	}

	comp, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if comp.Resolver.Canonical("ff7") != "final_fantasy_vii" {
		t.Error("Aliases not wired into resolver")
	}
	if !comp.Resolver.Implied("mouse_ears").Has("animal_ears") {
		t.Error("Implications not wired into resolver")
	}
	if !comp.Blacklist.Has("tagme") || !comp.Deprecations.Has("old_meta") {
		t.Error("Tag lists not loaded")
	}
	if len(comp.Duplicates) != 1 || len(comp.Duplicates[0]) != 2 {
		t.Errorf("Duplicates = %x", comp.Duplicates)
	}
}
