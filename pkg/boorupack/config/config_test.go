package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hazyview/boorupack/pkg/boorupack/internalerr"
)

func TestLoadConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build.yaml")
	content := "database_path: posts.db\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.TopN != 6000 {
		t.Errorf("TopN default = %d, want 6000", cfg.TopN)
	}
	if cfg.BatchSize != 1000 {
		t.Errorf("BatchSize default = %d, want 1000", cfg.BatchSize)
	}
	if cfg.ManifestPath != "metadata.manifest" || cfg.TopTagsPath != "top_tags.txt" {
		t.Errorf("Output defaults wrong: %q %q", cfg.ManifestPath, cfg.TopTagsPath)
	}
}

func TestLoadConfigFull(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build.yaml")
	content := `database_path: posts.db
aliases_path: aliases.jsonl
implications_path: implications.jsonl
blacklist_path: blacklist.txt
deprecations_path: deprecations.txt
duplicates_path: duplicates.txt
manifest_path: out.manifest
top_tags_path: tags.txt
top_n: 100
batch_size: 50
forbid_in_top: [safe, masterpiece]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.TopN != 100 || cfg.BatchSize != 50 {
		t.Errorf("Numbers not loaded: %+v", cfg)
	}
	if cfg.ManifestPath != "out.manifest" {
		t.Errorf("ManifestPath = %q", cfg.ManifestPath)
	}
	if len(cfg.ForbidInTop) != 2 || cfg.ForbidInTop[0] != "safe" {
		t.Errorf("ForbidInTop = %v", cfg.ForbidInTop)
	}
}

func TestLoadConfigMissingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build.yaml")
	if err := os.WriteFile(path, []byte("top_n: 10\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := LoadConfig(path)
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}
