package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hazyview/boorupack/pkg/boorupack/internalerr"
)

// Config is the build configuration for a manifest run
type Config struct {
	DatabasePath     string   `yaml:"database_path"`
	AliasesPath      string   `yaml:"aliases_path"`
	ImplicationsPath string   `yaml:"implications_path"`
	BlacklistPath    string   `yaml:"blacklist_path"`
	DeprecationsPath string   `yaml:"deprecations_path"`
	DuplicatesPath   string   `yaml:"duplicates_path"`

	ManifestPath string `yaml:"manifest_path"`
	TopTagsPath  string `yaml:"top_tags_path"`

	// TopN is the size of the output tag vocabulary.
	TopN int `yaml:"top_n"`
	// BatchSize bounds how many records are buffered per manifest write.
	BatchSize int `yaml:"batch_size"`

	// ForbidInTop lists tags that must never reach the top vocabulary
	// (rating words, quality meta tags). A violation fails the run.
	ForbidInTop []string `yaml:"forbid_in_top"`
}

// LoadConfig loads the build configuration from a YAML file and applies
// defaults for the optional fields.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.DatabasePath == "" {
		return nil, fmt.Errorf("%w: database_path is required", internalerr.ErrInvalidConfig)
	}
	if cfg.ManifestPath == "" {
		cfg.ManifestPath = "metadata.manifest"
	}
	if cfg.TopTagsPath == "" {
		cfg.TopTagsPath = "top_tags.txt"
	}
	if cfg.TopN == 0 {
		cfg.TopN = 6000
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 1000
	}

	return &cfg, nil
}
