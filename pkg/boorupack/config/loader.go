package config

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/hazyview/boorupack/pkg/boorupack/dedupe"
	"github.com/hazyview/boorupack/pkg/boorupack/vocab"
)

// tagRelation mirrors one line of the alias/implication JSONL exports.
type tagRelation struct {
	Antecedent string `json:"antecedent_name"`
	Consequent string `json:"consequent_name"`
	Status     string `json:"status"`
}

// loadRelations reads a JSONL export, keeping only active records. A
// malformed line is fatal: the vocabulary feeds every downstream step,
// so a partial read would silently change the whole manifest.
func loadRelations(path string) ([]vocab.Pair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var pairs []vocab.Pair
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var rec tagRelation
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, fmt.Errorf("malformed record at line %d in %s: %w", i+1, path, err)
		}
		if rec.Status != "active" {
			continue
		}
		pairs = append(pairs, vocab.Pair{Antecedent: rec.Antecedent, Consequent: rec.Consequent})
	}

	return pairs, nil
}

// LoadAliases reads the alias JSONL export into a validated alias map.
func LoadAliases(path string) (vocab.AliasMap, error) {
	pairs, err := loadRelations(path)
	if err != nil {
		return nil, err
	}
	return vocab.NewAliasMap(pairs)
}

// LoadImplications reads the implication JSONL export, grouping the
// implied tags by antecedent. Multiple implications per antecedent union.
func LoadImplications(path string) (map[string]vocab.TagSet, error) {
	pairs, err := loadRelations(path)
	if err != nil {
		return nil, err
	}

	implications := make(map[string]vocab.TagSet)
	for _, p := range pairs {
		if implications[p.Antecedent] == nil {
			implications[p.Antecedent] = make(vocab.TagSet)
		}
		implications[p.Antecedent].Add(p.Consequent)
	}
	return implications, nil
}

// LoadTagList reads a newline-delimited tag list (blacklist or
// deprecation list). Lines are trimmed and empty lines dropped.
func LoadTagList(path string) (vocab.TagSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	tags := make(vocab.TagSet)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			tags.Add(line)
		}
	}
	return tags, nil
}

// LoadDuplicates reads duplicate-hash groups: one group per line, hashes
// as hex strings separated by single spaces.
func LoadDuplicates(path string) ([]dedupe.Group, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var groups []dedupe.Group
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var group dedupe.Group
		for _, tok := range strings.Fields(line) {
			hash, err := hex.DecodeString(tok)
			if err != nil {
				return nil, fmt.Errorf("bad hash at line %d in %s: %w", i+1, path, err)
			}
			group = append(group, hash)
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// Loader aggregates every vocabulary input for a run. Empty paths yield
// empty components, so a run can omit any of the rule sources.
type Loader struct {
	AliasesPath      string
	ImplicationsPath string
	BlacklistPath    string
	DeprecationsPath string
	DuplicatesPath   string
}

// Components holds all loaded vocabulary components
type Components struct {
	Resolver     *vocab.Resolver
	Blacklist    vocab.TagSet
	Deprecations vocab.TagSet
	Duplicates   []dedupe.Group
}

// Load reads all vocabulary files and returns initialized components
func (l *Loader) Load() (*Components, error) {
	comp := &Components{
		Blacklist:    make(vocab.TagSet),
		Deprecations: make(vocab.TagSet),
	}

	aliases := vocab.AliasMap{}
	if l.AliasesPath != "" {
		var err error
		aliases, err = LoadAliases(l.AliasesPath)
		if err != nil {
			return nil, fmt.Errorf("load aliases: %w", err)
		}
	}

	implications := map[string]vocab.TagSet{}
	if l.ImplicationsPath != "" {
		var err error
		implications, err = LoadImplications(l.ImplicationsPath)
		if err != nil {
			return nil, fmt.Errorf("load implications: %w", err)
		}
	}

	resolver, err := vocab.NewResolver(aliases, implications)
	if err != nil {
		return nil, fmt.Errorf("build resolver: %w", err)
	}
	comp.Resolver = resolver

	if l.BlacklistPath != "" {
		comp.Blacklist, err = LoadTagList(l.BlacklistPath)
		if err != nil {
			return nil, fmt.Errorf("load blacklist: %w", err)
		}
	}

	if l.DeprecationsPath != "" {
		comp.Deprecations, err = LoadTagList(l.DeprecationsPath)
		if err != nil {
			return nil, fmt.Errorf("load deprecations: %w", err)
		}
	}

	if l.DuplicatesPath != "" {
		comp.Duplicates, err = LoadDuplicates(l.DuplicatesPath)
		if err != nil {
			return nil, fmt.Errorf("load duplicates: %w", err)
		}
	}

	return comp, nil
}
