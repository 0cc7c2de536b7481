package main

import (
	"context"
	"flag"
	"log"

	"github.com/schollz/progressbar/v3"

	"github.com/hazyview/boorupack/pkg/boorupack"
	"github.com/hazyview/boorupack/pkg/boorupack/config"
	"github.com/hazyview/boorupack/pkg/boorupack/dedupe"
	"github.com/hazyview/boorupack/pkg/boorupack/manifest"
	"github.com/hazyview/boorupack/pkg/boorupack/source/sqlite"
)

func main() {
	var (
		configPath = flag.String("config", "", "Build configuration file (required)")
		dbPath     = flag.String("db", "", "Override database path from the config")
	)
	flag.Parse()

	if *configPath == "" {
		log.Fatal("--config required")
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	if *dbPath != "" {
		cfg.DatabasePath = *dbPath
	}

	ctx := context.Background()

	log.Println("Reading tag aliases, implications, etc...")
	loader := config.Loader{
		AliasesPath:      cfg.AliasesPath,
		ImplicationsPath: cfg.ImplicationsPath,
		BlacklistPath:    cfg.BlacklistPath,
		DeprecationsPath: cfg.DeprecationsPath,
		DuplicatesPath:   cfg.DuplicatesPath,
	}
	comp, err := loader.Load()
	if err != nil {
		log.Fatal("Failed to load vocabulary:", err)
	}

	index, err := dedupe.NewIndex(comp.Duplicates)
	if err != nil {
		log.Fatal("Failed to index duplicates:", err)
	}

	src, err := sqlite.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer src.Close()

	var bar *progressbar.ProgressBar
	b := boorupack.New(boorupack.Options{
		Source:       src,
		Resolver:     comp.Resolver,
		Blacklist:    comp.Blacklist,
		Deprecations: comp.Deprecations,
		Duplicates:   index,
		TopN:         cfg.TopN,
		ForbidInTop:  cfg.ForbidInTop,
		Progress: func(done, total int64) {
			if bar == nil {
				bar = progressbar.Default(total, "posts")
			}
			bar.Add(1)
		},
	})

	log.Println("Building metadata...")
	res, err := b.Run(ctx)
	if err != nil {
		log.Fatal("Build failed:", err)
	}

	log.Printf("Build %s: %d posts, %d duplicates absorbed", res.BuildID, len(res.Table), res.Absorbed)
	log.Printf("Found %d tags", len(res.TagCounts))
	log.Printf("Found %d tags with at least 10,000 usage", countAtLeast(res.TagCounts, 10000))
	log.Printf("Found %d tags with at least 1,000 usage", countAtLeast(res.TagCounts, 1000))
	log.Printf("Min tags: %d, Max tags: %d, Mean tags: %.1f", res.Stats.Min, res.Stats.Max, res.Stats.Mean)

	if err := manifest.WriteTopTags(cfg.TopTagsPath, res.TopTags); err != nil {
		log.Fatal("Failed to write top tags:", err)
	}
	if err := manifest.Write(cfg.ManifestPath, res.Table, res.TopTags, cfg.BatchSize); err != nil {
		log.Fatal("Failed to write manifest:", err)
	}

	log.Printf("Manifest complete: %s (%d records)", cfg.ManifestPath, len(res.Table))
}

func countAtLeast(counts map[string]int, min int) int {
	n := 0
	for _, c := range counts {
		if c >= min {
			n++
		}
	}
	return n
}
