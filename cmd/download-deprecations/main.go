package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
)

// The tag API caps a page at 1000 records; deprecated tags have stayed
// well under that so far.
const (
	apiURL    = "https://danbooru.donmai.us/tags.json?commit=Search&search[hide_empty]=yes&search[is_deprecated]=yes&search[order]=date&limit=1000"
	pageLimit = 1000
)

// apiTag is the subset of the tag API response we care about
type apiTag struct {
	Name string `json:"name"`
}

func main() {
	outPath := flag.String("out", "tag_deprecations.txt", "Output file")
	flag.Parse()

	log.Println("Downloading deprecated tag list...")

	resp, err := http.Get(apiURL)
	if err != nil {
		log.Fatal("Failed to fetch tag list:", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Fatal("Tag API returned ", resp.Status)
	}

	var tags []apiTag
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		log.Fatal("Failed to decode tag list:", err)
	}

	if len(tags) >= pageLimit {
		log.Printf("WARNING: %d deprecated tags returned; the list may be truncated at %d", len(tags), pageLimit)
	}

	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = tag.Name
	}

	if err := os.WriteFile(*outPath, []byte(strings.Join(names, "\n")+"\n"), 0644); err != nil {
		log.Fatal("Failed to write output:", err)
	}

	fmt.Printf("Wrote %d deprecated tags to %s\n", len(names), *outPath)
}
