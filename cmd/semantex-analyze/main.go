// Command semantex-analyze runs the single-document analysis pipeline over
// a text or HTML file and prints the result as JSON, optionally archiving it
// in a SQLite result store.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/semantex/semantex/internal/htmltext"
	"github.com/semantex/semantex/pkg/semantex/config"
	"github.com/semantex/semantex/pkg/semantex/store"
	"github.com/semantex/semantex/pkg/semantex/store/sqlite"
)

func main() {
	var (
		input      = flag.String("input", "", "Path to a text or HTML file (required)")
		sourceName = flag.String("source", "", "Source label for the document (required)")
		configPath = flag.String("config", "", "Optional: YAML heuristics config")
		isHTML     = flag.Bool("html", false, "Strip HTML markup before analysis")
		dbPath     = flag.String("db", "", "Optional: SQLite archive for the result")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input required")
	}
	if *sourceName == "" {
		log.Fatal("--source required")
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}
	text := string(data)
	if *isHTML || strings.HasSuffix(*input, ".html") {
		text = htmltext.Extract(text)
	}

	loader := config.Loader{Path: *configPath}
	components, err := loader.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	result, err := components.Engine.Analyze(text, *sourceName)
	if err != nil {
		log.Fatalf("analyze: %v", err)
	}

	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("marshal result: %v", err)
	}

	if *dbPath != "" {
		ctx := context.Background()
		db, err := sqlite.Open(ctx, *dbPath)
		if err != nil {
			log.Fatalf("open archive: %v", err)
		}
		defer db.Close()

		rec := store.AnalysisRecord{
			ID:         store.NewID(),
			Source:     *sourceName,
			CreatedAt:  time.Now(),
			Confidence: result.Confidence,
			Payload:    payload,
		}
		if err := db.SaveAnalysis(ctx, rec); err != nil {
			log.Fatalf("archive result: %v", err)
		}
		log.Printf("archived analysis %s", rec.ID)
	}

	fmt.Println(string(payload))
}
