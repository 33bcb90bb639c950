// Command semantex-correlate runs the multi-source correlation pipeline over
// a JSONL corpus and prints the result as JSON, optionally archiving it in a
// SQLite result store. At least two source records are required.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/semantex/semantex/internal/corpus"
	"github.com/semantex/semantex/pkg/semantex/config"
	"github.com/semantex/semantex/pkg/semantex/source"
	"github.com/semantex/semantex/pkg/semantex/store"
	"github.com/semantex/semantex/pkg/semantex/store/sqlite"
)

func main() {
	var (
		input      = flag.String("input", "", "Path to JSONL source records (required)")
		configPath = flag.String("config", "", "Optional: YAML heuristics config")
		dbPath     = flag.String("db", "", "Optional: SQLite archive for the result")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input required")
	}

	docs, err := corpus.LoadJSONL(*input)
	if err != nil {
		log.Fatalf("load sources: %v", err)
	}
	if len(docs) < 2 {
		log.Fatalf("correlation needs at least 2 sources, got %d", len(docs))
	}

	loader := config.Loader{Path: *configPath}
	components, err := loader.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Declared source kinds from config feed the credibility assessment.
	for i := range docs {
		if kind, ok := components.SourceKinds[docs[i].Name]; ok {
			if docs[i].Metadata == nil {
				docs[i].Metadata = make(map[string]string)
			}
			docs[i].Metadata["kind"] = kind
		}
	}

	result, err := components.Engine.Correlate(docs)
	if err != nil {
		log.Fatalf("correlate: %v", err)
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

		rec := store.CorrelationRecord{
			ID:         store.NewID(),
			Sources:    sourceNames(docs),
			CreatedAt:  time.Now(),
			Confidence: result.Confidence,
			Payload:    payload,
		}
		if err := db.SaveCorrelation(ctx, rec); err != nil {
			log.Fatalf("archive result: %v", err)
		}
		log.Printf("archived correlation %s", rec.ID)
	}

	fmt.Println(string(payload))
}

func sourceNames(docs []source.Doc) []string {
	names := make([]string, len(docs))
	for i, doc := range docs {
		names[i] = doc.Name
	}
	return names
}
