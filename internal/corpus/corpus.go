// Package corpus loads source records for the cmd front-ends: one JSON
// object per line with a source label, extracted plain text, and optional
// metadata.
package corpus

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/semantex/semantex/pkg/semantex/internalerr"
	"github.com/semantex/semantex/pkg/semantex/source"
)

// Record is the JSONL-facing shape of one source document.
type Record struct {
	Source   string            `json:"source"`
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// LoadJSONL reads source records from a JSONL file, skipping malformed
// lines with a warning.
func LoadJSONL(path string) ([]source.Doc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	var docs []source.Doc
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var rec Record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			log.Printf("Warning: skipping malformed JSON at line %d in %s: %v", i+1, path, err)
			continue
		}
		if rec.Source == "" {
			log.Printf("Warning: skipping record without source label at line %d in %s", i+1, path)
			continue
		}
		docs = append(docs, source.Doc{
			Name:     rec.Source,
			Text:     rec.Content,
			Metadata: rec.Metadata,
		})
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: no valid records found in %s", internalerr.ErrInvalidInput, path)
	}
	return docs, nil
}
