// Package config loads optional YAML overrides for the engine's heuristic
// tables and assembles configured components. With no file the built-in
// bilingual vocabularies apply unchanged.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/semantex/semantex/pkg/semantex/internalerr"
)

// Config is the YAML-facing shape.
type Config struct {
	// ExtraStopwords extends the built-in stopword table.
	ExtraStopwords []string `yaml:"extra_stopwords"`
	// SourceKinds maps source labels to declared kinds
	// (academic/curated/reference) for credibility scoring.
	SourceKinds map[string]string `yaml:"source_kinds"`
}

// Load reads a config file. An empty path returns the zero config.
func Load(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", internalerr.ErrInvalidConfig, path, err)
	}
	for label, kind := range cfg.SourceKinds {
		switch kind {
		case "academic", "curated", "reference", "unknown":
		default:
			return nil, fmt.Errorf("%w: unknown source kind %q for %q", internalerr.ErrInvalidConfig, kind, label)
		}
	}
	return &cfg, nil
}
