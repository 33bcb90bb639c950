package config

import (
	"github.com/semantex/semantex/pkg/semantex"
	"github.com/semantex/semantex/pkg/semantex/keyword"
	"github.com/semantex/semantex/pkg/semantex/vocab"
)

// Components holds an engine assembled from a config.
type Components struct {
	Engine      *semantex.Engine
	SourceKinds map[string]string
}

// Loader builds engine components from an optional config path.
type Loader struct {
	Path string
}

// Load reads the config (if any) and assembles an engine honoring it.
func (l *Loader) Load() (*Components, error) {
	cfg, err := Load(l.Path)
	if err != nil {
		return nil, err
	}

	opts := semantex.Options{}
	if len(cfg.ExtraStopwords) > 0 {
		stopwords := append(vocab.Stopwords(), cfg.ExtraStopwords...)
		opts.Extractor = keyword.NewExtractorWithStopwords(stopwords)
	}

	return &Components{
		Engine:      semantex.NewWithOptions(opts),
		SourceKinds: cfg.SourceKinds,
	}, nil
}
