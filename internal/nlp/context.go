// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package nlp provides the shared linguistic resources used by the analysis
// components: stopword filtering, tokenization, lemmatization, and sentence
// splitting. A Context is built once at process start and is read-only
// afterwards, so concurrent readers need no synchronization.
package nlp

import (
	_ "embed"
	"strings"

	"github.com/pdiddy/paperlens/pkg/types"
)

//go:embed stopwords.txt
var stopwordData string

// Context owns the shared read-only linguistic resources.
type Context struct {
	stopwords    map[string]bool
	maxTokens    int
	maxSentences int
}

// NewContext builds a Context from the embedded stopword list and the
// analysis limits in cfg.
func NewContext(cfg types.AnalysisConfig) *Context {
	cfg = cfg.WithDefaults()

	stopwords := make(map[string]bool, 160)
	for _, line := range strings.Split(stopwordData, "\n") {
		if w := strings.TrimSpace(line); w != "" {
			stopwords[w] = true
		}
	}

	return &Context{
		stopwords:    stopwords,
		maxTokens:    cfg.MaxTokens,
		maxSentences: cfg.MaxSentences,
	}
}

// IsStopword reports whether the lowercased word is in the stopword list.
func (c *Context) IsStopword(word string) bool {
	return c.stopwords[word]
}

// MaxTokens returns the per-request token bound.
func (c *Context) MaxTokens() int { return c.maxTokens }

// MaxSentences returns the per-request sentence bound.
func (c *Context) MaxSentences() int { return c.maxSentences }
