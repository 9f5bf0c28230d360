// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package nlp

import (
	"regexp"
	"strings"
)

// nonWordRe matches everything outside lowercase letters, digits,
// whitespace, and hyphens. Hyphenated compounds split into their parts.
var nonWordRe = regexp.MustCompile(`[^a-z0-9\s-]`)

// Words lowercases the text, strips punctuation, and returns every token in
// original order, stopwords included. Tokens of a single character are
// dropped. The slice is capped at MaxTokens.
func (c *Context) Words(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	cleaned := nonWordRe.ReplaceAllString(strings.ToLower(text), " ")
	cleaned = strings.ReplaceAll(cleaned, "-", " ")

	fields := strings.Fields(cleaned)
	tokens := make([]string, 0, len(fields))
	for _, w := range fields {
		if len(w) < 2 {
			continue
		}
		tokens = append(tokens, w)
		if len(tokens) >= c.maxTokens {
			break
		}
	}
	return tokens
}

// Tokens returns the stopword-filtered, lemmatized tokens of the text in
// original order.
func (c *Context) Tokens(text string) []string {
	words := c.Words(text)
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if c.stopwords[w] {
			continue
		}
		tokens = append(tokens, Lemmatize(w))
	}
	return tokens
}

// TokenCounts returns the frequency table of Tokens(text).
func (c *Context) TokenCounts(text string) map[string]int {
	counts := make(map[string]int)
	for _, tok := range c.Tokens(text) {
		counts[tok]++
	}
	return counts
}

// lemmaExceptions maps irregular forms that the suffix rules would mangle.
var lemmaExceptions = map[string]string{
	"analyses":  "analysis",
	"data":      "data",
	"corpora":   "corpus",
	"criteria":  "criterion",
	"hypotheses": "hypothesis",
	"matrices":  "matrix",
	"indices":   "index",
	"series":    "series",
	"this":      "this",
	"bias":      "bias",
	"focus":     "focus",
	"class":     "class",
	"loss":      "loss",
	"process":   "process",
	"address":   "address",
	"across":    "across",
	"news":      "news",
}

// Lemmatize reduces a lowercased word to a base form with plural suffix
// rules. It is intentionally shallow: only noun plurals are folded, since
// the extractors rank nouns and noun phrases.
func Lemmatize(word string) string {
	if base, ok := lemmaExceptions[word]; ok {
		return base
	}
	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 4:
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "sses"):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "xes"), strings.HasSuffix(word, "ches"), strings.HasSuffix(word, "shes"):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "ss"), strings.HasSuffix(word, "us"), strings.HasSuffix(word, "is"):
		return word
	case strings.HasSuffix(word, "s") && len(word) > 3:
		return word[:len(word)-1]
	}
	return word
}
