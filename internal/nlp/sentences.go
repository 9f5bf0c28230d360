// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package nlp

import (
	"strings"
)

// abbreviations that end with a period but do not end a sentence.
var abbreviations = []string{"et al.", "e.g.", "i.e.", "vs.", "Fig.", "fig.", "Eq.", "eq.", "cf.", "Dr.", "Prof."}

// Sentences splits text at sentence boundaries (., !, ? followed by
// whitespace) while protecting common abbreviations, and returns trimmed
// non-empty sentences in original order, capped at MaxSentences.
func (c *Context) Sentences(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	// Mask abbreviation periods so they survive the split.
	masked := text
	for _, abbr := range abbreviations {
		safe := strings.ReplaceAll(abbr, ".", "\x00")
		masked = strings.ReplaceAll(masked, abbr, safe)
	}

	var sentences []string
	var sb strings.Builder
	runes := []rune(masked)

	flush := func() {
		s := strings.TrimSpace(strings.ReplaceAll(sb.String(), "\x00", "."))
		if s != "" {
			sentences = append(sentences, s)
		}
		sb.Reset()
	}

	for i, r := range runes {
		sb.WriteRune(r)
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		// Boundary when the terminator is last or followed by whitespace.
		if i+1 == len(runes) || runes[i+1] == ' ' || runes[i+1] == '\n' || runes[i+1] == '\t' {
			flush()
			if len(sentences) >= c.maxSentences {
				return sentences
			}
		}
	}
	flush()

	if len(sentences) > c.maxSentences {
		sentences = sentences[:c.maxSentences]
	}
	return sentences
}
