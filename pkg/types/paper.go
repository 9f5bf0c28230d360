// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PaperRecord holds the caller-supplied fields of a single paper. It is an
// immutable input to the analysis pipeline; no component mutates it.
type PaperRecord struct {
	// Title is the paper title.
	Title string `json:"title" yaml:"title"`

	// Abstract is the free-text summary and the primary analysis input.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Keywords are the author-supplied keywords. Accepts either a single
	// comma-separated string or a sequence when decoded from YAML/JSON.
	Keywords KeywordList `json:"keywords,omitempty" yaml:"keywords,omitempty"`

	// PublishedDate is the ISO-formatted publication date ("2023-05-01").
	// May be empty; dateless papers sort first and share one trend bucket.
	PublishedDate string `json:"published_date,omitempty" yaml:"published_date,omitempty"`

	// CitationCount is the known citation count, if any.
	CitationCount int `json:"citation_count,omitempty" yaml:"citation_count,omitempty"`
}

// Validate checks the fields required by the analysis pipeline.
func (p PaperRecord) Validate() error {
	if strings.TrimSpace(p.Abstract) == "" {
		return fmt.Errorf("%w: paper %q has no abstract", ErrInputInvalid, p.Title)
	}
	return nil
}

// Year returns the year bucket key: the first four bytes of PublishedDate,
// or the empty string when the date is missing or shorter. The empty key
// deliberately collapses all dateless papers into one bucket.
func (p PaperRecord) Year() string {
	if len(p.PublishedDate) < 4 {
		return ""
	}
	return p.PublishedDate[:4]
}

// KeywordList is a []string that also decodes from a single scalar, since
// upstream records store keywords either as "a, b, c" or as a list.
type KeywordList []string

// UnmarshalYAML accepts either a scalar (split on commas) or a sequence.
func (k *KeywordList) UnmarshalYAML(unmarshal func(any) error) error {
	var seq []string
	if err := unmarshal(&seq); err == nil {
		*k = seq
		return nil
	}
	var scalar string
	if err := unmarshal(&scalar); err != nil {
		return err
	}
	*k = splitKeywordString(scalar)
	return nil
}

// UnmarshalJSON accepts either a string or an array of strings.
func (k *KeywordList) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var scalar string
		if err := json.Unmarshal(data, &scalar); err != nil {
			return err
		}
		*k = splitKeywordString(scalar)
		return nil
	}
	var seq []string
	if err := json.Unmarshal(data, &seq); err != nil {
		return err
	}
	*k = seq
	return nil
}

func splitKeywordString(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
