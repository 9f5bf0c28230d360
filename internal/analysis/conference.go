// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/paperlens/pkg/types"
)

// conferenceKeywords maps each known venue to its topic keyword set.
var conferenceKeywords = map[string][]string{
	"ICML":    {"machine learning", "deep learning", "neural networks", "optimization"},
	"ICLR":    {"deep learning", "representation learning", "neural networks"},
	"NeurIPS": {"neural networks", "machine learning", "artificial intelligence"},
	"CVPR":    {"computer vision", "image processing", "deep learning"},
	"ACL":     {"natural language processing", "computational linguistics", "text mining"},
}

// Conferences lists the known venue names, sorted.
func Conferences() []string {
	names := make([]string, 0, len(conferenceKeywords))
	for name := range conferenceKeywords {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ConferenceFit scores the text against one venue's topic set. Unknown
// venues are an input error.
func (s *Service) ConferenceFit(text, conference string) (*types.ConferenceFit, error) {
	kws, ok := conferenceKeywords[conference]
	if !ok {
		return nil, fmt.Errorf("%w: unknown conference %q", types.ErrInputInvalid, conference)
	}
	return &types.ConferenceFit{
		Conference:      conference,
		SimilarityScore: s.topicSimilarity(text, kws),
	}, nil
}

// SuggestConferences ranks every known venue by topic similarity, best
// first, ties broken alphabetically.
func (s *Service) SuggestConferences(text string) []types.ConferenceFit {
	fits := make([]types.ConferenceFit, 0, len(conferenceKeywords))
	for _, name := range Conferences() {
		fits = append(fits, types.ConferenceFit{
			Conference:      name,
			SimilarityScore: s.topicSimilarity(text, conferenceKeywords[name]),
		})
	}
	sort.SliceStable(fits, func(i, j int) bool {
		return fits[i].SimilarityScore > fits[j].SimilarityScore
	})
	return fits
}

// topicSimilarity is the TF-IDF cosine between the text and the venue's
// keywords joined into one pseudo-document.
func (s *Service) topicSimilarity(text string, kws []string) float64 {
	sim := s.gaps.SimilarityMatrix([]string{text}, []string{strings.Join(kws, " ")})
	if len(sim) == 0 || len(sim[0]) == 0 {
		return 0
	}
	return sim[0][0]
}
