package nlp

import (
	"reflect"
	"testing"

	"github.com/pdiddy/paperlens/pkg/types"
)

func testContext() *Context {
	return NewContext(types.AnalysisConfig{})
}

func TestWords(t *testing.T) {
	ctx := testContext()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "lowercases and strips punctuation",
			text: "Deep Learning improves accuracy!",
			want: []string{"deep", "learning", "improves", "accuracy"},
		},
		{
			name: "splits hyphenated compounds",
			text: "state-of-the-art results",
			want: []string{"state", "of", "the", "art", "results"},
		},
		{
			name: "drops single characters",
			text: "a b model",
			want: []string{"model"},
		},
		{
			name: "empty text",
			text: "   ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ctx.Words(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Words(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTokensFiltersStopwordsAndLemmatizes(t *testing.T) {
	ctx := testContext()

	got := ctx.Tokens("The neural networks and the studies")
	want := []string{"neural", "network", "study"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokens = %v, want %v", got, want)
	}
}

func TestLemmatize(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"networks", "network"},
		{"studies", "study"},
		{"analyses", "analysis"},
		{"classes", "class"},
		{"loss", "loss"},
		{"corpus", "corpus"},
		{"analysis", "analysis"},
		{"gas", "gas"},
		{"model", "model"},
	}
	for _, tt := range tests {
		if got := Lemmatize(tt.word); got != tt.want {
			t.Errorf("Lemmatize(%q) = %q, want %q", tt.word, got, tt.want)
		}
	}
}

func TestSentences(t *testing.T) {
	ctx := testContext()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "two sentences",
			text: "We propose a novel method. It improves accuracy.",
			want: []string{"We propose a novel method.", "It improves accuracy."},
		},
		{
			name: "abbreviation is not a boundary",
			text: "Results follow Smith et al. closely. A second point.",
			want: []string{"Results follow Smith et al. closely.", "A second point."},
		},
		{
			name: "trailing fragment without terminator",
			text: "First sentence. trailing fragment",
			want: []string{"First sentence.", "trailing fragment"},
		},
		{
			name: "question and exclamation",
			text: "Why does this work? It just does!",
			want: []string{"Why does this work?", "It just does!"},
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ctx.Sentences(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Sentences(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSentencesRespectsCap(t *testing.T) {
	ctx := NewContext(types.AnalysisConfig{MaxSentences: 2})
	got := ctx.Sentences("One. Two. Three. Four.")
	if len(got) != 2 {
		t.Errorf("got %d sentences, want 2", len(got))
	}
}
