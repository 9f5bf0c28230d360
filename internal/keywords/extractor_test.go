package keywords

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/paperlens/internal/nlp"
	"github.com/pdiddy/paperlens/pkg/types"
)

func testExtractor() *Extractor {
	cfg := types.AnalysisConfig{}
	return NewExtractor(nlp.NewContext(cfg), cfg)
}

const sampleAbstract = `We propose a novel graph neural network for molecule
property prediction. The graph neural network aggregates atom features over
molecular bonds. Experiments show the network improves prediction accuracy
on three benchmark datasets.`

func TestExtractFrequencyRanksByCount(t *testing.T) {
	e := testExtractor()

	ks, err := e.Extract("network network network graph graph model", types.MethodFrequency)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	got := ks[types.MethodFrequency]
	want := []string{"network", "graph", "model"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("frequency keywords = %v, want %v", got, want)
	}
}

func TestExtractFrequencyTieBreaksByFirstOccurrence(t *testing.T) {
	e := testExtractor()

	ks, err := e.Extract("alpha beta alpha beta gamma", types.MethodFrequency)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	got := ks[types.MethodFrequency]
	want := []string{"alpha", "beta", "gamma"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("frequency keywords = %v, want %v", got, want)
	}
}

func TestExtractIsIdempotent(t *testing.T) {
	e := testExtractor()

	for _, method := range []types.ExtractionMethod{
		types.MethodFrequency, types.MethodPhraseRank, types.MethodGraphRank,
	} {
		first, err := e.Extract(sampleAbstract, method)
		if err != nil {
			t.Fatalf("Extract(%s): %v", method, err)
		}
		second, err := e.Extract(sampleAbstract, method)
		if err != nil {
			t.Fatalf("Extract(%s): %v", method, err)
		}
		if !reflect.DeepEqual(first[method], second[method]) {
			t.Errorf("%s not idempotent:\n  first  %v\n  second %v",
				method, first[method], second[method])
		}
	}
}

func TestExtractEmptyText(t *testing.T) {
	e := testExtractor()

	for _, method := range []types.ExtractionMethod{
		types.MethodFrequency, types.MethodPhraseRank,
		types.MethodGraphRank, types.MethodCombined,
	} {
		ks, err := e.Extract("   \n  ", method)
		if err != nil {
			t.Fatalf("Extract(%s): %v", method, err)
		}
		for m, kws := range ks {
			if len(kws) != 0 {
				t.Errorf("Extract(%s)[%s] = %v, want empty", method, m, kws)
			}
		}
	}
}

func TestExtractUnknownMethod(t *testing.T) {
	e := testExtractor()

	_, err := e.Extract("some text", "cluster")
	if !errors.Is(err, types.ErrInputInvalid) {
		t.Errorf("err = %v, want ErrInputInvalid", err)
	}
}

func TestExtractCombinedUnionsAllMethods(t *testing.T) {
	e := testExtractor()

	ks, err := e.Extract(sampleAbstract, types.MethodCombined)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	for _, method := range []types.ExtractionMethod{
		types.MethodFrequency, types.MethodPhraseRank, types.MethodGraphRank,
	} {
		if _, ok := ks[method]; !ok {
			t.Errorf("combined result missing %s entry", method)
		}
	}

	combined := make(map[string]bool)
	for _, kw := range ks[types.MethodCombined] {
		if combined[kw] {
			t.Errorf("combined contains duplicate %q", kw)
		}
		combined[kw] = true
	}
	for _, method := range []types.ExtractionMethod{
		types.MethodFrequency, types.MethodPhraseRank, types.MethodGraphRank,
	} {
		for _, kw := range ks[method] {
			if !combined[kw] {
				t.Errorf("combined missing %q from %s", kw, method)
			}
		}
	}
}

func TestExtractCapsAtTen(t *testing.T) {
	e := testExtractor()

	var sb strings.Builder
	for _, w := range []string{
		"alpha", "beta", "gamma", "delta", "epsilon", "zeta",
		"eta", "theta", "iota", "kappa", "lambda", "omicron",
	} {
		sb.WriteString(w)
		sb.WriteString(" ")
	}

	ks, err := e.Extract(sb.String(), types.MethodFrequency)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got := len(ks[types.MethodFrequency]); got != 10 {
		t.Errorf("got %d keywords, want 10", got)
	}
}

func TestPhraseRankPrefersLongerPhrases(t *testing.T) {
	e := testExtractor()

	ks, err := e.Extract("graph neural network beats the baseline model", types.MethodPhraseRank)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	got := ks[types.MethodPhraseRank]
	if len(got) == 0 {
		t.Fatal("no phrases extracted")
	}
	if got[0] != "graph neural network" {
		t.Errorf("top phrase = %q, want %q", got[0], "graph neural network")
	}
}

func TestGraphRankFavorsConnectedTerms(t *testing.T) {
	e := testExtractor()

	// "network" neighbors every other content word at least once.
	text := "network model. network data. network training. model training."
	ks, err := e.Extract(text, types.MethodGraphRank)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	got := ks[types.MethodGraphRank]
	if len(got) == 0 || got[0] != "network" {
		t.Errorf("graph rank order = %v, want network first", got)
	}
}
