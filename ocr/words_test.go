package ocr

import (
	"reflect"
	"testing"
)

func testCorpus(t *testing.T) *Corpus {
	t.Helper()

	path := writeCorpusFile(t, `the 69971
with 41811
beach 61
ocean 34
sunset 12
walked 9
walking 7
sunsets 5
lighthouse 3
photography 2
`)
	corpus, err := LoadCorpus(path)
	if err != nil {
		t.Fatalf("LoadCorpus() error = %v", err)
	}
	return corpus
}

func TestSelectKeywords(t *testing.T) {
	corpus := testCorpus(t)
	corrector := NewCorrector(corpus)
	filter := WordFilter{MinWordLength: 5, MaxWordLength: 9, SimilarityThreshold: 0.80}

	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "rarest words first",
			text:     "beach ocean sunset",
			expected: []string{"sunset", "ocean", "beach"},
		},
		{
			name:     "short words dropped",
			text:     "the beach with ocean",
			expected: []string{"ocean", "beach"},
		},
		{
			name:     "overlong words dropped",
			text:     "photography lighthouse ocean",
			expected: []string{"ocean"},
		},
		{
			name:     "exact duplicates collapse",
			text:     "beach beach ocean beach",
			expected: []string{"ocean", "beach"},
		},
		{
			name:     "shared stem collapses",
			text:     "walking walked",
			expected: []string{"walking"},
		},
		{
			name:     "near duplicates collapse",
			text:     "sunsets sunset",
			expected: []string{"sunsets"},
		},
		{
			name:     "punctuation trimmed and non-words dropped",
			text:     "Beach, Ocean! 12345 wave5",
			expected: []string{"beach", "ocean"},
		},
		{
			name:     "unknown proper noun ranks first",
			text:     "Paris beach",
			expected: []string{"paris", "beach"},
		},
		{
			name:     "nothing significant",
			text:     "the with",
			expected: nil,
		},
		{
			name:     "empty text",
			text:     "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectKeywords(tt.text, corpus, corrector, filter)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("SelectKeywords(%q) = %v, expected %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestFilterSimilar_ThresholdOff(t *testing.T) {
	// With the threshold above 1.0 only exact duplicates and shared stems
	// should collapse.
	filter := WordFilter{MinWordLength: 5, MaxWordLength: 9, SimilarityThreshold: 1.1}

	got := filterSimilar([]string{"coast", "coats", "coast"}, filter)
	expected := []string{"coast", "coats"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("filterSimilar() = %v, expected %v", got, expected)
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b     string
		expected float64
	}{
		{"sunset", "sunset", 1.0},
		{"abc", "xyz", 0.0},
	}

	for _, tt := range tests {
		if got := similarity(tt.a, tt.b); got != tt.expected {
			t.Errorf("similarity(%q, %q) = %v, expected %v", tt.a, tt.b, got, tt.expected)
		}
	}
}
