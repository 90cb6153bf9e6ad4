package ocr

import (
	"strings"
	"unicode"

	"github.com/sajari/fuzzy"
)

// Corrector fixes the spelling of words tesseract mangled, using the word
// corpus as its dictionary.
type Corrector struct {
	corpus *Corpus
	model  *fuzzy.Model
}

// NewCorrector trains a fuzzy spelling model on the corpus words.
func NewCorrector(corpus *Corpus) *Corrector {
	model := fuzzy.NewModel()
	model.SetThreshold(1)
	model.SetDepth(2)
	model.Train(corpus.Words())

	return &Corrector{corpus: corpus, model: model}
}

// Correct returns the corrected form of a word. Words already in the
// corpus pass through untouched, as do capitalized words, which are
// assumed to be proper nouns.
func (c *Corrector) Correct(word string) string {
	if word == "" {
		return word
	}

	if isCapitalized(word) {
		return word
	}

	lower := strings.ToLower(word)
	if c.corpus.Contains(lower) {
		return word
	}

	suggestion := c.model.SpellCheck(lower)
	if suggestion == "" {
		return word
	}
	return suggestion
}

func isCapitalized(word string) bool {
	for _, r := range word {
		return unicode.IsUpper(r)
	}
	return false
}
