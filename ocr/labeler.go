package ocr

import (
	"fmt"
	"io"
	"strings"
)

// Options holds configuration for the OCR labeler.
type Options struct {
	Binary    string    // tesseract executable name or path
	Language  string    // tesseract language code
	MaxWords  int       // at most this many words make it into a label
	MinWords  int       // fewer usable words than this means no label
	RawWriter io.Writer // optional sink for the raw recognized text
	WordFilter
}

// DefaultOptions returns the labeler defaults.
func DefaultOptions() *Options {
	return &Options{
		Binary:   "tesseract",
		Language: "eng",
		MaxWords: 5,
		MinWords: 2,
		WordFilter: WordFilter{
			MinWordLength:       5,
			MaxWordLength:       9,
			SimilarityThreshold: 0.80,
		},
	}
}

// Labeler produces descriptive labels for images by recognizing any text in
// them and keeping the most distinctive words.
type Labeler struct {
	opts      Options
	corpus    *Corpus
	corrector *Corrector
}

// NewLabeler loads the word corpus and trains the spelling model. The
// corpus file has to exist; there is no built-in fallback dictionary.
func NewLabeler(corpusPath string, opts *Options) (*Labeler, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	corpus, err := LoadCorpus(corpusPath)
	if err != nil {
		return nil, fmt.Errorf("classification resources unavailable: %w", err)
	}

	return &Labeler{
		opts:      *opts,
		corpus:    corpus,
		corrector: NewCorrector(corpus),
	}, nil
}

// Label runs the image through OCR and distills the text into a short
// label. An empty label with a nil error means the image holds no usable
// text; the caller decides what to fall back to.
func (l *Labeler) Label(imageFile string) (string, error) {
	text, err := ExtractText(l.opts.Binary, l.opts.Language, imageFile)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", nil
	}

	if l.opts.RawWriter != nil {
		fmt.Fprintln(l.opts.RawWriter, text)
	}

	words := SelectKeywords(text, l.corpus, l.corrector, l.opts.WordFilter)
	if len(words) < l.opts.MinWords {
		return "", nil
	}
	if len(words) > l.opts.MaxWords {
		words = words[:l.opts.MaxWords]
	}

	return strings.Join(words, " "), nil
}
