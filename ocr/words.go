package ocr

import (
	"sort"
	"strings"
	"unicode"

	"github.com/kljensen/snowball/english"
	"github.com/pmezard/go-difflib/difflib"
)

// WordFilter holds the knobs for boiling recognized text down to the words
// worth putting in a filename.
type WordFilter struct {
	MinWordLength       int     // shorter words are noise
	MaxWordLength       int     // longer words are usually OCR garbage
	SimilarityThreshold float64 // ratio above which two words count as the same
}

// SelectKeywords turns raw recognized text into a ranked list of distinct
// significant words. Words are spell-corrected, ordered rarest-first by
// corpus frequency so the most distinctive words come out on top, then
// normalized and pruned of near-duplicates.
func SelectKeywords(text string, corpus *Corpus, corrector *Corrector, filter WordFilter) []string {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil
	}

	corrected := make([]string, 0, len(tokens))
	for _, token := range tokens {
		corrected = append(corrected, corrector.Correct(token))
	}

	// Rarest first: words missing from the corpus sort to the front.
	sort.SliceStable(corrected, func(i, j int) bool {
		return corpus.Freq(corrected[i]) < corpus.Freq(corrected[j])
	})

	normalized := make([]string, 0, len(corrected))
	for _, word := range corrected {
		word = strings.ToLower(strings.TrimFunc(word, unicode.IsPunct))
		if !isAlphabetic(word) {
			continue
		}
		if len([]rune(word)) < filter.MinWordLength {
			continue
		}
		normalized = append(normalized, word)
	}

	return filterSimilar(normalized, filter)
}

// filterSimilar drops words that are too close to one already kept: exact
// duplicates, words sharing a stem, and words whose similarity ratio to a
// kept word (or its stem) reaches the threshold. Overlong words are
// dropped outright.
func filterSimilar(words []string, filter WordFilter) []string {
	var kept []string
	var keptStems []string

	for _, word := range words {
		if filter.MaxWordLength > 0 && len([]rune(word)) > filter.MaxWordLength {
			continue
		}

		stem := english.Stem(word, false)
		similar := false
		for i, other := range kept {
			if word == other || stem == keptStems[i] {
				similar = true
				break
			}
			if similarity(word, other) >= filter.SimilarityThreshold ||
				similarity(stem, keptStems[i]) >= filter.SimilarityThreshold {
				similar = true
				break
			}
		}

		if !similar {
			kept = append(kept, word)
			keptStems = append(keptStems, stem)
		}
	}

	return kept
}

// similarity is difflib's SequenceMatcher ratio over characters.
func similarity(a, b string) float64 {
	return difflib.NewMatcher(splitChars(a), splitChars(b)).Ratio()
}

func splitChars(s string) []string {
	chars := make([]string, 0, len(s))
	for _, r := range s {
		chars = append(chars, string(r))
	}
	return chars
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
