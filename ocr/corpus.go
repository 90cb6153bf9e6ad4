package ocr

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Corpus is the word-frequency resource set the labeler leans on for spell
// correction and for ranking words by how common they are. It is loaded
// from a plain text file with one `word count` pair per line; lines with a
// missing count default to 1 and lines starting with # are ignored.
type Corpus struct {
	freq  map[string]int
	words []string
}

// LoadCorpus reads a word-frequency file. The words are lowercased on load.
func LoadCorpus(path string) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word corpus: %w", err)
	}
	defer func() { _ = f.Close() }()

	c := &Corpus{freq: make(map[string]int)}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		word := strings.ToLower(fields[0])

		count := 1
		if len(fields) > 1 {
			parsed, err := strconv.Atoi(fields[1])
			if err != nil || parsed < 1 {
				continue
			}
			count = parsed
		}

		if _, seen := c.freq[word]; !seen {
			c.words = append(c.words, word)
		}
		c.freq[word] += count
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word corpus: %w", err)
	}

	if len(c.words) == 0 {
		return nil, fmt.Errorf("word corpus %s contains no usable entries", path)
	}

	return c, nil
}

// Freq returns how often the word appears in the corpus, 0 when unknown.
func (c *Corpus) Freq(word string) int {
	return c.freq[strings.ToLower(word)]
}

// Contains reports whether the word is part of the corpus.
func (c *Corpus) Contains(word string) bool {
	_, ok := c.freq[strings.ToLower(word)]
	return ok
}

// Words returns the distinct corpus words in load order.
func (c *Corpus) Words() []string {
	return c.words
}

// Len returns the number of distinct words in the corpus.
func (c *Corpus) Len() int {
	return len(c.words)
}
