package config

import (
	"errors"
	"fmt"
	"strings"

	"imagetools/filter"
	"imagetools/renamer"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateRename(); err != nil {
		return err
	}
	if err := c.validateOCR(); err != nil {
		return err
	}
	if err := c.validateFilter(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateRename() error {
	switch c.Rename.Fallback {
	case renamer.FallbackPlaceholder, renamer.FallbackHash:
	default:
		return fmt.Errorf("rename.fallback must be %q or %q, got %q",
			renamer.FallbackPlaceholder, renamer.FallbackHash, c.Rename.Fallback)
	}
	if c.Rename.MaxLabelLength < 1 {
		return errors.New("rename.max_label_length must be at least 1")
	}
	if c.Rename.Fallback == renamer.FallbackPlaceholder {
		placeholder := c.Rename.Placeholder
		if strings.TrimSpace(placeholder) == "" {
			return errors.New("rename.placeholder must be set when rename.fallback is placeholder")
		}
		if renamer.SanitizeLabel(placeholder, c.Rename.MaxLabelLength) != placeholder {
			return fmt.Errorf("rename.placeholder %q is not a usable filename stem", placeholder)
		}
	}
	return nil
}

func (c *Config) validateOCR() error {
	if strings.TrimSpace(c.OCR.Binary) == "" {
		return errors.New("ocr.binary must be set")
	}
	if strings.TrimSpace(c.OCR.Language) == "" {
		return errors.New("ocr.language must be set")
	}
	if strings.TrimSpace(c.OCR.CorpusPath) == "" {
		return errors.New("ocr.corpus_path must be set")
	}
	if c.OCR.MinWords < 1 {
		return errors.New("ocr.min_words must be at least 1")
	}
	if c.OCR.MaxWords < c.OCR.MinWords {
		return errors.New("ocr.max_words cannot be below ocr.min_words")
	}
	if c.OCR.MinWordLength < 1 {
		return errors.New("ocr.min_word_length must be at least 1")
	}
	if c.OCR.MaxWordLength < c.OCR.MinWordLength {
		return errors.New("ocr.max_word_length cannot be below ocr.min_word_length")
	}
	if c.OCR.SimilarityThreshold < 0 || c.OCR.SimilarityThreshold > 1 {
		return errors.New("ocr.similarity_threshold must be between 0 and 1")
	}
	return nil
}

func (c *Config) validateFilter() error {
	if len(c.Filter.Extensions) == 0 {
		return errors.New("filter.extensions cannot be empty")
	}
	if c.Filter.MinWidth < 0 || c.Filter.MinHeight < 0 || c.Filter.MinPixels < 0 {
		return errors.New("filter minimums cannot be negative")
	}
	if c.Filter.Tolerance < 0 {
		return errors.New("filter.tolerance cannot be negative")
	}
	switch c.Filter.OnUnreadable {
	case filter.UnreadableSkip, filter.UnreadableDelete:
	default:
		return fmt.Errorf("filter.on_unreadable must be %q or %q, got %q",
			filter.UnreadableSkip, filter.UnreadableDelete, c.Filter.OnUnreadable)
	}
	if c.Filter.MinAspect != "" {
		if _, err := filter.ParseRatio(c.Filter.MinAspect); err != nil {
			return fmt.Errorf("filter.min_aspect: %w", err)
		}
	}
	if _, err := filter.ParseRatios(c.Filter.Aspects); err != nil {
		return fmt.Errorf("filter.aspects: %w", err)
	}
	return nil
}
