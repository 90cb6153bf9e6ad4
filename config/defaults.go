package config

import (
	"imagetools/filter"
	"imagetools/ocr"
	"imagetools/renamer"
)

const defaultCorpusPath = "~/.local/share/imagetools/wordfreq.txt"

// Default returns a Config populated with the defaults of the underlying
// packages, so the file format and the code never disagree about them.
func Default() Config {
	renameOpts := renamer.DefaultOptions()
	ocrOpts := ocr.DefaultOptions()
	policy := filter.DefaultPolicy()

	return Config{
		Rename: Rename{
			Fallback:       renameOpts.Fallback,
			Placeholder:    renameOpts.Placeholder,
			MaxLabelLength: renameOpts.MaxLabelLength,
			HashOthers:     renameOpts.HashOthers,
		},
		OCR: OCR{
			Binary:              ocrOpts.Binary,
			Language:            ocrOpts.Language,
			CorpusPath:          defaultCorpusPath,
			MaxWords:            ocrOpts.MaxWords,
			MinWords:            ocrOpts.MinWords,
			MinWordLength:       ocrOpts.MinWordLength,
			MaxWordLength:       ocrOpts.MaxWordLength,
			SimilarityThreshold: ocrOpts.SimilarityThreshold,
		},
		Filter: Filter{
			Extensions:   policy.Extensions,
			Tolerance:    policy.Tolerance,
			OnUnreadable: policy.OnUnreadable,
		},
	}
}
