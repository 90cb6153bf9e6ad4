package cmd

import (
	"fmt"
	"os"

	"imagetools/config"
	"imagetools/ocr"
	"imagetools/renamer"
	"imagetools/types"
	"imagetools/ui"
	"imagetools/utils"
)

type RenameCmd struct {
	Directory  string `arg:"" name:"directory" help:"Directory with images to rename" type:"existingdir"`
	DryRun     bool   `help:"Show planned renames without touching anything"`
	Verbose    bool   `short:"v" help:"Per-file output instead of a progress bar"`
	TextOut    string `help:"Append the raw recognized text of each image to this file" type:"path"`
	HashOthers *bool  `help:"Rename non-image files to their MD5 digest"`
	Fallback   string `help:"Naming for images without a usable label" enum:",placeholder,hash" default:""`
}

func (cmd *RenameCmd) Run(appCtx *types.AppContext) error {
	version := types.DefaultVersion
	cfg := config.Default()
	if appCtx != nil {
		version = appCtx.Version
		if appCtx.Config != nil {
			cfg = *appCtx.Config
		}
	}

	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("Image Tools %s", version)))

	// The corpus and tesseract have to be there before the batch starts;
	// discovering this on file 40 of 400 helps nobody.
	if err := utils.ValidateOCRDependencies(cfg.OCR.Binary, cfg.OCR.CorpusPath); err != nil {
		return err
	}

	if utils.IsNetworkDrive(cmd.Directory) {
		fmt.Println(ui.WarningStyle.Render("⚠️  Network drive detected, renaming may be slow"))
	}

	ocrOpts := &ocr.Options{
		Binary:   cfg.OCR.Binary,
		Language: cfg.OCR.Language,
		MaxWords: cfg.OCR.MaxWords,
		MinWords: cfg.OCR.MinWords,
		WordFilter: ocr.WordFilter{
			MinWordLength:       cfg.OCR.MinWordLength,
			MaxWordLength:       cfg.OCR.MaxWordLength,
			SimilarityThreshold: cfg.OCR.SimilarityThreshold,
		},
	}

	if cmd.TextOut != "" {
		textFile, err := os.Create(cmd.TextOut)
		if err != nil {
			return fmt.Errorf("failed to create text output file: %w", err)
		}
		defer func() { _ = textFile.Close() }()
		ocrOpts.RawWriter = textFile
	}

	labeler, err := ocr.NewLabeler(cfg.OCR.CorpusPath, ocrOpts)
	if err != nil {
		return err
	}

	_, err = renamer.New(labeler, cmd.buildOptions(cfg.Rename)).Run(cmd.Directory)
	return err
}

// buildOptions merges the configuration file values with the command-line
// flags, flags winning.
func (cmd *RenameCmd) buildOptions(fileCfg config.Rename) *renamer.Options {
	opts := &renamer.Options{
		DryRun:         cmd.DryRun,
		Verbose:        cmd.Verbose,
		HashOthers:     fileCfg.HashOthers,
		Fallback:       fileCfg.Fallback,
		Placeholder:    fileCfg.Placeholder,
		MaxLabelLength: fileCfg.MaxLabelLength,
	}
	if cmd.HashOthers != nil {
		opts.HashOthers = *cmd.HashOthers
	}
	if cmd.Fallback != "" {
		opts.Fallback = cmd.Fallback
	}
	return opts
}
