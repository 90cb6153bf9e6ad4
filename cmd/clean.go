package cmd

import (
	"fmt"

	"imagetools/config"
	"imagetools/filter"
	"imagetools/types"
	"imagetools/ui"
	"imagetools/utils"
)

type CleanCmd struct {
	Directory    string   `arg:"" name:"directory" help:"Directory with images to clean" type:"existingdir"`
	DryRun       bool     `help:"Show the delete plan without removing anything"`
	Verbose      bool     `short:"v" help:"Per-file output instead of a progress bar"`
	MinWidth     *int     `help:"Keep images at least this many pixels wide"`
	MinHeight    *int     `help:"Keep images at least this many pixels tall"`
	MinPixels    *int64   `help:"Keep images with at least this many pixels in total"`
	MinAspect    *string  `help:"Keep images with width:height at or above this ratio (W:H)"`
	Aspect       []string `help:"Accepted aspect ratio in W:H form, repeatable"`
	Tolerance    *float64 `help:"Slack when matching aspect ratios"`
	OnUnreadable string   `help:"What to do with undecodable files" enum:",skip,delete" default:""`
}

func (cmd *CleanCmd) Run(appCtx *types.AppContext) error {
	version := types.DefaultVersion
	cfg := config.Default()
	if appCtx != nil {
		version = appCtx.Version
		if appCtx.Config != nil {
			cfg = *appCtx.Config
		}
	}

	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("Image Tools %s", version)))

	policy, err := cmd.buildPolicy(cfg.Filter)
	if err != nil {
		return err
	}

	opts := &filter.Options{DryRun: cmd.DryRun, Verbose: cmd.Verbose}
	cleaner, err := filter.NewCleaner(policy, opts)
	if err != nil {
		return err
	}

	if !cmd.DryRun && utils.IsNetworkDrive(cmd.Directory) {
		fmt.Println(ui.WarningStyle.Render("⚠️  Network drive detected, deleted files may be unrecoverable"))
	}

	_, err = cleaner.Run(cmd.Directory)
	return err
}

// buildPolicy merges the configuration file values with the command-line
// flags, flags winning.
func (cmd *CleanCmd) buildPolicy(fileCfg config.Filter) (*filter.Policy, error) {
	policy := filter.DefaultPolicy()
	policy.Extensions = fileCfg.Extensions
	policy.MinWidth = fileCfg.MinWidth
	policy.MinHeight = fileCfg.MinHeight
	policy.MinPixels = fileCfg.MinPixels
	policy.Tolerance = fileCfg.Tolerance
	policy.OnUnreadable = fileCfg.OnUnreadable

	if cmd.MinWidth != nil {
		policy.MinWidth = *cmd.MinWidth
	}
	if cmd.MinHeight != nil {
		policy.MinHeight = *cmd.MinHeight
	}
	if cmd.MinPixels != nil {
		policy.MinPixels = *cmd.MinPixels
	}
	if cmd.Tolerance != nil {
		policy.Tolerance = *cmd.Tolerance
	}
	if cmd.OnUnreadable != "" {
		policy.OnUnreadable = cmd.OnUnreadable
	}

	minAspect := fileCfg.MinAspect
	if cmd.MinAspect != nil {
		minAspect = *cmd.MinAspect
	}
	if minAspect != "" {
		ratio, err := filter.ParseRatio(minAspect)
		if err != nil {
			return nil, err
		}
		policy.MinAspect = ratio
	}

	aspects := fileCfg.Aspects
	if len(cmd.Aspect) > 0 {
		aspects = cmd.Aspect
	}
	ratios, err := filter.ParseRatios(aspects)
	if err != nil {
		return nil, err
	}
	policy.Aspects = ratios

	return policy, nil
}
