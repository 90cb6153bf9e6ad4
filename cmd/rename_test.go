package cmd

import (
	"testing"

	"imagetools/config"
)

func boolPtr(v bool) *bool { return &v }

func TestBuildOptions_FromConfig(t *testing.T) {
	fileCfg := config.Default().Rename
	fileCfg.Fallback = "hash"
	fileCfg.HashOthers = true

	cmd := &RenameCmd{DryRun: true}
	opts := cmd.buildOptions(fileCfg)

	if !opts.DryRun {
		t.Error("DryRun should carry over from the flag")
	}
	if opts.Fallback != "hash" {
		t.Errorf("Fallback = %q, expected the config value hash", opts.Fallback)
	}
	if !opts.HashOthers {
		t.Error("HashOthers should carry over from the config")
	}
	if opts.Placeholder != "unnamed" || opts.MaxLabelLength != 100 {
		t.Errorf("Placeholder/MaxLabelLength = %q/%d, expected the defaults", opts.Placeholder, opts.MaxLabelLength)
	}
}

func TestBuildOptions_FlagsOverrideConfig(t *testing.T) {
	fileCfg := config.Default().Rename
	fileCfg.Fallback = "hash"
	fileCfg.HashOthers = true

	cmd := &RenameCmd{
		Fallback:   "placeholder",
		HashOthers: boolPtr(false), // explicitly disables the config value
	}
	opts := cmd.buildOptions(fileCfg)

	if opts.Fallback != "placeholder" {
		t.Errorf("Fallback = %q, expected the flag value placeholder", opts.Fallback)
	}
	if opts.HashOthers {
		t.Error("HashOthers = true, expected false after explicit disable")
	}
}

func TestBuildOptions_FlagEnables(t *testing.T) {
	cmd := &RenameCmd{HashOthers: boolPtr(true)}
	opts := cmd.buildOptions(config.Default().Rename)

	if !opts.HashOthers {
		t.Error("HashOthers = false, expected the flag to enable it")
	}
}
