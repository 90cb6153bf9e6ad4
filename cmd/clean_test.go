package cmd

import (
	"math"
	"testing"

	"imagetools/config"
)

func intPtr(v int) *int { return &v }

func int64Ptr(v int64) *int64 { return &v }

func strPtr(v string) *string { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestBuildPolicy_FromConfig(t *testing.T) {
	fileCfg := config.Default().Filter
	fileCfg.MinWidth = 800
	fileCfg.MinAspect = "4:3"
	fileCfg.Aspects = []string{"16:9"}

	cmd := &CleanCmd{}
	policy, err := cmd.buildPolicy(fileCfg)
	if err != nil {
		t.Fatalf("buildPolicy() error = %v", err)
	}

	if policy.MinWidth != 800 {
		t.Errorf("MinWidth = %d, expected 800", policy.MinWidth)
	}
	if math.Abs(policy.MinAspect-4.0/3.0) > 1e-9 {
		t.Errorf("MinAspect = %v, expected 4:3", policy.MinAspect)
	}
	if len(policy.Aspects) != 1 || math.Abs(policy.Aspects[0]-16.0/9.0) > 1e-9 {
		t.Errorf("Aspects = %v, expected [16:9]", policy.Aspects)
	}
	if policy.OnUnreadable != "skip" {
		t.Errorf("OnUnreadable = %q, expected the default skip", policy.OnUnreadable)
	}
}

func TestBuildPolicy_FlagsOverrideConfig(t *testing.T) {
	fileCfg := config.Default().Filter
	fileCfg.MinWidth = 800
	fileCfg.MinHeight = 600
	fileCfg.Aspects = []string{"4:3"}

	cmd := &CleanCmd{
		MinWidth:     intPtr(1920),
		MinHeight:    intPtr(0), // explicitly disables the config value
		MinPixels:    int64Ptr(2000000),
		MinAspect:    strPtr("16:10"),
		Aspect:       []string{"16:9", "21:9"},
		Tolerance:    floatPtr(0.05),
		OnUnreadable: "delete",
	}
	policy, err := cmd.buildPolicy(fileCfg)
	if err != nil {
		t.Fatalf("buildPolicy() error = %v", err)
	}

	if policy.MinWidth != 1920 {
		t.Errorf("MinWidth = %d, expected the flag value 1920", policy.MinWidth)
	}
	if policy.MinHeight != 0 {
		t.Errorf("MinHeight = %d, expected 0 after explicit disable", policy.MinHeight)
	}
	if policy.MinPixels != 2000000 {
		t.Errorf("MinPixels = %d, expected 2000000", policy.MinPixels)
	}
	if math.Abs(policy.MinAspect-1.6) > 1e-9 {
		t.Errorf("MinAspect = %v, expected 1.6", policy.MinAspect)
	}
	if len(policy.Aspects) != 2 {
		t.Errorf("Aspects = %v, expected the two flag ratios", policy.Aspects)
	}
	if policy.Tolerance != 0.05 {
		t.Errorf("Tolerance = %v, expected 0.05", policy.Tolerance)
	}
	if policy.OnUnreadable != "delete" {
		t.Errorf("OnUnreadable = %q, expected delete", policy.OnUnreadable)
	}
}

func TestBuildPolicy_BadAspect(t *testing.T) {
	cmd := &CleanCmd{Aspect: []string{"bogus"}}
	if _, err := cmd.buildPolicy(config.Default().Filter); err == nil {
		t.Error("buildPolicy() expected error for a bad aspect flag, got nil")
	}

	cmd = &CleanCmd{MinAspect: strPtr("wide")}
	if _, err := cmd.buildPolicy(config.Default().Filter); err == nil {
		t.Error("buildPolicy() expected error for a bad min-aspect flag, got nil")
	}
}
