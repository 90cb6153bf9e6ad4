// Package filter removes images from a directory that do not meet a
// resolution or aspect-ratio policy, in the original sense of weeding a
// wallpaper collection down to screen-worthy files.
package filter

import (
	"fmt"
	"strconv"
	"strings"

	"imagetools/img"
)

// How to treat files that cannot be decoded.
const (
	UnreadableSkip   = "skip"
	UnreadableDelete = "delete"
)

// Policy describes which images are worth keeping. A check is enabled by
// giving it a non-zero value; an image survives when it passes at least one
// enabled check, so each check is an independent reason to keep a file.
type Policy struct {
	Extensions   []string  // file extensions considered at all
	MinWidth     int       // minimum pixel width
	MinHeight    int       // minimum pixel height
	MinPixels    int64     // minimum total pixel count
	MinAspect    float64   // lower bound on width/height
	Aspects      []float64 // accepted aspect ratios
	Tolerance    float64   // slack when comparing aspect ratios
	OnUnreadable string    // skip or delete undecodable files
}

// DefaultPolicy returns a policy with no checks enabled yet. At least one
// check has to be switched on before the policy validates.
func DefaultPolicy() *Policy {
	return &Policy{
		Extensions:   []string{".jpg", ".jpeg", ".png"},
		Tolerance:    0.01,
		OnUnreadable: UnreadableSkip,
	}
}

// Validate reports whether the policy makes sense. A policy with nothing
// enabled would delete nothing or everything depending on interpretation,
// so it is rejected outright.
func (p *Policy) Validate() error {
	if p.MinWidth < 0 || p.MinHeight < 0 || p.MinPixels < 0 {
		return fmt.Errorf("minimum dimensions cannot be negative")
	}
	if p.MinAspect < 0 {
		return fmt.Errorf("minimum aspect ratio cannot be negative")
	}
	if p.Tolerance < 0 {
		return fmt.Errorf("aspect tolerance cannot be negative")
	}
	if len(p.Extensions) == 0 {
		return fmt.Errorf("extension list cannot be empty")
	}
	switch p.OnUnreadable {
	case UnreadableSkip, UnreadableDelete:
	default:
		return fmt.Errorf("on_unreadable must be %q or %q, got %q", UnreadableSkip, UnreadableDelete, p.OnUnreadable)
	}
	if !p.hasChecks() {
		return fmt.Errorf("policy has no checks enabled")
	}
	return nil
}

func (p *Policy) hasChecks() bool {
	return p.MinWidth > 0 || p.MinHeight > 0 || p.MinPixels > 0 ||
		p.MinAspect > 0 || len(p.Aspects) > 0
}

// Evaluate reports whether an image with the given dimensions is kept.
func (p *Policy) Evaluate(dims img.Dimensions) bool {
	if p.MinWidth > 0 && dims.Width >= p.MinWidth {
		return true
	}
	if p.MinHeight > 0 && dims.Height >= p.MinHeight {
		return true
	}
	if p.MinPixels > 0 && dims.PixelCount() >= p.MinPixels {
		return true
	}
	if p.MinAspect > 0 && dims.AspectRatio() >= p.MinAspect {
		return true
	}
	ratio := dims.AspectRatio()
	for _, accepted := range p.Aspects {
		if diff := ratio - accepted; diff >= -p.Tolerance && diff <= p.Tolerance {
			return true
		}
	}
	return false
}

// ParseRatio parses an aspect ratio in W:H form, for example 16:9 or
// 2.35:1.
func ParseRatio(s string) (float64, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid aspect ratio %q, expected W:H", s)
	}

	width, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid aspect ratio %q: %v", s, err)
	}
	height, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid aspect ratio %q: %v", s, err)
	}
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("invalid aspect ratio %q, sides must be positive", s)
	}

	return width / height, nil
}

// ParseRatios parses a list of W:H ratios.
func ParseRatios(values []string) ([]float64, error) {
	ratios := make([]float64, 0, len(values))
	for _, value := range values {
		ratio, err := ParseRatio(value)
		if err != nil {
			return nil, err
		}
		ratios = append(ratios, ratio)
	}
	return ratios, nil
}
