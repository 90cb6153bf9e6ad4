package filter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/schollz/progressbar/v3"

	"imagetools/img"
)

// Options holds configuration for a clean run.
type Options struct {
	DryRun  bool // print the delete plan without removing anything
	Verbose bool // per-file output instead of a progress bar
}

// Summary counts what a clean run did.
type Summary struct {
	Scanned    int
	Kept       int
	Deleted    int
	Unreadable int
	Failures   int
	Elapsed    time.Duration
}

// candidate is a file queued for deletion and the reason it failed.
type candidate struct {
	path   string
	reason string
}

// Cleaner deletes the images of a directory that fail its policy. Like the
// renamer it is strictly sequential.
type Cleaner struct {
	policy Policy
	opts   Options
}

// NewCleaner validates the policy and returns a Cleaner. A nil opts means
// defaults.
func NewCleaner(policy *Policy, opts *Options) (*Cleaner, error) {
	if policy == nil {
		return nil, fmt.Errorf("no policy given")
	}
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid policy: %w", err)
	}
	if opts == nil {
		opts = &Options{}
	}
	return &Cleaner{policy: *policy, opts: *opts}, nil
}

// Run evaluates every matching file in the directory against the policy,
// then deletes the failures. Evaluation finishes for the whole directory
// before the first delete so a half-finished run never reflects a moving
// target. Per-file problems are logged and counted, never fatal.
func (c *Cleaner) Run(directory string) (*Summary, error) {
	start := time.Now()

	files, err := img.ListWithExtensions(directory, c.policy.Extensions)
	if err != nil {
		return nil, err
	}

	var bar *progressbar.ProgressBar
	if !c.opts.Verbose && !c.opts.DryRun {
		bar = progressbar.Default(int64(len(files)), "evaluating")
	}

	summary := &Summary{Scanned: len(files)}

	// Phase one: decide.
	var doomed []candidate
	for _, file := range files {
		if marked, reason := c.evaluate(file, summary); marked {
			doomed = append(doomed, candidate{path: file, reason: reason})
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	// Phase two: delete.
	for _, cand := range doomed {
		c.remove(cand, summary)
	}

	summary.Elapsed = time.Since(start)

	c.printSummary(summary)
	return summary, nil
}

// evaluate decides whether a single file should be deleted.
func (c *Cleaner) evaluate(path string, summary *Summary) (bool, string) {
	dims, err := img.ReadDimensions(path)
	if err != nil {
		if !errors.Is(err, img.ErrUnreadableImage) {
			summary.Failures++
			fmt.Printf("%s\n", errorStyle.Render(fmt.Sprintf("❌ Skipping %s: %v", filepath.Base(path), err)))
			return false, ""
		}

		summary.Unreadable++
		if c.policy.OnUnreadable == UnreadableDelete {
			return true, "not a readable image"
		}
		if c.opts.Verbose {
			fmt.Printf("%s is not readable, keeping\n", filepath.Base(path))
		}
		return false, ""
	}

	if c.policy.Evaluate(dims) {
		summary.Kept++
		if c.opts.Verbose {
			fmt.Printf("%s\n", infoStyle.Render(fmt.Sprintf("✔ Keeping %s (%s)", filepath.Base(path), dims)))
		}
		return false, ""
	}

	return true, fmt.Sprintf("%s fails every enabled check", dims)
}

// remove deletes one doomed file, or just reports it in a dry run.
func (c *Cleaner) remove(cand candidate, summary *Summary) {
	name := filepath.Base(cand.path)

	if c.opts.DryRun {
		summary.Deleted++
		fmt.Printf("%s\n", infoStyle.Render(fmt.Sprintf("🔍 Would delete %s: %s", name, cand.reason)))
		return
	}

	if err := os.Remove(cand.path); err != nil {
		summary.Failures++
		wrapped := fmt.Errorf("%w: %v", img.ErrFilesystem, err)
		fmt.Printf("%s\n", errorStyle.Render(fmt.Sprintf("❌ Failed to delete %s: %v", name, wrapped)))
		return
	}

	summary.Deleted++
	fmt.Printf("%s\n", errorStyle.Render(fmt.Sprintf("🗑️  Deleted %s: %s", name, cand.reason)))
}

func (c *Cleaner) printSummary(summary *Summary) {
	verb := "deleted"
	if c.opts.DryRun {
		verb = "would delete"
	}
	fmt.Printf("\n%s\n", successStyle.Render(fmt.Sprintf("✅ Scanned %d files in %s: %d kept, %d %s",
		summary.Scanned, summary.Elapsed.Round(time.Millisecond), summary.Kept, summary.Deleted, verb)))
	if summary.Unreadable > 0 || summary.Failures > 0 {
		fmt.Printf("%s\n", errorStyle.Render(fmt.Sprintf("⚠️  %d unreadable, %d failures", summary.Unreadable, summary.Failures)))
	}
}

// Styling definitions
var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33"))
)
