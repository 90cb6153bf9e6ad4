// Package renamer renames image files after what is actually in them. A
// Labeler turns each image into a short descriptive label and the renamer
// turns that label into a collision-free filename, leaving file content
// untouched.
package renamer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/schollz/progressbar/v3"

	"imagetools/img"
)

// Labeler produces a descriptive label for an image file. An empty label
// with a nil error means the labeler had nothing useful to say and the
// renamer falls back to a placeholder name.
type Labeler interface {
	Label(imageFile string) (string, error)
}

// Fallback strategies for images that yield no usable label.
const (
	FallbackPlaceholder = "placeholder"
	FallbackHash        = "hash"
)

// Options holds configuration for a rename run.
type Options struct {
	DryRun         bool   // print planned renames without touching anything
	Verbose        bool   // per-file output instead of a progress bar
	HashOthers     bool   // rename non-image files to their MD5 digest
	Fallback       string // placeholder or hash
	Placeholder    string // stem used when the label comes up empty
	MaxLabelLength int    // labels are truncated to this many runes
}

// DefaultOptions returns the rename defaults.
func DefaultOptions() *Options {
	return &Options{
		Fallback:       FallbackPlaceholder,
		Placeholder:    "unnamed",
		MaxLabelLength: 100,
	}
}

// Summary counts what a rename run did.
type Summary struct {
	Renamed                int
	Unchanged              int
	Skipped                int
	Unreadable             int
	ClassificationFailures int
	FilesystemFailures     int
	Elapsed                time.Duration
}

// Failures is the total number of files that could not be processed.
func (s *Summary) Failures() int {
	return s.Unreadable + s.ClassificationFailures + s.FilesystemFailures
}

// Renamer renames the files of one directory at a time. It is not safe for
// concurrent use; every file is handled to completion before the next one.
type Renamer struct {
	labeler Labeler
	opts    Options

	// claimed holds names handed out during the current run, vacated the
	// names freed by it. Both are keyed by bare filename and exist so a
	// dry run resolves collisions exactly like a real one would.
	claimed map[string]bool
	vacated map[string]bool
}

// New returns a Renamer using the given labeler. A nil opts means defaults.
func New(labeler Labeler, opts *Options) *Renamer {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Renamer{labeler: labeler, opts: *opts}
}

// Run processes every regular file directly inside the directory in
// filename order. Per-file problems are logged and counted, never fatal;
// the returned error covers only the directory scan itself.
func (r *Renamer) Run(directory string) (*Summary, error) {
	start := time.Now()

	images, others, err := img.ScanDirectory(directory)
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(images)+len(others))
	files = append(files, images...)
	files = append(files, others...)
	sort.Strings(files)

	r.claimed = make(map[string]bool)
	r.vacated = make(map[string]bool)

	var bar *progressbar.ProgressBar
	if !r.opts.Verbose && !r.opts.DryRun {
		bar = progressbar.Default(int64(len(files)), "renaming")
	}

	summary := &Summary{}
	for _, file := range files {
		if img.IsImageFile(file) {
			r.processImage(file, summary)
		} else {
			r.processOther(file, summary)
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	summary.Elapsed = time.Since(start)

	r.printSummary(summary)
	return summary, nil
}

// processImage renames a single image file after its label.
func (r *Renamer) processImage(path string, summary *Summary) {
	if _, err := img.ReadDimensions(path); err != nil {
		if errors.Is(err, img.ErrUnreadableImage) {
			summary.Unreadable++
		} else {
			summary.FilesystemFailures++
		}
		fmt.Printf("%s\n", errorStyle.Render(fmt.Sprintf("❌ Skipping %s: %v", filepath.Base(path), err)))
		return
	}

	label, err := r.labeler.Label(path)
	if err != nil {
		summary.ClassificationFailures++
		wrapped := fmt.Errorf("%w: %v", img.ErrClassification, err)
		fmt.Printf("%s\n", errorStyle.Render(fmt.Sprintf("❌ Skipping %s: %v", filepath.Base(path), wrapped)))
		return
	}

	stem := SanitizeLabel(label, r.opts.MaxLabelLength)
	if stem == "" {
		stem, err = r.fallbackStem(path)
		if err != nil {
			summary.FilesystemFailures++
			fmt.Printf("%s\n", errorStyle.Render(fmt.Sprintf("❌ Skipping %s: %v", filepath.Base(path), err)))
			return
		}
	}

	r.renameTo(path, stem, summary)
}

// processOther handles non-image files: skipped by default, renamed to
// their MD5 digest when HashOthers is set.
func (r *Renamer) processOther(path string, summary *Summary) {
	if !r.opts.HashOthers {
		summary.Skipped++
		if r.opts.Verbose {
			fmt.Printf("%s is not an image file, skipping\n", filepath.Base(path))
		}
		return
	}

	digest, err := img.MD5File(path, nil)
	if err != nil {
		summary.FilesystemFailures++
		wrapped := fmt.Errorf("%w: %v", img.ErrFilesystem, err)
		fmt.Printf("%s\n", errorStyle.Render(fmt.Sprintf("❌ Skipping %s: %v", filepath.Base(path), wrapped)))
		return
	}

	r.renameTo(path, digest, summary)
}

// fallbackStem picks the stem for an image with no usable label.
func (r *Renamer) fallbackStem(path string) (string, error) {
	if r.opts.Fallback == FallbackHash {
		digest, err := img.MD5File(path, nil)
		if err != nil {
			return "", fmt.Errorf("%w: %v", img.ErrFilesystem, err)
		}
		return digest, nil
	}
	return r.opts.Placeholder, nil
}

// renameTo moves the file to <stem><ext> inside its directory, resolving
// collisions and leaving already-correct names alone.
func (r *Renamer) renameTo(path, stem string, summary *Summary) {
	directory := filepath.Dir(path)
	srcName := filepath.Base(path)

	target := r.resolveCollision(directory, srcName, stem, filepath.Ext(srcName))
	if target == srcName {
		summary.Unchanged++
		r.claimed[target] = true
		if r.opts.Verbose {
			fmt.Printf("%s already has its generated name\n", srcName)
		}
		return
	}

	if r.opts.DryRun {
		summary.Renamed++
		r.claimed[target] = true
		r.vacated[srcName] = true
		fmt.Printf("%s\n", infoStyle.Render(fmt.Sprintf("🔍 Would rename %s -> %s", srcName, target)))
		return
	}

	if err := os.Rename(path, filepath.Join(directory, target)); err != nil {
		summary.FilesystemFailures++
		wrapped := fmt.Errorf("%w: %v", img.ErrFilesystem, err)
		fmt.Printf("%s\n", errorStyle.Render(fmt.Sprintf("❌ Failed to rename %s: %v", srcName, wrapped)))
		return
	}

	summary.Renamed++
	r.claimed[target] = true
	r.vacated[srcName] = true
	fmt.Printf("%s\n", successStyle.Render(fmt.Sprintf("✅ %s -> %s", srcName, target)))
}

// resolveCollision finds the first free name for the stem, appending -1,
// -2, ... while the candidate is taken. A candidate equal to the source
// filename is returned as-is, which is what keeps repeat runs from
// renaming files that already carry their generated name.
func (r *Renamer) resolveCollision(directory, srcName, stem, ext string) string {
	candidate := stem + ext
	for i := 1; ; i++ {
		if candidate == srcName {
			return candidate
		}
		if !r.taken(directory, candidate) {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%d%s", stem, i, ext)
	}
}

// taken reports whether a filename is unavailable as a rename target.
// Names claimed earlier in the run are taken even before the files exist;
// names vacated by earlier renames are free even if a dry run left them on
// disk.
func (r *Renamer) taken(directory, name string) bool {
	if r.claimed[name] {
		return true
	}
	if r.vacated[name] {
		return false
	}
	_, err := os.Stat(filepath.Join(directory, name))
	return err == nil
}

func (r *Renamer) printSummary(summary *Summary) {
	verb := "Renamed"
	if r.opts.DryRun {
		verb = "Would rename"
	}
	fmt.Printf("\n%s\n", successStyle.Render(fmt.Sprintf("✅ %s %d files in %s (%d unchanged, %d skipped)",
		verb, summary.Renamed, summary.Elapsed.Round(time.Millisecond), summary.Unchanged, summary.Skipped)))
	if summary.Failures() > 0 {
		fmt.Printf("%s\n", errorStyle.Render(fmt.Sprintf("⚠️  %d unreadable, %d classification failures, %d filesystem failures",
			summary.Unreadable, summary.ClassificationFailures, summary.FilesystemFailures)))
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
