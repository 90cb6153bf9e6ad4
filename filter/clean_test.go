package filter

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// writeTestImage writes a real encoded image with the given dimensions.
func writeTestImage(t *testing.T, path string, width, height int) {
	t.Helper()

	im := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			im.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 100, A: 255})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}
	defer f.Close()

	switch filepath.Ext(path) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, im, nil)
	default:
		err = png.Encode(f, im)
	}
	if err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
}

func listNames(t *testing.T, directory string) []string {
	t.Helper()

	entries, err := os.ReadDir(directory)
	if err != nil {
		t.Fatalf("Failed to read directory: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}

func TestNewCleaner_InvalidPolicy(t *testing.T) {
	if _, err := NewCleaner(DefaultPolicy(), nil); err == nil {
		t.Error("NewCleaner() expected error for policy without checks, got nil")
	}
	if _, err := NewCleaner(nil, nil); err == nil {
		t.Error("NewCleaner() expected error for nil policy, got nil")
	}
}

func TestRun_DeletesFailingImages(t *testing.T) {
	dir := t.TempDir()
	writeTestImage(t, filepath.Join(dir, "big.png"), 1920, 1080)
	writeTestImage(t, filepath.Join(dir, "small.png"), 400, 300)
	bigContent, err := os.ReadFile(filepath.Join(dir, "big.png"))
	if err != nil {
		t.Fatalf("Failed to read test image: %v", err)
	}

	policy := DefaultPolicy()
	policy.MinWidth = 800
	cleaner, err := NewCleaner(policy, nil)
	if err != nil {
		t.Fatalf("NewCleaner() error = %v", err)
	}

	summary, err := cleaner.Run(dir)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if summary.Scanned != 2 || summary.Kept != 1 || summary.Deleted != 1 {
		t.Errorf("Scanned/Kept/Deleted = %d/%d/%d, expected 2/1/1",
			summary.Scanned, summary.Kept, summary.Deleted)
	}
	if got := listNames(t, dir); !reflect.DeepEqual(got, []string{"big.png"}) {
		t.Errorf("Directory = %v, expected [big.png]", got)
	}

	// Survivors are byte-identical.
	after, err := os.ReadFile(filepath.Join(dir, "big.png"))
	if err != nil {
		t.Fatalf("Failed to read survivor: %v", err)
	}
	if !bytes.Equal(after, bigContent) {
		t.Error("Surviving file content changed")
	}
}

func TestRun_DryRunDeletesNothing(t *testing.T) {
	dir := t.TempDir()
	writeTestImage(t, filepath.Join(dir, "small.png"), 400, 300)

	policy := DefaultPolicy()
	policy.MinWidth = 800
	cleaner, err := NewCleaner(policy, &Options{DryRun: true})
	if err != nil {
		t.Fatalf("NewCleaner() error = %v", err)
	}

	summary, err := cleaner.Run(dir)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if summary.Deleted != 1 {
		t.Errorf("Deleted = %d, expected 1 planned deletion", summary.Deleted)
	}
	if _, err := os.Stat(filepath.Join(dir, "small.png")); err != nil {
		t.Errorf("Dry run removed a file: %v", err)
	}
}

func TestRun_UnreadableSkippedByDefault(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.jpg"), []byte("not an image"), 0644); err != nil {
		t.Fatalf("Failed to write broken file: %v", err)
	}

	policy := DefaultPolicy()
	policy.MinWidth = 800
	cleaner, err := NewCleaner(policy, nil)
	if err != nil {
		t.Fatalf("NewCleaner() error = %v", err)
	}

	summary, err := cleaner.Run(dir)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if summary.Unreadable != 1 || summary.Deleted != 0 {
		t.Errorf("Unreadable/Deleted = %d/%d, expected 1/0", summary.Unreadable, summary.Deleted)
	}
	if _, err := os.Stat(filepath.Join(dir, "broken.jpg")); err != nil {
		t.Errorf("Unreadable file should be kept by default: %v", err)
	}
}

func TestRun_UnreadableDeleted(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.jpg"), []byte("not an image"), 0644); err != nil {
		t.Fatalf("Failed to write broken file: %v", err)
	}

	policy := DefaultPolicy()
	policy.MinWidth = 800
	policy.OnUnreadable = UnreadableDelete
	cleaner, err := NewCleaner(policy, nil)
	if err != nil {
		t.Fatalf("NewCleaner() error = %v", err)
	}

	summary, err := cleaner.Run(dir)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if summary.Unreadable != 1 || summary.Deleted != 1 {
		t.Errorf("Unreadable/Deleted = %d/%d, expected 1/1", summary.Unreadable, summary.Deleted)
	}
	if _, err := os.Stat(filepath.Join(dir, "broken.jpg")); !os.IsNotExist(err) {
		t.Error("Unreadable file should have been deleted")
	}
}

func TestRun_IgnoresOtherExtensions(t *testing.T) {
	dir := t.TempDir()
	writeTestImage(t, filepath.Join(dir, "tiny.gif"), 10, 10) // gif not in the default set
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0644); err != nil {
		t.Fatalf("Failed to write text file: %v", err)
	}

	policy := DefaultPolicy()
	policy.MinWidth = 800
	cleaner, err := NewCleaner(policy, nil)
	if err != nil {
		t.Fatalf("NewCleaner() error = %v", err)
	}

	summary, err := cleaner.Run(dir)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if summary.Scanned != 0 {
		t.Errorf("Scanned = %d, expected 0", summary.Scanned)
	}
	expected := []string{"notes.txt", "tiny.gif"}
	if got := listNames(t, dir); !reflect.DeepEqual(got, expected) {
		t.Errorf("Directory = %v, expected %v", got, expected)
	}
}

func TestRun_AspectPolicy(t *testing.T) {
	dir := t.TempDir()
	writeTestImage(t, filepath.Join(dir, "wide.png"), 1920, 1080) // 16:9
	writeTestImage(t, filepath.Join(dir, "square.png"), 500, 500) // 1:1
	writeTestImage(t, filepath.Join(dir, "tall.png"), 1080, 1920) // 9:16

	policy := DefaultPolicy()
	policy.Aspects = []float64{16.0 / 9.0, 16.0 / 10.0}
	cleaner, err := NewCleaner(policy, nil)
	if err != nil {
		t.Fatalf("NewCleaner() error = %v", err)
	}

	summary, err := cleaner.Run(dir)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if summary.Kept != 1 || summary.Deleted != 2 {
		t.Errorf("Kept/Deleted = %d/%d, expected 1/2", summary.Kept, summary.Deleted)
	}
	if got := listNames(t, dir); !reflect.DeepEqual(got, []string{"wide.png"}) {
		t.Errorf("Directory = %v, expected [wide.png]", got)
	}
}

func TestRun_AnyCheckKeeps(t *testing.T) {
	dir := t.TempDir()
	// Too small for the width check but exactly 16:9, so it stays.
	writeTestImage(t, filepath.Join(dir, "thumb.png"), 400, 225)

	policy := DefaultPolicy()
	policy.MinWidth = 800
	policy.Aspects = []float64{16.0 / 9.0}
	cleaner, err := NewCleaner(policy, nil)
	if err != nil {
		t.Fatalf("NewCleaner() error = %v", err)
	}

	summary, err := cleaner.Run(dir)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if summary.Kept != 1 || summary.Deleted != 0 {
		t.Errorf("Kept/Deleted = %d/%d, expected 1/0", summary.Kept, summary.Deleted)
	}
}

func TestRun_MissingDirectory(t *testing.T) {
	policy := DefaultPolicy()
	policy.MinWidth = 800
	cleaner, err := NewCleaner(policy, nil)
	if err != nil {
		t.Fatalf("NewCleaner() error = %v", err)
	}

	if _, err := cleaner.Run("/nonexistent/directory"); err == nil {
		t.Error("Run() expected error for missing directory, got nil")
	}
}
