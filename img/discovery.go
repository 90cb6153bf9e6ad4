package img

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ScanDirectory lists the regular files directly inside a directory, split
// into image files and everything else. The scan is not recursive and
// dotfiles are ignored. Both lists come back sorted by filename so batch
// runs process files in a reproducible order.
func ScanDirectory(directory string) (images []string, others []string, err error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read directory: %w", err)
	}

	// os.ReadDir returns entries sorted by filename.
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if !entry.Type().IsRegular() {
			continue
		}

		path := filepath.Join(directory, name)
		if IsImageFile(name) {
			images = append(images, path)
		} else {
			others = append(others, path)
		}
	}

	return images, others, nil
}

// ListWithExtensions lists the regular files directly inside a directory
// whose extension is in the given set, sorted by filename. Dotfiles are
// ignored.
func ListWithExtensions(directory string, extensions []string) ([]string, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if !entry.Type().IsRegular() {
			continue
		}
		if MatchesExtension(name, extensions) {
			files = append(files, filepath.Join(directory, name))
		}
	}

	return files, nil
}
