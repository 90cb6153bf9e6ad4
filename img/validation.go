package img

import (
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultExtensions are the file extensions the rename pipeline treats as images.
var DefaultExtensions = []string{".gif", ".png", ".jpg", ".jpeg"}

// hashStemRegex matches filename stems that are a full MD5 hex digest
var hashStemRegex = regexp.MustCompile(`^[a-fA-F0-9]{32}$`)

// IsImageFile checks if the given file extension is one of the known image file extensions
func IsImageFile(path string) bool {
	return MatchesExtension(path, DefaultExtensions)
}

// MatchesExtension checks if the file's extension is in the given set.
// Comparison is case-insensitive and extensions may be given with or
// without a leading dot.
func MatchesExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return false
	}

	for _, v := range extensions {
		v = strings.ToLower(v)
		if !strings.HasPrefix(v, ".") {
			v = "." + v
		}
		if v == ext {
			return true
		}
	}
	return false
}

// HashStem extracts the MD5 hash from a hash-named file.
// Files renamed from their content hash carry the digest as the whole
// filename stem, e.g. "d41d8cd98f00b204e9800998ecf8427e.jpg".
func HashStem(filename string) (string, bool) {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	if !hashStemRegex.MatchString(stem) {
		return "", false
	}
	return strings.ToLower(stem), true
}
