package utils

import (
	"path/filepath"
	"strings"
)

// IsNetworkDrive detects if a directory is on a network-mounted drive.
// Batch renames and deletes over a network mount are slow and harder to
// undo, so commands warn before touching one.
func IsNetworkDrive(path string) bool {
	// Windows UNC paths, before converting to an absolute path
	if strings.HasPrefix(path, "//") || strings.HasPrefix(path, "\\\\") {
		return true
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}

	// Common network mount points per platform
	networkPrefixes := []string{
		"/mnt/",     // Linux NFS/SMB mounts
		"/media/",   // Linux removable/network media
		"/Volumes/", // macOS network volumes
	}

	for _, prefix := range networkPrefixes {
		if strings.HasPrefix(absPath, prefix) {
			return true
		}
	}

	return false
}
