package img

import "path/filepath"

// FindDuplicates groups the image files of a directory by the MD5 digest
// of their content and returns only the groups with more than one member.
// The files inside each group are sorted by filename.
func FindDuplicates(directory string) (map[string][]string, error) {
	images, _, err := ScanDirectory(directory)
	if err != nil {
		return nil, err
	}

	hashToFiles := make(map[string][]string)
	for _, path := range images {
		digest, err := MD5File(path, nil)
		if err != nil {
			// A vanished or unreadable file is not a duplicate of anything.
			continue
		}
		hashToFiles[digest] = append(hashToFiles[digest], filepath.Clean(path))
	}

	duplicates := make(map[string][]string)
	for digest, files := range hashToFiles {
		if len(files) > 1 {
			duplicates[digest] = files
		}
	}

	return duplicates, nil
}
