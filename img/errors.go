package img

import "errors"

// Sentinel errors used to classify per-file failures in run summaries.
// Batch runs never abort on these; they are logged and counted.
var (
	// ErrUnreadableImage marks files that could not be decoded as an image.
	ErrUnreadableImage = errors.New("unreadable image")
	// ErrClassification marks files the labeling capability failed on.
	ErrClassification = errors.New("classification failed")
	// ErrFilesystem marks rename/delete operations that failed.
	ErrFilesystem = errors.New("filesystem operation failed")
)
