// Package ocr builds descriptive labels for image files by running them
// through the external tesseract binary and distilling the recognized text
// into a few significant words.
package ocr

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ExtractText runs tesseract against the image and returns the recognized
// text with newlines flattened to spaces. An empty string means tesseract
// ran fine but found no text.
func ExtractText(binary, language, imageFile string) (string, error) {
	if binary == "" {
		binary = "tesseract"
	}

	args := []string{imageFile, "stdout"}
	if language != "" {
		args = append(args, "-l", language)
	}

	cmd := exec.Command(binary, args...)
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("failed to extract text: %w\ntesseract output: %s", err, firstLine(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("failed to extract text: %w", err)
	}

	text := strings.ReplaceAll(string(output), "\n", " ")
	return strings.TrimSpace(text), nil
}

// firstLine extracts just the first non-empty line from a multi-line string
func firstLine(s string) string {
	for _, line := range strings.Split(strings.TrimSpace(s), "\n") {
		if strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line)
		}
	}
	return "no additional information available"
}
