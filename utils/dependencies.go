package utils

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// ValidateOCRDependencies checks that the tesseract binary and the word
// corpus the labeler needs are actually there. Called once at startup so a
// batch run never dies halfway through on a missing resource.
func ValidateOCRDependencies(binary, corpusPath string) error {
	if _, err := exec.LookPath(binary); err != nil {
		return fmt.Errorf("%s not found in PATH. %s", binary, getInstallationInstructions())
	}

	info, err := os.Stat(corpusPath)
	if err != nil {
		return fmt.Errorf("word corpus not found at %s. Provide a word-frequency file (one \"word count\" pair per line) or point ocr.corpus_path at one", corpusPath)
	}
	if info.IsDir() {
		return fmt.Errorf("word corpus path %s is a directory, expected a file", corpusPath)
	}

	return nil
}

// getInstallationInstructions returns platform-specific installation instructions
func getInstallationInstructions() string {
	switch runtime.GOOS {
	case "darwin":
		return "Install with: brew install tesseract"
	case "linux":
		return "Install with: apt-get install tesseract-ocr (Ubuntu/Debian) or yum install tesseract (CentOS/RHEL)"
	case "windows":
		return "Download from https://github.com/tesseract-ocr/tesseract and add to PATH"
	default:
		return "Download from https://github.com/tesseract-ocr/tesseract"
	}
}
