package img

import (
	"crypto/md5"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/corona10/goimagehash"
	"github.com/nfnt/resize"
)

// phashWidth is the width images are downscaled to before perceptual
// hashing. Wallpaper-sized sources make the hash needlessly expensive.
const phashWidth = 256

// MD5File calculates the MD5 digest of a file and returns it as a
// lowercase hex string. When progress is non-nil the bytes read are also
// written to it so callers can render hashing progress.
func MD5File(path string, progress io.Writer) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file for hash calculation: %w", err)
	}
	defer func() { _ = f.Close() }()

	h := md5.New()
	var w io.Writer = h
	if progress != nil {
		w = io.MultiWriter(h, progress)
	}

	if _, err := io.Copy(w, f); err != nil {
		return "", fmt.Errorf("failed to calculate hash: %w", err)
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// PerceptualHash decodes an image file and calculates its perception hash.
func PerceptualHash(path string) (*goimagehash.ImageHash, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoded, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadableImage, path, err)
	}

	bounds := decoded.Bounds()
	if bounds.Dx() > phashWidth {
		decoded = resize.Resize(phashWidth, 0, decoded, resize.Bilinear)
	}

	hash, err := goimagehash.PerceptionHash(decoded)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate perceptual hash: %w", err)
	}

	return hash, nil
}
