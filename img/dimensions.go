package img

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// Dimensions holds the decoded pixel size of an image file.
type Dimensions struct {
	Width  int
	Height int
}

// ReadDimensions decodes just enough of the file to learn its pixel size.
func ReadDimensions(path string) (Dimensions, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dimensions{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return Dimensions{}, fmt.Errorf("%w: %s: %v", ErrUnreadableImage, path, err)
	}

	return Dimensions{Width: cfg.Width, Height: cfg.Height}, nil
}

// AspectRatio returns width divided by height, or 0 for a degenerate image.
func (d Dimensions) AspectRatio() float64 {
	if d.Height <= 0 {
		return 0
	}
	return float64(d.Width) / float64(d.Height)
}

// PixelCount returns the total number of pixels.
func (d Dimensions) PixelCount() int64 {
	if d.Width <= 0 || d.Height <= 0 {
		return 0
	}
	return int64(d.Width) * int64(d.Height)
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}
