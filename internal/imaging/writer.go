package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/disintegration/imaging"
)

// Save encodes img to path, choosing the format from the file extension.
//
// PNG, JPEG, GIF, TIFF, and BMP are handled by the disintegration/imaging
// encoder. A ".webp" extension selects lossless WebP via nativewebp, which
// the generic encoder does not support. Any other extension is an error.
func Save(img image.Image, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".webp") {
		return saveWebP(img, path)
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

func saveWebP(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("failed to encode webp: %w", err)
	}
	return nil
}
