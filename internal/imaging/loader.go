package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	_ "github.com/ftrvxmtrx/tga"   // Register TGA format decoder
	_ "golang.org/x/image/bmp"     // Register BMP format decoder
	_ "golang.org/x/image/tiff"    // Register TIFF format decoder
	_ "golang.org/x/image/webp"    // Register WebP format decoder
)

// Load reads and decodes the image at path.
//
// The format is detected from the file contents. The concrete return type
// depends on the source format and color model (e.g. *image.RGBA,
// *image.NRGBA, *image.YCbCr, *image.Paletted).
//
// # Errors
//
//   - Returns an error if the file does not exist or cannot be read
//   - Returns an error if the contents are not in a registered format
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}
